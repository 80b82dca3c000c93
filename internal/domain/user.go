package domain

// User is the opaque record returned by the backend on login/register.
// The client stores it as-is and only reads email and the admin flag.
type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	IsAdmin  bool   `json:"is_admin"`
}
