package domain

// CartItem is a line in the local cart. Name and price are snapshots taken
// when the item was first added; they are not refreshed on later merges.
type CartItem struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
}
