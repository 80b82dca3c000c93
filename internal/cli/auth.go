package cli

import (
	"context"
	"errors"
	"flag"

	"github.com/relaxrp/storefront/internal/api"
)

func (a *App) register(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("register", flag.ContinueOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	name := fs.String("name", "", "full name")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *email == "" || *password == "" {
		return errors.New("email and password are required")
	}

	user, err := a.api.Register(ctx, api.RegisterRequest{
		Email:    *email,
		Password: *password,
		FullName: *name,
	})
	if err != nil {
		return err
	}

	if errSet := a.sessions.SetUser(ctx, user); errSet != nil {
		return errSet
	}
	a.printf("registered and logged in as %s\n", user.Email)
	return nil
}

func (a *App) login(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *email == "" || *password == "" {
		return errors.New("email and password are required")
	}

	user, err := a.api.Login(ctx, api.LoginRequest{Email: *email, Password: *password})
	if err != nil {
		return err
	}

	if errSet := a.sessions.SetUser(ctx, user); errSet != nil {
		return errSet
	}
	a.printf("logged in as %s\n", user.Email)
	return nil
}

func (a *App) logout(ctx context.Context) error {
	if err := a.sessions.ClearUser(ctx); err != nil {
		return err
	}
	a.printf("logged out\n")
	return nil
}
