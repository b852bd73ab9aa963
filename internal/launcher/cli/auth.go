package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/derol/majestic-launcher/internal/common"
	"github.com/derol/majestic-launcher/internal/launcher/auth"
)

// getSimpleText, getPassword and getIntInRange are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword
var getIntInRange = GetIntInRange

// Register prompts for the registration form and attempts to create an
// account. A successful registration also logs the user in. Validation
// problems are listed one per line; they are user mistakes, not errors, so
// the method still returns nil for them.
func (a *App) Register(ctx context.Context) error {
	login, err := getSimpleText(a.reader, "Enter login", a.out)
	if err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter password", a.out)
	if err != nil {
		return err
	}

	confirm, err := getPassword("Repeat password", a.out)
	if err != nil {
		return err
	}

	session, err := a.auth.Register(ctx, login, email, password, confirm)
	if err != nil {
		var ve auth.ValidationErrors
		switch {
		case errors.As(err, &ve):
			for _, msg := range ve {
				fmt.Fprintln(a.out, "-", msg)
			}
			return nil
		case errors.Is(err, common.ErrUserExists):
			fmt.Fprintln(a.out, err.Error())
			return nil
		default:
			fmt.Fprintln(a.out, "Registration failed, try again later.")
			return err
		}
	}

	fmt.Fprintf(a.out, "Success! You are now logged in as %s.\n", session.Login)
	return nil
}

// Login prompts for credentials and authenticates against the local user
// collection. The failure message never reveals which of the two fields
// was wrong.
func (a *App) Login(ctx context.Context) error {
	login, err := getSimpleText(a.reader, "Enter login", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter password", a.out)
	if err != nil {
		return err
	}

	session, err := a.auth.Login(ctx, login, password)
	if err != nil {
		var ve auth.ValidationErrors
		switch {
		case errors.As(err, &ve):
			for _, msg := range ve {
				fmt.Fprintln(a.out, "-", msg)
			}
			return nil
		case errors.Is(err, common.ErrInvalidCredentials):
			fmt.Fprintln(a.out, err.Error())
			return nil
		default:
			fmt.Fprintln(a.out, "Login failed, try again later.")
			return err
		}
	}

	fmt.Fprintf(a.out, "Welcome, %s!\n", session.Login)
	return nil
}

// Logout drops the persisted session and returns the shell to guest mode.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		a.logger.Warn(ctx, "error removing session", "error", err)
	}
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

// WhoAmI prints the active session.
func (a *App) WhoAmI(ctx context.Context) error {
	s := a.auth.Current()
	if s == nil {
		return nil
	}
	fmt.Fprintf(a.out, "Logged in as %s (%s)\n", s.Login, s.Email)
	return nil
}
