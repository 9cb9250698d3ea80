package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/dkrastins/needmarket/internal/client/api"
	"github.com/dkrastins/needmarket/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for a username (or email) and password and authenticates
// via the session store. On failure the store's captured message is shown;
// what the user typed stays in their terminal history for a retry.
func (a *App) Login(ctx context.Context) error {
	identifier, err := getSimpleText(a.reader, "Enter username or email", os.Stdout)
	if err != nil {
		return err
	}
	if identifier == "" {
		printlnFn("Username must not be empty")
		return nil
	}

	password, err := getPassword("Enter password", os.Stdout)
	if err != nil {
		return err
	}

	a.store.ClearError()
	if err := a.store.Login(ctx, identifier, password); err != nil {
		printlnFn("Login failed:", a.store.LastError())
		return err
	}

	printlnFn("Logged in as", a.store.User().Username)
	return nil
}

// Register collects the profile fields, validates them, and creates an
// account. Registration authenticates directly; there is no separate login
// step afterwards.
func (a *App) Register(ctx context.Context) error {
	fullName, err := getSimpleText(a.reader, "Enter full name", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword("Enter password", os.Stdout)
	if err != nil {
		return err
	}
	confirm, err := getPassword("Confirm password", os.Stdout)
	if err != nil {
		return err
	}

	// Pre-flight validation; the store does not re-validate.
	if !common.ValidateEmail(email) {
		printlnFn("Error:", common.ErrInvalidEmailFormat.Error())
		return common.ErrInvalidEmailFormat
	}
	if !common.ValidatePassword(password) {
		printlnFn(fmt.Sprintf("Error: password must be at least %d characters", common.MinPasswordLength))
		return common.ErrPasswordTooShort
	}
	if password != confirm {
		printlnFn("Error:", common.ErrPasswordMismatch.Error())
		return common.ErrPasswordMismatch
	}

	a.store.ClearError()
	r := api.Registration{Username: username, Email: email, Password: password, FullName: fullName}
	if err := a.store.Register(ctx, r); err != nil {
		printlnFn("Registration failed:", a.store.LastError())
		return err
	}

	printlnFn("Welcome,", a.store.User().Username)
	return nil
}

// Logout clears the session. Safe to call when already logged out.
func (a *App) Logout(ctx context.Context) error {
	if err := a.store.Logout(ctx); err != nil {
		printlnFn("Logout error:", err.Error())
		return err
	}
	printlnFn("Logged out")
	return nil
}

// Whoami shows the current session: user, profile basics, and the token's
// expiry when the credential happens to be a decodable JWT.
func (a *App) Whoami(ctx context.Context) error {
	u := a.store.User()
	if u == nil {
		printlnFn("Not logged in")
		return nil
	}

	printlnFn(fmt.Sprintf("%s <%s>", u.Username, u.Email))
	if u.FullName != "" {
		printlnFn("Name:", u.FullName)
	}
	if u.Location != "" {
		printlnFn("Location:", u.Location)
	}
	if tok, ok := a.store.Token(); ok {
		if exp, ok := tokenExpiry(tok); ok {
			printlnFn("Session valid until", exp.Local().Format("2006-01-02 15:04"))
		}
	}
	return nil
}
