package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/pankitchen/pankitchen/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts the user for an email and password and attempts to create
// a new account via the AuthService.
//
// On success it prints a confirmation and returns nil; the user still has
// to log in. The password byte slice is wiped before returning.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.authService.Register(ctx, email, password); err != nil {
		return err
	}

	printlnFn("Account created. You can now log in.")
	return nil
}

// Login prompts the user for credentials and tries to authenticate. On
// success the token pair is persisted by the AuthService and the app enters
// the logged-in state. The password is wiped before returning.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.authService.Login(ctx, email, password); err != nil {
		return err
	}

	a.loggedIn = true
	printlnFn("Login successful")
	return nil
}

// Logout clears the stored token pair. It is purely client-side.
func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		return err
	}
	a.loggedIn = false
	printlnFn("Logged out")
	return nil
}

// WhoAmI fetches and prints the identity behind the stored access token.
func (a *App) WhoAmI(ctx context.Context) error {
	user, err := a.authService.CurrentUser(ctx)
	if err != nil {
		return err
	}

	printlnFn(fmt.Sprintf("#%d %s (active: %t)", user.ID, user.Email, user.IsActive))
	return nil
}

// Refresh manually exchanges the stored refresh token for a new pair. When
// the refresh is rejected the AuthService clears all tokens, so the app
// drops back to the logged-out state.
func (a *App) Refresh(ctx context.Context) error {
	if _, err := a.authService.RefreshAccessToken(ctx); err != nil {
		a.loggedIn = false
		return err
	}

	printlnFn("Tokens refreshed")
	return nil
}
