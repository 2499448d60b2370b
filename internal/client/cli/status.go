package cli

import (
	"context"

	"github.com/golang-jwt/jwt/v5"
)

// Status prints the local session state. The stored access token is decoded
// WITHOUT signature verification, purely to display its claims; whether the
// session is considered authenticated depends only on the token's presence,
// never on what this command shows.
func (a *App) Status(ctx context.Context) error {
	token, err := a.authService.AccessToken(ctx)
	if err != nil {
		return err
	}
	if token == "" {
		printlnFn("No session (logged out)")
		return nil
	}

	printlnFn("Access token stored")

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		printlnFn("Token is opaque (not a decodable JWT)")
		return nil
	}

	if sub, err := claims.GetSubject(); err == nil && sub != "" {
		printlnFn("Subject:", sub)
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		printlnFn("Expires:", exp.Time.String(), "(not checked locally)")
	}
	return nil
}
