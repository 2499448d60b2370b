// Package services contains application services for the Pankitchen client.
// This file defines the authentication service: login, registration,
// identity lookup, token refresh, and logout.
package services

import (
	"context"
	"fmt"

	"github.com/pankitchen/pankitchen/internal/client/api"
	"github.com/pankitchen/pankitchen/internal/client/models"
	"github.com/pankitchen/pankitchen/internal/client/repositories/credentials"
	"github.com/pankitchen/pankitchen/internal/logging"
)

// AuthService defines the session operations for the CLI.
//
// Contract:
//   - Login: exchange credentials for a token pair and persist it.
//   - Register: create a new account; does not log in.
//   - CurrentUser: fetch identity for the stored access token; fails with
//     api.ErrAuthRequired before any network call when no token is stored.
//   - RefreshAccessToken: exchange the stored refresh token for a new pair;
//     clears all stored tokens on failure (forced logout).
//   - Logout: clear stored tokens; purely client-side.
//   - AccessToken: read the stored access token ("" when absent).
//
// Every remote call is a single attempt. Errors are propagated to the
// caller, which owns user-visible messaging and manual retry.
type AuthService interface {
	Login(ctx context.Context, email string, password []byte) error
	Register(ctx context.Context, email string, password []byte) error
	CurrentUser(ctx context.Context) (models.User, error)
	RefreshAccessToken(ctx context.Context) (string, error)
	Logout(ctx context.Context) error
	AccessToken(ctx context.Context) (string, error)
}

type authService struct {
	client api.Client
	creds  credentials.Repository
	log    logging.Logger
}

// NewAuthService constructs an AuthService bound to the given API client
// and credential repository.
func NewAuthService(client api.Client, creds credentials.Repository, log logging.Logger) AuthService {
	return &authService{client: client, creds: creds, log: log.With("component", "auth")}
}

// Login sends the credentials to the token endpoint and persists the
// returned pair. On failure nothing is written and the error is propagated.
func (a *authService) Login(ctx context.Context, email string, password []byte) error {
	pair, err := a.client.Login(ctx, email, string(password))
	if err != nil {
		return fmt.Errorf("login error: %w", err)
	}

	if err := a.creds.Save(ctx, pair.AccessToken, pair.RefreshToken); err != nil {
		return fmt.Errorf("token saving error: %w", err)
	}

	a.log.Info(ctx, "logged in", "email", email)
	return nil
}

// Register creates a new account. The user still has to log in afterwards.
func (a *authService) Register(ctx context.Context, email string, password []byte) error {
	if _, err := a.client.Register(ctx, email, string(password)); err != nil {
		return fmt.Errorf("registration error: %w", err)
	}
	return nil
}

// CurrentUser looks up the identity behind the stored access token.
// An expired token is NOT refreshed here; the failure is surfaced so the
// user can re-authenticate (or run refresh) explicitly.
func (a *authService) CurrentUser(ctx context.Context) (models.User, error) {
	token, err := a.creds.Access(ctx)
	if err != nil {
		return models.User{}, fmt.Errorf("token read error: %w", err)
	}
	if token == "" {
		return models.User{}, api.ErrAuthRequired
	}

	user, err := a.client.CurrentUser(ctx, token)
	if err != nil {
		return models.User{}, fmt.Errorf("identity lookup error: %w", err)
	}
	return user, nil
}

// RefreshAccessToken exchanges the stored refresh token for a new pair and
// returns the new access token. A rejected refresh token is assumed
// unrecoverable: on any failure both stored tokens are cleared before the
// error is propagated.
func (a *authService) RefreshAccessToken(ctx context.Context) (string, error) {
	refresh, err := a.creds.Refresh(ctx)
	if err != nil {
		return "", fmt.Errorf("token read error: %w", err)
	}
	if refresh == "" {
		return "", api.ErrAuthRequired
	}

	pair, err := a.client.RefreshToken(ctx, refresh)
	if err != nil {
		if clearErr := a.creds.Clear(ctx); clearErr != nil {
			a.log.Error(ctx, "clearing tokens after failed refresh", "error", clearErr)
		}
		a.log.Warn(ctx, "token refresh failed, forced logout")
		return "", fmt.Errorf("token refresh error: %w", err)
	}

	if err := a.creds.Save(ctx, pair.AccessToken, pair.RefreshToken); err != nil {
		return "", fmt.Errorf("token saving error: %w", err)
	}
	return pair.AccessToken, nil
}

// Logout clears the stored token pair. No remote endpoint is involved.
func (a *authService) Logout(ctx context.Context) error {
	return a.creds.Clear(ctx)
}

// AccessToken reads the stored access token without touching the network.
func (a *authService) AccessToken(ctx context.Context) (string, error) {
	return a.creds.Access(ctx)
}
