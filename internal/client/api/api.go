// Package api implements the HTTP client for the Pankitchen backend.
//
// Every remote call is a single attempt: no retries, no backoff, no
// automatic token refresh. Failures are decoded once at this boundary into
// an *APIError and surfaced to the caller unchanged.
package api

import (
	"context"

	"github.com/pankitchen/pankitchen/internal/client/models"
)

// Client is the surface of the remote API consumed by the service layer.
type Client interface {
	// Login exchanges credentials for a token pair (form-encoded grant).
	Login(ctx context.Context, email, password string) (models.TokenPair, error)

	// Register creates a new account. It does not log the user in.
	Register(ctx context.Context, email, password string) (models.User, error)

	// RefreshToken exchanges a refresh token for a fresh pair.
	RefreshToken(ctx context.Context, refreshToken string) (models.TokenPair, error)

	// CurrentUser returns the identity behind the given access token.
	CurrentUser(ctx context.Context, accessToken string) (models.User, error)

	ListPosts(ctx context.Context) ([]models.Post, error)
	GetPost(ctx context.Context, id int64) (models.Post, error)
	ListUserPosts(ctx context.Context, userID int64) ([]models.Post, error)
	SearchPosts(ctx context.Context, query string) ([]models.Post, error)
	CreatePost(ctx context.Context, accessToken string, draft models.PostCreate) (models.Post, error)
	UpdatePost(ctx context.Context, accessToken string, id int64, draft models.PostCreate) (models.Post, error)
	DeletePost(ctx context.Context, accessToken string, id int64) error

	// UploadImage posts the file as a multipart "file" field and returns
	// the URL assigned by the server.
	UploadImage(ctx context.Context, fileName string, data []byte) (string, error)
}
