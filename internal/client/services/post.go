package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/pankitchen/pankitchen/internal/client/api"
	"github.com/pankitchen/pankitchen/internal/client/models"
	"github.com/pankitchen/pankitchen/internal/client/repositories/credentials"
	"github.com/pankitchen/pankitchen/internal/logging"
)

// ErrValidation is returned before any network call when a post draft is
// missing a required field.
var ErrValidation = errors.New("title, description and bread type are required")

// PostService exposes the feed operations. Listing and reading posts need
// no authentication; create/update/delete fetch the stored access token
// immediately before the request and fail fast with api.ErrAuthRequired
// when it is absent. Expired tokens are not refreshed transparently.
type PostService interface {
	List(ctx context.Context) ([]models.Post, error)
	Get(ctx context.Context, id int64) (models.Post, error)
	Search(ctx context.Context, query string) ([]models.Post, error)
	ListByUser(ctx context.Context, userID int64) ([]models.Post, error)
	Create(ctx context.Context, draft models.PostCreate, imagePath string) (models.Post, error)
	Update(ctx context.Context, id int64, draft models.PostCreate) (models.Post, error)
	Delete(ctx context.Context, id int64) error
}

type postService struct {
	client api.Client
	creds  credentials.Repository
	log    logging.Logger
}

// NewPostService constructs a PostService bound to the given API client and
// credential repository.
func NewPostService(client api.Client, creds credentials.Repository, log logging.Logger) PostService {
	return &postService{client: client, creds: creds, log: log.With("component", "posts")}
}

func (p *postService) accessToken(ctx context.Context) (string, error) {
	token, err := p.creds.Access(ctx)
	if err != nil {
		return "", fmt.Errorf("token read error: %w", err)
	}
	if token == "" {
		return "", api.ErrAuthRequired
	}
	return token, nil
}

func (p *postService) List(ctx context.Context) ([]models.Post, error) {
	return p.client.ListPosts(ctx)
}

func (p *postService) Get(ctx context.Context, id int64) (models.Post, error) {
	return p.client.GetPost(ctx, id)
}

func (p *postService) Search(ctx context.Context, query string) ([]models.Post, error) {
	return p.client.SearchPosts(ctx, query)
}

func (p *postService) ListByUser(ctx context.Context, userID int64) ([]models.Post, error) {
	return p.client.ListUserPosts(ctx, userID)
}

// Create validates the draft, optionally uploads an image, and posts the
// result. The image (when given) is read from imagePath, uploaded under a
// random server-safe name, and attached as the first photo.
func (p *postService) Create(ctx context.Context, draft models.PostCreate, imagePath string) (models.Post, error) {
	if strings.TrimSpace(draft.Title) == "" ||
		strings.TrimSpace(draft.Description) == "" ||
		strings.TrimSpace(draft.BreadType) == "" {
		return models.Post{}, ErrValidation
	}

	token, err := p.accessToken(ctx)
	if err != nil {
		return models.Post{}, err
	}

	if imagePath != "" {
		data, err := os.ReadFile(imagePath)
		if err != nil {
			return models.Post{}, fmt.Errorf("image read error: %w", err)
		}

		name := uuid.NewString() + strings.ToLower(filepath.Ext(imagePath))
		url, err := p.client.UploadImage(ctx, name, data)
		if err != nil {
			return models.Post{}, fmt.Errorf("image upload error: %w", err)
		}
		draft.Photos = []models.PhotoCreate{{URL: url, Order: 1}}
		p.log.Info(ctx, "image uploaded", "url", url)
	}

	post, err := p.client.CreatePost(ctx, token, draft)
	if err != nil {
		return models.Post{}, fmt.Errorf("post creation error: %w", err)
	}
	return post, nil
}

func (p *postService) Update(ctx context.Context, id int64, draft models.PostCreate) (models.Post, error) {
	if strings.TrimSpace(draft.Title) == "" ||
		strings.TrimSpace(draft.Description) == "" ||
		strings.TrimSpace(draft.BreadType) == "" {
		return models.Post{}, ErrValidation
	}

	token, err := p.accessToken(ctx)
	if err != nil {
		return models.Post{}, err
	}

	post, err := p.client.UpdatePost(ctx, token, id, draft)
	if err != nil {
		return models.Post{}, fmt.Errorf("post update error: %w", err)
	}
	return post, nil
}

func (p *postService) Delete(ctx context.Context, id int64) error {
	token, err := p.accessToken(ctx)
	if err != nil {
		return err
	}

	if err := p.client.DeletePost(ctx, token, id); err != nil {
		return fmt.Errorf("post deletion error: %w", err)
	}
	return nil
}
