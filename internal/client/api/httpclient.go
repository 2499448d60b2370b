package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pankitchen/pankitchen/internal/client/models"
)

// HTTPClient talks to the Pankitchen REST backend.
type HTTPClient struct {
	baseURL string
	hc      *http.Client
}

// NewHTTPClient builds a client for the given base URL. A zero timeout
// leaves the transport default in place.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		hc:      &http.Client{Timeout: timeout},
	}
}

func (c *HTTPClient) url(path string) string {
	return c.baseURL + path
}

// do executes the request, decodes error responses into *APIError, and
// unmarshals 2xx bodies into out (when out is non-nil).
func (c *HTTPClient) do(req *http.Request, out any) error {
	resp, err := c.hc.Do(req)
	if err != nil {
		return &APIError{Kind: KindNetwork, Detail: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// decodeError turns a non-2xx response into an *APIError, extracting the
// server's "detail" message when the body carries one.
func decodeError(resp *http.Response) error {
	apiErr := &APIError{Kind: kindForStatus(resp.StatusCode), Status: resp.StatusCode}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err != nil || len(body) == 0 {
		return apiErr
	}

	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Detail != "" {
		apiErr.Detail = payload.Detail
	}
	return apiErr
}

func (c *HTTPClient) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url(path), nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *HTTPClient) sendJSON(ctx context.Context, method, path, accessToken string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.url(path), bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}
	return c.do(req, out)
}

// Login sends the form-encoded OAuth2 password grant to /token.
func (c *HTTPClient) Login(ctx context.Context, email, password string) (models.TokenPair, error) {
	form := url.Values{}
	form.Set("username", email)
	form.Set("password", password)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url("/token"), strings.NewReader(form.Encode()))
	if err != nil {
		return models.TokenPair{}, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	var pair models.TokenPair
	if err := c.do(req, &pair); err != nil {
		return models.TokenPair{}, err
	}
	return pair, nil
}

func (c *HTTPClient) Register(ctx context.Context, email, password string) (models.User, error) {
	in := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{Email: email, Password: password}

	var user models.User
	if err := c.sendJSON(ctx, http.MethodPost, "/users/", "", in, &user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// RefreshToken posts to /token/refresh/ with the refresh token carried as a
// query parameter, matching the backend's contract.
func (c *HTTPClient) RefreshToken(ctx context.Context, refreshToken string) (models.TokenPair, error) {
	path := "/token/refresh/?refresh_token=" + url.QueryEscape(refreshToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url(path), nil)
	if err != nil {
		return models.TokenPair{}, err
	}

	var pair models.TokenPair
	if err := c.do(req, &pair); err != nil {
		return models.TokenPair{}, err
	}
	return pair, nil
}

func (c *HTTPClient) CurrentUser(ctx context.Context, accessToken string) (models.User, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url("/users/me/"), nil)
	if err != nil {
		return models.User{}, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	var user models.User
	if err := c.do(req, &user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (c *HTTPClient) ListPosts(ctx context.Context) ([]models.Post, error) {
	var posts []models.Post
	if err := c.getJSON(ctx, "/posts/", &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (c *HTTPClient) GetPost(ctx context.Context, id int64) (models.Post, error) {
	var post models.Post
	if err := c.getJSON(ctx, fmt.Sprintf("/posts/%d", id), &post); err != nil {
		return models.Post{}, err
	}
	return post, nil
}

func (c *HTTPClient) ListUserPosts(ctx context.Context, userID int64) ([]models.Post, error) {
	var posts []models.Post
	if err := c.getJSON(ctx, fmt.Sprintf("/users/%d/posts/", userID), &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (c *HTTPClient) SearchPosts(ctx context.Context, query string) ([]models.Post, error) {
	var posts []models.Post
	path := "/search/posts/?query=" + url.QueryEscape(query)
	if err := c.getJSON(ctx, path, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (c *HTTPClient) CreatePost(ctx context.Context, accessToken string, draft models.PostCreate) (models.Post, error) {
	var post models.Post
	if err := c.sendJSON(ctx, http.MethodPost, "/posts/", accessToken, draft, &post); err != nil {
		return models.Post{}, err
	}
	return post, nil
}

func (c *HTTPClient) UpdatePost(ctx context.Context, accessToken string, id int64, draft models.PostCreate) (models.Post, error) {
	var post models.Post
	path := fmt.Sprintf("/posts/%d", id)
	if err := c.sendJSON(ctx, http.MethodPut, path, accessToken, draft, &post); err != nil {
		return models.Post{}, err
	}
	return post, nil
}

func (c *HTTPClient) DeletePost(ctx context.Context, accessToken string, id int64) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.url(fmt.Sprintf("/posts/%d", id)), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	return c.do(req, nil)
}

func (c *HTTPClient) UploadImage(ctx context.Context, fileName string, data []byte) (string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	fw, err := mw.CreateFormFile("file", fileName)
	if err != nil {
		return "", err
	}
	if _, err := fw.Write(data); err != nil {
		return "", err
	}
	if err := mw.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url("/upload-image/"), &buf)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	var out struct {
		URL string `json:"url"`
	}
	if err := c.do(req, &out); err != nil {
		return "", err
	}
	return out.URL, nil
}
