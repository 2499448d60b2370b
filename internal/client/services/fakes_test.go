package services

import (
	"context"
	"sync"

	"github.com/pankitchen/pankitchen/internal/client/models"
)

// fakeClient implements api.Client and records every call.
type fakeClient struct {
	loginPair models.TokenPair
	loginErr  error
	loginUser string
	loginPass string

	registerErr  error
	registerUser models.User

	refreshPair  models.TokenPair
	refreshErr   error
	refreshToken string

	currentUser      models.User
	currentUserErr   error
	currentUserToken string
	currentUserCalls int

	posts    []models.Post
	listErr  error
	post     models.Post
	postErr  error
	searched string

	createdToken string
	createdDraft models.PostCreate
	createErr    error

	updatedID    int64
	updatedDraft models.PostCreate
	updateErr    error

	deletedToken string
	deletedIDs   []int64
	deleteErr    error

	uploadedName string
	uploadedData []byte
	uploadURL    string
	uploadErr    error
}

func (f *fakeClient) Login(_ context.Context, email, password string) (models.TokenPair, error) {
	f.loginUser, f.loginPass = email, password
	return f.loginPair, f.loginErr
}

func (f *fakeClient) Register(_ context.Context, email, password string) (models.User, error) {
	return f.registerUser, f.registerErr
}

func (f *fakeClient) RefreshToken(_ context.Context, refreshToken string) (models.TokenPair, error) {
	f.refreshToken = refreshToken
	return f.refreshPair, f.refreshErr
}

func (f *fakeClient) CurrentUser(_ context.Context, accessToken string) (models.User, error) {
	f.currentUserCalls++
	f.currentUserToken = accessToken
	return f.currentUser, f.currentUserErr
}

func (f *fakeClient) ListPosts(context.Context) ([]models.Post, error) {
	return f.posts, f.listErr
}

func (f *fakeClient) GetPost(_ context.Context, id int64) (models.Post, error) {
	return f.post, f.postErr
}

func (f *fakeClient) ListUserPosts(_ context.Context, userID int64) ([]models.Post, error) {
	return f.posts, f.listErr
}

func (f *fakeClient) SearchPosts(_ context.Context, query string) ([]models.Post, error) {
	f.searched = query
	return f.posts, f.listErr
}

func (f *fakeClient) CreatePost(_ context.Context, accessToken string, draft models.PostCreate) (models.Post, error) {
	f.createdToken, f.createdDraft = accessToken, draft
	return f.post, f.createErr
}

func (f *fakeClient) UpdatePost(_ context.Context, accessToken string, id int64, draft models.PostCreate) (models.Post, error) {
	f.updatedID, f.updatedDraft = id, draft
	return f.post, f.updateErr
}

func (f *fakeClient) DeletePost(_ context.Context, accessToken string, id int64) error {
	f.deletedToken = accessToken
	f.deletedIDs = append(f.deletedIDs, id)
	return f.deleteErr
}

func (f *fakeClient) UploadImage(_ context.Context, fileName string, data []byte) (string, error) {
	f.uploadedName = fileName
	f.uploadedData = append([]byte(nil), data...)
	return f.uploadURL, f.uploadErr
}

// memCreds is an in-memory credentials.Repository.
type memCreds struct {
	mu      sync.Mutex
	access  string
	refresh string

	accessErr error
	saveErr   error
	clearErr  error

	saves  int
	clears int
}

func (m *memCreds) Access(context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.access, m.accessErr
}

func (m *memCreds) Refresh(context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.refresh, nil
}

func (m *memCreds) Save(_ context.Context, access, refresh string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saves++
	m.access, m.refresh = access, refresh
	return nil
}

func (m *memCreds) Clear(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.clearErr != nil {
		return m.clearErr
	}
	m.clears++
	m.access, m.refresh = "", ""
	return nil
}
