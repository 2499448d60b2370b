package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/pankitchen/pankitchen/internal/client/models"
)

// capturePrintln replaces printlnFn and returns a collector of output lines.
func capturePrintln(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(a ...any) {
		lines = append(lines, strings.TrimRight(fmt.Sprintln(a...), "\n"))
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func stubInputs(t *testing.T, texts []string, password []byte) {
	t.Helper()
	origST, origGP, origML := getSimpleText, getPassword, getMultiline

	i := 0
	next := func() string {
		if i >= len(texts) {
			return ""
		}
		s := texts[i]
		i++
		return s
	}

	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) { return next(), nil }
	getMultiline = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) { return next(), nil }
	getPassword = func(_ io.Writer) ([]byte, error) { return append([]byte(nil), password...), nil }

	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
		getMultiline = origML
	})
}

type fakeAuth struct {
	loginUser string
	loginPass []byte
	loginErr  error

	regUser string
	regErr  error

	user    models.User
	userErr error

	refreshed  string
	refreshErr error

	logoutCalled bool
	logoutErr    error

	token    string
	tokenErr error
}

func (f *fakeAuth) Login(_ context.Context, email string, password []byte) error {
	f.loginUser, f.loginPass = email, append([]byte(nil), password...)
	return f.loginErr
}

func (f *fakeAuth) Register(_ context.Context, email string, password []byte) error {
	f.regUser = email
	return f.regErr
}

func (f *fakeAuth) CurrentUser(context.Context) (models.User, error) {
	return f.user, f.userErr
}

func (f *fakeAuth) RefreshAccessToken(context.Context) (string, error) {
	return f.refreshed, f.refreshErr
}

func (f *fakeAuth) Logout(context.Context) error {
	f.logoutCalled = true
	return f.logoutErr
}

func (f *fakeAuth) AccessToken(context.Context) (string, error) {
	return f.token, f.tokenErr
}

type fakePosts struct {
	posts   []models.Post
	post    models.Post
	err     error
	created models.PostCreate
	image   string

	updatedID  int64
	deletedIDs []int64
	searched   string
	byUser     int64
}

func (f *fakePosts) List(context.Context) ([]models.Post, error) {
	return f.posts, f.err
}

func (f *fakePosts) Get(_ context.Context, id int64) (models.Post, error) {
	return f.post, f.err
}

func (f *fakePosts) Search(_ context.Context, query string) ([]models.Post, error) {
	f.searched = query
	return f.posts, f.err
}

func (f *fakePosts) ListByUser(_ context.Context, userID int64) ([]models.Post, error) {
	f.byUser = userID
	return f.posts, f.err
}

func (f *fakePosts) Create(_ context.Context, draft models.PostCreate, imagePath string) (models.Post, error) {
	f.created, f.image = draft, imagePath
	return f.post, f.err
}

func (f *fakePosts) Update(_ context.Context, id int64, draft models.PostCreate) (models.Post, error) {
	f.updatedID = id
	return f.post, f.err
}

func (f *fakePosts) Delete(_ context.Context, id int64) error {
	f.deletedIDs = append(f.deletedIDs, id)
	return f.err
}
