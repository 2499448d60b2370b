package cli

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedTestToken(t *testing.T, sub string, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": sub,
		"exp": exp.Unix(),
	})
	s, err := token.SignedString([]byte("test-key"))
	require.NoError(t, err)
	return s
}

func TestStatus_DecodesClaimsWithoutVerification(t *testing.T) {
	out := capturePrintln(t)

	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	a := &App{authService: &fakeAuth{token: signedTestToken(t, "alice@example.org", exp)}}

	require.NoError(t, a.Status(context.Background()))

	joined := strings.Join(*out, "\n")
	assert.Contains(t, joined, "Access token stored")
	assert.Contains(t, joined, "alice@example.org")
	assert.Contains(t, joined, "Expires:")
}

func TestStatus_ExpiredTokenIsOnlyDisplayedNotActedOn(t *testing.T) {
	out := capturePrintln(t)

	// expired an hour ago; status must still just describe it
	a := &App{authService: &fakeAuth{token: signedTestToken(t, "alice@example.org", time.Now().Add(-time.Hour))}, loggedIn: true}

	require.NoError(t, a.Status(context.Background()))
	assert.True(t, a.isLoggedIn(), "status must not change session state")
	assert.Contains(t, strings.Join(*out, "\n"), "not checked locally")
}
