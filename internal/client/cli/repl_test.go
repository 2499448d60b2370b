package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// stubExec records which commands the REPL dispatched.
type stubExec struct {
	loggedIn bool
	calls    []string
	errs     map[string]error
}

func (s *stubExec) record(name string) error {
	s.calls = append(s.calls, name)
	if s.errs != nil {
		return s.errs[name]
	}
	return nil
}

func (s *stubExec) isLoggedIn() bool               { return s.loggedIn }
func (s *stubExec) Register(context.Context) error { return s.record("register") }
func (s *stubExec) Login(context.Context) error    { return s.record("login") }
func (s *stubExec) Logout(context.Context) error   { return s.record("logout") }
func (s *stubExec) WhoAmI(context.Context) error   { return s.record("whoami") }
func (s *stubExec) Status(context.Context) error   { return s.record("status") }
func (s *stubExec) Refresh(context.Context) error  { return s.record("refresh") }
func (s *stubExec) List(context.Context) error     { return s.record("list") }
func (s *stubExec) Show(context.Context) error     { return s.record("show") }
func (s *stubExec) MyPosts(context.Context) error  { return s.record("myposts") }
func (s *stubExec) Search(context.Context) error   { return s.record("search") }
func (s *stubExec) Create(context.Context) error   { return s.record("post") }
func (s *stubExec) Update(context.Context) error   { return s.record("update") }
func (s *stubExec) Delete(context.Context) error   { return s.record("delete") }

func runWithInput(t *testing.T, s *stubExec, input string) *[]string {
	t.Helper()
	out := capturePrintln(t)
	scanner := bufio.NewScanner(strings.NewReader(input))
	runREPL(context.Background(), s, func() string { return "guest" }, scanner)
	return out
}

func TestREPL_DispatchesCommands(t *testing.T) {
	s := &stubExec{}
	runWithInput(t, s, "login\nlist\npost\ndelete\nlogout\nexit\n")
	assert.Equal(t, []string{"login", "list", "post", "delete", "logout"}, s.calls)
}

func TestREPL_ListShortcut(t *testing.T) {
	s := &stubExec{}
	runWithInput(t, s, "l\nquit\n")
	assert.Equal(t, []string{"list"}, s.calls)
}

func TestREPL_UnknownCommandReported(t *testing.T) {
	s := &stubExec{}
	out := runWithInput(t, s, "frobnicate\nexit\n")
	assert.Contains(t, strings.Join(*out, "\n"), "Unknown command: frobnicate")
	assert.Empty(t, s.calls)
}

func TestREPL_EmptyLinesIgnored(t *testing.T) {
	s := &stubExec{}
	runWithInput(t, s, "\n   \nstatus\nexit\n")
	assert.Equal(t, []string{"status"}, s.calls)
}

func TestREPL_HandlerErrorPrintedInline(t *testing.T) {
	s := &stubExec{errs: map[string]error{"delete": assert.AnError}}
	out := runWithInput(t, s, "delete\nexit\n")
	assert.Contains(t, strings.Join(*out, "\n"), "Error:")
}

func TestREPL_ExitsOnEOF(t *testing.T) {
	s := &stubExec{}
	runWithInput(t, s, "status\n") // no exit, scanner hits EOF
	assert.Equal(t, []string{"status"}, s.calls)
}

func TestREPL_HelpDependsOnLoginState(t *testing.T) {
	loggedOut := runWithInput(t, &stubExec{}, "help\nexit\n")
	assert.Contains(t, strings.Join(*loggedOut, "\n"), "register, login")

	loggedIn := runWithInput(t, &stubExec{loggedIn: true}, "help\nexit\n")
	assert.Contains(t, strings.Join(*loggedIn, "\n"), "logout")
}
