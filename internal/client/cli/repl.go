package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = func(a ...any) { fmt.Println(a...) }

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Status(ctx context.Context) error
	Refresh(ctx context.Context) error
	List(ctx context.Context) error
	Show(ctx context.Context) error
	MyPosts(ctx context.Context) error
	Search(ctx context.Context) error
	Create(ctx context.Context) error
	Update(ctx context.Context) error
	Delete(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop for the Pankitchen CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Errors returned by command handlers are printed inline; retrying is
// always manual (re-run the command).
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	report := func(err error) {
		if err != nil {
			printlnFn("Error:", err)
		}
	}

	for {
		printlnFn(fmt.Sprintf("pankitchen (%s) > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: (l)ist, show, search, myposts, post, update, delete, whoami, status, refresh, logout, exit")
			} else {
				printlnFn("Available commands: register, login, (l)ist, show, search, status, exit")
			}

		case "register":
			report(a.Register(ctx))

		case "login":
			report(a.Login(ctx))

		case "logout":
			report(a.Logout(ctx))

		case "whoami":
			report(a.WhoAmI(ctx))

		case "status":
			report(a.Status(ctx))

		case "refresh":
			report(a.Refresh(ctx))

		case "l", "list":
			report(a.List(ctx))

		case "show":
			report(a.Show(ctx))

		case "myposts":
			report(a.MyPosts(ctx))

		case "search":
			report(a.Search(ctx))

		case "post":
			report(a.Create(ctx))

		case "update":
			report(a.Update(ctx))

		case "delete":
			report(a.Delete(ctx))

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
