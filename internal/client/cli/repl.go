package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/opencampus/campusctl/internal/client/api"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	expireSession(ctx context.Context)
	Login(ctx context.Context) error
	Register(ctx context.Context) error
	Forgot(ctx context.Context) error
	Reset(ctx context.Context) error
	Dashboard(ctx context.Context) error
	Explore(ctx context.Context) error
	Enroll(ctx context.Context, args []string) error
	Assignments(ctx context.Context, args []string) error
	Quizzes(ctx context.Context, args []string) error
	Profile(ctx context.Context) error
	SetName(ctx context.Context) error
	Avatar(ctx context.Context, args []string) error
	Logout(ctx context.Context) error
}

// requireLogin is the access gate in front of the authenticated commands.
// Anonymous users are redirected to the login prompt instead of running the
// handler; a handler failing with a session-expired error tears the session
// down and redirects the same way.
func requireLogin(ctx context.Context, a execIface, fn func(context.Context) error) {
	if !a.isLoggedIn() {
		printlnFn("Please log in first (type 'login').")
		return
	}
	if err := fn(ctx); errors.Is(err, api.ErrSessionExpired) {
		a.expireSession(ctx)
		printlnFn("Your session has expired, please log in again.")
	}
}

// runREPL starts a read–eval–print loop for the campusctl client.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help           — show available commands
//	  - register       — create an account
//	  - login          — authenticate
//	  - forgot         — request a password reset
//	  - reset          — confirm a password reset with a PIN
//	  - exit | quit    — leave the program
//
//	Logged in:
//	  - help                    — show available commands
//	  - dashboard               — list enrolled courses
//	  - explore                 — browse the course catalog
//	  - enroll <course-id>      — enroll in a course
//	  - assignments <course-id> — list assignments for a course
//	  - quizzes <course-id>     — list quizzes for a course
//	  - profile                 — show the profile
//	  - setname                 — update the profile name/bio
//	  - avatar <path>           — upload a profile picture
//	  - logout                  — log out
//	  - exit | quit             — leave the program
//
// Handlers log their own errors; the loop only reacts to session expiry,
// which redirects to the login prompt.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("campus %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: dashboard, explore, enroll, assignments, quizzes, profile, setname, avatar, logout, exit")
			} else {
				printlnFn("Available commands: register, login, forgot, reset, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "forgot":
			_ = a.Forgot(ctx)

		case "reset":
			_ = a.Reset(ctx)

		case "dashboard":
			requireLogin(ctx, a, a.Dashboard)

		case "explore":
			requireLogin(ctx, a, a.Explore)

		case "enroll":
			requireLogin(ctx, a, func(ctx context.Context) error { return a.Enroll(ctx, args) })

		case "assignments":
			requireLogin(ctx, a, func(ctx context.Context) error { return a.Assignments(ctx, args) })

		case "quizzes":
			requireLogin(ctx, a, func(ctx context.Context) error { return a.Quizzes(ctx, args) })

		case "profile":
			requireLogin(ctx, a, a.Profile)

		case "setname":
			requireLogin(ctx, a, a.SetName)

		case "avatar":
			requireLogin(ctx, a, func(ctx context.Context) error { return a.Avatar(ctx, args) })

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
