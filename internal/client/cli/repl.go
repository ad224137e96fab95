package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	isAdmin() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	List(ctx context.Context, args []string) error
	Mine(ctx context.Context) error
	Show(ctx context.Context, args []string) error
	Submit(ctx context.Context) error
	Refresh(ctx context.Context) error
	Status(ctx context.Context, args []string) error
	Leaderboard(ctx context.Context) error
	Notifications(ctx context.Context) error
	Read(ctx context.Context, args []string) error
	ReadAll(ctx context.Context) error
	Profile(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the ideatrack CLI.
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
//	  - login          — request a passcode and authenticate
//	  - exit | quit    — leave the program
//
//	Logged in:
//	  - help               — show available commands
//	  - list [stage]       — list ideas, optionally filtered by stage
//	  - mine               — list my ideas
//	  - show <id>          — show a single idea
//	  - submit             — submit a new idea (interactive)
//	  - refresh            — reload ideas from the server
//	  - board              — show the contributor leaderboard
//	  - notifications      — show the notification feed
//	  - read <id>          — mark a notification as read
//	  - readall            — mark all notifications as read
//	  - status <id> <stage>— move an idea to a new stage (reviewers)
//	  - profile            — show the logged-in user
//	  - logout             — log out
//	  - exit | quit        — leave the program
//
// Commands past login are only dispatched while a session is active, matching
// the help output; a second login requires an explicit logout first, so a
// device is never switched between users without the session store clearing
// the previous one. Errors returned by command handlers are printed by the
// handlers themselves; the loop ignores them to stay focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("it> %s > ", statusFn()))
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
				commands := "Available commands: (l)ist [stage], mine, show <id>, submit, refresh, board, notifications, read <id>, readall, profile, logout, exit"
				if a.isAdmin() {
					commands += ", status <id> <stage>"
				}
				printlnFn(commands)
			} else {
				printlnFn("Available commands: login, exit")
			}
			continue

		case "login":
			if a.isLoggedIn() {
				printlnFn("Already logged in; logout first.")
				continue
			}
			_ = a.Login(ctx)
			continue

		case "exit", "quit":
			printlnFn("Bye!")
			return
		}

		if !a.isLoggedIn() {
			printlnFn("Please login first.")
			continue
		}

		switch cmd {
		case "l", "list":
			_ = a.List(ctx, args)

		case "mine":
			_ = a.Mine(ctx)

		case "show":
			_ = a.Show(ctx, args)

		case "submit":
			_ = a.Submit(ctx)

		case "refresh":
			_ = a.Refresh(ctx)

		case "status":
			_ = a.Status(ctx, args)

		case "board", "leaderboard":
			_ = a.Leaderboard(ctx)

		case "notifications":
			_ = a.Notifications(ctx)

		case "read":
			_ = a.Read(ctx, args)

		case "readall":
			_ = a.ReadAll(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "logout":
			_ = a.Logout(ctx)

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
