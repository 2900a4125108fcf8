package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Dashboard(ctx context.Context) error
	Refresh(ctx context.Context) error
	Deposit(ctx context.Context) error
	History(ctx context.Context) error
	Logout(ctx context.Context) error
}

// runREPL reads one command per line from r and dispatches it to a.
//
// The prompt shows the current status (from statusFn). Commands that need a
// session are refused while signed out, and register/login are refused while
// signed in. The loop exits on end of input or when the user types "exit" or
// "quit".
//
// Errors returned by command handlers are ignored here; handlers report
// their own failures to the user.
func runREPL(ctx context.Context, a execIface, statusFn func() string, r *bufio.Reader, w io.Writer) {
	for {
		fmt.Fprintf(w, "pb%s> ", prefixSpace(statusFn()))

		line, err := r.ReadString('\n')
		if err != nil && line == "" {
			fmt.Fprintln(w)
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := strings.ToLower(parts[0])

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Fprintln(w, "Available commands: dashboard, refresh, deposit, history, logout, exit")
			} else {
				fmt.Fprintln(w, "Available commands: register, login, exit")
			}

		case "register", "login":
			if a.isLoggedIn() {
				fmt.Fprintln(w, "Already logged in. Use 'logout' first.")
				continue
			}
			if cmd == "register" {
				_ = a.Register(ctx)
			} else {
				_ = a.Login(ctx)
			}

		case "dashboard", "refresh", "deposit", "history", "logout":
			if !a.isLoggedIn() {
				fmt.Fprintln(w, "Please log in first.")
				continue
			}
			switch cmd {
			case "dashboard":
				_ = a.Dashboard(ctx)
			case "refresh":
				_ = a.Refresh(ctx)
			case "deposit":
				_ = a.Deposit(ctx)
			case "history":
				_ = a.History(ctx)
			case "logout":
				_ = a.Logout(ctx)
			}

		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return

		default:
			fmt.Fprintln(w, "Unknown command:", cmd)
		}
	}
}

func prefixSpace(s string) string {
	if s == "" {
		return ""
	}
	return " " + s
}
