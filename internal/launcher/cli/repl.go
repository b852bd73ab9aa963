package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests provide a stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Servers(ctx context.Context) error
	Connect(ctx context.Context) error
	Download(ctx context.Context) error
	Graphics(ctx context.Context) error
	Controls(ctx context.Context) error
}

// runREPL is the launcher's command loop. It reads a line, parses the first
// token, and dispatches to methods on a. Commands that require a session are
// refused while logged out. The loop exits on scanner EOF or on
// "exit"/"quit". Handler errors are ignored here; handlers report their own
// problems to the user.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("majestic> %s > ", statusFn()))
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
				printlnFn("Available commands: servers, connect, download, graphics, controls, whoami, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			if requireSession(a) {
				_ = a.Logout(ctx)
			}

		case "whoami":
			if requireSession(a) {
				_ = a.WhoAmI(ctx)
			}

		case "s", "servers":
			if requireSession(a) {
				_ = a.Servers(ctx)
			}

		case "connect":
			if requireSession(a) {
				_ = a.Connect(ctx)
			}

		case "download":
			if requireSession(a) {
				_ = a.Download(ctx)
			}

		case "graphics":
			if requireSession(a) {
				_ = a.Graphics(ctx)
			}

		case "controls":
			if requireSession(a) {
				_ = a.Controls(ctx)
			}

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func requireSession(a execIface) bool {
	if !a.isLoggedIn() {
		printlnFn("Log in first (register or login).")
		return false
	}
	return true
}
