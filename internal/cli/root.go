package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it
// with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a
// lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Wallet(ctx context.Context) error
	Balance(ctx context.Context) error
	Mine(ctx context.Context) error
	StopMine(ctx context.Context) error
	Send(ctx context.Context) error
	History(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the wallet console.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers
// report their own errors. This keeps the loop resilient and focused on
// I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("torq %s> ", statusFn()))
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
				printlnFn("Available commands: wallet, balance, mine, stopmine, send, history, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register", "login":
			if a.isLoggedIn() {
				printlnFn("Already logged in. Use 'logout' first.")
				continue
			}
			if cmd == "register" {
				_ = a.Register(ctx)
			} else {
				_ = a.Login(ctx)
			}

		case "wallet", "b", "balance", "mine", "stopmine", "send", "h", "history", "logout":
			if !a.isLoggedIn() {
				printlnFn("Please log in first.")
				continue
			}
			switch cmd {
			case "wallet":
				_ = a.Wallet(ctx)
			case "b", "balance":
				_ = a.Balance(ctx)
			case "mine":
				_ = a.Mine(ctx)
			case "stopmine":
				_ = a.StopMine(ctx)
			case "send":
				_ = a.Send(ctx)
			case "h", "history":
				_ = a.History(ctx)
			case "logout":
				_ = a.Logout(ctx)
			}

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

// Root runs the REPL over stdin until the user exits.
func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to the Torq wallet console (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
