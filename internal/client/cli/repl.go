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
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error
	Browse(ctx context.Context) error
	ShowNeed(ctx context.Context, id string) error
	PostNeed(ctx context.Context) error
	MyNeeds(ctx context.Context) error
	PlaceBid(ctx context.Context, needID string) error
	MyBids(ctx context.Context) error
	Messages(ctx context.Context) error
	Profile(ctx context.Context, id string) error
	EditProfile(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the needmarket CLI.
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
//	  - browse         — list open needs (public)
//	  - exit | quit    — leave the program
//
//	Logged in:
//	  - help           — show available commands
//	  - whoami         — show the current session
//	  - browse         — list open needs
//	  - need <id>      — show one need with its bids
//	  - post           — post a new need
//	  - myneeds        — list needs I posted
//	  - bid <need-id>  — place a bid on a need
//	  - mybids         — list my bids
//	  - messages       — read and send direct messages
//	  - profile [id]   — show a profile (own by default)
//	  - editprofile    — edit my profile
//	  - logout         — log out
//	  - exit | quit    — leave the program
//
// Any errors returned by command handlers are ignored here; handlers should
// report their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("nm> %s > ", statusFn()))
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
				printlnFn("Available commands: whoami, browse, need <id>, post, myneeds, bid <need-id>, mybids, messages, profile [id], editprofile, logout, exit")
			} else {
				printlnFn("Available commands: register, login, browse, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "whoami":
			_ = a.Whoami(ctx)

		case "b", "browse":
			_ = a.Browse(ctx)

		case "need":
			if len(args) == 0 {
				printlnFn("Usage: need <id>")
				continue
			}
			_ = a.ShowNeed(ctx, args[0])

		case "post":
			_ = a.PostNeed(ctx)

		case "myneeds":
			_ = a.MyNeeds(ctx)

		case "bid":
			if len(args) == 0 {
				printlnFn("Usage: bid <need-id>")
				continue
			}
			_ = a.PlaceBid(ctx, args[0])

		case "mybids":
			_ = a.MyBids(ctx)

		case "m", "messages":
			_ = a.Messages(ctx)

		case "profile":
			id := ""
			if len(args) > 0 {
				id = args[0]
			}
			_ = a.Profile(ctx, id)

		case "editprofile", "edit-profile":
			_ = a.EditProfile(ctx)

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
