package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	isAdmin() bool
	Go(ctx context.Context, path string) error
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	AdminLogin(ctx context.Context) error
	Logout(ctx context.Context) error
	List(ctx context.Context, page int) error
	Show(ctx context.Context, id int64) error
	Create(ctx context.Context) error
	Cancel(ctx context.Context, id int64) error
	Search(ctx context.Context, query string) error
	AdminList(ctx context.Context, page int) error
	Approve(ctx context.Context, id int64) error
	Reject(ctx context.Context, id int64) error
	SetStatus(ctx context.Context, id int64, status string) error
	Stats(ctx context.Context) error
}

const (
	helpSignedOut = "Available commands: login, register, admin-login, go <path>, stats, exit"
	helpUser      = "Available commands: (l)ist [page], show <id>, create, cancel <id>, search <query>, go <path>, logout, stats, exit"
	helpAdmin     = "Available commands: admin-list [page], approve <id>, reject <id>, status <id> <status>, go <path>, logout, stats, exit"
)

// runREPL starts a simple read–eval–print loop for the Travel Manager CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. Errors returned by handlers are printed and
// the loop continues. The loop exits on EOF or when the user types "exit"
// or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Always:
//	  - help                  : show available commands
//	  - go <path>             : navigate to a route
//	  - stats                 : show request metrics
//	  - exit | quit           : leave the program
//
//	Signed out:
//	  - login | register | admin-login
//
//	Signed in as a user:
//	  - list [page] | show <id> | create | cancel <id> | search <query> | logout
//
//	Signed in as an admin:
//	  - admin-list [page] | approve <id> | reject <id> | status <id> <status> | logout
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("travel %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && line != "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			switch {
			case !a.isLoggedIn():
				printlnFn(helpSignedOut)
			case a.isAdmin():
				printlnFn(helpAdmin)
			default:
				printlnFn(helpUser)
			}

		case "go":
			if len(args) != 1 {
				printlnFn("Usage: go <path>")
				continue
			}
			report(a.Go(ctx, args[0]))

		case "register":
			report(a.Register(ctx))

		case "login":
			report(a.Login(ctx))

		case "admin-login":
			report(a.AdminLogin(ctx))

		case "logout":
			report(a.Logout(ctx))

		case "l", "list":
			if page, ok := pageArg(args); ok {
				report(a.List(ctx, page))
			}

		case "show":
			if id, ok := idArg(args, "show <id>"); ok {
				report(a.Show(ctx, id))
			}

		case "create":
			report(a.Create(ctx))

		case "cancel":
			if id, ok := idArg(args, "cancel <id>"); ok {
				report(a.Cancel(ctx, id))
			}

		case "search":
			if len(args) == 0 {
				printlnFn("Usage: search <query>")
				continue
			}
			report(a.Search(ctx, strings.Join(args, " ")))

		case "admin-list":
			if page, ok := pageArg(args); ok {
				report(a.AdminList(ctx, page))
			}

		case "approve":
			if id, ok := idArg(args, "approve <id>"); ok {
				report(a.Approve(ctx, id))
			}

		case "reject":
			if id, ok := idArg(args, "reject <id>"); ok {
				report(a.Reject(ctx, id))
			}

		case "status":
			if len(args) != 2 {
				printlnFn("Usage: status <id> <status>")
				continue
			}
			if id, ok := idArg(args[:1], "status <id> <status>"); ok {
				report(a.SetStatus(ctx, id, args[1]))
			}

		case "stats":
			report(a.Stats(ctx))

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			return
		}
	}
}

// pageArg reads an optional page number; 0 means "server default".
func pageArg(args []string) (int, bool) {
	if len(args) == 0 {
		return 0, true
	}
	page, err := strconv.Atoi(args[0])
	if err != nil || page < 1 {
		printlnFn("Page must be a positive number")
		return 0, false
	}
	return page, true
}

func idArg(args []string, usage string) (int64, bool) {
	if len(args) == 0 {
		printlnFn("Usage: " + usage)
		return 0, false
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id < 1 {
		printlnFn("Id must be a positive number")
		return 0, false
	}
	return id, true
}
