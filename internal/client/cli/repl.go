package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the command surface the REPL dispatches to.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error

	Children(ctx context.Context) error
	AddChild(ctx context.Context) error
	DeleteChild(ctx context.Context, args []string) error

	Upload(ctx context.Context, args []string) error
	List(ctx context.Context, args []string) error
	Delete(ctx context.Context, args []string) error
	Save(ctx context.Context, args []string) error
	Pending(ctx context.Context) error
	Retry(ctx context.Context, args []string) error

	Share(ctx context.Context) error
	Rotate(ctx context.Context) error
	Revoke(ctx context.Context) error
	History(ctx context.Context) error
}

const (
	helpLoggedOut = "Available commands: register, login, help, exit"
	helpLoggedIn  = "Available commands: children, addchild, delchild <id>, upload <file>, (l)ist [child-id], " +
		"delete <id>, save <id> <file>, pending, retry <n>, share, rotate, revoke, history, logout, help, exit"
)

// runREPL reads commands line by line and dispatches them to a until EOF,
// "exit" or "quit". Owner commands require a session; their errors are
// reported and the loop carries on. Commands prompt through the same reader,
// so it must not be wrapped in a buffering scanner.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("atelier%s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		err = nil
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpLoggedIn)
			} else {
				printlnFn(helpLoggedOut)
			}
			continue

		case "exit", "quit":
			printlnFn("Bye!")
			return

		case "register":
			err = a.Register(ctx)
		case "login":
			err = a.Login(ctx)

		case "logout", "children", "addchild", "delchild", "upload", "l", "list", "delete", "save",
			"pending", "retry", "share", "rotate", "revoke", "history":
			if !a.isLoggedIn() {
				printlnFn("Please login first")
				continue
			}
			err = dispatchOwner(ctx, a, cmd, args)

		default:
			printlnFn("Unknown command:", cmd)
			continue
		}

		if err != nil {
			printlnFn("Error:", describeError(err))
		}
	}
}

func dispatchOwner(ctx context.Context, a execIface, cmd string, args []string) error {
	switch cmd {
	case "logout":
		return a.Logout(ctx)
	case "children":
		return a.Children(ctx)
	case "addchild":
		return a.AddChild(ctx)
	case "delchild":
		return a.DeleteChild(ctx, args)
	case "upload":
		return a.Upload(ctx, args)
	case "l", "list":
		return a.List(ctx, args)
	case "delete":
		return a.Delete(ctx, args)
	case "save":
		return a.Save(ctx, args)
	case "pending":
		return a.Pending(ctx)
	case "retry":
		return a.Retry(ctx, args)
	case "share":
		return a.Share(ctx)
	case "rotate":
		return a.Rotate(ctx)
	case "revoke":
		return a.Revoke(ctx)
	case "history":
		return a.History(ctx)
	}
	return nil
}
