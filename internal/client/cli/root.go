package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	status() string
	Login(ctx context.Context) error
	List(ctx context.Context) error
	Filter(ctx context.Context, role string) error
	Add(ctx context.Context) error
	Delete(ctx context.Context, id string) error
}

func (a *App) status() string {
	s := ""
	if a.userName != "" {
		s = a.userName + " "
	}
	if a.Mode != "" {
		s = s + string(a.Mode)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

func (a *App) Root(ctx context.Context) {

	fmt.Println("Welcome to cipherdir CLI (type 'help' for commands)")

	go func() {
		a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)
	}()

	runREPL(ctx, bufio.NewScanner(os.Stdin), a)
}

// runREPL reads a line, parses the first token as the command, and
// dispatches to methods on 'a'. Unknown commands are reported back to the
// user. The loop exits on scanner EOF or when the user types "exit" or
// "quit". Command errors are printed, never fatal: one failed listing must
// not take the session down.
func runREPL(ctx context.Context, scanner *bufio.Scanner, a execIface) {

	for {
		fmt.Printf("cipherdir %s> ", a.status())
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		var err error

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: list, filter <role>, add, delete <id>, exit")
			} else {
				printlnFn("Available commands: login, exit")
			}
		case "login":
			err = a.Login(ctx)
		case "list":
			err = a.List(ctx)
		case "filter":
			if len(args) == 0 {
				printlnFn("Usage: filter <role>")
				continue
			}
			err = a.Filter(ctx, args[0])
		case "add":
			err = a.Add(ctx)
		case "delete":
			if len(args) == 0 {
				printlnFn("Usage: delete <id>")
				continue
			}
			err = a.Delete(ctx, args[0])
		case "exit", "quit":
			printlnFn("Bye!")
			return
		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			printlnFn("Error:", err.Error())
		}
	}
}
