package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface is the command surface the REPL dispatches to. App satisfies it.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Recover(ctx context.Context) error
	Group(ctx context.Context) error
	AddUser(ctx context.Context, args []string) error
	RemoveUser(ctx context.Context, args []string) error
	Upload(ctx context.Context, args []string) error
	List(ctx context.Context, args []string) error
	Download(ctx context.Context, args []string) error
	Delete(ctx context.Context, args []string) error
	Logout(ctx context.Context) error
}

// runREPL reads commands from reader until EOF or "exit"/"quit".
//
//	Not logged in: help, register, login, recover, exit
//	Logged in:     help, group, adduser [name], rmuser <id>, upload [account id],
//	               list [account id], download <report id>, delete <report id>,
//	               logout, exit
//
// Command errors are printed and the loop continues.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("rk> %s > ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var cmdErr error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: group, adduser, rmuser, upload, (l)ist, download, delete, logout, exit")
			} else {
				printlnFn("Available commands: register, login, recover, exit")
			}

		case "register":
			cmdErr = a.Register(ctx)

		case "login":
			cmdErr = a.Login(ctx)

		case "recover":
			cmdErr = a.Recover(ctx)

		case "group":
			cmdErr = a.Group(ctx)

		case "adduser":
			cmdErr = a.AddUser(ctx, args)

		case "rmuser":
			cmdErr = a.RemoveUser(ctx, args)

		case "upload":
			cmdErr = a.Upload(ctx, args)

		case "l", "list":
			cmdErr = a.List(ctx, args)

		case "download":
			cmdErr = a.Download(ctx, args)

		case "delete":
			cmdErr = a.Delete(ctx, args)

		case "logout":
			cmdErr = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if cmdErr != nil {
			printlnFn("Error:", cmdErr)
		}
	}
}
