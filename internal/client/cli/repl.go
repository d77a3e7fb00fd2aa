package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface is the minimal command surface the REPL dispatches to. The
// real App satisfies it; tests provide a stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error
	Search(ctx context.Context) error
	More(ctx context.Context) error
	Stats(ctx context.Context, args []string) error
	SortStats(ctx context.Context, args []string) error
	Trends(ctx context.Context) error
	Sync(ctx context.Context) error
}

// runREPL reads commands line by line and dispatches them. It exits on
// EOF or "exit"/"quit". Handler errors are already reported by the
// handlers themselves; the loop only cares about I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("radar %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Commandes: (s)earch, more, stats [terme], sort <colonne>, trends, sync, whoami, logout, exit")
			} else {
				printlnFn("Commandes: (s)earch, more, stats [terme], sort <colonne>, trends, register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.Whoami(ctx)

		case "s", "search":
			_ = a.Search(ctx)

		case "more":
			_ = a.More(ctx)

		case "stats":
			_ = a.Stats(ctx, args)

		case "sort":
			_ = a.SortStats(ctx, args)

		case "trends":
			_ = a.Trends(ctx)

		case "sync":
			_ = a.Sync(ctx)

		case "exit", "quit":
			printlnFn("Au revoir !")
			return

		default:
			printlnFn("Commande inconnue:", cmd)
		}
	}
}
