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
	Show(ctx context.Context) error
	Answer(ctx context.Context) error
	Solution(ctx context.Context) error
	Next(ctx context.Context) error
	Jump(ctx context.Context, args []string) error
	Search(ctx context.Context, args []string) error
	Reset(ctx context.Context) error
	Account(ctx context.Context, args []string) error
	AddQuiz(ctx context.Context) error
	Import(ctx context.Context, args []string) error
	ClearQuizzes(ctx context.Context) error
}

const (
	helpLoggedOut = "Commandes: register, login, account <n>, exit"
	helpLoggedIn  = "Commandes: show, answer, solution, next, jump <n>, search <texte>, reset, account <n>, addquiz, import <fichier>, clearquizzes, logout, exit"
)

// runREPL starts a simple read-eval-print loop for the quiz CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. The loop exits on EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
//	Not logged in:
//	  - help           : show available commands
//	  - register       : create an account
//	  - login          : authenticate with email or phone
//	  - account <n>    : explain an account number
//	  - exit | quit    : leave the program
//
//	Logged in:
//	  - show           : show the current exercise
//	  - answer         : enter journal and rows, then validate
//	  - solution       : show the expected entry
//	  - next           : move on after a correct answer
//	  - jump <n>       : open exercise n (progress is not saved)
//	  - search <text>  : find exercises by text, account or amount
//	  - reset          : start over from the first exercise
//	  - account <n>    : explain an account number
//	  - addquiz        : author a custom exercise
//	  - import <file>  : add exercises from a .json, .csv or .xlsx file
//	  - clearquizzes   : remove every custom exercise
//	  - logout         : log out
//	  - exit | quit    : leave the program
//
// Errors returned by command handlers are ignored here; handlers report
// their own errors.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("quiz %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		if !a.isLoggedIn() && requiresLogin(cmd) {
			printlnFn("Connectez-vous d'abord (login ou register).")
			continue
		}

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpLoggedIn)
			} else {
				printlnFn(helpLoggedOut)
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "show", "status":
			_ = a.Show(ctx)

		case "answer", "a":
			_ = a.Answer(ctx)

		case "solution":
			_ = a.Solution(ctx)

		case "next", "n":
			_ = a.Next(ctx)

		case "jump":
			_ = a.Jump(ctx, args)

		case "search":
			_ = a.Search(ctx, args)

		case "reset":
			_ = a.Reset(ctx)

		case "account":
			_ = a.Account(ctx, args)

		case "addquiz":
			_ = a.AddQuiz(ctx)

		case "import":
			_ = a.Import(ctx, args)

		case "clearquizzes":
			_ = a.ClearQuizzes(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func requiresLogin(cmd string) bool {
	switch cmd {
	case "help", "register", "login", "logout", "account", "exit", "quit":
		return false
	}
	return true
}
