package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// printFn writes the prompt without a trailing newline.
var printFn = fmt.Print

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	Add(ctx context.Context) error
	View(ctx context.Context) error
	Search(ctx context.Context, query string) error
	Edit(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

const helpText = `Available commands:
  add                  add a new student
  view | list | l      show the student list
  search [term]        filter the list (no term clears the filter)
  edit <id>            edit a student
  delete <id>          delete a student
  help                 show this help
  exit | quit          leave the program`

// runREPL starts a simple read–eval–print loop for the roster CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. Unknown commands are reported back to the
// user. The loop exits on EOF, when the user types "exit" or "quit", or when
// ctx is cancelled.
//
// The prompt shows the current mode (from statusFn), e.g. "roster (browse)> ".
//
// Errors returned by command handlers are ignored here; handlers report
// them to the user themselves.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}
		printFn(fmt.Sprintf("roster %s> ", statusFn()))

		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			printlnFn()
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			printlnFn(helpText)

		case "add":
			_ = a.Add(ctx)

		case "view", "list", "l":
			_ = a.View(ctx)

		case "search":
			_ = a.Search(ctx, strings.Join(args, " "))

		case "edit":
			if len(args) != 1 {
				printlnFn("Usage: edit <id>")
				continue
			}
			_ = a.Edit(ctx, args[0])

		case "delete":
			if len(args) != 1 {
				printlnFn("Usage: delete <id>")
				continue
			}
			_ = a.Delete(ctx, args[0])

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
