package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"sync"
)

// Toaster prints notifications on their own line. It is safe for concurrent
// use because the initial load reports from a background goroutine.
type Toaster struct {
	mu sync.Mutex
	w  io.Writer
}

func NewToaster(w io.Writer) *Toaster {
	return &Toaster{w: w}
}

func (t *Toaster) Success(msg string) { t.print("✔", msg) }
func (t *Toaster) Error(msg string)   { t.print("✖", msg) }

func (t *Toaster) print(icon, msg string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintf(t.w, "%s %s\n", icon, msg)
}

// promptConfirmer asks yes/no questions on the shared input reader.
type promptConfirmer struct {
	reader *bufio.Reader
	w      io.Writer
}

func (c *promptConfirmer) Confirm(_ context.Context, prompt string) (bool, error) {
	return GetConfirm(c.reader, prompt, c.w)
}
