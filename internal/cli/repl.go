// Package cli implements the interactive prompt loop and the user-facing
// diagnostics around the pure balancing core.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/stoich/pkg/balance"
	"github.com/aretw0/stoich/pkg/ports"
	"github.com/aretw0/stoich/pkg/session"
)

// Repl drives the read-eval loop using the provided IO. Injecting Input and
// Output keeps the loop testable and reusable across frontends.
type Repl struct {
	Input    io.Reader
	Output   io.Writer
	Sessions *session.Manager

	// Renderer transforms the "show work" markdown before output (e.g.
	// glamour on a TTY). Nil prints the raw markdown.
	Renderer func(string) (string, error)
}

const divider = "=================================================="

// Run executes the loop until "q"/"quit"/"exit", EOF, or context
// cancellation.
func (r *Repl) Run(ctx context.Context) error {
	if r.Input == nil || r.Output == nil {
		return fmt.Errorf("repl: input and output must be set (use os.Stdin/os.Stdout)")
	}
	if r.Sessions == nil {
		r.Sessions = session.NewManager()
	}

	fmt.Fprintln(r.Output, `Enter an unbalanced chemical equation (e.g. "H2 + O2 -> H2O"). To quit, enter "q".`)
	fmt.Fprintln(r.Output, `Note: use the letter "O" for oxygen, not the number "0".`)

	scanner := bufio.NewScanner(r.Input)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		fmt.Fprint(r.Output, "\nEnter equation: ")
		if !scanner.Scan() {
			fmt.Fprintln(r.Output)
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())

		switch strings.ToLower(line) {
		case "q", "quit", "exit":
			fmt.Fprintln(r.Output, "\nGood-bye")
			return nil
		case "":
			fmt.Fprintln(r.Output, `Please enter an unbalanced chemical equation or "q" to quit`)
			continue
		case "show work":
			r.showWork()
			continue
		case "history":
			r.showHistory(ctx)
			continue
		}

		res, err := balance.Balance(line)
		if err != nil {
			fmt.Fprintln(r.Output, Diagnose(err))
			fmt.Fprintln(r.Output, "\n"+divider)
			continue
		}

		r.Sessions.Record(ctx, line, res)
		fmt.Fprintf(r.Output, "\nBalanced equation:\n%s\n", res)
		fmt.Fprintln(r.Output, `To show work, enter "show work". To quit, enter "q".`)
		fmt.Fprintln(r.Output, "\n"+divider)
	}
}

func (r *Repl) showWork() {
	last := r.Sessions.Last()
	if last == nil {
		fmt.Fprintln(r.Output, "No previous balanced equation to show work for.")
		return
	}
	md := last.Trace.Markdown()
	if r.Renderer != nil {
		if rendered, err := r.Renderer(md); err == nil {
			md = rendered
		}
	}
	fmt.Fprintln(r.Output, md)
}

func (r *Repl) showHistory(ctx context.Context) {
	entries, err := r.Sessions.Recent(ctx, 10)
	if err != nil {
		if errors.Is(err, ports.ErrHistoryEmpty) {
			fmt.Fprintln(r.Output, "No equations balanced yet.")
		} else {
			fmt.Fprintf(r.Output, "History unavailable: %v\n", err)
		}
		return
	}
	for i, e := range entries {
		fmt.Fprintf(r.Output, "%2d. %s\n", i+1, e.Balanced)
	}
}
