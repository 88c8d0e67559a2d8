package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/aretw0/stoich"
	"github.com/aretw0/stoich/internal/cli"
	"github.com/aretw0/stoich/internal/presentation/tui"
	"github.com/aretw0/stoich/pkg/adapters/memory"
	"github.com/aretw0/stoich/pkg/session"
)

// replCmd represents the interactive prompt
var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start the interactive balancing prompt",
	Long: `Starts the interactive loop: enter an equation per line, "show work" to
see the working of the last balance, "history" for recent results, "q" to quit.`,
	Run: func(cmd *cobra.Command, args []string) {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			tui.PrintBanner(stoich.Version)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		historySize, _ := cmd.Flags().GetInt("history")
		repl := &cli.Repl{
			Input:    os.Stdin,
			Output:   os.Stdout,
			Sessions: session.NewManager(session.WithHistory(memory.NewStore(historySize))),
		}
		if term.IsTerminal(int(os.Stdout.Fd())) {
			repl.Renderer = tui.NewRenderer()
		}

		if err := repl.Run(ctx); err != nil && ctx.Err() == nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
	replCmd.Flags().Int("history", memory.DefaultCap, "Number of balanced equations to keep in history")

	// Make 'repl' the default if no command is provided
	rootCmd.Run = replCmd.Run
}
