package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/aretw0/stoich/internal/cli"
	"github.com/aretw0/stoich/internal/presentation/tui"
	"github.com/aretw0/stoich/pkg/balance"
)

// balanceCmd represents the one-shot balance command
var balanceCmd = &cobra.Command{
	Use:   "balance <equation>",
	Short: "Balance a single chemical equation and exit",
	Long: `Balances the given equation and prints the result.

Example:
  stoich balance "Al + H2SO4 -> Al2(SO4)3 + H2"`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		showWork, _ := cmd.Flags().GetBool("work")
		equation := strings.Join(args, " ")

		res, err := balance.Balance(equation)
		if err != nil {
			fmt.Fprintln(os.Stderr, cli.Diagnose(err))
			os.Exit(1)
		}

		onTTY := term.IsTerminal(int(os.Stdout.Fd()))
		if onTTY {
			fmt.Println(tui.Highlight(res.String()))
		} else {
			fmt.Println(res)
		}

		if showWork {
			md := res.Trace.Markdown()
			if onTTY {
				if rendered, rerr := tui.NewRenderer()(md); rerr == nil {
					md = rendered
				}
			}
			fmt.Println(md)
		}
	},
}

func init() {
	rootCmd.AddCommand(balanceCmd)
	balanceCmd.Flags().BoolP("work", "w", false, "Also print the matrix and null-space working")
}
