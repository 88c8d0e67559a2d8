package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "stoich",
	Short: "Stoich balances chemical equations",
	Long: `Stoich computes the minimal positive integer coefficients that balance a
chemical equation, using exact rational arithmetic. Run without a subcommand
to enter the interactive prompt.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
