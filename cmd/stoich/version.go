package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/stoich"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of stoich",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("stoich version %s\n", strings.TrimSpace(stoich.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
