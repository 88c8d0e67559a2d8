package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/stoich/pkg/chem"
)

// elementsCmd looks up symbols in the periodic-table allow-list.
var elementsCmd = &cobra.Command{
	Use:   "elements [symbol...]",
	Short: "Look up element symbols in the periodic table",
	Long: `With arguments, prints the name of each symbol (and exits non-zero if any
is unknown). Without arguments, lists every known symbol.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			for _, s := range chem.Elements() {
				name, _ := chem.ElementName(s)
				fmt.Printf("%-3s %s\n", s, name)
			}
			return
		}

		failed := false
		for _, arg := range args {
			if name, ok := chem.ElementName(chem.Symbol(arg)); ok {
				fmt.Printf("%-3s %s\n", arg, name)
			} else {
				fmt.Printf("%-3s unknown symbol\n", arg)
				failed = true
			}
		}
		if failed {
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(elementsCmd)
}
