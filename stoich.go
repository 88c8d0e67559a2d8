package stoich

import (
	"github.com/aretw0/stoich/pkg/balance"
	"github.com/aretw0/stoich/pkg/chem"
	"github.com/aretw0/stoich/pkg/parser"
)

// Version is the library version, reported by the CLI version command.
var Version = "0.3.0"

// Balance parses and balances a chemical equation. It is the high-level
// entry point for library consumers; the returned Result carries the
// coefficients, the parsed equation, and a work trace.
func Balance(text string) (*balance.Result, error) {
	return balance.Balance(text)
}

// ParseEquation parses equation text without balancing it.
func ParseEquation(text string) (*chem.Equation, error) {
	return parser.ParseEquation(text)
}

// ParseFormula expands one compound formula into its element counts.
func ParseFormula(text string) (chem.Composition, error) {
	return parser.ParseFormula(text)
}
