package balance

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/aretw0/stoich/pkg/chem"
	"github.com/aretw0/stoich/pkg/linalg"
)

// Trace is a read-only snapshot of the intermediate steps of one balancing
// request, consumed by the "show work" renderers. It is not re-enterable
// state; each Balance call produces a fresh one.
type Trace struct {
	Equation     *chem.Equation
	Elements     []chem.Symbol // matrix row labels, sorted
	Matrix       *linalg.Matrix
	RawVector    []*big.Rat // null-space vector before normalization
	Multiplier   *big.Int   // LCM of the vector's denominators
	Scaled       []*big.Int // vector after LCM scaling, before GCD reduction
	Coefficients []int
}

// Markdown renders the trace as a markdown document suitable for terminal
// rendering or direct display.
func (t *Trace) Markdown() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# Work for `%s`\n\n", t.Equation.String())

	sb.WriteString("## Stoichiometry matrix\n\n")
	sb.WriteString("Rows are elements, columns are compounds (products negated).\n\n")
	sb.WriteString("| Element |")
	for _, c := range t.Equation.Compounds() {
		fmt.Fprintf(&sb, " %s |", c.Formula)
	}
	sb.WriteString("\n|---|")
	for range t.Equation.Compounds() {
		sb.WriteString("---|")
	}
	sb.WriteString("\n")
	for i, el := range t.Elements {
		fmt.Fprintf(&sb, "| %s |", el)
		for j := 0; j < t.Matrix.Cols(); j++ {
			fmt.Fprintf(&sb, " %s |", ratText(t.Matrix.Get(i, j)))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\n## Null-space vector\n\n")
	for i, v := range t.RawVector {
		fmt.Fprintf(&sb, "- %s: %s\n", t.Equation.Compounds()[i].Formula, ratText(v))
	}

	fmt.Fprintf(&sb, "\n## Scaling\n\n")
	fmt.Fprintf(&sb, "- Denominator LCM: %s\n", t.Multiplier.String())
	fmt.Fprintf(&sb, "- Scaled vector: %s\n", intsText(t.Scaled))
	fmt.Fprintf(&sb, "- Final coefficients: %v\n", t.Coefficients)

	fmt.Fprintf(&sb, "\n## Balanced equation\n\n")
	fmt.Fprintf(&sb, "    %s\n", t.Equation.Render(t.Coefficients))
	return sb.String()
}

func ratText(r *big.Rat) string {
	if r.IsInt() {
		return r.Num().String()
	}
	return r.RatString()
}

func intsText(ns []*big.Int) string {
	parts := make([]string, len(ns))
	for i, n := range ns {
		parts[i] = n.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}
