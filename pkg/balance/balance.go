package balance

import (
	"github.com/aretw0/stoich/pkg/chem"
	"github.com/aretw0/stoich/pkg/parser"
)

// Result is a successful balancing outcome: the parsed equation, the minimal
// positive integer coefficients in column order, and the work trace.
// Constructed once per request and read-only afterwards.
type Result struct {
	Equation     *chem.Equation `json:"equation"`
	Coefficients []int          `json:"coefficients"`
	Trace        *Trace         `json:"-"`
}

// ReactantCoefficients returns the coefficients of the reactant terms.
func (r *Result) ReactantCoefficients() []int {
	return r.Coefficients[:len(r.Equation.Reactants)]
}

// ProductCoefficients returns the coefficients of the product terms.
func (r *Result) ProductCoefficients() []int {
	return r.Coefficients[len(r.Equation.Reactants):]
}

// String renders the balanced equation with coefficient 1 omitted and the
// original arrow token preserved.
func (r *Result) String() string {
	return r.Equation.Render(r.Coefficients)
}

// Balance parses and balances a chemical equation.
//
// The returned error is always a *chem.ParseError or *chem.BalanceError;
// branch on the chem sentinel kinds with errors.Is.
func Balance(text string) (*Result, error) {
	eq, err := parser.ParseEquation(text)
	if err != nil {
		return nil, err
	}
	return BalanceEquation(eq)
}

// BalanceEquation balances an already-parsed equation.
func BalanceEquation(eq *chem.Equation) (*Result, error) {
	m, elements := BuildMatrix(eq)

	vec, err := solveNullspace(m)
	if err != nil {
		return nil, err
	}

	coeffs, multiplier, scaled, err := normalize(vec)
	if err != nil {
		return nil, err
	}

	return &Result{
		Equation:     eq,
		Coefficients: coeffs,
		Trace: &Trace{
			Equation:     eq,
			Elements:     elements,
			Matrix:       m,
			RawVector:    vec,
			Multiplier:   multiplier,
			Scaled:       scaled,
			Coefficients: coeffs,
		},
	}, nil
}
