package parser_test

import (
	"testing"

	"github.com/aretw0/stoich/pkg/chem"
	"github.com/aretw0/stoich/pkg/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEquation(t *testing.T) {
	eq, err := parser.ParseEquation("H2 + O2 -> H2O")
	require.NoError(t, err)

	require.Len(t, eq.Reactants, 2)
	require.Len(t, eq.Products, 1)
	assert.Equal(t, "H2", eq.Reactants[0].Formula)
	assert.Equal(t, "O2", eq.Reactants[1].Formula)
	assert.Equal(t, "H2O", eq.Products[0].Formula)
	assert.Equal(t, "->", eq.Arrow)
	assert.Equal(t, []chem.Symbol{"H", "O"}, eq.Elements())
}

func TestParseEquation_Arrows(t *testing.T) {
	cases := []struct {
		input string
		arrow string
	}{
		{"Fe + O2 -> Fe2O3", "->"},
		{"Fe + O2 = Fe2O3", "="},
		{"Fe + O2 → Fe2O3", "→"},
	}
	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			eq, err := parser.ParseEquation(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.arrow, eq.Arrow)
			assert.Len(t, eq.Reactants, 2)
			assert.Len(t, eq.Products, 1)
		})
	}
}

func TestParseEquation_NoSpaces(t *testing.T) {
	eq, err := parser.ParseEquation("CH4+2O2->CO2+2H2O")
	// Coefficients typed by the user are leading multipliers on the term, so
	// "2O2" parses as O4. The splitter itself must still cut the terms right.
	require.NoError(t, err)
	assert.Len(t, eq.Reactants, 2)
	assert.Len(t, eq.Products, 2)
	assert.Equal(t, 4, eq.Reactants[1].Composition.Count("O"))
}

func TestParseEquation_Errors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		kind  error
	}{
		{"no separator", "H2 + O2", chem.ErrMissingSeparator},
		{"empty input", "", chem.ErrMissingSeparator},
		{"empty reactants", "-> H2O", chem.ErrEmptyReactantSide},
		{"empty products", "H2 + O2 ->", chem.ErrEmptyProductSide},
		{"blank reactant term", "H2 + -> H2O", chem.ErrEmptyFormula},
		{"blank product term", "H2 -> H2O + ", chem.ErrEmptyFormula},
		{"bad formula in term", "H2 + Xx -> H2O", chem.ErrUnknownElement},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parser.ParseEquation(tc.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.kind)
		})
	}
}

func TestParseEquation_ErrorLocatesTerm(t *testing.T) {
	_, err := parser.ParseEquation("H2 + Xx2 -> H2O")
	var pe *chem.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "reactants", pe.Side)
	assert.Equal(t, 2, pe.Term)
	assert.Equal(t, "Xx", pe.Token)
}

func TestParseEquation_RendersBack(t *testing.T) {
	eq, err := parser.ParseEquation("H2 + O2 -> H2O")
	require.NoError(t, err)
	assert.Equal(t, "H2 + O2 -> H2O", eq.String())
	assert.Equal(t, "2H2 + O2 -> 2H2O", eq.Render([]int{2, 1, 2}))
}
