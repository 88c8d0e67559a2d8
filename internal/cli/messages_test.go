package cli_test

import (
	"errors"
	"testing"

	"github.com/aretw0/stoich/internal/cli"
	"github.com/aretw0/stoich/pkg/balance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func diagnoseFor(t *testing.T, input string) string {
	t.Helper()
	_, err := balance.Balance(input)
	require.Error(t, err)
	return cli.Diagnose(err)
}

func TestDiagnose(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"numeral typo", "H20 -> H2O", `Did you mean "H2O"?`},
		{"unknown element", "Xy -> Xy", "not a chemical element"},
		{"missing arrow", "H2 + O2", "No equation separator"},
		{"unbalanced brackets", "Ca(OH -> CaO", "Brackets don't match"},
		{"zero multiplier", "H0O -> H2O", "multiplier of zero"},
		{"invalid character", "H2O! -> H2O", "Unexpected character"},
		{"empty side", "-> H2O", "at least one compound"},
		{"no solution", "Na -> Cl", "cannot be balanced"},
		{"ambiguous", "C + O2 + CO -> CO2", "under-constrained"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Contains(t, diagnoseFor(t, tc.input), tc.want)
		})
	}
}

func TestDiagnose_PassesThroughUnknownErrors(t *testing.T) {
	err := errors.New("disk on fire")
	assert.Equal(t, "disk on fire", cli.Diagnose(err))
}
