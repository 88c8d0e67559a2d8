package balance

import (
	"math/big"

	"github.com/aretw0/stoich/pkg/chem"
)

// normalize scales a rational null-space vector to the smallest all-positive
// integer vector: multiply by the LCM of the denominators, divide by the GCD
// of the results, and flip the sign if elimination produced the mirrored
// (all-negative) scalar multiple.
//
// The returned multiplier and scaled integers feed the work trace.
func normalize(vec []*big.Rat) (coeffs []int, multiplier *big.Int, scaled []*big.Int, err error) {
	multiplier = big.NewInt(1)
	for _, v := range vec {
		multiplier = lcm(multiplier, v.Denom())
	}

	scaled = make([]*big.Int, len(vec))
	tmp := new(big.Rat).SetInt(multiplier)
	for i, v := range vec {
		r := new(big.Rat).Mul(v, tmp)
		scaled[i] = new(big.Int).Set(r.Num()) // exact by construction of the LCM
	}

	divisor := new(big.Int)
	for _, n := range scaled {
		divisor.GCD(nil, nil, divisor, new(big.Int).Abs(n))
	}

	allNonPositive := true
	for _, n := range scaled {
		if n.Sign() > 0 {
			allNonPositive = false
			break
		}
	}

	coeffs = make([]int, len(scaled))
	for i, n := range scaled {
		v := new(big.Int).Div(n, divisor)
		if allNonPositive {
			v.Neg(v)
		}
		if v.Sign() <= 0 {
			return nil, nil, nil, &chem.BalanceError{
				Kind:   chem.ErrNonPositiveCoefficient,
				Detail: "coefficients do not all share one sign",
			}
		}
		coeffs[i] = int(v.Int64())
	}
	return coeffs, multiplier, scaled, nil
}

// lcm returns the least common multiple of two positive integers.
func lcm(a, b *big.Int) *big.Int {
	g := new(big.Int).GCD(nil, nil, a, b)
	out := new(big.Int).Div(a, g)
	return out.Mul(out, b)
}
