/*
Package stoich balances chemical equations: given textual reactant and product
formulas, it computes the minimal positive integer stoichiometric coefficients
that conserve every chemical element.

The pipeline is pure and exact: formula parsing (nested groups, hydrates),
stoichiometry matrix construction over arbitrary-precision rationals, exact
null-space computation, and normalization to the smallest integer vector.
This Hexagonal Architecture keeps the core decoupled from its adapters, so it
can be embedded in any interface: CLI, HTTP server, or AI agent
infrastructure.

# Usage

	package main

	import (
		"fmt"
		"log"

		"github.com/aretw0/stoich"
	)

	func main() {
		res, err := stoich.Balance("Al + H2SO4 -> Al2(SO4)3 + H2")
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(res) // 2Al + 3H2SO4 -> Al2(SO4)3 + 3H2
	}

Failures are typed: compare against the sentinel errors in pkg/chem with
errors.Is (chem.ErrUnknownElement, chem.ErrNoSolution, ...).
*/
package stoich
