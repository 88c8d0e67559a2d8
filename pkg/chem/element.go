package chem

import (
	_ "embed"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

// Symbol identifies a chemical element: one uppercase ASCII letter optionally
// followed by lowercase letters, validated against the periodic table.
type Symbol string

//go:embed elements.yaml
var elementsYAML []byte

// elementNames maps every known symbol to its English name. Populated once
// at package init from the embedded table.
var elementNames map[Symbol]string

func init() {
	if err := yaml.Unmarshal(elementsYAML, &elementNames); err != nil {
		panic(fmt.Sprintf("chem: embedded element table is corrupt: %v", err))
	}
}

// IsElement reports whether s is a known element symbol.
func IsElement(s Symbol) bool {
	_, ok := elementNames[s]
	return ok
}

// ElementName returns the English name of a known element symbol.
func ElementName(s Symbol) (string, bool) {
	name, ok := elementNames[s]
	return name, ok
}

// Elements returns every known symbol in lexicographic order.
func Elements() []Symbol {
	out := make([]Symbol, 0, len(elementNames))
	for s := range elementNames {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
