package chem

import "sort"

// Composition maps each element symbol to its atom count within one compound,
// after all groups and hydrate terms have been expanded. An absent element has
// implicit count zero; a present element always has count >= 1.
type Composition map[Symbol]int

// Add increments the count of one element.
func (c Composition) Add(s Symbol, n int) {
	c[s] += n
}

// Merge sums every count of other into c, scaled by factor.
func (c Composition) Merge(other Composition, factor int) {
	for s, n := range other {
		c[s] += n * factor
	}
}

// Count returns the count of s, zero if absent.
func (c Composition) Count(s Symbol) int {
	return c[s]
}

// Elements returns the symbols present in c in lexicographic order.
func (c Composition) Elements() []Symbol {
	out := make([]Symbol, 0, len(c))
	for s := range c {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Equal reports whether two compositions contain identical counts.
func (c Composition) Equal(other Composition) bool {
	if len(c) != len(other) {
		return false
	}
	for s, n := range c {
		if other[s] != n {
			return false
		}
	}
	return true
}

// Clone returns an independent copy.
func (c Composition) Clone() Composition {
	out := make(Composition, len(c))
	for s, n := range c {
		out[s] = n
	}
	return out
}
