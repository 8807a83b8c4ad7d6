// Package simplot parses the text output of several materials-science
// simulation codes (GASP, LAMMPS, VASPKIT, VTST) and renders the results
// as figures. The plot-* commands in the subdirectories are thin wrappers
// around the parsers and rendering helpers in this package.
package simplot

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// ErrBadFormat reports an input file or argument that is missing an
// expected marker or cannot be tokenized as documented.
var ErrBadFormat = errors.New("malformed input")

// Composition is a chemical formula as a map from element symbol to the
// number of atoms of that element. Compositions are built once by
// ParseComposition and treated as read-only afterwards.
type Composition map[string]float64

// ParseComposition reads a formula string like "B12N12" or "Al2O3".
// Omitted counts default to 1, so "BN" is {B: 1, N: 1}.
func ParseComposition(s string) (Composition, error) {
	comp := make(Composition)
	i := 0
	for i < len(s) {
		if s[i] < 'A' || s[i] > 'Z' {
			return nil, fmt.Errorf("%w: formula %q", ErrBadFormat, s)
		}
		j := i + 1
		for j < len(s) && s[j] >= 'a' && s[j] <= 'z' {
			j++
		}
		el := s[i:j]
		k := j
		for k < len(s) && (s[k] == '.' || (s[k] >= '0' && s[k] <= '9')) {
			k++
		}
		count := 1.0
		if k > j {
			var err error
			count, err = strconv.ParseFloat(s[j:k], 64)
			if err != nil {
				return nil, fmt.Errorf("%w: formula %q", ErrBadFormat, s)
			}
		}
		comp[el] += count
		i = k
	}
	if len(comp) == 0 {
		return nil, fmt.Errorf("%w: empty formula", ErrBadFormat)
	}
	return comp, nil
}

// NumAtoms returns the total number of atoms in the composition.
func (c Composition) NumAtoms() (sum float64) {
	for _, n := range c {
		sum += n
	}
	return
}

// AtomicFraction returns the fraction of atoms in c that are el, or 0
// when el does not occur.
func (c Composition) AtomicFraction(el string) float64 {
	tot := c.NumAtoms()
	if tot == 0 {
		return 0
	}
	return c[el] / tot
}

// ReducedFormula is the canonical label for a composition: counts divided
// by their greatest common divisor, elements in alphabetical order, and
// counts of one omitted. "B2N2" and "B4N4" both reduce to "BN".
func (c Composition) ReducedFormula() string {
	els := make([]string, 0, len(c))
	for el := range c {
		els = append(els, el)
	}
	sort.Strings(els)
	div := 1.0
	ints := make([]int, len(els))
	integral := true
	for i, el := range els {
		r := math.Round(c[el])
		if math.Abs(c[el]-r) > 1e-8 || r <= 0 {
			integral = false
			break
		}
		ints[i] = int(r)
	}
	if integral {
		g := 0
		for _, n := range ints {
			g = gcd(g, n)
		}
		if g > 1 {
			div = float64(g)
		}
	}
	var b strings.Builder
	for _, el := range els {
		n := c[el] / div
		b.WriteString(el)
		if math.Abs(n-1) < 1e-8 {
			continue
		}
		if r := math.Round(n); math.Abs(n-r) < 1e-8 {
			fmt.Fprintf(&b, "%d", int(r))
		} else {
			fmt.Fprintf(&b, "%g", n)
		}
	}
	return b.String()
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
