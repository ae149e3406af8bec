package filter

import (
	"math"
	"strconv"
	"strings"

	"github.com/Geun-Oh/dstat/internal/entry"
)

// FiniteFilter passes lines that parse to a finite float64. A literal that
// overflows to ±Inf fails; one that underflows to zero passes.
type FiniteFilter struct{}

// NewFiniteFilter creates a finite value rule.
func NewFiniteFilter() *FiniteFilter {
	return &FiniteFilter{}
}

// Match returns true if the trimmed line parses to a finite value.
func (f *FiniteFilter) Match(l *entry.RawLine) bool {
	v, err := strconv.ParseFloat(strings.TrimSpace(l.Text), 64)
	if err != nil {
		// Overflow reports ErrRange with v set to ±Inf.
		return false
	}
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}

// Name returns the rule identifier.
func (f *FiniteFilter) Name() string {
	return "finite"
}
