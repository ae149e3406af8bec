package filter

import (
	"regexp"
	"strings"

	"github.com/Geun-Oh/dstat/internal/entry"
)

// DecimalPattern matches a decimal floating-point literal: optional sign,
// digits with an optional fractional part, and an optional exponent.
const DecimalPattern = `^[+-]?(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?$`

var decimalRe = regexp.MustCompile(DecimalPattern)

// DecimalFilter passes lines whose trimmed text is a decimal literal.
// Words such as "inf" or "nan", hex floats and digit separators fail.
type DecimalFilter struct{}

// NewDecimalFilter creates a decimal literal rule.
func NewDecimalFilter() *DecimalFilter {
	return &DecimalFilter{}
}

// Match returns true if the trimmed line is a decimal literal.
func (f *DecimalFilter) Match(l *entry.RawLine) bool {
	return decimalRe.MatchString(strings.TrimSpace(l.Text))
}

// Name returns the rule identifier.
func (f *DecimalFilter) Name() string {
	return "decimal"
}
