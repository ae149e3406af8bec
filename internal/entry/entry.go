// Package entry defines the values passed between the dstat pipeline stages.
package entry

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// RawLine is one unparsed line of input.
type RawLine struct {
	Number int    // 1-based line number
	Text   string // line content without its terminator
}

// ValidationError records an input line that did not parse as a number.
type ValidationError struct {
	Line int
	Text string // trimmed line content
}

// String returns the report line for the error.
func (e ValidationError) String() string {
	return fmt.Sprintf("Invalid data at line %d: '%s'", e.Line, e.Text)
}

// ModeKind tags which case of Mode is populated.
type ModeKind int

const (
	// NoMode means every sample value is distinct (or there are no samples).
	NoMode ModeKind = iota
	// TiedValues means Values holds every value sharing the highest frequency.
	TiedValues
)

// String returns the string representation of a ModeKind.
func (k ModeKind) String() string {
	switch k {
	case TiedValues:
		return "tied"
	default:
		return "none"
	}
}

// Mode is the mode of a sample: either NoMode or a non-empty set of tied values.
type Mode struct {
	Kind   ModeKind
	Values []float64 // first-occurrence order; empty unless Kind == TiedValues
}

// Format renders the mode as "No mode" or a comma-separated value list.
func (m Mode) Format() string {
	if m.Kind == NoMode || len(m.Values) == 0 {
		return "No mode"
	}
	parts := make([]string, len(m.Values))
	for i, v := range m.Values {
		parts[i] = FormatValue(v)
	}
	return strings.Join(parts, ", ")
}

// FormatValue renders v with the fewest digits that round-trip. Magnitudes
// in [1e-4, 1e16) use fixed notation, others use an exponent. Whole numbers
// print without a fractional part.
func FormatValue(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	if abs := math.Abs(v); abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Result holds the descriptive statistics of one sample.
type Result struct {
	Count    int
	Mean     float64
	Median   float64
	Mode     Mode
	Variance float64
	StdDev   float64
}

// Report is the rendered output of one run, ready for the sinks.
type Report struct {
	Lines   []string
	Result  Result
	Errors  []ValidationError
	Elapsed time.Duration
}
