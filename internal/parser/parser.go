// Package parser classifies input lines into numeric samples and validation errors.
package parser

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/Geun-Oh/dstat/internal/entry"
	"github.com/Geun-Oh/dstat/internal/filter"
)

// Parser turns RawLines into samples using a validation chain.
type Parser struct {
	rules *filter.Chain
}

// New creates a parser that accepts lines passing rules.
// A nil chain falls back to filter.NumericChain.
func New(rules *filter.Chain) *Parser {
	if rules == nil {
		rules = filter.NumericChain()
	}
	return &Parser{rules: rules}
}

// Rules returns the validation chain the parser applies.
func (p *Parser) Rules() *filter.Chain {
	return p.rules
}

// Parse maps every line to exactly one sample or one validation error,
// preserving input order in both outputs.
func (p *Parser) Parse(lines []entry.RawLine) ([]float64, []entry.ValidationError) {
	samples := make([]float64, 0, len(lines))
	var invalid []entry.ValidationError

	for i := range lines {
		v, ok := p.ParseLine(&lines[i])
		if !ok {
			invalid = append(invalid, entry.ValidationError{
				Line: lines[i].Number,
				Text: strings.TrimSpace(lines[i].Text),
			})
			continue
		}
		samples = append(samples, v)
	}
	return samples, invalid
}

// ParseLine returns the finite value of a single line.
func (p *Parser) ParseLine(l *entry.RawLine) (float64, bool) {
	if !p.rules.Match(l) {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(l.Text), 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	// Overflow parses to ±Inf; only finite values are samples.
	if math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
