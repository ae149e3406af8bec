// Package filter defines the validation rules a line must pass to become a sample.
package filter

import (
	"strings"

	"github.com/Geun-Oh/dstat/internal/entry"
)

// Filter is one validation rule for a RawLine.
type Filter interface {
	// Match returns true if the line passes this rule.
	Match(l *entry.RawLine) bool

	// Name returns a short identifier for the rule.
	Name() string
}

// Chain requires a line to pass every rule, checked in order.
type Chain struct {
	rules []Filter
}

// NewChain creates a Chain from rules. An empty chain accepts every line.
func NewChain(rules ...Filter) *Chain {
	return &Chain{rules: rules}
}

// NumericChain returns the rules a line must pass to become a sample:
// visible content, decimal literal syntax, and a finite value.
func NumericChain() *Chain {
	return NewChain(NewNotBlankFilter(), NewDecimalFilter(), NewFiniteFilter())
}

// Match reports whether l passes every rule.
func (c *Chain) Match(l *entry.RawLine) bool {
	_, ok := c.Reject(l)
	return ok
}

// Reject returns the name of the first rule l fails, or ok=true if it passes all.
func (c *Chain) Reject(l *entry.RawLine) (rule string, ok bool) {
	for _, f := range c.rules {
		if !f.Match(l) {
			return f.Name(), false
		}
	}
	return "", true
}

// Name lists the rules in evaluation order.
func (c *Chain) Name() string {
	names := make([]string, len(c.rules))
	for i, f := range c.rules {
		names[i] = f.Name()
	}
	return strings.Join(names, "+")
}
