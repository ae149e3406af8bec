package filter

import (
	"testing"

	"github.com/Geun-Oh/dstat/internal/entry"
	"github.com/stretchr/testify/assert"
)

func line(text string) *entry.RawLine {
	return &entry.RawLine{Number: 1, Text: text}
}

func TestDecimalFilter(t *testing.T) {
	f := NewDecimalFilter()

	valid := []string{"0", "42", "-7", "+3", "3.14", "3.", ".5", "-.5", "1e10", "1E-3", "2.5e+2", "  12  ", "\t8"}
	for _, s := range valid {
		assert.True(t, f.Match(line(s)), "expected %q to match", s)
	}

	invalid := []string{"", "abc", "1,5", "1.2.3", "e5", "1e", "--1", "inf", "NaN", "0x10", "1_000", ".", "+", "12abc"}
	for _, s := range invalid {
		assert.False(t, f.Match(line(s)), "expected %q not to match", s)
	}
	assert.Equal(t, "decimal", f.Name())
}

func TestNotBlankFilter(t *testing.T) {
	f := NewNotBlankFilter()

	assert.True(t, f.Match(line("x")))
	assert.False(t, f.Match(line("")))
	assert.False(t, f.Match(line(" \t ")))
	assert.Equal(t, "not-blank", f.Name())
}

func TestFiniteFilter(t *testing.T) {
	f := NewFiniteFilter()

	assert.True(t, f.Match(line("1e308")))
	assert.True(t, f.Match(line("1e-400")))
	assert.True(t, f.Match(line(" -2.5 ")))
	assert.False(t, f.Match(line("1e400")))
	assert.False(t, f.Match(line("-1e400")))
	assert.False(t, f.Match(line("inf")))
	assert.False(t, f.Match(line("nan")))
	assert.False(t, f.Match(line("abc")))
	assert.Equal(t, "finite", f.Name())
}

func TestChainReject(t *testing.T) {
	c := NumericChain()

	tests := []struct {
		text     string
		wantRule string
		wantOK   bool
	}{
		{"4.0", "", true},
		{"   ", "not-blank", false},
		{"abc", "decimal", false},
		{"1e999", "finite", false},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			rule, ok := c.Reject(line(tt.text))
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantRule, rule)
			assert.Equal(t, tt.wantOK, c.Match(line(tt.text)))
		})
	}
}

func TestChainName(t *testing.T) {
	assert.Equal(t, "not-blank+decimal+finite", NumericChain().Name())
	assert.Equal(t, "", NewChain().Name())
}

func TestEmptyChainAcceptsEverything(t *testing.T) {
	assert.True(t, NewChain().Match(line("anything")))
}
