package filter

import (
	"strings"

	"github.com/Geun-Oh/dstat/internal/entry"
)

// NotBlankFilter rejects lines that are empty after trimming whitespace.
type NotBlankFilter struct{}

// NewNotBlankFilter creates a filter that passes any line with visible content.
func NewNotBlankFilter() *NotBlankFilter {
	return &NotBlankFilter{}
}

// Match returns true if the line has non-whitespace content.
func (f *NotBlankFilter) Match(l *entry.RawLine) bool {
	return strings.TrimSpace(l.Text) != ""
}

// Name returns the filter description.
func (f *NotBlankFilter) Name() string {
	return "not-blank"
}
