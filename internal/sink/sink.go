// Package sink defines the Sink interface for report output.
package sink

import (
	"github.com/Geun-Oh/dstat/internal/entry"
	"github.com/hyp3rd/ewrap"
)

// ErrUnknownFormat is returned for an output format other than "text" or "json".
var ErrUnknownFormat = ewrap.New("unknown output format")

// Output formats understood by NewFileSink.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Sink receives a finished report and writes it to an output destination.
type Sink interface {
	// Write outputs the complete report.
	Write(r *entry.Report) error

	// Flush ensures all buffered output is written.
	Flush() error

	// Close releases resources held by the sink.
	Close() error

	// Name returns a human-readable identifier for this sink.
	Name() string
}

// ValidFormat reports whether format is a supported output format.
func ValidFormat(format string) bool {
	return format == FormatText || format == FormatJSON
}
