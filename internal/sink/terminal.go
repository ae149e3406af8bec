package sink

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Geun-Oh/dstat/internal/entry"
	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7D56F4"))

	invalidStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF4444"))
)

// TerminalSink writes report lines to a terminal, optionally styled.
type TerminalSink struct {
	w     io.Writer
	color bool
}

// NewTerminalSink creates a sink that writes to the given writer.
// If color is true, the header and validation error lines are styled.
func NewTerminalSink(w io.Writer, color bool) *TerminalSink {
	if w == nil {
		w = os.Stdout
	}
	return &TerminalSink{w: w, color: color}
}

// Write outputs every report line followed by a newline.
func (s *TerminalSink) Write(r *entry.Report) error {
	for i, line := range r.Lines {
		if s.color {
			line = s.style(i, line, len(r.Errors))
		}
		if _, err := fmt.Fprintln(s.w, line); err != nil {
			return err
		}
	}
	return nil
}

// Flush is a no-op for terminal output.
func (s *TerminalSink) Flush() error { return nil }

// Close is a no-op for terminal output.
func (s *TerminalSink) Close() error { return nil }

// Name returns the sink identifier.
func (s *TerminalSink) Name() string { return "terminal" }

// style colors the header and the validation lines that follow it.
func (s *TerminalSink) style(i int, line string, invalid int) string {
	switch {
	case i == 0:
		return headerStyle.Render(line)
	case i <= invalid && strings.HasPrefix(line, "Invalid data"):
		return invalidStyle.Render(line)
	default:
		return line
	}
}
