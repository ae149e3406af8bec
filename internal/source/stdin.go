package source

import (
	"context"
	"io"
	"os"

	"github.com/Geun-Oh/dstat/internal/entry"
)

// StdinSource reads lines from standard input (pipe mode).
type StdinSource struct {
	r io.Reader
}

// NewStdinSource creates a source that reads from os.Stdin.
func NewStdinSource() *StdinSource {
	return &StdinSource{r: os.Stdin}
}

// Name returns the source identifier.
func (s *StdinSource) Name() string {
	return "stdin"
}

// Read consumes stdin until EOF.
func (s *StdinSource) Read(ctx context.Context) ([]entry.RawLine, error) {
	return readLines(ctx, s.r)
}
