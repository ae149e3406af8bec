// Package source defines the Source interface and common utilities for reading input lines.
package source

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Geun-Oh/dstat/internal/entry"
	"github.com/hyp3rd/ewrap"
)

var (
	// ErrOpen is returned when the input cannot be opened.
	ErrOpen = ewrap.New("cannot open input")

	// ErrRead is returned when the input fails part way through.
	ErrRead = ewrap.New("cannot read input")
)

// Source reads every line of an input in order.
type Source interface {
	// Read returns all lines of the input, numbered from 1.
	// A trailing line terminator does not produce an extra empty line.
	Read(ctx context.Context) ([]entry.RawLine, error)

	// Name returns a human-readable identifier for this source.
	Name() string
}

// New returns a stdin source for "-" and a file source otherwise.
func New(path string) Source {
	if path == "-" {
		return NewStdinSource()
	}
	return NewFileSource(path)
}

// readLines splits r into numbered lines. Both \n and \r\n terminate a line.
// Lines have no length limit, so an over-long line reaches validation
// instead of failing the read.
func readLines(ctx context.Context, r io.Reader) ([]entry.RawLine, error) {
	br := bufio.NewReaderSize(r, 64*1024)

	var lines []entry.RawLine
	for n := 1; ; n++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		text, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: %w", ErrRead, err)
		}
		if text == "" && err != nil {
			return lines, nil
		}
		text = strings.TrimSuffix(text, "\n")
		text = strings.TrimSuffix(text, "\r")
		lines = append(lines, entry.RawLine{Number: n, Text: text})
		if err != nil {
			return lines, nil
		}
	}
}
