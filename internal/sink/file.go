package sink

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/Geun-Oh/dstat/internal/entry"
	"github.com/hyp3rd/ewrap"
)

// DefaultResultsFile is the results file name used when none is configured.
const DefaultResultsFile = "StatisticsResults.txt"

// FileSink writes a report to a file, replacing any previous content.
// The report is written to a temporary file in the same directory and renamed
// into place, so a failed run never leaves a partial results file.
type FileSink struct {
	path   string
	format string
}

// NewFileSink creates a sink that writes to the given file path.
// The format parameter selects the inner formatter: "json" or "text".
func NewFileSink(path string, format string) (*FileSink, error) {
	if format == "" {
		format = FormatText
	}
	if !ValidFormat(format) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	return &FileSink{path: path, format: format}, nil
}

// Write renders the report into a temporary file and renames it over the target.
func (s *FileSink) Write(r *entry.Report) error {
	tmp, err := os.CreateTemp(filepath.Dir(s.path), "."+filepath.Base(s.path)+".*")
	if err != nil {
		return ewrap.Wrap(err, "create results file")
	}
	committed := false
	defer func() {
		if !committed {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if err := s.inner(tmp).Write(r); err != nil {
		return ewrap.Wrap(err, "write results file")
	}
	if err := tmp.Chmod(0o644); err != nil {
		return ewrap.Wrap(err, "chmod results file")
	}
	if err := tmp.Sync(); err != nil {
		return ewrap.Wrap(err, "sync results file")
	}
	if err := tmp.Close(); err != nil {
		return ewrap.Wrap(err, "close results file")
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		_ = os.Remove(tmp.Name())
		committed = true
		return ewrap.Wrap(err, "rename results file")
	}
	committed = true
	return nil
}

// Flush is a no-op; Write commits the file.
func (s *FileSink) Flush() error { return nil }

// Close is a no-op; Write commits the file.
func (s *FileSink) Close() error { return nil }

// Name returns the sink identifier.
func (s *FileSink) Name() string {
	return "file:" + s.path
}

// Path returns the results file path.
func (s *FileSink) Path() string {
	return s.path
}

func (s *FileSink) inner(w io.Writer) Sink {
	if s.format == FormatJSON {
		return NewJSONSink(w)
	}
	return NewTerminalSink(w, false)
}
