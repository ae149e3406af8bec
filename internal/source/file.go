package source

import (
	"context"
	"fmt"
	"os"

	"github.com/Geun-Oh/dstat/internal/entry"
)

// FileSource reads lines from a file on disk.
type FileSource struct {
	path string
}

// NewFileSource creates a source that reads from a file.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Name returns the source identifier.
func (s *FileSource) Name() string {
	return fmt.Sprintf("file:%s", s.path)
}

// Read opens the file and returns its lines.
func (s *FileSource) Read(ctx context.Context) ([]entry.RawLine, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpen, err)
	}
	defer f.Close()

	return readLines(ctx, f)
}
