package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/nao1215/genstandards/internal/model"
)

// Writer renders a report for a catalog to its output.
type Writer interface {
	// Write renders the report.
	// Returns the number of bytes written and any error encountered.
	Write(catalog *model.Catalog) (int, error)
}

// baseWriter provides common functionality for report writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}

// WriteFile writes content to path, replacing any existing file.
// Parent directories are created if they don't exist.
func WriteFile(path, content string) error {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644) //nolint:gosec // reports are public documents
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	if _, err := io.WriteString(f, content); err != nil {
		_ = f.Close() //nolint:errcheck // the write error is more useful
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	return nil
}
