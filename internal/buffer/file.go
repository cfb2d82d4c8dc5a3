package buffer

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"tedit/internal/logger"
)

// Open loads path into a new document. A missing file yields an empty
// document that will be created on first save.
func Open(path string, readOnly bool) (*Document, error) {
	d := New()
	d.filename = path
	d.readOnly = readOnly
	if path == "" {
		return d, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Info("open %s: new file", path)
			return d, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	d.lines = splitLines(string(data))
	logger.Info("open %s: %d lines (read-only=%v)", path, len(d.lines), readOnly)
	return d, nil
}

// Save writes the document to its file name.
func (d *Document) Save() error {
	if d.filename == "" {
		return ErrNoFilename
	}
	if err := os.WriteFile(d.filename, []byte(d.String()), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", d.filename, err)
	}
	d.savedVersion = d.version
	logger.Info("saved %s (%d lines)", d.filename, len(d.lines))
	return nil
}

// SaveAs sets the file name and saves.
func (d *Document) SaveAs(path string) error {
	if path == "" {
		return ErrNoFilename
	}
	d.filename = path
	return d.Save()
}

// WriteCopy writes the content to path without renaming the document or
// touching its modified state.
func (d *Document) WriteCopy(path string) error {
	if path == "" {
		return ErrNoFilename
	}
	if err := os.WriteFile(path, []byte(d.String()), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	logger.Info("wrote copy of %s to %s", d.Name(), path)
	return nil
}
