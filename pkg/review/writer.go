package review

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

const (
	DefaultSourceLabel = "English"
	DefaultTargetLabel = "Indonesian"
)

const defaultFileMode fs.FileMode = 0o644

// Columns returns the review file header for the given language labels.
func Columns(sourceLabel, targetLabel string) []string {
	return []string{"Key", sourceLabel, targetLabel, "Reviewer_Notes", "Status"}
}

// Writer serializes rows as comma-separated text with a fixed header.
type Writer struct {
	sourceLabel string
	targetLabel string
	useCRLF     bool
}

// WriterOption configures a Writer.
type WriterOption func(*Writer)

// WithLabels sets the header names of the source and target columns.
// Empty labels keep the defaults.
func WithLabels(source, target string) WriterOption {
	return func(w *Writer) {
		if source != "" {
			w.sourceLabel = source
		}
		if target != "" {
			w.targetLabel = target
		}
	}
}

// WithLF terminates records with a bare "\n" instead of "\r\n".
func WithLF() WriterOption {
	return func(w *Writer) {
		w.useCRLF = false
	}
}

// NewWriter creates a Writer with the English/Indonesian header and CRLF
// record terminators.
func NewWriter(opts ...WriterOption) *Writer {
	w := &Writer{
		sourceLabel: DefaultSourceLabel,
		targetLabel: DefaultTargetLabel,
		useCRLF:     true,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Columns returns the header written by w.
func (w *Writer) Columns() []string {
	return Columns(w.sourceLabel, w.targetLabel)
}

// Encode writes the header followed by one record per row to dst.
func (w *Writer) Encode(dst io.Writer, rows []Row) error {
	cw := csv.NewWriter(dst)
	cw.UseCRLF = w.useCRLF

	if err := cw.Write(w.Columns()); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	for _, r := range rows {
		if err := cw.Write([]string{r.Key, r.Source, r.Target, r.ReviewerNotes, r.Status}); err != nil {
			return fmt.Errorf("%w: %w", ErrWrite, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	return nil
}

// Render returns the encoded review file.
func (w *Writer) Render(rows []Row) ([]byte, error) {
	var buf bytes.Buffer
	if err := w.Encode(&buf, rows); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteFile renders rows and replaces the file at path with the result.
// The content is written to a temporary file next to the destination and
// renamed into place, so a failed run leaves any existing file untouched.
//
// A symlink at path is followed and its target is replaced. An existing
// file keeps its permission bits; new files get 0644. The rename needs
// write access to the destination directory, so a writable file inside a
// read-only directory cannot be replaced.
func (w *Writer) WriteFile(path string, rows []Row) error {
	data, err := w.Render(rows)
	if err != nil {
		return err
	}

	target, mode, err := resolveTarget(path)
	if err != nil {
		return fmt.Errorf("%w: %q: %w", ErrWrite, path, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(target), "."+filepath.Base(target)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: %q: %w", ErrWrite, path, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: %q: %w", ErrWrite, path, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: %q: %w", ErrWrite, path, err)
	}
	if err := os.Chmod(tmpName, mode); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: %q: %w", ErrWrite, path, err)
	}
	if err := os.Rename(tmpName, target); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: %q: %w", ErrWrite, path, err)
	}

	return nil
}

// resolveTarget follows symlinks at path and returns the file to replace
// with the permission bits the new file should carry.
func resolveTarget(path string) (string, fs.FileMode, error) {
	resolved, err := filepath.EvalSymlinks(path)
	if errors.Is(err, fs.ErrNotExist) {
		return path, defaultFileMode, nil
	}
	if err != nil {
		return "", 0, err
	}

	info, err := os.Stat(resolved)
	if err != nil {
		return "", 0, err
	}
	if !info.Mode().IsRegular() {
		return resolved, defaultFileMode, nil
	}
	return resolved, info.Mode().Perm(), nil
}
