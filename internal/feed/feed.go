package feed

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"strings"
)

// ErrUnsupportedInput is returned for inputs that are neither a directory
// nor a zip archive.
var ErrUnsupportedInput = errors.New("input must be a directory or a .zip archive")

// Feed gives access to the files of a GTFS feed, whether zipped or unpacked.
type Feed struct {
	path   string
	fsys   fs.FS
	closer io.Closer
	logger *slog.Logger
}

// Open opens a feed from a directory or a zip archive.
func Open(p string, logger *slog.Logger) (*Feed, error) {
	info, err := os.Stat(p)
	if err != nil {
		return nil, fmt.Errorf("stat feed: %w", err)
	}

	f := &Feed{path: p, logger: logger}
	switch {
	case info.IsDir():
		f.fsys = os.DirFS(p)
	case strings.EqualFold(path.Ext(info.Name()), ".zip"):
		r, err := zip.OpenReader(p)
		if err != nil {
			return nil, fmt.Errorf("open zip: %w", err)
		}
		f.fsys = r
		f.closer = r
	default:
		return nil, fmt.Errorf("open %s: %w", p, ErrUnsupportedInput)
	}

	// Some producers zip the feed folder instead of its contents.
	if sub, ok := nestedRoot(f.fsys); ok {
		logger.Info("feed files found in nested directory", "dir", sub)
		nested, err := fs.Sub(f.fsys, sub)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("open nested directory %s: %w", sub, err)
		}
		f.fsys = nested
	}

	logger.Info("feed opened", "path", p)
	return f, nil
}

// NewFromFS wraps an already opened file system.
func NewFromFS(name string, fsys fs.FS, logger *slog.Logger) *Feed {
	return &Feed{path: name, fsys: fsys, logger: logger}
}

// Path is the location the feed was opened from.
func (f *Feed) Path() string {
	return f.path
}

// Filenames lists the regular files at the feed root in lexical order.
func (f *Feed) Filenames() []string {
	entries, err := fs.ReadDir(f.fsys, ".")
	if err != nil {
		f.logger.Warn("cannot list feed files", "error", err)
		return nil
	}
	var names []string
	for _, e := range entries {
		if e.Type().IsRegular() {
			names = append(names, e.Name())
		}
	}
	return names
}

// Has reports whether the feed contains the named file.
func (f *Feed) Has(filename string) bool {
	info, err := fs.Stat(f.fsys, filename)
	return err == nil && info.Mode().IsRegular()
}

// Source opens a row source for filename. It reports false when the file is
// absent, cannot be opened, or has no header line.
func (f *Feed) Source(filename string) (RowSource, bool) {
	rc, err := f.fsys.Open(filename)
	if err != nil {
		f.logger.Debug("cannot open feed file", "file", filename, "error", err)
		return nil, false
	}
	src, err := NewCSVSource(filename, rc, f.logger)
	if err != nil {
		rc.Close()
		f.logger.Debug("cannot read feed file", "file", filename, "error", err)
		return nil, false
	}
	return src, true
}

// Close releases the underlying archive, if any.
func (f *Feed) Close() error {
	if f.closer == nil {
		return nil
	}
	return f.closer.Close()
}

func nestedRoot(fsys fs.FS) (string, bool) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return "", false
	}
	var dirs []string
	for _, e := range entries {
		if e.Type().IsRegular() && strings.HasSuffix(e.Name(), ".txt") {
			return "", false
		}
		if e.IsDir() && !strings.HasPrefix(e.Name(), "__MACOSX") {
			dirs = append(dirs, e.Name())
		}
	}
	if len(dirs) != 1 {
		return "", false
	}
	return dirs[0], true
}
