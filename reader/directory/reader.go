// Package directory loads documents from a local file tree.
//
// Files are read as raw text, either concatenated into one document or
// returned one document per file. Enumeration order of the directory is the
// only ordering guarantee. Unlike the conversation reader there is no
// pagination and no best-effort policy: any unreadable or non-regular entry
// fails the load.
package directory

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/skeinlabs/skein/core"
)

// Reader loads the regular files of a single directory as documents.
type Reader struct {
	dir   string
	files []string
}

// Option configures a Reader.
type Option func(*readerOptions)

type readerOptions struct {
	includeHidden bool
}

// WithHiddenFiles includes dot-prefixed entries, which are excluded by
// default.
func WithHiddenFiles() Option {
	return func(o *readerOptions) {
		o.includeHidden = true
	}
}

// NewReader enumerates the directory and validates every entry up front.
// Any non-regular entry (subdirectory, symlink, device) fails construction
// with ErrNotAFile.
func NewReader(dir string, opts ...Option) (*Reader, error) {
	options := &readerOptions{}
	for _, opt := range opts {
		opt(options)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !options.includeHidden && strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		if !entry.Type().IsRegular() {
			return nil, fmt.Errorf("%w: %s", ErrNotAFile, filepath.Join(dir, entry.Name()))
		}
		files = append(files, entry.Name())
	}

	return &Reader{dir: dir, files: files}, nil
}

// LoadDocuments reads every enumerated file. With concatenate true it
// returns a single document whose body joins the file contents with
// newlines; otherwise it returns one document per file, tagged with the
// file name under the "file" key.
func (r *Reader) LoadDocuments(concatenate bool) ([]core.Document, error) {
	bodies := make([]string, 0, len(r.files))
	for _, name := range r.files {
		data, err := os.ReadFile(filepath.Join(r.dir, name))
		if err != nil {
			return nil, err
		}
		bodies = append(bodies, string(data))
	}

	if concatenate {
		return []core.Document{core.NewDocument(strings.Join(bodies, "\n"), nil)}, nil
	}

	docs := make([]core.Document, 0, len(bodies))
	for i, body := range bodies {
		docs = append(docs, core.NewDocument(body, map[string]string{"file": r.files[i]}))
	}
	return docs, nil
}
