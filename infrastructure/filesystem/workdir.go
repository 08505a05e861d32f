package filesystem

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Workdir is the per-invocation working directory. Each invocation gets a
// uniquely-named directory so concurrent trims never share state.
type Workdir struct {
	path string
}

// NewWorkdir creates a fresh working directory under baseDir. An empty
// baseDir falls back to the process temp directory.
func NewWorkdir(baseDir string) (*Workdir, error) {
	path, err := os.MkdirTemp(baseDir, "vidtrim_")
	if err != nil {
		return nil, fmt.Errorf("failed to create working directory: %w", err)
	}
	return &Workdir{path: path}, nil
}

// Path returns the directory's location.
func (w *Workdir) Path() string {
	return w.path
}

// Contains reports whether path resides inside the working directory.
func (w *Workdir) Contains(path string) bool {
	rel, err := filepath.Rel(w.path, path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// Remove deletes the working directory and everything in it.
func (w *Workdir) Remove() error {
	return os.RemoveAll(w.path)
}
