package files

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/avicente/tabload/internal/files/filesystem"
	"github.com/avicente/tabload/pkg/tabload"
)

// Selector resolves input files against a filesystem provider.
type Selector struct {
	fsProvider filesystem.Provider
}

// NewSelector creates a selector backed by the OS filesystem.
func NewSelector() *Selector {
	return &Selector{fsProvider: filesystem.NewOSFileSystem()}
}

// NewSelectorWithFS creates a selector with a custom filesystem provider.
// This is primarily useful for testing with in-memory filesystems.
// Panics if fsProvider is nil.
func NewSelectorWithFS(fsProvider filesystem.Provider) *Selector {
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	return &Selector{fsProvider: fsProvider}
}

// Select returns the ordered list of files to load.
//
// The explicit list semantics mirror the configuration surface:
//   - nil: scan dir (non-recursive) for supported extensions, sorted by
//     full path; an empty scan is an error.
//   - empty: process nothing. This is a deliberate configuration state,
//     never a fallback to scanning.
//   - non-empty: each entry is taken as-is when absolute, otherwise joined
//     to dir. Validation is fail-fast: the first missing entry aborts.
//     Order and duplicates are preserved.
func (s *Selector) Select(dir string, explicit []string) ([]string, error) {
	info, err := s.fsProvider.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", tabload.ErrDirectoryNotFound, dir)
	}

	if explicit != nil {
		return s.resolveExplicit(dir, explicit)
	}
	return s.scan(dir)
}

func (s *Selector) resolveExplicit(dir string, names []string) ([]string, error) {
	resolved := make([]string, 0, len(names))
	for _, name := range names {
		path := name
		if !filepath.IsAbs(name) {
			path = filepath.Join(dir, name)
		}
		info, err := s.fsProvider.Stat(path)
		if err != nil || info.IsDir() {
			return nil, fmt.Errorf("%w: %s", tabload.ErrFileNotFound, path)
		}
		resolved = append(resolved, path)
	}
	return resolved, nil
}

func (s *Selector) scan(dir string) ([]string, error) {
	entries, err := s.fsProvider.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", tabload.ErrDirectoryNotFound, dir)
	}

	var matches []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if tabload.IsSupportedExtension(filepath.Ext(entry.Name())) {
			matches = append(matches, filepath.Join(dir, entry.Name()))
		}
	}

	if len(matches) == 0 {
		return nil, fmt.Errorf("%w: no tabular files (%v) in %s",
			tabload.ErrFileNotFound, tabload.SupportedExtensions, dir)
	}

	// Sorted for a stable processing order across runs.
	sort.Strings(matches)
	return matches, nil
}
