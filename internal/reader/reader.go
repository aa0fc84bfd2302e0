package reader

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/avicente/tabload/internal/files/filesystem"
	"github.com/avicente/tabload/pkg/tabload"
)

// Registry dispatches file reads to the format-specific reader keyed by
// extension (case-insensitive).
type Registry struct {
	fsProvider filesystem.Provider
	readers    map[string]tabload.TableReader
}

// NewRegistry creates a registry with the standard format readers,
// backed by the OS filesystem. sep and encoding configure the CSV reader;
// spreadsheet formats carry their own encoding and need neither.
func NewRegistry(sep rune, encoding string) *Registry {
	return NewRegistryWithFS(filesystem.NewOSFileSystem(), sep, encoding)
}

// NewRegistryWithFS creates a registry with a custom filesystem provider.
// This is primarily useful for testing with in-memory filesystems.
// Panics if fsProvider is nil.
func NewRegistryWithFS(fsProvider filesystem.Provider, sep rune, encoding string) *Registry {
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	return &Registry{
		fsProvider: fsProvider,
		readers: map[string]tabload.TableReader{
			".csv":  NewCSVReader(sep, encoding),
			".xlsx": NewXLSXReader(),
			".xls":  NewXLSReader(),
		},
	}
}

// Read parses the file at path with the reader matching its extension.
// Unknown extensions fail with tabload.ErrUnsupportedFormat.
func (r *Registry) Read(path string) (*tabload.Table, error) {
	ext := strings.ToLower(filepath.Ext(path))
	reader, ok := r.readers[ext]
	if !ok {
		return nil, fmt.Errorf("%w: %s", tabload.ErrUnsupportedFormat, ext)
	}

	content, err := r.fsProvider.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	table, err := reader.Read(content)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return table, nil
}
