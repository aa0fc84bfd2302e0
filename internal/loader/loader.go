package loader

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/avicente/tabload/internal/files"
	"github.com/avicente/tabload/internal/logging"
	"github.com/avicente/tabload/internal/reader"
	"github.com/avicente/tabload/internal/sanitize"
	"github.com/avicente/tabload/pkg/tabload"
)

// FileReader parses one file path into a Table. It is the loader's view of
// the reader registry.
type FileReader interface {
	Read(path string) (*tabload.Table, error)
}

// FileSelector resolves the set of files to load.
type FileSelector interface {
	Select(dir string, explicit []string) ([]string, error)
}

// Loader runs one load: every selected file becomes one new table.
type Loader struct {
	selector FileSelector
	reader   FileReader
	db       tabload.Database
	logger   tabload.Logger
}

// New creates a Loader. A nil logger falls back to a NullLogger.
func New(selector FileSelector, fileReader FileReader, db tabload.Database, logger tabload.Logger) *Loader {
	if selector == nil {
		panic("loader.New: selector cannot be nil")
	}
	if fileReader == nil {
		panic("loader.New: fileReader cannot be nil")
	}
	if db == nil {
		panic("loader.New: db cannot be nil")
	}
	if logger == nil {
		logger = logging.NewNullLogger()
	}
	return &Loader{
		selector: selector,
		reader:   fileReader,
		db:       db,
		logger:   logger,
	}
}

// Run loads every selected file into its own table, in order, and stops at
// the first failure. Results for the files loaded before the failure are
// returned alongside the error.
func (l *Loader) Run(ctx context.Context, cfg *tabload.RunConfig) ([]tabload.LoadResult, error) {
	paths, err := l.selector.Select(cfg.Dir, cfg.Files)
	if err != nil {
		return nil, err
	}

	if len(paths) == 0 {
		l.logger.Info("No files to load")
		return []tabload.LoadResult{}, nil
	}

	l.logger.Verbose("Selected %d file(s) in %s", len(paths), cfg.Dir)

	results := make([]tabload.LoadResult, 0, len(paths))
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		result, err := l.loadFile(ctx, cfg, path)
		if err != nil {
			return results, fmt.Errorf("loading %s: %w", filepath.Base(path), err)
		}
		results = append(results, result)
	}

	return results, nil
}

func (l *Loader) loadFile(ctx context.Context, cfg *tabload.RunConfig, path string) (tabload.LoadResult, error) {
	base := filepath.Base(path)
	l.logger.Info("Processing %s", base)

	table, err := l.reader.Read(path)
	if err != nil {
		return tabload.LoadResult{}, err
	}
	if len(table.Headers) == 0 {
		return tabload.LoadResult{}, fmt.Errorf("file has no columns")
	}

	spec := tabload.TableSpec{
		Schema:  cfg.Schema,
		Name:    sanitize.TableName(path),
		Columns: sanitize.Columns(table.Headers),
	}
	l.logger.Verbose("Target table %s (%d columns, %d rows)", spec.Qualified(), len(spec.Columns), len(table.Rows))

	if err := l.db.CreateTable(ctx, spec); err != nil {
		return tabload.LoadResult{}, err
	}

	rows, err := l.db.InsertRows(ctx, spec, table.Rows, cfg.BatchSize)
	if err != nil {
		return tabload.LoadResult{}, fmt.Errorf("writing to %s: %w", spec.Qualified(), err)
	}

	l.logger.Info("Loaded %d row(s) into %s", rows, spec.Qualified())

	return tabload.LoadResult{
		File:  base,
		Table: spec.Qualified(),
		Rows:  rows,
	}, nil
}

// Verify the production collaborators satisfy the loader's interfaces.
var (
	_ FileSelector = (*files.Selector)(nil)
	_ FileReader   = (*reader.Registry)(nil)
)
