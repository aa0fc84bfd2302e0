package db

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/avicente/tabload/pkg/tabload"
)

// pgDuplicateTable is the SQLSTATE PostgreSQL raises when CREATE TABLE hits
// an existing relation.
const pgDuplicateTable = "42P07"

// Store implements tabload.Database on a pgx connection pool. Every column
// is created as text and every value is written verbatim, so the database
// sees exactly the strings the input files contained.
type Store struct {
	pool *pgxpool.Pool
}

// NewStore wraps an established connection pool. The Store takes ownership:
// Close closes the pool.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// CreateTable creates spec.Qualified() with one text column per entry in
// spec.Columns. If the table already exists the error wraps
// tabload.ErrTableExists and the existing table is left untouched.
func (s *Store) CreateTable(ctx context.Context, spec tabload.TableSpec) error {
	sql := buildCreateTableSQL(spec)

	if _, err := s.pool.Exec(ctx, sql); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgDuplicateTable {
			return fmt.Errorf("table %s already exists: %w", spec.Qualified(), tabload.ErrTableExists)
		}
		return fmt.Errorf("creating table %s: %w", spec.Qualified(), err)
	}
	return nil
}

// InsertRows bulk-inserts rows in multi-row INSERT statements of at most
// batchSize rows each. The batch is clamped so a single statement never
// exceeds PostgreSQL's bind parameter limit.
func (s *Store) InsertRows(ctx context.Context, spec tabload.TableSpec, rows [][]string, batchSize int) (int64, error) {
	if len(rows) == 0 {
		return 0, nil
	}
	if len(spec.Columns) == 0 {
		return 0, fmt.Errorf("table %s has no columns", spec.Qualified())
	}

	if maxRows := tabload.MaxBindParameters / len(spec.Columns); batchSize > maxRows {
		batchSize = maxRows
	}
	if batchSize < 1 {
		batchSize = 1
	}

	var total int64
	for start := 0; start < len(rows); start += batchSize {
		end := start + batchSize
		if end > len(rows) {
			end = len(rows)
		}

		sql, args, err := buildInsertSQL(spec, rows[start:end])
		if err != nil {
			return total, err
		}

		cmd, err := s.pool.Exec(ctx, sql, args...)
		if err != nil {
			return total, fmt.Errorf("inserting into %s (rows %d-%d): %w", spec.Qualified(), start+1, end, err)
		}
		total += cmd.RowsAffected()
	}

	return total, nil
}

// Close closes the underlying connection pool.
func (s *Store) Close() {
	s.pool.Close()
}

// buildCreateTableSQL renders the DDL for one all-text table.
// It is pure so the generated SQL can be unit tested without a database.
func buildCreateTableSQL(spec tabload.TableSpec) string {
	var b strings.Builder
	b.WriteString("CREATE TABLE ")
	b.WriteString(qualifiedIdent(spec))
	b.WriteString(" (")
	for i, c := range spec.Columns {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(pgIdent(c))
		b.WriteString(" text")
	}
	b.WriteString(");")
	return b.String()
}

// buildInsertSQL constructs a single multi-row INSERT statement and its args.
// Placeholders are numbered row-major: ($1, $2), ($3, $4), ...
func buildInsertSQL(spec tabload.TableSpec, rows [][]string) (string, []any, error) {
	var b strings.Builder
	b.WriteString("INSERT INTO ")
	b.WriteString(qualifiedIdent(spec))
	b.WriteString(" (")
	for i, c := range spec.Columns {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(pgIdent(c))
	}
	b.WriteString(") VALUES ")

	args := make([]any, 0, len(rows)*len(spec.Columns))
	p := 1
	for i, row := range rows {
		if len(row) != len(spec.Columns) {
			return "", nil, fmt.Errorf("row %d has %d values, table %s has %d columns",
				i+1, len(row), spec.Qualified(), len(spec.Columns))
		}
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString("(")
		for j := range spec.Columns {
			if j > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "$%d", p)
			args = append(args, row[j])
			p++
		}
		b.WriteString(")")
	}

	b.WriteString(";")
	return b.String(), args, nil
}

// pgIdent double-quotes a PostgreSQL identifier.
func pgIdent(id string) string {
	return `"` + strings.ReplaceAll(id, `"`, `""`) + `"`
}

func qualifiedIdent(spec tabload.TableSpec) string {
	return pgIdent(spec.Schema) + "." + pgIdent(spec.Name)
}

// Verify Store implements the interface at compile time
var _ tabload.Database = (*Store)(nil)
