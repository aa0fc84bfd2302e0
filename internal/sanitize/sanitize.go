package sanitize

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

const (
	// tableFallback is substituted when a file name sanitizes to nothing.
	tableFallback = "table"

	// columnFallback is substituted when a header cell sanitizes to nothing.
	columnFallback = "col"
)

var (
	// invalidTableChars matches runs of characters that may not appear in a
	// table identifier. Applied after lowercasing, so uppercase letters are
	// already gone.
	invalidTableChars = regexp.MustCompile(`[^a-z0-9_]+`)

	// invalidColumnChars is the column-header variant: letters of either
	// case survive the substitution and are lowered afterwards.
	invalidColumnChars = regexp.MustCompile(`[^a-zA-Z0-9_]+`)

	underscoreRuns = regexp.MustCompile(`_+`)
)

// TableName maps a file path to a table identifier. The directory and
// extension are stripped first; the remainder goes through the common
// normalization pipeline with "table" as the empty fallback.
//
//	"C:/data/Ventas 2024-Ano.csv" -> "ventas_2024_ano"
//	"!!!.csv"                     -> "table"
//	"123.csv"                     -> "t_123"
func TableName(path string) string {
	base := filepath.Base(path)
	// A bare dotfile like ".csv" has no name to strip the extension from.
	if ext := filepath.Ext(base); ext != base {
		base = strings.TrimSuffix(base, ext)
	}
	base = strings.TrimSpace(strings.ToLower(base))
	base = invalidTableChars.ReplaceAllString(base, "_")
	return finish(base, tableFallback)
}

// ColumnName maps a raw header cell to a column identifier. Substitution
// happens before lowercasing (the invalid-character class is
// case-insensitive) and the empty fallback is "col".
//
//	"Código Postal" -> "c_digo_postal"
//	""              -> "col"
func ColumnName(raw string) string {
	s := strings.TrimSpace(raw)
	s = invalidColumnChars.ReplaceAllString(s, "_")
	s = strings.ToLower(s)
	return finish(s, columnFallback)
}

// finish applies the shared tail of the pipeline: collapse underscore runs,
// trim boundary underscores, substitute the fallback for empty results, and
// guard against a leading digit.
func finish(s, fallback string) string {
	s = underscoreRuns.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if s == "" {
		return fallback
	}
	if s[0] >= '0' && s[0] <= '9' {
		s = "t_" + s
	}
	return s
}

// Columns sanitizes every header cell and resolves collisions
// deterministically: the first occurrence keeps its name, later ones get
// numeric suffixes (_2, _3, ...). A suffixed candidate that itself collides
// keeps incrementing, so the result is always collision-free.
//
//	["A-B", "A_B", "a b"] -> ["a_b", "a_b_2", "a_b_3"]
func Columns(headers []string) []string {
	out := make([]string, len(headers))
	seen := make(map[string]int, len(headers))

	for i, h := range headers {
		name := ColumnName(h)
		if n, dup := seen[name]; dup {
			base := name
			for dup {
				n++
				name = fmt.Sprintf("%s_%d", base, n)
				_, dup = seen[name]
			}
			seen[base] = n
		}
		seen[name] = 1
		out[i] = name
	}
	return out
}
