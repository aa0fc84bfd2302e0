package sanitize

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

var identPattern = regexp.MustCompile(`^[a-z0-9_]+$`)

func TestTableName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain file", "ventas.csv", "ventas"},
		{"path and extension stripped", "C:/data/Ventas 2024-Ano.csv", "ventas_2024_ano"},
		{"unix path", "/srv/csvs/Clientes 2024.csv", "clientes_2024"},
		{"whitespace and doubled separators", "  Ventas__2024--Ano  .csv", "ventas_2024_ano"},
		{"empty", "", "table"},
		{"only invalid characters", "!!!", "table"},
		{"only invalid characters with extension", "!!!!.csv", "table"},
		{"leading digit", "123abc", "t_123abc"},
		{"leading digit from file", "2024 ventas.xlsx", "t_2024_ventas"},
		{"underscores collapse", "__ventas__2024__", "ventas_2024"},
		{"uppercase extension", "INFORME.XLSX", "informe"},
		{"accented characters", "año.csv", "a_o"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TableName(tt.input))
		})
	}
}

func TestTableName_Invariants(t *testing.T) {
	// Anything at all must come out as a valid lowercase identifier that
	// does not start with a digit, and sanitization must be idempotent.
	inputs := []string{
		"", " ", "!!!", "ÁÉÍÓÚ", "123", "9 lives.csv", "a.b.c.csv",
		"ventas", "_", "___", "-", "table", "t_1", "ñandú ñoño",
		"mixed CASE With Spaces", "tabs\tand\nnewlines", "emoji 🚀 name",
	}

	for _, in := range inputs {
		got := TableName(in)
		assert.Regexp(t, identPattern, got, "input %q", in)
		assert.NotRegexp(t, `^[0-9]`, got, "input %q", in)
		assert.Equal(t, got, TableName(got), "idempotence for %q", in)
	}
}

func TestColumnName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"spaces to underscore", "Fecha de Venta", "fecha_de_venta"},
		{"accented header", "Código Postal", "c_digo_postal"},
		{"nombre", "Nombre", "nombre"},
		{"empty falls back to col", "", "col"},
		{"symbols only", "%%%", "col"},
		{"leading digit guarded", "2024_total", "t_2024_total"},
		{"surrounding whitespace", "  Importe  ", "importe"},
		{"mixed separators", "Precio / Unidad (EUR)", "precio_unidad_eur"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ColumnName(tt.input))
		})
	}
}

func TestColumns_CollisionSuffixing(t *testing.T) {
	tests := []struct {
		name    string
		headers []string
		want    []string
	}{
		{
			"no collisions",
			[]string{"a", "b", "c"},
			[]string{"a", "b", "c"},
		},
		{
			"two-way collision",
			[]string{"A-B", "A_B"},
			[]string{"a_b", "a_b_2"},
		},
		{
			"three-way collision",
			[]string{"A-B", "A_B", "a b"},
			[]string{"a_b", "a_b_2", "a_b_3"},
		},
		{
			"suffix itself taken",
			[]string{"a_b_2", "a b", "a-b"},
			[]string{"a_b_2", "a_b", "a_b_3"},
		},
		{
			"empty headers collide on fallback",
			[]string{"", "%%", "col"},
			[]string{"col", "col_2", "col_3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Columns(tt.headers))
		})
	}
}
