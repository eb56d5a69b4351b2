package schema

import (
	"fmt"
	"strings"
)

// CreateSQL genera el CREATE TABLE postgres de la tabla, nombrando cada
// constraint según la convención (nada queda con nombre autogenerado por el
// motor). Los índices van aparte en IndexSQL: pgx no acepta múltiples
// sentencias en un mismo Exec.
func CreateSQL(t Table) string {
	var b strings.Builder

	fmt.Fprintf(&b, "CREATE TABLE IF NOT EXISTS %s (\n", t.Name)

	lines := make([]string, 0, len(t.Columns)+4)
	for _, c := range t.Columns {
		null := " NOT NULL"
		if c.Nullable {
			null = ""
		}
		lines = append(lines, fmt.Sprintf("\t%s %s%s", c.Name, c.DataType, null))
	}

	if pk := t.PrimaryKey; pk != nil {
		lines = append(lines, fmt.Sprintf("\tCONSTRAINT %s PRIMARY KEY (%s)", pk.Name, pk.Column))
	}
	for _, u := range t.Uniques {
		lines = append(lines, fmt.Sprintf("\tCONSTRAINT %s UNIQUE (%s)", u.Name, u.Column))
	}
	for _, c := range t.Checks {
		lines = append(lines, fmt.Sprintf("\tCONSTRAINT %s CHECK (%s)", c.Name, c.Expression))
	}
	for _, fk := range t.ForeignKeys {
		onDelete := fk.OnDelete
		if onDelete == "" {
			onDelete = NoAction
		}
		lines = append(lines, fmt.Sprintf(
			"\tCONSTRAINT %s FOREIGN KEY (%s) REFERENCES %s (%s) ON DELETE %s",
			fk.Name, fk.Column, fk.ReferencedTable, fk.ReferencedColumn, onDelete,
		))
	}

	b.WriteString(strings.Join(lines, ",\n"))
	b.WriteString("\n);")

	return b.String()
}

// IndexSQL genera una sentencia CREATE INDEX por índice declarado.
func IndexSQL(t Table) []string {
	out := make([]string, 0, len(t.Indexes))
	for _, ix := range t.Indexes {
		out = append(out, fmt.Sprintf("CREATE INDEX IF NOT EXISTS %s ON %s (%s);", ix.Name, t.Name, ix.Column))
	}
	return out
}
