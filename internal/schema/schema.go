package schema

// Table describe una tabla del esquema relacional.
type Table struct {
	Name        string             `yaml:"name"`
	Columns     []Column           `yaml:"columns"`
	PrimaryKey  *PrimaryKey        `yaml:"primary_key,omitempty"`
	ForeignKeys []ForeignKey       `yaml:"foreign_keys,omitempty"`
	Uniques     []UniqueConstraint `yaml:"uniques,omitempty"`
	Checks      []CheckConstraint  `yaml:"checks,omitempty"`
	Indexes     []Index            `yaml:"indexes,omitempty"`
}

// Column describe una columna.
type Column struct {
	Name     string `yaml:"name"`
	DataType string `yaml:"data_type"`
	Nullable bool   `yaml:"nullable"`
}

// PrimaryKey describe la clave primaria de una tabla.
type PrimaryKey struct {
	Name   string `yaml:"name"`
	Column string `yaml:"column"`
}

// ReferentialAction es la política on-delete de una FK.
type ReferentialAction string

const (
	NoAction ReferentialAction = "NO ACTION"
	Restrict ReferentialAction = "RESTRICT"
	Cascade  ReferentialAction = "CASCADE"
	SetNull  ReferentialAction = "SET NULL"
)

// ForeignKey describe una referencia entre tablas.
type ForeignKey struct {
	Name             string            `yaml:"name"`
	Column           string            `yaml:"column"`
	ReferencedTable  string            `yaml:"referenced_table"`
	ReferencedColumn string            `yaml:"referenced_column"`
	OnDelete         ReferentialAction `yaml:"on_delete"`
}

// UniqueConstraint describe una restricción de unicidad sobre una columna.
type UniqueConstraint struct {
	Name   string `yaml:"name"`
	Column string `yaml:"column"`
}

// CheckConstraint describe una restricción check.
type CheckConstraint struct {
	Name       string `yaml:"name"`
	Expression string `yaml:"expression"`
}

// Index describe un índice no-unique.
type Index struct {
	Name   string `yaml:"name"`
	Column string `yaml:"column"`
}

// ColumnNames devuelve los nombres de columna en orden de declaración.
func (t Table) ColumnNames() []string {
	out := make([]string, 0, len(t.Columns))
	for _, c := range t.Columns {
		out = append(out, c.Name)
	}
	return out
}
