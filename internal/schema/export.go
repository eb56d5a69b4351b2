package schema

import (
	"io"

	"gopkg.in/yaml.v3"
)

// Catalog es la forma exportable del esquema completo.
type Catalog struct {
	Tables []Table `yaml:"tables"`
}

// WriteYAML vuelca el catálogo en YAML (revisión humana, diffs de esquema).
func WriteYAML(w io.Writer, tables []Table) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(Catalog{Tables: tables}); err != nil {
		return err
	}
	return enc.Close()
}
