package schema

import "github.com/go-openapi/inflect"

// Options expone las decisiones de esquema que el modelo deja abiertas.
type Options struct {
	// AnimalOnDelete define qué pasa con los animales cuando se borra su
	// cuidador o recinto. No hay política declarada en el modelo: default
	// NO ACTION (el delete falla mientras haya animales referenciando).
	// SET NULL es válido porque ambas FKs son nullable.
	AnimalOnDelete ReferentialAction
}

// TableName deriva el nombre de tabla del nombre de entidad:
// snake_case + plural ("Zookeeper" -> "zookeepers").
func TableName(entity string) string {
	return inflect.Pluralize(inflect.Underscore(entity))
}

// Tables construye el catálogo de las tres tablas del zoológico, con todos
// los constraints nombrados por la convención.
func Tables(opts Options) []Table {
	onDelete := opts.AnimalOnDelete
	if onDelete == "" {
		onDelete = NoAction
	}

	zookeepers := TableName("Zookeeper")
	enclosures := TableName("Enclosure")
	animals := TableName("Animal")

	return []Table{
		{
			Name: zookeepers,
			Columns: []Column{
				{Name: "id", DataType: "bigserial"},
				{Name: "name", DataType: "text", Nullable: true},
				{Name: "birthday", DataType: "date", Nullable: true},
			},
			PrimaryKey: &PrimaryKey{Name: PrimaryKeyName(zookeepers), Column: "id"},
			Uniques: []UniqueConstraint{
				{Name: UniqueName(zookeepers, "name"), Column: "name"},
			},
		},
		{
			Name: enclosures,
			Columns: []Column{
				{Name: "id", DataType: "bigserial"},
				{Name: "environment", DataType: "text", Nullable: true},
				{Name: "open_to_visitors", DataType: "boolean", Nullable: true},
			},
			PrimaryKey: &PrimaryKey{Name: PrimaryKeyName(enclosures), Column: "id"},
		},
		{
			Name: animals,
			Columns: []Column{
				{Name: "id", DataType: "bigserial"},
				{Name: "name", DataType: "text", Nullable: true},
				{Name: "species", DataType: "text", Nullable: true},
				{Name: "zookeeper_id", DataType: "bigint", Nullable: true},
				{Name: "enclosure_id", DataType: "bigint", Nullable: true},
			},
			PrimaryKey: &PrimaryKey{Name: PrimaryKeyName(animals), Column: "id"},
			Uniques: []UniqueConstraint{
				{Name: UniqueName(animals, "name"), Column: "name"},
			},
			ForeignKeys: []ForeignKey{
				{
					Name:             ForeignKeyName(animals, "zookeeper_id", zookeepers),
					Column:           "zookeeper_id",
					ReferencedTable:  zookeepers,
					ReferencedColumn: "id",
					OnDelete:         onDelete,
				},
				{
					Name:             ForeignKeyName(animals, "enclosure_id", enclosures),
					Column:           "enclosure_id",
					ReferencedTable:  enclosures,
					ReferencedColumn: "id",
					OnDelete:         onDelete,
				},
			},
			Indexes: []Index{
				{Name: IndexName("zookeeper_id"), Column: "zookeeper_id"},
				{Name: IndexName("enclosure_id"), Column: "enclosure_id"},
			},
		},
	}
}
