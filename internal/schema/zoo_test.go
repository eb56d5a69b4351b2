package schema

import (
	"bytes"
	"strings"
	"testing"
)

func TestTableName(t *testing.T) {
	cases := map[string]string{
		"Zookeeper": "zookeepers",
		"Enclosure": "enclosures",
		"Animal":    "animals",
	}
	for entity, want := range cases {
		if got := TableName(entity); got != want {
			t.Errorf("TableName(%q) = %q, want %q", entity, got, want)
		}
	}
}

func TestTables_Catalog(t *testing.T) {
	tables := Tables(Options{})
	if len(tables) != 3 {
		t.Fatalf("expected 3 tables, got %d", len(tables))
	}

	byName := map[string]Table{}
	for _, tb := range tables {
		byName[tb.Name] = tb
	}

	zk, ok := byName["zookeepers"]
	if !ok {
		t.Fatalf("missing zookeepers table")
	}
	if zk.PrimaryKey == nil || zk.PrimaryKey.Name != "pk_zookeepers" {
		t.Errorf("zookeepers pk = %+v, want pk_zookeepers", zk.PrimaryKey)
	}
	if len(zk.Uniques) != 1 || zk.Uniques[0].Name != "uq_zookeepers_name" {
		t.Errorf("zookeepers uniques = %+v, want uq_zookeepers_name", zk.Uniques)
	}

	en, ok := byName["enclosures"]
	if !ok {
		t.Fatalf("missing enclosures table")
	}
	if en.PrimaryKey == nil || en.PrimaryKey.Name != "pk_enclosures" {
		t.Errorf("enclosures pk = %+v, want pk_enclosures", en.PrimaryKey)
	}
	wantCols := []string{"id", "environment", "open_to_visitors"}
	gotCols := en.ColumnNames()
	if strings.Join(gotCols, ",") != strings.Join(wantCols, ",") {
		t.Errorf("enclosures columns = %v, want %v", gotCols, wantCols)
	}

	an, ok := byName["animals"]
	if !ok {
		t.Fatalf("missing animals table")
	}
	if len(an.ForeignKeys) != 2 {
		t.Fatalf("animals fks = %+v, want 2", an.ForeignKeys)
	}
	if an.ForeignKeys[0].Name != "fk_animals_zookeeper_id_zookeepers" {
		t.Errorf("fk[0] = %q", an.ForeignKeys[0].Name)
	}
	if an.ForeignKeys[1].Name != "fk_animals_enclosure_id_enclosures" {
		t.Errorf("fk[1] = %q", an.ForeignKeys[1].Name)
	}
	if len(an.Indexes) != 2 || an.Indexes[0].Name != "ix_zookeeper_id" || an.Indexes[1].Name != "ix_enclosure_id" {
		t.Errorf("animals indexes = %+v", an.Indexes)
	}
	if len(an.Uniques) != 1 || an.Uniques[0].Name != "uq_animals_name" {
		t.Errorf("animals uniques = %+v, want uq_animals_name", an.Uniques)
	}
}

func TestTables_OnDeleteOption(t *testing.T) {
	// sin opción: NO ACTION
	for _, fk := range findTable(t, Tables(Options{}), "animals").ForeignKeys {
		if fk.OnDelete != NoAction {
			t.Errorf("fk %s on_delete = %q, want NO ACTION", fk.Name, fk.OnDelete)
		}
	}

	// con SET NULL configurado
	for _, fk := range findTable(t, Tables(Options{AnimalOnDelete: SetNull}), "animals").ForeignKeys {
		if fk.OnDelete != SetNull {
			t.Errorf("fk %s on_delete = %q, want SET NULL", fk.Name, fk.OnDelete)
		}
	}
}

func TestCreateSQL(t *testing.T) {
	tables := Tables(Options{})
	an := findTable(t, tables, "animals")
	zk := findTable(t, tables, "zookeepers")

	zkSQL := CreateSQL(zk)
	for _, want := range []string{
		"CREATE TABLE IF NOT EXISTS zookeepers (",
		"id bigserial NOT NULL",
		"CONSTRAINT pk_zookeepers PRIMARY KEY (id)",
		"CONSTRAINT uq_zookeepers_name UNIQUE (name)",
	} {
		if !strings.Contains(zkSQL, want) {
			t.Errorf("zookeepers DDL missing %q:\n%s", want, zkSQL)
		}
	}

	anSQL := CreateSQL(an)
	for _, want := range []string{
		"CONSTRAINT fk_animals_zookeeper_id_zookeepers FOREIGN KEY (zookeeper_id) REFERENCES zookeepers (id) ON DELETE NO ACTION",
		"CONSTRAINT fk_animals_enclosure_id_enclosures FOREIGN KEY (enclosure_id) REFERENCES enclosures (id) ON DELETE NO ACTION",
	} {
		if !strings.Contains(anSQL, want) {
			t.Errorf("animals DDL missing %q:\n%s", want, anSQL)
		}
	}

	ixSQL := IndexSQL(an)
	wantIx := []string{
		"CREATE INDEX IF NOT EXISTS ix_zookeeper_id ON animals (zookeeper_id);",
		"CREATE INDEX IF NOT EXISTS ix_enclosure_id ON animals (enclosure_id);",
	}
	if len(ixSQL) != len(wantIx) {
		t.Fatalf("index statements = %v, want %v", ixSQL, wantIx)
	}
	for i := range wantIx {
		if ixSQL[i] != wantIx[i] {
			t.Errorf("index sql[%d] = %q, want %q", i, ixSQL[i], wantIx[i])
		}
	}
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteYAML(&buf, Tables(Options{})); err != nil {
		t.Fatalf("WriteYAML: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"tables:",
		"name: zookeepers",
		"name: enclosures",
		"name: animals",
		"name: fk_animals_zookeeper_id_zookeepers",
		"on_delete: NO ACTION",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("yaml export missing %q:\n%s", want, out)
		}
	}
}

func findTable(t *testing.T, tables []Table, name string) Table {
	t.Helper()
	for _, tb := range tables {
		if tb.Name == name {
			return tb
		}
	}
	t.Fatalf("table %q not found", name)
	return Table{}
}
