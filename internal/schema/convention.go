// Package schema declara las tablas del modelo como descriptores explícitos
// y deriva nombres determinísticos para cada objeto del esquema. Sin registro
// global: el catálogo se construye al arranque y se pasa por referencia a la
// capa de persistencia.
package schema

import "fmt"

// ConstraintKind identifica el tipo de objeto a nombrar.
type ConstraintKind string

const (
	KindIndex      ConstraintKind = "index"
	KindUnique     ConstraintKind = "unique"
	KindCheck      ConstraintKind = "check"
	KindForeignKey ConstraintKind = "foreign_key"
	KindPrimaryKey ConstraintKind = "primary_key"
)

// Name deriva el nombre del constraint a partir del tipo, tabla y columna
// (más la tabla referida para FKs). Pura: mismo input, mismo nombre, sin
// importar el orden de creación.
//
//	index        ix_<column>
//	unique       uq_<table>_<column>
//	check        ck_<table>_<label>      (label viaja en column)
//	foreign key  fk_<table>_<column>_<referenced_table>
//	primary key  pk_<table>
func Name(kind ConstraintKind, table, column, referenced string) string {
	switch kind {
	case KindIndex:
		return IndexName(column)
	case KindUnique:
		return UniqueName(table, column)
	case KindCheck:
		return CheckName(table, column)
	case KindForeignKey:
		return ForeignKeyName(table, column, referenced)
	case KindPrimaryKey:
		return PrimaryKeyName(table)
	default:
		return ""
	}
}

func IndexName(column string) string {
	return fmt.Sprintf("ix_%s", column)
}

func UniqueName(table, column string) string {
	return fmt.Sprintf("uq_%s_%s", table, column)
}

func CheckName(table, label string) string {
	return fmt.Sprintf("ck_%s_%s", table, label)
}

func ForeignKeyName(table, column, referencedTable string) string {
	return fmt.Sprintf("fk_%s_%s_%s", table, column, referencedTable)
}

func PrimaryKeyName(table string) string {
	return fmt.Sprintf("pk_%s", table)
}
