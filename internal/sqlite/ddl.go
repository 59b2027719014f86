package sqlite

import (
	"fmt"
	"strings"

	"github.com/ledgerline/rentbook/pkg/types"
)

// schemaDDL generates the full DDL from the schema registry: one table per
// element, its extension-attribute table, its child-line table when
// declared, the dictionary tables, and the extension-attribute
// declarations table. All statements are idempotent (IF NOT EXISTS) so
// Attach never destroys existing rows.
func schemaDDL(prefix string) []string {
	var stmts []string

	for _, name := range types.ElementNames {
		s := types.Schemas[name]
		stmts = append(stmts, elementDDL(prefix, s)...)
	}

	for _, d := range types.Dictionaries {
		stmts = append(stmts, fmt.Sprintf(
			`CREATE TABLE IF NOT EXISTS %s%s (
    rowid INTEGER PRIMARY KEY AUTOINCREMENT,
    code VARCHAR(16) NOT NULL UNIQUE,
    label VARCHAR(128) NOT NULL,
    active INTEGER NOT NULL DEFAULT 1
);`, prefix, d.Table))
	}

	stmts = append(stmts, fmt.Sprintf(
		`CREATE TABLE IF NOT EXISTS %sextrafield_def (
    rowid INTEGER PRIMARY KEY AUTOINCREMENT,
    element VARCHAR(64) NOT NULL,
    name VARCHAR(64) NOT NULL,
    type VARCHAR(16) NOT NULL,
    label VARCHAR(128),
    is_unique INTEGER NOT NULL DEFAULT 0,
    position INTEGER NOT NULL DEFAULT 0,
    UNIQUE (element, name)
);`, prefix))

	return stmts
}

// elementDDL builds the statements for one element: main table, indexes,
// extension-attribute values table, and the child-line table if any.
func elementDDL(prefix string, s *types.Schema) []string {
	var stmts []string

	var cols []string
	for _, f := range s.Fields {
		cols = append(cols, columnDDL(f))
	}
	stmts = append(stmts, fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s%s (\n    %s\n);",
		prefix, s.Table, strings.Join(cols, ",\n    ")))

	for _, f := range s.Fields {
		if f.Indexed && f.Role != types.RoleIdentity {
			stmts = append(stmts, fmt.Sprintf(
				"CREATE INDEX IF NOT EXISTS idx_%s_%s ON %s%s (%s);",
				s.Table, f.Name, prefix, s.Table, f.Name))
		}
	}

	stmts = append(stmts, fmt.Sprintf(
		`CREATE TABLE IF NOT EXISTS %s%s_extrafields (
    rowid INTEGER PRIMARY KEY AUTOINCREMENT,
    fk_object INTEGER NOT NULL,
    name VARCHAR(64) NOT NULL,
    value TEXT,
    UNIQUE (fk_object, name)
);`, prefix, s.Table))

	if s.HasLines() {
		lineCols := []string{
			"rowid INTEGER PRIMARY KEY AUTOINCREMENT",
			fmt.Sprintf("%s INTEGER NOT NULL", s.Child.ParentKey),
		}
		for _, f := range s.Child.Fields {
			lineCols = append(lineCols, columnDDL(f))
		}
		stmts = append(stmts, fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s%s (\n    %s\n);",
			prefix, s.Child.Table, strings.Join(lineCols, ",\n    ")))
		stmts = append(stmts, fmt.Sprintf(
			"CREATE INDEX IF NOT EXISTS idx_%s_%s ON %s%s (%s);",
			s.Child.Table, s.Child.ParentKey, prefix, s.Child.Table, s.Child.ParentKey))
	}

	return stmts
}

// columnDDL maps one field descriptor to a column definition.
func columnDDL(f types.Field) string {
	if f.Role == types.RoleIdentity {
		return f.Name + " INTEGER PRIMARY KEY AUTOINCREMENT"
	}

	col := f.Name + " " + columnType(f)
	if f.NotNull == types.Required {
		col += " NOT NULL"
	}
	if f.Default != "" && f.Default != types.DefaultProvisional {
		if f.Type == types.TypeVarchar || f.Type == types.TypeText {
			col += " DEFAULT '" + f.Default + "'"
		} else {
			col += " DEFAULT " + f.Default
		}
	}
	return col
}

// columnType maps a semantic field type to a SQLite column type. Dates and
// datetimes are stored as TEXT; decimals use NUMERIC affinity so the
// reconciliation aggregates work directly in SQL.
func columnType(f types.Field) string {
	switch f.Type {
	case types.TypeInteger, types.TypeReference, types.TypeBoolean:
		return "INTEGER"
	case types.TypeDecimal:
		return "NUMERIC"
	case types.TypeVarchar:
		if f.Length > 0 {
			return fmt.Sprintf("VARCHAR(%d)", f.Length)
		}
		return "TEXT"
	default: // text, list, date, datetime
		return "TEXT"
	}
}
