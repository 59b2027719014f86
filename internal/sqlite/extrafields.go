package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/ledgerline/rentbook/pkg/types"
)

// ExtraField describes one declared extension attribute of an element.
type ExtraField struct {
	Name     string
	Type     types.FieldType
	Label    string
	Unique   bool
	Position int
}

// extraStore persists extension attribute values in the per-element
// sidecar table. Values travel as text; the declared type is advisory for
// callers rendering them.
type extraStore struct {
	backend *Backend
}

func (x *extraStore) declared(element string) ([]ExtraField, error) {
	rows, err := x.backend.db.Query(
		"SELECT name, type, label, is_unique, position FROM "+
			x.backend.table("extrafield_def")+" WHERE element = ? ORDER BY position",
		element)
	if err != nil {
		return nil, fmt.Errorf("reading %s attribute declarations: %w", element, err)
	}
	defer rows.Close()

	var out []ExtraField
	for rows.Next() {
		var ef ExtraField
		var typ string
		var unique int
		if err := rows.Scan(&ef.Name, &typ, &ef.Label, &unique, &ef.Position); err != nil {
			return nil, fmt.Errorf("scanning attribute declaration: %w", err)
		}
		ef.Type = types.FieldType(typ)
		ef.Unique = unique != 0
		out = append(out, ef)
	}
	return out, rows.Err()
}

// persist replaces the stored attribute set with the given one inside the
// caller's transaction.
func (x *extraStore) persist(tx *sql.Tx, s *types.Schema, id int64, values map[string]any) error {
	table := x.backend.table(s.Table + "_extrafields")
	if _, err := tx.Exec("DELETE FROM "+table+" WHERE fk_object = ?", id); err != nil {
		return fmt.Errorf("clearing %s attributes: %w", s.Element, err)
	}
	for name, v := range values {
		if v == nil {
			continue
		}
		if _, err := tx.Exec(
			"INSERT INTO "+table+" (fk_object, name, value) VALUES (?, ?, ?)",
			id, name, fmt.Sprint(v)); err != nil {
			return fmt.Errorf("storing %s attribute %s: %w", s.Element, name, err)
		}
	}
	return nil
}

func (x *extraStore) load(s *types.Schema, id int64) (map[string]any, error) {
	rows, err := x.backend.db.Query(
		"SELECT name, value FROM "+x.backend.table(s.Table+"_extrafields")+
			" WHERE fk_object = ?", id)
	if err != nil {
		return nil, fmt.Errorf("loading %s attributes: %w", s.Element, err)
	}
	defer rows.Close()

	out := map[string]any{}
	for rows.Next() {
		var name, value string
		if err := rows.Scan(&name, &value); err != nil {
			return nil, fmt.Errorf("scanning %s attribute: %w", s.Element, err)
		}
		out[name] = value
	}
	return out, rows.Err()
}

func (x *extraStore) deleteFor(tx *sql.Tx, s *types.Schema, id int64) error {
	if _, err := tx.Exec(
		"DELETE FROM "+x.backend.table(s.Table+"_extrafields")+" WHERE fk_object = ?",
		id); err != nil {
		return fmt.Errorf("deleting %s attributes: %w", s.Element, err)
	}
	return nil
}
