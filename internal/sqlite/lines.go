package sqlite

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/ledgerline/rentbook/pkg/types"
)

// lineStore persists child lines owned by a parent record. Lines follow
// the parent's transaction on write paths and never outlive it.
type lineStore struct {
	backend *Backend
}

func (l *lineStore) insertLine(tx *sql.Tx, s *types.Schema, parentID int64, values map[string]any) (int64, error) {
	cols := []string{s.Child.ParentKey}
	placeholders := []string{"?"}
	args := []any{parentID}

	for _, f := range s.Child.Fields {
		v, ok := values[f.Name]
		if (!ok || isEmptyValue(v)) && f.Default != "" {
			v, ok = defaultValue(f), true
		}
		if !ok || v == nil {
			if f.NotNull == types.Required {
				return 0, &types.ValidationError{Element: s.Element + " line", Fields: []string{f.Name}}
			}
			continue
		}
		dv, err := driverValue(f, v)
		if err != nil {
			return 0, err
		}
		cols = append(cols, f.Name)
		placeholders = append(placeholders, "?")
		args = append(args, dv)
	}

	res, err := tx.Exec(
		"INSERT INTO "+l.backend.table(s.Child.Table)+
			" ("+strings.Join(cols, ", ")+") VALUES ("+strings.Join(placeholders, ", ")+")",
		args...)
	if err != nil {
		return 0, fmt.Errorf("inserting %s line: %w", s.Element, err)
	}
	return res.LastInsertId()
}

func (l *lineStore) fetchLines(s *types.Schema, parentID int64) ([]map[string]any, error) {
	cols := []string{"rowid"}
	for _, f := range s.Child.Fields {
		cols = append(cols, f.Name)
	}

	rows, err := l.backend.db.Query(
		"SELECT "+strings.Join(cols, ", ")+" FROM "+l.backend.table(s.Child.Table)+
			" WHERE "+s.Child.ParentKey+" = ? ORDER BY rowid", parentID)
	if err != nil {
		return nil, fmt.Errorf("loading %s lines: %w", s.Element, err)
	}
	defer rows.Close()

	lines := []map[string]any{}
	for rows.Next() {
		holders := make([]sql.NullString, len(cols))
		targets := make([]any, len(cols))
		for i := range holders {
			targets[i] = &holders[i]
		}
		if err := rows.Scan(targets...); err != nil {
			return nil, fmt.Errorf("scanning %s line: %w", s.Element, err)
		}

		line := map[string]any{}
		var rowid int64
		fmt.Sscanf(holders[0].String, "%d", &rowid)
		line["rowid"] = rowid
		for i, f := range s.Child.Fields {
			h := holders[i+1]
			if !h.Valid {
				continue
			}
			switch f.Type {
			case types.TypeInteger, types.TypeReference:
				var n int64
				if _, err := fmt.Sscanf(h.String, "%d", &n); err != nil {
					return nil, fmt.Errorf("parsing %s line %s: %w", s.Element, f.Name, err)
				}
				line[f.Name] = n
			default:
				line[f.Name] = h.String
			}
		}
		lines = append(lines, line)
	}
	return lines, rows.Err()
}

func (l *lineStore) deleteLines(tx *sql.Tx, s *types.Schema, parentID int64) error {
	if _, err := tx.Exec(
		"DELETE FROM "+l.backend.table(s.Child.Table)+" WHERE "+s.Child.ParentKey+" = ?",
		parentID); err != nil {
		return fmt.Errorf("deleting %s lines: %w", s.Element, err)
	}
	return nil
}

func (l *lineStore) countLines(tx *sql.Tx, s *types.Schema, parentID int64) (int64, error) {
	var n int64
	err := tx.QueryRow(
		"SELECT COUNT(*) FROM "+l.backend.table(s.Child.Table)+
			" WHERE "+s.Child.ParentKey+" = ?", parentID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting %s lines: %w", s.Element, err)
	}
	return n, nil
}
