package sqlite

import (
	"github.com/ledgerline/rentbook/pkg/types"
)

// Clone creates a new record from an existing one. The copy starts back at
// draft, gets a fresh provisional reference, drops its import key, and
// loses any extension attribute marked unique so the copy cannot collide
// with the source.
func (e *Engine) Clone(fromID int64, actor int64) (int64, error) {
	src, err := e.Fetch(fromID, "")
	if err != nil {
		return 0, err
	}

	s := e.schema
	rec := types.NewRecord()
	for k, v := range src.Values {
		rec.Values[k] = v
	}

	rec.ID = 0
	delete(rec.Values, s.Identity().Name)
	for _, role := range []types.Role{
		types.RoleCreatedAt, types.RoleUpdatedAt,
		types.RoleCreator, types.RoleModifier,
		types.RoleImportKey,
	} {
		if f, ok := s.ByRole(role); ok {
			delete(rec.Values, f.Name)
		}
	}

	if f, ok := s.ByRole(types.RoleRef); ok {
		// Cleared so create assigns a fresh provisional reference.
		delete(rec.Values, f.Name)
	}
	if f, ok := s.ByRole(types.RoleStatus); ok {
		rec.Values[f.Name] = int64(types.StatusDraft)
	}
	if f, ok := s.ByRole(types.RoleLabel); ok {
		if label, _ := rec.Values[f.Name].(string); label != "" {
			prefix := e.backend.translator.Translate("CopyOf", "Copy of")
			rec.Values[f.Name] = prefix + " " + label
		}
	}

	declared, err := e.backend.extras.declared(s.Element)
	if err != nil {
		return 0, err
	}
	rec.Extras = make(map[string]any, len(src.Extras))
	for k, v := range src.Extras {
		rec.Extras[k] = v
	}
	for _, ef := range declared {
		if ef.Unique {
			delete(rec.Extras, ef.Name)
		}
	}

	if s.HasLines() {
		rec.Lines = make([]map[string]any, 0, len(src.Lines))
		for _, line := range src.Lines {
			copied := make(map[string]any, len(line))
			for k, v := range line {
				if k == "rowid" || k == s.Child.ParentKey {
					continue
				}
				copied[k] = v
			}
			rec.Lines = append(rec.Lines, copied)
		}
	}

	return e.Create(rec, actor)
}
