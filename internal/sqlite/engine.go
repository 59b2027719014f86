package sqlite

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/ledgerline/rentbook/pkg/types"
)

// Engine implements types.RecordEngine for one element. Every statement is
// derived from the element's schema; the engine carries no per-element SQL.
type Engine struct {
	backend *Backend
	schema  *types.Schema
}

var _ types.RecordEngine = (*Engine)(nil)

// Create persists a new record inside one transaction. All missing
// required fields are collected before failing so the caller sees the
// complete list; nothing is written on any failure.
func (e *Engine) Create(rec *types.Record, actor int64) (int64, error) {
	e.backend.mu.Lock()
	defer e.backend.mu.Unlock()

	if !e.backend.attached {
		return 0, types.ErrStoreDetached
	}

	s := e.schema
	now := e.backend.now()

	values := make(map[string]any)
	var missing []string
	provisional := false
	refField, hasRef := s.ByRole(types.RoleRef)

	for _, f := range s.Fields {
		if f.Role == types.RoleIdentity {
			continue
		}
		v, ok := rec.Values[f.Name]
		if ok && f.IsRef() && isRefSentinel(v) {
			v, ok = nil, false
		}

		switch f.Role {
		case types.RoleCreatedAt:
			if !ok || isEmptyValue(v) {
				v, ok = now, true
			}
		case types.RoleCreator:
			if !ok || isEmptyValue(v) {
				v, ok = actor, true
			}
		}

		if (!ok || isEmptyValue(v)) && f.Default != "" {
			if f.Default == types.DefaultProvisional {
				v, ok = types.DefaultProvisional, true
				provisional = true
			} else {
				v, ok = defaultValue(f), true
			}
		}

		if f.NotNull == types.Required && (!ok || isEmptyValue(v)) {
			missing = append(missing, f.Name)
			continue
		}
		if !ok || v == nil {
			continue
		}

		dv, err := driverValue(f, v)
		if err != nil {
			return 0, err
		}
		values[f.Name] = dv
	}

	if len(missing) > 0 {
		return 0, &types.ValidationError{Element: s.Element, Fields: missing}
	}

	tx, err := e.backend.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("beginning create: %w", err)
	}
	defer tx.Rollback()

	if err := e.checkReferences(tx, values); err != nil {
		return 0, err
	}

	var cols, placeholders []string
	var args []any
	for _, f := range s.Fields {
		if dv, ok := values[f.Name]; ok {
			cols = append(cols, f.Name)
			placeholders = append(placeholders, "?")
			args = append(args, dv)
		}
	}

	res, err := tx.Exec(
		"INSERT INTO "+e.backend.table(s.Table)+
			" ("+strings.Join(cols, ", ")+") VALUES ("+strings.Join(placeholders, ", ")+")",
		args...)
	if err != nil {
		return 0, fmt.Errorf("inserting %s: %w", s.Element, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading %s identity: %w", s.Element, err)
	}

	// Resolve the provisional reference from the generated identity inside
	// the same transaction.
	if provisional && hasRef {
		ref := fmt.Sprintf("PROV%d", id)
		if _, err := tx.Exec(
			"UPDATE "+e.backend.table(s.Table)+
				" SET "+refField.Name+" = ? WHERE rowid = ? AND ("+refField.Name+" = ? OR "+refField.Name+" = '')",
			ref, id, types.DefaultProvisional); err != nil {
			return 0, fmt.Errorf("resolving provisional reference: %w", err)
		}
		rec.Values[refField.Name] = ref
	}

	if len(rec.Extras) > 0 {
		if err := e.backend.extras.persist(tx, s, id, rec.Extras); err != nil {
			return 0, err
		}
	}

	if s.HasLines() {
		for _, line := range rec.Lines {
			if _, err := e.backend.lines.insertLine(tx, s, id, line); err != nil {
				return 0, err
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing create: %w", err)
	}

	rec.ID = id
	e.backend.log.WithFields(logrus.Fields{"element": s.Element, "rowid": id}).Debug("record created")
	return id, nil
}

// Fetch loads a record by identity or reference. Exactly one of the two
// must be set; otherwise no query is issued and ErrInvalidArgument is
// returned. Dictionary fields come back with _code and _label companions.
func (e *Engine) Fetch(id int64, ref string) (*types.Record, error) {
	if (id == 0) == (ref == "") {
		return nil, types.ErrInvalidArgument
	}

	e.backend.mu.RLock()
	defer e.backend.mu.RUnlock()

	if !e.backend.attached {
		return nil, types.ErrStoreDetached
	}

	s := e.schema
	query, dictFields := e.selectQuery()
	var arg any
	if id != 0 {
		query += " WHERE t." + s.Identity().Name + " = ?"
		arg = id
	} else {
		refField, ok := s.ByRole(types.RoleRef)
		if !ok {
			return nil, types.ErrInvalidArgument
		}
		query += " WHERE t." + refField.Name + " = ?"
		arg = ref
	}

	row := e.backend.db.QueryRow(query, arg)
	rec, err := e.scanRecord(row.Scan, dictFields)
	if err == sql.ErrNoRows {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", s.Element, err)
	}

	extras, err := e.backend.extras.load(s, rec.ID)
	if err != nil {
		return nil, err
	}
	rec.Extras = extras

	if s.HasLines() {
		lines, err := e.backend.lines.fetchLines(s, rec.ID)
		if err != nil {
			return nil, err
		}
		rec.Lines = lines
	}

	return rec, nil
}

// List returns records matching the filter. Filter keys are schema field
// names plus "limit" and "offset"; an unknown key is ErrInvalidFilter.
// Extension attributes and lines are not loaded on list paths.
func (e *Engine) List(filter map[string]any) ([]*types.Record, error) {
	e.backend.mu.RLock()
	defer e.backend.mu.RUnlock()

	if !e.backend.attached {
		return nil, types.ErrStoreDetached
	}

	s := e.schema
	query, dictFields := e.selectQuery()
	var conditions []string
	var args []any
	limit, offset := 0, 0

	for k, v := range filter {
		switch k {
		case "limit":
			n, ok := toInt(v)
			if !ok {
				return nil, types.ErrInvalidFilter
			}
			limit = n
		case "offset":
			n, ok := toInt(v)
			if !ok {
				return nil, types.ErrInvalidFilter
			}
			offset = n
		default:
			f, ok := s.ByName(k)
			if !ok {
				return nil, types.ErrInvalidFilter
			}
			dv, err := driverValue(f, v)
			if err != nil {
				return nil, types.ErrInvalidFilter
			}
			conditions = append(conditions, "t."+f.Name+" = ?")
			args = append(args, dv)
		}
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY t." + s.Identity().Name
	if limit > 0 || offset > 0 {
		if limit <= 0 {
			limit = -1 // no limit, offset only
		}
		query += fmt.Sprintf(" LIMIT %d", limit)
		if offset > 0 {
			query += fmt.Sprintf(" OFFSET %d", offset)
		}
	}

	rows, err := e.backend.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", s.Element, err)
	}
	defer rows.Close()

	results := []*types.Record{}
	for rows.Next() {
		rec, err := e.scanRecord(rows.Scan, dictFields)
		if err != nil {
			return nil, fmt.Errorf("scanning %s: %w", s.Element, err)
		}
		results = append(results, rec)
	}
	return results, rows.Err()
}

// Update persists all current field values for an existing identity and
// stamps the modifier.
func (e *Engine) Update(rec *types.Record, actor int64) error {
	if rec.ID == 0 {
		return types.ErrInvalidArgument
	}

	e.backend.mu.Lock()
	defer e.backend.mu.Unlock()

	if !e.backend.attached {
		return types.ErrStoreDetached
	}

	s := e.schema
	now := e.backend.now()

	var sets []string
	var args []any
	refValues := make(map[string]any)
	for _, f := range s.Fields {
		switch f.Role {
		case types.RoleIdentity, types.RoleCreatedAt, types.RoleCreator:
			continue
		case types.RoleUpdatedAt:
			sets = append(sets, f.Name+" = ?")
			args = append(args, now.Format(datetimeLayout))
			continue
		case types.RoleModifier:
			sets = append(sets, f.Name+" = ?")
			args = append(args, actor)
			continue
		}

		v := rec.Values[f.Name]
		if f.IsRef() && isRefSentinel(v) {
			v = nil
		}
		dv, err := driverValue(f, v)
		if err != nil {
			return err
		}
		if f.Type == types.TypeReference && dv != nil {
			refValues[f.Name] = dv
		}
		sets = append(sets, f.Name+" = ?")
		args = append(args, dv)
	}
	args = append(args, rec.ID)

	tx, err := e.backend.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning update: %w", err)
	}
	defer tx.Rollback()

	if err := e.checkReferences(tx, refValues); err != nil {
		return err
	}

	res, err := tx.Exec(
		"UPDATE "+e.backend.table(s.Table)+" SET "+strings.Join(sets, ", ")+
			" WHERE "+s.Identity().Name+" = ?",
		args...)
	if err != nil {
		return fmt.Errorf("updating %s: %w", s.Element, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return types.ErrNotFound
	}

	if rec.Extras != nil {
		if err := e.backend.extras.persist(tx, s, rec.ID, rec.Extras); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing update: %w", err)
	}

	e.backend.log.WithFields(logrus.Fields{"element": s.Element, "rowid": rec.ID}).Debug("record updated")
	return nil
}

// Delete removes the record, its extension attributes, and its owned lines
// in one transaction. A canceled record that still owns lines refuses with
// ErrRecordDeleteStatus, leaving parent and lines intact.
func (e *Engine) Delete(id int64, actor int64) error {
	if id == 0 {
		return types.ErrInvalidArgument
	}

	e.backend.mu.Lock()
	defer e.backend.mu.Unlock()

	if !e.backend.attached {
		return types.ErrStoreDetached
	}

	s := e.schema
	tx, err := e.backend.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning delete: %w", err)
	}
	defer tx.Rollback()

	if statusF, ok := s.ByRole(types.RoleStatus); ok {
		var status int64
		err := tx.QueryRow(
			"SELECT "+statusF.Name+" FROM "+e.backend.table(s.Table)+
				" WHERE "+s.Identity().Name+" = ?", id).Scan(&status)
		if err == sql.ErrNoRows {
			return types.ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("checking %s status: %w", s.Element, err)
		}
		if s.HasLines() && types.Status(status) == types.StatusCanceled {
			n, err := e.backend.lines.countLines(tx, s, id)
			if err != nil {
				return err
			}
			if n > 0 {
				return types.ErrRecordDeleteStatus
			}
		}
	}

	if s.HasLines() {
		if err := e.backend.lines.deleteLines(tx, s, id); err != nil {
			return err
		}
	}
	if err := e.backend.extras.deleteFor(tx, s, id); err != nil {
		return err
	}

	res, err := tx.Exec(
		"DELETE FROM "+e.backend.table(s.Table)+" WHERE "+s.Identity().Name+" = ?", id)
	if err != nil {
		return fmt.Errorf("deleting %s: %w", s.Element, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return types.ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing delete: %w", err)
	}

	e.backend.log.WithFields(logrus.Fields{"element": s.Element, "rowid": id, "actor": actor}).Debug("record deleted")
	return nil
}

// checkReferences verifies every filtered reference value in values points
// at a target row satisfying the field's eligibility filter, inside the
// caller's transaction. Unfiltered references rely on the database's
// foreign key enforcement alone.
func (e *Engine) checkReferences(tx *sql.Tx, values map[string]any) error {
	s := e.schema
	for _, f := range s.Fields {
		if f.Type != types.TypeReference || f.RefFilter == "" {
			continue
		}
		v, ok := values[f.Name]
		if !ok || v == nil {
			continue
		}
		target := types.Schemas[f.Ref]
		var n int
		err := tx.QueryRow(
			"SELECT COUNT(*) FROM "+e.backend.table(target.Table)+
				" WHERE "+target.Identity().Name+" = ? AND ("+f.RefFilter+")", v).Scan(&n)
		if err != nil {
			return fmt.Errorf("checking %s.%s reference: %w", s.Element, f.Name, err)
		}
		if n == 0 {
			return fmt.Errorf("%s.%s: %w", s.Element, f.Name, types.ErrReferenceNotEligible)
		}
	}
	return nil
}

// selectQuery builds the SELECT with one LEFT JOIN per dictionary field,
// so fetch and list return both the raw id and the resolvable code/label.
func (e *Engine) selectQuery() (string, []types.Field) {
	s := e.schema
	var cols []string
	var dictFields []types.Field

	for _, f := range s.Fields {
		cols = append(cols, "t."+f.Name)
	}
	joins := ""
	for _, f := range s.Fields {
		if f.Dict == "" {
			continue
		}
		d, ok := dictionaryByName(f.Dict)
		if !ok {
			continue
		}
		alias := fmt.Sprintf("d%d", len(dictFields))
		cols = append(cols, alias+".code", alias+".label")
		joins += " LEFT JOIN " + e.backend.table(d.Table) + " AS " + alias +
			" ON t." + f.Name + " = " + alias + ".rowid"
		dictFields = append(dictFields, f)
	}

	return "SELECT " + strings.Join(cols, ", ") + " FROM " +
		e.backend.table(s.Table) + " AS t" + joins, dictFields
}

// scanRecord scans one row produced by selectQuery, coercing stored values
// back to their in-memory types and resolving dictionary labels through
// the translator.
func (e *Engine) scanRecord(scan func(dest ...any) error, dictFields []types.Field) (*types.Record, error) {
	s := e.schema

	targets := make([]any, 0, len(s.Fields)+2*len(dictFields))
	holders := make([]sql.NullString, len(s.Fields))
	for i := range s.Fields {
		targets = append(targets, &holders[i])
	}
	dictHolders := make([]sql.NullString, 2*len(dictFields))
	for i := range dictHolders {
		targets = append(targets, &dictHolders[i])
	}

	if err := scan(targets...); err != nil {
		return nil, err
	}

	rec := types.NewRecord()
	for i, f := range s.Fields {
		h := holders[i]
		if !h.Valid {
			continue
		}
		switch f.Type {
		case types.TypeInteger, types.TypeReference:
			var n int64
			if _, err := fmt.Sscanf(h.String, "%d", &n); err != nil {
				return nil, fmt.Errorf("parsing %s.%s: %w", s.Element, f.Name, err)
			}
			rec.Values[f.Name] = n
			if f.Role == types.RoleIdentity {
				rec.ID = n
			}
		case types.TypeBoolean:
			rec.Values[f.Name] = h.String != "0" && h.String != ""
		case types.TypeDecimal:
			d, err := decimal.NewFromString(h.String)
			if err != nil {
				return nil, fmt.Errorf("parsing %s.%s: %w", s.Element, f.Name, err)
			}
			rec.Values[f.Name] = d
		case types.TypeDate, types.TypeDatetime:
			t, err := parseStoredTime(h.String)
			if err != nil {
				return nil, fmt.Errorf("parsing %s.%s: %w", s.Element, f.Name, err)
			}
			rec.Values[f.Name] = t
		case types.TypeList:
			rec.Values[f.Name] = decodeList(h.String)
		default:
			rec.Values[f.Name] = h.String
		}
	}

	for i, f := range dictFields {
		code := dictHolders[2*i]
		label := dictHolders[2*i+1]
		if !code.Valid {
			continue
		}
		d, _ := dictionaryByName(f.Dict)
		raw := label.String
		if raw == "-" {
			raw = ""
		}
		rec.Values[f.Name+"_code"] = code.String
		rec.Values[f.Name+"_label"] = e.backend.translator.Translate(d.KeyPrefix+code.String, raw)
	}

	return rec, nil
}

// toInt converts various numeric types to int.
func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	default:
		return 0, false
	}
}
