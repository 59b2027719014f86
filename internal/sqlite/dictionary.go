package sqlite

import (
	"database/sql"
	"fmt"
	"strconv"

	"github.com/ledgerline/rentbook/pkg/types"
)

func dictionaryByName(name string) (types.Dictionary, bool) {
	d, ok := types.Dictionaries[name]
	return d, ok
}

// Resolve looks up a dictionary entry by numeric id or by code and renders
// it in the requested mode. A missing entry is reported through
// DictValue.Found, not as an error; errors are reserved for query
// failures.
func (b *Backend) Resolve(dict string, key string, mode types.DictMode) (types.DictValue, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return types.DictValue{}, types.ErrStoreDetached
	}

	d, ok := dictionaryByName(dict)
	if !ok {
		return types.DictValue{}, fmt.Errorf("dictionary %q: %w", dict, types.ErrUnknownElement)
	}

	query := "SELECT rowid, code, label FROM " + b.table(d.Table)
	var arg any
	if id, err := strconv.ParseInt(key, 10, 64); err == nil {
		query += " WHERE rowid = ?"
		arg = id
	} else {
		query += " WHERE code = ?"
		arg = key
	}

	var v types.DictValue
	var rawLabel sql.NullString
	err := b.db.QueryRow(query, arg).Scan(&v.ID, &v.Code, &rawLabel)
	if err == sql.ErrNoRows {
		// Fall back to matching the stored label before giving up.
		err = b.db.QueryRow(
			"SELECT rowid, code, label FROM "+b.table(d.Table)+" WHERE label = ?", key).
			Scan(&v.ID, &v.Code, &rawLabel)
	}
	if err == sql.ErrNoRows {
		return types.DictValue{Found: false}, nil
	}
	if err != nil {
		return types.DictValue{}, fmt.Errorf("resolving %s %q: %w", dict, key, err)
	}

	v.Found = true
	label := rawLabel.String
	if label == "-" {
		label = ""
	}
	v.Label = b.translator.Translate(d.KeyPrefix+v.Code, label)

	switch mode {
	case types.DictLabel:
		v.Display = v.Label
	case types.DictCodeLabel:
		v.Display = v.Code + " - " + v.Label
	case types.DictCode:
		v.Display = v.Code
	case types.DictID:
		v.Display = strconv.FormatInt(v.ID, 10)
	case types.DictAll:
		v.Display = v.Label
	default:
		return types.DictValue{}, fmt.Errorf("dictionary mode %d: %w", mode, types.ErrInvalidArgument)
	}

	return v, nil
}
