// Shared helpers for rentbook CLI commands.
package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ledgerline/rentbook/internal/sqlite"
	"github.com/ledgerline/rentbook/pkg/types"
)

// validElementsStr is a comma-separated list of element names for error
// output.
var validElementsStr = strings.Join(types.ElementNames, ", ")

// attachBackend resolves the data directory, creates a SQLite backend,
// and attaches it. The caller must defer backend.Detach().
func attachBackend() (*sqlite.Backend, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	cfg := types.Config{
		Backend: types.BackendSQLite,
		DataDir: dataDir,
		Prefix:  configPrefix,
	}

	backend := sqlite.NewBackend()
	if err := backend.Attach(cfg); err != nil {
		return nil, fmt.Errorf("attach backend: %w", err)
	}

	return backend, nil
}

// engineFor resolves the element argument to its record engine with a
// CLI-friendly error naming the valid elements.
func engineFor(backend *sqlite.Backend, element string) (types.RecordEngine, error) {
	eng, err := backend.Engine(element)
	if err == types.ErrUnknownElement {
		return nil, fmt.Errorf("unknown element %q (valid: %s)", element, validElementsStr)
	}
	return eng, err
}

// parseFieldArgs parses key=value arguments into typed field values using
// the element's schema. Unknown keys go to the extension attributes.
func parseFieldArgs(element string, args []string) (*types.Record, error) {
	schema, ok := types.Schemas[element]
	if !ok {
		return nil, fmt.Errorf("unknown element %q (valid: %s)", element, validElementsStr)
	}

	rec := types.NewRecord()
	for _, arg := range args {
		parts := strings.SplitN(arg, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid field %q (expected key=value)", arg)
		}
		key, raw := parts[0], parts[1]

		f, known := schema.ByName(key)
		if !known {
			if rec.Extras == nil {
				rec.Extras = map[string]any{}
			}
			rec.Extras[key] = raw
			continue
		}

		v, err := parseFieldValue(f, raw)
		if err != nil {
			return nil, err
		}
		rec.Set(key, v)
	}
	return rec, nil
}

// parseFieldValue converts a raw command-line string to the in-memory
// form the field expects.
func parseFieldValue(f types.Field, raw string) (any, error) {
	if raw == "" {
		return nil, nil
	}
	switch f.Type {
	case types.TypeInteger, types.TypeReference:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("field %s: expected integer, got %q", f.Name, raw)
		}
		return n, nil
	case types.TypeDecimal:
		d, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, fmt.Errorf("field %s: expected amount, got %q", f.Name, raw)
		}
		return d, nil
	case types.TypeDate:
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return nil, fmt.Errorf("field %s: expected YYYY-MM-DD, got %q", f.Name, raw)
		}
		return t, nil
	case types.TypeDatetime:
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return nil, fmt.Errorf("field %s: expected RFC 3339 timestamp, got %q", f.Name, raw)
		}
		return t, nil
	case types.TypeBoolean:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("field %s: expected boolean, got %q", f.Name, raw)
		}
		return b, nil
	case types.TypeList:
		items := strings.Split(raw, ",")
		for i := range items {
			items[i] = strings.TrimSpace(items[i])
		}
		return items, nil
	default:
		return raw, nil
	}
}

// parseRecordKey accepts a numeric identity or a reference string and
// returns the (id, ref) pair for RecordEngine.Fetch.
func parseRecordKey(arg string) (int64, string) {
	if id, err := strconv.ParseInt(arg, 10, 64); err == nil {
		return id, ""
	}
	return 0, arg
}

// printRecord writes a record as indented JSON.
func printRecord(rec *types.Record) error {
	out := map[string]any{"id": rec.ID, "values": rec.Values}
	if len(rec.Extras) > 0 {
		out["extras"] = rec.Extras
	}
	if len(rec.Lines) > 0 {
		out["lines"] = rec.Lines
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
