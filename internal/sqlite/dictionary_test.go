// Tests for the dictionary resolver modes and miss handling.
package sqlite

import (
	"errors"
	"strconv"
	"testing"

	"github.com/ledgerline/rentbook/pkg/types"
)

func TestBackend_ResolveModes(t *testing.T) {
	b := setupBackend(t)

	id := dictID(t, b, "country", "FR")
	idKey := strconv.FormatInt(id, 10)

	tests := []struct {
		name    string
		key     string
		mode    types.DictMode
		display string
	}{
		{"label by code", "FR", types.DictLabel, "France"},
		{"code and label", "FR", types.DictCodeLabel, "FR - France"},
		{"code by id", idKey, types.DictCode, "FR"},
		{"id by code", "FR", types.DictID, idKey},
		{"full tuple", "FR", types.DictAll, "France"},
		{"label by stored label", "France", types.DictLabel, "France"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := b.Resolve("country", tt.key, tt.mode)
			if err != nil {
				t.Fatalf("Resolve failed: %v", err)
			}
			if !v.Found {
				t.Fatal("expected a hit")
			}
			if v.Display != tt.display {
				t.Errorf("expected display %q, got %q", tt.display, v.Display)
			}
		})
	}
}

func TestBackend_ResolveTuple(t *testing.T) {
	b := setupBackend(t)

	v, err := b.Resolve("payment_mode", "VIR", types.DictAll)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if !v.Found || v.Code != "VIR" || v.ID == 0 || v.Label != "Bank transfer" {
		t.Errorf("incomplete tuple: %+v", v)
	}
}

func TestBackend_ResolveMissIsNotAnError(t *testing.T) {
	b := setupBackend(t)

	v, err := b.Resolve("country", "ZZ", types.DictLabel)
	if err != nil {
		t.Fatalf("a miss must not error, got %v", err)
	}
	if v.Found {
		t.Errorf("expected Found=false, got %+v", v)
	}
}

func TestBackend_ResolveUnknownDictionary(t *testing.T) {
	b := setupBackend(t)

	_, err := b.Resolve("currencies", "EUR", types.DictLabel)
	if !errors.Is(err, types.ErrUnknownElement) {
		t.Errorf("expected ErrUnknownElement, got %v", err)
	}
}

func TestBackend_ResolveUsesTranslator(t *testing.T) {
	b := NewBackend()
	b.SetTranslator(types.MapTranslator{"CountryFR": "Frankreich"})
	if err := b.Attach(types.Config{
		Backend: types.BackendSQLite,
		DataDir: t.TempDir(),
	}); err != nil {
		t.Fatalf("Attach failed: %v", err)
	}
	defer b.Detach()

	v, err := b.Resolve("country", "FR", types.DictLabel)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if v.Label != "Frankreich" {
		t.Errorf("expected translated label, got %q", v.Label)
	}

	// Untranslated codes fall back to the stored label.
	v, err = b.Resolve("country", "BE", types.DictLabel)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if v.Label != "Belgium" {
		t.Errorf("expected stored label fallback, got %q", v.Label)
	}
}
