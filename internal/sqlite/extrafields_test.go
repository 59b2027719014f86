// Tests for extension attribute declarations and persistence.
package sqlite

import (
	"testing"

	"github.com/ledgerline/rentbook/pkg/types"
)

func TestExtraStore_Declared(t *testing.T) {
	b := setupBackend(t)

	declared, err := b.extras.declared("property")
	if err != nil {
		t.Fatalf("declared failed: %v", err)
	}
	if len(declared) != 2 {
		t.Fatalf("expected 2 declared attributes, got %d", len(declared))
	}
	if declared[0].Name != "cadastral_ref" || !declared[0].Unique {
		t.Errorf("expected unique cadastral_ref first, got %+v", declared[0])
	}
	if declared[1].Name != "heating" || declared[1].Unique {
		t.Errorf("expected non-unique heating second, got %+v", declared[1])
	}
}

func TestExtraStore_RoundTrip(t *testing.T) {
	b := setupBackend(t)
	eng, _ := b.Engine(types.ElementOwner)

	rec := types.NewRecord().Set("lastname", "Girard")
	rec.Extras = map[string]any{"heating": "electric"}
	id, err := eng.Create(rec, 1)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	fetched, err := eng.Fetch(id, "")
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if fetched.Extras["heating"] != "electric" {
		t.Errorf("expected heating extra, got %v", fetched.Extras)
	}

	// Update replaces the stored set.
	fetched.Extras = map[string]any{"heating": "gas"}
	if err := eng.Update(fetched, 1); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	again, err := eng.Fetch(id, "")
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if again.Extras["heating"] != "gas" {
		t.Errorf("expected replaced extra, got %v", again.Extras)
	}
}

func TestExtraStore_DeletedWithRecord(t *testing.T) {
	b := setupBackend(t)
	eng, _ := b.Engine(types.ElementOwner)

	rec := types.NewRecord().Set("lastname", "Leroy")
	rec.Extras = map[string]any{"heating": "wood"}
	id, err := eng.Create(rec, 1)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if err := eng.Delete(id, 1); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	var n int
	err = b.db.QueryRow(
		"SELECT COUNT(*) FROM "+b.table("owner_extrafields")+" WHERE fk_object = ?", id).Scan(&n)
	if err != nil {
		t.Fatalf("counting extras failed: %v", err)
	}
	if n != 0 {
		t.Errorf("expected extras removed with the record, got %d", n)
	}
}
