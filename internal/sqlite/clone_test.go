// Tests for record cloning: fresh identity and reference, draft status,
// copy label, and unique extension attributes dropped.
package sqlite

import (
	"fmt"
	"testing"

	"github.com/ledgerline/rentbook/pkg/types"
)

func TestEngine_Clone(t *testing.T) {
	b := setupBackend(t)
	eng, _ := b.Engine(types.ElementProperty)
	ownerID := createOwner(t, b, "Fontaine")

	src := types.NewRecord().
		Set("label", "Villa des Roses").
		Set("property_type_id", dictID(t, b, "property_type", "HOUSE")).
		Set("fk_owner", ownerID).
		Set("town", "Nantes").
		Set("import_key", "20260830120000")
	src.Extras = map[string]any{
		"cadastral_ref": "AB-123", // declared unique
		"heating":       "gas",
	}
	src.Lines = []map[string]any{{"label": "Main house"}, {"label": "Guest house"}}

	srcID, err := eng.Create(src, 1)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if err := eng.Validate(srcID, 1, nil); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}

	cloneID, err := eng.Clone(srcID, 5)
	if err != nil {
		t.Fatalf("Clone failed: %v", err)
	}
	if cloneID == srcID {
		t.Fatal("clone must get its own identity")
	}

	clone, err := eng.Fetch(cloneID, "")
	if err != nil {
		t.Fatalf("Fetch clone failed: %v", err)
	}

	if got := clone.String("label"); got != "Copy of Villa des Roses" {
		t.Errorf("expected copy label, got %q", got)
	}
	if clone.Status("status") != types.StatusDraft {
		t.Errorf("expected clone back at draft, got %v", clone.Status("status"))
	}
	if want := fmt.Sprintf("PROV%d", cloneID); clone.String("ref") != want {
		t.Errorf("expected fresh reference %q, got %q", want, clone.String("ref"))
	}
	if clone.String("import_key") != "" {
		t.Errorf("expected import key cleared, got %q", clone.String("import_key"))
	}
	if clone.Int("created_by") != 5 {
		t.Errorf("expected clone creator 5, got %d", clone.Int("created_by"))
	}

	// Shared extension attributes survive, unique ones do not.
	if clone.Extras["heating"] != "gas" {
		t.Errorf("expected heating carried over, got %v", clone.Extras["heating"])
	}
	if _, ok := clone.Extras["cadastral_ref"]; ok {
		t.Error("unique extension attribute must not be copied")
	}

	if len(clone.Lines) != 2 {
		t.Errorf("expected 2 copied lines, got %d", len(clone.Lines))
	}

	// The source is untouched.
	orig, err := eng.Fetch(srcID, "")
	if err != nil {
		t.Fatalf("Fetch source failed: %v", err)
	}
	if orig.Status("status") != types.StatusValidated {
		t.Errorf("source status changed to %v", orig.Status("status"))
	}
	if orig.Extras["cadastral_ref"] != "AB-123" {
		t.Errorf("source extras changed: %v", orig.Extras)
	}
}

func TestEngine_CloneMissingSource(t *testing.T) {
	b := setupBackend(t)
	eng, _ := b.Engine(types.ElementProperty)

	if _, err := eng.Clone(9999, 1); err != types.ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
