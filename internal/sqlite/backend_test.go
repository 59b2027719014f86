// Tests for backend attach/detach lifecycle and engine lookup.
package sqlite

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ledgerline/rentbook/pkg/types"
)

// setupBackend attaches a fresh backend over a temporary directory and
// detaches it when the test ends.
func setupBackend(t *testing.T) *Backend {
	t.Helper()

	b := NewBackend()
	config := types.Config{
		Backend: types.BackendSQLite,
		DataDir: t.TempDir(),
	}
	if err := b.Attach(config); err != nil {
		t.Fatalf("Attach failed: %v", err)
	}
	t.Cleanup(func() { b.Detach() })
	return b
}

// createOwner inserts a minimal validated owner and returns its identity.
// Most elements require an owner or renter to reference.
func createOwner(t *testing.T, b *Backend, lastname string) int64 {
	t.Helper()

	eng, err := b.Engine(types.ElementOwner)
	if err != nil {
		t.Fatalf("Engine(owner) failed: %v", err)
	}
	rec := types.NewRecord().Set("lastname", lastname)
	id, err := eng.Create(rec, 1)
	if err != nil {
		t.Fatalf("creating owner failed: %v", err)
	}
	if err := eng.Validate(id, 1, nil); err != nil {
		t.Fatalf("validating owner failed: %v", err)
	}
	return id
}

// createLedger builds owner → property → renter → agreement and returns
// the agreement identity, ready for receipts and payments.
func createLedger(t *testing.T, b *Backend) int64 {
	t.Helper()

	ownerID := createOwner(t, b, "Martin")

	properties, _ := b.Engine(types.ElementProperty)
	propertyID, err := properties.Create(types.NewRecord().
		Set("label", "12 rue des Lilas").
		Set("property_type_id", dictID(t, b, "property_type", "APARTMENT")).
		Set("fk_owner", ownerID), 1)
	if err != nil {
		t.Fatalf("creating property failed: %v", err)
	}

	renters, _ := b.Engine(types.ElementRenter)
	renterID, err := renters.Create(types.NewRecord().Set("lastname", "Dupont"), 1)
	if err != nil {
		t.Fatalf("creating renter failed: %v", err)
	}
	if err := renters.Validate(renterID, 1, nil); err != nil {
		t.Fatalf("validating renter failed: %v", err)
	}

	agreements, _ := b.Engine(types.ElementAgreement)
	agreementID, err := agreements.Create(types.NewRecord().
		Set("label", "Lease 12 rue des Lilas").
		Set("fk_property", propertyID).
		Set("fk_renter", renterID).
		Set("date_start", mustDate(t, "2026-01-01")).
		Set("rent_amount", decimal.NewFromInt(700)), 1)
	if err != nil {
		t.Fatalf("creating agreement failed: %v", err)
	}
	return agreementID
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()

	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("bad test date %q: %v", s, err)
	}
	return d
}

// dictID resolves a dictionary code to its row identity.
func dictID(t *testing.T, b *Backend, dict, code string) int64 {
	t.Helper()

	v, err := b.Resolve(dict, code, types.DictID)
	if err != nil {
		t.Fatalf("Resolve(%s, %s) failed: %v", dict, code, err)
	}
	if !v.Found {
		t.Fatalf("dictionary %s has no code %s", dict, code)
	}
	return v.ID
}

func TestBackend_Attach(t *testing.T) {
	tmpDir := t.TempDir()

	b := NewBackend()
	config := types.Config{
		Backend: types.BackendSQLite,
		DataDir: tmpDir,
	}

	if err := b.Attach(config); err != nil {
		t.Fatalf("Attach failed: %v", err)
	}

	dbPath := filepath.Join(tmpDir, "rentbook.db")
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("rentbook.db not created")
	}

	// Verify double attach fails
	if err := b.Attach(config); err != types.ErrAlreadyAttached {
		t.Errorf("expected ErrAlreadyAttached, got %v", err)
	}

	b.Detach()
}

func TestBackend_AttachRejectsBadConfig(t *testing.T) {
	tests := []struct {
		name    string
		config  types.Config
		wantErr error
	}{
		{"empty backend", types.Config{DataDir: "."}, types.ErrBackendEmpty},
		{"unknown backend", types.Config{Backend: "postgres"}, types.ErrBackendUnknown},
		{"bad prefix", types.Config{Backend: types.BackendSQLite, Prefix: "Bad-Prefix"}, types.ErrPrefixInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBackend()
			if err := b.Attach(tt.config); !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestBackend_Detach(t *testing.T) {
	b := NewBackend()
	config := types.Config{
		Backend: types.BackendSQLite,
		DataDir: t.TempDir(),
	}
	if err := b.Attach(config); err != nil {
		t.Fatalf("Attach failed: %v", err)
	}

	if err := b.Detach(); err != nil {
		t.Fatalf("Detach failed: %v", err)
	}

	// Verify idempotent
	if err := b.Detach(); err != nil {
		t.Errorf("second Detach should not error, got %v", err)
	}

	// Verify operations fail after detach
	if _, err := b.Engine(types.ElementOwner); err != types.ErrStoreDetached {
		t.Errorf("expected ErrStoreDetached, got %v", err)
	}
	if err := b.Reconcile(); err != types.ErrStoreDetached {
		t.Errorf("expected ErrStoreDetached, got %v", err)
	}
}

func TestBackend_Engine(t *testing.T) {
	b := setupBackend(t)

	for _, name := range types.ElementNames {
		if _, err := b.Engine(name); err != nil {
			t.Errorf("Engine(%s) failed: %v", name, err)
		}
	}

	if _, err := b.Engine("invoice"); err != types.ErrUnknownElement {
		t.Errorf("expected ErrUnknownElement, got %v", err)
	}
}

func TestBackend_ReattachKeepsData(t *testing.T) {
	tmpDir := t.TempDir()
	config := types.Config{
		Backend: types.BackendSQLite,
		DataDir: tmpDir,
	}

	b := NewBackend()
	if err := b.Attach(config); err != nil {
		t.Fatalf("Attach failed: %v", err)
	}
	ownerID := createOwner(t, b, "Durand")
	if err := b.Detach(); err != nil {
		t.Fatalf("Detach failed: %v", err)
	}

	// A second backend over the same directory sees the data.
	b2 := NewBackend()
	if err := b2.Attach(config); err != nil {
		t.Fatalf("second Attach failed: %v", err)
	}
	defer b2.Detach()

	eng, err := b2.Engine(types.ElementOwner)
	if err != nil {
		t.Fatalf("Engine(owner) failed: %v", err)
	}
	rec, err := eng.Fetch(ownerID, "")
	if err != nil {
		t.Fatalf("Fetch after reattach failed: %v", err)
	}
	if rec.String("lastname") != "Durand" {
		t.Errorf("expected lastname Durand, got %q", rec.String("lastname"))
	}
}
