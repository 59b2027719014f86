// Package sqlite implements the SQLite storage backend for rentbook: the
// schema-driven record engine, the dictionary resolver, the extension
// attribute and child-line stores, and the ledger reconciliation pass.
// See docs/ARCHITECTURE.md § SQLite Backend.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"

	"github.com/ledgerline/rentbook/pkg/types"
)

// Backend implements types.Store over a single SQLite database file.
type Backend struct {
	mu       sync.RWMutex
	attached bool
	config   types.Config
	db       *sql.DB
	prefix   string
	engines  map[string]*Engine

	now        func() time.Time
	log        *logrus.Logger
	translator types.Translator
	extras     *extraStore
	lines      *lineStore
}

var _ types.Store = (*Backend)(nil)

// NewBackend creates a new SQLite backend instance. The backend is not
// attached; call Attach with a Config to initialize.
func NewBackend() *Backend {
	log := logrus.New()
	log.SetLevel(logrus.WarnLevel)
	b := &Backend{
		engines:    make(map[string]*Engine),
		now:        time.Now,
		log:        log,
		translator: DefaultTranslations,
	}
	b.extras = &extraStore{backend: b}
	b.lines = &lineStore{backend: b}
	return b
}

// SetLogger replaces the backend logger. Call before Attach.
func (b *Backend) SetLogger(log *logrus.Logger) {
	b.log = log
}

// SetTranslator replaces the localization provider. Call before Attach.
func (b *Backend) SetTranslator(tr types.Translator) {
	b.translator = tr
}

// Engine returns the record engine for the named element.
// Returns types.ErrUnknownElement if the element is not registered and
// types.ErrStoreDetached if the backend is not attached.
func (b *Backend) Engine(element string) (types.RecordEngine, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, types.ErrStoreDetached
	}
	e, ok := b.engines[element]
	if !ok {
		return nil, types.ErrUnknownElement
	}
	return e, nil
}

// Attach initializes the backend with the given configuration. Creates
// DataDir if it does not exist, opens the database, applies the generated
// schema, and seeds the dictionary tables.
// Returns types.ErrAlreadyAttached if already attached.
func (b *Backend) Attach(config types.Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.attached {
		return types.ErrAlreadyAttached
	}

	if err := config.Validate(); err != nil {
		return err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return err
	}

	db, err := sql.Open("sqlite", filepath.Join(dataDir, "rentbook.db"))
	if err != nil {
		return err
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return fmt.Errorf("enabling foreign keys: %w", err)
	}

	b.prefix = config.TablePrefix()

	for _, stmt := range schemaDDL(b.prefix) {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return fmt.Errorf("applying schema: %w", err)
		}
	}

	b.db = db
	b.config = config

	if err := b.seedDictionaries(); err != nil {
		db.Close()
		b.db = nil
		return fmt.Errorf("seeding dictionaries: %w", err)
	}

	for name, schema := range types.Schemas {
		b.engines[name] = &Engine{backend: b, schema: schema}
	}

	b.attached = true
	return nil
}

// Detach releases all resources held by the backend. After Detach, all
// operations return types.ErrStoreDetached. Detach is idempotent.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil // idempotent
	}

	if b.db != nil {
		if err := b.db.Close(); err != nil {
			return err
		}
		b.db = nil
	}

	b.attached = false
	b.engines = make(map[string]*Engine)
	return nil
}

// table returns the prefixed table name.
func (b *Backend) table(name string) string {
	return b.prefix + name
}
