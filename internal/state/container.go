// Package state implements the application state container: the single
// owner of the five record collections. Durable truth is one slot file
// per collection; an in-memory SQLite working set is rebuilt from the
// slots exactly once when the container opens, serves all reads and
// aggregates, and is rewritten table-by-table on every replacement,
// with the owning slot persisted before the call returns.
package state

import (
	"database/sql"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/workos/internal/slot"
	"github.com/mesh-intelligence/workos/pkg/types"
)

// Container owns the canonical in-memory collections. Feature modules
// read through the accessors and mutate only by handing back a full
// replacement collection; they never hold a copy past a render.
type Container struct {
	mu      sync.RWMutex
	open    bool
	dataDir string
	db      *sql.DB
	log     zerolog.Logger
}

// Open creates the data directory and empty slots on first use, builds
// the in-memory working set, and hydrates every collection from its
// slot. Hydration happens exactly once per container; there is no
// re-hydration later.
func Open(cfg types.Config, log zerolog.Logger) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := slot.Init(cfg.DataDir, types.StandardCollections); err != nil {
		return nil, fmt.Errorf("init slots: %w", err)
	}

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("opening working set: %w", err)
	}
	// Every new pool connection would be a fresh empty in-memory
	// database, so the pool must stay at exactly one connection.
	db.SetMaxOpenConns(1)

	for _, ddl := range schemaDDL {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return nil, fmt.Errorf("creating schema: %w", err)
		}
	}

	c := &Container{
		open:    true,
		dataDir: cfg.DataDir,
		db:      db,
		log:     log,
	}

	if err := hydrateAll(c); err != nil {
		db.Close()
		return nil, err
	}
	return c, nil
}

// Close releases the working set. Idempotent; after Close every
// operation returns ErrContainerClosed.
func (c *Container) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.open {
		return nil
	}
	c.open = false
	if err := c.db.Close(); err != nil {
		return fmt.Errorf("closing working set: %w", err)
	}
	return nil
}

// Per-kind read accessors and replacement setters. Each accessor
// returns exactly the collection most recently committed via the
// matching Replace call, or the hydrated initial collection.

func (c *Container) Tasks() ([]types.Task, error) { return fetchAll(c, taskTable) }

func (c *Container) ReplaceTasks(records []types.Task) error {
	return replaceAll(c, taskTable, records)
}

func (c *Container) Notes() ([]types.Note, error) { return fetchAll(c, noteTable) }

func (c *Container) ReplaceNotes(records []types.Note) error {
	return replaceAll(c, noteTable, records)
}

func (c *Container) Expenses() ([]types.Expense, error) { return fetchAll(c, expenseTable) }

func (c *Container) ReplaceExpenses(records []types.Expense) error {
	return replaceAll(c, expenseTable, records)
}

func (c *Container) VaultItems() ([]types.VaultItem, error) { return fetchAll(c, vaultTable) }

func (c *Container) ReplaceVaultItems(records []types.VaultItem) error {
	return replaceAll(c, vaultTable, records)
}

func (c *Container) Songs() ([]types.Song, error) { return fetchAll(c, songTable) }

func (c *Container) ReplaceSongs(records []types.Song) error {
	return replaceAll(c, songTable, records)
}

// hydrateAll loads every collection from its slot into the working set.
func hydrateAll(c *Container) error {
	if err := hydrate(c, taskTable); err != nil {
		return err
	}
	if err := hydrate(c, noteTable); err != nil {
		return err
	}
	if err := hydrate(c, expenseTable); err != nil {
		return err
	}
	if err := hydrate(c, vaultTable); err != nil {
		return err
	}
	return hydrate(c, songTable)
}

// hydrate loads one slot into its table. Records that violate the
// table's constraints (a duplicate id written by an older process) are
// skipped rather than failing the open; hydration is fail-open all the
// way down.
func hydrate[R types.Record](c *Container, t table[R]) error {
	records := slot.Load[R](c.dataDir, t.name, c.log)
	if len(records) == 0 {
		return nil
	}

	tx, err := c.db.Begin()
	if err != nil {
		return fmt.Errorf("hydrating %s: %w", t.name, err)
	}
	defer tx.Rollback()

	for pos, rec := range records {
		if _, err := tx.Exec(t.insertSQL, t.bind(rec, pos)...); err != nil {
			c.log.Warn().Str("slot", t.name).Int64("id", rec.RecordID()).Err(err).
				Msg("skipping record during hydration")
			continue
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("hydrating %s: %w", t.name, err)
	}
	return nil
}

// fetchAll returns a table's records in collection order.
func fetchAll[R types.Record](c *Container, t table[R]) ([]R, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.open {
		return nil, types.ErrContainerClosed
	}

	rows, err := c.db.Query(t.selectSQL)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", t.name, err)
	}
	defer rows.Close()

	var records []R
	for rows.Next() {
		rec, err := t.scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning %s: %w", t.name, err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("fetching %s: %w", t.name, err)
	}
	return records, nil
}

// replaceAll commits a full replacement collection: validate, rewrite
// the table in one transaction, then persist the owning slot. A
// validation failure leaves both memory and slot at their last-good
// value. A slot write failure leaves memory committed and is returned
// as a *types.StorageError; the next successful replace reconciles by
// writing the then-current full collection.
func replaceAll[R types.Record](c *Container, t table[R], records []R) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.open {
		return types.ErrContainerClosed
	}
	if err := types.ValidateCollection(t.name, records); err != nil {
		return err
	}

	tx, err := c.db.Begin()
	if err != nil {
		return fmt.Errorf("replacing %s: %w", t.name, err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM " + t.name); err != nil {
		return fmt.Errorf("replacing %s: %w", t.name, err)
	}
	for pos, rec := range records {
		if _, err := tx.Exec(t.insertSQL, t.bind(rec, pos)...); err != nil {
			return fmt.Errorf("replacing %s: %w", t.name, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("replacing %s: %w", t.name, err)
	}

	if err := slot.Save(c.dataDir, t.name, records); err != nil {
		c.log.Error().Str("slot", t.name).Err(err).Msg("slot write failed, memory and slot diverged")
		return err
	}
	return nil
}
