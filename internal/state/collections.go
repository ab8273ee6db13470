package state

import (
	"database/sql"

	"github.com/mesh-intelligence/workos/pkg/types"
)

// table binds one entity kind to its working-set table and slot key.
// The name is both at once: collections persist to isolated slots so a
// failure in one never affects another.
type table[R types.Record] struct {
	name      string
	insertSQL string
	selectSQL string
	bind      func(rec R, pos int) []any
	scan      func(rows *sql.Rows) (R, error)
}

var taskTable = table[types.Task]{
	name:      types.TasksCollection,
	insertSQL: `INSERT INTO tasks (id, text, status, pos) VALUES (?, ?, ?, ?)`,
	selectSQL: `SELECT id, text, status FROM tasks ORDER BY pos`,
	bind: func(t types.Task, pos int) []any {
		return []any{t.ID, t.Text, t.Status, pos}
	},
	scan: func(rows *sql.Rows) (types.Task, error) {
		var t types.Task
		err := rows.Scan(&t.ID, &t.Text, &t.Status)
		return t, err
	},
}

var noteTable = table[types.Note]{
	name:      types.NotesCollection,
	insertSQL: `INSERT INTO notes (id, title, content, pos) VALUES (?, ?, ?, ?)`,
	selectSQL: `SELECT id, title, content FROM notes ORDER BY pos`,
	bind: func(n types.Note, pos int) []any {
		return []any{n.ID, n.Title, n.Content, pos}
	},
	scan: func(rows *sql.Rows) (types.Note, error) {
		var n types.Note
		err := rows.Scan(&n.ID, &n.Title, &n.Content)
		return n, err
	},
}

var expenseTable = table[types.Expense]{
	name:      types.ExpensesCollection,
	insertSQL: `INSERT INTO expenses (id, description, amount, pos) VALUES (?, ?, ?, ?)`,
	selectSQL: `SELECT id, description, amount FROM expenses ORDER BY pos`,
	bind: func(e types.Expense, pos int) []any {
		return []any{e.ID, e.Description, e.Amount, pos}
	},
	scan: func(rows *sql.Rows) (types.Expense, error) {
		var e types.Expense
		err := rows.Scan(&e.ID, &e.Description, &e.Amount)
		return e, err
	},
}

var vaultTable = table[types.VaultItem]{
	name:      types.VaultCollection,
	insertSQL: `INSERT INTO vault_items (id, kind, title, content, created_at, pos) VALUES (?, ?, ?, ?, ?, ?)`,
	selectSQL: `SELECT id, kind, title, content, created_at FROM vault_items ORDER BY pos`,
	bind: func(v types.VaultItem, pos int) []any {
		return []any{v.ID, v.Kind, v.Title, v.Content, v.CreatedAt, pos}
	},
	scan: func(rows *sql.Rows) (types.VaultItem, error) {
		var v types.VaultItem
		err := rows.Scan(&v.ID, &v.Kind, &v.Title, &v.Content, &v.CreatedAt)
		return v, err
	},
}

var songTable = table[types.Song]{
	name:      types.SongsCollection,
	insertSQL: `INSERT INTO songs (id, title, source_url, pos) VALUES (?, ?, ?, ?)`,
	selectSQL: `SELECT id, title, source_url FROM songs ORDER BY pos`,
	bind: func(s types.Song, pos int) []any {
		return []any{s.ID, s.Title, s.SourceURL, pos}
	},
	scan: func(rows *sql.Rows) (types.Song, error) {
		var s types.Song
		err := rows.Scan(&s.ID, &s.Title, &s.SourceURL)
		return s, err
	},
}
