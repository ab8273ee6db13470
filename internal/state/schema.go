package state

// Schema DDL for the in-memory working set, one table per collection.
// The pos column preserves collection order across rebuilds; the id
// primary key enforces uniqueness at the storage layer as a backstop to
// the validation done at the Replace boundary.
const (
	createTasks = `CREATE TABLE tasks (
    id INTEGER PRIMARY KEY,
    text TEXT NOT NULL,
    status TEXT NOT NULL,
    pos INTEGER NOT NULL
);`

	createNotes = `CREATE TABLE notes (
    id INTEGER PRIMARY KEY,
    title TEXT NOT NULL,
    content TEXT NOT NULL,
    pos INTEGER NOT NULL
);`

	createExpenses = `CREATE TABLE expenses (
    id INTEGER PRIMARY KEY,
    description TEXT NOT NULL,
    amount REAL NOT NULL,
    pos INTEGER NOT NULL
);`

	createVaultItems = `CREATE TABLE vault_items (
    id INTEGER PRIMARY KEY,
    kind TEXT NOT NULL,
    title TEXT NOT NULL,
    content TEXT NOT NULL,
    created_at TEXT NOT NULL,
    pos INTEGER NOT NULL
);`

	createSongs = `CREATE TABLE songs (
    id INTEGER PRIMARY KEY,
    title TEXT NOT NULL,
    source_url TEXT NOT NULL,
    pos INTEGER NOT NULL
);`
)

// Index DDL for the aggregate queries.
const (
	idxTasksStatus    = `CREATE INDEX idx_tasks_status ON tasks(status);`
	idxVaultItemsKind = `CREATE INDEX idx_vault_items_kind ON vault_items(kind);`
)

// schemaDDL lists all CREATE statements in creation order.
var schemaDDL = []string{
	createTasks,
	createNotes,
	createExpenses,
	createVaultItems,
	createSongs,
	idxTasksStatus,
	idxVaultItemsKind,
}
