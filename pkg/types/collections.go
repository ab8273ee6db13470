package types

import "errors"

// Standard collection names. Each name doubles as the durable slot key,
// so a failure in one collection's slot never affects another.
const (
	TasksCollection    = "tasks"
	NotesCollection    = "notes"
	ExpensesCollection = "expenses"
	VaultCollection    = "vault_items"
	SongsCollection    = "songs"
)

// StandardCollections lists all collection names for enumeration.
var StandardCollections = []string{
	TasksCollection,
	NotesCollection,
	ExpensesCollection,
	VaultCollection,
	SongsCollection,
}

// Record is implemented by every entity kind held in a collection.
type Record interface {
	RecordID() int64
	Validate() error
}

// ValidateCollection checks every record's shape and the id-uniqueness
// invariant for a full replacement collection. The first violation is
// returned as a *ValidationError naming the collection; the caller must
// not commit the collection when an error is returned.
func ValidateCollection[R Record](collection string, records []R) error {
	seen := make(map[int64]struct{}, len(records))
	for _, r := range records {
		if err := r.Validate(); err != nil {
			var ve *ValidationError
			if errors.As(err, &ve) {
				ve.Collection = collection
			}
			return err
		}
		id := r.RecordID()
		if _, dup := seen[id]; dup {
			return &ValidationError{Collection: collection, RecordID: id, Field: "id", Reason: "duplicate"}
		}
		seen[id] = struct{}{}
	}
	return nil
}
