package types

// Vault item kinds.
const (
	VaultKindCode = "code"
	VaultKindLink = "link"
	VaultKindText = "text"
)

// validVaultKinds is the set of recognized vault item kinds.
var validVaultKinds = map[string]bool{
	VaultKindCode: true,
	VaultKindLink: true,
	VaultKindText: true,
}

// ValidVaultKind reports whether k is a recognized vault item kind.
func ValidVaultKind(k string) bool {
	return validVaultKinds[k]
}

// VaultDateFormat is the display format for VaultItem.CreatedAt.
const VaultDateFormat = "2006-01-02"

// VaultItem is a clipboard-style snippet kept in the vault. New items
// are prepended, so the collection reads newest first.
type VaultItem struct {
	ID        int64  `json:"id"`
	Kind      string `json:"kind"` // one of the vault kind constants
	Title     string `json:"title"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"` // display-formatted date
}

// RecordID returns the item's collection id.
func (v VaultItem) RecordID() int64 { return v.ID }

// Validate checks the item's shape.
func (v VaultItem) Validate() error {
	if v.ID <= 0 {
		return &ValidationError{RecordID: v.ID, Field: "id", Reason: "must be positive"}
	}
	if !validVaultKinds[v.Kind] {
		return &ValidationError{RecordID: v.ID, Field: "kind", Reason: "not a recognized kind"}
	}
	if v.Title == "" {
		return &ValidationError{RecordID: v.ID, Field: "title", Reason: "must not be empty"}
	}
	return nil
}
