// Package vault implements the snippet archive: code, link and text
// items kept newest first.
package vault

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/mesh-intelligence/workos/internal/shell"
	"github.com/mesh-intelligence/workos/pkg/types"
)

type Store interface {
	VaultItems() ([]types.VaultItem, error)
	ReplaceVaultItems([]types.VaultItem) error
}

type Vault struct {
	store Store
	now   func() time.Time
}

func NewVault(store Store) *Vault {
	return &Vault{store: store, now: time.Now}
}

func (v *Vault) ID() string { return shell.ViewVault }

// Add prepends a new item so the collection reads newest first. The
// creation date is captured at add time in display format.
func (v *Vault) Add(kind, title, content string) (types.VaultItem, error) {
	item := types.VaultItem{
		ID:        types.NextID(),
		Kind:      kind,
		Title:     title,
		Content:   content,
		CreatedAt: v.now().Format(types.VaultDateFormat),
	}
	if err := item.Validate(); err != nil {
		return types.VaultItem{}, err
	}
	items, err := v.store.VaultItems()
	if err != nil {
		return types.VaultItem{}, err
	}
	next := append([]types.VaultItem{item}, items...)
	if err := v.store.ReplaceVaultItems(next); err != nil {
		return types.VaultItem{}, err
	}
	return item, nil
}

// Delete removes an item. Deleting an absent id is a no-op.
func (v *Vault) Delete(id int64) error {
	items, err := v.store.VaultItems()
	if err != nil {
		return err
	}
	next := make([]types.VaultItem, 0, len(items))
	for _, item := range items {
		if item.ID != id {
			next = append(next, item)
		}
	}
	if len(next) == len(items) {
		return nil
	}
	return v.store.ReplaceVaultItems(next)
}

// Filter returns the items of one kind, or every item when kind is
// empty, preserving collection order.
func (v *Vault) Filter(kind string) ([]types.VaultItem, error) {
	if kind != "" && !types.ValidVaultKind(kind) {
		return nil, &types.ValidationError{
			Collection: types.VaultCollection,
			Field:      "kind",
			Reason:     fmt.Sprintf("unknown kind %q", kind),
		}
	}
	items, err := v.store.VaultItems()
	if err != nil {
		return nil, err
	}
	if kind == "" {
		return items, nil
	}
	var filtered []types.VaultItem
	for _, item := range items {
		if item.Kind == kind {
			filtered = append(filtered, item)
		}
	}
	return filtered, nil
}

func (v *Vault) Render(w io.Writer, dark bool) error {
	items, err := v.store.VaultItems()
	if err != nil {
		return err
	}

	fmt.Fprintln(w, shell.Heading("Kho lưu trữ", dark))
	if len(items) == 0 {
		fmt.Fprintln(w, "(trống)")
		return nil
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, item := range items {
		fmt.Fprintf(tw, "%d\t[%s]\t%s\t%s\n", item.ID, item.Kind, item.Title, item.CreatedAt)
	}
	return tw.Flush()
}
