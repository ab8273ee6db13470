// Package notes implements the note card grid and its edit-draft save
// flow.
package notes

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/mesh-intelligence/workos/internal/shell"
	"github.com/mesh-intelligence/workos/pkg/types"
)

var ErrNoteNotFound = errors.New("note not found")

type Store interface {
	Notes() ([]types.Note, error)
	ReplaceNotes([]types.Note) error
}

type Module struct {
	store Store
}

func NewModule(store Store) *Module {
	return &Module{store: store}
}

func (m *Module) ID() string { return shell.ViewNotes }

// Save commits an edit draft. A zero id appends a new note with a
// fresh id; a nonzero id replaces the matching note in place.
func (m *Module) Save(draft types.Note) (types.Note, error) {
	appending := draft.ID == 0
	if appending {
		draft.ID = types.NextID()
	}
	if err := draft.Validate(); err != nil {
		return types.Note{}, err
	}

	notes, err := m.store.Notes()
	if err != nil {
		return types.Note{}, err
	}

	if appending {
		return draft, m.store.ReplaceNotes(append(notes, draft))
	}

	next := make([]types.Note, len(notes))
	copy(next, notes)
	for i := range next {
		if next[i].ID == draft.ID {
			next[i] = draft
			return draft, m.store.ReplaceNotes(next)
		}
	}
	return types.Note{}, ErrNoteNotFound
}

// Delete removes a note. Deleting an absent id is a no-op.
func (m *Module) Delete(id int64) error {
	notes, err := m.store.Notes()
	if err != nil {
		return err
	}
	next := make([]types.Note, 0, len(notes))
	for _, n := range notes {
		if n.ID != id {
			next = append(next, n)
		}
	}
	if len(next) == len(notes) {
		return nil
	}
	return m.store.ReplaceNotes(next)
}

// snippet trims a note body to one card-sized line. The cut is on
// rune boundaries so multi-byte text never renders broken.
func snippet(content string) string {
	content = strings.ReplaceAll(content, "\n", " ")
	runes := []rune(content)
	if len(runes) > 60 {
		return string(runes[:57]) + "..."
	}
	return content
}

func (m *Module) Render(w io.Writer, dark bool) error {
	notes, err := m.store.Notes()
	if err != nil {
		return err
	}

	fmt.Fprintln(w, shell.Heading("Ghi chú", dark))
	if len(notes) == 0 {
		fmt.Fprintln(w, "(trống)")
		return nil
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, n := range notes {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", n.ID, n.Title, snippet(n.Content))
	}
	return tw.Flush()
}
