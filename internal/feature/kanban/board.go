// Package kanban implements the three-column task board over the tasks
// collection.
package kanban

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/mesh-intelligence/workos/internal/shell"
	"github.com/mesh-intelligence/workos/pkg/types"
)

// ErrTaskNotFound is returned when an operation names an id that is not
// in the collection.
var ErrTaskNotFound = errors.New("task not found")

// Store is the slice of the state container the board needs.
type Store interface {
	Tasks() ([]types.Task, error)
	ReplaceTasks([]types.Task) error
}

// Board mutates the tasks collection only through full replacement; it
// never edits a fetched collection in place.
type Board struct {
	store Store
}

func NewBoard(store Store) *Board {
	return &Board{store: store}
}

func (b *Board) ID() string { return shell.ViewKanban }

// Add creates a task in the todo column.
func (b *Board) Add(text string) (types.Task, error) {
	task := types.Task{ID: types.NextID(), Text: text, Status: types.StatusTodo}
	if err := task.Validate(); err != nil {
		return types.Task{}, err
	}
	tasks, err := b.store.Tasks()
	if err != nil {
		return types.Task{}, err
	}
	if err := b.store.ReplaceTasks(append(tasks, task)); err != nil {
		return types.Task{}, err
	}
	return task, nil
}

// MoveRight advances a task one column toward done. Already-done tasks
// stay put.
func (b *Board) MoveRight(id int64) error { return b.shift(id, 1) }

// MoveLeft moves a task one column back toward todo.
func (b *Board) MoveLeft(id int64) error { return b.shift(id, -1) }

func (b *Board) shift(id int64, delta int) error {
	tasks, err := b.store.Tasks()
	if err != nil {
		return err
	}
	next := make([]types.Task, len(tasks))
	copy(next, tasks)
	for i := range next {
		if next[i].ID != id {
			continue
		}
		col := statusIndex(next[i].Status) + delta
		if col < 0 || col >= len(types.TaskStatuses) {
			return nil
		}
		next[i].Status = types.TaskStatuses[col]
		return b.store.ReplaceTasks(next)
	}
	return ErrTaskNotFound
}

// SetStatus moves a task directly to any column.
func (b *Board) SetStatus(id int64, status string) error {
	if !types.ValidTaskStatus(status) {
		return &types.ValidationError{
			Collection: types.TasksCollection,
			RecordID:   id,
			Field:      "status",
			Reason:     fmt.Sprintf("unknown status %q", status),
		}
	}
	tasks, err := b.store.Tasks()
	if err != nil {
		return err
	}
	next := make([]types.Task, len(tasks))
	copy(next, tasks)
	for i := range next {
		if next[i].ID == id {
			next[i].Status = status
			return b.store.ReplaceTasks(next)
		}
	}
	return ErrTaskNotFound
}

// Delete removes a task. Deleting an absent id is a no-op.
func (b *Board) Delete(id int64) error {
	tasks, err := b.store.Tasks()
	if err != nil {
		return err
	}
	next := make([]types.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.ID != id {
			next = append(next, t)
		}
	}
	if len(next) == len(tasks) {
		return nil
	}
	return b.store.ReplaceTasks(next)
}

var columnTitles = map[string]string{
	types.StatusTodo:  "Cần làm",
	types.StatusDoing: "Đang làm",
	types.StatusDone:  "Hoàn thành",
}

func statusIndex(status string) int {
	for i, s := range types.TaskStatuses {
		if s == status {
			return i
		}
	}
	return -1
}

// Render writes the board as three columns with per-column counts.
func (b *Board) Render(w io.Writer, dark bool) error {
	tasks, err := b.store.Tasks()
	if err != nil {
		return err
	}

	columns := make(map[string][]types.Task)
	for _, t := range tasks {
		columns[t.Status] = append(columns[t.Status], t)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 3, ' ', 0)
	rows := 0
	for _, s := range types.TaskStatuses {
		header := fmt.Sprintf("%s (%d)", columnTitles[s], len(columns[s]))
		fmt.Fprintf(tw, "%s\t", shell.Heading(header, dark))
		if n := len(columns[s]); n > rows {
			rows = n
		}
	}
	fmt.Fprintln(tw)
	for i := 0; i < rows; i++ {
		for _, s := range types.TaskStatuses {
			if i < len(columns[s]) {
				fmt.Fprintf(tw, "%s\t", columns[s][i].Text)
			} else {
				fmt.Fprint(tw, "\t")
			}
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}
