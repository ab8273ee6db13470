package types

// Task statuses. The board UI only exposes adjacent moves
// (todo <-> doing <-> done); the model accepts any member of the enum.
const (
	StatusTodo  = "todo"
	StatusDoing = "doing"
	StatusDone  = "done"
)

// TaskStatuses lists the statuses in board-column order.
var TaskStatuses = []string{StatusTodo, StatusDoing, StatusDone}

// validTaskStatuses is the set of recognized status values.
var validTaskStatuses = map[string]bool{
	StatusTodo:  true,
	StatusDoing: true,
	StatusDone:  true,
}

// ValidTaskStatus reports whether s is a recognized task status.
func ValidTaskStatus(s string) bool {
	return validTaskStatuses[s]
}

// Task is one work item on the kanban board.
type Task struct {
	ID     int64  `json:"id"`     // unique within the collection, assigned at creation
	Text   string `json:"text"`   // required, non-empty
	Status string `json:"status"` // one of the status constants
}

// RecordID returns the task's collection id.
func (t Task) RecordID() int64 { return t.ID }

// Validate checks the task's shape.
func (t Task) Validate() error {
	if t.ID <= 0 {
		return &ValidationError{RecordID: t.ID, Field: "id", Reason: "must be positive"}
	}
	if t.Text == "" {
		return &ValidationError{RecordID: t.ID, Field: "text", Reason: "must not be empty"}
	}
	if !validTaskStatuses[t.Status] {
		return &ValidationError{RecordID: t.ID, Field: "status", Reason: "not a recognized status"}
	}
	return nil
}
