package types

// Note is a free-form note. Content may be empty; the title may not.
type Note struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// RecordID returns the note's collection id.
func (n Note) RecordID() int64 { return n.ID }

// Validate checks the note's shape.
func (n Note) Validate() error {
	if n.ID <= 0 {
		return &ValidationError{RecordID: n.ID, Field: "id", Reason: "must be positive"}
	}
	if n.Title == "" {
		return &ValidationError{RecordID: n.ID, Field: "title", Reason: "must not be empty"}
	}
	return nil
}
