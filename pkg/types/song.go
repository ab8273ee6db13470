package types

// Song is one playlist entry. The currently playing index lives in the
// jukebox module for the session only and is never persisted.
type Song struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	SourceURL string `json:"source_url"`
}

// RecordID returns the song's collection id.
func (s Song) RecordID() int64 { return s.ID }

// Validate checks the song's shape.
func (s Song) Validate() error {
	if s.ID <= 0 {
		return &ValidationError{RecordID: s.ID, Field: "id", Reason: "must be positive"}
	}
	if s.Title == "" {
		return &ValidationError{RecordID: s.ID, Field: "title", Reason: "must not be empty"}
	}
	if s.SourceURL == "" {
		return &ValidationError{RecordID: s.ID, Field: "source_url", Reason: "must not be empty"}
	}
	return nil
}
