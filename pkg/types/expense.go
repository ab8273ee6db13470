package types

import "math"

// Expense is one ledger entry. Expenses are never edited in place;
// they are created on submit and deleted outright.
type Expense struct {
	ID          int64   `json:"id"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"` // finite, non-negative
}

// RecordID returns the expense's collection id.
func (e Expense) RecordID() int64 { return e.ID }

// Validate checks the expense's shape.
func (e Expense) Validate() error {
	if e.ID <= 0 {
		return &ValidationError{RecordID: e.ID, Field: "id", Reason: "must be positive"}
	}
	if e.Description == "" {
		return &ValidationError{RecordID: e.ID, Field: "description", Reason: "must not be empty"}
	}
	if math.IsNaN(e.Amount) || math.IsInf(e.Amount, 0) {
		return &ValidationError{RecordID: e.ID, Field: "amount", Reason: "must be finite"}
	}
	if e.Amount < 0 {
		return &ValidationError{RecordID: e.ID, Field: "amount", Reason: "must not be negative"}
	}
	return nil
}
