package types

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpenseValidate(t *testing.T) {
	tests := []struct {
		name      string
		expense   Expense
		wantField string
	}{
		{
			name:    "valid expense",
			expense: Expense{ID: 1, Description: "Lunch", Amount: 50000},
		},
		{
			name:    "zero amount allowed",
			expense: Expense{ID: 2, Description: "Freebie", Amount: 0},
		},
		{
			name:      "negative amount",
			expense:   Expense{ID: 3, Description: "Refund", Amount: -5},
			wantField: "amount",
		},
		{
			name:      "NaN amount",
			expense:   Expense{ID: 4, Description: "Glitch", Amount: math.NaN()},
			wantField: "amount",
		},
		{
			name:      "infinite amount",
			expense:   Expense{ID: 5, Description: "Jackpot", Amount: math.Inf(1)},
			wantField: "amount",
		},
		{
			name:      "empty description",
			expense:   Expense{ID: 6, Amount: 10},
			wantField: "description",
		},
		{
			name:      "missing id",
			expense:   Expense{Description: "No id", Amount: 10},
			wantField: "id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.expense.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var ve *ValidationError
			assert.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.wantField, ve.Field)
		})
	}
}
