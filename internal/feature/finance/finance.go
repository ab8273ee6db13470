// Package finance implements the expense ledger: validated entry, the
// running total, and the recent-spend bar chart.
package finance

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/mesh-intelligence/workos/internal/shell"
	"github.com/mesh-intelligence/workos/pkg/types"
)

// chartWidth is the bar length of the largest recent expense.
const chartWidth = 24

// Store is the slice of the state container the ledger needs; totals
// and the recent window come from the container's aggregates rather
// than a local fold.
type Store interface {
	Expenses() ([]types.Expense, error)
	ReplaceExpenses([]types.Expense) error
	ExpenseTotal() (float64, error)
	RecentExpenses(n int) ([]types.Expense, error)
}

type Ledger struct {
	store Store
}

func NewLedger(store Store) *Ledger {
	return &Ledger{store: store}
}

func (l *Ledger) ID() string { return shell.ViewFinance }

// ParseAmount turns user input into a spend amount, rejecting anything
// the collection's shape would reject, plus unparseable text, before a
// replacement is ever attempted.
func ParseAmount(raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, &types.ValidationError{
			Collection: types.ExpensesCollection,
			Field:      "amount",
			Reason:     "amount is empty",
		}
	}
	amount, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, &types.ValidationError{
			Collection: types.ExpensesCollection,
			Field:      "amount",
			Reason:     fmt.Sprintf("not a number: %q", raw),
		}
	}
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0, &types.ValidationError{
			Collection: types.ExpensesCollection,
			Field:      "amount",
			Reason:     "amount is not finite",
		}
	}
	if amount < 0 {
		return 0, &types.ValidationError{
			Collection: types.ExpensesCollection,
			Field:      "amount",
			Reason:     "amount is negative",
		}
	}
	return amount, nil
}

// Add records an expense. The raw amount is validated here so a bad
// entry never reaches the collection.
func (l *Ledger) Add(description, rawAmount string) (types.Expense, error) {
	amount, err := ParseAmount(rawAmount)
	if err != nil {
		return types.Expense{}, err
	}
	expense := types.Expense{ID: types.NextID(), Description: description, Amount: amount}
	if err := expense.Validate(); err != nil {
		return types.Expense{}, err
	}
	expenses, err := l.store.Expenses()
	if err != nil {
		return types.Expense{}, err
	}
	if err := l.store.ReplaceExpenses(append(expenses, expense)); err != nil {
		return types.Expense{}, err
	}
	return expense, nil
}

// Delete removes an expense. Deleting an absent id is a no-op.
func (l *Ledger) Delete(id int64) error {
	expenses, err := l.store.Expenses()
	if err != nil {
		return err
	}
	next := make([]types.Expense, 0, len(expenses))
	for _, e := range expenses {
		if e.ID != id {
			next = append(next, e)
		}
	}
	if len(next) == len(expenses) {
		return nil
	}
	return l.store.ReplaceExpenses(next)
}

// Total returns the running total of all expenses.
func (l *Ledger) Total() (float64, error) {
	return l.store.ExpenseTotal()
}

// Render writes the ledger, the total, and a bar chart of the last
// five expenses scaled to the largest of them.
func (l *Ledger) Render(w io.Writer, dark bool) error {
	expenses, err := l.store.Expenses()
	if err != nil {
		return err
	}
	total, err := l.store.ExpenseTotal()
	if err != nil {
		return err
	}
	recent, err := l.store.RecentExpenses(5)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, shell.Heading("Tài chính", dark))
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, e := range expenses {
		fmt.Fprintf(tw, "%d\t%s\t-%.0f\n", e.ID, e.Description, e.Amount)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(w, "Tổng chi: %.0fđ\n", total)

	if len(recent) == 0 {
		fmt.Fprintln(w, "Chưa có dữ liệu")
		return nil
	}
	max := 1.0
	for _, e := range recent {
		if e.Amount > max {
			max = e.Amount
		}
	}
	fmt.Fprintln(w, shell.Heading("5 giao dịch gần nhất", dark))
	for _, e := range recent {
		bar := int(e.Amount / max * chartWidth)
		fmt.Fprintf(w, "%-20s %s %.0f\n", e.Description, strings.Repeat("█", bar), e.Amount)
	}
	return nil
}
