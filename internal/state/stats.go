package state

import (
	"fmt"

	"github.com/mesh-intelligence/workos/pkg/types"
)

// Aggregate queries for the dashboard and finance views. These read the
// working set directly; they never touch the slots.

// TaskStatusCounts returns the number of tasks per status, with every
// status present even when zero.
func (c *Container) TaskStatusCounts() (map[string]int, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.open {
		return nil, types.ErrContainerClosed
	}

	counts := make(map[string]int, len(types.TaskStatuses))
	for _, s := range types.TaskStatuses {
		counts[s] = 0
	}

	rows, err := c.db.Query(`SELECT status, COUNT(*) FROM tasks GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("counting tasks: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("counting tasks: %w", err)
		}
		counts[status] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("counting tasks: %w", err)
	}
	return counts, nil
}

// PendingTaskCount returns the number of tasks not yet done.
func (c *Container) PendingTaskCount() (int, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.open {
		return 0, types.ErrContainerClosed
	}

	var n int
	err := c.db.QueryRow(`SELECT COUNT(*) FROM tasks WHERE status != ?`, types.StatusDone).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting pending tasks: %w", err)
	}
	return n, nil
}

// ExpenseTotal returns the sum of all expense amounts.
func (c *Container) ExpenseTotal() (float64, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.open {
		return 0, types.ErrContainerClosed
	}

	var total float64
	err := c.db.QueryRow(`SELECT COALESCE(SUM(amount), 0) FROM expenses`).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("totaling expenses: %w", err)
	}
	return total, nil
}

// RecentExpenses returns the last n expenses in chronological order.
func (c *Container) RecentExpenses(n int) ([]types.Expense, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.open {
		return nil, types.ErrContainerClosed
	}

	rows, err := c.db.Query(
		`SELECT id, description, amount FROM expenses ORDER BY pos DESC LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("fetching recent expenses: %w", err)
	}
	defer rows.Close()

	var recent []types.Expense
	for rows.Next() {
		var e types.Expense
		if err := rows.Scan(&e.ID, &e.Description, &e.Amount); err != nil {
			return nil, fmt.Errorf("fetching recent expenses: %w", err)
		}
		recent = append(recent, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("fetching recent expenses: %w", err)
	}

	// Newest-last, matching collection order.
	for i, j := 0, len(recent)-1; i < j; i, j = i+1, j-1 {
		recent[i], recent[j] = recent[j], recent[i]
	}
	return recent, nil
}
