// Expense commands drive the finance ledger.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/workos/internal/feature/finance"
)

var expenseCmd = &cobra.Command{
	Use:   "expense",
	Short: "Manage expenses",
}

var expenseAddCmd = &cobra.Command{
	Use:   "add <description> <amount>",
	Short: "Record an expense",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		container, err := openContainer()
		if err != nil {
			return err
		}
		defer container.Close()

		expense, err := finance.NewLedger(container).Add(args[0], args[1])
		if err != nil {
			return err
		}
		if flagJSON {
			return printJSON(expense)
		}
		fmt.Printf("Recorded expense %d: %s -%.0f\n", expense.ID, expense.Description, expense.Amount)
		return nil
	},
}

var expenseDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an expense",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		container, err := openContainer()
		if err != nil {
			return err
		}
		defer container.Close()

		return finance.NewLedger(container).Delete(id)
	},
}

var expenseListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the ledger and chart",
	RunE: func(cmd *cobra.Command, args []string) error {
		container, err := openContainer()
		if err != nil {
			return err
		}
		defer container.Close()

		if flagJSON {
			all, err := container.Expenses()
			if err != nil {
				return err
			}
			return printJSON(all)
		}
		return finance.NewLedger(container).Render(os.Stdout, flagDark)
	},
}

var expenseTotalCmd = &cobra.Command{
	Use:   "total",
	Short: "Print the running total",
	RunE: func(cmd *cobra.Command, args []string) error {
		container, err := openContainer()
		if err != nil {
			return err
		}
		defer container.Close()

		total, err := finance.NewLedger(container).Total()
		if err != nil {
			return err
		}
		if flagJSON {
			return printJSON(map[string]float64{"total": total})
		}
		fmt.Printf("Tổng chi: %.0fđ\n", total)
		return nil
	},
}

func init() {
	expenseCmd.AddCommand(expenseAddCmd)
	expenseCmd.AddCommand(expenseDeleteCmd)
	expenseCmd.AddCommand(expenseListCmd)
	expenseCmd.AddCommand(expenseTotalCmd)
}
