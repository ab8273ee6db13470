// Task commands drive the kanban board.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/workos/internal/feature/kanban"
)

var taskSetStatus string

var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "Manage tasks on the kanban board",
}

var taskAddCmd = &cobra.Command{
	Use:   "add <text>",
	Short: "Add a task to the todo column",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		container, err := openContainer()
		if err != nil {
			return err
		}
		defer container.Close()

		task, err := kanban.NewBoard(container).Add(args[0])
		if err != nil {
			return err
		}
		if flagJSON {
			return printJSON(task)
		}
		fmt.Printf("Added task %d: %s\n", task.ID, task.Text)
		return nil
	},
}

var taskMoveCmd = &cobra.Command{
	Use:   "move <id> <left|right>",
	Short: "Move a task one column",
	Args:  cobra.ExactArgs(2),
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

		board := kanban.NewBoard(container)
		switch args[1] {
		case "left":
			return board.MoveLeft(id)
		case "right":
			return board.MoveRight(id)
		default:
			return fmt.Errorf("direction must be left or right, got %q", args[1])
		}
	},
}

var taskSetCmd = &cobra.Command{
	Use:   "set <id>",
	Short: "Set a task's status directly",
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

		return kanban.NewBoard(container).SetStatus(id, taskSetStatus)
	},
}

var taskDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a task",
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

		return kanban.NewBoard(container).Delete(id)
	},
}

var taskListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the kanban board",
	RunE: func(cmd *cobra.Command, args []string) error {
		container, err := openContainer()
		if err != nil {
			return err
		}
		defer container.Close()

		if flagJSON {
			tasks, err := container.Tasks()
			if err != nil {
				return err
			}
			return printJSON(tasks)
		}
		return kanban.NewBoard(container).Render(os.Stdout, flagDark)
	},
}

func init() {
	taskSetCmd.Flags().StringVar(&taskSetStatus, "status", "", "target status: todo, doing or done (required)")
	_ = taskSetCmd.MarkFlagRequired("status")

	taskCmd.AddCommand(taskAddCmd)
	taskCmd.AddCommand(taskMoveCmd)
	taskCmd.AddCommand(taskSetCmd)
	taskCmd.AddCommand(taskDeleteCmd)
	taskCmd.AddCommand(taskListCmd)
}

// parseID parses a record id argument.
func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return id, nil
}
