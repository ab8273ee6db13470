// Note commands drive the note card grid.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/workos/internal/feature/notes"
	"github.com/mesh-intelligence/workos/pkg/types"
)

var (
	noteID      int64
	noteTitle   string
	noteContent string
)

var noteCmd = &cobra.Command{
	Use:   "note",
	Short: "Manage notes",
}

var noteSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Save a note draft",
	Long: `Save commits a note draft. Without --id a new note is appended;
with --id the matching note is replaced.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		container, err := openContainer()
		if err != nil {
			return err
		}
		defer container.Close()

		saved, err := notes.NewModule(container).Save(types.Note{
			ID:      noteID,
			Title:   noteTitle,
			Content: noteContent,
		})
		if err != nil {
			return err
		}
		if flagJSON {
			return printJSON(saved)
		}
		fmt.Printf("Saved note %d: %s\n", saved.ID, saved.Title)
		return nil
	},
}

var noteDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a note",
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

		return notes.NewModule(container).Delete(id)
	},
}

var noteListCmd = &cobra.Command{
	Use:   "list",
	Short: "List notes",
	RunE: func(cmd *cobra.Command, args []string) error {
		container, err := openContainer()
		if err != nil {
			return err
		}
		defer container.Close()

		if flagJSON {
			all, err := container.Notes()
			if err != nil {
				return err
			}
			return printJSON(all)
		}
		return notes.NewModule(container).Render(os.Stdout, flagDark)
	},
}

func init() {
	noteSaveCmd.Flags().Int64Var(&noteID, "id", 0, "note id to replace (omit to append)")
	noteSaveCmd.Flags().StringVar(&noteTitle, "title", "", "note title (required)")
	noteSaveCmd.Flags().StringVar(&noteContent, "content", "", "note content")
	_ = noteSaveCmd.MarkFlagRequired("title")

	noteCmd.AddCommand(noteSaveCmd)
	noteCmd.AddCommand(noteDeleteCmd)
	noteCmd.AddCommand(noteListCmd)
}
