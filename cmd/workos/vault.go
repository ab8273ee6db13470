// Vault commands drive the snippet archive.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/workos/internal/feature/vault"
)

var (
	vaultAddKind    string
	vaultAddContent string
	vaultFilterKind string
)

var vaultCmd = &cobra.Command{
	Use:   "vault",
	Short: "Manage the snippet archive",
}

var vaultAddCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Store an item (newest first)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		container, err := openContainer()
		if err != nil {
			return err
		}
		defer container.Close()

		item, err := vault.NewVault(container).Add(vaultAddKind, args[0], vaultAddContent)
		if err != nil {
			return err
		}
		if flagJSON {
			return printJSON(item)
		}
		fmt.Printf("Stored %s item %d: %s\n", item.Kind, item.ID, item.Title)
		return nil
	},
}

var vaultDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an item",
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

		return vault.NewVault(container).Delete(id)
	},
}

var vaultListCmd = &cobra.Command{
	Use:   "list",
	Short: "List items, optionally by kind",
	RunE: func(cmd *cobra.Command, args []string) error {
		container, err := openContainer()
		if err != nil {
			return err
		}
		defer container.Close()

		v := vault.NewVault(container)
		if flagJSON || vaultFilterKind != "" {
			items, err := v.Filter(vaultFilterKind)
			if err != nil {
				return err
			}
			if flagJSON {
				return printJSON(items)
			}
			for _, item := range items {
				fmt.Printf("%d [%s] %s %s\n", item.ID, item.Kind, item.Title, item.CreatedAt)
			}
			return nil
		}
		return v.Render(os.Stdout, flagDark)
	},
}

func init() {
	vaultAddCmd.Flags().StringVar(&vaultAddKind, "kind", "code", "item kind: code, link or text")
	vaultAddCmd.Flags().StringVar(&vaultAddContent, "content", "", "item content")
	vaultListCmd.Flags().StringVar(&vaultFilterKind, "kind", "", "only items of this kind")

	vaultCmd.AddCommand(vaultAddCmd)
	vaultCmd.AddCommand(vaultDeleteCmd)
	vaultCmd.AddCommand(vaultListCmd)
}
