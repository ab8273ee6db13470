// Init command creates the data directory and empty collection slots.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the workos data directory",
	Long:  `Init creates the data directory and one empty slot per collection.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		container, err := openContainer()
		if err != nil {
			return err
		}
		defer container.Close()

		dataDir, err := resolveDataDir()
		if err != nil {
			return err
		}
		fmt.Printf("Initialized workos data directory: %s\n", dataDir)
		return nil
	},
}
