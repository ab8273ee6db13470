// Password command generates a random password.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/workos/internal/feature/passgen"
)

var passwordLength int

var passwordCmd = &cobra.Command{
	Use:   "password",
	Short: "Generate a random password",
	RunE: func(cmd *cobra.Command, args []string) error {
		password, err := passgen.Generate(passwordLength)
		if err != nil {
			return err
		}
		if flagJSON {
			return printJSON(map[string]string{"password": password})
		}
		fmt.Println(password)
		return nil
	},
}

func init() {
	passwordCmd.Flags().IntVar(&passwordLength, "length", passgen.DefaultLength,
		fmt.Sprintf("password length (%d-%d)", passgen.MinLength, passgen.MaxLength))
}
