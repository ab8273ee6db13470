// QR command builds a QR code image URL.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/workos/internal/feature/devtools"
)

var qrCmd = &cobra.Command{
	Use:   "qr <text>",
	Short: "Print a QR code image URL for a link or text",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		url := devtools.QRImageURL(args[0])
		if flagJSON {
			return printJSON(map[string]string{"url": url})
		}
		fmt.Println(url)
		return nil
	},
}
