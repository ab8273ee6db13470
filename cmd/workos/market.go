// Market command prints crypto prices for the configured coins.
package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/workos/internal/remote"
)

var marketCmd = &cobra.Command{
	Use:   "market",
	Short: "Fetch crypto prices for the configured coins",
	RunE: func(cmd *cobra.Command, args []string) error {
		coins, err := remote.NewMarketClient(log).Prices(cmd.Context(), marketCoins)
		if err != nil {
			return fmt.Errorf("market unavailable: %w", err)
		}
		if flagJSON {
			return printJSON(coins)
		}
		tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "Tên Coin\tGiá (USD)\tGiá (VND)\tThay đổi (24h)")
		for _, coin := range coins {
			fmt.Fprintf(tw, "%s\t$%.2f\t₫%.0f\t%+.2f%%\n",
				coin.ID, coin.PriceUSD, coin.PriceVND, coin.Change24h)
		}
		return tw.Flush()
	},
}
