// Weather command prints the current-conditions snapshot.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/workos/internal/remote"
)

var weatherCmd = &cobra.Command{
	Use:   "weather",
	Short: "Fetch the weather snapshot for the configured coordinates",
	RunE: func(cmd *cobra.Command, args []string) error {
		weather, err := remote.NewWeatherClient(log).
			Current(cmd.Context(), weatherLat, weatherLon)
		if err != nil {
			return fmt.Errorf("weather unavailable: %w", err)
		}
		if flagJSON {
			return printJSON(weather)
		}
		fmt.Printf("Thời tiết: %.1f°C, độ ẩm %.0f%%, mã thời tiết %d\n",
			weather.Temperature, weather.Humidity, weather.WeatherCode)
		return nil
	},
}
