// Open command renders one view through the view router.
package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/workos/internal/capture"
	"github.com/mesh-intelligence/workos/internal/feature/dashboard"
	"github.com/mesh-intelligence/workos/internal/feature/devtools"
	"github.com/mesh-intelligence/workos/internal/feature/finance"
	"github.com/mesh-intelligence/workos/internal/feature/jukebox"
	"github.com/mesh-intelligence/workos/internal/feature/kanban"
	"github.com/mesh-intelligence/workos/internal/feature/notes"
	"github.com/mesh-intelligence/workos/internal/feature/passgen"
	"github.com/mesh-intelligence/workos/internal/feature/stopwatch"
	"github.com/mesh-intelligence/workos/internal/feature/vault"
	"github.com/mesh-intelligence/workos/internal/feature/worldclock"
	"github.com/mesh-intelligence/workos/internal/remote"
	"github.com/mesh-intelligence/workos/internal/shell"
	"github.com/mesh-intelligence/workos/internal/state"
)

var openCmd = &cobra.Command{
	Use:   "open [view]",
	Short: "Render a view (default: dashboard)",
	Long: `Open renders one view of the workbench.

Available views: ` + viewList(),
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		container, err := openContainer()
		if err != nil {
			return err
		}
		defer container.Close()

		router := buildRouter(cmd.Context(), container)
		if len(args) == 1 {
			router.Select(args[0])
		}
		return router.Render(os.Stdout)
	},
}

func viewList() string {
	out := ""
	for i, id := range shell.ViewOrder {
		if i > 0 {
			out += ", "
		}
		out += id
	}
	return out
}

// buildRouter registers every view over the open container. The
// dashboard's weather snapshot is fetched best-effort; on failure the
// dashboard renders without it.
func buildRouter(ctx context.Context, container *state.Container) *shell.Router {
	router := shell.NewRouter(log)
	router.SetDark(flagDark)

	dash := dashboard.New(container)
	if weather, err := remote.NewWeatherClient(log).
		Current(ctx, weatherLat, weatherLon); err == nil {
		dash.SetWeather(weather)
	}

	router.Register(dash)
	router.Register(kanban.NewBoard(container))
	router.Register(notes.NewModule(container))
	router.Register(finance.NewLedger(container))
	router.Register(vault.NewVault(container))
	router.Register(jukebox.NewPlayer(container))
	router.Register(worldclock.NewClock())
	router.Register(passgen.View{})
	router.Register(devtools.View{})
	router.Register(devtools.QRView{})
	router.Register(stopwatch.New())
	router.Register(capture.NewRecorder(capture.NewExecDevice(), log))
	router.Register(remote.MarketView{Client: remote.NewMarketClient(log), Coins: marketCoins})
	return router
}
