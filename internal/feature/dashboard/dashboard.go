// Package dashboard implements the overview screen: greeting, pending
// work, the last-good weather snapshot and the module directory.
package dashboard

import (
	"fmt"
	"io"
	"time"

	"github.com/mesh-intelligence/workos/internal/remote"
	"github.com/mesh-intelligence/workos/internal/shell"
)

type Store interface {
	PendingTaskCount() (int, error)
}

type Dashboard struct {
	store Store
	now   func() time.Time

	weather    remote.Weather
	hasWeather bool
}

func New(store Store) *Dashboard {
	return &Dashboard{store: store, now: time.Now}
}

func (d *Dashboard) ID() string { return shell.ViewDashboard }

// SetWeather records the latest successful fetch. A failed fetch never
// calls this, so the dashboard keeps showing the last-good snapshot.
func (d *Dashboard) SetWeather(w remote.Weather) {
	d.weather = w
	d.hasWeather = true
}

// Greeting picks the salutation for an hour of the day.
func Greeting(hour int) string {
	switch {
	case hour < 12:
		return "Chào buổi sáng"
	case hour < 18:
		return "Chào buổi chiều"
	default:
		return "Chào buổi tối"
	}
}

func (d *Dashboard) Render(w io.Writer, dark bool) error {
	pending, err := d.store.PendingTaskCount()
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "%s, Sếp!\n", shell.Heading(Greeting(d.now().Hour()), dark))
	if d.hasWeather {
		fmt.Fprintf(w, "Thời tiết: %.1f°C, độ ẩm %.0f%%\n", d.weather.Temperature, d.weather.Humidity)
	} else {
		fmt.Fprintln(w, "Thời tiết: --")
	}
	fmt.Fprintf(w, "Kanban Board: %d việc đang chờ\n", pending)

	fmt.Fprintln(w, shell.Heading("Ứng dụng", dark))
	for _, id := range shell.ViewOrder {
		if id == shell.ViewDashboard {
			continue
		}
		fmt.Fprintf(w, "  %s\n", id)
	}
	return nil
}
