// Package worldclock shows the time in a fixed set of cities.
package worldclock

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/mesh-intelligence/workos/internal/shell"
)

// City pairs a display name with its IANA timezone.
type City struct {
	Name string
	TZ   string
}

// Cities is the fixed display set.
var Cities = []City{
	{Name: "Hà Nội", TZ: "Asia/Ho_Chi_Minh"},
	{Name: "Tokyo", TZ: "Asia/Tokyo"},
	{Name: "New York", TZ: "America/New_York"},
	{Name: "London", TZ: "Europe/London"},
}

// CityTime is one rendered row.
type CityTime struct {
	City City
	Time time.Time
}

// Times projects one instant into every city's zone.
func Times(now time.Time) ([]CityTime, error) {
	out := make([]CityTime, 0, len(Cities))
	for _, city := range Cities {
		loc, err := time.LoadLocation(city.TZ)
		if err != nil {
			return nil, fmt.Errorf("loading timezone %s: %w", city.TZ, err)
		}
		out = append(out, CityTime{City: city, Time: now.In(loc)})
	}
	return out, nil
}

type Clock struct {
	now func() time.Time
}

func NewClock() *Clock {
	return &Clock{now: time.Now}
}

func (c *Clock) ID() string { return shell.ViewWorldClock }

func (c *Clock) Render(w io.Writer, dark bool) error {
	times, err := Times(c.now())
	if err != nil {
		return err
	}
	fmt.Fprintln(w, shell.Heading("Đồng hồ thế giới", dark))
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, ct := range times {
		fmt.Fprintf(tw, "%s\t%s\n", ct.City.Name, ct.Time.Format("15:04"))
	}
	return tw.Flush()
}
