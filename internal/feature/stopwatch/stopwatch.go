// Package stopwatch implements a lap stopwatch. All state is
// session-only.
package stopwatch

import (
	"fmt"
	"io"
	"time"

	"github.com/mesh-intelligence/workos/internal/shell"
)

type Watch struct {
	now func() time.Time

	running   bool
	startedAt time.Time
	elapsed   time.Duration
	laps      []time.Duration
}

func New() *Watch {
	return &Watch{now: time.Now}
}

func (s *Watch) ID() string { return shell.ViewStopwatch }

// Start begins or resumes timing. Starting a running watch is a no-op.
func (s *Watch) Start() {
	if s.running {
		return
	}
	s.running = true
	s.startedAt = s.now()
}

// Stop pauses timing, keeping the elapsed total.
func (s *Watch) Stop() {
	if !s.running {
		return
	}
	s.elapsed += s.now().Sub(s.startedAt)
	s.running = false
}

// Reset stops the watch and clears elapsed time and laps.
func (s *Watch) Reset() {
	s.running = false
	s.elapsed = 0
	s.laps = nil
}

// Lap records the current elapsed total, newest first.
func (s *Watch) Lap() {
	s.laps = append([]time.Duration{s.Elapsed()}, s.laps...)
}

// Elapsed returns the running total.
func (s *Watch) Elapsed() time.Duration {
	if s.running {
		return s.elapsed + s.now().Sub(s.startedAt)
	}
	return s.elapsed
}

// Laps returns the recorded laps, newest first.
func (s *Watch) Laps() []time.Duration {
	return s.laps
}

// Format renders a duration as mm:ss.cc.
func Format(d time.Duration) string {
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	centis := int(d.Milliseconds()/10) % 100
	return fmt.Sprintf("%02d:%02d.%02d", minutes, seconds, centis)
}

func (s *Watch) Render(w io.Writer, dark bool) error {
	fmt.Fprintln(w, shell.Heading("Bấm giờ", dark))
	fmt.Fprintln(w, Format(s.Elapsed()))
	for i, lap := range s.laps {
		fmt.Fprintf(w, "Vòng %d\t%s\n", len(s.laps)-i, Format(lap))
	}
	return nil
}
