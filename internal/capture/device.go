package capture

import (
	"context"
	"fmt"
	"os/exec"
	"time"
)

// ExecDevice records through an external capture program (arecord by
// default), reading raw audio from its stdout.
type ExecDevice struct {
	// Command and base arguments; the duration is appended as the
	// program's -d value in whole seconds.
	Command string
	Args    []string
}

func NewExecDevice() *ExecDevice {
	return &ExecDevice{
		Command: "arecord",
		Args:    []string{"-f", "cd", "-t", "wav"},
	}
}

func (d *ExecDevice) Record(ctx context.Context, duration time.Duration) ([]byte, error) {
	seconds := int(duration.Seconds())
	if seconds < 1 {
		seconds = 1
	}
	args := append(append([]string{}, d.Args...), "-d", fmt.Sprint(seconds))

	out, err := exec.CommandContext(ctx, d.Command, args...).Output()
	if err != nil {
		return nil, fmt.Errorf("running %s: %w", d.Command, err)
	}
	return out, nil
}
