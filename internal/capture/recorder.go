// Package capture implements microphone recording sessions. Clips are
// held in memory for the lifetime of the process only; nothing here is
// ever written to a collection or a slot.
package capture

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mesh-intelligence/workos/internal/shell"
)

// DeviceError wraps a microphone failure. Device trouble stays inside
// this module; it never bubbles as a storage or validation problem.
type DeviceError struct {
	Err error
}

func (e *DeviceError) Error() string {
	return fmt.Sprintf("audio device: %v", e.Err)
}

func (e *DeviceError) Unwrap() error { return e.Err }

// Device records audio for a bounded duration.
type Device interface {
	Record(ctx context.Context, d time.Duration) ([]byte, error)
}

// Clip is one finished recording.
type Clip struct {
	ID         uuid.UUID
	RecordedAt time.Time
	Data       []byte
}

// Recorder runs capture sessions and keeps the finished clips, newest
// first.
type Recorder struct {
	device Device
	now    func() time.Time
	log    zerolog.Logger

	clips []Clip
}

func NewRecorder(device Device, log zerolog.Logger) *Recorder {
	return &Recorder{device: device, now: time.Now, log: log}
}

func (r *Recorder) ID() string { return shell.ViewRecorder }

// Record captures one clip of the given duration and prepends it to
// the session's clip list.
func (r *Recorder) Record(ctx context.Context, d time.Duration) (Clip, error) {
	data, err := r.device.Record(ctx, d)
	if err != nil {
		r.log.Warn().Err(err).Msg("recording failed")
		return Clip{}, &DeviceError{Err: err}
	}
	clip := Clip{
		ID:         uuid.New(),
		RecordedAt: r.now(),
		Data:       data,
	}
	r.clips = append([]Clip{clip}, r.clips...)
	return clip, nil
}

// Clips returns the session's recordings, newest first.
func (r *Recorder) Clips() []Clip {
	return r.clips
}

func (r *Recorder) Render(w io.Writer, dark bool) error {
	fmt.Fprintln(w, shell.Heading("Ghi âm giọng nói", dark))
	if len(r.clips) == 0 {
		fmt.Fprintln(w, "Chưa có bản ghi nào.")
		return nil
	}
	for _, clip := range r.clips {
		fmt.Fprintf(w, "%s  %s  (%d bytes)\n",
			clip.ID, clip.RecordedAt.Format("2006-01-02 15:04:05"), len(clip.Data))
	}
	return nil
}
