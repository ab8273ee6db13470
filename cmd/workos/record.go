// Record command runs one capture session.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/workos/internal/capture"
)

var recordSeconds int

var recordCmd = &cobra.Command{
	Use:   "record",
	Short: "Capture one microphone clip",
	Long: `Record captures one clip through the system microphone. Clips are
session-only; nothing is written to the data directory.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		recorder := capture.NewRecorder(capture.NewExecDevice(), log)

		clip, err := recorder.Record(cmd.Context(), time.Duration(recordSeconds)*time.Second)
		if err != nil {
			return err
		}
		if flagJSON {
			return printJSON(map[string]any{
				"id":    clip.ID.String(),
				"bytes": len(clip.Data),
			})
		}
		fmt.Printf("Recorded clip %s (%d bytes)\n", clip.ID, len(clip.Data))
		return recorder.Render(os.Stdout, flagDark)
	},
}

func init() {
	recordCmd.Flags().IntVar(&recordSeconds, "seconds", 5, "clip duration in seconds")
}
