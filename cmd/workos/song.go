// Song commands drive the playlist.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/workos/internal/feature/jukebox"
)

var songCmd = &cobra.Command{
	Use:   "song",
	Short: "Manage the playlist",
}

var songAddCmd = &cobra.Command{
	Use:   "add <title> <url>",
	Short: "Append a song to the playlist",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		container, err := openContainer()
		if err != nil {
			return err
		}
		defer container.Close()

		song, err := jukebox.NewPlayer(container).Add(args[0], args[1])
		if err != nil {
			return err
		}
		if flagJSON {
			return printJSON(song)
		}
		fmt.Printf("Added song %d: %s\n", song.ID, song.Title)
		return nil
	},
}

var songDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Remove a song",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		container, err := openContainer()
		if err != nil {
			return err
		}
		defer container.Close()

		return jukebox.NewPlayer(container).Delete(id)
	},
}

var songListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the playlist",
	RunE: func(cmd *cobra.Command, args []string) error {
		container, err := openContainer()
		if err != nil {
			return err
		}
		defer container.Close()

		if flagJSON {
			all, err := container.Songs()
			if err != nil {
				return err
			}
			return printJSON(all)
		}
		return jukebox.NewPlayer(container).Render(os.Stdout, flagDark)
	},
}

func init() {
	songCmd.AddCommand(songAddCmd)
	songCmd.AddCommand(songDeleteCmd)
	songCmd.AddCommand(songListCmd)
}
