// Package jukebox implements the playlist and its session-only cursor.
// Which song is current never survives the process; only the playlist
// itself is durable.
package jukebox

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/mesh-intelligence/workos/internal/shell"
	"github.com/mesh-intelligence/workos/pkg/types"
)

type Store interface {
	Songs() ([]types.Song, error)
	ReplaceSongs([]types.Song) error
}

type Player struct {
	store   Store
	current int
}

func NewPlayer(store Store) *Player {
	return &Player{store: store}
}

func (p *Player) ID() string { return shell.ViewMusic }

// Add appends a song to the playlist.
func (p *Player) Add(title, sourceURL string) (types.Song, error) {
	song := types.Song{ID: types.NextID(), Title: title, SourceURL: sourceURL}
	if err := song.Validate(); err != nil {
		return types.Song{}, err
	}
	songs, err := p.store.Songs()
	if err != nil {
		return types.Song{}, err
	}
	if err := p.store.ReplaceSongs(append(songs, song)); err != nil {
		return types.Song{}, err
	}
	return song, nil
}

// Delete removes a song; when the cursor falls off the end of the
// shortened playlist it resets to the first song.
func (p *Player) Delete(id int64) error {
	songs, err := p.store.Songs()
	if err != nil {
		return err
	}
	next := make([]types.Song, 0, len(songs))
	for _, s := range songs {
		if s.ID != id {
			next = append(next, s)
		}
	}
	if len(next) == len(songs) {
		return nil
	}
	if err := p.store.ReplaceSongs(next); err != nil {
		return err
	}
	if p.current >= len(next) {
		p.current = 0
	}
	return nil
}

// Current returns the song under the cursor, or false on an empty
// playlist.
func (p *Player) Current() (types.Song, bool, error) {
	songs, err := p.store.Songs()
	if err != nil {
		return types.Song{}, false, err
	}
	if len(songs) == 0 {
		return types.Song{}, false, nil
	}
	if p.current >= len(songs) {
		p.current = 0
	}
	return songs[p.current], true, nil
}

// Next advances the cursor, wrapping to the start.
func (p *Player) Next() error {
	songs, err := p.store.Songs()
	if err != nil {
		return err
	}
	if len(songs) == 0 {
		p.current = 0
		return nil
	}
	p.current = (p.current + 1) % len(songs)
	return nil
}

// Prev moves the cursor back, wrapping to the end.
func (p *Player) Prev() error {
	songs, err := p.store.Songs()
	if err != nil {
		return err
	}
	if len(songs) == 0 {
		p.current = 0
		return nil
	}
	p.current = (p.current - 1 + len(songs)) % len(songs)
	return nil
}

func (p *Player) Render(w io.Writer, dark bool) error {
	songs, err := p.store.Songs()
	if err != nil {
		return err
	}

	fmt.Fprintln(w, shell.Heading("Danh sách phát", dark))
	if len(songs) == 0 {
		fmt.Fprintln(w, "Chưa chọn bài")
		return nil
	}
	if p.current >= len(songs) {
		p.current = 0
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for i, s := range songs {
		marker := " "
		if i == p.current {
			marker = ">"
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\n", marker, i+1, s.Title, s.SourceURL)
	}
	return tw.Flush()
}
