package jukebox

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/workos/pkg/types"
)

type memStore struct {
	songs []types.Song
}

func (m *memStore) Songs() ([]types.Song, error) {
	out := make([]types.Song, len(m.songs))
	copy(out, m.songs)
	return out, nil
}

func (m *memStore) ReplaceSongs(songs []types.Song) error {
	if err := types.ValidateCollection(types.SongsCollection, songs); err != nil {
		return err
	}
	m.songs = songs
	return nil
}

func playlist() *memStore {
	return &memStore{songs: []types.Song{
		{ID: 1, Title: "one", SourceURL: "https://example.com/1.mp3"},
		{ID: 2, Title: "two", SourceURL: "https://example.com/2.mp3"},
		{ID: 3, Title: "three", SourceURL: "https://example.com/3.mp3"},
	}}
}

func TestAddAppends(t *testing.T) {
	store := &memStore{}
	p := NewPlayer(store)

	song, err := p.Add("Lo-fi Chill Day", "https://example.com/a.mp3")
	require.NoError(t, err)
	assert.Positive(t, song.ID)
	require.Len(t, store.songs, 1)

	_, err = p.Add("second", "https://example.com/b.mp3")
	require.NoError(t, err)
	assert.Equal(t, "second", store.songs[1].Title)
}

func TestAddRequiresTitleAndSource(t *testing.T) {
	p := NewPlayer(&memStore{})

	_, err := p.Add("", "https://example.com/a.mp3")
	var ve *types.ValidationError
	require.ErrorAs(t, err, &ve)

	_, err = p.Add("no source", "")
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "source_url", ve.Field)
}

func TestNextPrevWrap(t *testing.T) {
	p := NewPlayer(playlist())

	current, ok, err := p.Current()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "one", current.Title)

	require.NoError(t, p.Next())
	require.NoError(t, p.Next())
	require.NoError(t, p.Next())
	current, _, err = p.Current()
	require.NoError(t, err)
	assert.Equal(t, "one", current.Title)

	require.NoError(t, p.Prev())
	current, _, err = p.Current()
	require.NoError(t, err)
	assert.Equal(t, "three", current.Title)
}

func TestDeleteResetsCursorPastEnd(t *testing.T) {
	store := playlist()
	p := NewPlayer(store)

	require.NoError(t, p.Next())
	require.NoError(t, p.Next()) // cursor on "three"
	require.NoError(t, p.Delete(3))

	current, ok, err := p.Current()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "one", current.Title)
}

func TestEmptyPlaylist(t *testing.T) {
	p := NewPlayer(&memStore{})

	_, ok, err := p.Current()
	require.NoError(t, err)
	assert.False(t, ok)
	require.NoError(t, p.Next())
	require.NoError(t, p.Prev())
}

func TestCursorNotPersisted(t *testing.T) {
	store := playlist()
	p := NewPlayer(store)
	require.NoError(t, p.Next())

	// The slot representation carries only the songs; the cursor lives
	// in the player.
	raw, err := json.Marshal(store.songs)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "current")

	fresh := NewPlayer(store)
	current, ok, err := fresh.Current()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "one", current.Title)
}
