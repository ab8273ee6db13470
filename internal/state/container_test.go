package state

import (
	"errors"
	"os"
	"testing"

	"github.com/rs/zerolog"

	"github.com/mesh-intelligence/workos/internal/slot"
	"github.com/mesh-intelligence/workos/pkg/types"
)

var testLog = zerolog.Nop()

func openTestContainer(t *testing.T, dir string) *Container {
	t.Helper()
	c, err := Open(types.Config{DataDir: dir}, testLog)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { c.Close() })
	return c
}

func TestOpenHydratesEmptyCollections(t *testing.T) {
	c := openTestContainer(t, t.TempDir())

	tasks, err := c.Tasks()
	if err != nil {
		t.Fatalf("Tasks failed: %v", err)
	}
	if len(tasks) != 0 {
		t.Errorf("expected empty tasks, got %d", len(tasks))
	}

	notes, err := c.Notes()
	if err != nil {
		t.Fatalf("Notes failed: %v", err)
	}
	if len(notes) != 0 {
		t.Errorf("expected empty notes, got %d", len(notes))
	}
}

func TestReplacePersistsAcrossContainers(t *testing.T) {
	dir := t.TempDir()

	c := openTestContainer(t, dir)
	want := []types.Task{{ID: 1, Text: "Buy milk", Status: types.StatusTodo}}
	if err := c.ReplaceTasks(want); err != nil {
		t.Fatalf("ReplaceTasks failed: %v", err)
	}
	if err := c.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	// A fresh container over the same data dir hydrates the last
	// committed collection.
	fresh := openTestContainer(t, dir)
	got, err := fresh.Tasks()
	if err != nil {
		t.Fatalf("Tasks failed: %v", err)
	}
	if len(got) != 1 || got[0] != want[0] {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestReplaceDuplicateIDRejected(t *testing.T) {
	dir := t.TempDir()
	c := openTestContainer(t, dir)

	good := []types.Task{{ID: 1, Text: "keep", Status: types.StatusTodo}}
	if err := c.ReplaceTasks(good); err != nil {
		t.Fatalf("ReplaceTasks failed: %v", err)
	}
	before, err := os.ReadFile(slot.Path(dir, types.TasksCollection))
	if err != nil {
		t.Fatalf("reading slot: %v", err)
	}

	dup := []types.Task{
		{ID: 2, Text: "a", Status: types.StatusTodo},
		{ID: 2, Text: "b", Status: types.StatusTodo},
	}
	err = c.ReplaceTasks(dup)
	var ve *types.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}

	// Memory and slot stay at the last-good collection.
	got, err := c.Tasks()
	if err != nil {
		t.Fatalf("Tasks failed: %v", err)
	}
	if len(got) != 1 || got[0].Text != "keep" {
		t.Fatalf("collection changed after rejected replace: %+v", got)
	}
	after, err := os.ReadFile(slot.Path(dir, types.TasksCollection))
	if err != nil {
		t.Fatalf("reading slot: %v", err)
	}
	if string(before) != string(after) {
		t.Error("slot changed after rejected replace")
	}
}

func TestReplaceNegativeAmountRejected(t *testing.T) {
	dir := t.TempDir()
	c := openTestContainer(t, dir)

	err := c.ReplaceExpenses([]types.Expense{{ID: 1, Description: "bad", Amount: -5}})
	var ve *types.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if ve.Field != "amount" {
		t.Errorf("expected amount field, got %q", ve.Field)
	}

	got, err := c.Expenses()
	if err != nil {
		t.Fatalf("Expenses failed: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected unchanged empty collection, got %+v", got)
	}
}

func TestCollectionsAreIsolated(t *testing.T) {
	dir := t.TempDir()
	c := openTestContainer(t, dir)

	if err := c.ReplaceNotes([]types.Note{{ID: 1, Title: "note"}}); err != nil {
		t.Fatalf("ReplaceNotes failed: %v", err)
	}

	otherSlots := []string{
		types.NotesCollection, types.ExpensesCollection,
		types.VaultCollection, types.SongsCollection,
	}
	before := map[string]string{}
	for _, key := range otherSlots {
		b, err := os.ReadFile(slot.Path(dir, key))
		if err != nil {
			t.Fatalf("reading slot %s: %v", key, err)
		}
		before[key] = string(b)
	}

	if err := c.ReplaceTasks([]types.Task{{ID: 2, Text: "task", Status: types.StatusDoing}}); err != nil {
		t.Fatalf("ReplaceTasks failed: %v", err)
	}

	for _, key := range otherSlots {
		b, err := os.ReadFile(slot.Path(dir, key))
		if err != nil {
			t.Fatalf("reading slot %s: %v", key, err)
		}
		if string(b) != before[key] {
			t.Errorf("replacing tasks altered slot %s", key)
		}
	}
	notes, err := c.Notes()
	if err != nil {
		t.Fatalf("Notes failed: %v", err)
	}
	if len(notes) != 1 || notes[0].Title != "note" {
		t.Errorf("replacing tasks altered notes in memory: %+v", notes)
	}
}

func TestReplaceIdempotentWrite(t *testing.T) {
	dir := t.TempDir()
	c := openTestContainer(t, dir)

	songs := []types.Song{{ID: 1, Title: "Lo-fi Chill Day", SourceURL: "https://example.com/a.mp3"}}
	if err := c.ReplaceSongs(songs); err != nil {
		t.Fatalf("first ReplaceSongs failed: %v", err)
	}
	first, _ := os.ReadFile(slot.Path(dir, types.SongsCollection))

	if err := c.ReplaceSongs(songs); err != nil {
		t.Fatalf("second ReplaceSongs failed: %v", err)
	}
	second, _ := os.ReadFile(slot.Path(dir, types.SongsCollection))

	if string(first) != string(second) {
		t.Error("repeated replace changed slot content")
	}
}

func TestSaveFailureKeepsMemoryAndReconciles(t *testing.T) {
	dir := t.TempDir()
	c := openTestContainer(t, dir)

	// A directory squatting on the slot path makes the persist step's
	// rename fail after the in-memory commit has already happened.
	path := slot.Path(dir, types.TasksCollection)
	if err := os.Remove(path); err != nil {
		t.Fatal(err)
	}
	if err := os.Mkdir(path, 0o755); err != nil {
		t.Fatal(err)
	}

	want := []types.Task{{ID: 1, Text: "unsaved", Status: types.StatusTodo}}
	err := c.ReplaceTasks(want)
	var se *types.StorageError
	if !errors.As(err, &se) {
		t.Fatalf("expected StorageError, got %v", err)
	}
	if se.Slot != types.TasksCollection {
		t.Errorf("expected slot %q, got %q", types.TasksCollection, se.Slot)
	}

	// The working set holds the new collection even though the save
	// never landed.
	got, err := c.Tasks()
	if err != nil {
		t.Fatalf("Tasks failed: %v", err)
	}
	if len(got) != 1 || got[0] != want[0] {
		t.Fatalf("memory lost the committed collection: %+v", got)
	}

	// Once the slot path is writable again, the next replace persists
	// the full then-current collection.
	if err := os.Remove(path); err != nil {
		t.Fatal(err)
	}
	next := append(want, types.Task{ID: 2, Text: "saved", Status: types.StatusDoing})
	if err := c.ReplaceTasks(next); err != nil {
		t.Fatalf("ReplaceTasks after reconcile failed: %v", err)
	}
	out := slot.Load[types.Task](dir, types.TasksCollection, testLog)
	if len(out) != 2 || out[0] != next[0] || out[1] != next[1] {
		t.Fatalf("slot not reconciled to the full collection: %+v", out)
	}
}

func TestOrderPreserved(t *testing.T) {
	dir := t.TempDir()
	c := openTestContainer(t, dir)

	// Vault items are prepended by the module, so the collection reads
	// newest first; the container must keep whatever order it is given.
	items := []types.VaultItem{
		{ID: 3, Kind: types.VaultKindText, Title: "newest", CreatedAt: "2026-08-28"},
		{ID: 2, Kind: types.VaultKindLink, Title: "middle", CreatedAt: "2026-08-27"},
		{ID: 1, Kind: types.VaultKindCode, Title: "oldest", CreatedAt: "2026-08-26"},
	}
	if err := c.ReplaceVaultItems(items); err != nil {
		t.Fatalf("ReplaceVaultItems failed: %v", err)
	}
	if err := c.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	fresh := openTestContainer(t, dir)
	got, err := fresh.VaultItems()
	if err != nil {
		t.Fatalf("VaultItems failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 items, got %d", len(got))
	}
	for i := range items {
		if got[i] != items[i] {
			t.Errorf("item %d: expected %+v, got %+v", i, items[i], got[i])
		}
	}
}

func TestClosedContainer(t *testing.T) {
	dir := t.TempDir()
	c := openTestContainer(t, dir)

	if err := c.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	// Idempotent.
	if err := c.Close(); err != nil {
		t.Fatalf("second Close failed: %v", err)
	}

	if _, err := c.Tasks(); !errors.Is(err, types.ErrContainerClosed) {
		t.Errorf("expected ErrContainerClosed from Tasks, got %v", err)
	}
	err := c.ReplaceTasks([]types.Task{{ID: 1, Text: "x", Status: types.StatusTodo}})
	if !errors.Is(err, types.ErrContainerClosed) {
		t.Errorf("expected ErrContainerClosed from ReplaceTasks, got %v", err)
	}

	// The rejected replace must not have touched the slot.
	b, err := os.ReadFile(slot.Path(dir, types.TasksCollection))
	if err != nil {
		t.Fatalf("reading slot: %v", err)
	}
	if len(b) != 0 {
		t.Errorf("slot written after Close: %q", b)
	}
}

func TestHydrationSkipsDuplicateIDsOnDisk(t *testing.T) {
	dir := t.TempDir()

	// A slot written by an older process with colliding ids: the first
	// record wins, the rest are skipped, and the open still succeeds.
	content := `{"id":5,"text":"first","status":"todo"}` + "\n" +
		`{"id":5,"text":"second","status":"done"}` + "\n"
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(slot.Path(dir, types.TasksCollection), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	c := openTestContainer(t, dir)
	got, err := c.Tasks()
	if err != nil {
		t.Fatalf("Tasks failed: %v", err)
	}
	if len(got) != 1 || got[0].Text != "first" {
		t.Fatalf("expected only the first duplicate, got %+v", got)
	}
}

func TestOpenRejectsEmptyDataDir(t *testing.T) {
	if _, err := Open(types.Config{}, testLog); !errors.Is(err, types.ErrDataDirEmpty) {
		t.Fatalf("expected ErrDataDirEmpty, got %v", err)
	}
}
