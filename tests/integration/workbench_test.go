// End-to-end scenarios: feature modules driving the state container
// over real data directories.
package integration

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/workos/internal/feature/finance"
	"github.com/mesh-intelligence/workos/internal/feature/kanban"
	"github.com/mesh-intelligence/workos/internal/shell"
	"github.com/mesh-intelligence/workos/pkg/types"
)

func TestTaskSurvivesRestart(t *testing.T) {
	container, dataDir := newContainer(t)

	board := kanban.NewBoard(container)
	task, err := board.Add("Buy milk")
	require.NoError(t, err)
	assert.Equal(t, types.StatusTodo, task.Status)

	lines := readSlotLines(t, dataDir, types.TasksCollection)
	require.Len(t, lines, 1, "tasks slot must hold the committed task")
	require.NoError(t, container.Close())

	// A second process over the same data dir sees the task.
	fresh := openContainer(t, dataDir)
	tasks, err := fresh.Tasks()
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, task.ID, tasks[0].ID)
	assert.Equal(t, "Buy milk", tasks[0].Text)
	assert.Equal(t, types.StatusTodo, tasks[0].Status)
}

func TestExpenseTotalAfterDelete(t *testing.T) {
	container, dataDir := newContainer(t)
	ledger := finance.NewLedger(container)

	first, err := ledger.Add("Tiền nhà", "50000")
	require.NoError(t, err)
	_, err = ledger.Add("Ăn trưa", "30000")
	require.NoError(t, err)

	require.NoError(t, ledger.Delete(first.ID))

	total, err := ledger.Total()
	require.NoError(t, err)
	assert.Equal(t, 30000.0, total)

	// The deletion is durable, not just in memory.
	require.NoError(t, container.Close())
	fresh := openContainer(t, dataDir)
	freshTotal, err := finance.NewLedger(fresh).Total()
	require.NoError(t, err)
	assert.Equal(t, 30000.0, freshTotal)
}

func TestInvalidExpenseLeavesStateUntouched(t *testing.T) {
	container, dataDir := newContainer(t)
	ledger := finance.NewLedger(container)

	_, err := ledger.Add("Cà phê", "20000")
	require.NoError(t, err)
	before := readSlotLines(t, dataDir, types.ExpensesCollection)

	_, err = ledger.Add("bad", "-5")
	var ve *types.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "amount", ve.Field)

	expenses, err := container.Expenses()
	require.NoError(t, err)
	require.Len(t, expenses, 1, "rejected add must not change the collection")
	assert.Equal(t, before, readSlotLines(t, dataDir, types.ExpensesCollection))
}

func TestUnknownViewRendersNothing(t *testing.T) {
	container, _ := newContainer(t)

	router := shell.NewRouter(testLog)
	board := kanban.NewBoard(container)
	router.Register(board)

	_, err := board.Add("visible task")
	require.NoError(t, err)

	router.Select("pomodoro")
	var buf bytes.Buffer
	require.NoError(t, router.Render(&buf))
	assert.Zero(t, buf.Len(), "unknown view must render nothing")

	// The shell stays usable.
	router.Select(shell.ViewKanban)
	require.NoError(t, router.Render(&buf))
	assert.Contains(t, buf.String(), "visible task")
}

func TestCorruptSlotFallsBackToEmpty(t *testing.T) {
	container, dataDir := newContainer(t)
	board := kanban.NewBoard(container)

	_, err := board.Add("will be lost")
	require.NoError(t, err)
	require.NoError(t, container.Close())

	// Truncate a line to simulate a partial write by another process.
	slotPath := filepath.Join(dataDir, types.TasksCollection+".jsonl")
	require.NoError(t, os.WriteFile(slotPath, []byte(`{"id":1,"text":`), 0o644))

	fresh := openContainer(t, dataDir)
	tasks, err := fresh.Tasks()
	require.NoError(t, err)
	assert.Empty(t, tasks, "corrupt slot must hydrate as the empty collection")

	// The first commit repairs the slot.
	task, err := kanban.NewBoard(fresh).Add("recovered")
	require.NoError(t, err)
	lines := readSlotLines(t, dataDir, types.TasksCollection)
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], task.Text)
}

func TestCollectionsIsolatedOnDisk(t *testing.T) {
	container, dataDir := newContainer(t)

	_, err := kanban.NewBoard(container).Add("task only")
	require.NoError(t, err)

	for _, other := range []string{
		types.NotesCollection, types.ExpensesCollection,
		types.VaultCollection, types.SongsCollection,
	} {
		assert.Empty(t, readSlotLines(t, dataDir, other),
			"slot %s must stay empty", other)
	}
}
