// Shared helpers for workos integration tests.
package integration

import (
	"bufio"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/workos/internal/state"
	"github.com/mesh-intelligence/workos/pkg/types"
)

var testLog = zerolog.Nop()

// newContainer opens a container over a fresh temp data dir.
func newContainer(t *testing.T) (*state.Container, string) {
	t.Helper()
	dataDir := t.TempDir()
	return openContainer(t, dataDir), dataDir
}

// openContainer opens a container over an existing data dir.
func openContainer(t *testing.T, dataDir string) *state.Container {
	t.Helper()
	container, err := state.Open(types.Config{DataDir: dataDir}, testLog)
	require.NoError(t, err, "Open must succeed")
	t.Cleanup(func() { container.Close() })
	return container
}

// readSlotLines returns the non-empty lines of a slot file.
func readSlotLines(t *testing.T, dataDir, collection string) []string {
	t.Helper()
	f, err := os.Open(filepath.Join(dataDir, collection+".jsonl"))
	require.NoError(t, err)
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if scanner.Text() != "" {
			lines = append(lines, scanner.Text())
		}
	}
	require.NoError(t, scanner.Err())
	return lines
}
