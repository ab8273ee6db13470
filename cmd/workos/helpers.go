// Shared helpers for workos CLI commands.
package main

import (
	"encoding/json"
	"fmt"

	"github.com/mesh-intelligence/workos/internal/state"
	"github.com/mesh-intelligence/workos/pkg/types"
)

// openContainer resolves the data directory and opens the state
// container. The caller must defer container.Close().
func openContainer() (*state.Container, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	container, err := state.Open(types.Config{DataDir: dataDir}, log)
	if err != nil {
		return nil, fmt.Errorf("open container: %w", err)
	}
	return container, nil
}

// printJSON writes a value as indented JSON to stdout.
func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
