// Package main provides the workos CLI: a local-first personal
// productivity workbench.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/mesh-intelligence/workos/pkg/types"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps an error to the CLI exit code: bad input is a user
// error, everything else is a system error.
func exitCode(err error) int {
	var ve *types.ValidationError
	if errors.As(err, &ve) {
		return exitUserError
	}
	return exitSysError
}
