// Where: cmd/functionsctl/cli.go
// What: CLI dependency wiring helpers.
// Why: Centralize construction for testability.
package main

import (
	"os"

	"github.com/cloudlet-dev/functions/internal/app"
	"github.com/cloudlet-dev/functions/internal/scaffold"
)

var getwd = os.Getwd

// buildDependencies constructs all runtime dependencies required by the
// CLI.
func buildDependencies() (app.Dependencies, error) {
	workDir, err := getwd()
	if err != nil {
		return app.Dependencies{}, err
	}

	return app.Dependencies{
		WorkDir:  workDir,
		Out:      os.Stdout,
		Renderer: scaffold.Render,
	}, nil
}
