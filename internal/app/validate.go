// Where: internal/app/validate.go
// What: The validate command.
// Why: Catch malformed manifests before the deployment tool does.
package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/cloudlet-dev/functions/manifest"
)

func runValidate(cli CLI, deps Dependencies, out io.Writer) int {
	path := resolvePath(deps, cli.Validate.Path)
	content, err := os.ReadFile(path)
	if err != nil {
		return exitWithError(out, err)
	}

	if err := manifest.ValidateBytes(content); err != nil {
		fmt.Fprintf(out, "%s: %v\n", path, err)
		return 1
	}

	fmt.Fprintf(out, "%s: ok\n", path)
	return 0
}

func resolvePath(deps Dependencies, path string) string {
	if filepath.IsAbs(path) || deps.WorkDir == "" {
		return path
	}
	return filepath.Join(deps.WorkDir, path)
}
