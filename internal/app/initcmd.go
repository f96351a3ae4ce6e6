// Where: internal/app/initcmd.go
// What: The init command.
// Why: A working project skeleton beats a README walkthrough.
package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/cloudlet-dev/functions/internal/scaffold"
)

// scaffoldFiles maps template names to output file names.
var scaffoldFiles = []struct {
	template string
	output   string
}{
	{template: "main.go.tmpl", output: "main.go"},
	{template: "gomod.tmpl", output: "go.mod"},
	{template: "env.tmpl", output: ".env"},
}

func runInit(cli CLI, deps Dependencies, out io.Writer) int {
	render := deps.Renderer
	if render == nil {
		render = scaffold.Render
	}

	dir := resolvePath(deps, cli.Init.Dir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return exitWithError(out, err)
	}

	data := scaffold.ProjectData{
		Module: cli.Init.Module,
		Name:   cli.Init.Name,
	}

	for _, file := range scaffoldFiles {
		target := filepath.Join(dir, file.output)
		if _, err := os.Stat(target); err == nil {
			fmt.Fprintf(out, "refusing to overwrite %s\n", target)
			return 1
		}
		content, err := render(file.template, data)
		if err != nil {
			return exitWithError(out, err)
		}
		if err := os.WriteFile(target, []byte(content), 0o644); err != nil {
			return exitWithError(out, err)
		}
		fmt.Fprintf(out, "wrote %s\n", target)
	}
	return 0
}
