// Where: internal/app/app.go
// What: CLI entrypoint logic.
// Why: Provide a testable command dispatcher.
package app

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/cloudlet-dev/functions/internal/version"
)

// Dependencies holds all injected dependencies required for CLI command
// execution. This structure enables dependency injection for testing.
type Dependencies struct {
	WorkDir string
	Out     io.Writer
	// Renderer renders a named scaffold template with the given data.
	Renderer func(name string, data any) (string, error)
}

// CLI defines the command-line interface structure parsed by Kong.
type CLI struct {
	EnvFile string `name:"env-file" help:"Path to .env file"`

	Validate ValidateCmd `cmd:"" help:"Validate a functions.yaml manifest"`
	Inspect  InspectCmd  `cmd:"" help:"Summarize the endpoints of a manifest"`
	Init     InitCmd     `cmd:"" help:"Scaffold a new functions project"`
	Version  VersionCmd  `cmd:"" help:"Show version information"`
}

type VersionCmd struct{}

type ValidateCmd struct {
	Path string `arg:"" default:"functions.yaml" help:"Manifest path"`
}

type InspectCmd struct {
	Path string `arg:"" default:"functions.yaml" help:"Manifest path"`
	JSON bool   `help:"Emit the summary as JSON"`
}

type InitCmd struct {
	Dir    string `arg:"" default:"." help:"Target directory"`
	Module string `short:"m" default:"example.com/functions" help:"Module path of the generated project"`
	Name   string `short:"n" default:"hello" help:"Name of the first function"`
}

// Run is the main entry point for CLI command execution. It parses the
// arguments and dispatches to the matching handler. Returns 0 on
// success, 1 on error.
func Run(args []string, deps Dependencies) int {
	out := deps.Out
	if out == nil {
		out = os.Stdout
	}

	if len(args) == 0 {
		fmt.Fprintln(out, "usage: functionsctl <validate|inspect|init|version>")
		return 1
	}

	cli := CLI{}
	parser, err := kong.New(&cli)
	if err != nil {
		return exitWithError(out, err)
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		return exitWithError(out, err)
	}

	// Load environment file if provided or if .env exists in the
	// working directory.
	if cli.EnvFile != "" {
		if err := godotenv.Load(cli.EnvFile); err != nil {
			fmt.Fprintf(out, "Warning: failed to load env file %s: %v\n", cli.EnvFile, err)
		}
	} else if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			fmt.Fprintf(out, "Warning: failed to load .env: %v\n", err)
		}
	}

	command := ctx.Command()
	if exitCode, handled := dispatchCommand(command, cli, deps, out); handled {
		return exitCode
	}

	fmt.Fprintln(out, "unknown command")
	return 1
}

type commandHandler func(CLI, Dependencies, io.Writer) int

type prefixHandler struct {
	prefix  string
	handler commandHandler
}

func dispatchCommand(command string, cli CLI, deps Dependencies, out io.Writer) (int, bool) {
	exactHandlers := map[string]commandHandler{
		"validate":        runValidate,
		"validate <path>": runValidate,
		"inspect":         runInspect,
		"inspect <path>":  runInspect,
		"init":            runInit,
		"init <dir>":      runInit,
		"version":         func(_ CLI, _ Dependencies, out io.Writer) int { return runVersion(out) },
	}

	if handler, ok := exactHandlers[command]; ok {
		return handler(cli, deps, out), true
	}

	prefixHandlers := []prefixHandler{
		{prefix: "validate", handler: runValidate},
		{prefix: "inspect", handler: runInspect},
		{prefix: "init", handler: runInit},
	}

	for _, entry := range prefixHandlers {
		if strings.HasPrefix(command, entry.prefix) {
			return entry.handler(cli, deps, out), true
		}
	}

	return 1, false
}

// runVersion prints the version information of the CLI.
func runVersion(out io.Writer) int {
	fmt.Fprintln(out, version.GetVersion())
	return 0
}

func exitWithError(out io.Writer, err error) int {
	fmt.Fprintln(out, err)
	return 1
}
