// Where: internal/app/cli_test.go
// What: Tests for CLI command dispatch.
package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cloudlet-dev/functions/fn"
	"github.com/cloudlet-dev/functions/manifest"
	"github.com/cloudlet-dev/functions/options"
	"github.com/cloudlet-dev/functions/params"
	"github.com/cloudlet-dev/functions/registry"
)

func writeManifest(t *testing.T, dir string) string {
	t.Helper()
	reg := registry.New()
	if _, err := fn.OnRequest(reg, "hello", options.HTTPSOptions{}, nil); err != nil {
		t.Fatal(err)
	}
	if _, err := fn.OnSchedule(reg, "nightly", options.ScheduleOptions{Schedule: "every day 03:00"},
		func(ctx context.Context, e fn.ScheduledEvent) error { return nil }); err != nil {
		t.Fatal(err)
	}
	if _, err := params.NewString(reg, "BUCKET", params.Options{Default: "uploads"}); err != nil {
		t.Fatal(err)
	}
	stack, err := manifest.Assemble(reg.Snapshot(), reg.Params(), manifest.GlobalOptions{})
	if err != nil {
		t.Fatal(err)
	}
	out, err := stack.EncodeYAML()
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, "functions.yaml")
	if err := os.WriteFile(path, out, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunNoArgsPrintsUsage(t *testing.T) {
	var out bytes.Buffer
	if code := Run(nil, Dependencies{Out: &out}); code != 1 {
		t.Errorf("exit code = %d", code)
	}
	if !strings.Contains(out.String(), "usage:") {
		t.Errorf("output = %q", out.String())
	}
}

func TestRunVersion(t *testing.T) {
	var out bytes.Buffer
	if code := Run([]string{"version"}, Dependencies{Out: &out}); code != 0 {
		t.Errorf("exit code = %d, output = %s", code, out.String())
	}
	if strings.TrimSpace(out.String()) == "" {
		t.Error("version output empty")
	}
}

func TestValidateCommand(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir)

	var out bytes.Buffer
	code := Run([]string{"validate", path}, Dependencies{WorkDir: dir, Out: &out})
	if code != 0 {
		t.Fatalf("exit code = %d, output = %s", code, out.String())
	}
	if !strings.Contains(out.String(), "ok") {
		t.Errorf("output = %q", out.String())
	}
}

func TestValidateCommandRejectsBadManifest(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "functions.yaml")
	if err := os.WriteFile(path, []byte("specVersion: v2\nendpoints: {}\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	if code := Run([]string{"validate", path}, Dependencies{WorkDir: dir, Out: &out}); code != 1 {
		t.Errorf("exit code = %d for invalid manifest", code)
	}
}

func TestInspectCommand(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir)

	var out bytes.Buffer
	code := Run([]string{"inspect", path}, Dependencies{WorkDir: dir, Out: &out})
	if code != 0 {
		t.Fatalf("exit code = %d, output = %s", code, out.String())
	}
	text := out.String()
	for _, want := range []string{"specVersion: v1alpha1", "endpoints: 2", "hello", "https", "nightly", "schedule", "cloudscheduler.googleapis.com", "param: BUCKET (string) = uploads"} {
		if !strings.Contains(text, want) {
			t.Errorf("inspect output lacks %q:\n%s", want, text)
		}
	}
}

func TestInspectCommandResolvesParamsFromEnv(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir)
	t.Setenv("BUCKET", "prod-uploads")

	var out bytes.Buffer
	if code := Run([]string{"inspect", path}, Dependencies{WorkDir: dir, Out: &out}); code != 0 {
		t.Fatalf("exit code = %d, output = %s", code, out.String())
	}
	if !strings.Contains(out.String(), "param: BUCKET (string) = prod-uploads") {
		t.Errorf("inspect output lacks resolved param:\n%s", out.String())
	}
}

func TestInitCommandWritesScaffold(t *testing.T) {
	dir := t.TempDir()

	rendered := map[string]bool{}
	renderer := func(name string, data any) (string, error) {
		rendered[name] = true
		return "// " + name + "\n", nil
	}

	var out bytes.Buffer
	code := Run([]string{"init", dir, "--name", "greeter"}, Dependencies{Out: &out, Renderer: renderer})
	if code != 0 {
		t.Fatalf("exit code = %d, output = %s", code, out.String())
	}
	for _, file := range []string{"main.go", "go.mod", ".env"} {
		if _, err := os.Stat(filepath.Join(dir, file)); err != nil {
			t.Errorf("scaffold file %s missing: %v", file, err)
		}
	}
	if !rendered["main.go.tmpl"] || !rendered["gomod.tmpl"] {
		t.Errorf("templates rendered = %v", rendered)
	}
}

func TestInitCommandRefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "main.go"), []byte("package main\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	code := Run([]string{"init", dir}, Dependencies{Out: &out, Renderer: func(string, any) (string, error) {
		return "", nil
	}})
	if code != 1 {
		t.Errorf("exit code = %d, want refusal", code)
	}
	if !strings.Contains(out.String(), "refusing to overwrite") {
		t.Errorf("output = %q", out.String())
	}
}
