// Where: internal/scaffold/scaffold_test.go
// What: Tests for scaffold template rendering.
package scaffold

import (
	"strings"
	"testing"
)

func TestRenderGoMod(t *testing.T) {
	out, err := Render("gomod.tmpl", ProjectData{Module: "example.com/demo"})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !strings.Contains(out, "module example.com/demo") {
		t.Errorf("output lacks module path:\n%s", out)
	}
}

func TestRenderMainUsesFunctionName(t *testing.T) {
	out, err := Render("main.go.tmpl", ProjectData{Module: "example.com/demo", Name: "hello-world"})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !strings.Contains(out, `"hello-world"`) {
		t.Errorf("output lacks function id:\n%s", out)
	}
	if !strings.Contains(out, "fn.OnRequest") {
		t.Errorf("output lacks declaration:\n%s", out)
	}
}

func TestRenderEnvDefaultsProject(t *testing.T) {
	out, err := Render("env.tmpl", ProjectData{Name: "hello"})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !strings.Contains(out, "GCLOUD_PROJECT=demo-project") {
		t.Errorf("output lacks default project:\n%s", out)
	}
}

func TestRenderUnknownTemplate(t *testing.T) {
	if _, err := Render("missing.tmpl", nil); err == nil {
		t.Error("expected error for unknown template")
	}
}
