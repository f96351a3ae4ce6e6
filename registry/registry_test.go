// Where: registry/registry_test.go
// What: Tests for endpoint and param registration.
package registry

import (
	"errors"
	"testing"

	"github.com/cloudlet-dev/functions/manifest"
	"github.com/cloudlet-dev/functions/options"
)

func httpsEndpoint(t *testing.T, entryPoint string) *manifest.Endpoint {
	t.Helper()
	ep := manifest.NewEndpoint(entryPoint)
	if err := ep.AttachTrigger(&manifest.HTTPSTrigger{}); err != nil {
		t.Fatal(err)
	}
	return ep
}

func TestRegisterStoresClone(t *testing.T) {
	reg := New()
	original := httpsEndpoint(t, "fn")

	stored, err := reg.Register("fn", original)
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if stored == original {
		t.Fatal("registry stored the caller's pointer")
	}

	// Mutating the original must not leak into the registry.
	original.Region = []string{"mars-central1"}
	snapshot := reg.Snapshot()
	if len(snapshot) != 1 {
		t.Fatalf("snapshot length = %d", len(snapshot))
	}
	if snapshot[0].Endpoint.Region != nil {
		t.Errorf("registered endpoint saw caller mutation: %v", snapshot[0].Endpoint.Region)
	}
}

func TestRegisterReturnsIndependentCopy(t *testing.T) {
	reg := New()
	stored, err := reg.Register("fn", httpsEndpoint(t, "fn"))
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	// Mutating the returned endpoint must not leak into the registry.
	stored.Region = []string{"mutated-region"}
	stored.Trigger().(*manifest.HTTPSTrigger).Invoker = []string{"public"}

	snapshot := reg.Snapshot()
	if len(snapshot) != 1 {
		t.Fatalf("snapshot length = %d", len(snapshot))
	}
	if snapshot[0].Endpoint.Region != nil {
		t.Errorf("registry state changed after declaration: snapshot region = %v", snapshot[0].Endpoint.Region)
	}
	if invoker := snapshot[0].Endpoint.Trigger().(*manifest.HTTPSTrigger).Invoker; invoker != nil {
		t.Errorf("registry state changed after declaration: snapshot invoker = %v", invoker)
	}
}

func TestRegisterDuplicateLeavesRegistryUntouched(t *testing.T) {
	reg := New()
	if _, err := reg.Register("fn", httpsEndpoint(t, "fn")); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	_, err := reg.Register("fn", httpsEndpoint(t, "other"))
	var dup *DuplicateEndpointError
	if !errors.As(err, &dup) {
		t.Fatalf("err = %v, want DuplicateEndpointError", err)
	}
	if dup.ID != "fn" {
		t.Errorf("duplicate id = %q", dup.ID)
	}

	snapshot := reg.Snapshot()
	if len(snapshot) != 1 {
		t.Fatalf("snapshot length = %d after failed register", len(snapshot))
	}
	if snapshot[0].Endpoint.EntryPoint != "fn" {
		t.Errorf("registry content changed: %q", snapshot[0].Endpoint.EntryPoint)
	}
}

func TestRegisterValidatesID(t *testing.T) {
	reg := New()
	for _, id := range []string{"", "has space", "emoji🔥", "dot.dot"} {
		_, err := reg.Register(id, httpsEndpoint(t, "fn"))
		var cfg *options.ConfigurationError
		if !errors.As(err, &cfg) {
			t.Errorf("id %q: err = %v, want ConfigurationError", id, err)
		}
	}
	if _, err := reg.Register("ok_id-1", httpsEndpoint(t, "fn")); err != nil {
		t.Errorf("valid id rejected: %v", err)
	}
}

func TestSnapshotPreservesDeclarationOrder(t *testing.T) {
	reg := New()
	ids := []string{"zeta", "alpha", "mid"}
	for _, id := range ids {
		if _, err := reg.Register(id, httpsEndpoint(t, id)); err != nil {
			t.Fatalf("Register(%s) failed: %v", id, err)
		}
	}

	snapshot := reg.Snapshot()
	for i, id := range ids {
		if snapshot[i].ID != id {
			t.Errorf("snapshot[%d] = %q, want %q", i, snapshot[i].ID, id)
		}
	}
}

func TestSnapshotsAreIndependent(t *testing.T) {
	reg := New()
	if _, err := reg.Register("fn", httpsEndpoint(t, "fn")); err != nil {
		t.Fatal(err)
	}

	first := reg.Snapshot()
	first[0].Endpoint.Region = []string{"mutated"}

	second := reg.Snapshot()
	if second[0].Endpoint.Region != nil {
		t.Errorf("snapshots share endpoint state: %v", second[0].Endpoint.Region)
	}
}

func TestRegisterParamDuplicate(t *testing.T) {
	reg := New()
	spec := manifest.ParamSpec{Name: "BUCKET", Type: "string"}
	if err := reg.RegisterParam(spec); err != nil {
		t.Fatalf("RegisterParam failed: %v", err)
	}

	err := reg.RegisterParam(spec)
	var dup *DuplicateParamError
	if !errors.As(err, &dup) || dup.Name != "BUCKET" {
		t.Fatalf("err = %v, want DuplicateParamError on BUCKET", err)
	}

	if params := reg.Params(); len(params) != 1 {
		t.Errorf("params length = %d", len(params))
	}
}
