// Where: manifest/encode_test.go
// What: Tests for deterministic wire serialization.
package manifest

import (
	"bytes"
	"strings"
	"testing"
)

func assembleOrFatal(t *testing.T, entries []Entry) *Stack {
	t.Helper()
	stack, err := Assemble(entries, nil, GlobalOptions{})
	if err != nil {
		t.Fatalf("Assemble failed: %v", err)
	}
	return stack
}

func TestEncodeYAMLIsByteIdentical(t *testing.T) {
	entries := []Entry{
		{ID: "hello", Endpoint: httpsEndpoint("hello")},
		{ID: "nightly", Endpoint: scheduleEndpoint("nightly", "every day 03:00")},
		{ID: "on-doc", Endpoint: eventEndpoint("on-doc", "google.cloud.firestore.document.v1.written")},
	}

	first, err := assembleOrFatal(t, entries).EncodeYAML()
	if err != nil {
		t.Fatalf("EncodeYAML failed: %v", err)
	}
	second, err := assembleOrFatal(t, entries).EncodeYAML()
	if err != nil {
		t.Fatalf("EncodeYAML failed: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Errorf("equal stacks serialized differently:\n%s\n---\n%s", first, second)
	}
}

func TestEncodeYAMLEmitsOneTriggerKey(t *testing.T) {
	out, err := assembleOrFatal(t, []Entry{{ID: "hello", Endpoint: httpsEndpoint("hello")}}).EncodeYAML()
	if err != nil {
		t.Fatalf("EncodeYAML failed: %v", err)
	}
	text := string(out)
	count := strings.Count(text, "Trigger:")
	if count != 1 {
		t.Errorf("found %d trigger keys in output:\n%s", count, text)
	}
	if !strings.Contains(text, "httpsTrigger:") {
		t.Errorf("httpsTrigger missing:\n%s", text)
	}
	if !strings.Contains(text, "specVersion: v1alpha1") {
		t.Errorf("specVersion missing:\n%s", text)
	}
}

func TestEncodeCPUForms(t *testing.T) {
	cases := []struct {
		cpu  string
		want string
	}{
		{"2", "cpu: 2\n"},
		{"0.5", "cpu: 0.5\n"},
		{CPUGen1, "cpu: gcf_gen1\n"},
	}
	for _, tc := range cases {
		ep := httpsEndpoint("fn")
		ep.CPU = tc.cpu
		out, err := assembleOrFatal(t, []Entry{{ID: "fn", Endpoint: ep}}).EncodeYAML()
		if err != nil {
			t.Fatalf("EncodeYAML(%q) failed: %v", tc.cpu, err)
		}
		if !strings.Contains(string(out), tc.want) {
			t.Errorf("cpu %q: output lacks %q:\n%s", tc.cpu, tc.want, out)
		}
	}
}

func TestEncodeRuntimeModeOnlyWhenAsync(t *testing.T) {
	sync := httpsEndpoint("sync-fn")
	sync.RuntimeMode = RuntimeSync
	out, err := assembleOrFatal(t, []Entry{{ID: "sync-fn", Endpoint: sync}}).EncodeYAML()
	if err != nil {
		t.Fatalf("EncodeYAML failed: %v", err)
	}
	if strings.Contains(string(out), "runtimeMode") {
		t.Errorf("sync endpoint should not serialize runtimeMode:\n%s", out)
	}

	async := httpsEndpoint("async-fn")
	async.RuntimeMode = RuntimeAsync
	out, err = assembleOrFatal(t, []Entry{{ID: "async-fn", Endpoint: async}}).EncodeYAML()
	if err != nil {
		t.Fatalf("EncodeYAML failed: %v", err)
	}
	if !strings.Contains(string(out), "runtimeMode: async") {
		t.Errorf("async endpoint missing runtimeMode:\n%s", out)
	}
}

func TestEncodeEmptyStackKeepsCollections(t *testing.T) {
	out, err := assembleOrFatal(t, nil).EncodeYAML()
	if err != nil {
		t.Fatalf("EncodeYAML failed: %v", err)
	}
	text := string(out)
	for _, key := range []string{"endpoints:", "params: []", "requiredAPIs: []", "specVersion: v1alpha1"} {
		if !strings.Contains(text, key) {
			t.Errorf("output lacks %q:\n%s", key, text)
		}
	}
}

func TestEncodeJSONMatchesYAMLContent(t *testing.T) {
	stack := assembleOrFatal(t, []Entry{{ID: "hello", Endpoint: httpsEndpoint("hello")}})
	out, err := stack.EncodeJSON()
	if err != nil {
		t.Fatalf("EncodeJSON failed: %v", err)
	}
	for _, want := range []string{`"specVersion": "v1alpha1"`, `"httpsTrigger"`, `"platform": "gcfv2"`} {
		if !strings.Contains(string(out), want) {
			t.Errorf("JSON output lacks %s:\n%s", want, out)
		}
	}
}
