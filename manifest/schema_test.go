// Where: manifest/schema_test.go
// What: Tests for wire schema validation.
package manifest

import (
	"strings"
	"testing"
)

func TestValidateBytesAcceptsEncodedStack(t *testing.T) {
	stack := assembleOrFatal(t, []Entry{
		{ID: "hello", Endpoint: httpsEndpoint("hello")},
		{ID: "nightly", Endpoint: scheduleEndpoint("nightly", "every day 03:00")},
	})
	out, err := stack.EncodeYAML()
	if err != nil {
		t.Fatalf("EncodeYAML failed: %v", err)
	}
	if err := ValidateBytes(out); err != nil {
		t.Errorf("encoded stack rejected by schema: %v", err)
	}
}

func TestValidateBytesRejectsTriggerlessEndpoint(t *testing.T) {
	doc := strings.Join([]string{
		"endpoints:",
		"  broken:",
		"    entryPoint: broken",
		"    platform: gcfv2",
		"    region:",
		"      - us-central1",
		"params: []",
		"requiredAPIs: []",
		"specVersion: v1alpha1",
	}, "\n")

	if err := ValidateBytes([]byte(doc)); err == nil {
		t.Error("endpoint without trigger passed schema validation")
	}
}

func TestValidateBytesRejectsUnknownSpecVersion(t *testing.T) {
	doc := strings.Join([]string{
		"endpoints: {}",
		"params: []",
		"requiredAPIs: []",
		"specVersion: v2",
	}, "\n")

	if err := ValidateBytes([]byte(doc)); err == nil {
		t.Error("unknown specVersion passed schema validation")
	}
}

func TestValidateBytesRejectsMalformedYAML(t *testing.T) {
	if err := ValidateBytes([]byte("endpoints: [unclosed")); err == nil {
		t.Error("malformed yaml passed validation")
	}
}
