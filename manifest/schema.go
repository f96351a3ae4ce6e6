// Where: manifest/schema.go
// What: Schema validation of encoded manifests.
// Why: The embedded JSON schema is the single source of truth for the
//      wire contract shared with the deployment tool.
package manifest

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"sigs.k8s.io/yaml"
)

//go:embed schema/functions.schema.json
var schemaFS embed.FS

const schemaURL = "https://cloudlet.dev/schemas/functions.schema.json"

var (
	schemaOnce     sync.Once
	schemaErr      error
	compiledSchema *jsonschema.Schema
)

func loadSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		raw, err := schemaFS.ReadFile("schema/functions.schema.json")
		if err != nil {
			schemaErr = err
			return
		}
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(schemaURL, bytes.NewReader(raw)); err != nil {
			schemaErr = err
			return
		}
		compiledSchema, schemaErr = compiler.Compile(schemaURL)
	})
	return compiledSchema, schemaErr
}

// ValidateBytes checks an encoded functions.yaml (or JSON) document
// against the wire schema.
func ValidateBytes(content []byte) error {
	sch, err := loadSchema()
	if err != nil {
		return fmt.Errorf("load manifest schema: %w", err)
	}

	jsonData, err := yaml.YAMLToJSON(content)
	if err != nil {
		return fmt.Errorf("convert yaml to json: %w", err)
	}
	var document any
	if err := json.Unmarshal(jsonData, &document); err != nil {
		return fmt.Errorf("decode manifest: %w", err)
	}
	if err := sch.Validate(document); err != nil {
		return fmt.Errorf("manifest schema violation: %w", err)
	}
	return nil
}
