// Where: manifest/stack.go
// What: The top-level manifest document and its supporting records.
// Why: This is the wire contract the external deployment tool parses.
package manifest

// SpecVersion is the manifest schema version emitted by this SDK.
const SpecVersion = "v1alpha1"

// RequiredAPI names a platform API an endpoint needs enabled before it
// can be deployed.
type RequiredAPI struct {
	API    string `json:"api" yaml:"api"`
	Reason string `json:"reason" yaml:"reason"`
}

// ParamTextInput prompts for a free-form value at deploy time.
type ParamTextInput struct {
	Example                string `json:"example,omitempty" yaml:"example,omitempty"`
	ValidationRegex        string `json:"validationRegex,omitempty" yaml:"validationRegex,omitempty"`
	ValidationErrorMessage string `json:"validationErrorMessage,omitempty" yaml:"validationErrorMessage,omitempty"`
}

// ParamSelectOption is one choice offered by a select input.
type ParamSelectOption struct {
	Value any    `json:"value" yaml:"value"`
	Label string `json:"label,omitempty" yaml:"label,omitempty"`
}

// ParamSelectInput prompts for one of a fixed list of options.
type ParamSelectInput struct {
	Options []ParamSelectOption `json:"options" yaml:"options"`
}

// ParamResourceInput prompts for an existing project resource.
type ParamResourceInput struct {
	Type string `json:"type" yaml:"type"`
}

// ParamInput is the tagged input hint of a param; at most one field is
// populated.
type ParamInput struct {
	Text     *ParamTextInput     `json:"text,omitempty" yaml:"text,omitempty"`
	Select   *ParamSelectInput   `json:"select,omitempty" yaml:"select,omitempty"`
	Resource *ParamResourceInput `json:"resource,omitempty" yaml:"resource,omitempty"`
}

// ParamSpec describes one deployment-time parameter in the manifest.
type ParamSpec struct {
	Name        string      `json:"name" yaml:"name"`
	Label       string      `json:"label,omitempty" yaml:"label,omitempty"`
	Description string      `json:"description,omitempty" yaml:"description,omitempty"`
	Immutable   bool        `json:"immutable,omitempty" yaml:"immutable,omitempty"`
	Type        string      `json:"type" yaml:"type"`
	Default     any         `json:"default,omitempty" yaml:"default,omitempty"`
	Input       *ParamInput `json:"input,omitempty" yaml:"input,omitempty"`
}

// GlobalOptions are process-wide defaults merged into endpoints that
// did not set an explicit value. Explicit call-site values always win.
type GlobalOptions struct {
	Region            []string
	AvailableMemoryMB int
	TimeoutSeconds    int
	MinInstances      *int
	MaxInstances      *int
	Labels            map[string]string
	ServiceAccount    string
}

// Stack is the assembled manifest document.
type Stack struct {
	SpecVersion  string
	Endpoints    map[string]*Endpoint
	RequiredAPIs []RequiredAPI
	Params       []ParamSpec
}
