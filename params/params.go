// Where: params/params.go
// What: Deployment-time parameters and their manifest declaration.
// Why: Parameters bind at deploy time; locally they resolve from the
//      environment so handlers can run under the dev server.
package params

import (
	"os"
	"regexp"
	"strconv"

	"github.com/cloudlet-dev/functions/manifest"
	"github.com/cloudlet-dev/functions/options"
	"github.com/cloudlet-dev/functions/registry"
)

var namePattern = regexp.MustCompile(`^[A-Z0-9_]+$`)

// Options carries the declaration metadata shared by every param type.
type Options struct {
	Label       string
	Description string
	Immutable   bool
	Default     any
	Input       *manifest.ParamInput
}

// Param is the common behaviour of a declared parameter. Params are
// valid Expressions: referencing one in an option yields a CEL
// placeholder the deployment tool substitutes.
type Param struct {
	name string
	typ  string
	def  any
}

// Name returns the parameter's environment variable name.
func (p *Param) Name() string { return p.name }

// Expr returns the bare CEL reference, e.g. "params.MY_VAR".
func (p *Param) Expr() string { return "params." + p.name }

// String returns the delimited placeholder form used in option values.
func (p *Param) String() string { return "{{ " + p.Expr() + " }}" }

func declare(reg *registry.Registry, name, typ string, opts Options) (*Param, error) {
	if !namePattern.MatchString(name) {
		return nil, &options.ConfigurationError{
			Field:  "name",
			Reason: "param names must match [A-Z0-9_]+",
		}
	}
	if reg == nil {
		reg = registry.Default
	}
	spec := manifest.ParamSpec{
		Name:        name,
		Label:       opts.Label,
		Description: opts.Description,
		Immutable:   opts.Immutable,
		Type:        typ,
		Default:     opts.Default,
		Input:       opts.Input,
	}
	if err := reg.RegisterParam(spec); err != nil {
		return nil, err
	}
	return &Param{name: name, typ: typ, def: opts.Default}, nil
}

// StringParam is a string-typed parameter.
type StringParam struct{ Param }

// NewString declares a string parameter in the given registry; a nil
// registry means the default one.
func NewString(reg *registry.Registry, name string, opts Options) (*StringParam, error) {
	p, err := declare(reg, name, "string", opts)
	if err != nil {
		return nil, err
	}
	return &StringParam{Param: *p}, nil
}

// Value resolves the parameter from the environment, falling back to
// the declared default.
func (p *StringParam) Value() string {
	if v, ok := os.LookupEnv(p.name); ok {
		return v
	}
	if s, ok := p.def.(string); ok {
		return s
	}
	return ""
}

// IntParam is an integer-typed parameter.
type IntParam struct{ Param }

// NewInt declares an int parameter in the given registry; a nil
// registry means the default one.
func NewInt(reg *registry.Registry, name string, opts Options) (*IntParam, error) {
	p, err := declare(reg, name, "int", opts)
	if err != nil {
		return nil, err
	}
	return &IntParam{Param: *p}, nil
}

// Value resolves the parameter from the environment, falling back to
// the declared default.
func (p *IntParam) Value() (int, error) {
	if v, ok := os.LookupEnv(p.name); ok {
		return strconv.Atoi(v)
	}
	switch d := p.def.(type) {
	case int:
		return d, nil
	case float64:
		return int(d), nil
	}
	return 0, nil
}

// FloatParam is a float-typed parameter.
type FloatParam struct{ Param }

// NewFloat declares a float parameter in the given registry; a nil
// registry means the default one.
func NewFloat(reg *registry.Registry, name string, opts Options) (*FloatParam, error) {
	p, err := declare(reg, name, "float", opts)
	if err != nil {
		return nil, err
	}
	return &FloatParam{Param: *p}, nil
}

// Value resolves the parameter from the environment, falling back to
// the declared default.
func (p *FloatParam) Value() (float64, error) {
	if v, ok := os.LookupEnv(p.name); ok {
		return strconv.ParseFloat(v, 64)
	}
	if d, ok := p.def.(float64); ok {
		return d, nil
	}
	return 0, nil
}

// BoolParam is a boolean-typed parameter.
type BoolParam struct{ Param }

// NewBool declares a bool parameter in the given registry; a nil
// registry means the default one.
func NewBool(reg *registry.Registry, name string, opts Options) (*BoolParam, error) {
	p, err := declare(reg, name, "boolean", opts)
	if err != nil {
		return nil, err
	}
	return &BoolParam{Param: *p}, nil
}

// Value resolves the parameter from the environment, falling back to
// the declared default. Accepts the usual truthy spellings.
func (p *BoolParam) Value() (bool, error) {
	if v, ok := os.LookupEnv(p.name); ok {
		return strconv.ParseBool(v)
	}
	if d, ok := p.def.(bool); ok {
		return d, nil
	}
	return false, nil
}

// SecretParam is a reference to a secret manager secret. Its value is
// never written to the manifest.
type SecretParam struct{ Param }

// NewSecret declares a secret parameter in the given registry; a nil
// registry means the default one. Secrets never carry defaults.
func NewSecret(reg *registry.Registry, name string, opts Options) (*SecretParam, error) {
	opts.Default = nil
	p, err := declare(reg, name, "secret", opts)
	if err != nil {
		return nil, err
	}
	return &SecretParam{Param: *p}, nil
}

// Value resolves the secret from the environment, where the runtime
// mounts it.
func (p *SecretParam) Value() string {
	return os.Getenv(p.name)
}
