// Where: options/https.go
// What: Options for HTTPS and callable function declarations.
// Why: Keep invoker access control validation at declaration time.
package options

import "github.com/cloudlet-dev/functions/manifest"

// CORSOptions configures cross-origin handling for HTTP functions.
// They apply to the local serving layer only and are never serialized
// into the manifest.
type CORSOptions struct {
	Origins []string
	Methods []string
}

// HTTPSOptions configures a function invoked by arbitrary HTTPS
// requests.
type HTTPSOptions struct {
	RuntimeOptions

	// Invoker restricts who may call the function: service account
	// emails, or the single literal "public" or "private".
	Invoker []string

	CORS *CORSOptions
}

// Validate checks the HTTPS specific fields on top of the common ones.
func (o HTTPSOptions) Validate() error {
	if err := o.RuntimeOptions.Validate(); err != nil {
		return err
	}
	return validateInvoker(o.Invoker)
}

// Endpoint builds the endpoint with an httpsTrigger attached.
func (o HTTPSOptions) Endpoint(entryPoint string) (*manifest.Endpoint, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	ep := o.endpoint(entryPoint)
	trigger := &manifest.HTTPSTrigger{}
	if len(o.Invoker) > 0 {
		trigger.Invoker = append([]string(nil), o.Invoker...)
	}
	if err := ep.AttachTrigger(trigger); err != nil {
		return nil, err
	}
	return ep, nil
}

// CallableOptions configures a function invoked through the callable
// RPC protocol.
type CallableOptions struct {
	RuntimeOptions

	CORS *CORSOptions
}

// Validate checks the callable specific fields.
func (o CallableOptions) Validate() error {
	return o.RuntimeOptions.Validate()
}

// Endpoint builds the endpoint with a callableTrigger attached. The
// deployment-callable label marks the endpoint for the hosting layer.
func (o CallableOptions) Endpoint(entryPoint string) (*manifest.Endpoint, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	ep := o.endpoint(entryPoint)
	if ep.Labels == nil {
		ep.Labels = map[string]string{}
	}
	ep.Labels["deployment-callable"] = "true"
	if err := ep.AttachTrigger(&manifest.CallableTrigger{}); err != nil {
		return nil, err
	}
	return ep, nil
}

func validateInvoker(invoker []string) error {
	for _, entry := range invoker {
		if entry == "" {
			return errField("invoker", "entries must be non-empty")
		}
	}
	if len(invoker) > 1 {
		for _, entry := range invoker {
			if entry == "public" || entry == "private" {
				return errField("invoker", "%q cannot appear in a list of service accounts", entry)
			}
		}
	}
	return nil
}
