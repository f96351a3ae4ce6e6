// Where: manifest/endpoint.go
// What: The normalized endpoint record declared per function.
// Why: One shape covers every trigger kind so the assembler and the
//      deployment tool never inspect handler code.
package manifest

import "fmt"

// Platform is the only function generation this SDK models.
const Platform = "gcfv2"

// DefaultRegion is used when neither the declaration nor the global
// defaults name a region.
const DefaultRegion = "us-central1"

// CPUGen1 requests the fixed CPU allocation of first generation
// functions instead of a fractional count.
const CPUGen1 = "gcf_gen1"

// RuntimeMode tells the hosting runtime how to invoke the handler. It
// has no effect on manifest assembly beyond the serialized field.
type RuntimeMode string

const (
	// RuntimeSync is the default single blocking invocation mode.
	RuntimeSync RuntimeMode = "sync"
	// RuntimeAsync marks handlers that suspend cooperatively while
	// awaiting external I/O.
	RuntimeAsync RuntimeMode = "async"
)

// SecretEnvVar binds a secret reference to an environment variable key.
type SecretEnvVar struct {
	Key    string `json:"key" yaml:"key"`
	Secret string `json:"secret,omitempty" yaml:"secret,omitempty"`
}

// VPCSettings connects an endpoint to a VPC connector.
type VPCSettings struct {
	Connector      string `json:"connector" yaml:"connector"`
	EgressSettings string `json:"egressSettings,omitempty" yaml:"egressSettings,omitempty"`
}

// Endpoint is the deployment-relevant metadata of one declared
// function. It is created once at declaration time and must not be
// mutated afterwards; the registry stores its own copy to enforce that.
type Endpoint struct {
	EntryPoint string
	Platform   string

	// Region is an ordered list; order is preserved on the wire.
	Region []string

	AvailableMemoryMB *int
	TimeoutSeconds    *int
	MinInstances      *int
	MaxInstances      *int
	Concurrency       *int

	// CPU holds a fractional CPU count rendered as a number, or the
	// literal CPUGen1 string. Empty means platform default.
	CPU string

	ServiceAccountEmail        string
	IngressSettings            string
	Labels                     map[string]string
	EnvironmentVariables       map[string]string
	SecretEnvironmentVariables []SecretEnvVar
	VPC                        *VPCSettings

	RuntimeMode RuntimeMode

	trigger Trigger
}

// NewEndpoint returns an endpoint with the platform pinned and no
// trigger attached yet.
func NewEndpoint(entryPoint string) *Endpoint {
	return &Endpoint{
		EntryPoint: entryPoint,
		Platform:   Platform,
	}
}

// AttachTrigger sets the endpoint's single trigger variant. Attaching a
// second variant is a declaration bug and fails with
// InvalidTriggerCombinationError.
func (e *Endpoint) AttachTrigger(t Trigger) error {
	if t == nil {
		return fmt.Errorf("attach trigger: nil trigger")
	}
	if e.trigger != nil {
		return &InvalidTriggerCombinationError{
			EntryPoint: e.EntryPoint,
			Existing:   e.trigger.Kind(),
			Requested:  t.Kind(),
		}
	}
	e.trigger = t
	return nil
}

// Trigger returns the attached trigger variant, or nil when the
// endpoint was never completed.
func (e *Endpoint) Trigger() Trigger {
	return e.trigger
}

// Clone returns a deep copy. The registry clones on insert so callers
// holding the original cannot mutate registered state.
func (e *Endpoint) Clone() *Endpoint {
	out := *e
	out.Region = append([]string(nil), e.Region...)
	out.AvailableMemoryMB = cloneInt(e.AvailableMemoryMB)
	out.TimeoutSeconds = cloneInt(e.TimeoutSeconds)
	out.MinInstances = cloneInt(e.MinInstances)
	out.MaxInstances = cloneInt(e.MaxInstances)
	out.Concurrency = cloneInt(e.Concurrency)
	out.Labels = cloneStringMap(e.Labels)
	out.EnvironmentVariables = cloneStringMap(e.EnvironmentVariables)
	out.SecretEnvironmentVariables = append([]SecretEnvVar(nil), e.SecretEnvironmentVariables...)
	if e.VPC != nil {
		vpc := *e.VPC
		out.VPC = &vpc
	}
	out.trigger = cloneTrigger(e.trigger)
	return &out
}

func cloneInt(v *int) *int {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func cloneStringMap(m map[string]string) map[string]string {
	if m == nil {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func cloneTrigger(t Trigger) Trigger {
	switch tt := t.(type) {
	case nil:
		return nil
	case *HTTPSTrigger:
		c := *tt
		c.Invoker = append([]string(nil), tt.Invoker...)
		return &c
	case *CallableTrigger:
		c := *tt
		return &c
	case *EventTrigger:
		c := *tt
		c.EventFilters = cloneStringMap(tt.EventFilters)
		c.EventFilterPathPatterns = cloneStringMap(tt.EventFilterPathPatterns)
		return &c
	case *ScheduleTrigger:
		c := *tt
		if tt.RetryConfig != nil {
			rc := *tt.RetryConfig
			c.RetryConfig = &rc
		}
		return &c
	case *BlockingTrigger:
		c := *tt
		if tt.Options != nil {
			opts := *tt.Options
			c.Options = &opts
		}
		return &c
	case *TaskQueueTrigger:
		c := *tt
		if tt.RetryConfig != nil {
			rc := *tt.RetryConfig
			c.RetryConfig = &rc
		}
		if tt.RateLimits != nil {
			rl := *tt.RateLimits
			c.RateLimits = &rl
		}
		return &c
	default:
		return t
	}
}
