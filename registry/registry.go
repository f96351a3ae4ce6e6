// Where: registry/registry.go
// What: Collects endpoint declarations and parameter specs.
// Why: The manifest is assembled from a snapshot, so registration must
//      be atomic and the stored endpoints immutable from the outside.
package registry

import (
	"regexp"
	"sync"

	"github.com/cloudlet-dev/functions/manifest"
	"github.com/cloudlet-dev/functions/options"
)

var idPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// Registry accumulates endpoint declarations in order. The zero value
// is not usable; call New.
type Registry struct {
	mu      sync.Mutex
	entries []manifest.Entry
	byID    map[string]int
	params  []manifest.ParamSpec
	byName  map[string]int
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{
		byID:   make(map[string]int),
		byName: make(map[string]int),
	}
}

// Default is the process-wide registry that package-level declarations
// register into.
var Default = New()

// Register stores a deep copy of the endpoint under the given id and
// returns an independent copy of it. Neither the caller's endpoint nor
// the returned one aliases registry state. A taken id fails with
// DuplicateEndpointError and leaves the registry unchanged.
func (r *Registry) Register(id string, ep *manifest.Endpoint) (*manifest.Endpoint, error) {
	if !idPattern.MatchString(id) {
		return nil, &options.ConfigurationError{
			Field:  "id",
			Reason: "must match [a-zA-Z0-9_-]+",
		}
	}
	if ep == nil {
		return nil, &options.ConfigurationError{Field: "endpoint", Reason: "must not be nil"}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, taken := r.byID[id]; taken {
		return nil, &DuplicateEndpointError{ID: id}
	}
	stored := ep.Clone()
	r.byID[id] = len(r.entries)
	r.entries = append(r.entries, manifest.Entry{ID: id, Endpoint: stored})
	return stored.Clone(), nil
}

// RegisterParam stores a parameter spec. A taken name fails with
// DuplicateParamError.
func (r *Registry) RegisterParam(spec manifest.ParamSpec) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, taken := r.byName[spec.Name]; taken {
		return &DuplicateParamError{Name: spec.Name}
	}
	r.byName[spec.Name] = len(r.params)
	r.params = append(r.params, spec)
	return nil
}

// Snapshot returns the registered entries in declaration order. Each
// endpoint is a fresh copy; mutating the result does not affect the
// registry or other snapshots.
func (r *Registry) Snapshot() []manifest.Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]manifest.Entry, len(r.entries))
	for i, entry := range r.entries {
		out[i] = manifest.Entry{ID: entry.ID, Endpoint: entry.Endpoint.Clone()}
	}
	return out
}

// Params returns the declared parameter specs in declaration order.
func (r *Registry) Params() []manifest.ParamSpec {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]manifest.ParamSpec(nil), r.params...)
}

// Len reports the number of registered endpoints.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}
