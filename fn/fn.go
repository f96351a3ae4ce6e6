// Where: fn/fn.go
// What: Function declarations: the handle returned by every On* call.
// Why: Declaration and registration happen in one step so the manifest
//      can never drift from the handlers the process actually serves.
package fn

import (
	"github.com/cloudlet-dev/functions/manifest"
	"github.com/cloudlet-dev/functions/registry"
)

// Function pairs a registered endpoint with its typed handler. The
// Endpoint field is an independent copy of the registered state;
// mutating it does not affect the manifest.
type Function[H any] struct {
	ID       string
	Endpoint *manifest.Endpoint
	Handler  H
}

// Must panics when a declaration fails. Intended for package-level
// variable initialization, where a broken declaration should stop the
// process before it serves anything.
func Must[H any](f *Function[H], err error) *Function[H] {
	if err != nil {
		panic(err)
	}
	return f
}

// declare registers a built endpoint. A nil registry targets the
// process-wide default.
func declare[H any](reg *registry.Registry, id string, ep *manifest.Endpoint, err error, handler H) (*Function[H], error) {
	if err != nil {
		return nil, err
	}
	if reg == nil {
		reg = registry.Default
	}
	stored, err := reg.Register(id, ep)
	if err != nil {
		return nil, err
	}
	return &Function[H]{ID: id, Endpoint: stored, Handler: handler}, nil
}
