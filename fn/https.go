// Where: fn/https.go
// What: HTTPS and callable declarations.
package fn

import (
	"context"
	"net/http"

	"github.com/cloudlet-dev/functions/options"
	"github.com/cloudlet-dev/functions/registry"
)

// HTTPHandler serves a raw HTTPS request.
type HTTPHandler = http.HandlerFunc

// CallableRequest is a decoded callable RPC invocation.
type CallableRequest[T any] struct {
	Data T
	// AuthUID is the caller's verified user id, empty when
	// unauthenticated.
	AuthUID string
	// InstanceIDToken identifies the calling app instance, when sent.
	InstanceIDToken string
}

// CallableHandler answers a callable RPC; the returned value is
// serialized back to the caller.
type CallableHandler[T any] func(ctx context.Context, req CallableRequest[T]) (any, error)

// OnRequest declares a function invoked by arbitrary HTTPS requests.
func OnRequest(reg *registry.Registry, id string, opts options.HTTPSOptions, handler HTTPHandler) (*Function[HTTPHandler], error) {
	ep, err := opts.Endpoint(id)
	return declare(reg, id, ep, err, handler)
}

// OnCall declares a function invoked through the callable protocol.
func OnCall[T any](reg *registry.Registry, id string, opts options.CallableOptions, handler CallableHandler[T]) (*Function[CallableHandler[T]], error) {
	ep, err := opts.Endpoint(id)
	return declare(reg, id, ep, err, handler)
}
