// Where: fn/dataconnect.go
// What: Data Connect mutation declarations.
package fn

import (
	"context"

	"github.com/cloudlet-dev/functions/options"
	"github.com/cloudlet-dev/functions/registry"
)

// GraphQLError is one error raised while executing a GraphQL request.
type GraphQLError struct {
	Message string
	// Path locates the result field that could not be populated,
	// as field names and list indexes from the document root.
	Path []any
}

// Mutation is the executed operation with its result.
type Mutation struct {
	// Data is the result of the operation; nil when execution failed.
	Data any
	// Variables holds the GraphQL variable values of the request.
	Variables any
	Errors    []GraphQLError
}

// MutationEventData is the payload of every mutation event.
type MutationEventData struct {
	Payload Mutation
}

// MutationHandler runs after a matching mutation executed.
type MutationHandler func(ctx context.Context, e Event[MutationEventData]) error

// OnMutationExecuted declares a function invoked after a Data Connect
// connector runs a matching mutation.
func OnMutationExecuted(reg *registry.Registry, id string, opts options.DataConnectOptions, handler MutationHandler) (*Function[MutationHandler], error) {
	ep, err := opts.Endpoint(id)
	return declare(reg, id, ep, err, handler)
}
