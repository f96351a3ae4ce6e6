// Where: fn/database.go
// What: Realtime Database reference declarations, one per change kind.
package fn

import (
	"context"

	"github.com/cloudlet-dev/functions/options"
	"github.com/cloudlet-dev/functions/registry"
)

// ValueChangeHandler receives both sides of a reference change.
type ValueChangeHandler[T any] func(ctx context.Context, e Event[Change[T]]) error

// ValueHandler receives a single reference state.
type ValueHandler[T any] func(ctx context.Context, e Event[T]) error

// OnValueWritten declares a function invoked on any write under a
// matching reference.
func OnValueWritten[T any](reg *registry.Registry, id string, opts options.DatabaseOptions, handler ValueChangeHandler[T]) (*Function[ValueChangeHandler[T]], error) {
	ep, err := opts.Endpoint(id, options.EventTypeRefWritten)
	return declare(reg, id, ep, err, handler)
}

// OnValueCreated declares a function invoked when data is first written
// under a matching reference.
func OnValueCreated[T any](reg *registry.Registry, id string, opts options.DatabaseOptions, handler ValueHandler[T]) (*Function[ValueHandler[T]], error) {
	ep, err := opts.Endpoint(id, options.EventTypeRefCreated)
	return declare(reg, id, ep, err, handler)
}

// OnValueUpdated declares a function invoked when existing data under a
// matching reference changes.
func OnValueUpdated[T any](reg *registry.Registry, id string, opts options.DatabaseOptions, handler ValueChangeHandler[T]) (*Function[ValueChangeHandler[T]], error) {
	ep, err := opts.Endpoint(id, options.EventTypeRefUpdated)
	return declare(reg, id, ep, err, handler)
}

// OnValueDeleted declares a function invoked when data under a matching
// reference is removed.
func OnValueDeleted[T any](reg *registry.Registry, id string, opts options.DatabaseOptions, handler ValueHandler[T]) (*Function[ValueHandler[T]], error) {
	ep, err := opts.Endpoint(id, options.EventTypeRefDeleted)
	return declare(reg, id, ep, err, handler)
}
