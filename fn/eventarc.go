// Where: fn/eventarc.go
// What: Custom CloudEvent declarations.
package fn

import (
	"context"

	"github.com/cloudlet-dev/functions/options"
	"github.com/cloudlet-dev/functions/registry"
)

// CustomEventHandler processes one custom event with its payload
// decoded into T.
type CustomEventHandler[T any] func(ctx context.Context, e Event[T]) error

// OnCustomEventPublished declares a function invoked for events
// published to an Eventarc channel.
func OnCustomEventPublished[T any](reg *registry.Registry, id string, opts options.EventarcOptions, handler CustomEventHandler[T]) (*Function[CustomEventHandler[T]], error) {
	ep, err := opts.Endpoint(id)
	return declare(reg, id, ep, err, handler)
}
