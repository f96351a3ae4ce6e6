// Where: fn/pubsub.go
// What: Pub/Sub message declarations.
package fn

import (
	"context"
	"time"

	"github.com/cloudlet-dev/functions/options"
	"github.com/cloudlet-dev/functions/registry"
)

// Message is one Pub/Sub message as delivered by the trigger.
type Message struct {
	MessageID   string
	Data        []byte
	Attributes  map[string]string
	OrderingKey string
	PublishTime time.Time
}

// MessagePublishedData is the payload of a messagePublished event.
type MessagePublishedData struct {
	Message      Message
	Subscription string
}

// MessageHandler processes one published message.
type MessageHandler func(ctx context.Context, e Event[MessagePublishedData]) error

// OnMessagePublished declares a function invoked for every message
// published to the topic.
func OnMessagePublished(reg *registry.Registry, id string, opts options.PubSubOptions, handler MessageHandler) (*Function[MessageHandler], error) {
	ep, err := opts.Endpoint(id)
	return declare(reg, id, ep, err, handler)
}
