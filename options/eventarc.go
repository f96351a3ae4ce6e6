// Where: options/eventarc.go
// What: Options for custom CloudEvent declarations.
// Why: Custom events ride an Eventarc channel; the default Firebase
//      channel applies when none is named.
package options

import "github.com/cloudlet-dev/functions/manifest"

// DefaultChannel is used when a custom event declaration does not name
// a channel.
const DefaultChannel = "locations/us-central1/channels/firebase"

// EventarcOptions configures a function triggered by custom events
// published to an Eventarc channel.
type EventarcOptions struct {
	RuntimeOptions

	// EventType of the events to listen for.
	EventType string

	// Channel resource name; DefaultChannel when empty.
	Channel string

	// Filters are exact-match attribute filters.
	Filters map[string]string

	// Retry redelivers failed executions.
	Retry bool
}

// Validate checks the Eventarc specific fields.
func (o EventarcOptions) Validate() error {
	if err := o.RuntimeOptions.Validate(); err != nil {
		return err
	}
	if o.EventType == "" {
		return errField("eventType", "an event type is required")
	}
	return nil
}

// Endpoint builds the endpoint with a channel-bound eventTrigger.
func (o EventarcOptions) Endpoint(entryPoint string) (*manifest.Endpoint, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	channel := o.Channel
	if channel == "" {
		channel = DefaultChannel
	}
	trigger := &manifest.EventTrigger{
		EventType: o.EventType,
		Channel:   channel,
		Retry:     o.Retry,
	}
	if len(o.Filters) > 0 {
		filters := make(map[string]string, len(o.Filters))
		for k, v := range o.Filters {
			filters[k] = v
		}
		trigger.EventFilters = filters
	}
	ep := o.endpoint(entryPoint)
	if err := ep.AttachTrigger(trigger); err != nil {
		return nil, err
	}
	return ep, nil
}
