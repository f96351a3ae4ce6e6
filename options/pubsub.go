// Where: options/pubsub.go
// What: Options for Pub/Sub message-published declarations.
// Why: The topic binding is the only trigger-specific input and must
//      exist before deploy.
package options

import "github.com/cloudlet-dev/functions/manifest"

// EventTypeMessagePublished is the CloudEvent type for Pub/Sub topic
// messages.
const EventTypeMessagePublished = "google.cloud.pubsub.topic.v1.messagePublished"

// PubSubOptions configures a function triggered by messages published
// to a topic.
type PubSubOptions struct {
	RuntimeOptions

	// Topic is the Pub/Sub topic to watch.
	Topic string

	// Retry redelivers failed executions.
	Retry bool
}

// Validate checks the Pub/Sub specific fields.
func (o PubSubOptions) Validate() error {
	if err := o.RuntimeOptions.Validate(); err != nil {
		return err
	}
	if o.Topic == "" {
		return errField("topic", "a topic name is required")
	}
	return nil
}

// Endpoint builds the endpoint with an eventTrigger bound to the topic.
func (o PubSubOptions) Endpoint(entryPoint string) (*manifest.Endpoint, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	ep := o.endpoint(entryPoint)
	trigger := &manifest.EventTrigger{
		EventType:    EventTypeMessagePublished,
		EventFilters: map[string]string{"topic": o.Topic},
		Retry:        o.Retry,
	}
	if err := ep.AttachTrigger(trigger); err != nil {
		return nil, err
	}
	return ep, nil
}
