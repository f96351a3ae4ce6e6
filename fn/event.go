// Where: fn/event.go
// What: CloudEvent envelope types handed to event handlers.
package fn

import "time"

// Event is the CloudEvent envelope delivered to event-triggered
// handlers, with the payload already decoded into T.
type Event[T any] struct {
	ID          string
	Source      string
	SpecVersion string
	Type        string
	Subject     string
	Time        time.Time
	Data        T
}

// Change carries the before and after state of a watched resource for
// written/updated events.
type Change[T any] struct {
	Before T
	After  T
}
