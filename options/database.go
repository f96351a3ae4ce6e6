// Where: options/database.go
// What: Options for Realtime Database reference declarations.
// Why: References are always path patterns on the wire; instances may
//      be exact or wildcarded.
package options

import (
	"github.com/cloudlet-dev/functions/internal/pathpattern"
	"github.com/cloudlet-dev/functions/manifest"
)

// Realtime Database CloudEvent types, one per change kind.
const (
	EventTypeRefWritten = "google.firebase.database.ref.v1.written"
	EventTypeRefCreated = "google.firebase.database.ref.v1.created"
	EventTypeRefUpdated = "google.firebase.database.ref.v1.updated"
	EventTypeRefDeleted = "google.firebase.database.ref.v1.deleted"
)

// DatabaseOptions configures a function triggered by Realtime Database
// writes.
type DatabaseOptions struct {
	RuntimeOptions

	// Reference is the database path to watch, a literal path or a
	// pattern, e.g. "/foo/{bar}".
	Reference string

	// Instance scopes the trigger to database instances; "*" (the
	// default) matches all of them. Capture syntax is not allowed.
	Instance string
}

// Validate checks the database specific fields.
func (o DatabaseOptions) Validate() error {
	if err := o.RuntimeOptions.Validate(); err != nil {
		return err
	}
	if o.Reference == "" {
		return errField("reference", "a database reference is required")
	}
	instance := pathpattern.Parse(o.instanceOrDefault())
	if instance.HasCaptures() {
		return errField("instance", "capture syntax is not allowed")
	}
	return nil
}

func (o DatabaseOptions) instanceOrDefault() string {
	if o.Instance == "" {
		return "*"
	}
	return o.Instance
}

// Endpoint builds the endpoint with an eventTrigger for the given
// reference event type.
func (o DatabaseOptions) Endpoint(entryPoint, eventType string) (*manifest.Endpoint, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	instance := pathpattern.Parse(o.instanceOrDefault())
	reference := pathpattern.Parse(o.Reference)

	filters := map[string]string{}
	// Eventarc always treats ref as a path pattern.
	patterns := map[string]string{"ref": reference.Value()}
	if instance.HasWildcards() {
		patterns["instance"] = instance.Value()
	} else {
		filters["instance"] = instance.Value()
	}

	trigger := &manifest.EventTrigger{
		EventType:               eventType,
		EventFilterPathPatterns: patterns,
	}
	if len(filters) > 0 {
		trigger.EventFilters = filters
	}

	ep := o.endpoint(entryPoint)
	if err := ep.AttachTrigger(trigger); err != nil {
		return nil, err
	}
	return ep, nil
}
