// Where: options/firestore.go
// What: Options for Firestore document-change declarations.
// Why: Document patterns split into exact filters or path-pattern
//      filters depending on wildcard use.
package options

import (
	"github.com/cloudlet-dev/functions/internal/pathpattern"
	"github.com/cloudlet-dev/functions/manifest"
)

// Firestore document CloudEvent types, one per change kind.
const (
	EventTypeDocumentWritten = "google.cloud.firestore.document.v1.written"
	EventTypeDocumentCreated = "google.cloud.firestore.document.v1.created"
	EventTypeDocumentUpdated = "google.cloud.firestore.document.v1.updated"
	EventTypeDocumentDeleted = "google.cloud.firestore.document.v1.deleted"
)

// FirestoreOptions configures a function triggered by document changes.
type FirestoreOptions struct {
	RuntimeOptions

	// Document is the path to watch, a literal path or a pattern with
	// {param} placeholders, e.g. "users/{userId}".
	Document string

	// Database defaults to "(default)".
	Database string

	// Namespace defaults to "(default)".
	Namespace string
}

// Validate checks the Firestore specific fields.
func (o FirestoreOptions) Validate() error {
	if err := o.RuntimeOptions.Validate(); err != nil {
		return err
	}
	if o.Document == "" {
		return errField("document", "a document path is required")
	}
	return nil
}

// Endpoint builds the endpoint with an eventTrigger for the given
// document event type.
func (o FirestoreOptions) Endpoint(entryPoint, eventType string) (*manifest.Endpoint, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	database := o.Database
	if database == "" {
		database = "(default)"
	}
	namespace := o.Namespace
	if namespace == "" {
		namespace = "(default)"
	}

	filters := map[string]string{
		"database":  database,
		"namespace": namespace,
	}
	trigger := &manifest.EventTrigger{
		EventType:    eventType,
		EventFilters: filters,
	}
	pattern := pathpattern.Parse(o.Document)
	if pattern.HasWildcards() {
		trigger.EventFilterPathPatterns = map[string]string{"document": pattern.Value()}
	} else {
		filters["document"] = pattern.Value()
	}

	ep := o.endpoint(entryPoint)
	if err := ep.AttachTrigger(trigger); err != nil {
		return nil, err
	}
	return ep, nil
}
