// Where: fn/firestore.go
// What: Firestore document-change declarations, one per change kind.
package fn

import (
	"context"

	"github.com/cloudlet-dev/functions/options"
	"github.com/cloudlet-dev/functions/registry"
)

// DocumentSnapshot is one state of a watched document, decoded into T.
type DocumentSnapshot[T any] struct {
	// Path is the full document path relative to the database root.
	Path string
	// Exists is false for the missing side of a create or delete.
	Exists bool
	Data   T
}

// DocumentChangeHandler receives both sides of a document change.
type DocumentChangeHandler[T any] func(ctx context.Context, e Event[Change[DocumentSnapshot[T]]]) error

// DocumentHandler receives a single document state.
type DocumentHandler[T any] func(ctx context.Context, e Event[DocumentSnapshot[T]]) error

// OnDocumentWritten declares a function invoked on any write to a
// matching document.
func OnDocumentWritten[T any](reg *registry.Registry, id string, opts options.FirestoreOptions, handler DocumentChangeHandler[T]) (*Function[DocumentChangeHandler[T]], error) {
	ep, err := opts.Endpoint(id, options.EventTypeDocumentWritten)
	return declare(reg, id, ep, err, handler)
}

// OnDocumentCreated declares a function invoked when a matching
// document is first created.
func OnDocumentCreated[T any](reg *registry.Registry, id string, opts options.FirestoreOptions, handler DocumentHandler[T]) (*Function[DocumentHandler[T]], error) {
	ep, err := opts.Endpoint(id, options.EventTypeDocumentCreated)
	return declare(reg, id, ep, err, handler)
}

// OnDocumentUpdated declares a function invoked when a matching
// document is updated.
func OnDocumentUpdated[T any](reg *registry.Registry, id string, opts options.FirestoreOptions, handler DocumentChangeHandler[T]) (*Function[DocumentChangeHandler[T]], error) {
	ep, err := opts.Endpoint(id, options.EventTypeDocumentUpdated)
	return declare(reg, id, ep, err, handler)
}

// OnDocumentDeleted declares a function invoked when a matching
// document is deleted.
func OnDocumentDeleted[T any](reg *registry.Registry, id string, opts options.FirestoreOptions, handler DocumentHandler[T]) (*Function[DocumentHandler[T]], error) {
	ep, err := opts.Endpoint(id, options.EventTypeDocumentDeleted)
	return declare(reg, id, ep, err, handler)
}
