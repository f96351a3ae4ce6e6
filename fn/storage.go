// Where: fn/storage.go
// What: Cloud Storage object-change declarations.
package fn

import (
	"context"
	"time"

	"github.com/cloudlet-dev/functions/options"
	"github.com/cloudlet-dev/functions/registry"
)

// StorageObjectData describes the object an event refers to.
type StorageObjectData struct {
	Bucket         string
	Name           string
	ContentType    string
	Size           int64
	Generation     int64
	Metageneration int64
	TimeCreated    time.Time
	Updated        time.Time
	Metadata       map[string]string
}

// ObjectHandler processes one object change event.
type ObjectHandler func(ctx context.Context, e Event[StorageObjectData]) error

// OnObjectFinalized declares a function invoked when an object upload
// completes.
func OnObjectFinalized(reg *registry.Registry, id string, opts options.StorageOptions, handler ObjectHandler) (*Function[ObjectHandler], error) {
	ep, err := opts.Endpoint(id, options.EventTypeObjectFinalized)
	return declare(reg, id, ep, err, handler)
}

// OnObjectArchived declares a function invoked when an object is
// archived.
func OnObjectArchived(reg *registry.Registry, id string, opts options.StorageOptions, handler ObjectHandler) (*Function[ObjectHandler], error) {
	ep, err := opts.Endpoint(id, options.EventTypeObjectArchived)
	return declare(reg, id, ep, err, handler)
}

// OnObjectDeleted declares a function invoked when an object is
// deleted.
func OnObjectDeleted(reg *registry.Registry, id string, opts options.StorageOptions, handler ObjectHandler) (*Function[ObjectHandler], error) {
	ep, err := opts.Endpoint(id, options.EventTypeObjectDeleted)
	return declare(reg, id, ep, err, handler)
}

// OnObjectMetadataUpdated declares a function invoked when object
// metadata changes.
func OnObjectMetadataUpdated(reg *registry.Registry, id string, opts options.StorageOptions, handler ObjectHandler) (*Function[ObjectHandler], error) {
	ep, err := opts.Endpoint(id, options.EventTypeObjectMetadataUpdated)
	return declare(reg, id, ep, err, handler)
}
