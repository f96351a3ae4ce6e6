// Where: options/storage.go
// What: Options for Cloud Storage object-change declarations.
// Why: The bucket binding must be explicit; there is no ambient
//      project configuration to fall back to.
package options

import "github.com/cloudlet-dev/functions/manifest"

// Cloud Storage object CloudEvent types.
const (
	EventTypeObjectFinalized       = "google.cloud.storage.object.v1.finalized"
	EventTypeObjectArchived        = "google.cloud.storage.object.v1.archived"
	EventTypeObjectDeleted         = "google.cloud.storage.object.v1.deleted"
	EventTypeObjectMetadataUpdated = "google.cloud.storage.object.v1.metadataUpdated"
)

// StorageOptions configures a function triggered by object changes in
// a bucket.
type StorageOptions struct {
	RuntimeOptions

	// Bucket is the storage bucket to watch.
	Bucket string
}

// Validate checks the storage specific fields.
func (o StorageOptions) Validate() error {
	if err := o.RuntimeOptions.Validate(); err != nil {
		return err
	}
	if o.Bucket == "" {
		return errField("bucket", "a bucket name is required")
	}
	return nil
}

// Endpoint builds the endpoint with an eventTrigger for the given
// object event type.
func (o StorageOptions) Endpoint(entryPoint, eventType string) (*manifest.Endpoint, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	ep := o.endpoint(entryPoint)
	trigger := &manifest.EventTrigger{
		EventType:    eventType,
		EventFilters: map[string]string{"bucket": o.Bucket},
	}
	if err := ep.AttachTrigger(trigger); err != nil {
		return nil, err
	}
	return ep, nil
}
