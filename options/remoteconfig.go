// Where: options/remoteconfig.go
// What: Options for Remote Config update declarations.
package options

import "github.com/cloudlet-dev/functions/manifest"

// EventTypeConfigUpdated fires when a Remote Config template version is
// rolled out.
const EventTypeConfigUpdated = "google.firebase.remoteconfig.remoteConfig.v1.updated"

// RemoteConfigOptions configures a function triggered by Remote Config
// template updates. There are no service specific fields; the trigger
// is project wide.
type RemoteConfigOptions struct {
	RuntimeOptions
}

// Endpoint builds the endpoint with the Remote Config eventTrigger.
func (o RemoteConfigOptions) Endpoint(entryPoint string) (*manifest.Endpoint, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	ep := o.endpoint(entryPoint)
	trigger := &manifest.EventTrigger{EventType: EventTypeConfigUpdated}
	if err := ep.AttachTrigger(trigger); err != nil {
		return nil, err
	}
	return ep, nil
}
