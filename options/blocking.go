// Where: options/blocking.go
// What: Options for auth blocking declarations.
// Why: Which credentials flow to the handler is deployment metadata,
//      recorded on the trigger.
package options

import "github.com/cloudlet-dev/functions/manifest"

// Auth blocking event types.
const (
	EventTypeBeforeUserCreated  = "providers/cloud.auth/eventTypes/user.beforeCreate"
	EventTypeBeforeUserSignedIn = "providers/cloud.auth/eventTypes/user.beforeSignIn"
)

// BlockingOptions configures a function invoked before an auth
// operation completes.
type BlockingOptions struct {
	RuntimeOptions

	// IDToken passes the ID token credential to the function.
	IDToken bool
	// AccessToken passes the access token credential to the function.
	AccessToken bool
	// RefreshToken passes the refresh token credential to the function.
	RefreshToken bool
}

// Validate checks the blocking specific fields.
func (o BlockingOptions) Validate() error {
	return o.RuntimeOptions.Validate()
}

// Endpoint builds the endpoint with a blockingTrigger for the given
// auth event type.
func (o BlockingOptions) Endpoint(entryPoint, eventType string) (*manifest.Endpoint, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	ep := o.endpoint(entryPoint)
	trigger := &manifest.BlockingTrigger{
		EventType: eventType,
		Options: &manifest.BlockingTriggerOptions{
			IDToken:      o.IDToken,
			AccessToken:  o.AccessToken,
			RefreshToken: o.RefreshToken,
		},
	}
	if err := ep.AttachTrigger(trigger); err != nil {
		return nil, err
	}
	return ep, nil
}
