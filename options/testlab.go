// Where: options/testlab.go
// What: Options for Test Lab matrix-completion declarations.
package options

import "github.com/cloudlet-dev/functions/manifest"

// EventTypeTestMatrixCompleted fires when a Test Lab matrix finishes.
const EventTypeTestMatrixCompleted = "google.firebase.testlab.testMatrix.v1.completed"

// TestLabOptions configures a function triggered when a test matrix
// completes. The trigger is project wide.
type TestLabOptions struct {
	RuntimeOptions
}

// Endpoint builds the endpoint with the Test Lab eventTrigger.
func (o TestLabOptions) Endpoint(entryPoint string) (*manifest.Endpoint, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	ep := o.endpoint(entryPoint)
	trigger := &manifest.EventTrigger{EventType: EventTypeTestMatrixCompleted}
	if err := ep.AttachTrigger(trigger); err != nil {
		return nil, err
	}
	return ep, nil
}
