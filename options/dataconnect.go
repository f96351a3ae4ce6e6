// Where: options/dataconnect.go
// What: Options for Data Connect mutation declarations.
// Why: Service, connector, and operation each narrow the trigger; a
//      pattern with wildcards becomes a path-pattern filter.
package options

import (
	"github.com/cloudlet-dev/functions/internal/pathpattern"
	"github.com/cloudlet-dev/functions/manifest"
)

// EventTypeMutationExecuted fires after a Data Connect connector runs a
// mutation.
const EventTypeMutationExecuted = "google.firebase.dataconnect.connector.v1.mutationExecuted"

// DataConnectOptions configures a function triggered by Data Connect
// mutations. Every filter field is optional; an empty field matches
// everything.
type DataConnectOptions struct {
	RuntimeOptions

	// Service id to watch, a literal or a pattern such as "{service}".
	Service string

	// Connector id to watch.
	Connector string

	// Operation name to watch.
	Operation string

	// Retry redelivers failed executions.
	Retry bool
}

// Validate checks the Data Connect specific fields.
func (o DataConnectOptions) Validate() error {
	return o.RuntimeOptions.Validate()
}

// Endpoint builds the endpoint with a mutation eventTrigger.
func (o DataConnectOptions) Endpoint(entryPoint string) (*manifest.Endpoint, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	trigger := &manifest.EventTrigger{
		EventType: EventTypeMutationExecuted,
		Retry:     o.Retry,
	}
	for key, raw := range map[string]string{
		"service":   o.Service,
		"connector": o.Connector,
		"operation": o.Operation,
	} {
		if raw == "" {
			continue
		}
		pattern := pathpattern.Parse(raw)
		if pattern.HasWildcards() {
			if trigger.EventFilterPathPatterns == nil {
				trigger.EventFilterPathPatterns = make(map[string]string)
			}
			trigger.EventFilterPathPatterns[key] = pattern.Value()
		} else {
			if trigger.EventFilters == nil {
				trigger.EventFilters = make(map[string]string)
			}
			trigger.EventFilters[key] = pattern.Value()
		}
	}
	ep := o.endpoint(entryPoint)
	if err := ep.AttachTrigger(trigger); err != nil {
		return nil, err
	}
	return ep, nil
}
