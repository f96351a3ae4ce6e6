// Where: manifest/errors.go
// What: Error types raised during endpoint construction and assembly.
// Why: A partially valid manifest is worse than no manifest; every
//      failure here aborts the whole pass.
package manifest

import "fmt"

// InvalidTriggerCombinationError reports two mutually exclusive trigger
// shapes requested on one declaration.
type InvalidTriggerCombinationError struct {
	EntryPoint string
	Existing   string
	Requested  string
}

func (e *InvalidTriggerCombinationError) Error() string {
	return fmt.Sprintf("endpoint %q: cannot attach %s, %s is already set",
		e.EntryPoint, e.Requested, e.Existing)
}

// UnsupportedTriggerError reports a trigger variant the assembler has
// no required-API mapping for. Assembly fails rather than silently
// omitting the endpoint, which would cause silent under-deployment.
type UnsupportedTriggerError struct {
	ID        string
	Kind      string
	EventType string
}

func (e *UnsupportedTriggerError) Error() string {
	if e.EventType != "" {
		return fmt.Sprintf("endpoint %q: unsupported event type %q", e.ID, e.EventType)
	}
	return fmt.Sprintf("endpoint %q: unsupported trigger %q", e.ID, e.Kind)
}
