// Where: registry/errors.go
// What: Error types for registration conflicts.
package registry

import "fmt"

// DuplicateEndpointError reports a second registration under an id that
// is already taken. The registry is left exactly as it was.
type DuplicateEndpointError struct {
	ID string
}

func (e *DuplicateEndpointError) Error() string {
	return fmt.Sprintf("endpoint id %q is already registered", e.ID)
}

// DuplicateParamError reports a second parameter declared under a name
// that is already taken.
type DuplicateParamError struct {
	Name string
}

func (e *DuplicateParamError) Error() string {
	return fmt.Sprintf("param %q is already declared", e.Name)
}
