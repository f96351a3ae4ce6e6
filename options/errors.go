// Where: options/errors.go
// What: Declaration-time configuration errors.
// Why: Validation failures must name the offending field; the
//      deployment tool has no way to report them back to source.
package options

import "fmt"

// ConfigurationError reports an invalid or missing option value. It is
// raised at declaration time, never deferred to deploy time.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid option %q: %s", e.Field, e.Reason)
}

func errField(field, format string, args ...any) error {
	return &ConfigurationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
