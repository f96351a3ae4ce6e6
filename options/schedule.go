// Where: options/schedule.go
// What: Options for schedule-triggered declarations.
// Why: Schedule expressions are opaque to the SDK but must be present;
//      retry tuning maps straight onto the trigger.
package options

import "github.com/cloudlet-dev/functions/manifest"

// ScheduleOptions configures a function run on a schedule.
type ScheduleOptions struct {
	RuntimeOptions

	// Schedule is a Unix crontab or AppEngine style expression, e.g.
	// "every 5 minutes".
	Schedule string

	// TimeZone the schedule executes in, IANA name.
	TimeZone string

	RetryCount        *int
	MaxRetrySeconds   *int
	MaxBackoffSeconds *int
	MaxDoublings      *int
	MinBackoffSeconds *int
}

// Validate checks the schedule specific fields.
func (o ScheduleOptions) Validate() error {
	if err := o.RuntimeOptions.Validate(); err != nil {
		return err
	}
	if o.Schedule == "" {
		return errField("schedule", "a schedule expression is required")
	}
	return nil
}

// Endpoint builds the endpoint with a scheduleTrigger attached.
func (o ScheduleOptions) Endpoint(entryPoint string) (*manifest.Endpoint, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	ep := o.endpoint(entryPoint)
	trigger := &manifest.ScheduleTrigger{
		Schedule: o.Schedule,
		TimeZone: o.TimeZone,
	}
	if o.RetryCount != nil || o.MaxRetrySeconds != nil || o.MaxBackoffSeconds != nil ||
		o.MaxDoublings != nil || o.MinBackoffSeconds != nil {
		trigger.RetryConfig = &manifest.ScheduleRetryConfig{
			RetryCount:        o.RetryCount,
			MaxRetrySeconds:   o.MaxRetrySeconds,
			MaxBackoffSeconds: o.MaxBackoffSeconds,
			MaxDoublings:      o.MaxDoublings,
			MinBackoffSeconds: o.MinBackoffSeconds,
		}
	}
	if err := ep.AttachTrigger(trigger); err != nil {
		return nil, err
	}
	return ep, nil
}
