// Where: options/tasks.go
// What: Options for task queue dispatch declarations.
// Why: Retry and rate limit tuning are part of the queue binding, not
//      of the handler.
package options

import "github.com/cloudlet-dev/functions/manifest"

// TaskRetryConfig mirrors manifest.TaskRetryConfig at the declaration
// surface.
type TaskRetryConfig = manifest.TaskRetryConfig

// TaskRateLimits mirrors manifest.TaskRateLimits at the declaration
// surface.
type TaskRateLimits = manifest.TaskRateLimits

// TaskQueueOptions configures a function invoked by task dispatches.
type TaskQueueOptions struct {
	RuntimeOptions

	RetryConfig *TaskRetryConfig
	RateLimits  *TaskRateLimits

	// Invoker restricts who may enqueue tasks: service account emails
	// or the single literal "private".
	Invoker []string
}

// Validate checks the task queue specific fields.
func (o TaskQueueOptions) Validate() error {
	if err := o.RuntimeOptions.Validate(); err != nil {
		return err
	}
	for _, entry := range o.Invoker {
		if entry == "" {
			return errField("invoker", "entries must be non-empty")
		}
	}
	if len(o.Invoker) > 1 {
		for _, entry := range o.Invoker {
			if entry == "private" {
				return errField("invoker", "%q cannot appear in a list of service accounts", entry)
			}
		}
	}
	if o.RateLimits != nil {
		if v := o.RateLimits.MaxConcurrentDispatches; v != nil && *v < 1 {
			return errField("rateLimits.maxConcurrentDispatches", "must be at least 1")
		}
		if v := o.RateLimits.MaxDispatchesPerSecond; v != nil && *v < 1 {
			return errField("rateLimits.maxDispatchesPerSecond", "must be at least 1")
		}
	}
	return nil
}

// Endpoint builds the endpoint with a taskQueueTrigger attached.
func (o TaskQueueOptions) Endpoint(entryPoint string) (*manifest.Endpoint, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	ep := o.endpoint(entryPoint)
	trigger := &manifest.TaskQueueTrigger{}
	if o.RetryConfig != nil {
		rc := *o.RetryConfig
		trigger.RetryConfig = &rc
	}
	if o.RateLimits != nil {
		rl := *o.RateLimits
		trigger.RateLimits = &rl
	}
	if err := ep.AttachTrigger(trigger); err != nil {
		return nil, err
	}
	return ep, nil
}
