// Where: fn/tasks.go
// What: Task queue dispatch declarations.
package fn

import (
	"context"

	"github.com/cloudlet-dev/functions/options"
	"github.com/cloudlet-dev/functions/registry"
)

// TaskRequest is one dispatched task with its payload decoded into T.
type TaskRequest[T any] struct {
	Data T
	// QueueName is the short name of the dispatching queue.
	QueueName string
	// TaskID is stable across retries of the same task.
	TaskID string
	// RetryCount is how many times this task has been retried.
	RetryCount int
}

// TaskHandler processes one dispatched task; a returned error triggers
// the queue's retry policy.
type TaskHandler[T any] func(ctx context.Context, req TaskRequest[T]) error

// OnTaskDispatched declares a function invoked by task queue
// dispatches.
func OnTaskDispatched[T any](reg *registry.Registry, id string, opts options.TaskQueueOptions, handler TaskHandler[T]) (*Function[TaskHandler[T]], error) {
	ep, err := opts.Endpoint(id)
	return declare(reg, id, ep, err, handler)
}
