// Where: fn/schedule.go
// What: Scheduled function declarations.
package fn

import (
	"context"
	"time"

	"github.com/cloudlet-dev/functions/options"
	"github.com/cloudlet-dev/functions/registry"
)

// ScheduledEvent describes one firing of a schedule.
type ScheduledEvent struct {
	JobName      string
	ScheduleTime time.Time
}

// ScheduleHandler runs on every firing of the schedule.
type ScheduleHandler func(ctx context.Context, e ScheduledEvent) error

// OnSchedule declares a function invoked on a cron or interval
// schedule.
func OnSchedule(reg *registry.Registry, id string, opts options.ScheduleOptions, handler ScheduleHandler) (*Function[ScheduleHandler], error) {
	ep, err := opts.Endpoint(id)
	return declare(reg, id, ep, err, handler)
}
