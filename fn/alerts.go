// Where: fn/alerts.go
// What: Firebase alert declarations.
package fn

import (
	"context"
	"time"

	"github.com/cloudlet-dev/functions/options"
	"github.com/cloudlet-dev/functions/registry"
)

// AlertPayload is the common envelope of a published alert; Payload
// holds the alert family specific body.
type AlertPayload struct {
	AlertType  string
	AppID      string
	CreateTime time.Time
	EndTime    time.Time
	Payload    map[string]any
}

// AlertHandler processes one published alert.
type AlertHandler func(ctx context.Context, e Event[AlertPayload]) error

// OnAlertPublished declares a function invoked when a matching alert is
// published.
func OnAlertPublished(reg *registry.Registry, id string, opts options.AlertOptions, handler AlertHandler) (*Function[AlertHandler], error) {
	ep, err := opts.Endpoint(id)
	return declare(reg, id, ep, err, handler)
}
