// Where: fn/remoteconfig.go
// What: Remote Config update declarations.
package fn

import (
	"context"
	"time"

	"github.com/cloudlet-dev/functions/options"
	"github.com/cloudlet-dev/functions/registry"
)

// ConfigUpdateData describes a rolled out template version.
type ConfigUpdateData struct {
	VersionNumber int64
	UpdateTime    time.Time
	UpdateUser    string
	Description   string
	UpdateOrigin  string
	UpdateType    string
}

// ConfigUpdateHandler processes one template rollout.
type ConfigUpdateHandler func(ctx context.Context, e Event[ConfigUpdateData]) error

// OnConfigUpdated declares a function invoked when a Remote Config
// template version is rolled out.
func OnConfigUpdated(reg *registry.Registry, id string, opts options.RemoteConfigOptions, handler ConfigUpdateHandler) (*Function[ConfigUpdateHandler], error) {
	ep, err := opts.Endpoint(id)
	return declare(reg, id, ep, err, handler)
}
