// Where: fn/testlab.go
// What: Test Lab matrix declarations.
package fn

import (
	"context"
	"time"

	"github.com/cloudlet-dev/functions/options"
	"github.com/cloudlet-dev/functions/registry"
)

// TestMatrixData describes a completed test matrix.
type TestMatrixData struct {
	MatrixID   string
	State      string
	Outcome    string
	CreateTime time.Time
	ClientInfo map[string]string
}

// TestMatrixHandler processes one completed matrix.
type TestMatrixHandler func(ctx context.Context, e Event[TestMatrixData]) error

// OnTestMatrixCompleted declares a function invoked when a Test Lab
// matrix finishes.
func OnTestMatrixCompleted(reg *registry.Registry, id string, opts options.TestLabOptions, handler TestMatrixHandler) (*Function[TestMatrixHandler], error) {
	ep, err := opts.Endpoint(id)
	return declare(reg, id, ep, err, handler)
}
