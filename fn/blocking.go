// Where: fn/blocking.go
// What: Auth blocking declarations.
package fn

import (
	"context"

	"github.com/cloudlet-dev/functions/options"
	"github.com/cloudlet-dev/functions/registry"
)

// AuthUserRecord is the user an auth blocking event concerns.
type AuthUserRecord struct {
	UID         string
	Email       string
	DisplayName string
	PhoneNumber string
	PhotoURL    string
	Disabled    bool
}

// AuthBlockingEvent is delivered before the auth operation completes.
type AuthBlockingEvent struct {
	EventType  string
	User       AuthUserRecord
	IPAddress  string
	UserAgent  string
	Credential map[string]string
}

// AuthBlockingResponse adjusts or blocks the pending operation; nil
// lets it proceed unchanged.
type AuthBlockingResponse struct {
	DisplayName  string
	Disabled     bool
	CustomClaims map[string]any
}

// BlockingHandler decides whether the pending auth operation proceeds.
type BlockingHandler func(ctx context.Context, e AuthBlockingEvent) (*AuthBlockingResponse, error)

// BeforeUserCreated declares a function invoked before a user account
// is created.
func BeforeUserCreated(reg *registry.Registry, id string, opts options.BlockingOptions, handler BlockingHandler) (*Function[BlockingHandler], error) {
	ep, err := opts.Endpoint(id, options.EventTypeBeforeUserCreated)
	return declare(reg, id, ep, err, handler)
}

// BeforeUserSignedIn declares a function invoked before a sign-in
// completes.
func BeforeUserSignedIn(reg *registry.Registry, id string, opts options.BlockingOptions, handler BlockingHandler) (*Function[BlockingHandler], error) {
	ep, err := opts.Endpoint(id, options.EventTypeBeforeUserSignedIn)
	return declare(reg, id, ep, err, handler)
}
