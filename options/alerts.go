// Where: options/alerts.go
// What: Options for Firebase alert declarations.
// Why: Alerts share a single event type; the alert kind and app scope
//      are attribute filters.
package options

import "github.com/cloudlet-dev/functions/manifest"

// EventTypeAlertPublished is the CloudEvent type shared by all Firebase
// alerts.
const EventTypeAlertPublished = "google.firebase.firebasealerts.alerts.v1.published"

// AlertOptions configures a function triggered by a published alert.
type AlertOptions struct {
	RuntimeOptions

	// AlertType selects which alert family to receive, e.g.
	// "crashlytics.newFatalIssue".
	AlertType string

	// AppID optionally scopes the trigger to one app.
	AppID string
}

// Validate checks the alert specific fields.
func (o AlertOptions) Validate() error {
	if err := o.RuntimeOptions.Validate(); err != nil {
		return err
	}
	if o.AlertType == "" {
		return errField("alertType", "an alert type is required")
	}
	return nil
}

// Endpoint builds the endpoint with an eventTrigger filtered on the
// alert type and, when set, the app id.
func (o AlertOptions) Endpoint(entryPoint string) (*manifest.Endpoint, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	filters := map[string]string{"alerttype": o.AlertType}
	if o.AppID != "" {
		filters["appid"] = o.AppID
	}
	trigger := &manifest.EventTrigger{
		EventType:    EventTypeAlertPublished,
		EventFilters: filters,
	}
	ep := o.endpoint(entryPoint)
	if err := ep.AttachTrigger(trigger); err != nil {
		return nil, err
	}
	return ep, nil
}
