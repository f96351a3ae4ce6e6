// Where: options/events_test.go
// What: Tests for the event-source option schemas.
package options

import (
	"errors"
	"reflect"
	"testing"

	"github.com/cloudlet-dev/functions/manifest"
)

func eventTriggerOf(t *testing.T, ep *manifest.Endpoint) *manifest.EventTrigger {
	t.Helper()
	trigger, ok := ep.Trigger().(*manifest.EventTrigger)
	if !ok {
		t.Fatalf("trigger = %T, want *manifest.EventTrigger", ep.Trigger())
	}
	return trigger
}

func TestFirestoreRequiresDocument(t *testing.T) {
	_, err := FirestoreOptions{}.Endpoint("fn", EventTypeDocumentWritten)
	var cfg *ConfigurationError
	if !errors.As(err, &cfg) {
		t.Fatalf("err = %v, want ConfigurationError", err)
	}
	if cfg.Field != "document" {
		t.Errorf("error field = %q, want document", cfg.Field)
	}
}

func TestFirestoreLiteralDocumentUsesExactFilters(t *testing.T) {
	ep, err := FirestoreOptions{Document: "users/alice"}.Endpoint("fn", EventTypeDocumentCreated)
	if err != nil {
		t.Fatalf("Endpoint failed: %v", err)
	}
	trigger := eventTriggerOf(t, ep)
	want := map[string]string{
		"database":  "(default)",
		"namespace": "(default)",
		"document":  "users/alice",
	}
	if !reflect.DeepEqual(trigger.EventFilters, want) {
		t.Errorf("eventFilters = %v, want %v", trigger.EventFilters, want)
	}
	if trigger.EventFilterPathPatterns != nil {
		t.Errorf("path patterns set for literal document: %v", trigger.EventFilterPathPatterns)
	}
}

func TestFirestoreWildcardDocumentUsesPathPatterns(t *testing.T) {
	ep, err := FirestoreOptions{Document: "users/{userId}", Database: "analytics"}.Endpoint("fn", EventTypeDocumentWritten)
	if err != nil {
		t.Fatalf("Endpoint failed: %v", err)
	}
	trigger := eventTriggerOf(t, ep)
	if trigger.EventFilterPathPatterns["document"] != "users/{userId}" {
		t.Errorf("path patterns = %v", trigger.EventFilterPathPatterns)
	}
	if trigger.EventFilters["database"] != "analytics" {
		t.Errorf("database filter = %v", trigger.EventFilters)
	}
	if _, ok := trigger.EventFilters["document"]; ok {
		t.Errorf("document also present in exact filters: %v", trigger.EventFilters)
	}
}

func TestDatabaseReferenceAlwaysPathPattern(t *testing.T) {
	ep, err := DatabaseOptions{Reference: "/rooms/general"}.Endpoint("fn", EventTypeRefWritten)
	if err != nil {
		t.Fatalf("Endpoint failed: %v", err)
	}
	trigger := eventTriggerOf(t, ep)
	if trigger.EventFilterPathPatterns["ref"] != "rooms/general" {
		t.Errorf("ref pattern = %v", trigger.EventFilterPathPatterns)
	}
	// Default instance "*" is a wildcard and rides the pattern map.
	if trigger.EventFilterPathPatterns["instance"] != "*" {
		t.Errorf("instance pattern = %v", trigger.EventFilterPathPatterns)
	}
}

func TestDatabaseExactInstanceIsExactFilter(t *testing.T) {
	ep, err := DatabaseOptions{Reference: "rooms/{room}", Instance: "prod-db"}.Endpoint("fn", EventTypeRefCreated)
	if err != nil {
		t.Fatalf("Endpoint failed: %v", err)
	}
	trigger := eventTriggerOf(t, ep)
	if trigger.EventFilters["instance"] != "prod-db" {
		t.Errorf("instance filter = %v", trigger.EventFilters)
	}
}

func TestDatabaseRejectsInstanceCaptures(t *testing.T) {
	_, err := DatabaseOptions{Reference: "rooms/general", Instance: "{db}"}.Endpoint("fn", EventTypeRefWritten)
	var cfg *ConfigurationError
	if !errors.As(err, &cfg) || cfg.Field != "instance" {
		t.Fatalf("err = %v, want ConfigurationError on instance", err)
	}
}

func TestPubSubTopicRequired(t *testing.T) {
	_, err := PubSubOptions{}.Endpoint("fn")
	var cfg *ConfigurationError
	if !errors.As(err, &cfg) || cfg.Field != "topic" {
		t.Fatalf("err = %v, want ConfigurationError on topic", err)
	}

	ep, err := PubSubOptions{Topic: "orders", Retry: true}.Endpoint("fn")
	if err != nil {
		t.Fatalf("Endpoint failed: %v", err)
	}
	trigger := eventTriggerOf(t, ep)
	if trigger.EventType != EventTypeMessagePublished {
		t.Errorf("eventType = %q", trigger.EventType)
	}
	if trigger.EventFilters["topic"] != "orders" || !trigger.Retry {
		t.Errorf("trigger = %+v", trigger)
	}
}

func TestStorageBucketRequired(t *testing.T) {
	_, err := StorageOptions{}.Endpoint("fn", EventTypeObjectFinalized)
	var cfg *ConfigurationError
	if !errors.As(err, &cfg) || cfg.Field != "bucket" {
		t.Fatalf("err = %v, want ConfigurationError on bucket", err)
	}
}

func TestScheduleExpressionRequired(t *testing.T) {
	_, err := ScheduleOptions{}.Endpoint("fn")
	var cfg *ConfigurationError
	if !errors.As(err, &cfg) || cfg.Field != "schedule" {
		t.Fatalf("err = %v, want ConfigurationError on schedule", err)
	}
}

func TestScheduleRetryConfigOnlyWhenTuned(t *testing.T) {
	ep, err := ScheduleOptions{Schedule: "every 5 minutes"}.Endpoint("fn")
	if err != nil {
		t.Fatalf("Endpoint failed: %v", err)
	}
	plain := ep.Trigger().(*manifest.ScheduleTrigger)
	if plain.RetryConfig != nil {
		t.Errorf("retryConfig set without tuning: %+v", plain.RetryConfig)
	}

	retries := 3
	ep, err = ScheduleOptions{Schedule: "every 5 minutes", RetryCount: &retries}.Endpoint("fn")
	if err != nil {
		t.Fatalf("Endpoint failed: %v", err)
	}
	tuned := ep.Trigger().(*manifest.ScheduleTrigger)
	if tuned.RetryConfig == nil || tuned.RetryConfig.RetryCount == nil || *tuned.RetryConfig.RetryCount != 3 {
		t.Errorf("retryConfig = %+v", tuned.RetryConfig)
	}
}

func TestEventarcDefaultsChannel(t *testing.T) {
	_, err := EventarcOptions{}.Endpoint("fn")
	var cfg *ConfigurationError
	if !errors.As(err, &cfg) || cfg.Field != "eventType" {
		t.Fatalf("err = %v, want ConfigurationError on eventType", err)
	}

	ep, err := EventarcOptions{EventType: "com.example.order.created"}.Endpoint("fn")
	if err != nil {
		t.Fatalf("Endpoint failed: %v", err)
	}
	trigger := eventTriggerOf(t, ep)
	if trigger.Channel != DefaultChannel {
		t.Errorf("channel = %q, want %q", trigger.Channel, DefaultChannel)
	}
}

func TestAlertFilters(t *testing.T) {
	_, err := AlertOptions{}.Endpoint("fn")
	var cfg *ConfigurationError
	if !errors.As(err, &cfg) || cfg.Field != "alertType" {
		t.Fatalf("err = %v, want ConfigurationError on alertType", err)
	}

	ep, err := AlertOptions{AlertType: "crashlytics.newFatalIssue", AppID: "1:234:android:abc"}.Endpoint("fn")
	if err != nil {
		t.Fatalf("Endpoint failed: %v", err)
	}
	trigger := eventTriggerOf(t, ep)
	want := map[string]string{"alerttype": "crashlytics.newFatalIssue", "appid": "1:234:android:abc"}
	if !reflect.DeepEqual(trigger.EventFilters, want) {
		t.Errorf("eventFilters = %v, want %v", trigger.EventFilters, want)
	}
}

func TestDataConnectFilterSplit(t *testing.T) {
	ep, err := DataConnectOptions{
		Service:   "service-id",
		Connector: "connector-id",
		Operation: "mutation-name",
	}.Endpoint("fn")
	if err != nil {
		t.Fatalf("Endpoint failed: %v", err)
	}
	trigger := eventTriggerOf(t, ep)
	if trigger.EventType != EventTypeMutationExecuted {
		t.Errorf("eventType = %q", trigger.EventType)
	}
	want := map[string]string{
		"service":   "service-id",
		"connector": "connector-id",
		"operation": "mutation-name",
	}
	if !reflect.DeepEqual(trigger.EventFilters, want) {
		t.Errorf("eventFilters = %v, want %v", trigger.EventFilters, want)
	}
	if trigger.EventFilterPathPatterns != nil {
		t.Errorf("eventFilterPathPatterns = %v, want none", trigger.EventFilterPathPatterns)
	}
}

func TestDataConnectCapturesBecomePathPatterns(t *testing.T) {
	ep, err := DataConnectOptions{
		Service:   "{service}",
		Connector: "*",
		Operation: "mutation-name",
	}.Endpoint("fn")
	if err != nil {
		t.Fatalf("Endpoint failed: %v", err)
	}
	trigger := eventTriggerOf(t, ep)
	wantPatterns := map[string]string{"service": "{service}", "connector": "*"}
	if !reflect.DeepEqual(trigger.EventFilterPathPatterns, wantPatterns) {
		t.Errorf("eventFilterPathPatterns = %v, want %v", trigger.EventFilterPathPatterns, wantPatterns)
	}
	if !reflect.DeepEqual(trigger.EventFilters, map[string]string{"operation": "mutation-name"}) {
		t.Errorf("eventFilters = %v", trigger.EventFilters)
	}
}

func TestDataConnectAllFieldsOptional(t *testing.T) {
	ep, err := DataConnectOptions{}.Endpoint("fn")
	if err != nil {
		t.Fatalf("Endpoint failed: %v", err)
	}
	trigger := eventTriggerOf(t, ep)
	if trigger.EventFilters != nil || trigger.EventFilterPathPatterns != nil {
		t.Errorf("unfiltered trigger carries filters: %v %v",
			trigger.EventFilters, trigger.EventFilterPathPatterns)
	}
}

func TestTaskQueueInvokerValidation(t *testing.T) {
	_, err := TaskQueueOptions{Invoker: []string{"private", "a@p.iam.gserviceaccount.com"}}.Endpoint("fn")
	var cfg *ConfigurationError
	if !errors.As(err, &cfg) || cfg.Field != "invoker" {
		t.Fatalf("err = %v, want ConfigurationError on invoker", err)
	}
}

func TestBlockingEndpointOptions(t *testing.T) {
	ep, err := BlockingOptions{IDToken: true}.Endpoint("fn", EventTypeBeforeUserSignedIn)
	if err != nil {
		t.Fatalf("Endpoint failed: %v", err)
	}
	trigger, ok := ep.Trigger().(*manifest.BlockingTrigger)
	if !ok {
		t.Fatalf("trigger = %T", ep.Trigger())
	}
	if trigger.EventType != EventTypeBeforeUserSignedIn {
		t.Errorf("eventType = %q", trigger.EventType)
	}
	if trigger.Options == nil || !trigger.Options.IDToken || trigger.Options.AccessToken {
		t.Errorf("options = %+v", trigger.Options)
	}
}
