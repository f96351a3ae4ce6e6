// Where: manifest/trigger.go
// What: Trigger variant definitions for manifest endpoints.
// Why: Model the trigger union as a closed set of types so an endpoint
//      can never carry two trigger shapes at once.
package manifest

// Trigger identifies what event source invokes an endpoint. Exactly one
// trigger is attached to an endpoint; the concrete type selects the key
// the variant is serialized under.
type Trigger interface {
	// Kind returns the wire key of the variant, e.g. "httpsTrigger".
	Kind() string
}

// HTTPSTrigger marks an endpoint invoked by arbitrary HTTPS requests.
type HTTPSTrigger struct {
	// Invoker lists service accounts allowed to call the function.
	// Empty means "make public" on create.
	Invoker []string `json:"invoker,omitempty" yaml:"invoker,omitempty"`
}

// CallableTrigger marks an endpoint invoked through the callable RPC
// protocol layered over HTTPS.
type CallableTrigger struct{}

// EventTrigger marks an endpoint invoked by CloudEvents published by
// another system.
type EventTrigger struct {
	EventType               string            `json:"eventType" yaml:"eventType"`
	EventFilters            map[string]string `json:"eventFilters,omitempty" yaml:"eventFilters,omitempty"`
	EventFilterPathPatterns map[string]string `json:"eventFilterPathPatterns,omitempty" yaml:"eventFilterPathPatterns,omitempty"`
	Channel                 string            `json:"channel,omitempty" yaml:"channel,omitempty"`
	Retry                   bool              `json:"retry" yaml:"retry"`
}

// ScheduleRetryConfig tunes retry behavior for scheduled runs.
type ScheduleRetryConfig struct {
	RetryCount        *int `json:"retryCount,omitempty" yaml:"retryCount,omitempty"`
	MaxRetrySeconds   *int `json:"maxRetrySeconds,omitempty" yaml:"maxRetrySeconds,omitempty"`
	MaxBackoffSeconds *int `json:"maxBackoffSeconds,omitempty" yaml:"maxBackoffSeconds,omitempty"`
	MaxDoublings      *int `json:"maxDoublings,omitempty" yaml:"maxDoublings,omitempty"`
	MinBackoffSeconds *int `json:"minBackoffSeconds,omitempty" yaml:"minBackoffSeconds,omitempty"`
}

// ScheduleTrigger marks an endpoint invoked on a cron-like schedule.
type ScheduleTrigger struct {
	Schedule    string               `json:"schedule" yaml:"schedule"`
	TimeZone    string               `json:"timeZone,omitempty" yaml:"timeZone,omitempty"`
	RetryConfig *ScheduleRetryConfig `json:"retryConfig,omitempty" yaml:"retryConfig,omitempty"`
}

// BlockingTriggerOptions selects which credentials are forwarded to an
// auth blocking function.
type BlockingTriggerOptions struct {
	IDToken      bool `json:"idToken" yaml:"idToken"`
	AccessToken  bool `json:"accessToken" yaml:"accessToken"`
	RefreshToken bool `json:"refreshToken" yaml:"refreshToken"`
}

// BlockingTrigger marks an endpoint invoked synchronously before an
// auth operation completes.
type BlockingTrigger struct {
	EventType string                  `json:"eventType" yaml:"eventType"`
	Options   *BlockingTriggerOptions `json:"options,omitempty" yaml:"options,omitempty"`
}

// TaskRetryConfig tunes retry behavior for dispatched tasks.
type TaskRetryConfig struct {
	MaxAttempts       *int `json:"maxAttempts,omitempty" yaml:"maxAttempts,omitempty"`
	MaxRetrySeconds   *int `json:"maxRetrySeconds,omitempty" yaml:"maxRetrySeconds,omitempty"`
	MaxBackoffSeconds *int `json:"maxBackoffSeconds,omitempty" yaml:"maxBackoffSeconds,omitempty"`
	MaxDoublings      *int `json:"maxDoublings,omitempty" yaml:"maxDoublings,omitempty"`
	MinBackoffSeconds *int `json:"minBackoffSeconds,omitempty" yaml:"minBackoffSeconds,omitempty"`
}

// TaskRateLimits caps how fast tasks are dispatched to an endpoint.
type TaskRateLimits struct {
	MaxConcurrentDispatches *int `json:"maxConcurrentDispatches,omitempty" yaml:"maxConcurrentDispatches,omitempty"`
	MaxDispatchesPerSecond  *int `json:"maxDispatchesPerSecond,omitempty" yaml:"maxDispatchesPerSecond,omitempty"`
}

// TaskQueueTrigger marks an endpoint invoked by a task queue dispatch.
type TaskQueueTrigger struct {
	RetryConfig *TaskRetryConfig `json:"retryConfig,omitempty" yaml:"retryConfig,omitempty"`
	RateLimits  *TaskRateLimits  `json:"rateLimits,omitempty" yaml:"rateLimits,omitempty"`
}

func (*HTTPSTrigger) Kind() string     { return "httpsTrigger" }
func (*CallableTrigger) Kind() string  { return "callableTrigger" }
func (*EventTrigger) Kind() string     { return "eventTrigger" }
func (*ScheduleTrigger) Kind() string  { return "scheduleTrigger" }
func (*BlockingTrigger) Kind() string  { return "blockingTrigger" }
func (*TaskQueueTrigger) Kind() string { return "taskQueueTrigger" }
