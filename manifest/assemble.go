// Where: manifest/assemble.go
// What: Turns registered endpoints into the manifest document.
// Why: Centralize default merging and required-API derivation so the
//      output only depends on registry content, never on declaration
//      side effects.
package manifest

import (
	"fmt"
	"sort"
	"strings"
)

// Entry pairs an endpoint with its stable identifier. Slices of entries
// are expected in declaration order.
type Entry struct {
	ID       string
	Endpoint *Endpoint
}

const (
	apiScheduler       = "cloudscheduler.googleapis.com"
	apiPubSub          = "pubsub.googleapis.com"
	apiTasks           = "cloudtasks.googleapis.com"
	apiIdentityToolkit = "identitytoolkit.googleapis.com"
	apiEventarc        = "eventarcpublishing.googleapis.com"
	apiFirestore       = "firestore.googleapis.com"
	apiDatabase        = "firebasedatabase.googleapis.com"
	apiStorage         = "storage.googleapis.com"
)

// eventFamilyAPIs maps an event-type prefix to the platform APIs the
// trigger needs. Families present with a nil slice are known but need
// no API beyond the default event delivery.
var eventFamilyAPIs = map[string][]RequiredAPI{
	"google.cloud.firestore.":         {{API: apiFirestore, Reason: "Needed for Firestore-triggered functions"}},
	"google.cloud.pubsub.":            {{API: apiPubSub, Reason: "Needed for Pub/Sub-triggered functions"}},
	"google.firebase.database.":       {{API: apiDatabase, Reason: "Needed for Realtime Database-triggered functions"}},
	"google.cloud.storage.":           {{API: apiStorage, Reason: "Needed for Cloud Storage-triggered functions"}},
	"google.firebase.dataconnect.":    nil,
	"google.firebase.firebasealerts.": nil,
	"google.firebase.remoteconfig.":   nil,
	"google.firebase.testlab.":        nil,
	"firebase.extensions.":            nil,
}

// Assemble merges global defaults into every endpoint, derives the
// required platform APIs, and returns the manifest document. The input
// is never mutated; calling Assemble twice on the same snapshot yields
// equal stacks.
func Assemble(entries []Entry, params []ParamSpec, globals GlobalOptions) (*Stack, error) {
	endpoints := make(map[string]*Endpoint, len(entries))
	ids := make([]string, 0, len(entries))
	for _, entry := range entries {
		if _, ok := endpoints[entry.ID]; ok {
			return nil, fmt.Errorf("assemble: duplicate endpoint id %q in snapshot", entry.ID)
		}
		if entry.Endpoint == nil {
			return nil, fmt.Errorf("assemble: endpoint %q is nil", entry.ID)
		}
		if entry.Endpoint.Trigger() == nil {
			return nil, fmt.Errorf("assemble: endpoint %q has no trigger", entry.ID)
		}
		endpoints[entry.ID] = mergeGlobals(entry.Endpoint, globals)
		ids = append(ids, entry.ID)
	}

	sort.Strings(ids)
	var collected []RequiredAPI
	for _, id := range ids {
		apis, err := requiredAPIsFor(id, endpoints[id].Trigger())
		if err != nil {
			return nil, err
		}
		collected = append(collected, apis...)
	}

	stack := &Stack{
		SpecVersion:  SpecVersion,
		Endpoints:    endpoints,
		RequiredAPIs: mergeRequiredAPIs(collected),
		Params:       append([]ParamSpec(nil), params...),
	}
	return stack, nil
}

// mergeGlobals applies the documented precedence: explicit call-site
// value > global default > hard fallback. Works on a clone; the
// registered endpoint stays untouched.
func mergeGlobals(ep *Endpoint, globals GlobalOptions) *Endpoint {
	out := ep.Clone()

	if len(out.Region) == 0 {
		if len(globals.Region) > 0 {
			out.Region = append([]string(nil), globals.Region...)
		} else {
			out.Region = []string{DefaultRegion}
		}
	}
	if out.AvailableMemoryMB == nil && globals.AvailableMemoryMB > 0 {
		mem := globals.AvailableMemoryMB
		out.AvailableMemoryMB = &mem
	}
	if out.TimeoutSeconds == nil && globals.TimeoutSeconds > 0 {
		timeout := globals.TimeoutSeconds
		out.TimeoutSeconds = &timeout
	}
	if out.MinInstances == nil && globals.MinInstances != nil {
		out.MinInstances = cloneInt(globals.MinInstances)
	}
	if out.MaxInstances == nil && globals.MaxInstances != nil {
		out.MaxInstances = cloneInt(globals.MaxInstances)
	}
	if out.ServiceAccountEmail == "" {
		out.ServiceAccountEmail = globals.ServiceAccount
	}
	if len(globals.Labels) > 0 {
		labels := make(map[string]string, len(globals.Labels)+len(out.Labels))
		for k, v := range globals.Labels {
			labels[k] = v
		}
		for k, v := range out.Labels {
			labels[k] = v
		}
		out.Labels = labels
	}
	return out
}

// requiredAPIsFor resolves a trigger variant to its backing APIs using
// the static table. Unknown variants fail the whole assembly.
func requiredAPIsFor(id string, trigger Trigger) ([]RequiredAPI, error) {
	switch t := trigger.(type) {
	case *HTTPSTrigger, *CallableTrigger:
		return nil, nil
	case *ScheduleTrigger:
		return []RequiredAPI{
			{API: apiScheduler, Reason: "Needed for scheduled functions."},
			{API: apiPubSub, Reason: "Needed for scheduled functions."},
		}, nil
	case *TaskQueueTrigger:
		return []RequiredAPI{{API: apiTasks, Reason: "Needed for task queue functions"}}, nil
	case *BlockingTrigger:
		return []RequiredAPI{{API: apiIdentityToolkit, Reason: "Needed for auth blocking functions"}}, nil
	case *EventTrigger:
		if t.Channel != "" {
			return []RequiredAPI{{API: apiEventarc, Reason: "Needed for custom event functions"}}, nil
		}
		for prefix, apis := range eventFamilyAPIs {
			if strings.HasPrefix(t.EventType, prefix) {
				return apis, nil
			}
		}
		return nil, &UnsupportedTriggerError{ID: id, Kind: t.Kind(), EventType: t.EventType}
	default:
		kind := "<nil>"
		if trigger != nil {
			kind = trigger.Kind()
		}
		return nil, &UnsupportedTriggerError{ID: id, Kind: kind}
	}
}

// mergeRequiredAPIs deduplicates by API, joining unique reasons, and
// sorts by API name for deterministic output.
func mergeRequiredAPIs(apis []RequiredAPI) []RequiredAPI {
	reasons := make(map[string][]string)
	for _, entry := range apis {
		if !contains(reasons[entry.API], entry.Reason) {
			reasons[entry.API] = append(reasons[entry.API], entry.Reason)
		}
	}
	merged := make([]RequiredAPI, 0, len(reasons))
	for api, apiReasons := range reasons {
		merged = append(merged, RequiredAPI{API: api, Reason: strings.Join(apiReasons, " ")})
	}
	sort.Slice(merged, func(i, j int) bool { return merged[i].API < merged[j].API })
	return merged
}

func contains(values []string, want string) bool {
	for _, value := range values {
		if value == want {
			return true
		}
	}
	return false
}
