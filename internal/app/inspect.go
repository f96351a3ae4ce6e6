// Where: internal/app/inspect.go
// What: The inspect command.
// Why: A quick answer to "what would this manifest deploy".
package app

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	sigsyaml "sigs.k8s.io/yaml"

	"github.com/cloudlet-dev/functions/internal/value"
)

// triggerKeys in the order they are reported; exactly one is present on
// a valid endpoint.
var triggerKeys = []string{
	"httpsTrigger",
	"callableTrigger",
	"eventTrigger",
	"scheduleTrigger",
	"blockingTrigger",
	"taskQueueTrigger",
}

type endpointSummary struct {
	ID         string   `json:"id"`
	Trigger    string   `json:"trigger"`
	EventType  string   `json:"eventType,omitempty"`
	Region     []string `json:"region"`
	MemoryMB   int      `json:"memoryMb,omitempty"`
	EntryPoint string   `json:"entryPoint"`
}

func runInspect(cli CLI, deps Dependencies, out io.Writer) int {
	path := resolvePath(deps, cli.Inspect.Path)
	content, err := os.ReadFile(path)
	if err != nil {
		return exitWithError(out, err)
	}

	jsonData, err := sigsyaml.YAMLToJSON(content)
	if err != nil {
		return exitWithError(out, err)
	}
	var doc map[string]any
	if err := json.Unmarshal(jsonData, &doc); err != nil {
		return exitWithError(out, err)
	}

	summaries := summarize(value.AsMap(doc["endpoints"]))
	if cli.Inspect.JSON {
		encoded, err := json.MarshalIndent(summaries, "", "  ")
		if err != nil {
			return exitWithError(out, err)
		}
		fmt.Fprintln(out, string(encoded))
		return 0
	}

	fmt.Fprintf(out, "specVersion: %s\n", value.AsStringDefault(doc["specVersion"], "?"))
	fmt.Fprintf(out, "endpoints: %d\n", len(summaries))
	for _, s := range summaries {
		line := fmt.Sprintf("  %-24s %-16s %s", s.ID, s.Trigger, strings.Join(s.Region, ","))
		if s.EventType != "" {
			line += "  " + s.EventType
		}
		if s.MemoryMB > 0 {
			line += fmt.Sprintf("  %dMiB", s.MemoryMB)
		}
		fmt.Fprintln(out, line)
	}
	for _, api := range value.AsSlice(doc["requiredAPIs"]) {
		entry := value.AsMap(api)
		fmt.Fprintf(out, "requires: %s\n", value.AsString(entry["api"]))
	}
	for _, param := range value.AsSlice(doc["params"]) {
		entry := value.AsMap(param)
		name := value.AsString(entry["name"])
		fmt.Fprintf(out, "param: %s (%s) = %s\n",
			name, value.AsString(entry["type"]), resolveParam(name, entry))
	}
	return 0
}

// resolveParam mirrors deploy-time resolution locally: the environment
// wins, then the declared default. Secrets never print a value.
func resolveParam(name string, entry map[string]any) string {
	if value.AsString(entry["type"]) == "secret" {
		return "<secret>"
	}
	if env, ok := os.LookupEnv(name); ok {
		return env
	}
	if def, ok := entry["default"]; ok && def != nil {
		return fmt.Sprintf("%v", def)
	}
	return "<unset>"
}

func summarize(endpoints map[string]any) []endpointSummary {
	ids := make([]string, 0, len(endpoints))
	for id := range endpoints {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	summaries := make([]endpointSummary, 0, len(ids))
	for _, id := range ids {
		wire := value.AsMap(endpoints[id])
		s := endpointSummary{
			ID:         id,
			Trigger:    "?",
			Region:     value.AsStringSlice(wire["region"]),
			MemoryMB:   value.AsInt(wire["availableMemoryMb"]),
			EntryPoint: value.AsString(wire["entryPoint"]),
		}
		for _, key := range triggerKeys {
			trigger, ok := wire[key]
			if !ok {
				continue
			}
			s.Trigger = strings.TrimSuffix(key, "Trigger")
			s.EventType = value.AsString(value.AsMap(trigger)["eventType"])
			break
		}
		summaries = append(summaries, s)
	}
	return summaries
}
