// Where: manifest/encode.go
// What: Wire serialization of the manifest document.
// Why: The deployment tool diffs successive manifests; identical stacks
//      must serialize to byte-identical output.
package manifest

import (
	"encoding/json"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// endpointWire is the flat serialization shape of an endpoint. Exactly
// one trigger field is set by toWire; the field order matches the
// sorted-key output the deployment tool expects.
type endpointWire struct {
	AvailableMemoryMB          *int              `json:"availableMemoryMb,omitempty" yaml:"availableMemoryMb,omitempty"`
	BlockingTrigger            *BlockingTrigger  `json:"blockingTrigger,omitempty" yaml:"blockingTrigger,omitempty"`
	CallableTrigger            *CallableTrigger  `json:"callableTrigger,omitempty" yaml:"callableTrigger,omitempty"`
	Concurrency                *int              `json:"concurrency,omitempty" yaml:"concurrency,omitempty"`
	CPU                        any               `json:"cpu,omitempty" yaml:"cpu,omitempty"`
	EntryPoint                 string            `json:"entryPoint" yaml:"entryPoint"`
	EnvironmentVariables       map[string]string `json:"environmentVariables,omitempty" yaml:"environmentVariables,omitempty"`
	EventTrigger               *EventTrigger     `json:"eventTrigger,omitempty" yaml:"eventTrigger,omitempty"`
	HTTPSTrigger               *HTTPSTrigger     `json:"httpsTrigger,omitempty" yaml:"httpsTrigger,omitempty"`
	IngressSettings            string            `json:"ingressSettings,omitempty" yaml:"ingressSettings,omitempty"`
	Labels                     map[string]string `json:"labels,omitempty" yaml:"labels,omitempty"`
	MaxInstances               *int              `json:"maxInstances,omitempty" yaml:"maxInstances,omitempty"`
	MinInstances               *int              `json:"minInstances,omitempty" yaml:"minInstances,omitempty"`
	Platform                   string            `json:"platform" yaml:"platform"`
	Region                     []string          `json:"region" yaml:"region"`
	RuntimeMode                string            `json:"runtimeMode,omitempty" yaml:"runtimeMode,omitempty"`
	ScheduleTrigger            *ScheduleTrigger  `json:"scheduleTrigger,omitempty" yaml:"scheduleTrigger,omitempty"`
	SecretEnvironmentVariables []SecretEnvVar    `json:"secretEnvironmentVariables,omitempty" yaml:"secretEnvironmentVariables,omitempty"`
	ServiceAccountEmail        string            `json:"serviceAccountEmail,omitempty" yaml:"serviceAccountEmail,omitempty"`
	TaskQueueTrigger           *TaskQueueTrigger `json:"taskQueueTrigger,omitempty" yaml:"taskQueueTrigger,omitempty"`
	TimeoutSeconds             *int              `json:"timeoutSeconds,omitempty" yaml:"timeoutSeconds,omitempty"`
	VPC                        *VPCSettings      `json:"vpc,omitempty" yaml:"vpc,omitempty"`
}

type stackWire struct {
	Endpoints    map[string]endpointWire `json:"endpoints" yaml:"endpoints"`
	Params       []ParamSpec             `json:"params" yaml:"params"`
	RequiredAPIs []RequiredAPI           `json:"requiredAPIs" yaml:"requiredAPIs"`
	SpecVersion  string                  `json:"specVersion" yaml:"specVersion"`
}

func toWire(ep *Endpoint) (endpointWire, error) {
	wire := endpointWire{
		AvailableMemoryMB:          ep.AvailableMemoryMB,
		Concurrency:                ep.Concurrency,
		EntryPoint:                 ep.EntryPoint,
		EnvironmentVariables:       ep.EnvironmentVariables,
		IngressSettings:            ep.IngressSettings,
		Labels:                     ep.Labels,
		MaxInstances:               ep.MaxInstances,
		MinInstances:               ep.MinInstances,
		Platform:                   ep.Platform,
		Region:                     ep.Region,
		SecretEnvironmentVariables: ep.SecretEnvironmentVariables,
		ServiceAccountEmail:        ep.ServiceAccountEmail,
		TimeoutSeconds:             ep.TimeoutSeconds,
		VPC:                        ep.VPC,
	}

	if ep.CPU != "" {
		if count, err := strconv.Atoi(ep.CPU); err == nil {
			wire.CPU = count
		} else if count, err := strconv.ParseFloat(ep.CPU, 64); err == nil {
			wire.CPU = count
		} else {
			wire.CPU = ep.CPU
		}
	}
	// Sync is the default invocation mode and stays off the wire for
	// backward compatible output.
	if ep.RuntimeMode == RuntimeAsync {
		wire.RuntimeMode = string(RuntimeAsync)
	}

	switch t := ep.Trigger().(type) {
	case *HTTPSTrigger:
		wire.HTTPSTrigger = t
	case *CallableTrigger:
		wire.CallableTrigger = t
	case *EventTrigger:
		wire.EventTrigger = t
	case *ScheduleTrigger:
		wire.ScheduleTrigger = t
	case *BlockingTrigger:
		wire.BlockingTrigger = t
	case *TaskQueueTrigger:
		wire.TaskQueueTrigger = t
	default:
		return endpointWire{}, fmt.Errorf("endpoint %q has no trigger", ep.EntryPoint)
	}
	return wire, nil
}

func (s *Stack) wire() (stackWire, error) {
	endpoints := make(map[string]endpointWire, len(s.Endpoints))
	for id, ep := range s.Endpoints {
		wire, err := toWire(ep)
		if err != nil {
			return stackWire{}, err
		}
		endpoints[id] = wire
	}
	params := s.Params
	if params == nil {
		params = []ParamSpec{}
	}
	apis := s.RequiredAPIs
	if apis == nil {
		apis = []RequiredAPI{}
	}
	return stackWire{
		Endpoints:    endpoints,
		Params:       params,
		RequiredAPIs: apis,
		SpecVersion:  s.SpecVersion,
	}, nil
}

// EncodeYAML serializes the stack as functions.yaml bytes. Map keys are
// emitted in sorted order, so equal stacks produce identical bytes.
func (s *Stack) EncodeYAML() ([]byte, error) {
	wire, err := s.wire()
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(wire)
}

// EncodeJSON serializes the stack as JSON with the same key ordering
// guarantees as EncodeYAML.
func (s *Stack) EncodeJSON() ([]byte, error) {
	wire, err := s.wire()
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(wire, "", "  ")
}
