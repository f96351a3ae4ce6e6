// Where: options/runtime.go
// What: Options common to every function declaration.
// Why: One validated record normalizes into the endpoint fields shared
//      by all trigger kinds.
package options

import (
	"strconv"

	"github.com/cloudlet-dev/functions/manifest"
)

// MemoryOption is the memory allocation for a function, in MiB.
type MemoryOption int

// Memory allocations supported by the platform.
const (
	MB128 MemoryOption = 128
	MB256 MemoryOption = 256
	MB512 MemoryOption = 512
	GB1   MemoryOption = 1 << 10
	GB2   MemoryOption = 2 << 10
	GB4   MemoryOption = 4 << 10
	GB8   MemoryOption = 8 << 10
	GB16  MemoryOption = 16 << 10
	GB32  MemoryOption = 32 << 10
)

var validMemory = map[MemoryOption]bool{
	MB128: true, MB256: true, MB512: true,
	GB1: true, GB2: true, GB4: true, GB8: true, GB16: true, GB32: true,
}

// IngressSetting controls what kind of traffic can reach a function.
type IngressSetting string

const (
	AllowAll             IngressSetting = "ALLOW_ALL"
	AllowInternalOnly    IngressSetting = "ALLOW_INTERNAL_ONLY"
	AllowInternalAndGCLB IngressSetting = "ALLOW_INTERNAL_AND_GCLB"
)

// VPCEgressSetting controls which outbound traffic uses the connector.
type VPCEgressSetting string

const (
	PrivateRangesOnly VPCEgressSetting = "PRIVATE_RANGES_ONLY"
	AllTraffic        VPCEgressSetting = "ALL_TRAFFIC"
)

const (
	maxTimeoutSeconds = 3600
	maxConcurrency    = 1000
)

// RuntimeOptions can be set on any function declaration. The zero value
// means "platform default" for every field.
type RuntimeOptions struct {
	// Region lists deployment regions in order. HTTP functions may
	// name more than one.
	Region []string

	// Memory is the allocation per instance; zero keeps the default.
	Memory MemoryOption

	// TimeoutSeconds is the invocation deadline, 1 to 3600.
	TimeoutSeconds int

	MinInstances *int
	MaxInstances *int

	// Concurrency is how many requests one instance serves at once,
	// 1 to 1000. Values above 1 require at least one full CPU.
	Concurrency int

	// CPU is a fractional CPU count such as "0.5" or "2", or
	// manifest.CPUGen1 for the first generation fixed allocation.
	CPU string

	VPCConnector               string
	VPCConnectorEgressSettings VPCEgressSetting

	ServiceAccount string
	Ingress        IngressSetting

	Labels               map[string]string
	EnvironmentVariables map[string]string

	// Secrets holds secret reference names bound as environment
	// variables; passed through untouched.
	Secrets []string

	// RuntimeMode tells the hosting runtime how to invoke the handler.
	// Empty means sync.
	RuntimeMode manifest.RuntimeMode
}

// Validate checks every common field. Pure; no defaults are filled
// here, the assembler merges those later.
func (o RuntimeOptions) Validate() error {
	for _, region := range o.Region {
		if region == "" {
			return errField("region", "region names must be non-empty")
		}
	}
	if o.Memory != 0 && !validMemory[o.Memory] {
		return errField("memory", "unsupported allocation %dMiB", int(o.Memory))
	}
	if o.TimeoutSeconds < 0 || o.TimeoutSeconds > maxTimeoutSeconds {
		return errField("timeoutSeconds", "must be between 1 and %d", maxTimeoutSeconds)
	}
	if o.MinInstances != nil && *o.MinInstances < 0 {
		return errField("minInstances", "must not be negative")
	}
	if o.MaxInstances != nil && *o.MaxInstances < 0 {
		return errField("maxInstances", "must not be negative")
	}
	if o.MinInstances != nil && o.MaxInstances != nil && *o.MaxInstances < *o.MinInstances {
		return errField("maxInstances", "must be >= minInstances (%d)", *o.MinInstances)
	}
	if o.Concurrency < 0 || o.Concurrency > maxConcurrency {
		return errField("concurrency", "must be between 1 and %d", maxConcurrency)
	}
	cpu, err := o.cpuCount()
	if err != nil {
		return err
	}
	if o.Concurrency > 1 && cpu > 0 && cpu < 1 {
		return errField("concurrency", "cannot exceed 1 when cpu is below 1")
	}
	switch o.Ingress {
	case "", AllowAll, AllowInternalOnly, AllowInternalAndGCLB:
	default:
		return errField("ingress", "unknown setting %q", string(o.Ingress))
	}
	switch o.VPCConnectorEgressSettings {
	case "", PrivateRangesOnly, AllTraffic:
	default:
		return errField("vpcConnectorEgressSettings", "unknown setting %q", string(o.VPCConnectorEgressSettings))
	}
	if o.VPCConnectorEgressSettings != "" && o.VPCConnector == "" {
		return errField("vpcConnector", "required when egress settings are set")
	}
	switch o.RuntimeMode {
	case "", manifest.RuntimeSync, manifest.RuntimeAsync:
	default:
		return errField("runtimeMode", "unknown mode %q", string(o.RuntimeMode))
	}
	for _, secret := range o.Secrets {
		if secret == "" {
			return errField("secrets", "secret references must be non-empty")
		}
	}
	return nil
}

// cpuCount parses the CPU field; zero means unset. The gcf_gen1
// literal is treated as a full CPU for concurrency checks.
func (o RuntimeOptions) cpuCount() (float64, error) {
	if o.CPU == "" {
		return 0, nil
	}
	if o.CPU == manifest.CPUGen1 {
		return 1, nil
	}
	count, err := strconv.ParseFloat(o.CPU, 64)
	if err != nil || count <= 0 {
		return 0, errField("cpu", "must be a positive CPU count or %q", manifest.CPUGen1)
	}
	return count, nil
}

// endpoint builds the trigger-less endpoint carrying every common
// field. Callers attach the trigger variant afterwards.
func (o RuntimeOptions) endpoint(entryPoint string) *manifest.Endpoint {
	ep := manifest.NewEndpoint(entryPoint)
	ep.Region = append([]string(nil), o.Region...)
	if o.Memory != 0 {
		mem := int(o.Memory)
		ep.AvailableMemoryMB = &mem
	}
	if o.TimeoutSeconds != 0 {
		timeout := o.TimeoutSeconds
		ep.TimeoutSeconds = &timeout
	}
	if o.MinInstances != nil {
		min := *o.MinInstances
		ep.MinInstances = &min
	}
	if o.MaxInstances != nil {
		max := *o.MaxInstances
		ep.MaxInstances = &max
	}
	if o.Concurrency != 0 {
		concurrency := o.Concurrency
		ep.Concurrency = &concurrency
	}
	ep.CPU = o.CPU
	ep.ServiceAccountEmail = o.ServiceAccount
	ep.IngressSettings = string(o.Ingress)
	if len(o.Labels) > 0 {
		labels := make(map[string]string, len(o.Labels))
		for k, v := range o.Labels {
			labels[k] = v
		}
		ep.Labels = labels
	}
	if len(o.EnvironmentVariables) > 0 {
		env := make(map[string]string, len(o.EnvironmentVariables))
		for k, v := range o.EnvironmentVariables {
			env[k] = v
		}
		ep.EnvironmentVariables = env
	}
	for _, secret := range o.Secrets {
		ep.SecretEnvironmentVariables = append(ep.SecretEnvironmentVariables,
			manifest.SecretEnvVar{Key: secret})
	}
	if o.VPCConnector != "" {
		ep.VPC = &manifest.VPCSettings{
			Connector:      o.VPCConnector,
			EgressSettings: string(o.VPCConnectorEgressSettings),
		}
	}
	ep.RuntimeMode = o.RuntimeMode
	if ep.RuntimeMode == "" {
		ep.RuntimeMode = manifest.RuntimeSync
	}
	return ep
}
