package domain

import (
	"fmt"
	"time"
)

// FailoverConfig bounds a single failover invocation: AttemptsPerInstance calls
// against one instance before it is declared failed, at most MaxInstances
// distinct instances per request, CallTimeout per attempt.
type FailoverConfig struct {
	AttemptsPerInstance int
	MaxInstances        int
	CallTimeout         time.Duration
}

// BreakerConfig tunes the circuit breaker guarding the solo workout-start path.
// FailureThreshold is the rolling failure ratio (0..1] that opens the circuit
// once at least MinRequests calls were observed in the current Window;
// ResetTimeout is how long the circuit stays open before a half-open trial.
type BreakerConfig struct {
	FailureThreshold float64
	MinRequests      uint32
	Window           time.Duration
	ResetTimeout     time.Duration
}

// TopologyConfig is the static instance list per backend service type.
// Order matters: NextHealthy selection follows configured order.
type TopologyConfig struct {
	Services map[ServiceType][]ServiceInstance
}

// ValidateTopology validates the static topology: both service types present
// with at least one instance each, every instance with non-empty host and port 1-65535.
//
// Parameter cfg — topology (usually from YAML via cmd.LoadConfig).
//
// Returns: nil when valid; *TopologyError naming the service type and reason on first error found.
//
// Called from service.NewServiceRegistry and cmd.LoadConfig before using the config.
func ValidateTopology(cfg TopologyConfig) error {
	for _, svc := range []ServiceType{ServiceUser, ServiceActivity} {
		instances, ok := cfg.Services[svc]
		if !ok || len(instances) == 0 {
			return &TopologyError{Service: svc, Reason: "at least one instance is required"}
		}
		for i, inst := range instances {
			if inst.Host == "" {
				return &TopologyError{Service: svc, Reason: fmt.Sprintf("instance[%d]: host must be non-empty", i)}
			}
			if inst.Port <= 0 || inst.Port > 65535 {
				return &TopologyError{Service: svc, Reason: fmt.Sprintf("instance[%d]: port must be 1-65535", i)}
			}
		}
	}
	for svc := range cfg.Services {
		if svc != ServiceUser && svc != ServiceActivity {
			return &TopologyError{Service: svc, Reason: "unknown service type"}
		}
	}
	return nil
}

// TopologyError is returned by ValidateTopology when the instance list for a service type is invalid.
type TopologyError struct {
	Service ServiceType
	Reason  string
}

// Error implements error; returns a string like "service user: host must be non-empty".
func (e *TopologyError) Error() string {
	return "service " + string(e.Service) + ": " + e.Reason
}
