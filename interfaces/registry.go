package interfaces

import "fitgateway/domain"

// ServiceRegistry holds, per backend service type, the static instance list and
// the mutable set of instances currently marked unhealthy. Health is binary and
// global per service type: ResetHealth clears every mark for the type, not just
// the instance that succeeded. Mutated only by the failover invoker.
//
// Implemented by service.serviceRegistry. Called from service.failoverInvoker on
// every invocation (selection, marking, reset).
//
//go:generate moq -stub -out mock/service_registry.go -pkg mock . ServiceRegistry
type ServiceRegistry interface {
	// Instances returns the configured instance list for the service type in static order.
	// Parameter service — backend service type (user|activity). Unknown type yields nil.
	// Returns: copy of the ordered instance slice; callers may not rely on mutating it.
	// Called from service.failoverInvoker and from tests asserting topology.
	Instances(service domain.ServiceType) []domain.ServiceInstance

	// NextHealthy returns the first instance in configured order that is not marked unhealthy.
	// Parameter service — backend service type. Read-only: no side effects on the unhealthy set.
	// Returns: (instance, true) when a healthy instance exists; (zero, false) when every instance is marked unhealthy or the type is unknown.
	// Called from service.failoverInvoker at request entry and after each instance is declared failed.
	NextHealthy(service domain.ServiceType) (domain.ServiceInstance, bool)

	// MarkUnhealthy adds the instance to the unhealthy set for the service type. Idempotent.
	// Parameters: service — backend service type; inst — instance that exhausted its per-instance retry budget.
	// Called from service.failoverInvoker when escalating to the next instance.
	MarkUnhealthy(service domain.ServiceType, inst domain.ServiceInstance)

	// ResetHealth clears the whole unhealthy set for the service type (full reset, not per-instance).
	// Parameter service — backend service type whose marks are cleared.
	// Called from service.failoverInvoker after any successful call against the type.
	ResetHealth(service domain.ServiceType)
}
