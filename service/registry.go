package service

import (
	"sync"

	"fitgateway/domain"
	"fitgateway/helpers"
	"fitgateway/interfaces"
)

// serviceRegistry implements interfaces.ServiceRegistry. It keeps the static,
// ordered instance list per service type and a mutex-guarded set of instance
// addresses currently marked unhealthy. Selection is deterministic: NextHealthy
// walks the configured order and returns the first address not in the set.
// Health is binary and global per service type — ResetHealth clears every mark
// for the type, so one transient success forgives all previously failed
// instances of that type.
type serviceRegistry struct {
	instances map[domain.ServiceType][]domain.ServiceInstance

	mu        sync.Mutex
	unhealthy map[domain.ServiceType]map[string]struct{}
}

// NewServiceRegistry validates the topology via domain.ValidateTopology and creates the registry. Panics on nil services map after validation (helpers.NilPanic).
//
// Parameter cfg — static topology (from YAML via cmd.LoadConfig).
//
// Returns: (interfaces.ServiceRegistry, nil) on success; (nil, error) on ValidateTopology error (*domain.TopologyError).
//
// Called from cmd/main at startup.
func NewServiceRegistry(cfg domain.TopologyConfig) (interfaces.ServiceRegistry, error) {
	if err := domain.ValidateTopology(cfg); err != nil {
		return nil, err
	}
	instances := make(map[domain.ServiceType][]domain.ServiceInstance, len(cfg.Services))
	unhealthy := make(map[domain.ServiceType]map[string]struct{}, len(cfg.Services))
	for svc, list := range cfg.Services {
		copied := make([]domain.ServiceInstance, len(list))
		copy(copied, list)
		instances[svc] = copied
		unhealthy[svc] = make(map[string]struct{})
	}
	return &serviceRegistry{
		instances: helpers.NilPanic(instances, "service.registry.go: instances are required"),
		unhealthy: unhealthy,
	}, nil
}

// Instances returns a copy of the configured instance list for the service type in static order.
//
// Parameter service — backend service type; unknown type yields nil.
//
// Returns: fresh slice; mutating it does not affect the registry.
//
// Called from failoverInvoker and tests.
func (r *serviceRegistry) Instances(service domain.ServiceType) []domain.ServiceInstance {
	list := r.instances[service]
	if list == nil {
		return nil
	}
	out := make([]domain.ServiceInstance, len(list))
	copy(out, list)
	return out
}

// NextHealthy returns the first instance in configured order whose address is not in the unhealthy set. Read-only with respect to the set.
//
// Parameter service — backend service type.
//
// Returns: (instance, true) when a healthy instance exists; (zero, false) when all are marked unhealthy or the type is unknown.
//
// Called from failoverInvoker at request entry and after each instance failure.
func (r *serviceRegistry) NextHealthy(service domain.ServiceType) (domain.ServiceInstance, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	marked := r.unhealthy[service]
	for _, inst := range r.instances[service] {
		if _, bad := marked[inst.Address()]; !bad {
			return inst, true
		}
	}
	return domain.ServiceInstance{}, false
}

// MarkUnhealthy adds the instance address to the unhealthy set for the service type. Idempotent; unknown service types are ignored.
//
// Parameters: service — backend service type; inst — instance that exhausted its per-instance budget.
//
// Called from failoverInvoker when escalating to the next instance.
func (r *serviceRegistry) MarkUnhealthy(service domain.ServiceType, inst domain.ServiceInstance) {
	r.mu.Lock()
	defer r.mu.Unlock()
	marked := r.unhealthy[service]
	if marked == nil {
		return
	}
	marked[inst.Address()] = struct{}{}
}

// ResetHealth clears the whole unhealthy set for the service type. Full reset:
// success anywhere resets everywhere for the type.
//
// Parameter service — backend service type.
//
// Called from failoverInvoker after any successful call.
func (r *serviceRegistry) ResetHealth(service domain.ServiceType) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.unhealthy[service] == nil {
		return
	}
	r.unhealthy[service] = make(map[string]struct{})
}
