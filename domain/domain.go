package domain

import (
	"net"
	"strconv"
)

// ServiceType identifies a logical backend service the gateway fronts.
type ServiceType string

const (
	// ServiceUser is the user account/goal backend.
	ServiceUser ServiceType = "user"
	// ServiceActivity is the workout activity backend.
	ServiceActivity ServiceType = "activity"
)

// ServiceInstance is one network-addressable replica of a backend service.
// Immutable once configured; identity is Host:Port within a service type.
type ServiceInstance struct {
	Host string
	Port int
}

// Address returns the dialable "host:port" form of the instance.
// For inst: Host and Port come from the static YAML config and never change at runtime.
// Returns: string usable with grpc.NewClient.
// Called from service.failoverInvoker when dialing and when keying the unhealthy set.
func (inst ServiceInstance) Address() string {
	return net.JoinHostPort(inst.Host, strconv.Itoa(inst.Port))
}
