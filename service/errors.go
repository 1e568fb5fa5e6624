package service

import "errors"

// ErrNoAvailableInstance is returned by the failover invoker when every
// instance of the service type is already marked unhealthy at selection time.
var ErrNoAvailableInstance = errors.New("no available backend instance")

// ErrExhausted is returned by the failover invoker when the distinct-instance
// cap is reached or no further healthy instance exists; the wrapped error is
// the failure of the final attempt. No retries happen after ErrExhausted —
// the caller must retry the whole request if desired.
var ErrExhausted = errors.New("all backend instances exhausted")

// ErrCircuitOpen is returned by the breaker invoker while the circuit is open,
// without invoking the wrapped path. Distinguishable from ErrExhausted so the
// HTTP surface can answer "service unavailable" instead of a generic upstream
// failure and clients can apply different backoff.
var ErrCircuitOpen = errors.New("circuit breaker is open")
