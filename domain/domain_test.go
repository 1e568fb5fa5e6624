package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestServiceInstance_Address(t *testing.T) {
	t.Run("host_and_port", func(t *testing.T) {
		inst := ServiceInstance{Host: "localhost", Port: 50051}
		assert.Equal(t, "localhost:50051", inst.Address())
	})

	t.Run("ipv6_host_is_bracketed", func(t *testing.T) {
		inst := ServiceInstance{Host: "::1", Port: 50051}
		assert.Equal(t, "[::1]:50051", inst.Address())
	})
}

func TestSession_HasParticipant(t *testing.T) {
	s := Session{Participants: []string{"u1", "u2"}}

	assert.True(t, s.HasParticipant("u1"))
	assert.False(t, s.HasParticipant("u3"))
	assert.False(t, Session{}.HasParticipant("u1"))
}
