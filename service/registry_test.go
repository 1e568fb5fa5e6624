package service

import (
	"testing"

	"fitgateway/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTopology() domain.TopologyConfig {
	return domain.TopologyConfig{
		Services: map[domain.ServiceType][]domain.ServiceInstance{
			domain.ServiceUser: {
				{Host: "localhost", Port: 50051},
				{Host: "localhost", Port: 50061},
				{Host: "localhost", Port: 50071},
			},
			domain.ServiceActivity: {
				{Host: "localhost", Port: 50052},
				{Host: "localhost", Port: 50062},
			},
		},
	}
}

func TestNewServiceRegistry(t *testing.T) {
	t.Run("valid_topology_succeeds", func(t *testing.T) {
		r, err := NewServiceRegistry(testTopology())
		require.NoError(t, err)
		require.NotNil(t, r)
	})

	t.Run("missing_service_type_fails", func(t *testing.T) {
		cfg := testTopology()
		delete(cfg.Services, domain.ServiceActivity)
		r, err := NewServiceRegistry(cfg)
		require.Error(t, err)
		assert.Nil(t, r)
		var topoErr *domain.TopologyError
		require.ErrorAs(t, err, &topoErr)
		assert.Equal(t, domain.ServiceActivity, topoErr.Service)
	})

	t.Run("invalid_instance_fails", func(t *testing.T) {
		cfg := testTopology()
		cfg.Services[domain.ServiceUser] = []domain.ServiceInstance{{Host: "", Port: 50051}}
		_, err := NewServiceRegistry(cfg)
		require.Error(t, err)
	})
}

func TestServiceRegistry_Instances(t *testing.T) {
	r, err := NewServiceRegistry(testTopology())
	require.NoError(t, err)

	t.Run("returns_configured_order", func(t *testing.T) {
		instances := r.Instances(domain.ServiceUser)
		require.Len(t, instances, 3)
		assert.Equal(t, domain.ServiceInstance{Host: "localhost", Port: 50051}, instances[0])
		assert.Equal(t, domain.ServiceInstance{Host: "localhost", Port: 50061}, instances[1])
		assert.Equal(t, domain.ServiceInstance{Host: "localhost", Port: 50071}, instances[2])
	})

	t.Run("unknown_type_returns_nil", func(t *testing.T) {
		assert.Nil(t, r.Instances(domain.ServiceType("payments")))
	})

	t.Run("returned_slice_is_a_copy", func(t *testing.T) {
		instances := r.Instances(domain.ServiceUser)
		instances[0] = domain.ServiceInstance{Host: "evil", Port: 1}
		again := r.Instances(domain.ServiceUser)
		assert.Equal(t, domain.ServiceInstance{Host: "localhost", Port: 50051}, again[0])
	})
}

func TestServiceRegistry_NextHealthy(t *testing.T) {
	t.Run("returns_first_instance_when_all_healthy", func(t *testing.T) {
		r, err := NewServiceRegistry(testTopology())
		require.NoError(t, err)
		inst, ok := r.NextHealthy(domain.ServiceUser)
		require.True(t, ok)
		assert.Equal(t, domain.ServiceInstance{Host: "localhost", Port: 50051}, inst)
	})

	t.Run("skips_unhealthy_instances_in_order", func(t *testing.T) {
		r, err := NewServiceRegistry(testTopology())
		require.NoError(t, err)
		r.MarkUnhealthy(domain.ServiceUser, domain.ServiceInstance{Host: "localhost", Port: 50051})
		inst, ok := r.NextHealthy(domain.ServiceUser)
		require.True(t, ok)
		assert.Equal(t, domain.ServiceInstance{Host: "localhost", Port: 50061}, inst)
	})

	t.Run("returns_false_when_all_marked", func(t *testing.T) {
		r, err := NewServiceRegistry(testTopology())
		require.NoError(t, err)
		for _, inst := range r.Instances(domain.ServiceActivity) {
			r.MarkUnhealthy(domain.ServiceActivity, inst)
		}
		_, ok := r.NextHealthy(domain.ServiceActivity)
		assert.False(t, ok)
	})

	t.Run("unknown_type_returns_false", func(t *testing.T) {
		r, err := NewServiceRegistry(testTopology())
		require.NoError(t, err)
		_, ok := r.NextHealthy(domain.ServiceType("payments"))
		assert.False(t, ok)
	})

	t.Run("marks_are_scoped_per_service_type", func(t *testing.T) {
		r, err := NewServiceRegistry(testTopology())
		require.NoError(t, err)
		r.MarkUnhealthy(domain.ServiceUser, domain.ServiceInstance{Host: "localhost", Port: 50051})
		inst, ok := r.NextHealthy(domain.ServiceActivity)
		require.True(t, ok)
		assert.Equal(t, domain.ServiceInstance{Host: "localhost", Port: 50052}, inst)
	})
}

func TestServiceRegistry_ResetHealth(t *testing.T) {
	t.Run("clears_every_mark_for_the_type", func(t *testing.T) {
		r, err := NewServiceRegistry(testTopology())
		require.NoError(t, err)
		r.MarkUnhealthy(domain.ServiceUser, domain.ServiceInstance{Host: "localhost", Port: 50051})
		r.MarkUnhealthy(domain.ServiceUser, domain.ServiceInstance{Host: "localhost", Port: 50061})

		r.ResetHealth(domain.ServiceUser)

		inst, ok := r.NextHealthy(domain.ServiceUser)
		require.True(t, ok)
		assert.Equal(t, domain.ServiceInstance{Host: "localhost", Port: 50051}, inst)
	})

	t.Run("does_not_touch_other_types", func(t *testing.T) {
		r, err := NewServiceRegistry(testTopology())
		require.NoError(t, err)
		r.MarkUnhealthy(domain.ServiceActivity, domain.ServiceInstance{Host: "localhost", Port: 50052})

		r.ResetHealth(domain.ServiceUser)

		inst, ok := r.NextHealthy(domain.ServiceActivity)
		require.True(t, ok)
		assert.Equal(t, domain.ServiceInstance{Host: "localhost", Port: 50062}, inst)
	})

	t.Run("unknown_type_is_ignored", func(t *testing.T) {
		r, err := NewServiceRegistry(testTopology())
		require.NoError(t, err)
		assert.NotPanics(t, func() { r.ResetHealth(domain.ServiceType("payments")) })
	})
}
