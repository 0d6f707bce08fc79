package engine

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/buildrig/internal/capability"
	"github.com/vk/buildrig/internal/config"
)

func TestStateString(t *testing.T) {
	assert.Equal(t, "not-started", NotStarted.String())
	assert.Equal(t, "environment-assigned", EnvironmentAssigned.String())
	assert.Equal(t, "executing", Executing.String())
	assert.Equal(t, "completed", Completed.String())
	assert.Equal(t, "faulted", Faulted.String())
	assert.Equal(t, "unknown", State(99).String())
}

func TestBuildInvocationsInitialStates(t *testing.T) {
	reg := NewRegistry()
	registerCapable(reg, "aware", nil)
	reg.Register("marked", &RegisteredTask{New: func() Task { return &plainTask{} }, Marker: true})
	reg.Register("legacy", &RegisteredTask{New: func() Task { return &plainTask{} }})

	eng, err := New(planOf(
		&config.Task{Name: "a", Runner: "aware"},
		&config.Task{Name: "m", Runner: "marked"},
		&config.Task{Name: "l", Runner: "legacy"},
	), reg, testOptions())
	require.NoError(t, err)

	invs, err := eng.buildInvocations()
	require.NoError(t, err)

	t.Run("interface-capable starts with the environment assigned", func(t *testing.T) {
		assert.Equal(t, EnvironmentAssigned, invs["a"].State())
		assert.NotNil(t, invs["a"].Environment())
	})

	t.Run("marker and legacy skip the assignment state", func(t *testing.T) {
		assert.Equal(t, NotStarted, invs["m"].State())
		assert.Nil(t, invs["m"].Environment())
		assert.Equal(t, NotStarted, invs["l"].State())
		assert.Nil(t, invs["l"].Environment())
	})

	t.Run("capabilities are detected per registration", func(t *testing.T) {
		assert.Equal(t, capability.Interface, invs["a"].Capability())
		assert.Equal(t, capability.Marker, invs["m"].Capability())
		assert.Equal(t, capability.None, invs["l"].Capability())
	})

	t.Run("invocation IDs are unique", func(t *testing.T) {
		assert.NotEqual(t, invs["a"].ID(), invs["m"].ID())
		assert.NotEqual(t, invs["m"].ID(), invs["l"].ID())
	})
}

func TestSkipIsAccountedOnce(t *testing.T) {
	inv := &Invocation{cfg: &config.Task{Name: "x"}}
	var wg sync.WaitGroup
	wg.Add(1)

	inv.skip(assert.AnError, &wg)
	inv.skip(assert.AnError, &wg) // second skip must not double-release

	wg.Wait()
	assert.Equal(t, Faulted, inv.State())
	assert.ErrorIs(t, inv.Err(), assert.AnError)
}
