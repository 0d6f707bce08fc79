package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopTask struct{}

func (nopTask) Run(context.Context) error { return nil }

func TestRegistryRegister(t *testing.T) {
	r := NewRegistry()
	r.Register("noop", &RegisteredTask{New: func() Task { return nopTask{} }})

	reg, ok := r.Lookup("noop")
	require.True(t, ok)
	assert.NotNil(t, reg.New)

	_, ok = r.Lookup("missing")
	assert.False(t, ok)

	t.Run("duplicate registration panics", func(t *testing.T) {
		assert.Panics(t, func() {
			r.Register("noop", &RegisteredTask{New: func() Task { return nopTask{} }})
		})
	})

	t.Run("missing factory panics", func(t *testing.T) {
		assert.Panics(t, func() { r.Register("broken", &RegisteredTask{}) })
		assert.Panics(t, func() { r.Register("broken", nil) })
	})
}

func TestRegistryNames(t *testing.T) {
	r := NewRegistry()
	for _, name := range []string{"zeta", "alpha", "mid"} {
		r.Register(name, &RegisteredTask{New: func() Task { return nopTask{} }})
	}
	assert.Equal(t, []string{"alpha", "mid", "zeta"}, r.Names())
}
