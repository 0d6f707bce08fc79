package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPlan() *Plan {
	return &Plan{Tasks: []*Task{
		{Name: "compile", Runner: "exec"},
		{Name: "link", Runner: "exec", DependsOn: []string{"compile"}},
	}}
}

func TestValidate(t *testing.T) {
	t.Run("accepts a well-formed plan", func(t *testing.T) {
		assert.NoError(t, validPlan().Validate())
	})

	t.Run("error cases", func(t *testing.T) {
		cases := []struct {
			name string
			plan *Plan
			want string
		}{
			{
				"empty task name",
				&Plan{Tasks: []*Task{{Name: "", Runner: "exec"}}},
				"empty name",
			},
			{
				"missing runner",
				&Plan{Tasks: []*Task{{Name: "a"}}},
				"runner is required",
			},
			{
				"duplicate name",
				&Plan{Tasks: []*Task{{Name: "a", Runner: "x"}, {Name: "a", Runner: "y"}}},
				"duplicate task name",
			},
			{
				"unknown dependency",
				&Plan{Tasks: []*Task{{Name: "a", Runner: "x", DependsOn: []string{"ghost"}}}},
				"unknown task",
			},
			{
				"self dependency",
				&Plan{Tasks: []*Task{{Name: "a", Runner: "x", DependsOn: []string{"a"}}}},
				"depends on itself",
			},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				err := tc.plan.Validate()
				require.Error(t, err)
				assert.ErrorContains(t, err, tc.want)
			})
		}
	})
}

func TestTaskLookup(t *testing.T) {
	p := validPlan()
	require.NotNil(t, p.Task("compile"))
	assert.Equal(t, "exec", p.Task("compile").Runner)
	assert.Nil(t, p.Task("missing"))
}

func TestMerge(t *testing.T) {
	a := &Plan{Tasks: []*Task{{Name: "a", Runner: "x"}}}
	b := &Plan{Tasks: []*Task{{Name: "b", Runner: "x"}}}

	merged, err := Merge(a, b)
	require.NoError(t, err)
	assert.Len(t, merged.Tasks, 2)

	t.Run("duplicate across sources fails", func(t *testing.T) {
		_, err := Merge(a, &Plan{Tasks: []*Task{{Name: "a", Runner: "y"}}})
		assert.ErrorContains(t, err, "defined more than once")
	})
}
