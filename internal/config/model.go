package config

import (
	"fmt"
)

// Plan is the unified representation of one build run: the set of tasks to
// execute and the constraints between them.
type Plan struct {
	Tasks []*Task
}

// Task is the format-agnostic representation of a `task` block.
type Task struct {
	// Name is the unique instance name of this task within the plan.
	Name string
	// Runner names the registered Go implementation to execute.
	Runner string
	// Dir is the task's logical working directory: absolute, or relative
	// to the run's project directory. Empty means the project directory
	// itself.
	Dir string
	// Env holds per-task variable overrides layered over the engine's
	// base snapshot.
	Env map[string]string
	// Args are passed to the runner implementation if it accepts
	// configuration.
	Args []string
	// DependsOn lists task names that must complete first.
	DependsOn []string
}

// Task returns the named task, or nil.
func (p *Plan) Task(name string) *Task {
	for _, t := range p.Tasks {
		if t.Name == name {
			return t
		}
	}
	return nil
}

// Validate checks plan-level integrity: unique task names and dependency
// references that resolve to tasks in the plan. Runner names are validated
// later by the engine against its registry.
func (p *Plan) Validate() error {
	names := make(map[string]bool, len(p.Tasks))
	for _, t := range p.Tasks {
		if t.Name == "" {
			return fmt.Errorf("config: task with empty name")
		}
		if t.Runner == "" {
			return fmt.Errorf("config: task %q: runner is required", t.Name)
		}
		if names[t.Name] {
			return fmt.Errorf("config: duplicate task name %q", t.Name)
		}
		names[t.Name] = true
	}
	for _, t := range p.Tasks {
		for _, dep := range t.DependsOn {
			if dep == t.Name {
				return fmt.Errorf("config: task %q depends on itself", t.Name)
			}
			if !names[dep] {
				return fmt.Errorf("config: task %q depends on unknown task %q", t.Name, dep)
			}
		}
	}
	return nil
}

// Merge combines plans loaded from several files into one. A task name
// appearing in more than one source is a configuration error.
func Merge(plans ...*Plan) (*Plan, error) {
	merged := &Plan{}
	names := make(map[string]bool)
	for _, p := range plans {
		for _, t := range p.Tasks {
			if names[t.Name] {
				return nil, fmt.Errorf("config: task %q defined more than once", t.Name)
			}
			names[t.Name] = true
			merged.Tasks = append(merged.Tasks, t)
		}
	}
	return merged, nil
}
