package hclplan

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"

	"github.com/vk/buildrig/internal/config"
	"github.com/vk/buildrig/internal/ctxlog"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL plan loader.
func NewLoader() *Loader {
	return &Loader{}
}

// fileRoot decodes the top-level blocks of a single plan file.
type fileRoot struct {
	Tasks []*taskBlock `hcl:"task,block"`
}

type taskBlock struct {
	Name      string         `hcl:"name,label"`
	Runner    string         `hcl:"runner"`
	Dir       string         `hcl:"dir,optional"`
	Env       hcl.Expression `hcl:"env,optional"`
	Args      []string       `hcl:"args,optional"`
	DependsOn []string       `hcl:"depends_on,optional"`
}

// Load reads all plan files under path, translates their task blocks into
// the format-agnostic model, and validates the merged result.
func (l *Loader) Load(ctx context.Context, path string) (*config.Plan, error) {
	logger := ctxlog.FromContext(ctx)

	files, err := findPlanFiles(path)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("hclplan: no .hcl plan files under %s", path)
	}
	logger.Debug("Discovered plan files.", "count", len(files))

	parser := hclparse.NewParser()
	var plans []*config.Plan

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("hclplan: failed to parse %s: %w", file, diags)
		}

		var root fileRoot
		if diags := gohcl.DecodeBody(hclFile.Body, nil, &root); diags.HasErrors() {
			return nil, fmt.Errorf("hclplan: failed to decode %s: %w", file, diags)
		}

		plan := &config.Plan{}
		for _, block := range root.Tasks {
			task, err := translateTask(block)
			if err != nil {
				return nil, fmt.Errorf("hclplan: %s: %w", file, err)
			}
			plan.Tasks = append(plan.Tasks, task)
		}
		plans = append(plans, plan)
	}

	merged, err := config.Merge(plans...)
	if err != nil {
		return nil, err
	}
	if err := merged.Validate(); err != nil {
		return nil, err
	}
	logger.Debug("Plan loading complete.", "tasks", len(merged.Tasks))
	return merged, nil
}

// translateTask converts one decoded block into the config model.
func translateTask(block *taskBlock) (*config.Task, error) {
	env, err := translateEnv(block.Env)
	if err != nil {
		return nil, fmt.Errorf("task %q: %w", block.Name, err)
	}
	return &config.Task{
		Name:      block.Name,
		Runner:    block.Runner,
		Dir:       block.Dir,
		Env:       env,
		Args:      block.Args,
		DependsOn: block.DependsOn,
	}, nil
}

// translateEnv evaluates an `env` expression into a string map. The
// attribute is optional; absent or null expressions yield nil.
func translateEnv(expr hcl.Expression) (map[string]string, error) {
	if expr == nil {
		return nil, nil
	}
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, fmt.Errorf("evaluating env: %w", diags)
	}
	if val.IsNull() {
		return nil, nil
	}
	val, err := convert.Convert(val, cty.Map(cty.String))
	if err != nil {
		return nil, fmt.Errorf("env must be a map of strings: %w", err)
	}
	env := make(map[string]string)
	for it := val.ElementIterator(); it.Next(); {
		k, v := it.Element()
		env[k.AsString()] = v.AsString()
	}
	return env, nil
}

// findPlanFiles returns all .hcl files under path: the file itself, or a
// recursive search when path is a directory.
func findPlanFiles(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("hclplan: error accessing %s: %w", path, err)
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	var files []string
	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && filepath.Ext(p) == ".hcl" {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}
