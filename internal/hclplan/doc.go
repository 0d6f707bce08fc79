// Package hclplan is the HCL-specific implementation of config.Loader.
//
// A plan is one or more .hcl files of `task` blocks:
//
//	task "compile" {
//	  runner     = "exec"
//	  dir        = "src"
//	  args       = ["cc", "-c", "main.c"]
//	  env        = { CC_COLOR = "never" }
//	  depends_on = ["generate"]
//	}
//
// Load accepts a single file or a directory searched recursively; blocks
// from all discovered files merge into one plan.
package hclplan
