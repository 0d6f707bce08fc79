package execcmd

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/buildrig/internal/abspath"
	"github.com/vk/buildrig/internal/taskenv"
)

func TestConfigure(t *testing.T) {
	task := &Task{}
	assert.Error(t, task.Configure(nil))
	assert.NoError(t, task.Configure([]string{"true"}))
}

func TestRunRequiresConfiguration(t *testing.T) {
	task := &Task{}
	task.SetTaskEnvironment(mustEnv(t))
	assert.ErrorContains(t, task.Run(context.Background()), "no command configured")
}

func TestRunSpawnsWithTaskState(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on /bin/sh")
	}
	dir := t.TempDir()
	env, err := taskenv.New(abspath.MustNew(dir, abspath.Native()), map[string]string{"PROBE": "from-task"})
	require.NoError(t, err)

	task := &Task{}
	task.SetTaskEnvironment(env)
	// Writing relative to the child's cwd proves the launch carried the
	// invocation's directory; the test proves the variable the same way.
	require.NoError(t, task.Configure([]string{"/bin/sh", "-c", `echo "$PROBE" > marker.txt`}))

	require.NoError(t, task.Run(context.Background()))

	content, err := os.ReadFile(filepath.Join(dir, "marker.txt"))
	require.NoError(t, err, "child must have run inside the invocation's directory")
	assert.Equal(t, "from-task\n", string(content), "child must see the invocation's variables")
}

func mustEnv(t *testing.T) *taskenv.Environment {
	t.Helper()
	env, err := taskenv.New(abspath.MustNew("/tmp", abspath.Posix), nil)
	require.NoError(t, err)
	return env
}
