package executor

import (
	"context"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireBinary(t *testing.T, name string) {
	t.Helper()
	if _, err := exec.LookPath(name); err != nil {
		t.Skipf("%s not available", name)
	}
}

func TestExecute(t *testing.T) {
	requireBinary(t, "sh")

	out, err := New().Execute(context.Background(), "sh", "-c", "echo hello")
	require.NoError(t, err)
	assert.Equal(t, "hello\n", out)
}

func TestExecuteStderr(t *testing.T) {
	requireBinary(t, "sh")

	_, err := New().Execute(context.Background(), "sh", "-c", "echo broken >&2; exit 3")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "stderr: broken"))
}

func TestExecuteInDir(t *testing.T) {
	requireBinary(t, "pwd")
	dir := t.TempDir()

	out, err := New().ExecuteInDir(context.Background(), dir, "pwd")
	require.NoError(t, err)
	assert.Equal(t, filepath.Base(dir), filepath.Base(strings.TrimSpace(out)))
}

func TestExecuteCanceled(t *testing.T) {
	requireBinary(t, "sleep")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New().Execute(ctx, "sleep", "5")
	assert.Error(t, err)
}
