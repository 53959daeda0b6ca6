package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"gitboot/repo"
)

func TestInit_CurrentDirectory(t *testing.T) {
	dir := setupTestRepo(t)

	info, err := os.Stat(filepath.Join(dir, repo.GitDir))
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	for _, p := range []string{"branches", "objects", "refs/heads", "refs/tags"} {
		info, err := os.Stat(filepath.Join(dir, repo.GitDir, p))
		require.NoError(t, err, p)
		assert.True(t, info.IsDir(), p)
	}

	data, err := os.ReadFile(filepath.Join(dir, repo.GitDir, "HEAD"))
	require.NoError(t, err)
	assert.Equal(t, "ref: refs/heads/master\n", string(data))
}

func TestInit_Directory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "proj")

	stdout, stderr, err := execute(t, "init", dir)
	require.NoError(t, err)
	assert.Empty(t, stdout, "successful init is silent")
	assert.Empty(t, stderr)

	_, err = repo.Open(dir)
	require.NoError(t, err)
}

func TestInit_AlreadyExists(t *testing.T) {
	setupTestRepo(t)

	_, _, err := execute(t, "init")
	require.Error(t, err)
	assert.True(t, errors.Is(err, repo.ErrRepositoryExists))
}

func TestInit_TooManyArgs(t *testing.T) {
	_, _, err := execute(t, "init", "a", "b")
	require.Error(t, err)
}

func TestInit_FileTarget(t *testing.T) {
	f := filepath.Join(t.TempDir(), "file.txt")
	require.NoError(t, os.WriteFile(f, []byte("x"), 0644))

	err := Init(f, zap.NewNop())
	require.Error(t, err)
	assert.True(t, errors.Is(err, repo.ErrNotADirectory))
}

func TestInit_LogsBranch(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	dir := filepath.Join(t.TempDir(), "proj")

	require.NoError(t, Init(dir, zap.New(core)))

	entries := logs.FilterMessage("initialized empty repository").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "master", fields["branch"])
	assert.Equal(t, filepath.Join(dir, repo.GitDir), fields["gitdir"])
}

func TestInit_BadLogLevel(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "proj")

	_, _, err := execute(t, "--log-level", "loud", "init", dir)
	require.Error(t, err)

	_, err = os.Stat(dir)
	assert.True(t, os.IsNotExist(err), "nothing runs with an invalid log level")
}

func TestInit_LogLevelFromEnv(t *testing.T) {
	t.Setenv("GITBOOT_LOG_LEVEL", "loud")

	_, _, err := execute(t, "init", filepath.Join(t.TempDir(), "proj"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), logLevelKey)
}

func TestInit_FlagOverridesEnv(t *testing.T) {
	t.Setenv("GITBOOT_LOG_LEVEL", "loud")

	_, _, err := execute(t, "--log-level", "none", "init", filepath.Join(t.TempDir(), "proj"))
	require.NoError(t, err)
}
