package refs

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupGitDir(t *testing.T) (afero.Fs, string) {
	t.Helper()
	fs := afero.NewMemMapFs()
	gitDir := filepath.Join("/work", ".git")
	require.NoError(t, fs.MkdirAll(gitDir, 0755))
	return fs, gitDir
}

func TestBranchRef(t *testing.T) {
	assert.Equal(t, "refs/heads/feature", BranchRef("feature"))
}

func TestSymbolicRef(t *testing.T) {
	assert.Equal(t, "ref: refs/heads/master", SymbolicRef(DefaultBranch))
}

func TestWriteHead(t *testing.T) {
	fs, gitDir := setupGitDir(t)
	require.NoError(t, WriteHead(fs, gitDir, DefaultBranch))

	data, err := afero.ReadFile(fs, filepath.Join(gitDir, HeadFile))
	require.NoError(t, err)
	assert.Equal(t, "ref: refs/heads/master\n", string(data))
}

func TestReadHead(t *testing.T) {
	fs, gitDir := setupGitDir(t)
	require.NoError(t, WriteHead(fs, gitDir, "main"))

	head, err := ReadHead(fs, gitDir)
	require.NoError(t, err)
	assert.Equal(t, "ref: refs/heads/main", head)
}

func TestReadHead_NoFile(t *testing.T) {
	fs, gitDir := setupGitDir(t)
	_, err := ReadHead(fs, gitDir)
	require.Error(t, err)
}

func TestCurrentBranch(t *testing.T) {
	fs, gitDir := setupGitDir(t)
	require.NoError(t, WriteHead(fs, gitDir, DefaultBranch))

	branch, err := CurrentBranch(fs, gitDir)
	require.NoError(t, err)
	assert.Equal(t, "master", branch)
}

func TestCurrentBranch_Detached(t *testing.T) {
	fs, gitDir := setupGitDir(t)
	require.NoError(t, afero.WriteFile(fs, filepath.Join(gitDir, HeadFile), []byte("abc123def456\n"), 0644))

	branch, err := CurrentBranch(fs, gitDir)
	require.NoError(t, err)
	assert.Empty(t, branch)
}

func TestCurrentBranch_NoHead(t *testing.T) {
	fs, gitDir := setupGitDir(t)
	_, err := CurrentBranch(fs, gitDir)
	require.Error(t, err)
}
