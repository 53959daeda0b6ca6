package refs

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

const (
	// HeadFile names the file holding the current symbolic reference.
	HeadFile = "HEAD"

	// DefaultBranch is the branch HEAD points at in a new repository.
	DefaultBranch = "master"

	symbolicPrefix = "ref: "
	headsPrefix    = "refs/heads/"
)

// BranchRef returns the ref path for a branch.
func BranchRef(name string) string {
	return fmt.Sprintf("%s%s", headsPrefix, name)
}

// SymbolicRef returns the HEAD content pointing at branch, without newline.
func SymbolicRef(branch string) string {
	return symbolicPrefix + BranchRef(branch)
}

// WriteHead points HEAD in gitDir at branch.
func WriteHead(fs afero.Fs, gitDir, branch string) error {
	return afero.WriteFile(fs, filepath.Join(gitDir, HeadFile), []byte(SymbolicRef(branch)+"\n"), 0644)
}

// ReadHead reads the HEAD file and returns its content.
func ReadHead(fs afero.Fs, gitDir string) (string, error) {
	data, err := afero.ReadFile(fs, filepath.Join(gitDir, HeadFile))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// CurrentBranch returns the current branch name, or "" if HEAD is detached.
func CurrentBranch(fs afero.Fs, gitDir string) (string, error) {
	head, err := ReadHead(fs, gitDir)
	if err != nil {
		return "", err
	}
	if strings.HasPrefix(head, symbolicPrefix+headsPrefix) {
		return strings.TrimPrefix(head, symbolicPrefix+headsPrefix), nil
	}
	return "", nil
}
