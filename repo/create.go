package repo

import (
	"os"
	"syscall"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"gitboot/config"
	"gitboot/refs"
)

const descriptionText = "Unnamed repository; edit this file 'description' to name the repository.\n"

// standardDirs are created empty in every new metadata directory.
var standardDirs = [][]string{
	{"branches"},
	{"objects"},
	{"refs", "tags"},
	{"refs", "heads"},
}

// Create lays out a new repository at path, creating path if needed. It
// fails if path is not a directory or already holds a non-empty metadata
// directory.
func Create(path string, opts ...Option) (*Repository, error) {
	layout, err := NewLayout(path, opts...)
	if err != nil {
		return nil, err
	}
	if err := layout.prepare(); err != nil {
		return nil, err
	}

	for _, elem := range standardDirs {
		if _, err := layout.Dir(true, elem...); err != nil {
			return nil, err
		}
	}

	description, err := layout.File(true, "description")
	if err != nil {
		return nil, err
	}
	if err := afero.WriteFile(layout.fs, description, []byte(descriptionText), 0644); err != nil {
		return nil, errors.Wrapf(err, "writing %s", description)
	}

	if err := refs.WriteHead(layout.fs, layout.gitDir, refs.DefaultBranch); err != nil {
		return nil, errors.Wrapf(err, "writing %s", layout.Path(refs.HeadFile))
	}

	cfgPath, err := layout.File(true, configFile)
	if err != nil {
		return nil, err
	}
	if err := config.Default().Save(layout.fs, cfgPath); err != nil {
		return nil, errors.Wrapf(err, "writing %s", cfgPath)
	}

	layout.l.Debug("initialized repository", zap.String("gitdir", layout.gitDir))
	return open(layout.paths)
}

// prepare checks that a repository can be laid out at the worktree, creating
// the worktree when it is missing.
func (l *Layout) prepare() error {
	info, err := l.fs.Stat(l.worktree)
	switch {
	case os.IsNotExist(err):
		if err := l.fs.MkdirAll(l.worktree, 0755); err != nil {
			return errors.Wrapf(err, "creating %s", l.worktree)
		}
		l.l.Debug("created worktree", zap.String("path", l.worktree))
		return nil
	case errors.Is(err, syscall.ENOTDIR):
		return errors.Wrap(ErrNotADirectory, l.worktree)
	case err != nil:
		return errors.Wrapf(err, "stat %s", l.worktree)
	case !info.IsDir():
		return errors.Wrap(ErrNotADirectory, l.worktree)
	}

	entries, err := afero.ReadDir(l.fs, l.gitDir)
	switch {
	case os.IsNotExist(err):
		return nil
	case err != nil:
		return errors.Wrapf(err, "reading %s", l.gitDir)
	case len(entries) > 0:
		return errors.Wrap(ErrRepositoryExists, l.gitDir)
	}
	return nil
}
