package repo

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

var osGetwd = os.Getwd

// Find walks up from the current directory to the nearest repository.
func Find(opts ...Option) (*Repository, error) {
	dir, err := osGetwd()
	if err != nil {
		return nil, err
	}
	return FindFrom(dir, true, opts...)
}

// FindFrom walks up from start to the nearest directory holding a .git
// directory and opens it. When no ancestor qualifies, it fails with
// ErrRepositoryNotFound if required is set, and returns nil otherwise.
func FindFrom(start string, required bool, opts ...Option) (*Repository, error) {
	o := newOptions(opts)

	dir, err := canonical(o.fs, start)
	if err != nil {
		return nil, err
	}
	for {
		if info, err := o.fs.Stat(filepath.Join(dir, GitDir)); err == nil && info.IsDir() {
			o.l.Debug("found repository", zap.String("start", start), zap.String("worktree", dir))
			return open(newPaths(dir, o))
		}

		parent, err := canonical(o.fs, filepath.Join(dir, ".."))
		if err != nil {
			return nil, err
		}
		if parent == dir {
			if required {
				return nil, errors.Wrap(ErrRepositoryNotFound, start)
			}
			return nil, nil
		}
		dir = parent
	}
}

// canonical returns path as an absolute path. On the OS filesystem symlinks
// are resolved as well; paths that do not exist, including those below a
// regular file, are only cleaned.
func canonical(fs afero.Fs, path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", errors.Wrapf(err, "resolving %s", path)
	}
	if _, ok := fs.(*afero.OsFs); !ok {
		return abs, nil
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if isMissing(err) {
		return abs, nil
	}
	if err != nil {
		return "", errors.Wrapf(err, "resolving %s", abs)
	}
	return resolved, nil
}
