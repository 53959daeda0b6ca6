package repo

import (
	"os"
	"path/filepath"
	"syscall"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Path joins elem onto the metadata directory. It does no I/O.
func (p paths) Path(elem ...string) string {
	return filepath.Join(append([]string{p.gitDir}, elem...)...)
}

// Dir resolves a directory under the metadata directory. It returns "" with
// a nil error when the directory is missing and mkdir is false; with mkdir
// set, the missing chain is created.
func (p paths) Dir(mkdir bool, elem ...string) (string, error) {
	path := p.Path(elem...)

	info, err := p.fs.Stat(path)
	if err == nil {
		if !info.IsDir() {
			return "", errors.Wrap(ErrNotADirectory, path)
		}
		return path, nil
	}
	if !isMissing(err) {
		return "", errors.Wrapf(err, "stat %s", path)
	}
	if !mkdir {
		return "", nil
	}

	if err := p.fs.MkdirAll(path, 0755); err != nil {
		return "", errors.Wrapf(err, "creating %s", path)
	}
	p.l.Debug("created directory", zap.String("path", path))
	return path, nil
}

// File resolves a file under the metadata directory. Every element but the
// last names its parent directory, resolved as by Dir. It returns "" with a
// nil error when that parent is missing and mkdir is false.
func (p paths) File(mkdir bool, elem ...string) (string, error) {
	var parent []string
	if len(elem) > 0 {
		parent = elem[:len(elem)-1]
	}
	dir, err := p.Dir(mkdir, parent...)
	if err != nil || dir == "" {
		return "", err
	}
	return p.Path(elem...), nil
}

// isMissing reports whether a Stat error means nothing is at the path,
// including when an element of the path is a regular file.
func isMissing(err error) bool {
	return os.IsNotExist(err) || errors.Is(err, syscall.ENOTDIR)
}
