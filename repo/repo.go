package repo

import (
	"path/filepath"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"gitboot/config"
)

const (
	// GitDir is the metadata directory name inside a worktree.
	GitDir = ".git"

	// FormatVersion is the only core.repositoryformatversion this package reads.
	FormatVersion = "0"

	configFile = "config"
)

type options struct {
	fs afero.Fs
	l  *zap.Logger
}

// Option configures how a repository is accessed.
type Option func(*options)

// WithFs sets the filesystem repository files are read from and written to.
// Defaults to the OS filesystem.
func WithFs(fs afero.Fs) Option {
	return func(o *options) {
		o.fs = fs
	}
}

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		o.l = l
	}
}

func newOptions(opts []Option) options {
	o := options{}
	for _, apply := range opts {
		apply(&o)
	}
	if o.fs == nil {
		o.fs = afero.NewOsFs()
	}
	if o.l == nil {
		o.l = zap.NewNop()
	}
	return o
}

// Repository is a validated repository: its metadata directory exists and
// its configuration declares a supported format version.
type Repository struct {
	paths
	config *config.Config
}

// Config returns the configuration loaded when the repository was opened.
func (r *Repository) Config() *config.Config {
	return r.config
}

// Layout is an unvalidated repository handle. It computes paths inside a
// metadata directory that may not exist yet, and is only used to lay out a
// new repository.
type Layout struct {
	paths
	config *config.Config
}

// Config returns the configuration found on disk, or an empty one.
func (l *Layout) Config() *config.Config {
	return l.config
}

type paths struct {
	fs       afero.Fs
	l        *zap.Logger
	worktree string
	gitDir   string
}

func newPaths(worktree string, o options) paths {
	return paths{
		fs:       o.fs,
		l:        o.l,
		worktree: worktree,
		gitDir:   filepath.Join(worktree, GitDir),
	}
}

// Worktree returns the project directory.
func (p paths) Worktree() string {
	return p.worktree
}

// GitDir returns the metadata directory.
func (p paths) GitDir() string {
	return p.gitDir
}

// Fs returns the filesystem backing the repository.
func (p paths) Fs() afero.Fs {
	return p.fs
}
