package repo

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"gitboot/config"
)

// Open returns the repository whose worktree is worktree. The metadata
// directory must exist and hold a config with a supported format version.
func Open(worktree string, opts ...Option) (*Repository, error) {
	return open(newPaths(worktree, newOptions(opts)))
}

// NewLayout returns a handle on worktree without checking anything on disk.
// An existing config is loaded; otherwise the handle carries an empty one.
func NewLayout(worktree string, opts ...Option) (*Layout, error) {
	p := newPaths(worktree, newOptions(opts))

	cfg, err := p.loadConfig()
	if errors.Is(err, ErrConfigNotFound) {
		cfg, err = config.New(), nil
	}
	if err != nil {
		return nil, err
	}
	return &Layout{paths: p, config: cfg}, nil
}

func open(p paths) (*Repository, error) {
	info, err := p.fs.Stat(p.gitDir)
	if err != nil || !info.IsDir() {
		return nil, errors.Wrap(ErrRepositoryNotFound, p.worktree)
	}

	cfg, err := p.loadConfig()
	if err != nil {
		return nil, err
	}

	path := p.Path(configFile)
	vers, err := cfg.FormatVersion()
	if err != nil {
		return nil, errors.Wrapf(ErrConfigParse, "%s: %v", path, err)
	}
	if vers != FormatVersion {
		return nil, &FormatVersionError{Path: path, Version: vers}
	}

	p.l.Debug("opened repository", zap.String("worktree", p.worktree))
	return &Repository{paths: p, config: cfg}, nil
}

func (p paths) loadConfig() (*config.Config, error) {
	path, err := p.File(false, configFile)
	if err != nil {
		return nil, err
	}
	if path == "" {
		return nil, errors.Wrap(ErrConfigNotFound, p.Path(configFile))
	}

	data, err := afero.ReadFile(p.fs, path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(ErrConfigNotFound, path)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}

	cfg, err := config.Load(data)
	if err != nil {
		return nil, errors.Wrapf(ErrConfigParse, "%s: %v", path, err)
	}
	return cfg, nil
}
