package repo

import (
	"fmt"

	"github.com/pkg/errors"
)

// Error kinds reported by repository operations. Returned errors wrap one of
// these with the offending path or value; match them with errors.Is.
var (
	ErrRepositoryNotFound       = errors.New("not a git repository")
	ErrNotADirectory            = errors.New("not a directory")
	ErrRepositoryExists         = errors.New("repository already exists")
	ErrConfigNotFound           = errors.New("configuration file not found")
	ErrConfigParse              = errors.New("invalid configuration")
	ErrUnsupportedFormatVersion = errors.New("unsupported repositoryformatversion")
)

// FormatVersionError reports a core.repositoryformatversion this package
// cannot read.
type FormatVersionError struct {
	Path    string
	Version string
}

func (e *FormatVersionError) Error() string {
	return fmt.Sprintf("%s: %v: %s", e.Path, ErrUnsupportedFormatVersion, e.Version)
}

func (e *FormatVersionError) Is(target error) bool {
	return target == ErrUnsupportedFormatVersion
}
