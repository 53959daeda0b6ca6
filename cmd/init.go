package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"gitboot/refs"
	"gitboot/repo"
)

func newInitCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "init [directory]",
		Short: "Create an empty repository",
		Long: `Create an empty repository in directory, or in the current directory.

The directory is created if it does not exist. An existing, non-empty
.git directory is left untouched and reported as an error.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			return Init(dir, e.log)
		},
	}
}

// Init creates a repository at dir.
func Init(dir string, l *zap.Logger) error {
	r, err := repo.Create(dir, repo.WithLogger(l))
	if err != nil {
		return err
	}
	branch, err := refs.CurrentBranch(r.Fs(), r.GitDir())
	if err != nil {
		return err
	}
	l.Info("initialized empty repository",
		zap.String("gitdir", r.GitDir()),
		zap.String("branch", branch))
	return nil
}
