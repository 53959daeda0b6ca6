package cmd

import (
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"gitboot/logging"
)

const (
	envPrefix   = "gitboot"
	logLevelKey = "log-level"
)

// env carries what every command handler needs.
type env struct {
	v   *viper.Viper
	log *zap.Logger
	out io.Writer
}

// NewRootCmd builds the command tree. Settings come from flags, then
// GITBOOT_* environment variables.
func NewRootCmd() *cobra.Command {
	e := &env{v: viper.New(), log: zap.NewNop()}

	root := &cobra.Command{
		Use:   "gitboot",
		Short: "Create and locate git repositories",
		Long: `gitboot lays out new git repositories and finds the repository
enclosing a working directory.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			l, err := logging.GetLogger(e.v.GetString(logLevelKey))
			if err != nil {
				return errors.Wrapf(err, "invalid %s", logLevelKey)
			}
			e.log = l
			e.out = cmd.OutOrStdout()
			return nil
		},
	}

	root.PersistentFlags().String(logLevelKey, logging.LevelWarn, "log level: debug, info, warn, error or none")
	_ = e.v.BindPFlag(logLevelKey, root.PersistentFlags().Lookup(logLevelKey))
	e.v.SetEnvPrefix(envPrefix)
	e.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	e.v.AutomaticEnv()

	root.AddCommand(
		newInitCmd(e),
		newConfigCmd(e),
	)
	return root
}
