package cmd

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"gitboot/repo"
)

// ErrKeyNotSet is returned when a requested configuration key has no value.
var ErrKeyNotSet = errors.New("key not set")

func newConfigCmd(e *env) *cobra.Command {
	var list bool
	cmd := &cobra.Command{
		Use:   "config [--list | <section>.<key>]",
		Short: "Read the configuration of the enclosing repository",
		Args: func(cmd *cobra.Command, args []string) error {
			if list {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.ExactArgs(1)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := repo.Find(repo.WithLogger(e.log))
			if err != nil {
				return err
			}
			if list {
				return ConfigList(e.out, r)
			}
			return ConfigGet(e.out, r, args[0])
		},
	}
	cmd.Flags().BoolVarP(&list, "list", "l", false, "list all settings")
	return cmd
}

// ConfigList writes every setting of r as section.key=value, sorted.
func ConfigList(w io.Writer, r *repo.Repository) error {
	var lines []string
	for section, kv := range r.Config().Sections() {
		for k, v := range kv {
			lines = append(lines, fmt.Sprintf("%s.%s=%s", section, k, v))
		}
	}
	sort.Strings(lines)
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// ConfigGet writes the value of name, given as section.key.
func ConfigGet(w io.Writer, r *repo.Repository, name string) error {
	i := strings.LastIndex(name, ".")
	if i <= 0 || i == len(name)-1 {
		return errors.Errorf("key does not contain a section: %s", name)
	}
	v, ok := r.Config().Get(name[:i], name[i+1:])
	if !ok {
		return errors.Wrap(ErrKeyNotSet, name)
	}
	_, err := fmt.Fprintln(w, v)
	return err
}
