package commands

import (
	"runtime"

	"github.com/spf13/cobra"

	"github.com/gitstory/gitstory/cmd"
)

func newVersionCmd(env *Env) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version information",
		Long:  `Print the version, commit, build date, and Go runtime of gitstory.`,
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(_ *cobra.Command, _ []string) error {
			v, _ := cmd.ResolveVersion()
			env.Output().Success("gitstory version "+v, map[string]any{
				"commit": cmd.Commit,
				"built":  cmd.Date,
				"go":     runtime.Version(),
			})
			return nil
		},
	}
}
