package commands

import (
	"github.com/spf13/cobra"

	"github.com/gitstory/gitstory/internal/paths"
)

func newInitCmd(env *Env) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize gitstory in the current repository",
		Long: `Set up the ` + paths.ProjectDirName + `/ directory with a default ` + paths.WorkflowFileName + `
state machine, a docs/tickets/ directory for ticket storage, and a plugin
directory for custom workflow logic.`,
		Example: `  gitstory init
  gitstory init --force  # overwrite existing configuration`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(_ *cobra.Command, _ []string) error {
			out := env.Output()
			out.Info("Initializing GitStory...")
			if force {
				out.Debug("Force mode - will overwrite existing files")
			}
			notImplemented(out, "Initialization logic")
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing "+paths.ProjectDirName+"/")
	return cmd
}
