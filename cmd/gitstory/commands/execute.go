package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newExecuteCmd(env *Env) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "execute <ticket_id>",
		Short: "Execute ticket workflows: state transitions, git operations, validations",
		Long: `Drive a ticket through its lifecycle: create the ticket branch, update its
status, run workflow plugins, apply state transitions, and create commits
and pull requests.`,
		Example: `  gitstory execute TASK-0001.2.4.3
  gitstory execute STORY-0001.2.4 --dry-run`,
		Args: usageArgs(cobra.ExactArgs(1)),
		RunE: func(_ *cobra.Command, args []string) error {
			out := env.Output()
			out.Info(fmt.Sprintf("Executing %s...", args[0]))
			if dryRun {
				out.Debug("Dry run mode - no changes will be made")
			}
			notImplemented(out, "Workflow execution engine")
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show actions without executing")
	return cmd
}
