package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPlanCmd(env *Env) *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "plan <ticket_id>",
		Short: "Plan tickets: create epics, stories, or tasks",
		Long: `Break work down into manageable pieces through an interview process:

  INIT  -> EPIC   define major feature areas
  EPIC  -> STORY  define user-facing functionality
  STORY -> TASK   define implementation steps`,
		Example: `  gitstory plan STORY-0001.2.4
  gitstory plan EPIC-0001.3 --verbose`,
		Args: usageArgs(cobra.ExactArgs(1)),
		RunE: func(_ *cobra.Command, args []string) error {
			out := env.Output()
			out.Info(fmt.Sprintf("Planning %s...", args[0]))
			if verbose {
				out.Debug("Verbose mode enabled")
			}
			notImplemented(out, "Workflow engine & planning logic")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show detailed output")
	return cmd
}
