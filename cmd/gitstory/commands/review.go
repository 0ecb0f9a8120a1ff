package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newReviewCmd(env *Env) *cobra.Command {
	var focus string

	cmd := &cobra.Command{
		Use:   "review <ticket_id>",
		Short: "Review ticket quality, detect issues, propose fixes",
		Long: `Analyze a ticket for completeness (missing acceptance criteria or tasks),
clarity (vague or unquantified requirements) and coherence with its parent
and sibling tickets, and produce a quality score.`,
		Example: `  gitstory review STORY-0001.2.4
  gitstory review EPIC-0001.3 --focus security`,
		Args: usageArgs(cobra.ExactArgs(1)),
		RunE: func(_ *cobra.Command, args []string) error {
			out := env.Output()
			out.Info(fmt.Sprintf("Reviewing %s...", args[0]))
			if focus != "" {
				out.Debug("Focus area: " + focus)
			}
			notImplemented(out, "Quality checker & validation logic")
			return nil
		},
	}

	cmd.Flags().StringVar(&focus, "focus", "", "Specific concern to focus on")
	return cmd
}
