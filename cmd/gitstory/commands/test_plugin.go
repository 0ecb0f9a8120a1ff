package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newTestPluginCmd(env *Env) *cobra.Command {
	var (
		ticket  string
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "test-plugin <plugin_name>",
		Short: "Test individual workflow plugins in isolation",
		Long: `Run a workflow plugin against a mock ticket context, verify its output and
side effects, and check that it honours the plugin contract.`,
		Example: `  gitstory test-plugin all_children_done
  gitstory test-plugin validate_ticket --ticket STORY-0001.2.4 --verbose`,
		Args: usageArgs(cobra.ExactArgs(1)),
		RunE: func(_ *cobra.Command, args []string) error {
			out := env.Output()
			out.Info(fmt.Sprintf("Testing plugin %s...", args[0]))
			if ticket != "" {
				out.Debug("Using ticket context: " + ticket)
			}
			if verbose {
				out.Debug("Verbose mode enabled")
			}
			notImplemented(out, "Plugin testing framework")
			return nil
		},
	}

	cmd.Flags().StringVar(&ticket, "ticket", "", "Ticket ID for plugin context")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show detailed output")
	return cmd
}
