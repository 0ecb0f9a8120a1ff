// Package commands implements the CLI commands for gitstory.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/gitstory/gitstory/cmd"
	"github.com/gitstory/gitstory/internal/config"
	"github.com/gitstory/gitstory/internal/errors"
)

// persistent flag name -> config key
var flagKeys = map[string]string{
	"json":       config.KeyJSON,
	"ascii":      config.KeyASCII,
	"log-level":  config.KeyLogLevel,
	"log-format": config.KeyLogFormat,
	"log-file":   config.KeyLogFile,
}

// NewRootCmd builds the command tree for one invocation.
func NewRootCmd(env *Env) *cobra.Command {
	var (
		showVersion bool
		configFile  string
	)

	rootCmd := &cobra.Command{
		Use:   "gitstory",
		Short: "Workflow-agnostic ticket management",
		Long: `gitstory provides deterministic ticket and workflow operations (file I/O,
validation, git) for an automation agent to orchestrate. It is also usable
directly by developers.

Use --json for newline-delimited JSON output: every line on stdout is one
JSON object. Diagnostics are written to stderr.`,
		Example: `  # Set up a repository
  gitstory init

  # Plan a story
  gitstory plan STORY-0001.2.4

  # Machine-readable output
  gitstory --json validate workflow

  See Also: gitstory validate, gitstory version`,
		SilenceErrors: true,
		SilenceUsage:  true,
		// Explicit so unknown subcommands fail after flag parsing and
		// --json still applies to the error.
		Args: usageArgs(cobra.NoArgs),
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// --version answers without loading config, so a broken
			// config file cannot hide it.
			if showVersion {
				return nil
			}
			return env.setup(cmd, configFile)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if showVersion {
				return printVersion(cmd.OutOrStdout(), cmd.ErrOrStderr())
			}
			return cmd.Help()
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.Bool("json", false, "output newline-delimited JSON for programmatic parsing")
	pf.Bool("ascii", false, "use ASCII symbols even if the terminal supports Unicode")
	pf.String("log-level", "warn", "diagnostic log level: error, warn, info, debug")
	pf.String("log-format", "text", "diagnostic log format: text, json")
	pf.String("log-file", "", "also write diagnostics to file in JSON format")
	pf.StringVar(&configFile, "config", "", "config file (default: .gitstory/config.yaml, then the user config dir)")
	for name, key := range flagKeys {
		if err := env.Viper.BindPFlag(key, pf.Lookup(name)); err != nil {
			panic(err)
		}
	}

	rootCmd.Flags().BoolVar(&showVersion, "version", false, "show version and exit")

	rootCmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return usageError(c, err)
	})

	rootCmd.AddCommand(
		newPlanCmd(env),
		newReviewCmd(env),
		newExecuteCmd(env),
		newValidateCmd(env),
		newTestPluginCmd(env),
		newInitCmd(env),
		newVersionCmd(env),
	)

	return rootCmd
}

// printVersion writes the --version line. A development-mode warning goes
// to stderr when no release version is known.
func printVersion(stdout, stderr io.Writer) error {
	v, ok := cmd.ResolveVersion()
	if !ok {
		fmt.Fprintln(stderr, "Warning: Running in development mode (version metadata unavailable)")
	}
	_, err := fmt.Fprintf(stdout, "gitstory version %s\n", v)
	if err != nil {
		return errors.NewSystemError(errors.Wrap(err, "writing version"), "")
	}
	return nil
}

// Execute runs one invocation with args and returns the process exit code.
// Errors not already rendered by a command are reported through the
// invocation's formatter, so --json output stays NDJSON on failure.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	env := NewEnv(stdout, stderr)
	defer env.Close()

	rootCmd := NewRootCmd(env)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.ExecuteContext(ctx)
	return env.exitCode(err)
}
