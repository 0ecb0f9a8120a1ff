package commands

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gitstory/gitstory/internal/errors"
	"github.com/gitstory/gitstory/internal/logging"
	"github.com/gitstory/gitstory/internal/output"
	"github.com/gitstory/gitstory/internal/paths"
	"github.com/gitstory/gitstory/internal/validator"
)

// validateTargets lists what validate accepts; the first is the default.
var validateTargets = []string{"workflow", "ticket", "config"}

func newValidateCmd(env *Env) *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "validate [target]",
		Short: "Validate workflow.yaml, ticket structure, or config files",
		Long: `Validate one of:

  workflow  schema, state definitions and plugin configuration
  ticket    file structure, required fields and hierarchy consistency
  config    the ` + paths.ProjectDirName + `/ directory structure and settings

Workflow and config files are checked for YAML syntax (TOML for .toml
files) today. For tickets, --path may name a ticket file or a directory of
them; each must open with YAML frontmatter. Schema checks are not
implemented yet. The default path can be changed with validate.path in the
config file.`,
		Example: `  gitstory validate
  gitstory validate ticket --path docs/tickets/INIT-0001
  gitstory validate config --path .gitstory/config.yaml`,
		Args:      usageArgs(cobra.MaximumNArgs(1)),
		ValidArgs: validateTargets,
		RunE: func(c *cobra.Command, args []string) error {
			target := validateTargets[0]
			if len(args) == 1 {
				target = args[0]
			}
			if !slices.Contains(validateTargets, target) {
				return usageError(c, errors.Newf("unknown validate target %q (valid: %s)",
					target, strings.Join(validateTargets, ", ")))
			}

			if !c.Flags().Changed("path") && env.Config != nil {
				path = env.Config.Validate.Path
			}

			out := env.Output()
			out.Info(fmt.Sprintf("Validating %s at %s...", target, path))
			check := checkSyntax
			if target == "ticket" {
				check = checkTickets
			}
			if err := check(c.Context(), out, path); err != nil {
				return err
			}
			notImplemented(out, "Validation engine")
			return nil
		},
	}

	cmd.Flags().StringVar(&path, "path", paths.WorkflowPath(""), "Path to file")
	return cmd
}

// checkSyntax parses the file at path when there is one. Problems are
// reported as warnings; they do not fail the command.
func checkSyntax(ctx context.Context, out *output.Formatter, path string) error {
	logger := logging.FromContext(ctx)

	info, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		out.Debug("No file at " + path + ", skipping syntax check")
		return nil
	case err == nil && info.IsDir():
		out.Debug(path + " is a directory, skipping syntax check")
		return nil
	}

	return out.Progress("Checking syntax of "+path, 1, func(p *output.Progress) error {
		res := validator.ValidateFile(path)
		p.Advance(1)
		logger.Debug("syntax check finished", "path", path, "result", res.Kind.String())

		if res.OK() {
			out.Success(fmt.Sprintf("Valid %s syntax", res.Language()), map[string]any{"path": path})
		} else {
			out.Warning(res.Message())
		}
		return nil
	})
}

// checkTickets checks the frontmatter of the ticket at path, or of every
// ticket below it when path is a directory.
func checkTickets(ctx context.Context, out *output.Formatter, path string) error {
	logger := logging.FromContext(ctx)

	info, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		out.Debug("No file at " + path + ", skipping ticket check")
		return nil
	case err == nil && !info.IsDir() && !validator.IsTicketFile(path):
		out.Debug(path + " is not a ticket file, skipping ticket check")
		return nil
	}

	files := []string{path}
	if err == nil && info.IsDir() {
		if files, err = validator.TicketFiles(path); err != nil {
			return errors.NewSystemError(err, "Check that "+path+" is readable")
		}
		if len(files) == 0 {
			out.Debug("No ticket files under " + path)
			return nil
		}
	}

	var failed []validator.FileResult
	rows := make([][]string, 0, len(files))
	err = out.Progress(fmt.Sprintf("Checking %d ticket file(s)", len(files)), len(files), func(p *output.Progress) error {
		for _, file := range files {
			if err := ctx.Err(); err != nil {
				return err
			}
			res := validator.ValidateTicketFile(file)
			p.Advance(1)
			rows = append(rows, []string{file, res.Kind.String()})
			if !res.OK() {
				failed = append(failed, res)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	logger.Debug("ticket check finished", "path", path, "files", len(files), "failed", len(failed))

	out.Table([]string{"FILE", "RESULT"}, rows)
	for _, res := range failed {
		out.Warning(res.Message())
	}
	if len(failed) == 0 {
		out.Success("All ticket files valid", map[string]any{"path": path, "files": len(files)})
	}
	return nil
}
