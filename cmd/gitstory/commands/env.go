package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gitstory/gitstory/internal/config"
	"github.com/gitstory/gitstory/internal/errors"
	"github.com/gitstory/gitstory/internal/logging"
	"github.com/gitstory/gitstory/internal/output"
)

// Env is the state of a single invocation. It is created by [Execute],
// handed to every command constructor, and filled in once flags are parsed.
type Env struct {
	Stdout io.Writer
	Stderr io.Writer

	// Viper holds flag bindings for this invocation only.
	Viper *viper.Viper
	// Config is nil until the root pre-run hook has loaded it.
	Config *config.Config
	Logger *slog.Logger

	out         *output.Formatter
	closer      io.Closer
	prevDefault *slog.Logger
}

// NewEnv returns an Env writing command output to stdout and diagnostics to
// stderr.
func NewEnv(stdout, stderr io.Writer) *Env {
	return &Env{
		Stdout: stdout,
		Stderr: stderr,
		Viper:  config.New(),
		Logger: logging.NewDiscard(),
	}
}

// Output returns the invocation's formatter, creating it on first use.
// Before the config is loaded the mode comes straight from flags and
// environment so early failures still honour --json.
func (e *Env) Output() *output.Formatter {
	if e.out != nil {
		return e.out
	}

	jsonMode := e.Viper.GetBool(config.KeyJSON)
	ascii := e.Viper.GetBool(config.KeyASCII)
	if e.Config != nil {
		jsonMode, ascii = e.Config.JSON, e.Config.ASCII
	}

	e.out = output.New(e.Stdout, output.WithJSON(jsonMode), output.WithForceASCII(ascii))
	return e.out
}

// setup loads configuration and installs the logger. It runs as the root
// command's persistent pre-run hook.
func (e *Env) setup(cmd *cobra.Command, configFile string) error {
	cfg, err := config.Load(e.Viper, configFile)
	if err != nil {
		return errors.NewConfigError(err)
	}
	e.Config = cfg

	logger, closer, err := logging.Setup(logging.Options{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		File:   cfg.LogFile,
		Output: e.Stderr,
	})
	if err != nil {
		return errors.NewUserError(err, "Check the --log-level and --log-file values")
	}
	e.Logger, e.closer = logger, closer

	// Library code logs through slog's default logger.
	e.prevDefault = slog.Default()
	slog.SetDefault(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.NewContext(ctx, logger))

	logger.Debug("configuration loaded",
		"command", cmd.CommandPath(),
		"config_file", e.Viper.ConfigFileUsed(),
		"json", cfg.JSON,
		"ascii", cfg.ASCII,
	)
	return nil
}

// Close releases the log file and restores the default logger.
func (e *Env) Close() error {
	if e.prevDefault != nil {
		slog.SetDefault(e.prevDefault)
		e.prevDefault = nil
	}
	if e.closer == nil {
		return nil
	}
	err := e.closer.Close()
	e.closer = nil
	return err
}

// exitCode reports err, unless it was already rendered, and maps it to the
// process exit status.
func (e *Env) exitCode(err error) int {
	if err == nil {
		if e.out != nil && e.out.Err() != nil {
			e.Logger.Error("writing output failed", "error", e.out.Err())
			fmt.Fprintf(e.Stderr, "gitstory: writing output: %v\n", e.out.Err())
			return errors.ExitSystem
		}
		return errors.ExitSuccess
	}

	var exitErr *errors.ExitError
	if errors.As(err, &exitErr) && exitErr.Reported {
		return exitErr.Code
	}

	e.Logger.Debug("command failed", "error", fmt.Sprintf("%+v", err))

	var details map[string]any
	if exitErr != nil && exitErr.Suggestion != "" {
		details = map[string]any{"suggestion": exitErr.Suggestion}
	}
	code := errors.ExitCode(err)
	_ = e.Output().Error(err.Error(), details, code)
	return code
}
