package config

import (
	"path/filepath"
	"slices"
	"strings"

	"github.com/gitstory/gitstory/internal/errors"
)

// Validation errors for configuration fields.
var (
	// ErrInvalidLogLevel indicates an unrecognized log level.
	ErrInvalidLogLevel = errors.New("invalid log level")

	// ErrInvalidLogFormat indicates an unrecognized log format.
	ErrInvalidLogFormat = errors.New("invalid log format")

	// ErrInvalidPath indicates a path value is malformed.
	ErrInvalidPath = errors.New("invalid path")
)

// LogLevels lists the accepted log_level values, most quiet first.
var LogLevels = []string{"error", "warn", "info", "debug"}

// LogFormats lists the accepted log_format values.
var LogFormats = []string{"text", "json"}

// Validate checks a Config for validity.
// Returns nil if valid, or a slice of validation errors.
func Validate(cfg *Config) []error {
	if cfg == nil {
		return []error{errors.New("config is nil")}
	}

	var errs []error

	if !slices.Contains(LogLevels, strings.ToLower(cfg.LogLevel)) {
		errs = append(errs, &ValueError{
			Field: KeyLogLevel,
			Value: cfg.LogLevel,
			Err:   ErrInvalidLogLevel,
		})
	}

	if !slices.Contains(LogFormats, strings.ToLower(cfg.LogFormat)) {
		errs = append(errs, &ValueError{
			Field: KeyLogFormat,
			Value: cfg.LogFormat,
			Err:   ErrInvalidLogFormat,
		})
	}

	if err := validatePath(cfg.Validate.Path); err != nil {
		errs = append(errs, &PathError{
			Field: KeyValidatePath,
			Path:  cfg.Validate.Path,
			Err:   err,
		})
	}

	if cfg.LogFile != "" {
		if err := validatePath(cfg.LogFile); err != nil {
			errs = append(errs, &PathError{
				Field: KeyLogFile,
				Path:  cfg.LogFile,
				Err:   err,
			})
		}
	}

	return errs
}

// validatePath checks if a path string is well-formed.
// It does not check if the path exists, only that it's syntactically valid.
func validatePath(path string) error {
	if strings.ContainsRune(path, '\x00') {
		return ErrInvalidPath
	}

	cleaned := filepath.Clean(path)
	if path == "" || cleaned == "." {
		return ErrInvalidPath
	}

	return nil
}

// ValueError represents a field holding an unsupported value.
type ValueError struct {
	Field string
	Value string
	Err   error
}

func (e *ValueError) Error() string {
	return e.Err.Error() + ": " + e.Field + "=" + e.Value
}

func (e *ValueError) Unwrap() error {
	return e.Err
}

// PathError represents an error for a specific path field.
type PathError struct {
	Field string
	Path  string
	Err   error
}

func (e *PathError) Error() string {
	return e.Field + ": " + e.Err.Error() + ": " + e.Path
}

func (e *PathError) Unwrap() error {
	return e.Err
}
