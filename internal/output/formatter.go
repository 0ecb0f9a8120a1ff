package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/fatih/color"

	"github.com/gitstory/gitstory/internal/errors"
	"github.com/gitstory/gitstory/internal/symbols"
	"github.com/gitstory/gitstory/internal/terminal"
)

// Level is the severity tag attached to an emitted message.
type Level string

// Severity tags. Info, debug and warning are rendered as "level" in JSON;
// success and error are rendered as "status".
const (
	LevelInfo    Level = "info"
	LevelDebug   Level = "debug"
	LevelWarning Level = "warning"
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// DefaultExitCode replaces a negative exit code passed to Error.
const DefaultExitCode = errors.ExitUser

type levelRecord struct {
	Level   Level  `json:"level"`
	Message string `json:"message"`
}

type successRecord struct {
	Status  Level          `json:"status"`
	Message string         `json:"message"`
	Data    map[string]any `json:"data"`
}

type errorRecord struct {
	Status   Level          `json:"status"`
	Message  string         `json:"message"`
	Details  map[string]any `json:"details"`
	ExitCode int            `json:"exit_code"`
}

type tableRecord struct {
	Type    string     `json:"type"`
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

// Option configures a Formatter.
type Option func(*settings)

type settings struct {
	json       bool
	forceASCII bool
	color      *bool
}

// WithJSON selects newline-delimited JSON output.
func WithJSON(on bool) Option {
	return func(s *settings) { s.json = on }
}

// WithForceASCII selects the ASCII glyph set regardless of stream encoding.
func WithForceASCII(on bool) Option {
	return func(s *settings) { s.forceASCII = on }
}

// WithColor overrides colour detection for text mode.
func WithColor(on bool) Option {
	return func(s *settings) { s.color = &on }
}

// Formatter renders messages in text or JSON mode.
type Formatter struct {
	out     io.Writer
	json    bool
	symbols symbols.Set
	styles  styles
	err     error
}

type styles struct {
	info      *color.Color
	debug     *color.Color
	warning   *color.Color
	success   *color.Color
	errorText *color.Color
	header    *color.Color
}

func newStyles(enabled bool) styles {
	s := styles{
		info:      color.New(color.FgBlue),
		debug:     color.New(color.Faint),
		warning:   color.New(color.FgYellow),
		success:   color.New(color.FgGreen),
		errorText: color.New(color.FgRed, color.Bold),
		header:    color.New(color.Bold),
	}
	for _, c := range []*color.Color{s.info, s.debug, s.warning, s.success, s.errorText, s.header} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return s
}

// New creates a Formatter writing to out. Colour is enabled only when out
// supports it, unless overridden with [WithColor].
func New(out io.Writer, opts ...Option) *Formatter {
	var s settings
	for _, opt := range opts {
		opt(&s)
	}

	useColor := terminal.SupportsColor(out)
	if s.color != nil {
		useColor = *s.color
	}

	return &Formatter{
		out:     out,
		json:    s.json,
		symbols: symbols.ForWriter(out, s.forceASCII),
		styles:  newStyles(useColor),
	}
}

// JSON reports whether the formatter emits JSON.
func (f *Formatter) JSON() bool {
	return f.json
}

// Symbols returns the glyph set used in text mode.
func (f *Formatter) Symbols() symbols.Set {
	return f.symbols
}

// Err returns the first write or encoding error, if any.
func (f *Formatter) Err() error {
	return f.err
}

// Info emits an informational message.
func (f *Formatter) Info(msg string) {
	f.emitLevel(LevelInfo, msg)
}

// Debug emits a diagnostic message, dimmed in text mode.
func (f *Formatter) Debug(msg string) {
	f.emitLevel(LevelDebug, msg)
}

// Warning emits a warning message.
func (f *Formatter) Warning(msg string) {
	f.emitLevel(LevelWarning, msg)
}

func (f *Formatter) emitLevel(level Level, msg string) {
	if f.json {
		f.writeJSON(levelRecord{Level: level, Message: msg})
		return
	}

	switch level {
	case LevelDebug:
		f.printf("%s %s\n", f.styles.debug.Sprint(f.symbols.Debug), f.styles.debug.Sprint(msg))
	case LevelWarning:
		f.printf("%s %s\n", f.styles.warning.Sprint(f.symbols.Warning), msg)
	default:
		f.printf("%s %s\n", f.styles.info.Sprint(f.symbols.Info), msg)
	}
}

// Success emits a success message with optional auxiliary data.
// Text mode prints each data entry as an indented "key: value" line.
func (f *Formatter) Success(msg string, data map[string]any) {
	if f.json {
		f.writeJSON(successRecord{Status: LevelSuccess, Message: msg, Data: data})
		return
	}

	f.printf("%s %s\n", f.styles.success.Sprint(f.symbols.Success), msg)
	f.printFields(data)
}

// Error emits an error message and returns an *errors.ExitError carrying
// exitCode. The returned error is marked as reported, so the dispatcher
// exits without printing it again. Negative exit codes become
// [DefaultExitCode].
func (f *Formatter) Error(msg string, details map[string]any, exitCode int) error {
	if exitCode < 0 {
		exitCode = DefaultExitCode
	}

	if f.json {
		f.writeJSON(errorRecord{
			Status:   LevelError,
			Message:  msg,
			Details:  details,
			ExitCode: exitCode,
		})
	} else {
		f.printf("%s %s\n", f.styles.errorText.Sprint(f.symbols.Error), f.styles.errorText.Sprint(msg))
		f.printFields(details)
	}

	return errors.NewReportedError(errors.New(msg), exitCode)
}

// printFields writes map entries as indented lines, sorted by key.
func (f *Formatter) printFields(fields map[string]any) {
	for _, key := range slices.Sorted(maps.Keys(fields)) {
		f.printf("  %s: %v\n", key, fields[key])
	}
}

func (f *Formatter) writeJSON(v any) {
	if f.err != nil {
		return
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		f.err = errors.Wrap(err, "encoding JSON message")
		return
	}

	if _, err := f.out.Write(buf.Bytes()); err != nil {
		f.err = errors.Wrap(err, "writing output")
	}
}

func (f *Formatter) printf(format string, args ...any) {
	if f.err != nil {
		return
	}
	if _, err := fmt.Fprintf(f.out, format, args...); err != nil {
		f.err = errors.Wrap(err, "writing output")
	}
}
