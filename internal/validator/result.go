package validator

import (
	"fmt"

	"github.com/gitstory/gitstory/internal/errors"
)

// Kind tags the outcome of a file check.
type Kind int

const (
	// KindValid means the file parsed.
	KindValid Kind = iota
	// KindNotFound means the file does not exist.
	KindNotFound
	// KindSyntaxError means the file was read but does not parse.
	KindSyntaxError
	// KindIOError means the file exists but could not be read.
	KindIOError
)

func (k Kind) String() string {
	switch k {
	case KindValid:
		return "valid"
	case KindNotFound:
		return "not_found"
	case KindSyntaxError:
		return "syntax_error"
	case KindIOError:
		return "io_error"
	default:
		return "unknown"
	}
}

// Languages a FileResult can report on.
const (
	SyntaxYAML = "YAML"
	SyntaxTOML = "TOML"
)

// Sentinel errors matched by FileResult.Err.
var (
	ErrSyntax = errors.New("invalid syntax")
	ErrIO     = errors.New("error reading file")
)

// FileResult is the outcome of checking one file.
type FileResult struct {
	// Path is the file that was checked.
	Path string
	// Kind tags the outcome.
	Kind Kind
	// Detail is the parser or I/O message for SyntaxError and IOError.
	Detail string
	// Syntax names the checked language; empty means YAML.
	Syntax string
}

// OK reports whether the file is valid.
func (r FileResult) OK() bool {
	return r.Kind == KindValid
}

// Message renders the result for people. Valid results render as "".
func (r FileResult) Message() string {
	switch r.Kind {
	case KindNotFound:
		return "File not found: " + r.Path
	case KindSyntaxError:
		return fmt.Sprintf("Invalid %s syntax in %s: %s", r.Language(), r.Path, r.Detail)
	case KindIOError:
		return fmt.Sprintf("Error reading %s: %s", r.Path, r.Detail)
	default:
		return ""
	}
}

// Language returns the checked language name, defaulting to YAML.
func (r FileResult) Language() string {
	if r.Syntax == "" {
		return SyntaxYAML
	}
	return r.Syntax
}

// Err converts the result to an error, nil when valid. The error matches
// errors.ErrNotFound, ErrSyntax or ErrIO with errors.Is.
func (r FileResult) Err() error {
	var mark error
	switch r.Kind {
	case KindValid:
		return nil
	case KindNotFound:
		mark = errors.ErrNotFound
	case KindSyntaxError:
		mark = ErrSyntax
	default:
		mark = ErrIO
	}
	return errors.Mark(errors.New(r.Message()), mark)
}
