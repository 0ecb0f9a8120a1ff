package validator

import (
	"bytes"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/gitstory/gitstory/internal/errors"
)

// ValidateTOML reports whether content parses as TOML. Empty or
// whitespace-only content is valid.
func ValidateTOML(content string) bool {
	return parseTOML([]byte(content)) == nil
}

// ValidateTOMLFile checks that the file at path parses as TOML.
func ValidateTOMLFile(path string) FileResult {
	return checkFile(path, SyntaxTOML, parseTOML)
}

// ValidateFile picks the checker from the file extension: .toml files are
// checked as TOML, everything else as YAML.
func ValidateFile(path string) FileResult {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return ValidateTOMLFile(path)
	}
	return ValidateYAMLFile(path)
}

func parseTOML(data []byte) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}

	var v map[string]any
	err := toml.Unmarshal(data, &v)
	if err == nil {
		return nil
	}

	// DecodeError carries the position of the offending token.
	var decodeErr *toml.DecodeError
	if errors.As(err, &decodeErr) {
		row, col := decodeErr.Position()
		return errors.Newf("line %d, column %d: %s", row, col, decodeErr.Error())
	}
	return err
}
