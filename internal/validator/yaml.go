package validator

import (
	"bytes"
	"io"
	"io/fs"
	"log/slog"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gitstory/gitstory/internal/errors"
	"github.com/gitstory/gitstory/pkg/fileutil"
)

// ValidateYAML reports whether content parses as YAML. Empty or
// whitespace-only content is valid.
func ValidateYAML(content string) bool {
	return parseYAML([]byte(content)) == nil
}

// ValidateYAMLFile checks that the file at path parses as YAML.
func ValidateYAMLFile(path string) FileResult {
	return checkFile(path, "", parseYAML)
}

// checkFile reads path and runs parse over its content.
func checkFile(path, syntax string, parse func([]byte) error) FileResult {
	res := FileResult{Path: path, Syntax: syntax}

	data, err := fileutil.ReadFileWithLimit(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			res.Kind = KindNotFound
			return res
		}
		slog.Debug("reading file failed", "path", path, "syntax", res.Language(), "error", err)
		res.Kind, res.Detail = KindIOError, err.Error()
		return res
	}

	if err := parse(data); err != nil {
		res.Kind, res.Detail = KindSyntaxError, err.Error()
		return res
	}
	res.Kind = KindValid
	return res
}

// errMultipleDocuments is returned for a stream holding more than one
// document.
var errMultipleDocuments = errors.New("expected a single document in the stream")

// parseYAML decodes data as a single YAML document and returns the parser
// error, if any.
func parseYAML(data []byte) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	var doc yaml.Node
	if err := dec.Decode(&doc); err == io.EOF {
		return nil
	} else if err != nil {
		return yamlError(err)
	}

	var next yaml.Node
	switch err := dec.Decode(&next); {
	case err == io.EOF:
		return nil
	case err != nil:
		return yamlError(err)
	default:
		return errMultipleDocuments
	}
}

func yamlError(err error) error {
	return errors.New(strings.TrimPrefix(err.Error(), "yaml: "))
}
