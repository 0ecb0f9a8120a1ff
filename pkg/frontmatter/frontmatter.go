package frontmatter

import (
	"bytes"
	"errors"
)

const delimiter = "---"

var (
	// ErrNoFrontmatter is returned when the content does not open with "---".
	ErrNoFrontmatter = errors.New("no frontmatter found")

	// ErrUnterminated is returned when the closing "---" is missing.
	ErrUnterminated = errors.New("missing closing frontmatter delimiter")
)

// Split separates the frontmatter block from the body. matter excludes both
// delimiter lines; body starts on the line after the closing delimiter.
// Without frontmatter the whole content is returned as body along with
// ErrNoFrontmatter.
func Split(content []byte) (matter, body []byte, err error) {
	first, rest := nextLine(content)
	if !isDelimiter(first) {
		return nil, content, ErrNoFrontmatter
	}

	start, offset := rest, 0
	for len(rest) > 0 {
		line, next := nextLine(rest)
		if isDelimiter(line) {
			return start[:offset], next, nil
		}
		offset += len(rest) - len(next)
		rest = next
	}
	return nil, nil, ErrUnterminated
}

func nextLine(b []byte) (line, rest []byte) {
	if i := bytes.IndexByte(b, '\n'); i >= 0 {
		return b[:i], b[i+1:]
	}
	return b, nil
}

func isDelimiter(line []byte) bool {
	return string(bytes.TrimRight(line, " \t\r")) == delimiter
}
