package validator

import (
	"io/fs"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gitstory/gitstory/internal/errors"
	"github.com/gitstory/gitstory/pkg/frontmatter"
)

// TicketExt is the file extension of ticket files.
const TicketExt = ".md"

// ValidateTicketFile checks that the Markdown ticket at path opens with a
// frontmatter block that parses as YAML. The body is not inspected.
func ValidateTicketFile(path string) FileResult {
	return checkFile(path, "", parseTicket)
}

func parseTicket(data []byte) error {
	matter, _, err := frontmatter.Split(data)
	if err != nil {
		return err
	}
	return parseYAML(matter)
}

// IsTicketFile reports whether path names a ticket file.
func IsTicketFile(path string) bool {
	return strings.EqualFold(filepath.Ext(path), TicketExt)
}

// TicketFiles returns the ticket files under root in lexical order.
// Hidden directories are skipped.
func TicketFiles(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if IsTicketFile(path) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "listing tickets under %s", root)
	}
	slices.Sort(files)
	return files, nil
}
