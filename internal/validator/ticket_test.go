package validator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitstory/gitstory/internal/errors"
	"github.com/gitstory/gitstory/pkg/frontmatter"
)

func TestValidateTicketFile(t *testing.T) {
	tests := []struct {
		name       string
		content    string
		wantKind   Kind
		wantDetail string
	}{
		{"valid", "---\nid: STORY-0001.2.4\nstatus: todo\n---\n\n# Story\n", KindValid, ""},
		{"empty frontmatter", "---\n---\nbody\n", KindValid, ""},
		{"no frontmatter", "# Story\n", KindSyntaxError, frontmatter.ErrNoFrontmatter.Error()},
		{"unterminated", "---\nid: T-1\n", KindSyntaxError, frontmatter.ErrUnterminated.Error()},
		{"bad yaml", "---\nid: [T-1\n---\n", KindSyntaxError, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "TICKET.md", tt.content)
			res := ValidateTicketFile(path)
			assert.Equal(t, tt.wantKind, res.Kind, res.Message())
			if tt.wantDetail != "" {
				assert.Equal(t, tt.wantDetail, res.Detail)
			}
			if tt.wantKind == KindSyntaxError {
				assert.True(t, errors.Is(res.Err(), ErrSyntax))
			}
		})
	}
}

func TestValidateTicketFile_Missing(t *testing.T) {
	res := ValidateTicketFile(filepath.Join(t.TempDir(), "nope.md"))
	assert.Equal(t, KindNotFound, res.Kind)
}

func TestTicketFiles(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{
		"INIT-0001/EPIC-0001.1/STORY-0001.1.1.md",
		"INIT-0001/README.MD",
		"INIT-0001/EPIC-0001.1/notes.txt",
		"INIT-0001.md",
		".archive/OLD-1.md",
	} {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte("---\n---\n"), 0o600))
	}

	files, err := TicketFiles(root)
	require.NoError(t, err)
	// "." sorts before "/".
	assert.Equal(t, []string{
		filepath.Join(root, "INIT-0001.md"),
		filepath.Join(root, "INIT-0001", "EPIC-0001.1", "STORY-0001.1.1.md"),
		filepath.Join(root, "INIT-0001", "README.MD"),
	}, files)
}

func TestTicketFiles_MissingRoot(t *testing.T) {
	_, err := TicketFiles(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}
