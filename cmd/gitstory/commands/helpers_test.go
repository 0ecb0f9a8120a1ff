package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gitstory/gitstory/internal/paths"
)

// isolate runs the test from an empty directory with no user config and no
// GITSTORY_* overrides.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv(paths.ConfigDirEnv, t.TempDir())
	for _, env := range os.Environ() {
		name, _, _ := strings.Cut(env, "=")
		if strings.HasPrefix(name, "GITSTORY_") && name != paths.ConfigDirEnv {
			t.Setenv(name, "")
			os.Unsetenv(name)
		}
	}
	t.Setenv("NO_COLOR", "1")
	return dir
}

type result struct {
	code   int
	stdout string
	stderr string
}

func run(t *testing.T, args ...string) result {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := Execute(t.Context(), args, &stdout, &stderr)
	return result{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

// jsonLines decodes every stdout line, failing the test on any non-JSON line.
func jsonLines(t *testing.T, out string) []map[string]any {
	t.Helper()
	var records []map[string]any
	for line := range strings.SplitSeq(strings.TrimRight(out, "\n"), "\n") {
		var rec map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &rec), "line %q is not JSON", line)
		records = append(records, rec)
	}
	return records
}
