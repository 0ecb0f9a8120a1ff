package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitstory/gitstory/internal/errors"
	"github.com/gitstory/gitstory/internal/symbols"
)

func newJSON(t *testing.T) (*Formatter, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	return New(&buf, WithJSON(true)), &buf
}

func newText(t *testing.T, opts ...Option) (*Formatter, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	return New(&buf, append([]Option{WithColor(false)}, opts...)...), &buf
}

// decodeLines parses every output line as a JSON object.
func decodeLines(t *testing.T, out string) []map[string]any {
	t.Helper()
	var records []map[string]any
	for _, line := range strings.Split(strings.TrimRight(out, "\n"), "\n") {
		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &m), "line %q is not JSON", line)
		records = append(records, m)
	}
	return records
}

func TestNew_Mode(t *testing.T) {
	f, _ := newJSON(t)
	assert.True(t, f.JSON())

	f, _ = newText(t)
	assert.False(t, f.JSON())
}

func TestLevels_JSON(t *testing.T) {
	tests := []struct {
		name  string
		emit  func(*Formatter, string)
		level string
	}{
		{"info", (*Formatter).Info, "info"},
		{"debug", (*Formatter).Debug, "debug"},
		{"warning", (*Formatter).Warning, "warning"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, buf := newJSON(t)
			tt.emit(f, `say "hi" <now> ✓`)

			records := decodeLines(t, buf.String())
			require.Len(t, records, 1)
			assert.Equal(t, map[string]any{
				"level":   tt.level,
				"message": `say "hi" <now> ✓`,
			}, records[0])
			assert.Equal(t, 1, strings.Count(buf.String(), "\n"))
		})
	}
}

func TestLevels_Text(t *testing.T) {
	tests := []struct {
		name string
		emit func(*Formatter, string)
		want string
	}{
		{"info", (*Formatter).Info, "ℹ hello\n"},
		{"debug", (*Formatter).Debug, "• hello\n"},
		{"warning", (*Formatter).Warning, "⚠ hello\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, buf := newText(t)
			tt.emit(f, "hello")
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestLevels_TextASCII(t *testing.T) {
	f, buf := newText(t, WithForceASCII(true))
	f.Info("a")
	f.Warning("b")
	f.Debug("c")
	f.Success("d", nil)

	assert.Equal(t, "[i] a\n[!] b\n[*] c\n[OK] d\n", buf.String())
	assert.Equal(t, symbols.ASCII, f.Symbols())
}

func TestText_Color(t *testing.T) {
	var buf bytes.Buffer
	f := New(&buf, WithColor(true))
	f.Warning("careful")
	f.Debug("detail")

	out := buf.String()
	assert.Contains(t, out, "\x1b[")
	assert.Contains(t, out, "careful")
	assert.Contains(t, out, "detail")
}

func TestText_NoColorForBuffer(t *testing.T) {
	var buf bytes.Buffer
	f := New(&buf)
	f.Info("plain")
	assert.NotContains(t, buf.String(), "\x1b[")
}

func TestSuccess(t *testing.T) {
	t.Run("json with data", func(t *testing.T) {
		f, buf := newJSON(t)
		f.Success("Done", map[string]any{"ticket_id": "STORY-0001.1.3", "tasks": []int{1, 2, 3}})

		records := decodeLines(t, buf.String())
		require.Len(t, records, 1)
		assert.Equal(t, "success", records[0]["status"])
		assert.Equal(t, "Done", records[0]["message"])
		data := records[0]["data"].(map[string]any)
		assert.Equal(t, "STORY-0001.1.3", data["ticket_id"])
		assert.Equal(t, []any{1.0, 2.0, 3.0}, data["tasks"])
	})

	t.Run("json without data is null", func(t *testing.T) {
		f, buf := newJSON(t)
		f.Success("Done", nil)
		assert.Equal(t, `{"status":"success","message":"Done","data":null}`+"\n", buf.String())
	})

	t.Run("text lists sorted data", func(t *testing.T) {
		f, buf := newText(t)
		f.Success("Done", map[string]any{"b": 2, "a": "x"})
		assert.Equal(t, "✓ Done\n  a: x\n  b: 2\n", buf.String())
	})
}

func TestError(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		f, buf := newJSON(t)
		err := f.Error("Boom", map[string]any{"path": "x.yaml"}, 3)

		records := decodeLines(t, buf.String())
		require.Len(t, records, 1)
		assert.Equal(t, "error", records[0]["status"])
		assert.Equal(t, "Boom", records[0]["message"])
		assert.Equal(t, 3.0, records[0]["exit_code"])
		assert.Equal(t, map[string]any{"path": "x.yaml"}, records[0]["details"])

		var exitErr *errors.ExitError
		require.True(t, errors.As(err, &exitErr))
		assert.Equal(t, 3, exitErr.Code)
		assert.True(t, exitErr.Reported)
		assert.Equal(t, "Boom", exitErr.Error())
	})

	t.Run("json null details", func(t *testing.T) {
		f, buf := newJSON(t)
		_ = f.Error("Boom", nil, 1)
		assert.Equal(t, `{"status":"error","message":"Boom","details":null,"exit_code":1}`+"\n", buf.String())
	})

	t.Run("text", func(t *testing.T) {
		f, buf := newText(t)
		err := f.Error("Boom", map[string]any{"reason": "bad"}, 7)
		assert.Equal(t, "✗ Boom\n  reason: bad\n", buf.String())
		assert.Equal(t, 7, errors.ExitCode(err))
	})

	t.Run("negative exit code", func(t *testing.T) {
		f, buf := newJSON(t)
		err := f.Error("Boom", nil, -4)
		assert.Equal(t, DefaultExitCode, errors.ExitCode(err))
		assert.Contains(t, buf.String(), `"exit_code":1`)
	})

	t.Run("zero exit code kept", func(t *testing.T) {
		f, buf := newJSON(t)
		err := f.Error("Boom", nil, 0)
		require.Error(t, err)
		assert.Equal(t, 0, errors.ExitCode(err))
		assert.Contains(t, buf.String(), `"exit_code":0`)
	})
}

type failingWriter struct{ writes int }

func (w *failingWriter) Write([]byte) (int, error) {
	w.writes++
	return 0, errors.New("disk full")
}

func TestStickyWriteError(t *testing.T) {
	w := &failingWriter{}
	f := New(w, WithJSON(true))
	f.Info("one")
	f.Info("two")
	f.Table([]string{"a"}, nil)

	require.Error(t, f.Err())
	assert.Contains(t, f.Err().Error(), "disk full")
	assert.Equal(t, 1, w.writes)
}

func TestEncodingErrorIsSticky(t *testing.T) {
	f, buf := newJSON(t)
	f.Success("bad", map[string]any{"ch": make(chan int)})
	require.Error(t, f.Err())
	assert.Empty(t, buf.String())
}

func TestJSONInvariant_OneObjectPerCall(t *testing.T) {
	f, buf := newJSON(t)
	f.Info("i")
	f.Debug("d")
	f.Warning("w")
	f.Success("s", map[string]any{"multi": "line\nvalue"})
	_ = f.Error("e", nil, 2)
	f.Table([]string{"h"}, [][]string{{"v"}})

	records := decodeLines(t, buf.String())
	require.Len(t, records, 6)
	for _, r := range records[:5] {
		_, hasLevel := r["level"]
		_, hasStatus := r["status"]
		assert.True(t, hasLevel || hasStatus, "record %v has no severity", r)
		assert.Contains(t, r, "message")
	}
	assert.Equal(t, "table", records[5]["type"])
}
