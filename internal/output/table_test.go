package output

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_JSONRoundTrip(t *testing.T) {
	f, buf := newJSON(t)
	headers := []string{"ID", "Status"}
	rows := [][]string{{"EPIC-0001", "In Progress"}, {"STORY-0001.2", "Done"}}
	f.Table(headers, rows)

	var got struct {
		Type    string     `json:"type"`
		Headers []string   `json:"headers"`
		Rows    [][]string `json:"rows"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "table", got.Type)
	assert.Equal(t, headers, got.Headers)
	assert.Equal(t, rows, got.Rows)
}

func TestTable_JSONEmpty(t *testing.T) {
	f, buf := newJSON(t)
	f.Table(nil, nil)
	assert.Equal(t, `{"type":"table","headers":[],"rows":[]}`+"\n", buf.String())
}

func TestTable_TextAligned(t *testing.T) {
	f, buf := newText(t)
	f.Table(
		[]string{"ID", "Status"},
		[][]string{{"EPIC-0001", "Open"}, {"T-1", "Done"}},
	)

	want := "" +
		"ID         Status\n" +
		"---------  ------\n" +
		"EPIC-0001  Open\n" +
		"T-1        Done\n"
	assert.Equal(t, want, buf.String())
}

func TestTable_TextWideAndRagged(t *testing.T) {
	f, buf := newText(t)
	f.Table(
		[]string{"名前", "n"},
		[][]string{{"ab"}, {"x", "1", "extra"}},
	)

	want := "" +
		"名前  n\n" +
		"----  -  -----\n" +
		"ab\n" +
		"x     1  extra\n"
	assert.Equal(t, want, buf.String())
}

func TestTable_TextNoColumns(t *testing.T) {
	f, buf := newText(t)
	f.Table(nil, nil)
	assert.Empty(t, buf.String())
}
