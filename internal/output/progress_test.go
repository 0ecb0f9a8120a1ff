package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitstory/gitstory/internal/errors"
)

func TestProgress_TextPrintsDescriptionOnce(t *testing.T) {
	f, buf := newText(t)
	var seen *Progress

	err := f.Progress("Scanning tickets", 10, func(p *Progress) error {
		seen = p
		assert.False(t, p.Closed())
		assert.Equal(t, "Scanning tickets", p.Description())
		assert.Equal(t, 10, p.Total())
		p.Advance(3)
		p.Advance(0)
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, "→ Scanning tickets\n", buf.String())
	assert.True(t, seen.Closed())
	assert.Equal(t, 3, seen.Completed())

	seen.Advance(5)
	assert.Equal(t, 3, seen.Completed(), "Advance after release must be ignored")
}

func TestProgress_JSONIsSilent(t *testing.T) {
	f, buf := newJSON(t)
	err := f.Progress("Scanning", 0, func(*Progress) error { return nil })
	require.NoError(t, err)
	assert.Empty(t, buf.String())
}

func TestProgress_ReleasedOnError(t *testing.T) {
	f, buf := newText(t)
	boom := errors.New("boom")
	var seen *Progress

	err := f.Progress("Working", 1, func(p *Progress) error {
		seen = p
		return boom
	})

	assert.ErrorIs(t, err, boom)
	assert.True(t, seen.Closed())
	assert.Equal(t, "→ Working\n", buf.String())
}

func TestProgress_ReleasedOnPanic(t *testing.T) {
	f, _ := newText(t)
	var seen *Progress

	assert.PanicsWithValue(t, "kaboom", func() {
		_ = f.Progress("Working", 1, func(p *Progress) error {
			seen = p
			panic("kaboom")
		})
	})
	require.NotNil(t, seen)
	assert.True(t, seen.Closed())
}
