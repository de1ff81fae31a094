package render

import (
	"bytes"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/berlin-clock/internal/domain/clock"
)

// ansiSequence matches SGR escape codes emitted by the colour renderer.
var ansiSequence = regexp.MustCompile("\x1b\\[[0-9;]*m")

// TestPlain_Render checks the exact text layout.
func TestPlain_Render(t *testing.T) {
	t.Parallel()

	got := Plain{}.Render(clock.Compute(clock.Time{Hour: 13, Minute: 17, Second: 1}))
	want := strings.Join([]string{"O", "RROO", "RRRO", "YYROOOOOOOO", "YYOO"}, LineSeparator)
	require.Equal(t, want, got)

	got = Plain{}.Render(clock.Blank())
	want = strings.Join([]string{"O", "OOOO", "OOOO", "OOOOOOOOOOO", "OOOO"}, LineSeparator)
	require.Equal(t, want, got)
}

// TestColor_Render verifies the colour layout carries the same lamps as plain text.
func TestColor_Render(t *testing.T) {
	t.Parallel()

	display := clock.Compute(clock.Time{Hour: 24})
	got := NewColor(new(bytes.Buffer)).Render(display)

	lines := strings.Split(ansiSequence.ReplaceAllString(got, ""), "\n")
	require.Len(t, lines, 5)

	for i, row := range display.Rows() {
		require.Equal(t, row.String(), strings.ReplaceAll(lines[i], " ", ""), "row %d", i)
	}
}

// TestParseFormat checks format names.
func TestParseFormat(t *testing.T) {
	t.Parallel()

	cases := map[string]Format{
		"":        FormatPlain,
		"plain":   FormatPlain,
		" Color ": FormatColor,
	}

	for input, want := range cases {
		got, err := ParseFormat(input)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}

	_, err := ParseFormat("html")
	require.ErrorIs(t, err, ErrUnknownFormat)
}

// TestNew returns the matching implementation.
func TestNew(t *testing.T) {
	t.Parallel()

	r, err := New(FormatPlain, nil)
	require.NoError(t, err)
	require.IsType(t, Plain{}, r)

	r, err = New(FormatColor, new(bytes.Buffer))
	require.NoError(t, err)
	require.IsType(t, new(Color), r)

	_, err = New("svg", nil)
	require.ErrorIs(t, err, ErrUnknownFormat)
}
