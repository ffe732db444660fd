package renderer

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/gookit/color"
	"github.com/stretchr/testify/require"

	"isgt/pkg/game/devtools"
)

func TestFormatText(t *testing.T) {
	p := New(0, false)

	require.Equal(t, "Room 42", p.FormatText("GT{Room} %d", 42))
	require.Equal(t, "Doors", p.FormatText("DOOR{GT{Doors}}"))
	require.Equal(t, "no markup", p.FormatText("no markup"))
}

func TestCenter(t *testing.T) {
	require.Equal(t, "   ab", Center("ab", 8))
	require.Equal(t, "abcdef", Center("abcdef", 4))
	require.Equal(t, "  "+ColorDoor.Sprint("ab"), Center(ColorDoor.Sprint("ab"), 6))
}

func TestRender(t *testing.T) {
	r, err := devtools.DevRoom(context.Background())
	require.NoError(t, err)
	l := r.Layout()

	out := New(0, false).Render(l)
	require.Contains(t, out, "Room dev-room")
	require.Contains(t, out, "Size 6x4")
	require.Contains(t, out, "Legend")

	for _, row := range devtools.Plan(l) {
		require.Contains(t, out, string(row))
	}
}

func TestRenderClipsRows(t *testing.T) {
	r, err := devtools.DevRoom(context.Background())
	require.NoError(t, err)
	l := r.Layout()

	rows := New(5, false).Rows(l)
	require.Len(t, rows, 2*4+1)
	for _, row := range rows {
		require.Equal(t, 5, len([]rune(row)))
	}
}

func TestRenderColorKeepsText(t *testing.T) {
	r, err := devtools.DevRoom(context.Background())
	require.NoError(t, err)
	l := r.Layout()

	plain := New(0, false).Render(l)
	colored := New(0, true).Render(l)
	require.Equal(t, plain, color.ClearCode(colored))

	var buf bytes.Buffer
	require.NoError(t, New(0, false).Write(&buf, l))
	require.Equal(t, plain, buf.String())
	require.True(t, strings.HasSuffix(buf.String(), "\n"))
}
