package terminal

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClip(t *testing.T) {
	require.Equal(t, "abc", Clip("abcdef", 3))
	require.Equal(t, "ab", Clip("ab", 3))
	require.Equal(t, "abcdef", Clip("abcdef", 0))
	require.Equal(t, "+#", Clip("+#D#+", 2))
}

func TestSizeFallsBackWithoutTerminal(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer f.Close()

	require.False(t, IsTerminal(f))
	w, h := Size(f)
	require.Equal(t, DefaultWidth, w)
	require.Equal(t, DefaultHeight, h)

	w, h = Size(nil)
	require.Equal(t, DefaultWidth, w)
	require.Equal(t, DefaultHeight, h)
}
