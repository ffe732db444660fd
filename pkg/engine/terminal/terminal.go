// Package terminal reports the size of the output terminal so previews can
// be clipped to fit.
package terminal

import (
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// Size returns the width and height of the terminal attached to f, or the
// defaults when f is not a terminal.
func Size(f *os.File) (width, height int) {
	if f == nil || !term.IsTerminal(int(f.Fd())) {
		return DefaultWidth, DefaultHeight
	}
	width, height, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 || height <= 0 {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// Width returns the width of the terminal attached to stdout
func Width() int {
	width, _ := Size(os.Stdout)
	return width
}

// IsTerminal reports whether f is attached to a terminal
func IsTerminal(f *os.File) bool {
	return f != nil && term.IsTerminal(int(f.Fd()))
}

// Clip cuts s to at most width runes. A non-positive width leaves s as is.
func Clip(s string, width int) string {
	if width <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width])
}
