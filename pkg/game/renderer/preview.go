// Package renderer draws a coloured top view of a generated room in the
// terminal.
package renderer

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"isgt/pkg/engine/terminal"
	"isgt/pkg/engine/world"
	"isgt/pkg/game/devtools"
	"isgt/pkg/game/room"
)

// dynamicGet looks up translation keys found in markup at runtime.
var dynamicGet = gotext.Get

var (
	ColorWall   = color.Style{color.FgGray}
	ColorCorner = color.Style{color.FgGray, color.OpBold}
	ColorDoor   = color.Style{color.FgYellow, color.OpBold}
	ColorWindow = color.Style{color.FgCyan}
	ColorProp   = color.Style{color.FgMagenta, color.OpBold}
	ColorFloor  = color.Style{color.FgGray}
	ColorTitle  = color.Style{color.FgBlue, color.OpBold}
	ColorSubtle = color.Style{color.FgGray, color.OpBold}
	ColorDenied = color.Style{color.FgRed, color.OpBold}
)

// Preview renders layouts as coloured text
type Preview struct {
	// Width clips every plan row to this many columns. 0 disables clipping.
	Width int

	// Color turns ANSI styling on
	Color bool

	regexpStringFunctions *regexp.Regexp
}

// New returns a preview clipped to width
func New(width int, colored bool) *Preview {
	return &Preview{
		Width:                 width,
		Color:                 colored,
		regexpStringFunctions: regexp.MustCompile(`([a-zA-Z_]*){([a-z A-Z0-9_,:]+)}`),
	}
}

// NewForTerminal returns a preview sized to stdout, coloured when stdout is
// a terminal
func NewForTerminal() *Preview {
	return New(terminal.Width(), terminal.IsTerminal(os.Stdout))
}

func (p *Preview) style(s color.Style, text string) string {
	if !p.Color {
		return text
	}
	return s.Sprint(text)
}

// maxMarkupDepth bounds how deeply markup functions may nest
const maxMarkupDepth = 4

// FormatText formats msg and expands its markup: GT{key} is translated,
// DOOR{}, WINDOW{}, PROP{}, TITLE{}, SUBTLE{} and DENIED{} are styled.
// Functions nest, innermost first.
func (p *Preview) FormatText(msg string, a ...any) string {
	ret := fmt.Sprintf(msg, a...)
	for i := 0; i < maxMarkupDepth; i++ {
		expanded := p.expand(ret)
		if expanded == ret {
			break
		}
		ret = expanded
	}
	return ret
}

func (p *Preview) expand(ret string) string {
	for _, match := range p.regexpStringFunctions.FindAllStringSubmatch(ret, -1) {
		function := match[1]
		operand := match[2]

		var val string
		switch function {
		case "GT":
			val = dynamicGet(operand)
		case "DOOR":
			val = p.style(ColorDoor, operand)
		case "WINDOW":
			val = p.style(ColorWindow, operand)
		case "PROP":
			val = p.style(ColorProp, operand)
		case "TITLE":
			val = p.style(ColorTitle, operand)
		case "SUBTLE":
			val = p.style(ColorSubtle, operand)
		case "DENIED":
			val = p.style(ColorDenied, operand)
		default:
			val = operand
		}

		ret = strings.Replace(ret, match[0], val, 1)
	}

	return ret
}

// Center pads s so that its visible text sits in the middle of width
// columns. Styling codes do not count towards the width.
func Center(s string, width int) string {
	visible := len([]rune(color.ClearCode(s)))
	if visible >= width {
		return s
	}
	left := (width - visible) / 2
	return strings.Repeat(" ", left) + s
}

func (p *Preview) symbol(r rune) string {
	text := string(r)
	switch r {
	case devtools.SymbolCorner:
		return p.style(ColorCorner, text)
	case devtools.SymbolWall:
		return p.style(ColorWall, text)
	case devtools.SymbolDoor:
		return p.style(ColorDoor, text)
	case devtools.SymbolWindow:
		return p.style(ColorWindow, text)
	case devtools.SymbolFloor:
		return p.style(ColorFloor, text)
	case devtools.SymbolOpen:
		return text
	default:
		return p.style(ColorProp, text)
	}
}

// Rows returns the styled plan rows of l, clipped to the preview width
func (p *Preview) Rows(l room.Layout) []string {
	plan := devtools.Plan(l)
	rows := make([]string, 0, len(plan))
	for _, row := range plan {
		line := terminal.Clip(string(row), p.Width)
		var b strings.Builder
		for _, r := range line {
			b.WriteString(p.symbol(r))
		}
		rows = append(rows, b.String())
	}
	return rows
}

// Render returns the header, plan and legend of l
func (p *Preview) Render(l room.Layout) string {
	width := p.Width
	if width <= 0 {
		width = 2*l.Grid.Width() + 1
	}

	var b strings.Builder
	b.WriteString(Center(p.FormatText("TITLE{GT{Room}} %s", l.ID), width))
	b.WriteString("\n")
	b.WriteString(p.FormatText("SUBTLE{GT{Size}} %dx%d  DOOR{GT{Doors}} %d  WINDOW{GT{Windows}} %d  PROP{GT{Props}} %d/%d\n",
		l.Grid.Width(),
		l.Grid.Height(),
		l.CountOpenings(world.Door),
		l.CountOpenings(world.Window),
		len(l.Props),
		l.PropTarget,
	))
	if len(l.OpeningShortfalls) > 0 || len(l.Props) < l.PropTarget {
		b.WriteString(p.FormatText("DENIED{GT{Placement shortfall}}\n"))
	}

	for _, row := range p.Rows(l) {
		b.WriteString(row)
		b.WriteString("\n")
	}

	b.WriteString(p.FormatText("SUBTLE{GT{Legend}} %s %s  %s %s  %s %s  %s %s\n",
		p.symbol(devtools.SymbolWall), dynamicGet("wall"),
		p.symbol(devtools.SymbolDoor), dynamicGet("door"),
		p.symbol(devtools.SymbolWindow), dynamicGet("window"),
		p.symbol(devtools.SymbolFloor), dynamicGet("floor"),
	))
	return b.String()
}

// Write renders l to w
func (p *Preview) Write(w io.Writer, l room.Layout) error {
	_, err := io.WriteString(w, p.Render(l))
	return err
}
