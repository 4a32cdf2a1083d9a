package devlog

import (
	"fmt"
	"sort"

	"github.com/fatih/color"
)

// Color names a palette entry.
type Color string

// Palette colors
const (
	ColorBlack   Color = "black"
	ColorRed     Color = "red"
	ColorGreen   Color = "green"
	ColorYellow  Color = "yellow"
	ColorBlue    Color = "blue"
	ColorMagenta Color = "magenta"
	ColorCyan    Color = "cyan"
	ColorWhite   Color = "white"
)

// Reset is the escape sequence that restores the terminal's default style.
var Reset = escape(color.Reset)

// colorTable maps palette names to their escape sequences. It is built once
// and never written to afterwards.
var colorTable = map[Color]string{
	ColorBlack:   escape(color.FgBlack),
	ColorRed:     escape(color.FgRed),
	ColorGreen:   escape(color.FgGreen),
	ColorYellow:  escape(color.FgYellow),
	ColorBlue:    escape(color.FgBlue),
	ColorMagenta: escape(color.FgMagenta),
	ColorCyan:    escape(color.FgCyan),
	ColorWhite:   escape(color.FgWhite),
}

func escape(attr color.Attribute) string {
	return fmt.Sprintf("\x1b[%dm", attr)
}

// Code returns the escape sequence for c, or "" if c is not in the palette.
func (c Color) Code() string {
	return colorTable[c]
}

// Valid reports whether c is in the palette.
func (c Color) Valid() bool {
	_, ok := colorTable[c]
	return ok
}

// LookupColor resolves a palette name.
func LookupColor(name string) (Color, bool) {
	c := Color(name)
	return c, c.Valid()
}

// Colors returns the palette names in alphabetical order.
func Colors() []Color {
	names := make([]Color, 0, len(colorTable))
	for c := range colorTable {
		names = append(names, c)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

// Format wraps message in code and a bracketed header:
//
//	<code>[<header>] <message><reset>
//
// The message is inserted verbatim.
func Format(code, message, header string) string {
	return code + "[" + header + "] " + message + Reset
}
