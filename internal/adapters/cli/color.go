package cli

import (
	"io"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// ColorFor returns a color for writing to w. Color is disabled unless w is
// itself a terminal; the global color.NoColor setting still applies.
func ColorFor(w io.Writer, attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if !IsTerminal(w) {
		c.DisableColor()
	}
	return c
}

// IsTerminal reports whether w is a file attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
