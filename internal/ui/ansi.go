package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// SetColorForcing overrides color detection. disable wins over force.
func SetColorForcing(force, disable bool) {
	switch {
	case disable:
		color.NoColor = true
	case force:
		color.NoColor = false
	}
}

// C paints s with c. A nil color leaves s untouched.
func C(c *color.Color, s string) string {
	if c == nil {
		return s
	}
	return c.Sprint(s)
}

func OK(w io.Writer, msg string) {
	fmt.Fprintln(w, C(current.Success, current.SymDone+" "+msg))
}

func Fail(w io.Writer, msg string) {
	fmt.Fprintln(w, C(current.Error, "✖ "+msg))
}
