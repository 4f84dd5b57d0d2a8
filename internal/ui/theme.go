package ui

import (
	"strings"

	"github.com/fatih/color"
)

// Theme bundles palette + symbols + box borders.
// All UI helpers pull from `current`. A nil color renders plain text.
type Theme struct {
	Name                                   string
	Title, Muted, Accent, Success, Error   *color.Color
	Pending, Dim                           *color.Color
	BoxUnchecked, BoxChecked               string
	CornerTL, CornerTR, CornerBL, CornerBR string
	H, V                                   string
	SymDone, SymPending                    string
}

var current = Lookup("classic")

// Names lists the distinct themes in cycling order.
var Names = []string{"light", "dark", "mono"}

// aliases map the palette names onto the entry of Names that renders them.
var aliases = map[string]string{"classic": "light", "neon": "dark"}

// NextName returns the theme after name in Names. classic and neon cycle
// as light and dark, the themes they render as.
func NextName(name string) string {
	name = strings.ToLower(name)
	if a, ok := aliases[name]; ok {
		name = a
	}
	for i, n := range Names {
		if n == name {
			return Names[(i+1)%len(Names)]
		}
	}
	return Names[0]
}

// Lookup resolves a theme name. "dark" is an alias of neon, "light" of
// classic; anything unknown is classic.
func Lookup(name string) Theme {
	switch strings.ToLower(name) {
	case "neon", "dark":
		return Theme{
			Name:  "neon",
			Title: color.New(color.FgHiMagenta, color.Bold),
			Muted: color.New(color.FgHiBlack), Accent: color.New(color.FgHiCyan),
			Success: color.New(color.FgGreen), Error: color.New(color.FgRed, color.Bold),
			Pending: color.New(color.FgHiYellow), Dim: color.New(color.Faint),
			BoxUnchecked: "◻", BoxChecked: "◼",
			CornerTL: "╭", CornerTR: "╮", CornerBL: "╰", CornerBR: "╯",
			H: "─", V: "│",
			SymDone: "✔", SymPending: "•",
		}
	case "mono":
		return Theme{
			Name:         "mono",
			BoxUnchecked: "[ ]", BoxChecked: "[x]",
			CornerTL: "+", CornerTR: "+", CornerBL: "+", CornerBR: "+",
			H: "-", V: "|",
			SymDone: "x", SymPending: "-",
		}
	default: // classic
		return Theme{
			Name:  "classic",
			Title: color.New(color.Bold),
			Muted: color.New(color.FgHiBlack), Accent: color.New(color.FgBlue),
			Success: color.New(color.FgGreen), Error: color.New(color.FgRed, color.Bold),
			Pending: color.New(color.FgYellow), Dim: color.New(color.Faint),
			BoxUnchecked: "☐", BoxChecked: "☑",
			CornerTL: "┌", CornerTR: "┐", CornerBL: "└", CornerBR: "┘",
			H: "─", V: "│",
			SymDone: "✔", SymPending: "•",
		}
	}
}

func SetTheme(name string) { current = Lookup(name) }

// Expose what renderers need
func Current() Theme { return current }
