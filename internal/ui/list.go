package ui

import (
	"fmt"

	"github.com/idilsaglam/tada/internal/model"
)

const maxTitle = 80

// Header is the one-line summary above a list: done, pending and total counts.
func Header(todos []model.Todo) string {
	t := Current()
	d, p := model.Stats(todos)
	return fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		C(t.Title, "Todos"),
		C(t.Success, t.SymDone), d,
		C(t.Pending, t.SymPending), p,
		C(t.Accent, "Total"), len(todos),
	)
}

// ListLines renders the panel body: header, progress bar, then the todos,
// flat or grouped by pending/done.
func ListLines(todos []model.Todo, group bool) []string {
	t := Current()
	d, p := model.Stats(todos)

	lines := []string{
		Header(todos),
		C(t.Muted, ProgressBar(d, d+p, 28)),
		"",
	}
	if group {
		lines = append(lines, groupLines(todos)...)
	} else {
		lines = append(lines, flatLines(todos)...)
	}
	return lines
}

func flatLines(todos []model.Todo) []string {
	t := Current()
	if len(todos) == 0 {
		return []string{C(t.Muted, "no items")}
	}
	out := make([]string, 0, len(todos))
	for _, it := range todos {
		box, c := t.BoxUnchecked, t.Muted
		if it.Done {
			box, c = t.BoxChecked, t.Success
		}
		title := []rune(it.Title)
		if len(title) > maxTitle {
			title = append(title[:maxTitle-3], []rune("...")...)
		}
		out = append(out, fmt.Sprintf("%s %s %s",
			C(t.Dim, fmt.Sprintf("%3s.", it.ID)), C(c, box), string(title)))
	}
	return out
}

func groupLines(todos []model.Todo) []string {
	t := Current()
	var pend, done []model.Todo
	for _, it := range todos {
		if it.Done {
			done = append(done, it)
		} else {
			pend = append(pend, it)
		}
	}
	var lines []string
	lines = append(lines, C(t.Accent, "Pending"))
	if len(pend) == 0 {
		lines = append(lines, C(t.Muted, "(none)"))
	} else {
		lines = append(lines, flatLines(pend)...)
	}
	lines = append(lines, "")
	lines = append(lines, C(t.Accent, "Done"))
	if len(done) == 0 {
		lines = append(lines, C(t.Muted, "(none)"))
	} else {
		lines = append(lines, flatLines(done)...)
	}
	return lines
}
