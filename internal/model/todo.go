package model

// Todo is the domain model for a todo entry.
// Values are never mutated in place; a change produces a new Todo with the same ID.
type Todo struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Done  bool   `json:"done"`
}

// Toggled returns a copy with Done negated.
func (t Todo) Toggled() Todo {
	t.Done = !t.Done
	return t
}

// Stats counts done and pending entries.
func Stats(todos []Todo) (done, pending int) {
	for _, t := range todos {
		if t.Done {
			done++
		} else {
			pending++
		}
	}
	return
}
