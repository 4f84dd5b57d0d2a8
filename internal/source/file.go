package source

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/idilsaglam/tada/internal/model"
)

// File serves todos from a JSON fixture. It is read-only: nothing is ever
// written back. A missing file yields no todos.
//
// Entries without an id get their 1-based position as id.
type File struct {
	Path string
}

// NewFile returns a File source reading path.
func NewFile(path string) *File {
	return &File{Path: path}
}

func (f *File) Fetch(ctx context.Context) ([]model.Todo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	b, err := os.ReadFile(f.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []model.Todo{}, nil
		}
		return nil, fmt.Errorf("read file: %w", err)
	}
	var todos []model.Todo
	if err := json.Unmarshal(b, &todos); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	for i := range todos {
		if todos[i].ID == "" {
			todos[i].ID = strconv.Itoa(i + 1)
		}
	}
	if todos == nil {
		todos = []model.Todo{}
	}
	return todos, nil
}
