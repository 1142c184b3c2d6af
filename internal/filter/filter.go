// Package filter selects the visible subset of a task collection.
package filter

import (
	"errors"
	"fmt"
	"strings"

	"todo/internal/task"
)

// Name identifies one of the fixed filters.
type Name string

const (
	// All matches every task.
	All Name = "All"

	// Active matches tasks that are not completed.
	Active Name = "Active"

	// Completed matches completed tasks.
	Completed Name = "Completed"
)

// Default is the filter selected when a session starts.
const Default = All

// ErrUnknown is returned for a name outside All, Active and Completed.
var ErrUnknown = errors.New("unknown filter")

// Predicate reports whether a task passes a filter.
type Predicate func(task.Task) bool

var predicates = map[Name]Predicate{
	All:       func(task.Task) bool { return true },
	Active:    func(t task.Task) bool { return t.Active() },
	Completed: func(t task.Task) bool { return t.Completed },
}

// Names returns the available filters in display order.
func Names() []Name {
	return []Name{All, Active, Completed}
}

// Valid reports whether n is one of the fixed filter names.
func (n Name) Valid() bool {
	_, ok := predicates[n]
	return ok
}

func (n Name) String() string {
	return string(n)
}

// Parse resolves a user-supplied filter name (case-insensitive, trimmed).
func Parse(s string) (Name, error) {
	s = strings.TrimSpace(s)
	for _, n := range Names() {
		if strings.EqualFold(s, string(n)) {
			return n, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrUnknown, s)
}

// PredicateFor returns the predicate behind a filter name.
func PredicateFor(n Name) (Predicate, error) {
	p, ok := predicates[n]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknown, n)
	}
	return p, nil
}

// Apply returns the tasks passing filter n, in their original order.
// The input slice is not modified.
func Apply(tasks []task.Task, n Name) ([]task.Task, error) {
	match, err := PredicateFor(n)
	if err != nil {
		return nil, err
	}

	result := make([]task.Task, 0, len(tasks))
	for _, t := range tasks {
		if match(t) {
			result = append(result, t)
		}
	}
	return result, nil
}

// Count returns how many tasks pass filter n.
func Count(tasks []task.Task, n Name) (int, error) {
	match, err := PredicateFor(n)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, t := range tasks {
		if match(t) {
			count++
		}
	}
	return count, nil
}
