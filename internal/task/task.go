// Package task holds the in-memory task collection and its mutations.
package task

// Task represents a single to-do item.
type Task struct {
	// ID is generated by Store.Add and never changes.
	ID string

	// Name is the user-visible label. Any string is accepted.
	Name string

	// Completed is false when the task is created.
	Completed bool
}

// Active reports whether the task still needs doing.
func (t Task) Active() bool {
	return !t.Completed
}
