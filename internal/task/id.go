package task

import "github.com/google/uuid"

// IDPrefix is prepended to every generated task ID.
const IDPrefix = "todo-"

// IDFunc returns a new task ID on every call.
// Two calls within one process must never return the same value.
type IDFunc func() string

// NewID returns a random task ID of the form "todo-<uuid>".
func NewID() string {
	return IDPrefix + uuid.NewString()
}
