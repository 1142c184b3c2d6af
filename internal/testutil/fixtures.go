// Package testutil provides testing utilities.
package testutil

import (
	"strconv"
	"sync"

	"todo/internal/session"
	"todo/internal/task"
)

// SequentialIDs returns an ID function yielding prefix+"1", prefix+"2", ...
func SequentialIDs(prefix string) task.IDFunc {
	var mu sync.Mutex
	n := 0
	return func() string {
		mu.Lock()
		defer mu.Unlock()
		n++
		return prefix + strconv.Itoa(n)
	}
}

// NewStore creates a store with deterministic IDs (todo-1, todo-2, ...)
// holding one active task per name.
func NewStore(names ...string) *task.Store {
	store := task.NewStore(task.WithIDFunc(SequentialIDs(task.IDPrefix)))
	for _, name := range names {
		store.Add(name)
	}
	return store
}

// NewSession creates a session over NewStore(names...).
func NewSession(names ...string) *session.Session {
	return session.New(session.WithStore(NewStore(names...)))
}
