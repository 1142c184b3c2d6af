// Package session holds the state of one interactive todo session.
//
// A Session is the single owner of a task.Store. All writes go through the
// Session's methods; readers only ever receive copies. The session also
// tracks the active filter and the collection length seen on the previous
// render, which drives the heading-focus signal.
package session

import (
	"io"

	"github.com/charmbracelet/log"

	"todo/internal/filter"
	"todo/internal/task"
)

// Session is not safe for concurrent use.
type Session struct {
	store   *task.Store
	filter  filter.Name
	prevLen int
	ended   bool
	logger  *log.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithStore uses an existing store instead of an empty one.
func WithStore(store *task.Store) Option {
	return func(s *Session) {
		s.store = store
	}
}

// WithLogger sets the logger used for state transitions.
func WithLogger(logger *log.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// New creates a session with the default filter selected.
func New(opts ...Option) *Session {
	s := &Session{filter: filter.Default}
	for _, opt := range opts {
		opt(s)
	}
	if s.store == nil {
		s.store = task.NewStore()
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}
	s.prevLen = s.store.Len()
	return s
}

// Add creates a task and appends it to the collection.
func (s *Session) Add(name string) task.Task {
	t := s.store.Add(name)
	s.logger.Debug("task added", "op", "add", "id", t.ID, "len", s.store.Len())
	return t
}

// Toggle flips the completed state of a task.
// Returns false if no task has the given ID.
func (s *Session) Toggle(id string) bool {
	_, found := s.store.Toggle(id)
	s.logger.Debug("task toggled", "op", "toggle", "id", id, "found", found)
	return found
}

// Edit renames a task.
// Returns false if no task has the given ID.
func (s *Session) Edit(id, name string) bool {
	_, found := s.store.Edit(id, name)
	s.logger.Debug("task edited", "op", "edit", "id", id, "found", found)
	return found
}

// Delete removes a task.
// Returns false if no task has the given ID.
func (s *Session) Delete(id string) bool {
	_, found := s.store.Delete(id)
	s.logger.Debug("task deleted", "op", "delete", "id", id, "found", found, "len", s.store.Len())
	return found
}

// Tasks returns the full collection in insertion order.
func (s *Session) Tasks() []task.Task {
	return s.store.Tasks()
}

// Get returns the task with the given ID.
func (s *Session) Get(id string) (task.Task, bool) {
	return s.store.Get(id)
}

// Filter returns the active filter.
func (s *Session) Filter() filter.Name {
	return s.filter
}

// SetFilter selects the active filter.
// An unknown name is rejected and the previous selection is kept.
func (s *Session) SetFilter(n filter.Name) error {
	if _, err := filter.PredicateFor(n); err != nil {
		return err
	}
	s.logger.Debug("filter selected", "from", s.filter, "to", n)
	s.filter = n
	return nil
}

// Visible returns the tasks passing the active filter.
func (s *Session) Visible() []task.Task {
	// The active filter is validated by SetFilter, so Apply cannot fail here.
	visible, _ := filter.Apply(s.store.Tasks(), s.filter)
	return visible
}

// VisibleWith returns the tasks passing filter n without changing the
// active selection.
func (s *Session) VisibleWith(n filter.Name) ([]task.Task, error) {
	return filter.Apply(s.store.Tasks(), n)
}

// Remaining returns the number of tasks shown in the heading: the length
// of the visible list under the active filter.
func (s *Session) Remaining() int {
	return len(s.Visible())
}

// HeadingFocus reports whether the collection shrank by exactly one since
// the previous call, then records the current length. The shell calls it
// once per rendered command; true means a delete just happened and the
// heading should be brought back into view.
func (s *Session) HeadingFocus() bool {
	cur := s.store.Len()
	focus := cur-s.prevLen == -1
	s.prevLen = cur
	return focus
}

// End marks the session finished. The task collection is discarded with it.
func (s *Session) End() {
	s.logger.Debug("session ended", "len", s.store.Len())
	s.ended = true
}

// Ended reports whether End has been called.
func (s *Session) Ended() bool {
	return s.ended
}
