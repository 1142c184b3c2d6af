package task

// Store owns an ordered task collection.
//
// Every mutation replaces the collection with a new slice; slices handed out
// earlier are never written to again, so callers can detect changes by
// comparing snapshots. A Store is not safe for concurrent use: one session
// owns it.
type Store struct {
	tasks []Task
	newID IDFunc
}

// Option configures a Store.
type Option func(*Store)

// WithIDFunc overrides ID generation (for testing).
func WithIDFunc(f IDFunc) Option {
	return func(s *Store) {
		s.newID = f
	}
}

// WithTasks seeds the store with an initial collection.
// The slice is copied.
func WithTasks(tasks []Task) Option {
	return func(s *Store) {
		s.tasks = append([]Task(nil), tasks...)
	}
}

// NewStore creates an empty store.
func NewStore(opts ...Option) *Store {
	s := &Store{newID: NewID}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Tasks returns a copy of the current collection in insertion order.
func (s *Store) Tasks() []Task {
	return s.snapshot()
}

// Len returns the number of tasks in the collection.
func (s *Store) Len() int {
	return len(s.tasks)
}

// Get returns the task with the given ID.
func (s *Store) Get(id string) (Task, bool) {
	i := s.index(id)
	if i < 0 {
		return Task{}, false
	}
	return s.tasks[i], true
}

// Add appends a new, not yet completed task and returns it.
// The name is stored as given, including empty or blank names.
func (s *Store) Add(name string) Task {
	t := Task{ID: s.newID(), Name: name}

	next := make([]Task, len(s.tasks), len(s.tasks)+1)
	copy(next, s.tasks)
	s.tasks = append(next, t)
	return t
}

// Toggle flips Completed on the task with the given ID.
// Returns the resulting collection and whether a task matched.
// An unknown ID leaves the collection unchanged.
func (s *Store) Toggle(id string) ([]Task, bool) {
	return s.replace(id, func(t Task) Task {
		t.Completed = !t.Completed
		return t
	})
}

// Edit sets Name on the task with the given ID; other fields are kept.
// An unknown ID leaves the collection unchanged.
func (s *Store) Edit(id, name string) ([]Task, bool) {
	return s.replace(id, func(t Task) Task {
		t.Name = name
		return t
	})
}

// Delete removes the task with the given ID.
// An unknown ID leaves the collection unchanged.
func (s *Store) Delete(id string) ([]Task, bool) {
	i := s.index(id)
	if i < 0 {
		return s.snapshot(), false
	}

	next := make([]Task, 0, len(s.tasks)-1)
	next = append(next, s.tasks[:i]...)
	next = append(next, s.tasks[i+1:]...)
	s.tasks = next
	return s.snapshot(), true
}

// replace swaps the first task matching id for fn(task).
func (s *Store) replace(id string, fn func(Task) Task) ([]Task, bool) {
	i := s.index(id)
	if i < 0 {
		return s.snapshot(), false
	}

	next := make([]Task, len(s.tasks))
	copy(next, s.tasks)
	next[i] = fn(next[i])
	s.tasks = next
	return s.snapshot(), true
}

// index returns the position of the first task with the given ID, or -1.
func (s *Store) index(id string) int {
	for i, t := range s.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) snapshot() []Task {
	out := make([]Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}
