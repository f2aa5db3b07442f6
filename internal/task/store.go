package task

import (
	"fmt"
	"strings"
	"time"
)

// Listener is called after the store changes.
type Listener func()

// Store owns the task collection and the current filter for one session.
// It is not safe for concurrent use; front ends drive it from one goroutine.
type Store struct {
	tasks     []Task
	filter    Filter
	nextID    int
	now       func() time.Time
	listeners map[int]Listener
	listenSeq int
}

// Option configures a Store.
type Option func(*Store)

// WithClock sets the clock used for CreatedAt.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// WithFilter sets the initial filter. Invalid values are ignored.
func WithFilter(f Filter) Option {
	return func(s *Store) {
		if f.Valid() {
			s.filter = f
		}
	}
}

// NewStore returns an empty store with the "all" filter selected.
func NewStore(opts ...Option) *Store {
	s := &Store{
		filter:    FilterAll,
		nextID:    1,
		now:       time.Now,
		listeners: make(map[int]Listener),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Subscribe registers fn to run after every store change and returns a
// function that removes it.
func (s *Store) Subscribe(fn Listener) (cancel func()) {
	if fn == nil {
		return func() {}
	}
	s.listenSeq++
	id := s.listenSeq
	s.listeners[id] = fn
	return func() { delete(s.listeners, id) }
}

func (s *Store) notify() {
	// Listeners run in registration order so output is deterministic.
	for id := 1; id <= s.listenSeq; id++ {
		if fn, ok := s.listeners[id]; ok {
			fn()
		}
	}
}

// Add appends a task with the trimmed text. Empty text is rejected with
// ErrEmptyText and leaves the store untouched.
func (s *Store) Add(text string) (Task, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Task{}, ErrEmptyText
	}
	t := Task{
		ID:        s.nextID,
		Text:      text,
		Completed: false,
		CreatedAt: s.now(),
	}
	s.nextID++
	s.tasks = append(s.tasks, t)
	s.notify()
	return t, nil
}

// Toggle flips the completed flag of the task with the given id. It reports
// false when no such task exists.
func (s *Store) Toggle(id int) (Task, bool) {
	i := s.indexOf(id)
	if i < 0 {
		s.notify()
		return Task{}, false
	}
	s.tasks[i].Completed = !s.tasks[i].Completed
	t := s.tasks[i]
	s.notify()
	return t, true
}

// Delete removes the task with the given id. It reports false when no such
// task exists.
func (s *Store) Delete(id int) bool {
	i := s.indexOf(id)
	if i < 0 {
		s.notify()
		return false
	}
	s.tasks = append(s.tasks[:i:i], s.tasks[i+1:]...)
	s.notify()
	return true
}

// ClearCompleted removes every completed task and returns how many were removed.
func (s *Store) ClearCompleted() int {
	kept := make([]Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if !t.Completed {
			kept = append(kept, t)
		}
	}
	removed := len(s.tasks) - len(kept)
	s.tasks = kept
	s.notify()
	return removed
}

// SetFilter selects the visible filter.
func (s *Store) SetFilter(f Filter) error {
	if !f.Valid() {
		return fmt.Errorf("set filter: %w: %q", ErrUnknownFilter, string(f))
	}
	s.filter = f
	s.notify()
	return nil
}

// Filter returns the current filter.
func (s *Store) Filter() Filter {
	return s.filter
}

// Tasks returns a copy of the collection in insertion order.
func (s *Store) Tasks() []Task {
	out := make([]Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Get returns the task with the given id.
func (s *Store) Get(id int) (Task, bool) {
	i := s.indexOf(id)
	if i < 0 {
		return Task{}, false
	}
	return s.tasks[i], true
}

// Len returns the number of tasks.
func (s *Store) Len() int {
	return len(s.tasks)
}

func (s *Store) indexOf(id int) int {
	for i, t := range s.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}
