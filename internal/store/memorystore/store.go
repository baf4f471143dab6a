// Package memorystore keeps todos in process memory. Nothing survives a restart.
package memorystore

import (
	"sync"
	"time"

	"todo-api/internal/ids"
	"todo-api/internal/model"
)

type Option func(*TodoStore)

// WithClock overrides the time source used for created_at.
func WithClock(now func() time.Time) Option {
	return func(s *TodoStore) {
		if now != nil {
			s.now = now
		}
	}
}

// WithIDGenerator overrides how new ids are produced.
func WithIDGenerator(gen func() string) Option {
	return func(s *TodoStore) {
		if gen != nil {
			s.newID = gen
		}
	}
}

// TodoStore is safe for concurrent use. Every method holds the lock for its
// whole duration, so each operation is atomic with respect to the others.
type TodoStore struct {
	mu    sync.RWMutex
	todos map[string]model.Todo
	order []string

	now   func() time.Time
	newID func() string
}

func NewTodoStore(opts ...Option) *TodoStore {
	s := &TodoStore{
		todos: make(map[string]model.Todo),
		now:   func() time.Time { return time.Now().UTC() },
		newID: ids.NewID,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *TodoStore) Create(text string) (model.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := model.Todo{
		ID:        s.uniqueID(),
		Text:      text,
		Completed: false,
		CreatedAt: s.now(),
	}
	s.todos[t.ID] = t
	s.order = append(s.order, t.ID)
	return t, nil
}

// uniqueID draws ids until one is unused. Caller holds mu.
func (s *TodoStore) uniqueID() string {
	for {
		id := s.newID()
		if _, taken := s.todos[id]; !taken {
			return id
		}
	}
}

// List returns todos in insertion order. The slice is never nil.
func (s *TodoStore) List() ([]model.Todo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Todo, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.todos[id])
	}
	return out, nil
}

func (s *TodoStore) Get(id string) (model.Todo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.todos[id]
	if !ok {
		return model.Todo{}, model.ErrNotFound
	}
	return t, nil
}

func (s *TodoStore) Update(id string, patch model.Patch) (model.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.todos[id]
	if !ok {
		return model.Todo{}, model.ErrNotFound
	}

	if patch.Text != nil {
		t.Text = *patch.Text
	}
	if patch.Completed != nil {
		t.Completed = *patch.Completed
	}

	s.todos[id] = t
	return t, nil
}

func (s *TodoStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.todos[id]; !ok {
		return model.ErrNotFound
	}
	delete(s.todos, id)
	s.order = removeID(s.order, id)
	return nil
}

// ClearCompleted removes every completed todo and reports how many went.
func (s *TodoStore) ClearCompleted() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.order[:0]
	removed := 0
	for _, id := range s.order {
		if s.todos[id].Completed {
			delete(s.todos, id)
			removed++
			continue
		}
		kept = append(kept, id)
	}
	s.order = kept
	return removed, nil
}

func (s *TodoStore) Stats() (model.Stats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st := model.Stats{Total: len(s.todos)}
	for _, t := range s.todos {
		if t.Completed {
			st.Completed++
		}
	}
	st.Active = st.Total - st.Completed
	return st, nil
}

func removeID(order []string, id string) []string {
	for i, v := range order {
		if v == id {
			return append(order[:i], order[i+1:]...)
		}
	}
	return order
}
