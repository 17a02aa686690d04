package task

import (
	"errors"
	"sync"
)

// StoreManager is the task repository the HTTP layer works against.
// Every method is safe for concurrent use.
type StoreManager interface {
	List() []Task
	Get(ID) (Task, error)
	Create(Task) error
	Update(ID, func(Task) (Task, error)) (Task, error)
	Delete(ID) (Task, error)
	Replace([]Task) error
}

var _ StoreManager = &Store{}

// Store keeps tasks in memory, in insertion order.
// Writers are serialized by the store, callers never lock.
type Store struct {
	mu    sync.RWMutex
	nodes map[ID]Task
	order []ID
}

func NewStore() *Store {
	return &Store{nodes: map[ID]Task{}}
}

// List returns a snapshot of every task in insertion order.
func (s *Store) List() []Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Task, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.nodes[id].Clone())
	}
	return out
}

func (s *Store) Get(id ID) (Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.nodes[id]
	if !ok {
		return Task{}, ErrNotFound
	}
	return t.Clone(), nil
}

func (s *Store) Create(t Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, found := s.nodes[t.ID]; found {
		return ErrIDAlreadyExists
	}
	s.nodes[t.ID] = t.Clone()
	s.order = append(s.order, t.ID)
	return nil
}

// Update replaces the task with whatever fn returns. fn runs under the
// store's write lock, so read-modify-write cycles do not race.
func (s *Store) Update(id ID, fn func(Task) (Task, error)) (Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.nodes[id]
	if !ok {
		return Task{}, ErrNotFound
	}
	updated, err := fn(t.Clone())
	if err != nil {
		return Task{}, err
	}
	if updated.ID != id {
		return Task{}, errors.New("task id cannot change")
	}
	s.nodes[id] = updated.Clone()
	return updated, nil
}

// Delete removes a task and returns it.
func (s *Store) Delete(id ID) (Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.nodes[id]
	if !ok {
		return Task{}, ErrNotFound
	}
	delete(s.nodes, id)
	for i, c := range s.order {
		if c == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return t, nil
}

// Replace swaps the whole collection in one step.
func (s *Store) Replace(ts []Task) error {
	nodes := make(map[ID]Task, len(ts))
	order := make([]ID, 0, len(ts))
	for _, t := range ts {
		if _, found := nodes[t.ID]; found {
			return ErrIDAlreadyExists
		}
		nodes[t.ID] = t.Clone()
		order = append(order, t.ID)
	}
	s.mu.Lock()
	s.nodes, s.order = nodes, order
	s.mu.Unlock()
	return nil
}
