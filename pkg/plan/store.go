package plan

import "sync"

// Store holds the current plan. The zero value is an empty plan.
type Store struct {
	mu   sync.RWMutex
	plan Plan
}

func NewStore() *Store {
	return &Store{}
}

// Get returns a copy of the current plan.
func (s *Store) Get() Plan {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := s.plan
	out.Blocks = append([]Block{}, s.plan.Blocks...)
	return out
}

// Set replaces the current plan.
func (s *Store) Set(p Plan) {
	p.Blocks = append([]Block{}, p.Blocks...)
	s.mu.Lock()
	s.plan = p
	s.mu.Unlock()
}
