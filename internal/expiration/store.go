package expiration

import (
	"sync"

	"expirypicker/internal/domain"
	"expirypicker/internal/eventbus"
)

// Store is the in-process expiration context. Each field has a single
// writer at a time; readers never observe a torn pair.
type Store struct {
	mu  sync.RWMutex
	exp domain.Expiration
	bus eventbus.EventBus
}

// NewStore creates a store seeded with initial. bus may be nil.
func NewStore(initial domain.Expiration, bus eventbus.EventBus) *Store {
	return &Store{exp: initial, bus: bus}
}

// Month returns the current month string
func (s *Store) Month() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.exp.Month
}

// Year returns the current year string
func (s *Store) Year() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.exp.Year
}

// SetMonth stores value as the month
func (s *Store) SetMonth(value string) {
	s.set(domain.FieldMonth, value)
}

// SetYear stores value as the year
func (s *Store) SetYear(value string) {
	s.set(domain.FieldYear, value)
}

// Snapshot returns both halves read under one lock
func (s *Store) Snapshot() domain.Expiration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.exp
}

func (s *Store) set(field domain.Field, value string) {
	s.mu.Lock()
	var previous string
	switch field {
	case domain.FieldMonth:
		previous = s.exp.Month
		s.exp.Month = value
	case domain.FieldYear:
		previous = s.exp.Year
		s.exp.Year = value
	}
	current := s.exp
	s.mu.Unlock()

	if s.bus != nil {
		s.bus.Publish(eventbus.ExpirationChangedEvent{
			Field:    field,
			Value:    value,
			Previous: previous,
			Current:  current,
		})
	}
}

var _ Context = (*Store)(nil)
