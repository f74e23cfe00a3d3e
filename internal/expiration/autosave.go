package expiration

import (
	"sync"

	"github.com/sirupsen/logrus"

	"expirypicker/internal/eventbus"
)

// Saver writes the store to its state file whenever the bus reports a
// change. Writes are serialized and always persist the latest snapshot.
type Saver struct {
	mu    sync.Mutex
	store *Store
	path  string
	bus   eventbus.EventBus
	log   logrus.FieldLogger

	unsubscribe func()
}

// NewSaver creates a saver for store at path
func NewSaver(store *Store, path string, bus eventbus.EventBus, log logrus.FieldLogger) *Saver {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Saver{
		store: store,
		path:  path,
		bus:   bus,
		log:   log.WithField("component", "saver"),
	}
}

// Start subscribes to change events
func (s *Saver) Start() {
	s.unsubscribe = s.bus.Subscribe(eventbus.EventExpirationChanged, func(eventbus.DomainEvent) {
		_ = s.Save()
	})
}

// Stop unsubscribes from change events
func (s *Saver) Stop() {
	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}
}

// Save writes the current snapshot and reports the outcome on the bus
func (s *Saver) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	exp := s.store.Snapshot()
	if err := SaveState(s.path, exp); err != nil {
		s.log.WithError(err).Error("failed to save expiration")
		if s.bus != nil {
			s.bus.Publish(eventbus.ErrorEvent{Message: "could not save expiration", Err: err})
		}
		return err
	}

	s.log.WithField("expiration", exp.String()).Debug("expiration saved")
	if s.bus != nil {
		s.bus.Publish(eventbus.ExpirationSavedEvent{Path: s.path, Expiration: exp})
	}
	return nil
}
