package memory

import (
	"context"
	"sync"
	"time"

	"contactform-server/internal/models"
	"contactform-server/internal/store"
	"github.com/google/uuid"
)

type ContactStore struct {
	mu       sync.RWMutex
	contacts []models.ContactMessage
}

func NewContactStore() *ContactStore {
	return &ContactStore{}
}

// CreateContact assigns the id and creation timestamp on the passed contact.
func (s *ContactStore) CreateContact(_ context.Context, contact *models.ContactMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	contact.ID = uuid.NewString()
	contact.CreatedAt = time.Now().UTC()
	s.contacts = append(s.contacts, *contact)
	return nil
}

// ListContacts returns every contact in insertion order.
func (s *ContactStore) ListContacts(_ context.Context) ([]models.ContactMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.ContactMessage, len(s.contacts))
	copy(out, s.contacts)
	return out, nil
}

func (s *ContactStore) ContactByID(_ context.Context, id string) (*models.ContactMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.contacts {
		if s.contacts[i].ID == id {
			contact := s.contacts[i]
			return &contact, nil
		}
	}
	return nil, store.ErrNotFound
}

// UpdateContact replaces the stored record with the same id in place,
// preserving its position in insertion order.
func (s *ContactStore) UpdateContact(_ context.Context, contact *models.ContactMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.contacts {
		if s.contacts[i].ID == contact.ID {
			s.contacts[i] = *contact
			return nil
		}
	}
	return store.ErrNotFound
}

func (s *ContactStore) DeleteContact(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.contacts {
		if s.contacts[i].ID == id {
			s.contacts = append(s.contacts[:i], s.contacts[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}
