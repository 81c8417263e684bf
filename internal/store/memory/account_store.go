// Package memory holds the in-process store implementations. Collections
// live for the process lifetime and are small enough that linear scans are
// the right access path.
package memory

import (
	"context"
	"sync"
	"time"

	"contactform-server/internal/models"
	"contactform-server/internal/store"
	"github.com/google/uuid"
)

type AccountStore struct {
	mu       sync.RWMutex
	accounts []models.Account
}

func NewAccountStore() *AccountStore {
	return &AccountStore{}
}

// CreateAccount assigns the id and creation timestamp on the passed account.
func (s *AccountStore) CreateAccount(_ context.Context, account *models.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.accounts {
		if s.accounts[i].Username == account.Username {
			return store.ErrConflict
		}
	}

	account.ID = uuid.NewString()
	account.CreatedAt = time.Now().UTC()
	s.accounts = append(s.accounts, *account)
	return nil
}

func (s *AccountStore) AccountByUsername(_ context.Context, username string) (*models.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.accounts {
		if s.accounts[i].Username == username {
			account := s.accounts[i]
			return &account, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *AccountStore) AccountByID(_ context.Context, id string) (*models.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.accounts {
		if s.accounts[i].ID == id {
			account := s.accounts[i]
			return &account, nil
		}
	}
	return nil, store.ErrNotFound
}
