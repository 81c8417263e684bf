// Package store defines the collections the handlers operate on. State is
// process-lifetime only; implementations are constructed once in main and
// injected.
package store

import (
	"context"
	"errors"

	"contactform-server/internal/models"
)

var (
	ErrNotFound = errors.New("record not found")
	ErrConflict = errors.New("record already exists")
)

// AccountStore owns user accounts. Accounts are created once and never
// mutated or deleted.
type AccountStore interface {
	CreateAccount(ctx context.Context, account *models.Account) error
	AccountByUsername(ctx context.Context, username string) (*models.Account, error)
	AccountByID(ctx context.Context, id string) (*models.Account, error)
}

// ContactStore owns submitted contact messages.
type ContactStore interface {
	CreateContact(ctx context.Context, contact *models.ContactMessage) error
	ListContacts(ctx context.Context) ([]models.ContactMessage, error)
	ContactByID(ctx context.Context, id string) (*models.ContactMessage, error)
	UpdateContact(ctx context.Context, contact *models.ContactMessage) error
	DeleteContact(ctx context.Context, id string) error
}
