package services

import (
	"context"
	"errors"
	"net/http"
	"regexp"
	"time"

	"contactform-server/internal/models"
	"contactform-server/internal/store"
	"contactform-server/internal/utils"
)

// Same acceptance grammar as the web form: non-empty local part, "@",
// non-empty domain with at least one dot, no whitespace anywhere.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type ContactService struct {
	contacts store.ContactStore
}

// ContactInput carries the writable fields of a contact message. On update,
// empty fields mean "keep the stored value".
type ContactInput struct {
	Name    string
	Email   string
	Subject string
	Message string
}

func NewContactService(contacts store.ContactStore) *ContactService {
	return &ContactService{contacts: contacts}
}

func (s *ContactService) Create(ctx context.Context, input ContactInput, authorID string) (*models.ContactMessage, error) {
	if input.Name == "" || input.Email == "" || input.Subject == "" || input.Message == "" {
		return nil, utils.NewAppError(http.StatusBadRequest, "All fields are required")
	}
	if !emailPattern.MatchString(input.Email) {
		return nil, utils.NewAppError(http.StatusBadRequest, "Invalid email format")
	}

	contact := &models.ContactMessage{
		Name:     input.Name,
		Email:    input.Email,
		Subject:  input.Subject,
		Message:  input.Message,
		AuthorID: authorID,
	}
	if err := s.contacts.CreateContact(ctx, contact); err != nil {
		return nil, err
	}
	return contact, nil
}

// List returns every stored message regardless of author. Any authenticated
// caller sees all records; there is no ownership filter.
func (s *ContactService) List(ctx context.Context) ([]models.ContactMessage, error) {
	return s.contacts.ListContacts(ctx)
}

func (s *ContactService) GetByID(ctx context.Context, id string) (*models.ContactMessage, error) {
	contact, err := s.contacts.ContactByID(ctx, id)
	if err != nil {
		return nil, utils.NewAppError(http.StatusNotFound, "Contact not found")
	}
	return contact, nil
}

// Update applies only the supplied fields and stamps updatedAt. Ownership is
// recorded at creation but deliberately not enforced here.
func (s *ContactService) Update(ctx context.Context, id string, input ContactInput) (*models.ContactMessage, error) {
	if input.Name == "" && input.Email == "" && input.Subject == "" && input.Message == "" {
		return nil, utils.NewAppError(http.StatusBadRequest, "At least one field is required")
	}
	if input.Email != "" && !emailPattern.MatchString(input.Email) {
		return nil, utils.NewAppError(http.StatusBadRequest, "Invalid email format")
	}

	contact, err := s.contacts.ContactByID(ctx, id)
	if err != nil {
		return nil, utils.NewAppError(http.StatusNotFound, "Contact not found")
	}

	if input.Name != "" {
		contact.Name = input.Name
	}
	if input.Email != "" {
		contact.Email = input.Email
	}
	if input.Subject != "" {
		contact.Subject = input.Subject
	}
	if input.Message != "" {
		contact.Message = input.Message
	}
	now := time.Now().UTC()
	contact.UpdatedAt = &now

	if err := s.contacts.UpdateContact(ctx, contact); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, utils.NewAppError(http.StatusNotFound, "Contact not found")
		}
		return nil, err
	}
	return contact, nil
}

func (s *ContactService) Delete(ctx context.Context, id string) error {
	if err := s.contacts.DeleteContact(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return utils.NewAppError(http.StatusNotFound, "Contact not found")
		}
		return err
	}
	return nil
}
