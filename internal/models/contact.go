package models

import "time"

// ContactMessage is a submitted contact-form entry. AuthorID records the
// account that submitted it; it is informational only and not enforced as
// an ownership boundary on update or delete.
type ContactMessage struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Subject   string     `json:"subject"`
	Message   string     `json:"message"`
	AuthorID  string     `json:"authorId"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}
