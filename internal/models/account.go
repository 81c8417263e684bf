package models

import "time"

// Account is a registered user. Password holds the raw credential the
// account was registered with and is never serialized.
type Account struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Password  string    `json:"-"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// Profile is the client-facing view of an account.
type Profile struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

func (a *Account) ToProfile() Profile {
	return Profile{
		ID:       a.ID,
		Username: a.Username,
		Role:     a.Role,
	}
}
