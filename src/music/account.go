package music

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Account represents a platform user that uploads, plays and collects tracks.
type Account struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Bio       string    `json:"bio,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// AccountResult is an account decorated with the denormalized counts search
// responses carry.
type AccountResult struct {
	Account
	Followers  int `json:"followers"`
	Following  int `json:"following"`
	TrackCount int `json:"tracks"`
}

// NewAccount creates an account with a fresh id.
func NewAccount(username, bio string) *Account {
	return &Account{
		ID:        uuid.New().String(),
		Username:  username,
		Bio:       bio,
		CreatedAt: time.Now().UTC(),
	}
}

// Ref returns the minimal identity fields of the account.
func (a *Account) Ref() *AccountRef {
	return &AccountRef{ID: a.ID, Username: a.Username}
}

// Validate validates the account fields.
func (a *Account) Validate() error {
	if strings.TrimSpace(a.Username) == "" {
		return fmt.Errorf("account username cannot be empty")
	}
	if len(a.Username) > 100 {
		return fmt.Errorf("account username cannot exceed 100 characters, got %d", len(a.Username))
	}
	return nil
}
