package music

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Collection is a named, owned, ordered set of tracks.
type Collection struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	OwnerID     string    `json:"ownerId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CollectionEntry places a track at a position inside a collection.
type CollectionEntry struct {
	CollectionID string `json:"collectionId"`
	TrackID      string `json:"trackId"`
	Position     int    `json:"position"`
}

// CollectionResult is a collection decorated with its owner and the
// denormalized track count. The count is computed per query, never stored.
type CollectionResult struct {
	Collection
	Owner      *AccountRef `json:"owner,omitempty"`
	TrackCount int         `json:"trackCount"`
}

// NewCollection creates a collection with a fresh id.
func NewCollection(name, description, ownerID string) *Collection {
	now := time.Now().UTC()
	return &Collection{
		ID:          uuid.New().String(),
		Name:        name,
		Description: description,
		OwnerID:     ownerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Validate validates the collection fields.
func (c *Collection) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("collection name cannot be empty")
	}
	if strings.TrimSpace(c.OwnerID) == "" {
		return fmt.Errorf("collection owner cannot be empty: name -> %s", c.Name)
	}
	return nil
}
