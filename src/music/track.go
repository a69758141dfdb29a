package music

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Track represents a single shared song.
type Track struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Artist    string    `json:"artist"`
	Genre     string    `json:"genre,omitempty"`
	SearchKey string    `json:"-"`
	CreatedAt time.Time `json:"createdAt"`
}

// TrackRef is the minimal identity of a track, used in play receipts.
type TrackRef struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Artist string `json:"artist"`
}

// AccountRef is the minimal identity of an account attached to result rows.
type AccountRef struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// TrackResult is a track decorated with the metadata list and search
// responses carry: uploader, play analytics and like count.
type TrackResult struct {
	Track
	UploadedBy *AccountRef `json:"uploadedBy,omitempty"`
	Stats      *PlayStats  `json:"analytics,omitempty"`
	LikeCount  int         `json:"likes"`
}

// NewTrack creates a track with a fresh id and a derived search key.
func NewTrack(title, artist, genre string) *Track {
	t := &Track{
		ID:        uuid.New().String(),
		Title:     title,
		Artist:    artist,
		Genre:     genre,
		CreatedAt: time.Now().UTC(),
	}
	t.SyncSearchKey()
	return t
}

// Ref returns the minimal identity fields of the track.
func (t *Track) Ref() TrackRef {
	return TrackRef{ID: t.ID, Title: t.Title, Artist: t.Artist}
}

// SyncSearchKey rederives the normalized search key from title, artist and
// genre. Must be called whenever any of the three change.
func (t *Track) SyncSearchKey() {
	t.SearchKey = SearchKey(t.Title, t.Artist, t.Genre)
}

// Validate validates the track fields.
func (t *Track) Validate() error {
	if strings.TrimSpace(t.Title) == "" {
		return fmt.Errorf("track title cannot be empty")
	}
	if len(t.Title) > 500 {
		return fmt.Errorf("track title cannot exceed 500 characters, got %d", len(t.Title))
	}
	if strings.TrimSpace(t.Artist) == "" {
		return fmt.Errorf("track artist cannot be empty: title -> %s", t.Title)
	}
	if t.SearchKey != SearchKey(t.Title, t.Artist, t.Genre) {
		return fmt.Errorf("track search key out of sync: title -> %s", t.Title)
	}
	return nil
}
