package music

import (
	"context"
	"time"
)

// TrackOrder selects the ordering of track listings.
type TrackOrder string

const (
	OrderRecent       TrackOrder = "recent"
	OrderPopular      TrackOrder = "popular"
	OrderTrending     TrackOrder = "trending"
	OrderAlphabetical TrackOrder = "alphabetical"
)

// ParseTrackOrder maps a raw order parameter to a known ordering,
// defaulting to recency.
func ParseTrackOrder(s string) TrackOrder {
	switch TrackOrder(s) {
	case OrderPopular, OrderTrending, OrderAlphabetical:
		return TrackOrder(s)
	default:
		return OrderRecent
	}
}

// TrackFilter narrows track listings. Query/NormalizedQuery match the same
// four fields the track search scope does; Genre and Artist are substring
// filters of their own.
type TrackFilter struct {
	Query           string
	NormalizedQuery string
	Genre           string
	Artist          string
	Order           TrackOrder
}

// Store is the repository interface over the relational persistence layer.
// Lookups return (nil, nil) when the row does not exist.
type Store interface {
	// Track lookups and play recording.
	GetTrack(ctx context.Context, id string) (*Track, error)
	GetTrackDetails(ctx context.Context, id string) (*TrackResult, error)
	// InsertPlayEvent inserts the (account, track) existence marker as an
	// independent statement, never inside a larger transaction. Returns
	// ErrDuplicatePlay when the pair is already recorded.
	InsertPlayEvent(ctx context.Context, accountID, trackID string) error
	// UpsertPlayStats atomically increments the play counters for a track,
	// creating the row on first play. firstListen controls the unique
	// listener increment. Must be a single race-safe storage operation.
	UpsertPlayStats(ctx context.Context, trackID string, firstListen bool, playedAt time.Time) (*PlayStats, error)

	// Substring search tier, one method per scope. The int return is the
	// total number of matches counted with the same predicate.
	SearchTracks(ctx context.Context, rawQuery, normQuery string, limit, offset int) ([]*TrackResult, int, error)
	SearchAccounts(ctx context.Context, query string, limit, offset int) ([]*AccountResult, int, error)
	SearchCollections(ctx context.Context, query string, limit, offset int) ([]*CollectionResult, int, error)

	// Trigram-similarity fallback tier, ordered by descending similarity.
	SearchTracksSimilar(ctx context.Context, normQuery string, threshold float64, limit, offset int) ([]*TrackResult, int, error)
	SearchAccountsSimilar(ctx context.Context, query string, threshold float64, limit, offset int) ([]*AccountResult, int, error)
	SearchCollectionsSimilar(ctx context.Context, query string, threshold float64, limit, offset int) ([]*CollectionResult, int, error)

	// Autocomplete sources.
	SuggestTitles(ctx context.Context, query string, limit int) ([]string, error)
	SuggestArtists(ctx context.Context, query string, limit int) ([]string, error)

	// Track listings.
	ListTracks(ctx context.Context, filter TrackFilter, limit, offset int) ([]*TrackResult, int, error)
	ListTopTracks(ctx context.Context, limit, offset int) ([]*TrackResult, int, error)
	ListTrendingTracks(ctx context.Context, since time.Time, minPlays int64, limit, offset int) ([]*TrackResult, int, error)

	// Entity writes.
	AddAccount(ctx context.Context, account *Account) error
	AddTrack(ctx context.Context, track *Track, uploadedBy string) error
	AddCollection(ctx context.Context, collection *Collection) error
	AddCollectionEntry(ctx context.Context, entry CollectionEntry) error
	LikeTrack(ctx context.Context, accountID, trackID string) error
	Follow(ctx context.Context, followerID, followeeID string) error
}
