package library

import (
	"context"
	"log/slog"
	"time"

	"github.com/contre95/soundwell/src/music"
)

const (
	defaultPageSize = 12
	maxPageSize     = 50

	defaultTrendingWindowDays = 30
)

// Service lists and fetches tracks from the catalog.
type Service struct {
	store music.Store
	now   func() time.Time
}

// NewService creates a new library service.
func NewService(store music.Store) *Service {
	return &Service{store: store, now: time.Now}
}

// Listing is one page of track results with the filters that produced it.
type Listing struct {
	Items    []*music.TrackResult `json:"items"`
	Page     int                  `json:"page"`
	PageSize int                  `json:"pageSize"`
	Total    int                  `json:"total"`
	Pages    int                  `json:"pages"`
	Filters  map[string]any       `json:"filters"`
}

// ListRequest narrows and orders a track listing.
type ListRequest struct {
	Query    string
	Genre    string
	Artist   string
	Order    music.TrackOrder
	Page     int
	PageSize int
}

func clampPaging(page, size int) (int, int) {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 1
	} else if size > maxPageSize {
		size = maxPageSize
	}
	return page, size
}

func newListing(items []*music.TrackResult, page, size, total int, filters map[string]any) *Listing {
	return &Listing{
		Items:    items,
		Page:     page,
		PageSize: size,
		Total:    total,
		Pages:    (total + size - 1) / size,
		Filters:  filters,
	}
}

// List returns tracks filtered by query/genre/artist in the requested order.
func (s *Service) List(ctx context.Context, req ListRequest) (*Listing, error) {
	page, size := clampPaging(req.Page, req.PageSize)

	filter := music.TrackFilter{
		Query:           req.Query,
		NormalizedQuery: music.NormalizeQuery(req.Query),
		Genre:           req.Genre,
		Artist:          req.Artist,
		Order:           req.Order,
	}

	items, total, err := s.store.ListTracks(ctx, filter, size, (page-1)*size)
	if err != nil {
		slog.Error("List failed", "error", err)
		return nil, err
	}

	return newListing(items, page, size, total, map[string]any{
		"q":      req.Query,
		"genre":  req.Genre,
		"artist": req.Artist,
		"order":  string(req.Order),
	}), nil
}

// Top returns tracks by all-time play count.
func (s *Service) Top(ctx context.Context, page, size int) (*Listing, error) {
	page, size = clampPaging(page, size)

	items, total, err := s.store.ListTopTracks(ctx, size, (page-1)*size)
	if err != nil {
		slog.Error("Top failed", "error", err)
		return nil, err
	}

	return newListing(items, page, size, total, map[string]any{}), nil
}

// Trending returns tracks played within the window, most recently played
// first.
func (s *Service) Trending(ctx context.Context, page, size, windowDays int, minPlays int64) (*Listing, error) {
	page, size = clampPaging(page, size)
	if windowDays < 1 {
		windowDays = defaultTrendingWindowDays
	}
	if minPlays < 0 {
		minPlays = 0
	}

	since := s.now().UTC().AddDate(0, 0, -windowDays)
	items, total, err := s.store.ListTrendingTracks(ctx, since, minPlays, size, (page-1)*size)
	if err != nil {
		slog.Error("Trending failed", "error", err)
		return nil, err
	}

	return newListing(items, page, size, total, map[string]any{
		"windowDays": windowDays,
		"minPlays":   minPlays,
	}), nil
}

// Get returns a single track with uploader, analytics and like count.
func (s *Service) Get(ctx context.Context, id string) (*music.TrackResult, error) {
	track, err := s.store.GetTrackDetails(ctx, id)
	if err != nil {
		slog.Error("Get failed", "trackID", id, "error", err)
		return nil, err
	}
	if track == nil {
		return nil, music.ErrTrackNotFound
	}
	return track, nil
}
