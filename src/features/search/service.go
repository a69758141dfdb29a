package search

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/contre95/soundwell/src/features/config"
	"github.com/contre95/soundwell/src/features/metrics"
	"github.com/contre95/soundwell/src/music"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100

	defaultSuggestionLimit = 10
	maxSuggestionLimit     = 20

	// minFallbackQueryLen is the minimum normalized query length for the
	// similarity tier to be attempted at all.
	minFallbackQueryLen = 2
)

// Service resolves text queries against tracks, accounts or collections.
type Service struct {
	store         music.Store
	configManager *config.Manager
}

// NewService creates a new search service.
func NewService(store music.Store, cfgManager *config.Manager) *Service {
	return &Service{store: store, configManager: cfgManager}
}

// Request is one search invocation. Page and PageSize are clamped, not
// rejected.
type Request struct {
	Query    string
	Scope    music.SearchScope
	Page     int
	PageSize int
}

// Search answers a query in two tiers: a case-insensitive substring pass,
// then a trigram-similarity fallback when the substring pass finds nothing
// and the normalized query is long enough. A failing fallback degrades to
// the (empty) substring result instead of failing the request.
func (s *Service) Search(ctx context.Context, req Request) (*music.SearchResult, error) {
	query := strings.TrimSpace(req.Query)
	if query == "" {
		return nil, music.ErrEmptyQuery
	}

	page := req.Page
	if page < 1 {
		page = 1
	}
	size := req.PageSize
	if size < 1 {
		size = 1
	} else if size > maxPageSize {
		size = maxPageSize
	}
	offset := (page - 1) * size

	norm := music.NormalizeQuery(query)
	result := &music.SearchResult{
		Scope:    req.Scope,
		Query:    query,
		Page:     page,
		PageSize: size,
		Tier:     music.TierStandard,
	}

	var items any
	var total int
	var err error

	switch req.Scope {
	case music.ScopeAccounts:
		items, total, err = s.store.SearchAccounts(ctx, query, size, offset)
	case music.ScopeCollections:
		items, total, err = s.store.SearchCollections(ctx, query, size, offset)
	default:
		items, total, err = s.store.SearchTracks(ctx, query, norm, size, offset)
	}
	if err != nil {
		slog.Error("Search failed", "scope", req.Scope, "q", query, "error", err)
		return nil, err
	}

	if total == 0 && utf8.RuneCountInString(norm) >= minFallbackQueryLen {
		simItems, simTotal, simErr := s.searchSimilar(ctx, req.Scope, query, norm, size, offset)
		switch {
		case simErr != nil:
			// Degraded path: the storage engine may lack similarity
			// support. Keep the empty substring result.
			slog.Warn("Similarity search failed", "scope", req.Scope, "q", query, "error", simErr)
		case simTotal > 0:
			items, total = simItems, simTotal
			result.Tier = music.TierSimilarity
		}
	}

	result.Items = items
	result.Total = total
	result.Pages = (total + size - 1) / size

	metrics.SearchRequests.WithLabelValues(string(req.Scope), string(result.Tier)).Inc()
	return result, nil
}

func (s *Service) searchSimilar(ctx context.Context, scope music.SearchScope, query, norm string, limit, offset int) (any, int, error) {
	threshold := s.configManager.Get().Search.SimilarityThreshold
	switch scope {
	case music.ScopeAccounts:
		return s.store.SearchAccountsSimilar(ctx, query, threshold, limit, offset)
	case music.ScopeCollections:
		return s.store.SearchCollectionsSimilar(ctx, query, threshold, limit, offset)
	default:
		return s.store.SearchTracksSimilar(ctx, norm, threshold, limit, offset)
	}
}

// Suggestions returns typed autocomplete entries for the query: distinct
// matching titles first, then distinct matching artists, truncated to limit.
// Queries shorter than two characters yield an empty list.
func (s *Service) Suggestions(ctx context.Context, query string, limit int) ([]music.Suggestion, error) {
	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < 2 {
		return []music.Suggestion{}, nil
	}

	if limit < 1 {
		limit = defaultSuggestionLimit
	} else if limit > maxSuggestionLimit {
		limit = maxSuggestionLimit
	}

	titles, err := s.store.SuggestTitles(ctx, query, limit)
	if err != nil {
		slog.Error("Suggestions: title lookup failed", "q", query, "error", err)
		return nil, err
	}
	artists, err := s.store.SuggestArtists(ctx, query, limit)
	if err != nil {
		slog.Error("Suggestions: artist lookup failed", "q", query, "error", err)
		return nil, err
	}

	suggestions := make([]music.Suggestion, 0, len(titles)+len(artists))
	for _, t := range titles {
		suggestions = append(suggestions, music.Suggestion{Type: "title", Value: t})
	}
	for _, a := range artists {
		suggestions = append(suggestions, music.Suggestion{Type: "artist", Value: a})
	}
	if len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}
	return suggestions, nil
}
