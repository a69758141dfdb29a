package search

import (
	"context"
	"errors"
	"testing"

	"github.com/contre95/soundwell/src/features/config"
	"github.com/contre95/soundwell/src/infra/trigram"
	"github.com/contre95/soundwell/src/music"
)

// mockStore is a mock implementation of music.Store covering the search path.
type mockStore struct {
	music.Store // Embed interface, will panic if unused methods are called

	trackItems []*music.TrackResult
	trackTotal int
	simItems   []*music.TrackResult
	simTotal   int
	simErr     error

	accountItems    []*music.AccountResult
	accountTotal    int
	collectionItems []*music.CollectionResult
	collectionTotal int

	simCalled         bool
	accountsCalled    bool
	collectionsCalled bool
	gotRaw, gotNorm   string
	gotLimit          int
	gotOffset         int
}

func (m *mockStore) SearchTracks(ctx context.Context, rawQuery, normQuery string, limit, offset int) ([]*music.TrackResult, int, error) {
	m.gotRaw, m.gotNorm, m.gotLimit, m.gotOffset = rawQuery, normQuery, limit, offset
	return m.trackItems, m.trackTotal, nil
}

func (m *mockStore) SearchTracksSimilar(ctx context.Context, normQuery string, threshold float64, limit, offset int) ([]*music.TrackResult, int, error) {
	m.simCalled = true
	if m.simErr != nil {
		return nil, 0, m.simErr
	}
	return m.simItems, m.simTotal, nil
}

func (m *mockStore) SearchAccounts(ctx context.Context, query string, limit, offset int) ([]*music.AccountResult, int, error) {
	m.accountsCalled = true
	return m.accountItems, m.accountTotal, nil
}

func (m *mockStore) SearchAccountsSimilar(ctx context.Context, query string, threshold float64, limit, offset int) ([]*music.AccountResult, int, error) {
	m.simCalled = true
	return nil, 0, nil
}

func (m *mockStore) SearchCollections(ctx context.Context, query string, limit, offset int) ([]*music.CollectionResult, int, error) {
	m.collectionsCalled = true
	return m.collectionItems, m.collectionTotal, nil
}

func (m *mockStore) SearchCollectionsSimilar(ctx context.Context, query string, threshold float64, limit, offset int) ([]*music.CollectionResult, int, error) {
	m.simCalled = true
	return nil, 0, nil
}

func (m *mockStore) SuggestTitles(ctx context.Context, query string, limit int) ([]string, error) {
	return []string{"SICKO MODE"}, nil
}

func (m *mockStore) SuggestArtists(ctx context.Context, query string, limit int) ([]string, error) {
	return []string{"Travis Scott"}, nil
}

func testConfig() *config.Manager {
	return config.NewManager(&config.Config{
		Search: config.Search{SimilarityThreshold: trigram.DefaultThreshold},
	})
}

func trackResults(n int) []*music.TrackResult {
	items := make([]*music.TrackResult, 0, n)
	for i := 0; i < n; i++ {
		items = append(items, &music.TrackResult{Track: *music.NewTrack("SICKO MODE", "Travis Scott", "hip hop")})
	}
	return items
}

func TestSearch_StandardTier(t *testing.T) {
	store := &mockStore{trackItems: trackResults(1), trackTotal: 1}
	service := NewService(store, testConfig())

	result, err := service.Search(context.Background(), Request{Query: "sicko mode", Scope: music.ScopeTracks, Page: 1, PageSize: 20})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if result.Tier != music.TierStandard {
		t.Errorf("expected standard tier, got %s", result.Tier)
	}
	if result.Total != 1 {
		t.Errorf("expected total 1, got %d", result.Total)
	}
	if store.simCalled {
		t.Error("similarity tier must not run when the substring tier matches")
	}
	if store.gotNorm != "sickomode" {
		t.Errorf("expected normalized query sickomode, got %q", store.gotNorm)
	}
}

func TestSearch_SimilarityFallback(t *testing.T) {
	store := &mockStore{trackTotal: 0, simItems: trackResults(1), simTotal: 1}
	service := NewService(store, testConfig())

	result, err := service.Search(context.Background(), Request{Query: "fe!n", Scope: music.ScopeTracks, Page: 1, PageSize: 20})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !store.simCalled {
		t.Fatal("similarity tier must run on zero substring matches")
	}
	if result.Tier != music.TierSimilarity {
		t.Errorf("expected similarity tier, got %s", result.Tier)
	}
	if result.Total != 1 {
		t.Errorf("expected similarity total 1, got %d", result.Total)
	}
}

func TestSearch_ShortQueryNeverFallsBack(t *testing.T) {
	store := &mockStore{trackTotal: 0, simTotal: 5}
	service := NewService(store, testConfig())

	result, err := service.Search(context.Background(), Request{Query: "a", Scope: music.ScopeTracks, Page: 1, PageSize: 20})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if store.simCalled {
		t.Error("similarity tier must not run for a 1-character normalized query")
	}
	if result.Tier != music.TierStandard || result.Total != 0 {
		t.Errorf("expected empty standard result, got tier %s total %d", result.Tier, result.Total)
	}
}

func TestSearch_SimilarityFailureDegrades(t *testing.T) {
	store := &mockStore{trackTotal: 0, simErr: errors.New("no such function: similarity")}
	service := NewService(store, testConfig())

	result, err := service.Search(context.Background(), Request{Query: "sicko mode", Scope: music.ScopeTracks, Page: 1, PageSize: 20})
	if err != nil {
		t.Fatalf("similarity failure must not fail the request, got %v", err)
	}
	if result.Tier != music.TierStandard || result.Total != 0 {
		t.Errorf("expected empty standard result, got tier %s total %d", result.Tier, result.Total)
	}
}

func TestSearch_EmptySimilarityStaysStandard(t *testing.T) {
	store := &mockStore{trackTotal: 0, simTotal: 0}
	service := NewService(store, testConfig())

	result, err := service.Search(context.Background(), Request{Query: "sicko mode", Scope: music.ScopeTracks, Page: 1, PageSize: 20})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !store.simCalled {
		t.Error("similarity tier should have been attempted")
	}
	if result.Tier != music.TierStandard {
		t.Errorf("expected standard tier when similarity finds nothing, got %s", result.Tier)
	}
}

func TestSearch_EmptyQuery(t *testing.T) {
	service := NewService(&mockStore{}, testConfig())

	if _, err := service.Search(context.Background(), Request{Query: "   "}); !errors.Is(err, music.ErrEmptyQuery) {
		t.Fatalf("expected ErrEmptyQuery, got %v", err)
	}
}

func TestSearch_PaginationClamping(t *testing.T) {
	cases := []struct {
		name       string
		page, size int
		wantPage   int
		wantLimit  int
		wantOffset int
	}{
		{"oversized page size", 1, 1000, 1, 100, 0},
		{"zero page size", 1, 0, 1, 1, 0},
		{"negative page", -3, 20, 1, 20, 0},
		{"second page", 2, 10, 2, 10, 10},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := &mockStore{}
			service := NewService(store, testConfig())

			result, err := service.Search(context.Background(), Request{Query: "query", Scope: music.ScopeTracks, Page: tc.page, PageSize: tc.size})
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if result.Page != tc.wantPage {
				t.Errorf("expected page %d, got %d", tc.wantPage, result.Page)
			}
			if store.gotLimit != tc.wantLimit {
				t.Errorf("expected limit %d, got %d", tc.wantLimit, store.gotLimit)
			}
			if store.gotOffset != tc.wantOffset {
				t.Errorf("expected offset %d, got %d", tc.wantOffset, store.gotOffset)
			}
		})
	}
}

func TestSearch_ScopeRouting(t *testing.T) {
	store := &mockStore{accountTotal: 1, accountItems: []*music.AccountResult{{}}}
	service := NewService(store, testConfig())

	result, err := service.Search(context.Background(), Request{Query: "someone", Scope: music.ScopeAccounts, Page: 1, PageSize: 20})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !store.accountsCalled {
		t.Error("account scope must query accounts")
	}
	if result.Scope != music.ScopeAccounts {
		t.Errorf("expected accounts scope in result, got %s", result.Scope)
	}

	store = &mockStore{collectionTotal: 1, collectionItems: []*music.CollectionResult{{}}}
	service = NewService(store, testConfig())
	if _, err := service.Search(context.Background(), Request{Query: "mix", Scope: music.ScopeCollections, Page: 1, PageSize: 20}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !store.collectionsCalled {
		t.Error("collection scope must query collections")
	}
}

func TestSuggestions(t *testing.T) {
	service := NewService(&mockStore{}, testConfig())
	ctx := context.Background()

	suggestions, err := service.Suggestions(ctx, "tra", 10)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(suggestions) != 2 {
		t.Fatalf("expected 2 suggestions, got %d", len(suggestions))
	}
	if suggestions[0].Type != "title" || suggestions[1].Type != "artist" {
		t.Errorf("expected title then artist suggestions, got %+v", suggestions)
	}

	// Short queries yield an empty list without hitting the store.
	suggestions, err = service.Suggestions(ctx, "t", 10)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(suggestions) != 0 {
		t.Errorf("expected no suggestions for a 1-character query, got %d", len(suggestions))
	}

	// Truncated to limit.
	suggestions, err = service.Suggestions(ctx, "tra", 1)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(suggestions) != 1 {
		t.Errorf("expected suggestions truncated to 1, got %d", len(suggestions))
	}
}
