package music

// SearchScope selects which entity kind a search runs against.
type SearchScope string

const (
	ScopeTracks      SearchScope = "tracks"
	ScopeAccounts    SearchScope = "accounts"
	ScopeCollections SearchScope = "collections"
)

// ParseScope maps a raw scope parameter to a known scope. Unknown values
// fall back to the track scope rather than erroring.
func ParseScope(s string) SearchScope {
	switch SearchScope(s) {
	case ScopeAccounts:
		return ScopeAccounts
	case ScopeCollections:
		return ScopeCollections
	default:
		return ScopeTracks
	}
}

// SearchTier tags which pass produced a search result.
type SearchTier string

const (
	// TierStandard is the case-insensitive substring pass.
	TierStandard SearchTier = "standard"
	// TierSimilarity is the trigram-similarity fallback pass.
	TierSimilarity SearchTier = "similarity"
)

// SearchResult is the outcome of one search request. Items holds the
// scope-specific result rows ([]*TrackResult, []*AccountResult or
// []*CollectionResult); Tier reports which pass produced them.
type SearchResult struct {
	Scope    SearchScope `json:"scope"`
	Query    string      `json:"q"`
	Page     int         `json:"page"`
	PageSize int         `json:"pageSize"`
	Total    int         `json:"total"`
	Pages    int         `json:"pages"`
	Items    any         `json:"items"`
	Tier     SearchTier  `json:"searchType"`
}

// Suggestion is a single typed autocomplete entry.
type Suggestion struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}
