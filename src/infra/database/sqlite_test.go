package database

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/contre95/soundwell/src/infra/trigram"
	"github.com/contre95/soundwell/src/music"
)

// newTestStore opens a store backed by a throwaway database file. A file, not
// :memory:, because every pooled connection would otherwise see its own
// empty in-memory database.
func newTestStore(t *testing.T) *SqliteStore {
	t.Helper()
	store, err := NewSqliteStore(filepath.Join(t.TempDir(), "soundwell_test.db"))
	if err != nil {
		t.Fatalf("opening store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func seedAccount(t *testing.T, store *SqliteStore, username string) *music.Account {
	t.Helper()
	account := music.NewAccount(username, "")
	if err := store.AddAccount(context.Background(), account); err != nil {
		t.Fatalf("seeding account %s: %v", username, err)
	}
	return account
}

func seedTrack(t *testing.T, store *SqliteStore, title, artist, genre, uploadedBy string) *music.Track {
	t.Helper()
	track := music.NewTrack(title, artist, genre)
	if err := store.AddTrack(context.Background(), track, uploadedBy); err != nil {
		t.Fatalf("seeding track %s: %v", title, err)
	}
	return track
}

func TestGetTrack_AbsentIsNilNil(t *testing.T) {
	store := newTestStore(t)

	track, err := store.GetTrack(context.Background(), "does-not-exist")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if track != nil {
		t.Fatalf("expected nil track, got %+v", track)
	}
}

func TestInsertPlayEvent_DuplicatePair(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	account := seedAccount(t, store, "listener")
	track := seedTrack(t, store, "Sicko Mode", "Trav", "", "")

	if err := store.InsertPlayEvent(ctx, account.ID, track.ID); err != nil {
		t.Fatalf("first play event: %v", err)
	}
	if err := store.InsertPlayEvent(ctx, account.ID, track.ID); !errors.Is(err, music.ErrDuplicatePlay) {
		t.Fatalf("expected ErrDuplicatePlay on repeat pair, got %v", err)
	}

	// A different account for the same track is not a duplicate.
	other := seedAccount(t, store, "other")
	if err := store.InsertPlayEvent(ctx, other.ID, track.ID); err != nil {
		t.Fatalf("second listener play event: %v", err)
	}
}

func TestUpsertPlayStats_CreateThenIncrement(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	track := seedTrack(t, store, "Sicko Mode", "Trav", "", "")
	playedAt := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	stats, err := store.UpsertPlayStats(ctx, track.ID, true, playedAt)
	if err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	if stats.PlayCount != 1 || stats.UniqueListeners != 1 {
		t.Fatalf("expected 1/1 after first upsert, got %d/%d", stats.PlayCount, stats.UniqueListeners)
	}

	stats, err = store.UpsertPlayStats(ctx, track.ID, false, playedAt.Add(time.Hour))
	if err != nil {
		t.Fatalf("repeat upsert: %v", err)
	}
	if stats.PlayCount != 2 || stats.UniqueListeners != 1 {
		t.Fatalf("expected 2/1 after repeat listen, got %d/%d", stats.PlayCount, stats.UniqueListeners)
	}

	stats, err = store.UpsertPlayStats(ctx, track.ID, true, playedAt.Add(2*time.Hour))
	if err != nil {
		t.Fatalf("new listener upsert: %v", err)
	}
	if stats.PlayCount != 3 || stats.UniqueListeners != 2 {
		t.Fatalf("expected 3/2 after new listener, got %d/%d", stats.PlayCount, stats.UniqueListeners)
	}
	if want := playedAt.Add(2 * time.Hour); !stats.LastPlayed.Equal(want) {
		t.Errorf("expected last played %v, got %v", want, stats.LastPlayed)
	}
}

func TestSearchTracks_Substring(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	uploader := seedAccount(t, store, "trav")
	seedTrack(t, store, "Sicko Mode", "Trav", "rap", uploader.ID)
	seedTrack(t, store, "Yellow", "Coldplay", "rock", "")

	items, total, err := store.SearchTracks(ctx, "sicko", "sicko", 20, 0)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if total != 1 || len(items) != 1 {
		t.Fatalf("expected 1 match, got total %d items %d", total, len(items))
	}
	if items[0].Title != "Sicko Mode" {
		t.Errorf("unexpected match %q", items[0].Title)
	}
	if items[0].UploadedBy == nil || items[0].UploadedBy.Username != "trav" {
		t.Errorf("expected uploader trav, got %+v", items[0].UploadedBy)
	}

	// Formatting-insensitive match through the normalized search key.
	norm := music.NormalizeQuery("SICKO-MODE")
	if _, total, err = store.SearchTracks(ctx, "SICKO-MODE", norm, 20, 0); err != nil {
		t.Fatalf("normalized search: %v", err)
	}
	if total != 1 {
		t.Fatalf("expected search-key containment match, got total %d", total)
	}

	if _, total, err = store.SearchTracks(ctx, "nothing", "nothing", 20, 0); err != nil {
		t.Fatalf("miss search: %v", err)
	}
	if total != 0 {
		t.Fatalf("expected no matches, got %d", total)
	}
}

func TestSearchTracksSimilar_Typo(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	seedTrack(t, store, "Sicko Mode", "Trav", "", "")
	seedTrack(t, store, "Yellow", "Coldplay", "", "")

	// "sickomoe" shares no substring with the stored key but is close enough
	// in trigram space.
	items, total, err := store.SearchTracksSimilar(ctx, "sickomoe", trigram.DefaultThreshold, 20, 0)
	if err != nil {
		t.Fatalf("similarity search: %v", err)
	}
	if total != 1 || len(items) != 1 {
		t.Fatalf("expected 1 similarity match, got total %d items %d", total, len(items))
	}
	if items[0].Title != "Sicko Mode" {
		t.Errorf("unexpected match %q", items[0].Title)
	}

	if _, total, err = store.SearchTracksSimilar(ctx, "zzzzzz", trigram.DefaultThreshold, 20, 0); err != nil {
		t.Fatalf("miss similarity search: %v", err)
	}
	if total != 0 {
		t.Fatalf("expected no similarity matches, got %d", total)
	}
}

func TestSearchAccounts(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	account := seedAccount(t, store, "travisfan99")
	follower := seedAccount(t, store, "someone")
	if err := store.Follow(ctx, follower.ID, account.ID); err != nil {
		t.Fatalf("follow: %v", err)
	}
	seedTrack(t, store, "Sicko Mode", "Trav", "", account.ID)

	items, total, err := store.SearchAccounts(ctx, "travisfan", 20, 0)
	if err != nil {
		t.Fatalf("account search: %v", err)
	}
	if total != 1 || len(items) != 1 {
		t.Fatalf("expected 1 account, got total %d items %d", total, len(items))
	}
	got := items[0]
	if got.Username != "travisfan99" || got.Followers != 1 || got.TrackCount != 1 {
		t.Errorf("unexpected account row %+v", got)
	}
}

func TestSearchCollections(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	owner := seedAccount(t, store, "curator")
	collection := music.NewCollection("Late Night Drives", "slow stuff", owner.ID)
	if err := store.AddCollection(ctx, collection); err != nil {
		t.Fatalf("adding collection: %v", err)
	}
	for i, title := range []string{"Sicko Mode", "Yellow"} {
		track := seedTrack(t, store, title, "Various", "", "")
		err := store.AddCollectionEntry(ctx, music.CollectionEntry{
			CollectionID: collection.ID, TrackID: track.ID, Position: i,
		})
		if err != nil {
			t.Fatalf("adding entry: %v", err)
		}
	}

	items, total, err := store.SearchCollections(ctx, "night", 20, 0)
	if err != nil {
		t.Fatalf("collection search: %v", err)
	}
	if total != 1 || len(items) != 1 {
		t.Fatalf("expected 1 collection, got total %d items %d", total, len(items))
	}
	got := items[0]
	if got.Name != "Late Night Drives" || got.TrackCount != 2 {
		t.Errorf("unexpected collection row %+v", got)
	}
	if got.Owner == nil || got.Owner.Username != "curator" {
		t.Errorf("expected owner curator, got %+v", got.Owner)
	}
}

func TestSuggestions(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	seedTrack(t, store, "Sicko Mode", "Travis Scott", "", "")
	seedTrack(t, store, "Sicko Mode", "Travis Scott", "", "") // duplicate upload
	seedTrack(t, store, "Yellow", "Coldplay", "", "")

	titles, err := store.SuggestTitles(ctx, "sicko", 10)
	if err != nil {
		t.Fatalf("suggest titles: %v", err)
	}
	if len(titles) != 1 || titles[0] != "Sicko Mode" {
		t.Fatalf("expected distinct title suggestion, got %v", titles)
	}

	artists, err := store.SuggestArtists(ctx, "trav", 10)
	if err != nil {
		t.Fatalf("suggest artists: %v", err)
	}
	if len(artists) != 1 || artists[0] != "Travis Scott" {
		t.Fatalf("expected distinct artist suggestion, got %v", artists)
	}
}

func TestListTrendingTracks_Window(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	recent := seedTrack(t, store, "Sicko Mode", "Trav", "", "")
	stale := seedTrack(t, store, "Yellow", "Coldplay", "", "")

	now := time.Now().UTC()
	if _, err := store.UpsertPlayStats(ctx, recent.ID, true, now.Add(-time.Hour)); err != nil {
		t.Fatalf("recent upsert: %v", err)
	}
	if _, err := store.UpsertPlayStats(ctx, stale.ID, true, now.AddDate(0, 0, -60)); err != nil {
		t.Fatalf("stale upsert: %v", err)
	}

	items, total, err := store.ListTrendingTracks(ctx, now.AddDate(0, 0, -30), 0, 20, 0)
	if err != nil {
		t.Fatalf("trending: %v", err)
	}
	if total != 1 || len(items) != 1 {
		t.Fatalf("expected 1 trending track, got total %d items %d", total, len(items))
	}
	if items[0].ID != recent.ID {
		t.Errorf("expected the recently played track, got %q", items[0].Title)
	}

	// minPlays filters out tracks under the floor.
	if _, total, err = store.ListTrendingTracks(ctx, now.AddDate(0, 0, -30), 5, 20, 0); err != nil {
		t.Fatalf("trending with floor: %v", err)
	}
	if total != 0 {
		t.Fatalf("expected no tracks above a 5-play floor, got %d", total)
	}
}

func TestListTracks_OrderAndFilter(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	hit := seedTrack(t, store, "Sicko Mode", "Trav", "rap", "")
	seedTrack(t, store, "Yellow", "Coldplay", "rock", "")

	if _, err := store.UpsertPlayStats(ctx, hit.ID, true, time.Now().UTC()); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	items, total, err := store.ListTracks(ctx, music.TrackFilter{Order: music.OrderPopular}, 20, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 2 || len(items) != 2 {
		t.Fatalf("expected 2 tracks, got total %d items %d", total, len(items))
	}
	if items[0].ID != hit.ID {
		t.Errorf("expected the played track first under popular order, got %q", items[0].Title)
	}
	if items[0].Stats == nil || items[0].Stats.PlayCount != 1 {
		t.Errorf("expected analytics on the played track, got %+v", items[0].Stats)
	}

	_, total, err = store.ListTracks(ctx, music.TrackFilter{Genre: "rap"}, 20, 0)
	if err != nil {
		t.Fatalf("genre filter: %v", err)
	}
	if total != 1 {
		t.Fatalf("expected 1 rap track, got %d", total)
	}
}
