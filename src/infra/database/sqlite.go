package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/contre95/soundwell/src/infra/trigram"
	"github.com/contre95/soundwell/src/music"
	sqlite3 "github.com/mattn/go-sqlite3"
)

// driverName registers a sqlite3 driver variant that exposes trigram
// similarity() as a SQL function, standing in for Postgres pg_trgm.
const driverName = "sqlite3_soundwell"

func init() {
	sql.Register(driverName, &sqlite3.SQLiteDriver{
		ConnectHook: func(conn *sqlite3.SQLiteConn) error {
			return conn.RegisterFunc("similarity", trigram.Similarity, true)
		},
	})
}

// SqliteStore is a SQLite implementation of the music.Store interface.
type SqliteStore struct {
	db *sql.DB
}

// NewSqliteStore opens (or creates) the database at path and ensures the
// schema exists.
func NewSqliteStore(path string) (*SqliteStore, error) {
	db, err := sql.Open(driverName, path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(`PRAGMA foreign_keys = ON`); err != nil {
		return nil, err
	}
	if err := createTables(db); err != nil {
		return nil, err
	}

	return &SqliteStore{db: db}, nil
}

// Close closes the underlying database handle.
func (d *SqliteStore) Close() error {
	return d.db.Close()
}

func createTables(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS accounts (
			id TEXT PRIMARY KEY,
			username TEXT NOT NULL UNIQUE,
			bio TEXT NOT NULL DEFAULT '',
			created_at TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS tracks (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			artist TEXT NOT NULL,
			genre TEXT NOT NULL DEFAULT '',
			search_key TEXT NOT NULL,
			uploaded_by TEXT REFERENCES accounts(id),
			created_at TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS collections (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			owner_id TEXT NOT NULL REFERENCES accounts(id),
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS collection_entries (
			collection_id TEXT NOT NULL REFERENCES collections(id) ON DELETE CASCADE,
			track_id TEXT NOT NULL REFERENCES tracks(id) ON DELETE CASCADE,
			position INTEGER NOT NULL DEFAULT 0,
			PRIMARY KEY (collection_id, track_id)
		);

		CREATE TABLE IF NOT EXISTS play_stats (
			track_id TEXT PRIMARY KEY REFERENCES tracks(id) ON DELETE CASCADE,
			play_count INTEGER NOT NULL DEFAULT 0,
			unique_listeners INTEGER NOT NULL DEFAULT 0,
			last_played TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS play_events (
			account_id TEXT NOT NULL REFERENCES accounts(id),
			track_id TEXT NOT NULL REFERENCES tracks(id) ON DELETE CASCADE,
			created_at TEXT NOT NULL,
			PRIMARY KEY (account_id, track_id)
		);

		CREATE TABLE IF NOT EXISTS track_likes (
			account_id TEXT NOT NULL REFERENCES accounts(id),
			track_id TEXT NOT NULL REFERENCES tracks(id) ON DELETE CASCADE,
			PRIMARY KEY (account_id, track_id)
		);

		CREATE TABLE IF NOT EXISTS follows (
			follower_id TEXT NOT NULL REFERENCES accounts(id),
			followee_id TEXT NOT NULL REFERENCES accounts(id),
			PRIMARY KEY (follower_id, followee_id)
		);

		CREATE INDEX IF NOT EXISTS idx_tracks_search_key ON tracks(search_key);
		CREATE INDEX IF NOT EXISTS idx_play_stats_play_count ON play_stats(play_count);
		CREATE INDEX IF NOT EXISTS idx_play_events_track ON play_events(track_id);
		CREATE INDEX IF NOT EXISTS idx_collection_entries_track ON collection_entries(track_id);
	`)
	return err
}

// GetTrack gets a track by id. Returns (nil, nil) when absent.
func (d *SqliteStore) GetTrack(ctx context.Context, id string) (*music.Track, error) {
	row := d.db.QueryRowContext(ctx, `
		SELECT id, title, artist, genre, search_key, created_at
		FROM tracks
		WHERE id = ?
	`, id)

	track := &music.Track{}
	var createdAt string
	err := row.Scan(&track.ID, &track.Title, &track.Artist, &track.Genre, &track.SearchKey, &createdAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	track.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return track, nil
}

// InsertPlayEvent records the (account, track) first-play marker. It runs as
// a single independent statement so a duplicate-pair rejection cannot poison
// any surrounding work; the duplicate is reported as music.ErrDuplicatePlay.
func (d *SqliteStore) InsertPlayEvent(ctx context.Context, accountID, trackID string) error {
	_, err := d.db.ExecContext(ctx, `
		INSERT INTO play_events (account_id, track_id, created_at)
		VALUES (?, ?, ?)
	`, accountID, trackID, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		var serr sqlite3.Error
		if errors.As(err, &serr) &&
			(serr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey || serr.ExtendedCode == sqlite3.ErrConstraintUnique) {
			return music.ErrDuplicatePlay
		}
		return err
	}
	return nil
}

// UpsertPlayStats bumps the play counters for a track in one atomic upsert.
// The increments happen inside the statement, never as an application-level
// read-modify-write, so concurrent plays of the same track cannot lose
// updates.
func (d *SqliteStore) UpsertPlayStats(ctx context.Context, trackID string, firstListen bool, playedAt time.Time) (*music.PlayStats, error) {
	uniqueDelta := 0
	if firstListen {
		uniqueDelta = 1
	}

	row := d.db.QueryRowContext(ctx, `
		INSERT INTO play_stats (track_id, play_count, unique_listeners, last_played)
		VALUES (?, 1, ?, ?)
		ON CONFLICT(track_id) DO UPDATE SET
			play_count = play_count + 1,
			unique_listeners = unique_listeners + excluded.unique_listeners,
			last_played = excluded.last_played
		RETURNING track_id, play_count, unique_listeners, last_played
	`, trackID, uniqueDelta, playedAt.UTC().Format(time.RFC3339))

	return scanPlayStats(row)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPlayStats(row rowScanner) (*music.PlayStats, error) {
	stats := &music.PlayStats{}
	var lastPlayed string
	if err := row.Scan(&stats.TrackID, &stats.PlayCount, &stats.UniqueListeners, &lastPlayed); err != nil {
		return nil, err
	}
	stats.LastPlayed, _ = time.Parse(time.RFC3339, lastPlayed)
	return stats, nil
}

// trackResultColumns is the select list scanTrackResult expects; t, a and ps
// must alias tracks, accounts and play_stats in the query.
const trackResultColumns = `
	t.id, t.title, t.artist, t.genre, t.search_key, t.created_at,
	a.id, a.username,
	ps.play_count, ps.unique_listeners, ps.last_played,
	(SELECT COUNT(*) FROM track_likes tl WHERE tl.track_id = t.id)
`

const trackResultJoins = `
	FROM tracks t
	LEFT JOIN accounts a ON t.uploaded_by = a.id
	LEFT JOIN play_stats ps ON ps.track_id = t.id
`

func scanTrackResult(row rowScanner) (*music.TrackResult, error) {
	r := &music.TrackResult{}
	var createdAt string
	var uploaderID, uploaderName sql.NullString
	var playCount, uniqueListeners sql.NullInt64
	var lastPlayed sql.NullString

	err := row.Scan(&r.ID, &r.Title, &r.Artist, &r.Genre, &r.SearchKey, &createdAt,
		&uploaderID, &uploaderName, &playCount, &uniqueListeners, &lastPlayed, &r.LikeCount)
	if err != nil {
		return nil, err
	}
	r.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)

	if uploaderID.Valid {
		r.UploadedBy = &music.AccountRef{ID: uploaderID.String, Username: uploaderName.String}
	}
	if playCount.Valid {
		r.Stats = &music.PlayStats{
			TrackID:         r.ID,
			PlayCount:       playCount.Int64,
			UniqueListeners: uniqueListeners.Int64,
		}
		r.Stats.LastPlayed, _ = time.Parse(time.RFC3339, lastPlayed.String)
	}
	return r, nil
}

func (d *SqliteStore) queryTrackResults(ctx context.Context, query string, args ...any) ([]*music.TrackResult, error) {
	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := []*music.TrackResult{}
	for rows.Next() {
		r, err := scanTrackResult(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, rows.Err()
}

// GetTrackDetails gets a track with uploader, analytics and like count.
// Returns (nil, nil) when absent.
func (d *SqliteStore) GetTrackDetails(ctx context.Context, id string) (*music.TrackResult, error) {
	row := d.db.QueryRowContext(ctx,
		`SELECT `+trackResultColumns+trackResultJoins+` WHERE t.id = ?`, id)
	r, err := scanTrackResult(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return r, err
}

// trackMatch is the substring predicate shared by the track search scope and
// the library q filter: three case-insensitive column matches plus search-key
// containment of the normalized query.
const trackMatch = `(t.title LIKE ? OR t.artist LIKE ? OR t.genre LIKE ? OR instr(t.search_key, ?) > 0)`

func trackMatchArgs(rawQuery, normQuery string) []any {
	like := "%" + rawQuery + "%"
	return []any{like, like, like, normQuery}
}

// SearchTracks runs the substring search tier over tracks, most-played first.
func (d *SqliteStore) SearchTracks(ctx context.Context, rawQuery, normQuery string, limit, offset int) ([]*music.TrackResult, int, error) {
	args := trackMatchArgs(rawQuery, normQuery)

	var total int
	err := d.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM tracks t WHERE `+trackMatch, args...).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	items, err := d.queryTrackResults(ctx,
		`SELECT `+trackResultColumns+trackResultJoins+`
		WHERE `+trackMatch+`
		ORDER BY COALESCE(ps.play_count, 0) DESC, t.created_at DESC
		LIMIT ? OFFSET ?`,
		append(args, limit, offset)...)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// SearchTracksSimilar runs the trigram fallback tier over track search keys.
func (d *SqliteStore) SearchTracksSimilar(ctx context.Context, normQuery string, threshold float64, limit, offset int) ([]*music.TrackResult, int, error) {
	var total int
	err := d.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM tracks t
		WHERE similarity(t.search_key, ?) >= ?
	`, normQuery, threshold).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	items, err := d.queryTrackResults(ctx,
		`SELECT `+trackResultColumns+trackResultJoins+`
		WHERE similarity(t.search_key, ?) >= ?
		ORDER BY similarity(t.search_key, ?) DESC, t.created_at DESC
		LIMIT ? OFFSET ?`,
		normQuery, threshold, normQuery, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

const accountMatch = `(a.username LIKE ? OR a.bio LIKE ?)`

const accountResultColumns = `
	a.id, a.username, a.bio, a.created_at,
	(SELECT COUNT(*) FROM follows f WHERE f.followee_id = a.id),
	(SELECT COUNT(*) FROM follows f WHERE f.follower_id = a.id),
	(SELECT COUNT(*) FROM tracks t WHERE t.uploaded_by = a.id)
`

func (d *SqliteStore) queryAccountResults(ctx context.Context, query string, args ...any) ([]*music.AccountResult, error) {
	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := []*music.AccountResult{}
	for rows.Next() {
		r := &music.AccountResult{}
		var createdAt string
		if err := rows.Scan(&r.ID, &r.Username, &r.Bio, &createdAt, &r.Followers, &r.Following, &r.TrackCount); err != nil {
			return nil, err
		}
		r.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		results = append(results, r)
	}
	return results, rows.Err()
}

// SearchAccounts runs the substring search tier over accounts, newest first.
func (d *SqliteStore) SearchAccounts(ctx context.Context, query string, limit, offset int) ([]*music.AccountResult, int, error) {
	like := "%" + query + "%"

	var total int
	err := d.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM accounts a WHERE `+accountMatch, like, like).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	items, err := d.queryAccountResults(ctx,
		`SELECT `+accountResultColumns+`
		FROM accounts a
		WHERE `+accountMatch+`
		ORDER BY a.created_at DESC
		LIMIT ? OFFSET ?`,
		like, like, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

const accountSimilar = `MAX(similarity(a.username, ?), similarity(a.bio, ?))`

// SearchAccountsSimilar runs the trigram fallback tier over accounts.
func (d *SqliteStore) SearchAccountsSimilar(ctx context.Context, query string, threshold float64, limit, offset int) ([]*music.AccountResult, int, error) {
	var total int
	err := d.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM accounts a WHERE `+accountSimilar+` >= ?`,
		query, query, threshold).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	items, err := d.queryAccountResults(ctx,
		`SELECT `+accountResultColumns+`
		FROM accounts a
		WHERE `+accountSimilar+` >= ?
		ORDER BY `+accountSimilar+` DESC, a.created_at DESC
		LIMIT ? OFFSET ?`,
		query, query, threshold, query, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

const collectionMatch = `(c.name LIKE ? OR c.description LIKE ?)`

const collectionResultColumns = `
	c.id, c.name, c.description, c.owner_id, c.created_at, c.updated_at,
	o.id, o.username,
	(SELECT COUNT(*) FROM collection_entries ce WHERE ce.collection_id = c.id)
`

const collectionResultJoins = `
	FROM collections c
	LEFT JOIN accounts o ON c.owner_id = o.id
`

func (d *SqliteStore) queryCollectionResults(ctx context.Context, query string, args ...any) ([]*music.CollectionResult, error) {
	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := []*music.CollectionResult{}
	for rows.Next() {
		r := &music.CollectionResult{}
		var createdAt, updatedAt string
		var ownerID, ownerName sql.NullString
		err := rows.Scan(&r.ID, &r.Name, &r.Description, &r.OwnerID, &createdAt, &updatedAt,
			&ownerID, &ownerName, &r.TrackCount)
		if err != nil {
			return nil, err
		}
		r.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		r.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
		if ownerID.Valid {
			r.Owner = &music.AccountRef{ID: ownerID.String, Username: ownerName.String}
		}
		results = append(results, r)
	}
	return results, rows.Err()
}

// SearchCollections runs the substring search tier over collections, newest
// first, with owner and track count attached to every row.
func (d *SqliteStore) SearchCollections(ctx context.Context, query string, limit, offset int) ([]*music.CollectionResult, int, error) {
	like := "%" + query + "%"

	var total int
	err := d.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM collections c WHERE `+collectionMatch, like, like).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	items, err := d.queryCollectionResults(ctx,
		`SELECT `+collectionResultColumns+collectionResultJoins+`
		WHERE `+collectionMatch+`
		ORDER BY c.created_at DESC
		LIMIT ? OFFSET ?`,
		like, like, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

const collectionSimilar = `MAX(similarity(c.name, ?), similarity(c.description, ?))`

// SearchCollectionsSimilar runs the trigram fallback tier over collections.
func (d *SqliteStore) SearchCollectionsSimilar(ctx context.Context, query string, threshold float64, limit, offset int) ([]*music.CollectionResult, int, error) {
	var total int
	err := d.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM collections c WHERE `+collectionSimilar+` >= ?`,
		query, query, threshold).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	items, err := d.queryCollectionResults(ctx,
		`SELECT `+collectionResultColumns+collectionResultJoins+`
		WHERE `+collectionSimilar+` >= ?
		ORDER BY `+collectionSimilar+` DESC, c.created_at DESC
		LIMIT ? OFFSET ?`,
		query, query, threshold, query, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// SuggestTitles returns distinct track titles containing the query.
func (d *SqliteStore) SuggestTitles(ctx context.Context, query string, limit int) ([]string, error) {
	return d.suggest(ctx, "title", query, limit)
}

// SuggestArtists returns distinct artist names containing the query.
func (d *SqliteStore) SuggestArtists(ctx context.Context, query string, limit int) ([]string, error) {
	return d.suggest(ctx, "artist", query, limit)
}

func (d *SqliteStore) suggest(ctx context.Context, column, query string, limit int) ([]string, error) {
	rows, err := d.db.QueryContext(ctx,
		`SELECT DISTINCT `+column+` FROM tracks WHERE `+column+` LIKE ? ORDER BY `+column+` LIMIT ?`,
		"%"+query+"%", limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	values := []string{}
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, rows.Err()
}

// ListTracks lists tracks with optional q/genre/artist filters and the
// requested ordering.
func (d *SqliteStore) ListTracks(ctx context.Context, filter music.TrackFilter, limit, offset int) ([]*music.TrackResult, int, error) {
	conditions := []string{}
	args := []any{}

	if filter.Query != "" {
		conditions = append(conditions, trackMatch)
		args = append(args, trackMatchArgs(filter.Query, filter.NormalizedQuery)...)
	}
	if filter.Genre != "" {
		conditions = append(conditions, "t.genre LIKE ?")
		args = append(args, "%"+filter.Genre+"%")
	}
	if filter.Artist != "" {
		conditions = append(conditions, "t.artist LIKE ?")
		args = append(args, "%"+filter.Artist+"%")
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int
	err := d.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM tracks t`+where, args...).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	var orderBy string
	switch filter.Order {
	case music.OrderPopular:
		orderBy = "COALESCE(ps.play_count, 0) DESC, t.created_at DESC"
	case music.OrderTrending:
		orderBy = "COALESCE(ps.last_played, '') DESC, COALESCE(ps.play_count, 0) DESC, t.created_at DESC"
	case music.OrderAlphabetical:
		orderBy = "t.title ASC, t.artist ASC"
	default:
		orderBy = "t.created_at DESC"
	}

	items, err := d.queryTrackResults(ctx,
		`SELECT `+trackResultColumns+trackResultJoins+where+`
		ORDER BY `+orderBy+`
		LIMIT ? OFFSET ?`,
		append(args, limit, offset)...)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// ListTopTracks lists tracks by all-time play count.
func (d *SqliteStore) ListTopTracks(ctx context.Context, limit, offset int) ([]*music.TrackResult, int, error) {
	var total int
	if err := d.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM tracks`).Scan(&total); err != nil {
		return nil, 0, err
	}

	items, err := d.queryTrackResults(ctx,
		`SELECT `+trackResultColumns+trackResultJoins+`
		ORDER BY COALESCE(ps.play_count, 0) DESC, COALESCE(ps.last_played, '') DESC, t.created_at DESC
		LIMIT ? OFFSET ?`,
		limit, offset)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// ListTrendingTracks lists tracks played since the given instant with at
// least minPlays recorded, most recently played first. RFC3339 timestamps
// compare correctly as strings.
func (d *SqliteStore) ListTrendingTracks(ctx context.Context, since time.Time, minPlays int64, limit, offset int) ([]*music.TrackResult, int, error) {
	sinceStr := since.UTC().Format(time.RFC3339)

	var total int
	err := d.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM tracks t
		JOIN play_stats ps ON ps.track_id = t.id
		WHERE ps.last_played >= ? AND ps.play_count >= ?
	`, sinceStr, minPlays).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	items, err := d.queryTrackResults(ctx,
		`SELECT `+trackResultColumns+`
		FROM tracks t
		LEFT JOIN accounts a ON t.uploaded_by = a.id
		JOIN play_stats ps ON ps.track_id = t.id
		WHERE ps.last_played >= ? AND ps.play_count >= ?
		ORDER BY ps.last_played DESC, ps.play_count DESC, t.created_at DESC
		LIMIT ? OFFSET ?`,
		sinceStr, minPlays, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// AddAccount adds an account to the database.
func (d *SqliteStore) AddAccount(ctx context.Context, account *music.Account) error {
	if err := account.Validate(); err != nil {
		slog.Error("AddAccount: validation failed", "error", err, "accountID", account.ID)
		return err
	}
	_, err := d.db.ExecContext(ctx, `
		INSERT INTO accounts (id, username, bio, created_at)
		VALUES (?, ?, ?, ?)
	`, account.ID, account.Username, account.Bio, account.CreatedAt.Format(time.RFC3339))
	return err
}

// AddTrack adds a track to the database.
func (d *SqliteStore) AddTrack(ctx context.Context, track *music.Track, uploadedBy string) error {
	if err := track.Validate(); err != nil {
		slog.Error("AddTrack: validation failed", "error", err, "trackID", track.ID)
		return err
	}
	var uploader any
	if uploadedBy != "" {
		uploader = uploadedBy
	}
	_, err := d.db.ExecContext(ctx, `
		INSERT INTO tracks (id, title, artist, genre, search_key, uploaded_by, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, track.ID, track.Title, track.Artist, track.Genre, track.SearchKey, uploader, track.CreatedAt.Format(time.RFC3339))
	return err
}

// AddCollection adds a collection to the database.
func (d *SqliteStore) AddCollection(ctx context.Context, collection *music.Collection) error {
	if err := collection.Validate(); err != nil {
		slog.Error("AddCollection: validation failed", "error", err, "collectionID", collection.ID)
		return err
	}
	_, err := d.db.ExecContext(ctx, `
		INSERT INTO collections (id, name, description, owner_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, collection.ID, collection.Name, collection.Description, collection.OwnerID,
		collection.CreatedAt.Format(time.RFC3339), collection.UpdatedAt.Format(time.RFC3339))
	return err
}

// AddCollectionEntry places a track inside a collection.
func (d *SqliteStore) AddCollectionEntry(ctx context.Context, entry music.CollectionEntry) error {
	_, err := d.db.ExecContext(ctx, `
		INSERT INTO collection_entries (collection_id, track_id, position)
		VALUES (?, ?, ?)
	`, entry.CollectionID, entry.TrackID, entry.Position)
	return err
}

// LikeTrack records a like; liking twice is a no-op.
func (d *SqliteStore) LikeTrack(ctx context.Context, accountID, trackID string) error {
	_, err := d.db.ExecContext(ctx, `
		INSERT OR IGNORE INTO track_likes (account_id, track_id)
		VALUES (?, ?)
	`, accountID, trackID)
	return err
}

// Follow records a follow edge; following twice is a no-op.
func (d *SqliteStore) Follow(ctx context.Context, followerID, followeeID string) error {
	if followerID == followeeID {
		return fmt.Errorf("account cannot follow itself: %s", followerID)
	}
	_, err := d.db.ExecContext(ctx, `
		INSERT OR IGNORE INTO follows (follower_id, followee_id)
		VALUES (?, ?)
	`, followerID, followeeID)
	return err
}
