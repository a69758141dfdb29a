package plays

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"github.com/contre95/soundwell/src/features/metrics"
	"github.com/contre95/soundwell/src/music"
)

// Service records playback events and maintains the per-track play
// analytics.
type Service struct {
	store music.Store
	now   func() time.Time
}

// NewService creates a new plays service.
func NewService(store music.Store) *Service {
	return &Service{store: store, now: time.Now}
}

// Record registers a single playback of a track. accountID may be empty for
// anonymous plays, which never bump the unique-listener counter.
//
// The play-event insert deliberately runs before, and independently of, the
// counter upsert: the duplicate-pair rejection is an expected outcome and
// must not poison the counter write. The counter upsert itself is the only
// operation that has to be atomic. The sequence as a whole is at-least-once:
// a caller retry after a counter failure re-counts the play but can never
// double-count the listener.
func (s *Service) Record(ctx context.Context, trackID, accountID string) (*music.PlayReceipt, error) {
	track, err := s.store.GetTrack(ctx, trackID)
	if err != nil {
		slog.Error("Record: track lookup failed", "trackID", trackID, "error", err)
		return nil, err
	}
	if track == nil {
		return nil, music.ErrTrackNotFound
	}

	firstListen := false
	if accountID != "" {
		switch err := s.store.InsertPlayEvent(ctx, accountID, trackID); {
		case err == nil:
			firstListen = true
		case errors.Is(err, music.ErrDuplicatePlay):
			// Repeat listener, expected.
		default:
			slog.Error("Record: play event insert failed", "trackID", trackID, "accountID", accountID, "error", err)
			return nil, err
		}
	}

	stats, err := s.store.UpsertPlayStats(ctx, trackID, firstListen, s.now().UTC())
	if err != nil {
		slog.Error("Record: play stats upsert failed", "trackID", trackID, "error", err)
		return nil, err
	}

	metrics.PlaysRecorded.WithLabelValues(strconv.FormatBool(firstListen)).Inc()
	slog.Debug("Record: play recorded", "trackID", trackID, "playCount", stats.PlayCount, "uniqueIncreased", firstListen)

	return &music.PlayReceipt{
		Track:           track.Ref(),
		Stats:           stats,
		UniqueIncreased: firstListen,
	}, nil
}
