package music

import "time"

// PlayStats is the aggregate play analytics record for one track, created
// lazily on its first recorded play. Both counters are monotonically
// non-decreasing and UniqueListeners never exceeds PlayCount.
type PlayStats struct {
	TrackID         string    `json:"songId"`
	PlayCount       int64     `json:"playCount"`
	UniqueListeners int64     `json:"uniqueListeners"`
	LastPlayed      time.Time `json:"lastPlayed"`
}

// PlayReceipt is the outcome of recording a single playback event.
type PlayReceipt struct {
	Track           TrackRef   `json:"song"`
	Stats           *PlayStats `json:"analytics"`
	UniqueIncreased bool       `json:"uniqueIncreased"`
}
