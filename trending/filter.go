package trending

import (
	"time"

	"github.com/rs/zerolog/log"

	youtubemodel "github.com/trendwatch/yt-trending/model/youtube"
)

// FilterRecent keeps videos published within the last windowHours,
// measured against the current UTC instant.
func FilterRecent(videos []*youtubemodel.Video, windowHours int) []*youtubemodel.Video {
	threshold := time.Now().UTC().Add(-time.Duration(windowHours) * time.Hour)
	return FilterSince(videos, threshold)
}

// FilterSince returns the order-preserving subsequence of videos whose
// publish time is at or after threshold. RFC 3339 parsing accepts both
// the trailing Z and an explicit zero offset. A video whose timestamp
// does not parse is logged and dropped; one corrupt record never fails
// the batch.
func FilterSince(videos []*youtubemodel.Video, threshold time.Time) []*youtubemodel.Video {
	filtered := make([]*youtubemodel.Video, 0, len(videos))

	for _, video := range videos {
		publishedAt, err := time.Parse(time.RFC3339, video.PublishedAt)
		if err != nil {
			log.Warn().
				Err(err).
				Str("video_id", video.ID).
				Str("published_at", video.PublishedAt).
				Msg("Failed to parse video published date")
			continue
		}

		if !publishedAt.Before(threshold) {
			filtered = append(filtered, video)
		}
	}

	return filtered
}
