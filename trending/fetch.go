// Package trending implements the single fetch -> filter -> present
// pass over a region's most-popular chart.
package trending

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/trendwatch/yt-trending/client"
	youtubemodel "github.com/trendwatch/yt-trending/model/youtube"
)

// FetchPopular requests up to limit chart entries for the region. A
// transport or API failure comes back as an error so callers can tell
// a failed request apart from an empty chart.
func FetchPopular(ctx context.Context, c client.Client, regionCode string, limit int) ([]*youtubemodel.Video, error) {
	videos, err := c.GetMostPopular(ctx, regionCode, limit)
	if err != nil {
		return nil, fmt.Errorf("fetching popular videos for region %s: %w", regionCode, err)
	}

	log.Debug().
		Str("region_code", regionCode).
		Int("video_count", len(videos)).
		Msg("Popular videos fetched")

	return videos, nil
}
