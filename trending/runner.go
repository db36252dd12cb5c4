package trending

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"

	"github.com/trendwatch/yt-trending/client"
	"github.com/trendwatch/yt-trending/common"
)

// Runner wires config, client and presenter into one pass. Every
// failure defined for the tool degrades to a user-facing line on Out;
// the returned error is reserved for configuration values the flag
// layer should have rejected.
type Runner struct {
	Config common.TrendingConfig
	Client client.Client
	Out    io.Writer
}

// Run executes one fetch -> filter -> present pass. A missing API key
// halts before the client is touched, so no network activity can
// happen without a credential.
func (r *Runner) Run(ctx context.Context) error {
	if err := r.Config.Validate(); err != nil {
		if errors.Is(err, common.ErrMissingAPIKey) {
			log.Error().Msg("No API key configured, aborting before any network call")
			fmt.Fprintln(r.Out, "API key not found. Set YOUTUBE_API_KEY in your .env file or environment.")
			return nil
		}
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if err := r.Client.Connect(ctx); err != nil {
		log.Error().Err(err).Msg("Failed to connect to YouTube API")
		fmt.Fprintf(r.Out, "Could not fetch popular videos for region %s.\n", r.Config.RegionCode)
		return nil
	}
	defer func() {
		if err := r.Client.Disconnect(ctx); err != nil {
			log.Warn().Err(err).Msg("Error disconnecting client")
		}
	}()

	videos, err := FetchPopular(ctx, r.Client, r.Config.RegionCode, r.Config.FetchLimit)
	if err != nil {
		log.Error().Err(err).Str("region_code", r.Config.RegionCode).Msg("Fetch failed")
		fmt.Fprintf(r.Out, "Could not fetch popular videos for region %s.\n", r.Config.RegionCode)
		return nil
	}

	if len(videos) == 0 {
		log.Info().Str("region_code", r.Config.RegionCode).Msg("Chart came back empty")
		fmt.Fprintf(r.Out, "No popular videos found for region %s.\n", r.Config.RegionCode)
		return nil
	}

	recent := FilterRecent(videos, r.Config.WindowHours)
	log.Info().
		Int("fetched", len(videos)).
		Int("recent", len(recent)).
		Int("window_hours", r.Config.WindowHours).
		Msg("Applied recency filter")

	if len(recent) == 0 {
		fmt.Fprintf(r.Out, "No videos found published in the last %d hours for region %s.\n",
			r.Config.WindowHours, r.Config.RegionCode)
		return nil
	}

	presenter := &Presenter{Out: r.Out}
	presenter.Present(recent, r.Config.DisplayCount, r.Config.WindowHours, r.Config.RegionCode)
	return nil
}
