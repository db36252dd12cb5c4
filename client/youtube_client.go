package client

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
	ytapi "google.golang.org/api/youtube/v3"

	youtubemodel "github.com/trendwatch/yt-trending/model/youtube"
)

const defaultRequestTimeout = 30 * time.Second

// YouTubeDataClient implements the Client interface on top of the
// YouTube Data API v3.
type YouTubeDataClient struct {
	service *ytapi.Service
	apiKey  string
	timeout time.Duration
	opts    []option.ClientOption
}

// NewYouTubeDataClient creates a new YouTube data client. Construction
// is offline; no network traffic happens until a chart is requested.
func NewYouTubeDataClient(apiKey string, timeout time.Duration, opts ...option.ClientOption) (*YouTubeDataClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("YouTube API key is required")
	}

	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	return &YouTubeDataClient{
		apiKey:  apiKey,
		timeout: timeout,
		opts:    opts,
	}, nil
}

// Connect builds the YouTube service handle bound to the API key.
func (c *YouTubeDataClient) Connect(ctx context.Context) error {
	log.Info().Msg("Connecting to YouTube API")

	httpClient := &http.Client{
		Timeout: c.timeout,
	}

	opts := append([]option.ClientOption{
		option.WithAPIKey(c.apiKey),
		option.WithHTTPClient(httpClient),
	}, c.opts...)

	service, err := ytapi.NewService(ctx, opts...)
	if err != nil {
		log.Error().Err(err).Msg("Failed to create YouTube service")
		return fmt.Errorf("failed to create YouTube service: %w", err)
	}

	c.service = service
	return nil
}

// Disconnect closes the connection to the YouTube API
func (c *YouTubeDataClient) Disconnect(ctx context.Context) error {
	// No explicit disconnect needed for the YouTube API client
	c.service = nil
	return nil
}

// PlatformType returns "youtube" as the platform type
func (c *YouTubeDataClient) PlatformType() string {
	return "youtube"
}

// GetMostPopular retrieves up to limit videos from the region's
// "mostPopular" chart in one request.
func (c *YouTubeDataClient) GetMostPopular(ctx context.Context, regionCode string, limit int) ([]*youtubemodel.Video, error) {
	if c.service == nil {
		return nil, fmt.Errorf("YouTube client not connected")
	}

	log.Info().
		Str("region_code", regionCode).
		Int("limit", limit).
		Msg("Fetching most popular videos")

	call := c.service.Videos.List([]string{"snippet", "contentDetails", "statistics"}).
		Chart("mostPopular").
		RegionCode(regionCode).
		MaxResults(int64(limit)).
		Context(ctx)

	response, err := call.Do()
	if err != nil {
		log.Error().Err(err).Str("region_code", regionCode).Msg("Failed to list most popular videos")
		return nil, fmt.Errorf("failed to list most popular videos: %w", err)
	}

	videos := make([]*youtubemodel.Video, 0, len(response.Items))
	for _, item := range response.Items {
		videos = append(videos, convertVideo(item))
	}

	log.Info().
		Str("region_code", regionCode).
		Int("video_count", len(videos)).
		Msg("Retrieved most popular videos")

	return videos, nil
}

// convertVideo maps an API item onto the local model. The publish
// timestamp stays a raw string; the recency filter owns parsing.
func convertVideo(item *ytapi.Video) *youtubemodel.Video {
	video := &youtubemodel.Video{
		ID: item.Id,
	}

	if item.Snippet != nil {
		video.Title = item.Snippet.Title
		video.Description = item.Snippet.Description
		video.ChannelID = item.Snippet.ChannelId
		video.ChannelTitle = item.Snippet.ChannelTitle
		video.PublishedAt = item.Snippet.PublishedAt
		video.Thumbnails = extractThumbnails(item.Snippet.Thumbnails)
	}

	if item.Statistics != nil {
		video.ViewCount = int64(item.Statistics.ViewCount)
		video.LikeCount = int64(item.Statistics.LikeCount)
		video.CommentCount = int64(item.Statistics.CommentCount)
	}

	if item.ContentDetails != nil {
		video.Duration = item.ContentDetails.Duration
	}

	return video
}

func extractThumbnails(details *ytapi.ThumbnailDetails) map[string]string {
	thumbnails := make(map[string]string)
	if details == nil {
		return thumbnails
	}

	if details.Default != nil {
		thumbnails["default"] = details.Default.Url
	}
	if details.Medium != nil {
		thumbnails["medium"] = details.Medium.Url
	}
	if details.High != nil {
		thumbnails["high"] = details.High.Url
	}
	if details.Standard != nil {
		thumbnails["standard"] = details.Standard.Url
	}
	if details.Maxres != nil {
		thumbnails["maxres"] = details.Maxres.Url
	}

	return thumbnails
}
