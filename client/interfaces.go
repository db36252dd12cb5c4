package client

import (
	"context"

	youtubemodel "github.com/trendwatch/yt-trending/model/youtube"
)

// Client represents a video-platform client able to serve a region's
// "most popular" chart.
type Client interface {
	// Connect establishes a connection to the service
	Connect(ctx context.Context) error

	// Disconnect closes the connection to the service
	Disconnect(ctx context.Context) error

	// GetMostPopular retrieves up to limit chart entries for the
	// region, in the platform's own popularity order
	GetMostPopular(ctx context.Context, regionCode string, limit int) ([]*youtubemodel.Video, error)

	// PlatformType returns the backing platform ("youtube")
	PlatformType() string
}
