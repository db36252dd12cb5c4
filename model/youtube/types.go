// Package youtube contains YouTube-specific data models
package youtube

import "fmt"

const watchURLFormat = "https://www.youtube.com/watch?v=%s"

// Video represents one entry of the "most popular" chart. PublishedAt
// carries the raw RFC3339 string from the API; parsing belongs to the
// recency filter so a corrupt timestamp only costs that one record.
type Video struct {
	ID           string
	Title        string
	Description  string
	ChannelID    string
	ChannelTitle string
	PublishedAt  string
	Duration     string
	ViewCount    int64
	LikeCount    int64
	CommentCount int64
	Thumbnails   map[string]string
}

// WatchURL returns the public watch link for the video.
func (v *Video) WatchURL() string {
	return fmt.Sprintf(watchURLFormat, v.ID)
}
