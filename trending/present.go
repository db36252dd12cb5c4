package trending

import (
	"fmt"
	"io"
	"strings"

	youtubemodel "github.com/trendwatch/yt-trending/model/youtube"
)

const noTitlePlaceholder = "No Title"

// Presenter writes a ranked listing of videos.
type Presenter struct {
	Out io.Writer
}

// Present prints up to count entries in input order, ranked from 1.
// windowHours and regionCode only label the header; the videos are
// assumed already filtered.
func (p *Presenter) Present(videos []*youtubemodel.Video, count, windowHours int, regionCode string) {
	if len(videos) == 0 {
		fmt.Fprintln(p.Out, "No videos found matching the criteria.")
		return
	}

	n := len(videos)
	if count < n {
		n = count
	}

	fmt.Fprintf(p.Out, "\nTop %d YouTube Videos from the Last %d Hours (Region: %s):\n", n, windowHours, regionCode)
	fmt.Fprintln(p.Out, strings.Repeat("-", 80))

	for i, video := range videos[:n] {
		title := video.Title
		if title == "" {
			title = noTitlePlaceholder
		}
		fmt.Fprintf(p.Out, "%d. %s\n", i+1, title)
		fmt.Fprintf(p.Out, "   Link: %s\n\n", video.WatchURL())
	}
}
