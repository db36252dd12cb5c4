package trending

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	youtubemodel "github.com/trendwatch/yt-trending/model/youtube"
)

func TestPresent_EmptyInput(t *testing.T) {
	var buf bytes.Buffer
	p := &Presenter{Out: &buf}

	p.Present(nil, 5, 12, "US")

	assert.Equal(t, "No videos found matching the criteria.\n", buf.String())
}

func TestPresent_FewerVideosThanCount(t *testing.T) {
	var buf bytes.Buffer
	p := &Presenter{Out: &buf}

	videos := []*youtubemodel.Video{
		{ID: "a", Title: "Alpha"},
		{ID: "b", Title: "Beta"},
		{ID: "c", Title: "Gamma"},
	}

	p.Present(videos, 5, 12, "US")
	out := buf.String()

	assert.Contains(t, out, "Top 3 YouTube Videos from the Last 12 Hours (Region: US):")
	assert.Equal(t, 3, strings.Count(out, "Link:"))
	assert.Contains(t, out, "1. Alpha")
	assert.Contains(t, out, "2. Beta")
	assert.Contains(t, out, "3. Gamma")
	assert.Contains(t, out, "https://www.youtube.com/watch?v=a")
}

func TestPresent_TruncatesToCount(t *testing.T) {
	var buf bytes.Buffer
	p := &Presenter{Out: &buf}

	videos := []*youtubemodel.Video{
		{ID: "a", Title: "Alpha"},
		{ID: "b", Title: "Beta"},
		{ID: "c", Title: "Gamma"},
	}

	p.Present(videos, 2, 6, "GB")
	out := buf.String()

	assert.Contains(t, out, "Top 2 YouTube Videos from the Last 6 Hours (Region: GB):")
	assert.Equal(t, 2, strings.Count(out, "Link:"))
	assert.NotContains(t, out, "Gamma")
}

func TestPresent_RanksInInputOrder(t *testing.T) {
	var buf bytes.Buffer
	p := &Presenter{Out: &buf}

	videos := []*youtubemodel.Video{
		{ID: "second-most-popular", Title: "Runner Up"},
		{ID: "most-popular", Title: "Winner"},
	}

	p.Present(videos, 5, 12, "US")
	out := buf.String()

	assert.Less(t, strings.Index(out, "1. Runner Up"), strings.Index(out, "2. Winner"))
}

func TestPresent_MissingTitlePlaceholder(t *testing.T) {
	var buf bytes.Buffer
	p := &Presenter{Out: &buf}

	p.Present([]*youtubemodel.Video{{ID: "untitled"}}, 5, 12, "US")

	assert.Contains(t, buf.String(), "1. No Title")
}

func TestPresent_SeparatorRule(t *testing.T) {
	var buf bytes.Buffer
	p := &Presenter{Out: &buf}

	p.Present([]*youtubemodel.Video{{ID: "a", Title: "Alpha"}}, 1, 12, "US")

	assert.Contains(t, buf.String(), strings.Repeat("-", 80))
}
