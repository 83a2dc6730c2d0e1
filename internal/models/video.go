package models

// Thumbnail holds a single thumbnail variant.
type Thumbnail struct {
	URL string `json:"url"`
}

// Thumbnails carries the size variants returned by videos.list. Not every
// video has every size.
type Thumbnails struct {
	Medium   Thumbnail `json:"medium"`
	High     Thumbnail `json:"high"`
	Standard Thumbnail `json:"standard"`
	Default  Thumbnail `json:"default"`
}

// BestURL returns the first available thumbnail URL in display preference
// order, or "" when the video has none.
func (t Thumbnails) BestURL() string {
	for _, u := range []string{t.Medium.URL, t.High.URL, t.Standard.URL, t.Default.URL} {
		if u != "" {
			return u
		}
	}
	return ""
}

// VideoSnippet is the snippet part of a videos.list item.
type VideoSnippet struct {
	Title        string     `json:"title"`
	ChannelID    string     `json:"channelId"`
	ChannelTitle string     `json:"channelTitle"`
	Thumbnails   Thumbnails `json:"thumbnails"`
}

// VideoStatistics keeps the counts in the API's string form. Creators can
// hide likes and comments, in which case the field is absent from the
// response and decodes to "". An empty count means unknown, not zero.
type VideoStatistics struct {
	ViewCount    string `json:"viewCount"`
	LikeCount    string `json:"likeCount"`
	CommentCount string `json:"commentCount"`
}

// Video represents one item from videos.list.
type Video struct {
	ID         string          `json:"id"`
	Snippet    VideoSnippet    `json:"snippet"`
	Statistics VideoStatistics `json:"statistics"`
}

// VideoListResponse represents the response from YouTube API for video list.
type VideoListResponse struct {
	Items []Video          `json:"items"`
	Error *APIErrorPayload `json:"error,omitempty"`
}
