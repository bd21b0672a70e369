package domain

import "strings"

// Media kinds reported by the Graph API.
const (
	MediaImage    = "IMAGE"
	MediaVideo    = "VIDEO"
	MediaCarousel = "CAROUSEL_ALBUM"
)

// Media represents one post of the managed account.
type Media struct {
	ID           string
	Caption      string
	MediaType    string
	MediaURL     string
	ThumbnailURL string // Video preview image
	Permalink    string
}

// PreviewURL returns the best image to show for the post.
func (m Media) PreviewURL() string {
	if m.MediaType == MediaVideo && strings.TrimSpace(m.ThumbnailURL) != "" {
		return m.ThumbnailURL
	}
	return m.MediaURL
}

// MediaPage is one page of media plus the cursor for the next page ("" when exhausted).
type MediaPage struct {
	Items []Media
	Next  string
}

// SyncResult reports a fetch & store run for one media.
type SyncResult struct {
	MediaID        string
	SavedOrUpdated int
}
