package replyapi

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/CrestNiraj12/replydesk/domain"
)

// mediaService implements app.MediaService against the comment service.
type mediaService struct {
	client *Client
}

// NewMediaService creates a MediaService backed by the comment service.
func NewMediaService(client *Client) *mediaService {
	return &mediaService{client: client}
}

type mediaDTO struct {
	ID           string  `json:"id"`
	Caption      *string `json:"caption"`
	MediaType    string  `json:"media_type"`
	MediaURL     *string `json:"media_url"`
	ThumbnailURL *string `json:"thumbnail_url"`
	Permalink    *string `json:"permalink"`
}

type mediaResponse struct {
	Data   []mediaDTO `json:"data"`
	Paging *pagingDTO `json:"paging"`
}

type pagingDTO struct {
	Cursors *cursorsDTO `json:"cursors"`
	Next    *string     `json:"next"`
}

type cursorsDTO struct {
	Before *string `json:"before"`
	After  *string `json:"after"`
}

type syncResponse struct {
	MediaID        string `json:"mediaId"`
	SavedOrUpdated int    `json:"savedOrUpdated"`
}

func (s *mediaService) ListMedia(ctx context.Context, accountID string) (domain.MediaPage, error) {
	accountID = strings.TrimSpace(accountID)
	if accountID == "" {
		return domain.MediaPage{}, fmt.Errorf("listing media: account id is required")
	}

	var resp mediaResponse
	path := "/auto/instagram-media/" + url.PathEscape(accountID)
	if err := s.client.Get(ctx, path, nil, &resp); err != nil {
		return domain.MediaPage{}, fmt.Errorf("listing media: %w", err)
	}
	return mapMediaPage(resp), nil
}

func (s *mediaService) FetchAndStoreComments(ctx context.Context, mediaID string, limit int) (domain.SyncResult, error) {
	mediaID = strings.TrimSpace(mediaID)
	if mediaID == "" {
		return domain.SyncResult{}, domain.ErrMissingMedia
	}
	if limit <= 0 {
		return domain.SyncResult{}, domain.ErrInvalidLimit
	}

	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))

	var resp syncResponse
	path := fmt.Sprintf("/auto/%s/comments/all", url.PathEscape(mediaID))
	if err := s.client.Get(ctx, path, q, &resp); err != nil {
		return domain.SyncResult{}, fmt.Errorf("fetching comments: %w", err)
	}
	if resp.MediaID == "" {
		resp.MediaID = mediaID
	}
	return domain.SyncResult{MediaID: resp.MediaID, SavedOrUpdated: resp.SavedOrUpdated}, nil
}

func mapMediaPage(resp mediaResponse) domain.MediaPage {
	items := make([]domain.Media, 0, len(resp.Data))
	for _, m := range resp.Data {
		items = append(items, domain.Media{
			ID:           m.ID,
			Caption:      sanitizeForTerminal(deref(m.Caption)),
			MediaType:    m.MediaType,
			MediaURL:     deref(m.MediaURL),
			ThumbnailURL: deref(m.ThumbnailURL),
			Permalink:    deref(m.Permalink),
		})
	}

	var next string
	if resp.Paging != nil {
		if resp.Paging.Cursors != nil {
			next = deref(resp.Paging.Cursors.After)
		}
		if next == "" {
			next = deref(resp.Paging.Next)
		}
	}
	return domain.MediaPage{Items: items, Next: next}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
