package replyapi

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/CrestNiraj12/replydesk/domain"
)

// commentService implements app.CommentService against the comment service.
type commentService struct {
	client *Client
}

// NewCommentService creates a CommentService backed by the comment service.
func NewCommentService(client *Client) *commentService {
	return &commentService{client: client}
}

// commentDTO mirrors the service's comment reply record.
type commentDTO struct {
	ID           string     `json:"id"`
	MediaID      string     `json:"mediaId"`
	CommentID    string     `json:"commentId"`
	Username     string     `json:"username"`
	Text         string     `json:"text"`
	ReplyMessage *string    `json:"replyMessage"`
	Replied      bool       `json:"replied"`
	CommentedAt  *string    `json:"commentedAt"`
	RepliedAt    *string    `json:"repliedAt"`
	Replies      []replyDTO `json:"replies"`
}

type replyDTO struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Timestamp string `json:"timestamp"`
}

type commentPageDTO struct {
	Content       []commentDTO `json:"content"`
	TotalElements int          `json:"totalElements"`
	TotalPages    int          `json:"totalPages"`
	Size          int          `json:"size"`
	Number        int          `json:"number"`
}

type replyRequest struct {
	Message string `json:"message"`
}

type autoReplyRequest struct {
	Keyword string `json:"keyword"`
	Message string `json:"message"`
}

type autoReplyResponse struct {
	Processed int `json:"processed"`
}

func (s *commentService) ListComments(ctx context.Context, q domain.CommentQuery) (domain.CommentPage, error) {
	params := pageQuery(q.MediaID, q.Page, q.Size)
	if q.Replied != nil {
		params.Set("replied", strconv.FormatBool(*q.Replied))
	}

	var page commentPageDTO
	if err := s.client.Get(ctx, "/auto/comments", params, &page); err != nil {
		return domain.CommentPage{}, fmt.Errorf("listing comments: %w", err)
	}
	return mapCommentPage(page), nil
}

func (s *commentService) ListUnreplied(ctx context.Context, mediaID string, page, size int) (domain.CommentPage, error) {
	var resp commentPageDTO
	if err := s.client.Get(ctx, "/auto/comments/unreplied", pageQuery(mediaID, page, size), &resp); err != nil {
		return domain.CommentPage{}, fmt.Errorf("listing unreplied comments: %w", err)
	}
	return mapCommentPage(resp), nil
}

func (s *commentService) Reply(ctx context.Context, commentID, message string) error {
	message = strings.TrimSpace(message)
	if message == "" {
		return domain.ErrEmptyReply
	}

	path := fmt.Sprintf("/auto/comments/%s/reply", url.PathEscape(commentID))
	if err := s.client.Post(ctx, path, nil, replyRequest{Message: message}, nil); err != nil {
		return fmt.Errorf("replying to comment: %w", err)
	}
	return nil
}

func (s *commentService) AutoReply(ctx context.Context, mediaID string, req domain.AutoReplyRequest) (domain.AutoReplyResult, error) {
	mediaID = strings.TrimSpace(mediaID)
	keyword := strings.TrimSpace(req.Keyword)
	message := strings.TrimSpace(req.Message)
	switch {
	case mediaID == "":
		return domain.AutoReplyResult{}, domain.ErrMissingMedia
	case keyword == "":
		return domain.AutoReplyResult{}, domain.ErrKeywordRequired
	case message == "":
		return domain.AutoReplyResult{}, domain.ErrMessageRequired
	case req.Limit <= 0:
		return domain.AutoReplyResult{}, domain.ErrInvalidLimit
	}

	q := url.Values{}
	q.Set("limit", strconv.Itoa(req.Limit))

	var resp autoReplyResponse
	path := fmt.Sprintf("/auto/%s/comments/auto-reply", url.PathEscape(mediaID))
	if err := s.client.Post(ctx, path, q, autoReplyRequest{Keyword: keyword, Message: message}, &resp); err != nil {
		return domain.AutoReplyResult{}, fmt.Errorf("auto-replying: %w", err)
	}
	return domain.AutoReplyResult{Processed: resp.Processed}, nil
}

func pageQuery(mediaID string, page, size int) url.Values {
	q := url.Values{}
	q.Set("mediaId", mediaID)
	q.Set("page", strconv.Itoa(max(page, 0)))
	if size > 0 {
		q.Set("size", strconv.Itoa(size))
	}
	return q
}

func mapCommentPage(p commentPageDTO) domain.CommentPage {
	return domain.CommentPage{
		Comments:      mapComments(p.Content),
		TotalElements: p.TotalElements,
		TotalPages:    p.TotalPages,
		Size:          p.Size,
		Number:        p.Number,
	}
}

func mapComments(in []commentDTO) []domain.Comment {
	out := make([]domain.Comment, 0, len(in))
	for _, c := range in {
		replies := make([]domain.Reply, 0, len(c.Replies))
		for _, r := range c.Replies {
			replies = append(replies, domain.Reply{
				ID:        r.ID,
				Text:      sanitizeForTerminal(r.Text),
				Timestamp: parseTime(r.Timestamp),
			})
		}
		out = append(out, domain.Comment{
			ID:           c.ID,
			MediaID:      c.MediaID,
			CommentID:    c.CommentID,
			Username:     sanitizeForTerminal(c.Username),
			Text:         sanitizeForTerminal(c.Text),
			ReplyMessage: sanitizeForTerminal(deref(c.ReplyMessage)),
			Replied:      c.Replied,
			CommentedAt:  parseTime(deref(c.CommentedAt)),
			RepliedAt:    parseTime(deref(c.RepliedAt)),
			Replies:      replies,
		})
	}
	return out
}

// Timestamps come either zoned (Graph API) or as bare local date-times (service store).
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05-0700",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
}

func parseTime(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
