package app

import (
	"context"

	"github.com/CrestNiraj12/replydesk/domain"
)

// CommentService reads stored comments and sends replies through the remote service.
type CommentService interface {
	// ListComments returns a page of stored comments, optionally filtered by replied state.
	ListComments(ctx context.Context, q domain.CommentQuery) (domain.CommentPage, error)

	// ListUnreplied returns a page of comments the service still considers unanswered.
	ListUnreplied(ctx context.Context, mediaID string, page, size int) (domain.CommentPage, error)

	// Reply posts message as a reply to the comment.
	Reply(ctx context.Context, commentID, message string) error

	// AutoReply answers pending comments of a media that contain a keyword.
	AutoReply(ctx context.Context, mediaID string, req domain.AutoReplyRequest) (domain.AutoReplyResult, error)
}
