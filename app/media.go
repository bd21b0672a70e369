package app

import (
	"context"

	"github.com/CrestNiraj12/replydesk/domain"
)

// MediaService lists the account's posts and syncs their comments into the service store.
type MediaService interface {
	// ListMedia returns the first page of media for an account.
	ListMedia(ctx context.Context, accountID string) (domain.MediaPage, error)

	// FetchAndStoreComments pulls up to limit comments of a media from the Graph API into the store.
	FetchAndStoreComments(ctx context.Context, mediaID string, limit int) (domain.SyncResult, error)
}
