package domain

import "time"

// Comment is one remote comment as the service last reported it.
// The client never mutates it; a refresh replaces it wholesale.
type Comment struct {
	ID           string // Record id
	MediaID      string
	CommentID    string // Reply target, stable across refreshes
	Username     string
	Text         string
	ReplyMessage string
	Replied      bool
	CommentedAt  time.Time
	RepliedAt    time.Time
	Replies      []Reply
}

// Reply is a reply already posted under a comment.
type Reply struct {
	ID        string
	Text      string
	Timestamp time.Time
}

// CommentPage is one page of stored comments.
type CommentPage struct {
	Comments      []Comment
	TotalElements int
	TotalPages    int
	Size          int
	Number        int
}

// CommentQuery selects a page of stored comments. A nil Replied lists all.
type CommentQuery struct {
	MediaID string
	Page    int
	Size    int
	Replied *bool
}

// AutoReplyRequest asks the service to answer pending comments containing Keyword.
type AutoReplyRequest struct {
	Limit   int
	Keyword string
	Message string
}

// AutoReplyResult reports how many comments an auto-reply run answered.
type AutoReplyResult struct {
	Processed int
}
