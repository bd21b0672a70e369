package domain

import "errors"

var (
	// ErrEmptyReply indicates a reply whose text is empty after trimming.
	ErrEmptyReply = errors.New("reply cannot be empty")

	// ErrKeywordRequired indicates an auto-reply run without a trigger keyword.
	ErrKeywordRequired = errors.New("keyword is required")

	// ErrMessageRequired indicates an auto-reply run without a reply message.
	ErrMessageRequired = errors.New("reply message is required")

	// ErrInvalidLimit indicates a non-positive fetch or auto-reply limit.
	ErrInvalidLimit = errors.New("limit must be positive")

	// ErrMissingMedia indicates an operation that needs a media id got none.
	ErrMissingMedia = errors.New("media id is required")
)
