package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidAlgorithm    = errors.New("invalid algorithm")
	ErrEmptyContent        = errors.New("content is required")
	ErrEmptyKey            = errors.New("key is required")
	ErrEmptyText           = errors.New("text is required")
	ErrInvalidMessageID    = errors.New("invalid message ID")
	ErrInvalidSquareSize   = errors.New("square size must be 5 or 6")
	ErrNoFieldsToUpdate    = errors.New("at least one field must be provided for update")
	ErrConflictingContent  = errors.New("plaintext and content cannot be updated together")
	ErrInvalidLogin        = errors.New("invalid login")
	ErrInvalidPassword     = errors.New("invalid password")
	ErrInvalidCaptchaToken = errors.New("captcha token is required")
	ErrInvalidSequence     = errors.New("captcha sequence must have 4 entries")
	ErrEmptyCover          = errors.New("cover text is required")
	ErrEmptySecret         = errors.New("secret is required")
)
