package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/cipher-chat/models"
)

// UserRepository persists chat accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByLogin(ctx context.Context, login string) (models.User, error)
}

// MessageRepository persists enciphered messages.
type MessageRepository interface {
	SaveMessage(ctx context.Context, message models.Message) (models.Message, error)
	GetMessage(ctx context.Context, messageID int64) (models.Message, error)
	// ListMessages returns messages oldest first. A zero limit returns all.
	ListMessages(ctx context.Context, limit uint64) ([]models.Message, error)
	GetLatestMessage(ctx context.Context) (models.Message, error)
	UpdateMessage(ctx context.Context, messageID int64, patch models.MessagePatch) (models.Message, error)
}

// ErrorClassificator inspects driver errors for a specific SQL dialect.
type ErrorClassificator interface {
	// Classify reports whether the failed operation may be retried.
	Classify(err error) ErrorClassification

	// IsUniqueViolation reports whether err is a unique constraint failure.
	IsUniqueViolation(err error) bool
}
