// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=MessageServiceWrapper

import (
	"context"
	"time"

	"github.com/MKhiriev/cipher-chat/models"
)

// AuthService registers users, checks credentials and issues JWTs.
type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// CipherService runs the stateless codecs.
type CipherService interface {
	Encrypt(ctx context.Context, req models.CryptoRequest) (models.CryptoResponse, error)
	Decrypt(ctx context.Context, req models.CryptoRequest) (models.CryptoResponse, error)
}

// MessageService stores enciphered chat messages and reads them back.
type MessageService interface {
	Send(ctx context.Context, authorID int64, req models.SendMessageRequest) (models.Message, error)
	List(ctx context.Context, limit uint64) ([]models.Message, error)
	Get(ctx context.Context, messageID int64) (models.Message, error)
	Update(ctx context.Context, messageID int64, req models.UpdateMessageRequest) (models.Message, error)
	Decrypt(ctx context.Context, req models.DecryptMessageRequest) (models.DecryptMessageResponse, error)

	// Intercept returns the latest message decrypted with its stored key,
	// the way an eavesdropper on the server would see it.
	Intercept(ctx context.Context) (models.InterceptResult, error)
}

// CaptchaService issues tile-ordering challenges and checks answers.
type CaptchaService interface {
	NewChallenge(ctx context.Context) (models.CaptchaChallenge, error)
	Verify(ctx context.Context, answer models.CaptchaAnswer) error

	// Sweep drops every challenge expired at now and returns how many
	// were removed.
	Sweep(now time.Time) int
}

// StegoService hides text inside a cover with zero-width characters.
type StegoService interface {
	Embed(ctx context.Context, req models.StegoRequest) (models.StegoResponse, error)
	Extract(ctx context.Context, req models.StegoRequest) (models.StegoResponse, error)
	Inspect(ctx context.Context, req models.StegoRequest) (models.StegoResponse, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// MessageServiceWrapper defines middleware composition for MessageService.
// Implementations wrap an existing MessageService to add behavior such as
// logging or validating.
type MessageServiceWrapper interface {
	Wrap(MessageService) MessageService
}
