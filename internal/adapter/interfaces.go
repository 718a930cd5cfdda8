// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the client side of the cipher-chat HTTP API.
//
// [ServerAdapter] hides the transport from the CLI. Non-2xx responses are
// mapped by mapHTTPError to the sentinels in errors.go, so callers can use
// [errors.Is] (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/cipher-chat/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter talks to a cipher-chat server.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to authenticated requests.
	SetToken(token string)

	// Token returns the stored bearer token, or "" when there is none.
	Token() string

	// Register creates an account and stores the issued token.
	Register(ctx context.Context, user models.User) (string, error)

	// Login authenticates and stores the issued token.
	Login(ctx context.Context, user models.User) (string, error)

	SendMessage(ctx context.Context, req models.SendMessageRequest) (models.Message, error)
	ListMessages(ctx context.Context, limit uint64) ([]models.Message, error)
	GetMessage(ctx context.Context, messageID int64) (models.Message, error)
	UpdateMessage(ctx context.Context, messageID int64, req models.UpdateMessageRequest) (models.Message, error)
	DecryptMessage(ctx context.Context, req models.DecryptMessageRequest) (models.DecryptMessageResponse, error)

	// Intercept returns the eavesdropper's view of the latest message.
	Intercept(ctx context.Context) (models.InterceptResult, error)

	NewCaptcha(ctx context.Context) (models.CaptchaChallenge, error)
	VerifyCaptcha(ctx context.Context, answer models.CaptchaAnswer) error

	// Version returns the server build version.
	Version(ctx context.Context) (string, error)
}
