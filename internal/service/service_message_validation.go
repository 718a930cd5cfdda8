package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/cipher-chat/internal/validators"
	"github.com/MKhiriev/cipher-chat/models"
)

// MessageValidationService rejects malformed requests before they reach
// the wrapped MessageService. Validation failures wrap
// ErrInvalidDataProvided together with the validator's own error.
type MessageValidationService struct {
	inner     MessageService
	validator validators.Validator
}

func NewMessageValidationService() MessageServiceWrapper {
	return &MessageValidationService{
		validator: validators.NewRequestValidator(),
	}
}

func (v *MessageValidationService) Send(ctx context.Context, authorID int64, req models.SendMessageRequest) (models.Message, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Message{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Send(ctx, authorID, req)
}

func (v *MessageValidationService) List(ctx context.Context, limit uint64) ([]models.Message, error) {
	return v.inner.List(ctx, limit)
}

func (v *MessageValidationService) Get(ctx context.Context, messageID int64) (models.Message, error) {
	if messageID <= 0 {
		return models.Message{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrInvalidMessageID)
	}

	return v.inner.Get(ctx, messageID)
}

func (v *MessageValidationService) Update(ctx context.Context, messageID int64, req models.UpdateMessageRequest) (models.Message, error) {
	if messageID <= 0 {
		return models.Message{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrInvalidMessageID)
	}
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Message{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Update(ctx, messageID, req)
}

func (v *MessageValidationService) Decrypt(ctx context.Context, req models.DecryptMessageRequest) (models.DecryptMessageResponse, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.DecryptMessageResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Decrypt(ctx, req)
}

func (v *MessageValidationService) Intercept(ctx context.Context) (models.InterceptResult, error) {
	return v.inner.Intercept(ctx)
}

func (v *MessageValidationService) Wrap(wrapped MessageService) MessageService {
	v.inner = wrapped
	return v
}
