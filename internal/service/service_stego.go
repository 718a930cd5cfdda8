package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/cipher-chat/internal/logger"
	"github.com/MKhiriev/cipher-chat/internal/stego"
	"github.com/MKhiriev/cipher-chat/internal/validators"
	"github.com/MKhiriev/cipher-chat/models"
)

type stegoService struct {
	validator validators.Validator

	logger *logger.Logger
}

func NewStegoService(logger *logger.Logger) StegoService {
	return &stegoService{
		validator: validators.NewRequestValidator(),
		logger:    logger,
	}
}

// Embed hides req.Secret in req.Cover. Capacity describes the cover, so a
// secret longer than Capacity.Chars spills past the last visible rune.
func (s *stegoService) Embed(ctx context.Context, req models.StegoRequest) (models.StegoResponse, error) {
	if err := s.validator.Validate(ctx, req, validators.FieldCover, validators.FieldSecret); err != nil {
		return models.StegoResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	text := stego.Embed(req.Cover, req.Secret)
	logger.FromContext(ctx).Debug().
		Int("hidden", stego.CountHidden(text)).
		Int("capacity_bits", stego.CapacityOf(req.Cover).Bits).
		Msg("secret embedded")

	return models.StegoResponse{
		Text:     text,
		Hidden:   stego.CountHidden(text),
		Capacity: stego.CapacityOf(req.Cover),
	}, nil
}

// Extract recovers the secret hidden in req.Cover and returns the visible
// text without it.
func (s *stegoService) Extract(ctx context.Context, req models.StegoRequest) (models.StegoResponse, error) {
	if err := s.validator.Validate(ctx, req, validators.FieldCover); err != nil {
		return models.StegoResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	visible := stego.Strip(req.Cover)
	return models.StegoResponse{
		Text:     visible,
		Secret:   stego.Extract(req.Cover),
		Hidden:   stego.CountHidden(req.Cover),
		Capacity: stego.CapacityOf(visible),
	}, nil
}

func (s *stegoService) Inspect(ctx context.Context, req models.StegoRequest) (models.StegoResponse, error) {
	if err := s.validator.Validate(ctx, req, validators.FieldCover); err != nil {
		return models.StegoResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return models.StegoResponse{
		Hidden:   stego.CountHidden(req.Cover),
		Capacity: stego.CapacityOf(stego.Strip(req.Cover)),
	}, nil
}
