package http

import (
	"github.com/MKhiriev/cipher-chat/internal/logger"
	"github.com/MKhiriev/cipher-chat/internal/metrics"
	"github.com/MKhiriev/cipher-chat/internal/service"
	"github.com/MKhiriev/cipher-chat/internal/validators"
)

type Handler struct {
	services  *service.Services
	validator validators.Validator

	// metrics is optional; without it neither request metrics nor
	// /metrics are served.
	metrics *metrics.Metrics

	logger *logger.Logger
}

func NewHandler(services *service.Services, m *metrics.Metrics, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		validator: validators.NewRequestValidator(),
		metrics:   m,
		logger:    logger,
	}
}
