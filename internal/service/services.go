package service

import (
	"fmt"

	"github.com/MKhiriev/cipher-chat/internal/config"
	"github.com/MKhiriev/cipher-chat/internal/crypto"
	"github.com/MKhiriev/cipher-chat/internal/logger"
	"github.com/MKhiriev/cipher-chat/internal/metrics"
	"github.com/MKhiriev/cipher-chat/internal/store"
)

type Services struct {
	AuthService    AuthService
	CipherService  CipherService
	MessageService MessageService
	CaptchaService CaptchaService
	StegoService   StegoService
	AppInfoService AppInfoService
}

// NewServices wires every service on top of storages. The Playfair square
// cache is sized from cfg.Crypto and exported through m.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, m *metrics.Metrics, logger *logger.Logger) (*Services, error) {
	squares, err := crypto.NewSquareCache(cfg.Crypto.SquareCacheSize)
	if err != nil {
		return nil, fmt.Errorf("error creating services: %w", err)
	}
	if m != nil {
		m.RegisterSquareCache(squares.Len)
	}

	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating services: %w", err)
	}

	cipherService := NewCipherService(crypto.NewCodec(squares), m, logger)
	messageService := NewMessageValidationService().Wrap(
		NewMessageService(storages.MessageRepository, cipherService, logger),
	)

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, cfg.App, logger),
		CipherService:  cipherService,
		MessageService: messageService,
		CaptchaService: NewCaptchaService(cfg.Captcha, m, logger),
		StegoService:   NewStegoService(logger),
		AppInfoService: appInfoService,
	}, nil
}
