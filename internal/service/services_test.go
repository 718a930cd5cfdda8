package service

import (
	"testing"
	"time"

	"github.com/MKhiriev/cipher-chat/internal/config"
	"github.com/MKhiriev/cipher-chat/internal/logger"
	"github.com/MKhiriev/cipher-chat/internal/metrics"
	"github.com/MKhiriev/cipher-chat/internal/mock"
	"github.com/MKhiriev/cipher-chat/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testServicesConfig() config.StructuredConfig {
	return config.StructuredConfig{
		App:     config.App{TokenSignKey: "k", TokenIssuer: "cipher-chat", TokenDuration: time.Hour, Version: "1.0.0"},
		Crypto:  config.Crypto{SquareCacheSize: 8},
		Captcha: config.Captcha{TTL: time.Minute, SweepInterval: time.Minute},
	}
}

func testStorages(t *testing.T) *store.Storages {
	ctrl := gomock.NewController(t)
	return &store.Storages{
		UserRepository:    mock.NewMockUserRepository(ctrl),
		MessageRepository: mock.NewMockMessageRepository(ctrl),
	}
}

func TestNewServices(t *testing.T) {
	services, err := NewServices(testStorages(t), testServicesConfig(), metrics.New(), logger.Nop())

	require.NoError(t, err)
	assert.NotNil(t, services.AuthService)
	assert.NotNil(t, services.CipherService)
	assert.IsType(t, &MessageValidationService{}, services.MessageService)
	assert.NotNil(t, services.CaptchaService)
	assert.NotNil(t, services.StegoService)
	assert.NotNil(t, services.AppInfoService)
}

func TestNewServices_Errors(t *testing.T) {
	cfg := testServicesConfig()
	cfg.App.Version = ""
	_, err := NewServices(testStorages(t), cfg, nil, logger.Nop())
	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)

	cfg = testServicesConfig()
	cfg.Crypto.SquareCacheSize = 0
	_, err = NewServices(testStorages(t), cfg, nil, logger.Nop())
	assert.Error(t, err)
}
