package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/cipher-chat/internal/config"
	"github.com/MKhiriev/cipher-chat/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppInfoService(t *testing.T) {
	t.Run("reports configured version", func(t *testing.T) {
		svc, err := NewAppInfoService(config.App{Version: "v1.2.3-beta+build.42"}, logger.Nop())
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		assert.Equal(t, "v1.2.3-beta+build.42", svc.GetAppVersion(ctx))
	})

	t.Run("refuses an empty version", func(t *testing.T) {
		svc, err := NewAppInfoService(config.App{}, logger.Nop())

		assert.Nil(t, svc)
		assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
	})
}
