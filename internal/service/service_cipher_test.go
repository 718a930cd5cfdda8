package service

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/cipher-chat/internal/crypto"
	"github.com/MKhiriev/cipher-chat/internal/logger"
	"github.com/MKhiriev/cipher-chat/internal/metrics"
	"github.com/MKhiriev/cipher-chat/internal/mock"
	"github.com/MKhiriev/cipher-chat/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestCipherService() CipherService {
	return NewCipherService(crypto.NewCodec(nil), nil, logger.Nop())
}

func TestCipherService_Caesar(t *testing.T) {
	svc := newTestCipherService()
	ctx := context.Background()

	sealed, err := svc.Encrypt(ctx, models.CryptoRequest{Algorithm: "Caesar", Text: "abc xyz", Key: "3"})
	require.NoError(t, err)
	assert.Equal(t, "caesar", sealed.Algorithm)
	assert.Equal(t, "def {|}", sealed.Result)
	assert.Nil(t, sealed.Meta)

	plain, err := svc.Decrypt(ctx, models.CryptoRequest{Algorithm: "ceasar", Text: sealed.Result, Key: " 3 "})
	require.NoError(t, err)
	assert.Equal(t, "abc xyz", plain.Result)
}

func TestCipherService_Hill(t *testing.T) {
	svc := newTestCipherService()
	ctx := context.Background()

	sealed, err := svc.Encrypt(ctx, models.CryptoRequest{Algorithm: "hill", Text: "Hello!", Key: "3,2;5,7"})
	require.NoError(t, err)
	assert.NotEqual(t, "Hello!", sealed.Result)

	plain, err := svc.Decrypt(ctx, models.CryptoRequest{Algorithm: "hill", Text: sealed.Result, Key: "3, 2; 5, 7"})
	require.NoError(t, err)
	assert.Equal(t, "Hello!", plain.Result)
}

func TestCipherService_HillRejectsOversizedKey(t *testing.T) {
	svc := newTestCipherService()
	key := crypto.FormatHillKey(crypto.Identity(crypto.MaxHillKeySize + 2))

	_, err := svc.Encrypt(context.Background(), models.CryptoRequest{Algorithm: "hill", Text: "abcdefghij", Key: key})
	assert.ErrorIs(t, err, crypto.ErrInvalidKey)

	_, err = svc.Decrypt(context.Background(), models.CryptoRequest{Algorithm: "hill", Text: "abcdefghij", Key: key})
	assert.ErrorIs(t, err, crypto.ErrInvalidKey)
}

func TestCipherService_Playfair(t *testing.T) {
	svc := newTestCipherService()
	ctx := context.Background()

	sealed, err := svc.Encrypt(ctx, models.CryptoRequest{Algorithm: "playfair", Text: "instruments", Key: "MONARCHY"})
	require.NoError(t, err)
	assert.Equal(t, "GATLMZCLRQXA", sealed.Result)
	require.NotNil(t, sealed.Meta)
	assert.True(t, sealed.Meta.XAddedEnd)

	t.Run("with meta", func(t *testing.T) {
		plain, err := svc.Decrypt(ctx, models.CryptoRequest{Algorithm: "playfair", Text: sealed.Result, Meta: sealed.Meta})
		require.NoError(t, err)
		assert.Equal(t, "INSTRUMENTS", plain.Result)
	})

	t.Run("without meta", func(t *testing.T) {
		plain, err := svc.Decrypt(ctx, models.CryptoRequest{Algorithm: "playfair", Text: sealed.Result, Key: "MONARCHY"})
		require.NoError(t, err)
		assert.Equal(t, "INSTRUMENTSX", plain.Result)
	})
}

func TestCipherService_PlayfairSixBySix(t *testing.T) {
	svc := newTestCipherService()
	ctx := context.Background()
	mergeJ := false

	sealed, err := svc.Encrypt(ctx, models.CryptoRequest{Algorithm: "playfair", Text: "Agent 007", Key: "spy", Size: 6, MergeJ: &mergeJ})
	require.NoError(t, err)
	require.NotNil(t, sealed.Meta)
	assert.Equal(t, 6, sealed.Meta.Size)

	plain, err := svc.Decrypt(ctx, models.CryptoRequest{Algorithm: "playfair", Text: sealed.Result, Meta: sealed.Meta})
	require.NoError(t, err)
	assert.Equal(t, "AGENT007", plain.Result)
}

func TestCipherService_Errors(t *testing.T) {
	svc := newTestCipherService()

	tests := []struct {
		name    string
		req     models.CryptoRequest
		wantErr error
	}{
		{name: "unknown algorithm", req: models.CryptoRequest{Algorithm: "vigenere", Text: "x", Key: "k"}, wantErr: crypto.ErrUnknownAlgorithm},
		{name: "caesar key not a number", req: models.CryptoRequest{Algorithm: "caesar", Text: "x", Key: "three"}, wantErr: crypto.ErrInvalidKey},
		{name: "caesar identity shift", req: models.CryptoRequest{Algorithm: "caesar", Text: "x", Key: "94"}, wantErr: crypto.ErrInvalidKey},
		{name: "hill singular", req: models.CryptoRequest{Algorithm: "hill", Text: "xy", Key: "2,4;6,8"}, wantErr: crypto.ErrNotInvertible},
		{name: "playfair bad size", req: models.CryptoRequest{Algorithm: "playfair", Text: "xy", Key: "k", Size: 4}, wantErr: crypto.ErrInvalidSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Encrypt(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCipherService_CountsOperations(t *testing.T) {
	ctrl := gomock.NewController(t)
	cipher := mock.NewMockCipher(ctrl)
	m := metrics.New()
	svc := NewCipherService(cipher, m, logger.Nop())

	cipher.EXPECT().
		Encrypt("hi", crypto.CaesarKey{Shift: 1}).
		Return(crypto.Sealed{Algorithm: crypto.Caesar, Ciphertext: "ij"}, nil)
	cipher.EXPECT().
		Decrypt(crypto.Sealed{Algorithm: crypto.Caesar, Ciphertext: "ij"}, crypto.CaesarKey{Shift: 1}).
		Return("", errors.New("boom"))

	_, err := svc.Encrypt(context.Background(), models.CryptoRequest{Algorithm: "caesar", Text: "hi", Key: "1"})
	require.NoError(t, err)
	_, err = svc.Decrypt(context.Background(), models.CryptoRequest{Algorithm: "caesar", Text: "ij", Key: "1"})
	require.Error(t, err)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)

	assert.Contains(t, string(body), `cipher_chat_cipher_operations_total{algorithm="caesar",operation="encrypt",result="ok"} 1`)
	assert.Contains(t, string(body), `cipher_chat_cipher_operations_total{algorithm="caesar",operation="decrypt",result="error"} 1`)
}
