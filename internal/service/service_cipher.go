package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/cipher-chat/internal/crypto"
	"github.com/MKhiriev/cipher-chat/internal/logger"
	"github.com/MKhiriev/cipher-chat/internal/metrics"
	"github.com/MKhiriev/cipher-chat/models"
)

const (
	operationEncrypt = "encrypt"
	operationDecrypt = "decrypt"
)

type cipherService struct {
	cipher  crypto.Cipher
	metrics *metrics.Metrics

	logger *logger.Logger
}

// NewCipherService returns a CipherService running on cipher. Every call
// is counted in m; a nil m disables counting.
func NewCipherService(cipher crypto.Cipher, m *metrics.Metrics, logger *logger.Logger) CipherService {
	return &cipherService{
		cipher:  cipher,
		metrics: m,
		logger:  logger,
	}
}

func (c *cipherService) Encrypt(ctx context.Context, req models.CryptoRequest) (models.CryptoResponse, error) {
	log := logger.FromContext(ctx)

	key, err := keyFromRequest(req)
	if err != nil {
		log.Err(err).Str("func", "cipherService.Encrypt").Str("algorithm", req.Algorithm).Msg("unusable key")
		return models.CryptoResponse{}, err
	}

	sealed, err := c.cipher.Encrypt(req.Text, key)
	c.observe(key.Algorithm(), operationEncrypt, err)
	if err != nil {
		log.Err(err).Str("func", "cipherService.Encrypt").Str("algorithm", string(key.Algorithm())).Msg("encryption failed")
		return models.CryptoResponse{}, fmt.Errorf("encryption failed: %w", err)
	}

	return models.CryptoResponse{
		Algorithm: string(sealed.Algorithm),
		Result:    sealed.Ciphertext,
		Meta:      sealed.Meta,
	}, nil
}

func (c *cipherService) Decrypt(ctx context.Context, req models.CryptoRequest) (models.CryptoResponse, error) {
	log := logger.FromContext(ctx)

	key, err := keyFromRequest(req)
	if err != nil {
		log.Err(err).Str("func", "cipherService.Decrypt").Str("algorithm", req.Algorithm).Msg("unusable key")
		return models.CryptoResponse{}, err
	}

	sealed := crypto.Sealed{Algorithm: key.Algorithm(), Ciphertext: req.Text, Meta: req.Meta}
	plain, err := c.cipher.Decrypt(sealed, key)
	c.observe(key.Algorithm(), operationDecrypt, err)
	if err != nil {
		log.Err(err).Str("func", "cipherService.Decrypt").Str("algorithm", string(key.Algorithm())).Msg("decryption failed")
		return models.CryptoResponse{}, fmt.Errorf("decryption failed: %w", err)
	}

	return models.CryptoResponse{
		Algorithm: string(key.Algorithm()),
		Result:    plain,
	}, nil
}

func (c *cipherService) observe(algorithm crypto.Algorithm, operation string, err error) {
	if c.metrics != nil {
		c.metrics.ObserveCipher(string(algorithm), operation, err)
	}
}

// keyFromRequest builds the codec key for req. For Playfair, Meta takes
// precedence over Key; Size and MergeJ only refine a bare keyword.
func keyFromRequest(req models.CryptoRequest) (crypto.Key, error) {
	algorithm, err := crypto.ParseAlgorithm(req.Algorithm)
	if err != nil {
		return nil, err
	}

	if algorithm == crypto.Playfair && req.Meta != nil {
		meta := *req.Meta
		if meta.Size == 0 {
			meta.Size = crypto.DefaultPlayfairSize
		}
		if req.Key != "" && meta.Key == "" {
			meta.Key = req.Key
		}
		return crypto.PlayfairKey{Keyword: meta.Key, Size: meta.Size, MergeJ: meta.MergeJ, Meta: &meta}, nil
	}

	key, err := crypto.ParseKey(algorithm, req.Key)
	if err != nil {
		return nil, err
	}

	if pk, ok := key.(crypto.PlayfairKey); ok && pk.Meta == nil {
		if req.Size != 0 {
			pk.Size = req.Size
		}
		if req.MergeJ != nil {
			pk.MergeJ = *req.MergeJ
		}
		key = pk
	}
	return key, nil
}
