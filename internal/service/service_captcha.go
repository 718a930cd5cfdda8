package service

import (
	"context"
	"fmt"
	"math/rand/v2"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/cipher-chat/internal/config"
	"github.com/MKhiriev/cipher-chat/internal/logger"
	"github.com/MKhiriev/cipher-chat/internal/metrics"
	"github.com/MKhiriev/cipher-chat/internal/utils"
	"github.com/MKhiriev/cipher-chat/internal/validators"
	"github.com/MKhiriev/cipher-chat/models"
)

// captchaOrder is the tile order every answer must restore.
var captchaOrder = []int{0, 1, 2, 3}

type captchaEntry struct {
	expiresAt time.Time
}

// captchaService keeps issued challenges in memory. Tokens are use-once:
// any verification attempt consumes the token.
type captchaService struct {
	mu      sync.Mutex
	entries map[string]captchaEntry

	ttl       time.Duration
	now       func() time.Time
	tokens    *utils.UUIDGenerator
	shuffle   func([]int)
	validator validators.Validator
	metrics   *metrics.Metrics

	logger *logger.Logger
}

func NewCaptchaService(cfg config.Captcha, m *metrics.Metrics, logger *logger.Logger) CaptchaService {
	return newCaptchaService(cfg, m, logger)
}

func newCaptchaService(cfg config.Captcha, m *metrics.Metrics, logger *logger.Logger) *captchaService {
	return &captchaService{
		entries:   make(map[string]captchaEntry),
		ttl:       cfg.TTL,
		now:       time.Now,
		tokens:    utils.NewRandomUUIDGenerator(),
		shuffle:   shuffleTiles,
		validator: validators.NewRequestValidator(),
		metrics:   m,
		logger:    logger,
	}
}

func shuffleTiles(ids []int) {
	rand.Shuffle(len(ids), func(i, j int) { ids[i], ids[j] = ids[j], ids[i] })
}

// NewChallenge issues a token together with the tile ids in shuffled
// order. The client must send them back in ascending order.
func (c *captchaService) NewChallenge(ctx context.Context) (models.CaptchaChallenge, error) {
	shuffled := slices.Clone(captchaOrder)
	c.shuffle(shuffled)

	token := c.tokens.Generate()
	expiresAt := c.now().Add(c.ttl)

	c.mu.Lock()
	c.entries[token] = captchaEntry{expiresAt: expiresAt}
	c.mu.Unlock()

	logger.FromContext(ctx).Debug().Str("token", token).Time("expires_at", expiresAt).Msg("captcha issued")

	return models.CaptchaChallenge{Token: token, ShuffledIDs: shuffled, ExpiresAt: expiresAt}, nil
}

// Verify checks answer and consumes its token whatever the outcome.
func (c *captchaService) Verify(ctx context.Context, answer models.CaptchaAnswer) (err error) {
	defer func() {
		if c.metrics != nil {
			c.metrics.ObserveCaptcha(err)
		}
	}()

	if err = c.validator.Validate(ctx, answer); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	c.mu.Lock()
	entry, ok := c.entries[answer.Token]
	delete(c.entries, answer.Token)
	c.mu.Unlock()

	switch {
	case !ok:
		return ErrCaptchaInvalid
	case c.now().After(entry.expiresAt):
		return ErrCaptchaExpired
	case !slices.Equal(answer.Sequence, captchaOrder):
		return ErrCaptchaWrongOrder
	}

	return nil
}

func (c *captchaService) Sweep(now time.Time) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for token, entry := range c.entries {
		if now.After(entry.expiresAt) {
			delete(c.entries, token)
			removed++
		}
	}
	return removed
}
