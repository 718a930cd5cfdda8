package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/cipher-chat/internal/config"
	"github.com/MKhiriev/cipher-chat/internal/logger"
	"github.com/MKhiriev/cipher-chat/internal/service"
)

// CaptchaSweeper periodically drops expired captcha challenges so that
// abandoned ones do not pile up in memory.
type CaptchaSweeper struct {
	captchas service.CaptchaService
	interval time.Duration

	logger *logger.Logger
}

func NewCaptchaSweeper(captchas service.CaptchaService, cfg config.Captcha, logger *logger.Logger) *CaptchaSweeper {
	return &CaptchaSweeper{
		captchas: captchas,
		interval: cfg.SweepInterval,
		logger:   logger,
	}
}

func (s *CaptchaSweeper) Run(ctx context.Context) {
	go s.loop(ctx)
}

func (s *CaptchaSweeper) loop(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info().Dur("interval", s.interval).Msg("captcha sweeper started")
	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("captcha sweeper stopped")
			return
		case now := <-ticker.C:
			if removed := s.captchas.Sweep(now); removed > 0 {
				s.logger.Debug().Int("removed", removed).Msg("expired captchas swept")
			}
		}
	}
}
