// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks the merged [StructuredConfig] before it is used at
// startup. The first failing group is reported.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs)
	}
	if cfg.App.TokenDuration <= 0 {
		return fmt.Errorf("%w: token duration must be positive", ErrInvalidAppConfigs)
	}

	if cfg.Crypto.SquareCacheSize <= 0 {
		return ErrInvalidCryptoConfigs
	}

	if cfg.Captcha.TTL <= 0 || cfg.Captcha.SweepInterval <= 0 {
		return ErrInvalidCaptchaConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Server == "" || cfg.Timeout <= 0 {
		return ErrInvalidClientConfigs
	}
	return nil
}
