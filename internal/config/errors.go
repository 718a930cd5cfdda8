package config

import "errors"

// Validation errors returned when a configuration group is incomplete or
// invalid after every source has been merged.
var (
	// ErrInvalidServerConfigs indicates a missing listen address or a
	// non-positive request timeout.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidStorageConfigs indicates an empty DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates a missing token sign key or a
	// non-positive token duration.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidCryptoConfigs indicates a non-positive square cache size.
	ErrInvalidCryptoConfigs = errors.New("invalid crypto configuration")
	// ErrInvalidCaptchaConfigs indicates a non-positive captcha TTL or
	// sweep interval.
	ErrInvalidCaptchaConfigs = errors.New("invalid captcha configuration")
	// ErrInvalidClientConfigs indicates an empty server URL or a
	// non-positive client timeout.
	ErrInvalidClientConfigs = errors.New("invalid client configuration")
)
