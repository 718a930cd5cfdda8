package config

import "time"

// Built-in defaults applied after every other source.
const (
	DefaultHTTPAddress     = "localhost:8080"
	DefaultRequestTimeout  = 10 * time.Second
	DefaultDSN             = "cipher-chat.db"
	DefaultTokenIssuer     = "cipher-chat"
	DefaultTokenDuration   = 24 * time.Hour
	DefaultVersion         = "dev"
	DefaultSquareCacheSize = 128
	DefaultCaptchaTTL      = time.Minute
	DefaultSweepInterval   = 30 * time.Second

	DefaultClientServer  = "http://localhost:8080"
	DefaultClientTimeout = 10 * time.Second
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   DefaultTokenIssuer,
			TokenDuration: DefaultTokenDuration,
			Version:       DefaultVersion,
		},
		Storage: Storage{DB: DB{DSN: DefaultDSN}},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Crypto: Crypto{SquareCacheSize: DefaultSquareCacheSize},
		Captcha: Captcha{
			TTL:           DefaultCaptchaTTL,
			SweepInterval: DefaultSweepInterval,
		},
	}
}
