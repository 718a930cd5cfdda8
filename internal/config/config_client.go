package config

import (
	"time"

	"dario.cat/mergo"
)

// ClientConfig holds the settings of the cipher-chat CLI. Environment
// values are loaded here; the CLI overrides them with its own flags.
type ClientConfig struct {
	// Server is the base URL of the cipher-chat server.
	// Env: CIPHER_CHAT_SERVER
	Server string `env:"SERVER"`

	// Timeout bounds every request to the server.
	// Env: CIPHER_CHAT_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`

	// Token is the bearer token sent on authenticated requests.
	// Env: CIPHER_CHAT_TOKEN
	Token string `env:"TOKEN"`
}

// GetClientConfig loads the CLI configuration from CIPHER_CHAT_*
// environment variables, fills the gaps with defaults and validates it.
func GetClientConfig() (*ClientConfig, error) {
	cfg := &ClientConfig{}
	if err := parseEnv(cfg, "CIPHER_CHAT_"); err != nil {
		return nil, err
	}

	defaults := &ClientConfig{Server: DefaultClientServer, Timeout: DefaultClientTimeout}
	if err := mergo.Merge(cfg, defaults); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports whether cfg can be used to reach a server.
func (cfg *ClientConfig) Validate() error {
	return cfg.validate()
}
