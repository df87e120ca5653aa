package auth

import "time"

// JWTConfig holds token signing settings
type JWTConfig struct {
	SecretKey      string
	AccessTokenTTL time.Duration
	Issuer         string
}

// Config holds all auth configuration
type Config struct {
	JWT JWTConfig
}

// DefaultConfig returns a config with sane defaults; the secret key must be
// overridden by the caller.
func DefaultConfig() Config {
	return Config{
		JWT: JWTConfig{
			AccessTokenTTL: time.Hour,
			Issuer:         "interviewmate",
		},
	}
}
