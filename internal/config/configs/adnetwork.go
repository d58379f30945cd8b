package configs

import "time"

// AdNetwork configures the HTTP client of the remote ad network.
type AdNetwork struct {
	BaseURL string `env:"BASE_URL" envDefault:"http://localhost:9090"`
	// Token is sent as a bearer token on every request.
	Token       string        `env:"TOKEN"`
	Timeout     time.Duration `env:"TIMEOUT" envDefault:"10s"`
	MaxAttempts int           `env:"MAX_ATTEMPTS" envDefault:"3"`
	// Backoff is the delay before the second attempt; it doubles after that.
	Backoff time.Duration `env:"BACKOFF" envDefault:"200ms"`
}
