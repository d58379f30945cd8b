package configs

// Metrics configures the Prometheus collectors and the /metrics route.
type Metrics struct {
	Enabled   bool   `env:"ENABLED" envDefault:"true"`
	Namespace string `env:"NAMESPACE" envDefault:"spendguard"`
}
