package configs

import "time"

// Redis configures the lock that keeps two replicas from ticking the same
// campaign at once.
type Redis struct {
	// Address is host:port. Empty disables the lock.
	Address  string        `env:"ADDRESS"`
	Password string        `env:"PASSWORD"`
	DB       int           `env:"DB" envDefault:"0"`
	LockTTL  time.Duration `env:"LOCK_TTL" envDefault:"1m"`
}

// Enabled reports whether a Redis address was configured.
func (r Redis) Enabled() bool {
	return r.Address != ""
}
