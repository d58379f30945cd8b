package configs

import "strings"

// Store drivers.
const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

// Store selects where campaigns, URLs and the budget ledger live. The memory
// driver keeps everything in process and loses the ledger on restart, so it
// is meant for local runs only.
type Store struct {
	Driver string `env:"DRIVER" envDefault:"postgres"`
}

// Memory reports whether the in-process store was requested. Anything other
// than "memory" selects postgres.
func (s Store) Memory() bool {
	return strings.EqualFold(strings.TrimSpace(s.Driver), StoreDriverMemory)
}
