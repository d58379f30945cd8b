package db

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"spendguard/db/migrations"
)

var (
	ErrDirtyDatabase = errors.New("database is in dirty state")
	// ErrSchemaAhead means the database was migrated by a newer build.
	ErrSchemaAhead = errors.New("database schema is newer than this build")
)

// Migrate brings the schema at addr to migrations.Version and returns the
// version found before migrating (0 for an empty database). A dirty schema
// is reported instead of forced, and a schema ahead of this build is never
// rolled back.
func Migrate(addr string) (uint, error) {
	src, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return 0, fmt.Errorf("open migrations: %w", err)
	}
	defer src.Close()

	mg, err := migrate.NewWithSourceInstance("iofs", src, addr)
	if err != nil {
		return 0, fmt.Errorf("connect migrator: %w", err)
	}
	defer mg.Close()

	from, dirty, err := mg.Version()
	switch {
	case errors.Is(err, migrate.ErrNilVersion):
		from = 0
	case err != nil:
		return 0, fmt.Errorf("read schema version: %w", err)
	case dirty:
		return from, fmt.Errorf("%w at version %d", ErrDirtyDatabase, from)
	case from > migrations.Version:
		return from, fmt.Errorf("%w: have %d, want %d", ErrSchemaAhead, from, migrations.Version)
	}

	if err = mg.Migrate(migrations.Version); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return from, fmt.Errorf("migrate %d -> %d: %w", from, migrations.Version, err)
	}
	return from, nil
}
