package migrations

import "embed"

// FS holds the schema migrations applied at startup through the iofs source
// driver.
//
//go:embed *.sql
var FS embed.FS

// Version is the schema version this build expects.
const Version = 1
