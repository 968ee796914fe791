package migrations

import "embed"

// Files holds the forward-only schema migrations compiled into the binary,
// applied in version order on startup.
//
//go:embed *.sql
var Files embed.FS
