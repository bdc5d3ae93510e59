// Package migrations holds the versioned SQL schema files applied at startup.
package migrations

import "embed"

// Files is the ordered, forward-only migration set compiled into the server
// binary, so a deployment needs no separate schema step.
//
//go:embed *.sql
var Files embed.FS
