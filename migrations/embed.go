// Package migrations embeds the versioned schema files so the server and
// matchctl can migrate without shipping the directory alongside them.
package migrations

import "embed"

//go:embed V*.sql
var Files embed.FS
