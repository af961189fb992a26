// Package views holds the HTML templates and static assets compiled into the binary.
package views

import "embed"

//go:embed layouts components pages assets
var FS embed.FS
