// Package templates embeds the page templates so the router works the
// same from any working directory, tests included.
package templates

import "embed"

//go:embed *.html
var FS embed.FS
