// Package templates holds the page shells compiled into the binary.
package templates

import "embed"

// FS contains the page shells (*.html), shared partials (_*.html) and
// static files (stylesheet, contact script) copied verbatim into the output.
//
//go:embed *.html *.css *.js
var FS embed.FS
