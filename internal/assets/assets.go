// Package assets embeds the static files served under /static/.
package assets

import "embed"

// Dir is the directory inside FS holding the public files.
const Dir = "public"

// FS holds the stylesheet.
//
//go:embed public
var FS embed.FS
