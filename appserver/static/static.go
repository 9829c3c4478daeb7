// Package static embeds the bundled bakery application.
package static

import "embed"

// Assets holds the application pages, script and stylesheet.
//
//go:embed *.html *.js *.css
var Assets embed.FS
