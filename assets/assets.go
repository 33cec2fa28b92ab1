// Package assets embeds static game data.
package assets

import "embed"

// Markets holds the market definition files.
//
//go:embed markets
var Markets embed.FS
