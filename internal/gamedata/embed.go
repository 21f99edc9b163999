// Package gamedata provides the embedded theme and screen art.
package gamedata

import "embed"

// dataFS embeds the theme and art files from this directory at build time.
//
//go:embed *.json *.txt
var dataFS embed.FS
