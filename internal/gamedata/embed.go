// Package gamedata provides the embedded reference data for a skirmish:
// gesture actions, teams and starting loadouts.
package gamedata

import "embed"

// dataFS embeds all JSON files from this directory at build time.
//
//go:embed *.json
var dataFS embed.FS
