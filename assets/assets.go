// Package assets embeds the bundled level files.
package assets

import (
	"embed"
	"io/fs"
)

// LevelsDir is the directory of the TMX files inside FS.
const LevelsDir = "levels"

//go:embed levels/*.tmx
var levelFS embed.FS

// FS returns the embedded file system holding LevelsDir.
func FS() fs.FS {
	return levelFS
}
