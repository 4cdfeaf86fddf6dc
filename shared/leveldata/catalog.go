package leveldata

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/automoto/platformer/level"
)

// Catalog resolves level names, as used by end triggers, to TMX files in one
// directory of a file system.
type Catalog struct {
	fsys  fs.FS
	dir   string
	names []string
}

// NewCatalog discovers all .tmx files in dir within fsys.
func NewCatalog(fsys fs.FS, dir string) (*Catalog, error) {
	pattern := path.Join(dir, "*.tmx")
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no .tmx files found in %s", dir)
	}

	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, strings.TrimSuffix(path.Base(m), ".tmx"))
	}
	sort.Strings(names)
	return &Catalog{fsys: fsys, dir: dir, names: names}, nil
}

// Names lists the level stems in sorted order.
func (c *Catalog) Names() []string {
	return c.names
}

func (c *Catalog) First() string {
	return c.names[0]
}

func (c *Catalog) Has(name string) bool {
	name = strings.TrimSuffix(name, ".tmx")
	for _, n := range c.names {
		if n == name {
			return true
		}
	}
	return false
}

// Next returns the level after name in sorted order, or "" for the last one.
func (c *Catalog) Next(name string) string {
	name = strings.TrimSuffix(name, ".tmx")
	for i, n := range c.names {
		if n == name && i+1 < len(c.names) {
			return c.names[i+1]
		}
	}
	return ""
}

func (c *Catalog) Path(name string) string {
	return path.Join(c.dir, strings.TrimSuffix(name, ".tmx")+".tmx")
}

func (c *Catalog) Load(name string) (*level.Level, error) {
	if !c.Has(name) {
		return nil, fmt.Errorf("unknown level %q", name)
	}
	return LoadLevel(c.fsys, c.Path(name))
}

// CatalogFor opens a catalog over the directory holding the TMX file at
// tmxPath on disk and returns the stem of that file as the starting level.
func CatalogFor(tmxPath string) (*Catalog, string, error) {
	dir, file := filepath.Split(tmxPath)
	if dir == "" {
		dir = "."
	}
	c, err := NewCatalog(os.DirFS(dir), ".")
	if err != nil {
		return nil, "", err
	}
	start := strings.TrimSuffix(file, ".tmx")
	if !c.Has(start) {
		return nil, "", fmt.Errorf("level file %s not found", tmxPath)
	}
	return c, start, nil
}
