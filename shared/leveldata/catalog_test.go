package leveldata

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog(t *testing.T) {
	c, err := NewCatalog(os.DirFS("."), "testdata")
	require.NoError(t, err)

	assert.Equal(t, []string{"basic", "noplayer"}, c.Names())
	assert.Equal(t, "basic", c.First())
	assert.True(t, c.Has("basic.tmx"))
	assert.False(t, c.Has("level2"))
	assert.Equal(t, "noplayer", c.Next("basic"))
	assert.Equal(t, "", c.Next("noplayer"))
	assert.Equal(t, "testdata/basic.tmx", c.Path("basic"))

	lvl, err := c.Load("basic")
	require.NoError(t, err)
	assert.NotNil(t, lvl.Player())

	_, err = c.Load("level2")
	assert.Error(t, err)
}

func TestCatalogEmptyDir(t *testing.T) {
	_, err := NewCatalog(os.DirFS(t.TempDir()), ".")
	assert.Error(t, err)
}

func TestCatalogFor(t *testing.T) {
	c, start, err := CatalogFor("testdata/noplayer.tmx")
	require.NoError(t, err)
	assert.Equal(t, "noplayer", start)
	assert.Equal(t, []string{"basic", "noplayer"}, c.Names())
	assert.Equal(t, "basic.tmx", c.Path("basic"))

	_, _, err = CatalogFor("testdata/missing.tmx")
	assert.Error(t, err)
}
