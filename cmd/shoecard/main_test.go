package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const feed = `[
  {"slug": "tech-challenge-20", "name": "Tech Challenge", "price": 150, "salePrice": 110, "releaseDate": 1716336000000, "numOfColors": 3},
  {"slug": "pegasus", "name": "Pegasus", "price": 80, "salePrice": null, "releaseDate": 1716768000000, "numOfColors": 1},
  {"slug": "classic", "name": "Classic", "price": 80, "salePrice": null, "releaseDate": 1682640000000, "numOfColors": 2},
  {"slug": "inverted", "name": "Inverted", "price": 50, "salePrice": 70, "releaseDate": 0, "numOfColors": 1}
]`

func run(t *testing.T, args ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "shoes.json")
	require.NoError(t, os.WriteFile(path, []byte(feed), 0o644))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append(args, "--catalog", path, "--now", "2024-06-01T09:00:00Z"))
	t.Cleanup(func() {
		onlySlug = ""
		perRow = 3
		themeFile = ""
	})

	require.NoError(t, rootCmd.Execute())
	return out.String()
}

// lineWith returns the index of the first line containing want, or -1
func lineWith(lines []string, want string) int {
	for i, line := range lines {
		if strings.Contains(line, want) {
			return i
		}
	}
	return -1
}

func TestClassify(t *testing.T) {
	out := run(t, "classify")
	lines := strings.Split(out, "\n")

	header := lineWith(lines, "VARIANT")
	pegasus := lineWith(lines, "pegasus")
	tech := lineWith(lines, "tech-challenge-20")
	classic := lineWith(lines, "classic")
	require.True(t, header >= 0 && pegasus > header && tech > pegasus && classic > tech, out)

	for _, want := range []string{"new-release", "Just Released!", "$80"} {
		assert.Contains(t, lines[pegasus], want)
	}
	for _, want := range []string{"on-sale", "Sale", "$150", "$110"} {
		assert.Contains(t, lines[tech], want)
	}
	assert.Contains(t, lines[classic], "default")
	assert.NotContains(t, lines[classic], "Sale")
	assert.NotContains(t, lines[classic], "Released")
	assert.NotContains(t, out, "inverted")
}

func TestClassifyRejectsBadTheme(t *testing.T) {
	themePath := filepath.Join(t.TempDir(), "theme.yaml")
	require.NoError(t, os.WriteFile(themePath, []byte("colors:\n  primary: pink\n"), 0o644))

	path := filepath.Join(t.TempDir(), "shoes.json")
	require.NoError(t, os.WriteFile(path, []byte(feed), 0o644))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"classify", "--catalog", path, "--theme", themePath})
	t.Cleanup(func() { themeFile = "" })

	assert.Error(t, rootCmd.Execute())
}

func TestRenderSingleSlug(t *testing.T) {
	out := run(t, "render", "--slug", "tech-challenge-20")
	assert.Contains(t, out, "Tech Challenge")
	assert.Contains(t, out, "Sale")
	assert.Contains(t, out, "$110")
	assert.NotContains(t, out, "Pegasus")
}

func TestRenderGrid(t *testing.T) {
	out := run(t, "render", "--per-row", "2")
	for _, name := range []string{"Tech Challenge", "Pegasus", "Classic"} {
		assert.Contains(t, out, name)
	}
}

func TestSampleCatalogShowsEveryVariant(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"classify", "--catalog", filepath.Join("..", "..", "data", "shoes.json"), "--now", "2026-10-15T00:00:00Z"})

	require.NoError(t, rootCmd.Execute())
	for _, want := range []string{"Just Released!", "Sale", "default"} {
		assert.Contains(t, out.String(), want)
	}
}
