// internal/resolver/resolver_test.go
package resolver

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mtm/internal/diag"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
}

func TestResolveExactPath(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "pages", "Button.tsx")
	writeFile(t, target)

	r := New(dir, nil)
	res, err := r.Resolve("./Button.tsx", filepath.Join(dir, "pages", "index.mtm"))
	require.NoError(t, err)
	assert.Equal(t, target, res.ResolvedPath)
}

func TestResolveByExtensionProbing(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "pages", "Card.vue"))

	r := New(dir, nil)
	res, err := r.Resolve("./Card", filepath.Join(dir, "pages", "index.mtm"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "pages", "Card.vue"), res.ResolvedPath)
}

func TestSolidExtensionWinsOverTsx(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "pages", "Chart.solid.tsx"))
	writeFile(t, filepath.Join(dir, "pages", "Chart.tsx"))

	r := New(dir, nil)
	res, err := r.Resolve("./Chart", filepath.Join(dir, "pages", "index.mtm"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "pages", "Chart.solid.tsx"), res.ResolvedPath)
}

func TestResolveDirectoryIndex(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "pages", "widgets", "index.mtm"))

	r := New(dir, nil)
	res, err := r.Resolve("./widgets", filepath.Join(dir, "pages", "home.mtm"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "pages", "widgets", "index.mtm"), res.ResolvedPath)
}

func TestAliasExpansion(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "src", "components", "Nav.mtm"))

	r := New(dir, map[string]string{"@/": "src"})
	res, err := r.Resolve("@/components/Nav", filepath.Join(dir, "pages", "home.mtm"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "src", "components", "Nav.mtm"), res.ResolvedPath)
}

func TestLongestAliasWins(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "src", "ui", "Nav.mtm"))

	r := New(dir, map[string]string{"@/": "src", "@/ui/": "src/ui"})
	res, err := r.Resolve("@/ui/Nav", filepath.Join(dir, "pages", "home.mtm"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "src", "ui", "Nav.mtm"), res.ResolvedPath)
}

func TestFailureListsSearchedPaths(t *testing.T) {
	dir := t.TempDir()
	r := New(dir, nil)

	from := filepath.Join(dir, "pages", "home.mtm")
	_, err := r.Resolve("./Nope", from)
	require.Error(t, err)

	d, ok := err.(*diag.Diagnostic)
	require.True(t, ok)
	assert.Equal(t, diag.ImportResolution, d.Kind)
	assert.Equal(t, from, d.File)
	assert.Contains(t, d.Message, filepath.Join(dir, "pages", "Nope.mtm"))
	assert.Contains(t, d.Message, filepath.Join(dir, "pages", "Nope.vue"))
	assert.NotEmpty(t, d.Suggestions)
}
