package canopy

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeProfile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "skip.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadSkipProfile(t *testing.T) {
	path := writeProfile(t, "dirs:\n  - build\n  - dist\nfiles:\n  - coverage.out\n")

	p, err := LoadSkipProfile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"build", "dist"}, p.Dirs)
	assert.Equal(t, []string{"coverage.out"}, p.Files)
}

func TestLoadSkipProfile_Missing(t *testing.T) {
	_, err := LoadSkipProfile(filepath.Join(t.TempDir(), "absent.yml"))
	require.Error(t, err)
}

func TestLoadSkipProfile_Malformed(t *testing.T) {
	path := writeProfile(t, "dirs: {not: [a, list\n")
	_, err := LoadSkipProfile(path)
	require.Error(t, err)
}

func TestApplyProfile(t *testing.T) {
	cfg := DefaultConfig()
	cfg.AddSkipDir("vendor")
	cfg.ApplyProfile(&SkipProfile{Dirs: []string{"build"}, Files: []string{"coverage.out"}})
	assert.Equal(t, []string{"vendor", "build"}, cfg.CustomSkipDirs)
	assert.Equal(t, []string{"coverage.out"}, cfg.CustomSkipFiles)

	// A nil profile is a no-op.
	cfg.ApplyProfile(nil)
	assert.Equal(t, []string{"vendor", "build"}, cfg.CustomSkipDirs)
}

func TestGenerate_WithProfile(t *testing.T) {
	root := newRoot(t, "proj")
	mkTree(t, root, "build/out.bin", "src/main.go", "coverage.out")

	p := &SkipProfile{Dirs: []string{"build"}, Files: []string{"coverage.out"}}
	cfg := DefaultConfig()
	cfg.ApplyProfile(p)

	out, err := Generate(root, cfg)
	require.NoError(t, err)
	assert.NotContains(t, out, "out.bin")
	assert.NotContains(t, out, "coverage.out")
	assert.Contains(t, out, "main.go")
}
