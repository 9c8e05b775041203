package canopy

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_RootNotFound(t *testing.T) {
	out, err := Generate(filepath.Join(t.TempDir(), "nope"), DefaultConfig())
	require.ErrorIs(t, err, ErrRootNotFound)
	assert.Empty(t, out)
}

func TestGenerate_RootNotADirectory(t *testing.T) {
	file := filepath.Join(t.TempDir(), "plain.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	out, err := Generate(file, DefaultConfig())
	require.ErrorIs(t, err, ErrNotDirectory)
	assert.Empty(t, out)
}

func TestGenerate_OrdinalSiblingOrder(t *testing.T) {
	root := newRoot(t, "order")
	mkTree(t, root, "apple.txt", "Zebra.txt", "Box/", "box2/")

	out, err := Generate(root, DefaultConfig())
	require.NoError(t, err)

	// Byte-wise ordering puts uppercase names first.
	want := strings.Join([]string{
		"order",
		"├── Box",
		"├── Zebra.txt",
		"├── apple.txt",
		"└── box2",
	}, "\n") + "\n"
	assert.Equal(t, want, out)
}

func TestGenerate_MaxDepth(t *testing.T) {
	root := newRoot(t, "deep")
	mkTree(t, root, "l1/l2/l3/l4.txt")

	tests := []struct {
		name     string
		maxDepth int
		contains []string
		absent   []string
	}{
		{"unlimited when zero", 0, []string{"l1", "l2", "l3", "l4.txt"}, nil},
		{"unlimited when negative", -1, []string{"l1", "l2", "l3", "l4.txt"}, nil},
		{"depth one", 1, []string{"l1"}, []string{"l2", "l3", "l4.txt"}},
		{"depth two", 2, []string{"l1", "l2"}, []string{"l3", "l4.txt"}},
		{"depth three", 3, []string{"l1", "l2", "l3"}, []string{"l4.txt"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.MaxDepth = tt.maxDepth
			out, err := Generate(root, cfg)
			require.NoError(t, err)
			for _, s := range tt.contains {
				assert.Contains(t, out, s)
			}
			for _, s := range tt.absent {
				assert.NotContains(t, out, s)
			}
		})
	}
}

func TestGenerate_SymlinkCycleTerminates(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks require privileges on windows")
	}
	root := newRoot(t, "cyclic")
	mkTree(t, root, "sub/file.txt")
	require.NoError(t, os.Symlink(root, filepath.Join(root, "sub", "loop")))

	// Default mode: the symlink is a leaf, never recursed into.
	out, err := Generate(root, DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(out, "loop"))
	assert.Equal(t, 1, strings.Count(out, "file.txt"))

	// Opt-in mode: the resolved target is the already-visited root, so the
	// branch terminates without duplicating descendants.
	cfg := DefaultConfig()
	cfg.FollowSymlinks = true
	out, err = Generate(root, cfg)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(out, "loop"))
	assert.Equal(t, 1, strings.Count(out, "file.txt"))
}

func TestGenerate_FollowSymlinksRecursesIntoTargets(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks require privileges on windows")
	}
	base := t.TempDir()
	target := filepath.Join(base, "target")
	require.NoError(t, os.Mkdir(target, 0755))
	mkTree(t, target, "inner.txt")

	root := filepath.Join(base, "root")
	require.NoError(t, os.Mkdir(root, 0755))
	require.NoError(t, os.Symlink(target, filepath.Join(root, "link")))

	out, err := Generate(root, DefaultConfig())
	require.NoError(t, err)
	assert.Contains(t, out, "link")
	assert.NotContains(t, out, "inner.txt")

	cfg := DefaultConfig()
	cfg.FollowSymlinks = true
	out, err = Generate(root, cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "inner.txt")
}

func TestGenerate_DanglingSymlinkIsALeaf(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks require privileges on windows")
	}
	root := newRoot(t, "dangle")
	require.NoError(t, os.Symlink(filepath.Join(root, "gone"), filepath.Join(root, "broken")))

	cfg := DefaultConfig()
	cfg.FollowSymlinks = true
	out, err := Generate(root, cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "broken")
}

func TestGenerate_UnreadableDirectoryRendersEmpty(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits work differently on windows")
	}
	if os.Geteuid() == 0 {
		t.Skip("root ignores permission bits")
	}
	root := newRoot(t, "denied")
	mkTree(t, root, "locked/secret.txt", "open.txt")
	locked := filepath.Join(root, "locked")
	require.NoError(t, os.Chmod(locked, 0000))
	t.Cleanup(func() { _ = os.Chmod(locked, 0755) })

	out, err := Generate(root, DefaultConfig())
	require.NoError(t, err)
	assert.Contains(t, out, "locked")
	assert.NotContains(t, out, "secret.txt")
	assert.Contains(t, out, "open.txt")
}

func TestGenerate_TwoLexicalRoutesOneVisit(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks require privileges on windows")
	}
	root := newRoot(t, "routes")
	mkTree(t, root, "real/payload.txt")
	require.NoError(t, os.Symlink(filepath.Join(root, "real"), filepath.Join(root, "alias")))

	cfg := DefaultConfig()
	cfg.FollowSymlinks = true
	out, err := Generate(root, cfg)
	require.NoError(t, err)

	// "alias" sorts before "real" and claims the canonical path, so the
	// payload is listed exactly once.
	assert.Equal(t, 1, strings.Count(out, "payload.txt"))
}

func TestGenerate_GitignoreFiltering(t *testing.T) {
	root := newRoot(t, "ignored")
	mkTree(t, root, "kept.txt", "dropped.txt", "dist/bundle.js")
	require.NoError(t, os.WriteFile(
		filepath.Join(root, ".gitignore"),
		[]byte("dropped.txt\ndist/\n"), 0644))

	cfg := DefaultConfig()
	cfg.UseGitignore = true
	out, err := Generate(root, cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "kept.txt")
	assert.NotContains(t, out, "dropped.txt")
	assert.NotContains(t, out, "dist")

	// Without the flag the .gitignore has no effect.
	out, err = Generate(root, DefaultConfig())
	require.NoError(t, err)
	assert.Contains(t, out, "dropped.txt")
	assert.Contains(t, out, "dist")
}
