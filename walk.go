package canopy

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	gitignore "github.com/monochromegane/go-gitignore"
)

// walker carries the state of one traversal: the configuration, the output
// sink, and the set of canonical directory paths already entered. A walker
// belongs to a single top-level call and is never shared.
type walker struct {
	cfg     Config
	out     io.Writer
	glyphs  glyphSet
	visited map[string]struct{}
	ignore  gitignore.IgnoreMatcher
}

// child is one surviving directory entry, held only while its sibling group
// is being rendered.
type child struct {
	name  string
	path  string
	isDir bool
}

// canonical resolves path to its absolute, symlink-free form. Canonical
// paths are the identity keys for cycle detection, so two lexical routes to
// the same real directory collapse to one visit.
func canonical(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}

// run validates the root, emits its name, and walks its children. Only
// root-level problems are surfaced; everything below is rendered best-effort.
func run(out io.Writer, path string, cfg Config) error {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrRootNotFound, path)
		}
		return fmt.Errorf("%w: %s: %v", ErrResolvePath, path, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrNotDirectory, path)
	}

	root, err := canonical(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrResolvePath, path, err)
	}

	wk := &walker{
		cfg:     cfg,
		out:     out,
		glyphs:  glyphsFor(cfg.Format),
		visited: make(map[string]struct{}),
	}

	if cfg.UseGitignore {
		// A missing or unreadable .gitignore just means no matcher; the walk
		// proceeds with name filtering alone.
		if matcher, err := gitignore.NewGitIgnore(filepath.Join(root, ".gitignore")); err == nil {
			wk.ignore = matcher
		}
	}

	// The root's own name is the first line, unprefixed.
	if _, err := fmt.Fprintln(out, filepath.Base(root)); err != nil {
		return err
	}
	return wk.walk(root, "", 1)
}

// walk lists dir's children at the given depth, renders the survivors in
// ordinal order, and recurses into subdirectories. The prefix is purely a
// function of the chain of last-sibling flags above this point.
func (wk *walker) walk(dir, prefix string, depth int) error {
	if wk.cfg.MaxDepth > 0 && depth > wk.cfg.MaxDepth {
		return nil
	}

	canon, err := canonical(dir)
	if err != nil {
		return nil
	}
	// Cycle guard: a canonical path is entered at most once per traversal.
	// Inserted before listing, so a symlink looping back to an ancestor
	// terminates here instead of re-listing it.
	if _, seen := wk.visited[canon]; seen {
		return nil
	}
	wk.visited[canon] = struct{}{}

	entries, err := os.ReadDir(dir)
	if err != nil {
		// Permission denied, vanished path: the directory renders with no
		// children rather than aborting the whole tree.
		return nil
	}

	// Filter before sorting and before counting, so last-sibling detection
	// sees only survivors.
	kept := make([]child, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		isDir := entry.IsDir()
		full := filepath.Join(dir, name)

		// ReadDir classifies a symlink as a non-directory, which keeps
		// recursion off symlinks by default. Only the opt-in mode resolves
		// the target to decide.
		if wk.cfg.FollowSymlinks && entry.Type()&fs.ModeSymlink != 0 {
			if target, err := os.Stat(full); err == nil && target.IsDir() {
				isDir = true
			}
		}

		if !included(name, isDir, &wk.cfg) {
			continue
		}
		// The matcher relativizes against the canonical root itself, so it
		// gets the full lexical path.
		if wk.ignore != nil && wk.ignore.Match(full, isDir) {
			continue
		}
		kept = append(kept, child{name: name, path: full, isDir: isDir})
	}

	// Ordinal byte-wise sort, not locale-aware. Sibling order is part of the
	// output contract.
	sort.Slice(kept, func(i, j int) bool { return kept[i].name < kept[j].name })

	for i, c := range kept {
		line, next := wk.glyphs.branch, wk.glyphs.vertical
		if i == len(kept)-1 {
			line, next = wk.glyphs.corner, wk.glyphs.space
		}
		if _, err := fmt.Fprintf(wk.out, "%s%s%s\n", prefix, line, c.name); err != nil {
			return err
		}
		if c.isDir {
			if err := wk.walk(c.path, prefix+next, depth+1); err != nil {
				return err
			}
		}
	}
	return nil
}
