package main

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	fuzzyfinder "github.com/ktr0731/go-fuzzyfinder"
)

// pickDirectory lets the user choose a root directory with a fuzzy finder.
// Candidates are directories under the current directory, excluding hidden
// ones unless --hidden is set. Returns "" if the user aborts.
func pickDirectory() (string, error) {
	candidates := []string{"."}

	err := filepath.WalkDir(".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // unreadable subtrees just don't show up
		}
		if path == "." || !d.IsDir() {
			return nil
		}
		if !showHidden && strings.HasPrefix(d.Name(), ".") {
			return fs.SkipDir
		}
		candidates = append(candidates, path)
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("scanning for directories: %w", err)
	}

	idx, err := fuzzyfinder.Find(
		candidates,
		func(i int) string { return candidates[i] },
		fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
			if i == -1 {
				return "Select the directory to render."
			}
			return candidates[i]
		}),
	)
	if err != nil {
		if err == fuzzyfinder.ErrAbort {
			return "", nil
		}
		return "", err
	}
	return candidates[idx], nil
}
