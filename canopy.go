// Package canopy renders a directory hierarchy as an indented textual tree,
// in the manner of the Unix tree utility: depth-bounded, cycle-safe through
// symlinks, deterministically ordered, and with common noise directories
// (version-control metadata, dependency caches, OS artifacts) filtered out.
//
// The output is meant for humans and for text pipelines, most often pasting
// a project's structure into an LLM prompt.
package canopy

import (
	"io"
	"os"
	"strings"
)

const version = "1.0.0"

// Version returns the library version.
func Version() string {
	return version
}

// Generate renders the tree rooted at path and returns it as one string.
// It fails only for root-level problems: ErrRootNotFound, ErrNotDirectory,
// or ErrResolvePath.
func Generate(path string, cfg Config) (string, error) {
	var b strings.Builder
	if err := run(&b, path, cfg); err != nil {
		return "", err
	}
	return b.String(), nil
}

// Fprint renders the tree rooted at path, streaming lines to w. For the same
// inputs it produces byte-identical output to Generate.
func Fprint(w io.Writer, path string, cfg Config) error {
	return run(w, path, cfg)
}

// Print renders the tree rooted at path to stdout.
func Print(path string, cfg Config) error {
	return run(os.Stdout, path, cfg)
}
