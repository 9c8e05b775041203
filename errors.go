package canopy

import "errors"

// Root-level failures are the only errors a traversal surfaces. Listing
// errors below the root are absorbed and the affected directory is rendered
// with no children.
var (
	// ErrRootNotFound means the root path does not exist.
	ErrRootNotFound = errors.New("root path does not exist")

	// ErrNotDirectory means the root path exists but is not a directory.
	ErrNotDirectory = errors.New("root path is not a directory")

	// ErrResolvePath means the root path could not be resolved to its
	// canonical (absolute, symlink-free) form.
	ErrResolvePath = errors.New("cannot resolve path")
)
