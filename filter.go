package canopy

import (
	"slices"
	"strings"
)

// defaultSkipDirs lists directory names excluded by default: version-control
// metadata, dependency caches, editor state, and a few Windows system
// directories.
var defaultSkipDirs = []string{
	"node_modules",
	".git",
	".vscode",
	"__pycache__",
	"venv",
	".idea",
	"$RECYCLE.BIN",
	"System Volume Information",
	"Windows.old",
	"AppData",
	"Temp",
}

// defaultSkipFiles lists file names excluded by default: OS and editor
// artifacts.
var defaultSkipFiles = []string{
	".gitignore",
	".DS_Store",
	"Thumbs.db",
	".env",
	"desktop.ini",
	"ntuser.dat",
	"NTUSER.DAT",
	"ntuser.dat.LOG1",
	"ntuser.dat.LOG2",
	"ntuser.ini",
}

// included reports whether an entry survives name-based filtering. It is a
// pure function of the name, the entry's kind, and the configuration.
//
// SkipCommon=false is the "show all" escape hatch: nothing is filtered, not
// even hidden names.
func included(name string, isDir bool, cfg *Config) bool {
	if !cfg.SkipCommon {
		return true
	}
	if cfg.SkipHidden && strings.HasPrefix(name, ".") {
		return false
	}
	if isDir {
		return !slices.Contains(defaultSkipDirs, name) &&
			!slices.Contains(cfg.CustomSkipDirs, name)
	}
	return !slices.Contains(defaultSkipFiles, name) &&
		!slices.Contains(cfg.CustomSkipFiles, name)
}
