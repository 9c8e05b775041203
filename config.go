package canopy

// Format selects the glyph set used when drawing tree branches.
type Format int

const (
	// FormatASCII draws branches with plain ASCII characters (`|-- `, "`-- ").
	FormatASCII Format = iota
	// FormatUnicode draws branches with box-drawing characters (├──, └──).
	FormatUnicode
)

// Config controls a single traversal. It is read-only once a traversal
// begins; nothing in the walk mutates it.
type Config struct {
	// MaxDepth bounds recursion. The root's direct children are depth 1.
	// Zero or negative means unlimited.
	MaxDepth int

	// SkipHidden excludes entries whose name starts with a dot.
	SkipHidden bool

	// SkipCommon is the master switch for name-based filtering. When false,
	// every entry is included and SkipHidden is ignored.
	SkipCommon bool

	// CustomSkipDirs and CustomSkipFiles extend the built-in skip lists.
	// Matching is exact and case-sensitive, no globbing.
	CustomSkipDirs  []string
	CustomSkipFiles []string

	// Format selects ASCII or Unicode branch glyphs. Never autodetected, so
	// output stays deterministic.
	Format Format

	// FollowSymlinks recurses into symlinks that resolve to directories.
	// Off by default; the visited-set guard still terminates cycles when on.
	FollowSymlinks bool

	// UseGitignore additionally excludes entries matched by a .gitignore
	// file at the traversal root, if one exists.
	UseGitignore bool
}

// DefaultConfig returns the standard configuration: unlimited depth, hidden
// entries and common noise directories skipped, Unicode glyphs.
func DefaultConfig() Config {
	return Config{
		SkipHidden: true,
		SkipCommon: true,
		Format:     FormatUnicode,
	}
}

// AddSkipDir adds a directory name to the custom skip list.
func (c *Config) AddSkipDir(name string) {
	c.CustomSkipDirs = append(c.CustomSkipDirs, name)
}

// AddSkipFile adds a file name to the custom skip list.
func (c *Config) AddSkipFile(name string) {
	c.CustomSkipFiles = append(c.CustomSkipFiles, name)
}
