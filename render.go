package canopy

// glyphSet holds the four segments a tree line is assembled from. branch and
// corner prefix the entry's own line; vertical and space are the continuation
// segments appended to the prefix inherited by that entry's children.
type glyphSet struct {
	branch   string // entry with siblings after it
	corner   string // last entry in its parent's listing
	vertical string // continuation under a non-last entry
	space    string // continuation under a last entry
}

var (
	asciiGlyphs = glyphSet{
		branch:   "|-- ",
		corner:   "`-- ",
		vertical: "|   ",
		space:    "    ",
	}
	unicodeGlyphs = glyphSet{
		branch:   "├── ",
		corner:   "└── ",
		vertical: "│   ",
		space:    "    ",
	}
)

func glyphsFor(f Format) glyphSet {
	if f == FormatUnicode {
		return unicodeGlyphs
	}
	return asciiGlyphs
}
