package pagination

const (
	// DefaultColumns is the wrap width in cells.
	DefaultColumns = 80
	// DefaultTabWidth is the tab stop interval in cells.
	DefaultTabWidth = 4
	// DefaultGlyphWidth and DefaultGlyphHeight are the world-space glyph cell size.
	DefaultGlyphWidth  float32 = 0.5
	DefaultGlyphHeight float32 = 1.0
	// DefaultVisibleLines is the page size before the caller sets one.
	DefaultVisibleLines = 40
	// DefaultKeyRepeatSeconds is the row step interval while an arrow key is held.
	DefaultKeyRepeatSeconds float32 = 0.05
)

// DocumentOption is a functional option for configuring a Document.
type DocumentOption func(d *Document)

// WithColumns sets the wrap width.
//
// Parameters:
//   - columns: the number of cells per row (minimum 1)
//
// Returns:
//   - DocumentOption: option function to apply
func WithColumns(columns int) DocumentOption {
	return func(d *Document) {
		d.columns = max(columns, 1)
	}
}

// WithTabWidth sets the tab stop interval.
//
// Parameters:
//   - width: cells per tab stop (minimum 1)
//
// Returns:
//   - DocumentOption: option function to apply
func WithTabWidth(width int) DocumentOption {
	return func(d *Document) {
		d.tabWidth = max(width, 1)
	}
}

// WithGlyphSize sets the world-space size of one glyph cell.
//
// Parameters:
//   - width: glyph width, must be positive
//   - height: glyph height, must be positive
//
// Returns:
//   - DocumentOption: option function to apply
func WithGlyphSize(width, height float32) DocumentOption {
	return func(d *Document) {
		d.glyphWidth = width
		d.glyphHeight = height
	}
}

// WithVisibleLines sets the initial page size.
//
// Parameters:
//   - n: rows on screen (minimum 1)
//
// Returns:
//   - DocumentOption: option function to apply
func WithVisibleLines(n int) DocumentOption {
	return func(d *Document) {
		d.visible = max(n, 1)
	}
}

// WithKeyRepeat sets the row step interval while an arrow key is held.
//
// Parameters:
//   - seconds: the repeat interval
//
// Returns:
//   - DocumentOption: option function to apply
func WithKeyRepeat(seconds float32) DocumentOption {
	return func(d *Document) {
		d.keyRepeatSeconds = seconds
	}
}
