package pagination

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-reader/common"
	"github.com/Carmen-Shannon/oxy-reader/engine/input"
)

// RowOffsetHandshake is the camera side of the row-offset exchange.
// camera.CameraController satisfies it.
type RowOffsetHandshake interface {
	// TakeRowOffsetDelta returns the pending row delta and clears it.
	TakeRowOffsetDelta() int32

	// SetRowOffsetRequested tells the camera which row is currently displayed.
	SetRowOffsetRequested(row uint32)
}

// Document is an in-memory paginated text that owns the authoritative row offset.
// The text is wrapped to a fixed column count once; the offset moves by camera deltas and by the
// navigation keys, and is always within [0, rows-1].
// Thread-safe for concurrent access.
type Document struct {
	mu *sync.Mutex

	rows     []string
	columns  int
	tabWidth int

	glyphWidth  float32
	glyphHeight float32

	offset  uint32
	visible int

	keyRepeatSeconds float32
	keyHeld          float32
}

// NewDocument wraps text into rows and creates a Document positioned at the first row.
// Panics if the configured glyph size is not positive.
//
// Parameters:
//   - text: the document text; newlines start new rows
//   - options: functional options to configure the document
//
// Returns:
//   - *Document: the new document
func NewDocument(text string, options ...DocumentOption) *Document {
	d := &Document{
		mu:               &sync.Mutex{},
		columns:          DefaultColumns,
		tabWidth:         DefaultTabWidth,
		glyphWidth:       DefaultGlyphWidth,
		glyphHeight:      DefaultGlyphHeight,
		visible:          DefaultVisibleLines,
		keyRepeatSeconds: DefaultKeyRepeatSeconds,
	}
	for _, opt := range options {
		opt(d)
	}
	common.Assert(d.glyphWidth > 0 && d.glyphHeight > 0, "document glyph size must be positive, got %vx%v", d.glyphWidth, d.glyphHeight)

	d.rows = wrapText(text, d.columns, d.tabWidth)
	return d
}

// Rows returns the number of wrapped rows.
func (d *Document) Rows() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.rows)
}

// Columns returns the wrap width in cells.
func (d *Document) Columns() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.columns
}

// TextDescriptor describes the document's glyph grid for a camera target.
//
// Returns:
//   - common.TextDescriptor: glyph size and row/column counts
func (d *Document) TextDescriptor() common.TextDescriptor {
	d.mu.Lock()
	defer d.mu.Unlock()
	return common.TextDescriptor{
		GlyphWidth:  d.glyphWidth,
		GlyphHeight: d.glyphHeight,
		Rows:        uint32(len(d.rows)),
		Columns:     uint32(d.columns),
	}
}

// Offset returns the first displayed row.
func (d *Document) Offset() uint32 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.offset
}

// SetOffset moves to the given row, clamped to the document.
//
// Parameters:
//   - row: the requested first row
func (d *Document) SetOffset(row uint32) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.offset = d.clamp(int64(row))
}

// SetVisibleLines sets how many rows VisibleLines returns and how far a page step moves.
//
// Parameters:
//   - n: the number of rows on screen (minimum 1)
func (d *Document) SetVisibleLines(n int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.visible = max(n, 1)
}

// Sync runs one round of the row-offset handshake: the camera's pending delta is taken exactly once
// and applied to the offset, then the resulting offset is reported back as the requested row.
// Call once per tick, after the cameras have moved.
//
// Parameters:
//   - h: the camera's handshake side
//
// Returns:
//   - bool: true if the offset changed
func (d *Document) Sync(h RowOffsetHandshake) bool {
	delta := h.TakeRowOffsetDelta()

	d.mu.Lock()
	prev := d.offset
	d.offset = d.clamp(int64(d.offset) + int64(delta))
	offset := d.offset
	d.mu.Unlock()

	h.SetRowOffsetRequested(offset)
	return offset != prev
}

// HandleKeys applies the navigation keys of one frame: Up/Down step one row when pressed and repeat
// every key-repeat interval while held, PageUp/PageDown move by the visible rows, Home/End jump to
// the first and last row.
//
// Parameters:
//   - dt: elapsed time since the last frame in seconds
//   - frame: the input frame
//
// Returns:
//   - bool: true if the offset changed
func (d *Document) HandleKeys(dt float32, frame input.Frame) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	prev := d.offset
	next := int64(d.offset)

	switch {
	case frame.JustPressed(common.KeyHome):
		next = 0
	case frame.JustPressed(common.KeyEnd):
		next = int64(len(d.rows))
	case frame.JustPressed(common.KeyPageUp):
		next -= int64(d.visible)
	case frame.JustPressed(common.KeyPageDown):
		next += int64(d.visible)
	case frame.JustPressed(common.KeyUp):
		next--
		d.keyHeld = 0
	case frame.JustPressed(common.KeyDown):
		next++
		d.keyHeld = 0
	default:
		switch frame.KeyScroll() {
		case input.KeyScrollUp:
			next -= d.repeat(dt)
		case input.KeyScrollDown:
			next += d.repeat(dt)
		default:
			d.keyHeld = 0
		}
	}

	d.offset = d.clamp(next)
	return d.offset != prev
}

// VisibleLines returns the rows on screen starting at the current offset.
//
// Returns:
//   - []string: up to the visible row count of wrapped rows
func (d *Document) VisibleLines() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	end := min(int(d.offset)+d.visible, len(d.rows))
	out := make([]string, end-int(d.offset))
	copy(out, d.rows[d.offset:end])
	return out
}

// Line returns a single wrapped row, or "" outside the document.
//
// Parameters:
//   - row: the row index
//
// Returns:
//   - string: the row text
func (d *Document) Line(row int) string {
	d.mu.Lock()
	defer d.mu.Unlock()
	if row < 0 || row >= len(d.rows) {
		return ""
	}
	return d.rows[row]
}

// repeat advances the held-key timer and returns how many repeat steps elapsed. Caller must hold the mutex.
func (d *Document) repeat(dt float32) int64 {
	d.keyHeld += dt
	if d.keyHeld < d.keyRepeatSeconds {
		return 0
	}
	d.keyHeld = 0
	return 1
}

// clamp bounds a row to [0, rows-1]. Caller must hold the mutex.
func (d *Document) clamp(row int64) uint32 {
	last := int64(len(d.rows)) - 1
	return uint32(common.Clamp(row, 0, max(last, 0)))
}
