package main

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-reader/engine/reader"
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

var statusStyle = tcell.StyleDefault.Reverse(true)

// drawPage renders the visible rows shifted left by shift cells, and a status line on the last row.
func drawPage(s tcell.Screen, st reader.Status, lines []string, shift int) {
	s.Clear()
	w, h := s.Size()
	if h < 1 {
		return
	}

	for y, line := range lines {
		if y >= h-1 {
			break
		}
		drawText(s, -shift, y, w, line, tcell.StyleDefault)
	}

	state := "awake"
	if !st.Awake {
		state = "dormant"
	}
	status := fmt.Sprintf(" %s | row %d/%d | camera %d | visible %.1fx%.1f | col %d | zoom %.2f | pitch %.2f | residual %+.2f | %s",
		st.Mode, st.Offset, st.Rows, st.Reported, st.VisibleRows, st.VisibleColumns, st.Column, st.Zoom, st.Pitch, st.ScrollResidual, state)
	for x := 0; x < w; x++ {
		s.SetContent(x, h-1, ' ', nil, statusStyle)
	}
	drawText(s, 0, h-1, w, status, statusStyle)
	s.Show()
}

// drawText writes text starting at column x, clipping cells outside [0, width).
// Wide runes take two cells.
func drawText(s tcell.Screen, x, y, width int, text string, style tcell.Style) {
	for _, r := range text {
		cells := max(runewidth.RuneWidth(r), 1)
		if x >= width {
			return
		}
		if x >= 0 {
			s.SetContent(x, y, r, nil, style)
		}
		x += cells
	}
}
