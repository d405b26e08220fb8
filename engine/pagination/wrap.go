package pagination

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
)

// wrapText splits text into display rows no wider than columns cells.
// Lines break at the last space that fits; words wider than a row are broken mid-word.
// Tabs expand to the next multiple of tabWidth.
func wrapText(text string, columns, tabWidth int) []string {
	if columns < 1 {
		columns = 1
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")

	var rows []string
	for _, line := range strings.Split(text, "\n") {
		rows = append(rows, wrapLine(expandTabs(line, tabWidth), columns)...)
	}
	return rows
}

// wrapLine wraps a single tab-free line. An empty line yields one empty row.
func wrapLine(line string, columns int) []string {
	runes := []rune(line)
	if len(runes) == 0 {
		return []string{""}
	}

	var rows []string
	start, width := 0, 0
	lastSpace := -1
	for i := 0; i < len(runes); i++ {
		w := runeCells(runes[i])
		if width+w > columns && i > start {
			end := i
			if runes[i] != ' ' && lastSpace > start {
				end = lastSpace + 1
			}
			rows = append(rows, strings.TrimRightFunc(string(runes[start:end]), unicode.IsSpace))
			start = end
			for start < len(runes) && runes[start] == ' ' {
				start++
			}
			lastSpace = -1
			width = 0
			i = start - 1
			continue
		}
		if runes[i] == ' ' {
			lastSpace = i
		}
		width += w
	}
	if start < len(runes) {
		rows = append(rows, string(runes[start:]))
	}
	return rows
}

// expandTabs replaces tabs with spaces up to the next tab stop.
func expandTabs(line string, tabWidth int) string {
	if !strings.ContainsRune(line, '\t') {
		return line
	}
	if tabWidth < 1 {
		tabWidth = 1
	}
	var b strings.Builder
	col := 0
	for _, r := range line {
		if r == '\t' {
			n := tabWidth - col%tabWidth
			b.WriteString(strings.Repeat(" ", n))
			col += n
			continue
		}
		b.WriteRune(r)
		col += runeCells(r)
	}
	return b.String()
}

// runeCells returns the display width of r, treating zero-width runes as one cell.
func runeCells(r rune) int {
	return max(runewidth.RuneWidth(r), 1)
}
