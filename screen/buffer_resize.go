// Copyright © 2026 vtscreen contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: screen/buffer_resize.go
// Summary: Grid resize: column padding/truncation, row exchange with
//          scrollback, margin and cursor normalization.

package screen

// resize adjusts the grid to newSize. Shrinking rows pushes the topmost
// lines into scrollback (main buffer only); growing rows pulls lines
// back out of scrollback before appending blanks at the bottom.
// Margins reset to the full screen and a pending wrap is cancelled.
func (b *ScreenBuffer) resize(newSize WindowSize) {
	if newSize.Rows < 1 {
		newSize.Rows = 1
	}
	if newSize.Columns < 1 {
		newSize.Columns = 1
	}

	for i := range b.lines {
		b.lines[i].resize(newSize.Columns, DefaultAttributes())
	}
	for i := range b.savedLines {
		b.savedLines[i].resize(newSize.Columns, DefaultAttributes())
	}

	switch {
	case newSize.Rows < b.size.Rows:
		drop := b.size.Rows - newSize.Rows
		if b.kind == MainBuffer {
			b.savedLines = append(b.savedLines, b.lines[:drop]...)
			b.clampSavedLines()
		}
		b.lines = append([]Line(nil), b.lines[drop:]...)
		b.cursor.Row -= drop
	case newSize.Rows > b.size.Rows:
		add := newSize.Rows - b.size.Rows
		for add > 0 && b.kind == MainBuffer && len(b.savedLines) > 0 {
			last := b.savedLines[len(b.savedLines)-1]
			b.savedLines = b.savedLines[:len(b.savedLines)-1]
			b.lines = append([]Line{last}, b.lines...)
			b.cursor.Row++
			add--
		}
		for ; add > 0; add-- {
			b.lines = append(b.lines, newLine(newSize.Columns, DefaultAttributes()))
		}
	}

	b.size = newSize
	b.margin = fullMargin(newSize)
	b.resizeTabs()
	b.cursor.Row = clamp(b.cursor.Row, 1, newSize.Rows)
	b.cursor.Column = clamp(b.cursor.Column, 1, newSize.Columns)
	b.lastCursor.Row = clamp(b.lastCursor.Row, 1, newSize.Rows)
	b.lastCursor.Column = clamp(b.lastCursor.Column, 1, newSize.Columns)
	b.wrapPending = false
}

// resizeTabs drops stops beyond the new width and continues the default
// cadence into newly gained columns.
func (b *ScreenBuffer) resizeTabs() {
	tabs := b.tabs[:0]
	for _, col := range b.tabs {
		if col <= b.size.Columns {
			tabs = append(tabs, col)
		}
	}
	last := 1
	if len(tabs) > 0 {
		last = tabs[len(tabs)-1]
	}
	for col := last + b.tabWidth; col <= b.size.Columns; col += b.tabWidth {
		tabs = append(tabs, col)
	}
	b.tabs = tabs
}
