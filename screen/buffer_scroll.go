// Copyright © 2026 vtscreen contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: screen/buffer_scroll.go
// Summary: Scroll, insert and delete primitives for rows, columns, cells.
// Usage: Shared by the command interpreter, linefeed and resize paths.

package screen

// scrollUp removes the top n lines of the region and appends n blank
// lines at its bottom. When the main buffer scrolls its full screen,
// the removed lines feed the scrollback in order.
func (b *ScreenBuffer) scrollUp(n int, m Margin) {
	if n <= 0 {
		return
	}
	v := m.Vertical
	if n > v.Length() {
		n = v.Length()
	}
	fullWidth := m.Horizontal.From == 1 && m.Horizontal.To == b.size.Columns

	if fullWidth {
		if b.kind == MainBuffer && v.From == 1 && v.To == b.size.Rows {
			for i := 0; i < n; i++ {
				b.savedLines = append(b.savedLines, b.lines[v.From-1+i].clone())
			}
			b.clampSavedLines()
		}
		copy(b.lines[v.From-1:v.To-n], b.lines[v.From-1+n:v.To])
		for row := v.To - n + 1; row <= v.To; row++ {
			b.lines[row-1] = b.blankLine()
		}
		return
	}

	// Restricted horizontal margins: shift cell ranges per line.
	left, right := m.Horizontal.From-1, m.Horizontal.To
	for row := v.From; row <= v.To-n; row++ {
		copy(b.lines[row-1].Cells[left:right], b.lines[row-1+n].Cells[left:right])
	}
	fill := b.blankCell()
	for row := v.To - n + 1; row <= v.To; row++ {
		cells := b.lines[row-1].Cells
		for c := left; c < right; c++ {
			cells[c] = fill
		}
	}
}

// scrollDown inserts n blank lines at the top of the region, pushing
// content toward the bottom. It never produces scrollback.
func (b *ScreenBuffer) scrollDown(n int, m Margin) {
	if n <= 0 {
		return
	}
	v := m.Vertical
	if n > v.Length() {
		n = v.Length()
	}
	fullWidth := m.Horizontal.From == 1 && m.Horizontal.To == b.size.Columns

	if fullWidth {
		copy(b.lines[v.From-1+n:v.To], b.lines[v.From-1:v.To-n])
		for row := v.From; row < v.From+n; row++ {
			b.lines[row-1] = b.blankLine()
		}
		return
	}

	left, right := m.Horizontal.From-1, m.Horizontal.To
	for row := v.To; row >= v.From+n; row-- {
		copy(b.lines[row-1].Cells[left:right], b.lines[row-1-n].Cells[left:right])
	}
	fill := b.blankCell()
	for row := v.From; row < v.From+n; row++ {
		cells := b.lines[row-1].Cells
		for c := left; c < right; c++ {
			cells[c] = fill
		}
	}
}

// clampSavedLines evicts the oldest scrollback lines beyond the limit.
func (b *ScreenBuffer) clampSavedLines() {
	if b.maxHistory > 0 && len(b.savedLines) > b.maxHistory {
		over := len(b.savedLines) - b.maxHistory
		b.savedLines = append(b.savedLines[:0:0], b.savedLines[over:]...)
	}
}

// insertLines opens n blank lines at the cursor row inside the vertical
// margin (IL). A no-op when the cursor is outside the scroll region.
func (b *ScreenBuffer) insertLines(n int) {
	if !b.isCursorInsideMargins() {
		return
	}
	m := b.margin
	m.Vertical.From = b.cursor.Row
	b.scrollDown(n, m)
	b.wrapPending = false
}

// deleteLines removes n lines at the cursor row inside the vertical
// margin (DL), pulling the rest of the region up.
func (b *ScreenBuffer) deleteLines(n int) {
	if !b.isCursorInsideMargins() {
		return
	}
	m := b.margin
	m.Vertical.From = b.cursor.Row
	b.scrollUp(n, m)
	b.wrapPending = false
}

// insertCellsInLine shifts the cells right of (row, col) toward the
// right margin by n, filling the vacated span with blanks (ICH, IRM).
func (b *ScreenBuffer) insertCellsInLine(row, col, n int) {
	h := b.horizontalExtent()
	if !h.Contains(col) {
		return
	}
	if n > h.To-col+1 {
		n = h.To - col + 1
	}
	cells := b.line(row).Cells
	copy(cells[col-1+n:h.To], cells[col-1:h.To-n])
	fill := b.blankCell()
	for c := col; c < col+n; c++ {
		cells[c-1] = fill
	}
}

// deleteCellsInLine shifts the cells right of (row, col) toward the
// cursor by n, filling the vacated right end with blanks (DCH).
func (b *ScreenBuffer) deleteCellsInLine(row, col, n int) {
	h := b.horizontalExtent()
	if !h.Contains(col) {
		return
	}
	if n > h.To-col+1 {
		n = h.To - col + 1
	}
	cells := b.line(row).Cells
	copy(cells[col-1:h.To-n], cells[col-1+n:h.To])
	fill := b.blankCell()
	for c := h.To - n + 1; c <= h.To; c++ {
		cells[c-1] = fill
	}
}

// insertChars inserts n blanks at the cursor, shifting the rest of the
// line right within the horizontal margin.
func (b *ScreenBuffer) insertChars(n int) {
	b.insertCellsInLine(b.cursor.Row, b.cursor.Column, n)
	b.wrapPending = false
}

// deleteChars deletes n cells at the cursor, shifting the rest of the
// line left within the horizontal margin.
func (b *ScreenBuffer) deleteChars(n int) {
	b.deleteCellsInLine(b.cursor.Row, b.cursor.Column, n)
	b.wrapPending = false
}

// insertColumns opens n blank columns at the cursor column across the
// vertical margin (DECIC).
func (b *ScreenBuffer) insertColumns(n int) {
	if !b.isCursorInsideMargins() {
		return
	}
	for row := b.margin.Vertical.From; row <= b.margin.Vertical.To; row++ {
		b.insertCellsInLine(row, b.cursor.Column, n)
	}
	b.wrapPending = false
}

// deleteColumns removes n columns at the cursor column across the
// vertical margin (DECDC).
func (b *ScreenBuffer) deleteColumns(n int) {
	if !b.isCursorInsideMargins() {
		return
	}
	for row := b.margin.Vertical.From; row <= b.margin.Vertical.To; row++ {
		b.deleteCellsInLine(row, b.cursor.Column, n)
	}
	b.wrapPending = false
}

// scrollHorizontal shifts the margin region n columns right (positive)
// or left (negative); used by DECBI/DECFI at the margin edge.
func (b *ScreenBuffer) scrollHorizontal(n int) {
	h := b.horizontalExtent()
	for row := b.margin.Vertical.From; row <= b.margin.Vertical.To; row++ {
		if n > 0 {
			b.insertCellsInLine(row, h.From, n)
		} else {
			b.deleteCellsInLine(row, h.From, -n)
		}
	}
}
