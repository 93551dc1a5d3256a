// Copyright © 2026 vtscreen contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: screen/buffer_cursor.go
// Summary: Relative cursor motion, bounded by margins when inside them.

package screen

// moveCursorUp moves n rows up, stopping at the top margin when the
// cursor starts at or below it (CUU).
func (b *ScreenBuffer) moveCursorUp(n int) {
	b.wrapPending = false
	lower := 1
	if b.cursor.Row >= b.margin.Vertical.From {
		lower = b.margin.Vertical.From
	}
	b.cursor.Row = clamp(b.cursor.Row-n, lower, b.size.Rows)
}

// moveCursorDown moves n rows down, stopping at the bottom margin when
// the cursor starts at or above it (CUD).
func (b *ScreenBuffer) moveCursorDown(n int) {
	b.wrapPending = false
	upper := b.size.Rows
	if b.cursor.Row <= b.margin.Vertical.To {
		upper = b.margin.Vertical.To
	}
	b.cursor.Row = clamp(b.cursor.Row+n, 1, upper)
}

// moveCursorForward moves n columns right, bounded by the right margin
// when the cursor is inside it (CUF).
func (b *ScreenBuffer) moveCursorForward(n int) {
	b.wrapPending = false
	upper := b.size.Columns
	if b.modes.enabled(ModeLeftRightMargin) && b.cursor.Column <= b.margin.Horizontal.To {
		upper = b.margin.Horizontal.To
	}
	b.cursor.Column = clamp(b.cursor.Column+n, 1, upper)
	b.lastColumn = b.cursor.Column
}

// moveCursorBackward moves n columns left, bounded by the left margin
// when the cursor is inside it (CUB).
func (b *ScreenBuffer) moveCursorBackward(n int) {
	b.wrapPending = false
	lower := 1
	if b.modes.enabled(ModeLeftRightMargin) && b.cursor.Column >= b.margin.Horizontal.From {
		lower = b.margin.Horizontal.From
	}
	b.cursor.Column = clamp(b.cursor.Column-n, lower, b.size.Columns)
	b.lastColumn = b.cursor.Column
}

// setCurrentColumn places the cursor at a logical column (CHA/HPA).
func (b *ScreenBuffer) setCurrentColumn(col int) {
	b.wrapPending = false
	_, h := b.originRange()
	b.cursor.Column = clamp(col+h.From-1, h.From, h.To)
	b.lastColumn = b.cursor.Column
}

// setCurrentRow places the cursor at a logical row (VPA).
func (b *ScreenBuffer) setCurrentRow(row int) {
	b.wrapPending = false
	v, _ := b.originRange()
	b.cursor.Row = clamp(row+v.From-1, v.From, v.To)
}

// backIndex moves one column left, scrolling the margin region right
// when the cursor sits at the left margin (DECBI).
func (b *ScreenBuffer) backIndex() {
	b.wrapPending = false
	h := b.horizontalExtent()
	insideVertical := b.margin.Vertical.Contains(b.cursor.Row)
	if b.cursor.Column == h.From && insideVertical {
		b.scrollHorizontal(1)
		return
	}
	if b.cursor.Column > 1 {
		b.cursor.Column--
	}
}

// forwardIndex moves one column right, scrolling the margin region left
// when the cursor sits at the right margin (DECFI).
func (b *ScreenBuffer) forwardIndex() {
	b.wrapPending = false
	h := b.horizontalExtent()
	insideVertical := b.margin.Vertical.Contains(b.cursor.Row)
	if b.cursor.Column == h.To && insideVertical {
		b.scrollHorizontal(-1)
		return
	}
	if b.cursor.Column < b.size.Columns {
		b.cursor.Column++
	}
}
