// Copyright © 2026 vtscreen contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: screen/buffer_write.go
// Summary: The grapheme write path: wrapping, clustering, wide cells.
// Usage: Screen feeds AppendChar commands through here.
// Notes: This is the hottest path in the core; everything else is rare
//        by comparison.

package screen

// appendChar places one codepoint at the cursor, honoring grapheme
// cluster extension, double width, auto-wrap, margins and wrap pending.
// consecutive marks codepoints the sequencer assigned to the previous
// cluster.
func (b *ScreenBuffer) appendChar(cp rune, consecutive bool) {
	w := runeDisplayWidth(cp)

	// Combining marks extend the previously written cell, even while a
	// wrap is pending: the cluster they modify sits before the margin.
	if consecutive || w == 0 {
		b.appendCharToPrevious(cp)
		return
	}

	if b.wrapPending && b.autoWrap {
		b.linefeedToLeftMargin()
	}

	rightEdge := b.writeRightEdge()

	// A wide character with only one column left before the margin
	// cannot straddle it. With autowrap the remainder of the line is
	// blanked and the character moves to the next line; without it the
	// character is dropped.
	if w == 2 && b.cursor.Column == rightEdge {
		if !b.autoWrap {
			b.wrapPending = false
			return
		}
		b.clearWideCellNeighbors(b.cursor.Row, b.cursor.Column)
		b.at(b.cursor.Row, b.cursor.Column).Reset(b.blankCell().Attributes)
		b.linefeedToLeftMargin()
		rightEdge = b.writeRightEdge()
	}

	if b.modes.enabled(ModeInsert) {
		b.insertCellsInLine(b.cursor.Row, b.cursor.Column, w)
	}

	b.clearWideCellNeighbors(b.cursor.Row, b.cursor.Column)
	cell := b.at(b.cursor.Row, b.cursor.Column)
	cell.SetCharacter(cp, w)
	cell.Attributes = b.graphicsRendition
	cell.Hyperlink = b.currentHyperlink

	b.lastCursor = b.cursor.Coordinate
	b.lastColumn = b.cursor.Column
	b.lastGraphicChar = cp

	if w == 2 && b.cursor.Column < b.size.Columns {
		b.markContinuation(b.cursor.Row, b.cursor.Column+1)
	}

	// Advance, or arm the wrap when the write ended at the margin.
	if b.cursor.Column+w > rightEdge {
		if b.autoWrap {
			b.cursor.Column = rightEdge
			b.wrapPending = true
		} else {
			b.cursor.Column = rightEdge
		}
	} else {
		b.cursor.Column += w
	}
}

// appendCharToPrevious extends the last written cluster by one
// codepoint, inflating it to double width when the mark demands it.
func (b *ScreenBuffer) appendCharToPrevious(cp rune) {
	cell := b.at(b.lastCursor.Row, b.lastCursor.Column)
	if cell.Empty() {
		// Nothing to extend; a stray mark lands as its own cluster.
		if cell.Width != 0 {
			cell.SetCharacter(cp, 1)
			cell.Attributes = b.graphicsRendition
			cell.Hyperlink = b.currentHyperlink
		}
		return
	}
	if !cell.AppendCharacter(cp) {
		return // cluster full, mark dropped
	}
	if runeDisplayWidth(cp) == 2 && cell.Width == 1 {
		// The selector widened the cluster: claim the column to the
		// right as its trailing half.
		if b.lastCursor.Column < b.size.Columns {
			cell.Width = 2
			b.markContinuation(b.lastCursor.Row, b.lastCursor.Column+1)
			if b.cursor.Row == b.lastCursor.Row && b.cursor.Column == b.lastCursor.Column+1 {
				rightEdge := b.writeRightEdge()
				if b.cursor.Column+1 > rightEdge {
					b.wrapPending = b.autoWrap
				} else {
					b.cursor.Column++
				}
			}
		}
	}
}

// writeRightEdge returns the column writes are bounded by: the right
// margin when DECLRMM is on and the cursor is inside it, else the
// screen edge.
func (b *ScreenBuffer) writeRightEdge() int {
	if b.modes.enabled(ModeLeftRightMargin) && b.margin.Horizontal.Contains(b.cursor.Column) {
		return b.margin.Horizontal.To
	}
	return b.size.Columns
}

// markContinuation turns the cell at (row, col) into the width-0
// trailing half of the wide cell to its left.
func (b *ScreenBuffer) markContinuation(row, col int) {
	b.clearWideCellNeighbors(row, col)
	cont := b.at(row, col)
	leader := b.at(row, col-1)
	*cont = Cell{Width: 0, Attributes: leader.Attributes, Hyperlink: leader.Hyperlink}
}

// clearWideCellNeighbors repairs wide-cell pairing before (row, col) is
// overwritten: a continuation loses its leader, a leader loses its
// continuation. Both halves always change together.
func (b *ScreenBuffer) clearWideCellNeighbors(row, col int) {
	target := b.at(row, col)
	if target.Width == 0 && col > 1 {
		leader := b.at(row, col-1)
		if leader.Width == 2 {
			leader.Reset(b.blankCell().Attributes)
		}
		target.Width = 1
	}
	if target.Width == 2 && col < b.size.Columns {
		cont := b.at(row, col+1)
		if cont.Width == 0 {
			cont.Reset(b.blankCell().Attributes)
		}
	}
}

// linefeedToLeftMargin wraps to the start of the next line.
func (b *ScreenBuffer) linefeedToLeftMargin() {
	b.cursor.Column = b.horizontalExtent().From
	b.linefeed()
}

// linefeed moves the cursor down one row, scrolling at the bottom
// margin. Below the margin the cursor stops at the screen edge.
func (b *ScreenBuffer) linefeed() {
	b.wrapPending = false
	outsideHorizontal := b.modes.enabled(ModeLeftRightMargin) &&
		!b.margin.Horizontal.Contains(b.cursor.Column)
	if b.cursor.Row == b.margin.Vertical.To {
		if !outsideHorizontal {
			b.scrollUp(1, b.margin)
		}
	} else if b.cursor.Row < b.size.Rows {
		b.cursor.Row++
	}
}

// reverseLinefeed moves the cursor up one row, scrolling at the top
// margin.
func (b *ScreenBuffer) reverseLinefeed() {
	b.wrapPending = false
	outsideHorizontal := b.modes.enabled(ModeLeftRightMargin) &&
		!b.margin.Horizontal.Contains(b.cursor.Column)
	if b.cursor.Row == b.margin.Vertical.From {
		if !outsideHorizontal {
			b.scrollDown(1, b.margin)
		}
	} else if b.cursor.Row > 1 {
		b.cursor.Row--
	}
}

// carriageReturn moves the cursor to the left margin (or column 1 when
// it sits left of the margin outside origin mode).
func (b *ScreenBuffer) carriageReturn() {
	b.wrapPending = false
	if b.modes.enabled(ModeLeftRightMargin) {
		if b.cursorRestrictedToMargin || b.cursor.Column >= b.margin.Horizontal.From {
			b.cursor.Column = b.margin.Horizontal.From
			return
		}
	}
	b.cursor.Column = 1
}

// backspace moves the cursor one column left, stopping at the left
// margin when inside it.
func (b *ScreenBuffer) backspace() {
	b.wrapPending = false
	minCol := 1
	if b.modes.enabled(ModeLeftRightMargin) && b.margin.Horizontal.Contains(b.cursor.Column) {
		minCol = b.margin.Horizontal.From
	}
	if b.cursor.Column > minCol {
		b.cursor.Column--
	}
}

// repeatLastCharacter re-emits the last graphic character n times (REP).
func (b *ScreenBuffer) repeatLastCharacter(n int) {
	if b.lastGraphicChar == 0 {
		return
	}
	for ; n > 0; n-- {
		b.appendChar(b.lastGraphicChar, false)
	}
}
