// Copyright © 2026 vtscreen contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: screen/buffer_erase.go
// Summary: Erase primitives: line spans, screen regions, scrollback.
// Usage: Erased cells inherit the current background and lose links.

package screen

// blankRangeInLine resets the closed column span [from, to] of a row.
// Wide cells straddling the span edges are cleared whole: a trailing
// half never survives its leader and vice versa.
func (b *ScreenBuffer) blankRangeInLine(row, from, to int) {
	from = clamp(from, 1, b.size.Columns)
	to = clamp(to, 1, b.size.Columns)
	if from > to {
		return
	}
	if b.at(row, from).Width == 0 && from > 1 {
		if leader := b.at(row, from-1); leader.Width == 2 {
			leader.Reset(b.blankCell().Attributes)
		}
	}
	if b.at(row, to).Width == 2 && to < b.size.Columns {
		if cont := b.at(row, to+1); cont.Width == 0 {
			cont.Reset(b.blankCell().Attributes)
		}
	}
	fill := b.blankCell()
	cells := b.line(row).Cells
	for c := from; c <= to; c++ {
		cells[c-1] = fill
	}
}

// clearToEndOfLine erases from the cursor to the end of the line (EL 0).
func (b *ScreenBuffer) clearToEndOfLine() {
	b.blankRangeInLine(b.cursor.Row, b.cursor.Column, b.size.Columns)
}

// clearToBeginOfLine erases from the line start through the cursor (EL 1).
func (b *ScreenBuffer) clearToBeginOfLine() {
	b.blankRangeInLine(b.cursor.Row, 1, b.cursor.Column)
}

// clearLine erases the whole cursor line (EL 2).
func (b *ScreenBuffer) clearLine() {
	b.blankRangeInLine(b.cursor.Row, 1, b.size.Columns)
}

// clearToEndOfScreen erases from the cursor to the screen end (ED 0).
func (b *ScreenBuffer) clearToEndOfScreen() {
	b.clearToEndOfLine()
	for row := b.cursor.Row + 1; row <= b.size.Rows; row++ {
		b.blankRangeInLine(row, 1, b.size.Columns)
		b.lines[row-1].Marked = false
	}
}

// clearToBeginOfScreen erases from the screen start through the cursor
// (ED 1).
func (b *ScreenBuffer) clearToBeginOfScreen() {
	b.clearToBeginOfLine()
	for row := 1; row < b.cursor.Row; row++ {
		b.blankRangeInLine(row, 1, b.size.Columns)
		b.lines[row-1].Marked = false
	}
}

// clearScreen erases the whole visible grid (ED 2). Cursor, margins and
// scrollback are untouched.
func (b *ScreenBuffer) clearScreen() {
	for row := 1; row <= b.size.Rows; row++ {
		b.blankRangeInLine(row, 1, b.size.Columns)
		b.lines[row-1].Marked = false
	}
}

// clearScrollback discards the scrollback history (ED 3), preserving
// the visible grid and cursor.
func (b *ScreenBuffer) clearScrollback() {
	b.savedLines = nil
}

// eraseCharacters blanks n cells to the right of the cursor, cursor
// cell included (ECH). The count clamps at the screen edge.
func (b *ScreenBuffer) eraseCharacters(n int) {
	if n < 1 {
		n = 1
	}
	b.blankRangeInLine(b.cursor.Row, b.cursor.Column, b.cursor.Column+n-1)
}

// alignmentPattern fills the screen with 'E', resets the margins and
// homes the cursor (DECALN).
func (b *ScreenBuffer) alignmentPattern() {
	b.margin = fullMargin(b.size)
	b.cursorRestrictedToMargin = false
	b.modes.set(ModeOrigin, false)
	for row := 1; row <= b.size.Rows; row++ {
		cells := b.lines[row-1].Cells
		for c := range cells {
			cells[c] = EmptyCell(DefaultAttributes())
			cells[c].SetCharacter('E', 1)
		}
	}
	b.moveCursorTo(Coordinate{Row: 1, Column: 1})
}
