// Copyright © 2026 vtscreen contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: screen/buffer.go
// Summary: The screen buffer: grid, scrollback, cursor, margins, modes.
// Usage: Two buffers (main and alternate) are owned by value by Screen.
// Notes: All grid mutation goes through the primitives in the buffer_*
//        files; coordinates are 1-based throughout.

package screen

import (
	"fmt"
	"sort"
)

// BufferType distinguishes the main buffer (with scrollback) from the
// alternate buffer (without).
type BufferType int

const (
	MainBuffer BufferType = iota
	AlternateBuffer
)

// String returns the buffer type name.
func (t BufferType) String() string {
	if t == AlternateBuffer {
		return "alternate"
	}
	return "main"
}

// Cursor is the insertion position plus its visibility flag.
type Cursor struct {
	Coordinate
	Visible bool
}

// savedState is one DECSC snapshot. The stack is per buffer and capped
// at maxSavedStates; the oldest entry is evicted on overflow.
type savedState struct {
	cursor     Coordinate
	rendition  GraphicsAttributes
	autoWrap   bool
	originMode bool
}

const maxSavedStates = 10

// ScreenBuffer is one grid of styled cells with scrollback history,
// margins, cursor state, tab stops and a saved-state stack. Only the
// main buffer produces scrollback.
type ScreenBuffer struct {
	kind       BufferType
	size       WindowSize
	maxHistory int // 0 = unbounded

	margin Margin
	modes  modeSet
	cursor Cursor

	lines      []Line // visible grid, lines[0] is row 1
	savedLines []Line // scrollback, oldest first

	autoWrap                 bool
	wrapPending              bool
	cursorRestrictedToMargin bool // DECOM

	tabWidth int
	tabs     []int // sorted, strictly increasing, 1-based columns

	graphicsRendition GraphicsAttributes
	savedStates       []savedState

	currentHyperlink *Hyperlink
	hyperlinks       *HyperlinkTable

	lastCursor      Coordinate
	lastColumn      int
	lastGraphicChar rune
}

// newScreenBuffer creates an empty buffer of the given size.
func newScreenBuffer(kind BufferType, size WindowSize, maxHistory, tabWidth int) ScreenBuffer {
	b := ScreenBuffer{
		kind:              kind,
		size:              size,
		maxHistory:        maxHistory,
		margin:            fullMargin(size),
		modes:             make(modeSet),
		cursor:            Cursor{Coordinate: Coordinate{Row: 1, Column: 1}, Visible: true},
		autoWrap:          true,
		tabWidth:          tabWidth,
		graphicsRendition: DefaultAttributes(),
		hyperlinks:        newHyperlinkTable(),
		lastCursor:        Coordinate{Row: 1, Column: 1},
	}
	b.lines = make([]Line, size.Rows)
	for i := range b.lines {
		b.lines[i] = newLine(size.Columns, DefaultAttributes())
	}
	b.resetTabs()
	return b
}

// resetTabs restores the default tab stop at every tabWidth columns.
func (b *ScreenBuffer) resetTabs() {
	b.tabs = b.tabs[:0]
	for col := 1; col <= b.size.Columns; col += b.tabWidth {
		b.tabs = append(b.tabs, col)
	}
}

// Size returns the visible grid extent.
func (b *ScreenBuffer) Size() WindowSize { return b.size }

// Type returns whether this is the main or the alternate buffer.
func (b *ScreenBuffer) Type() BufferType { return b.kind }

// Cursor returns the current cursor (absolute coordinates).
func (b *ScreenBuffer) Cursor() Cursor { return b.cursor }

// Margin returns the active scroll region.
func (b *ScreenBuffer) Margin() Margin { return b.margin }

// HistoryLineCount returns the number of scrollback lines.
func (b *ScreenBuffer) HistoryLineCount() int { return len(b.savedLines) }

// Rendition returns the current graphics rendition.
func (b *ScreenBuffer) Rendition() GraphicsAttributes { return b.graphicsRendition }

// IsModeEnabled reports whether the given mode is set on this buffer.
func (b *ScreenBuffer) IsModeEnabled(m Mode) bool {
	switch m {
	case ModeAutoWrap:
		return b.autoWrap
	case ModeOrigin:
		return b.cursorRestrictedToMargin
	case ModeVisibleCursor:
		return b.cursor.Visible
	default:
		return b.modes.enabled(m)
	}
}

// setMode flips a mode, applying the side effects the mode demands.
func (b *ScreenBuffer) setMode(m Mode, enable bool) {
	switch m {
	case ModeAutoWrap:
		b.autoWrap = enable
		if !enable {
			b.wrapPending = false
		}
	case ModeOrigin:
		b.cursorRestrictedToMargin = enable
		// Entering or leaving origin mode homes the cursor.
		b.moveCursorTo(Coordinate{Row: 1, Column: 1})
	case ModeVisibleCursor:
		b.cursor.Visible = enable
	case ModeLeftRightMargin:
		if !enable {
			b.margin.Horizontal = Range{From: 1, To: b.size.Columns}
		}
	}
	b.modes.set(m, enable)
}

// at returns the cell at an absolute 1-based coordinate. Coordinates
// are clamped, never rejected.
func (b *ScreenBuffer) at(row, col int) *Cell {
	row = clamp(row, 1, b.size.Rows)
	col = clamp(col, 1, b.size.Columns)
	return &b.lines[row-1].Cells[col-1]
}

// line returns the line at an absolute 1-based row.
func (b *ScreenBuffer) line(row int) *Line {
	return &b.lines[clamp(row, 1, b.size.Rows)-1]
}

// blankCell is the fill used by scroll and erase primitives: an empty
// cell that inherits the current background color and drops any link.
func (b *ScreenBuffer) blankCell() Cell {
	attr := DefaultAttributes()
	attr.Background = b.graphicsRendition.Background
	return EmptyCell(attr)
}

// blankLine returns a full-width line of blankCell fills.
func (b *ScreenBuffer) blankLine() Line {
	cells := make([]Cell, b.size.Columns)
	fill := b.blankCell()
	for i := range cells {
		cells[i] = fill
	}
	return Line{Cells: cells}
}

// --- Margins and origin mode ---

// horizontalExtent returns the columns motion is bounded by: the
// horizontal margin when DECLRMM is enabled, else the full width.
func (b *ScreenBuffer) horizontalExtent() Range {
	if b.modes.enabled(ModeLeftRightMargin) {
		return b.margin.Horizontal
	}
	return Range{From: 1, To: b.size.Columns}
}

// originRange returns the region logical coordinates map into.
func (b *ScreenBuffer) originRange() (vertical, horizontal Range) {
	if !b.cursorRestrictedToMargin {
		return Range{From: 1, To: b.size.Rows}, Range{From: 1, To: b.size.Columns}
	}
	return b.margin.Vertical, b.horizontalExtent()
}

// toRealCoordinate translates a logical coordinate to absolute screen
// space, honoring origin mode, and clamps it into the active region.
func (b *ScreenBuffer) toRealCoordinate(c Coordinate) Coordinate {
	v, h := b.originRange()
	return Coordinate{
		Row:    clamp(c.Row+v.From-1, v.From, v.To),
		Column: clamp(c.Column+h.From-1, h.From, h.To),
	}
}

// cursorPosition returns the cursor in logical coordinates (the space
// DSR 6 reports in): relative to the margins when origin mode is on.
func (b *ScreenBuffer) cursorPosition() Coordinate {
	if !b.cursorRestrictedToMargin {
		return b.cursor.Coordinate
	}
	v, h := b.originRange()
	return Coordinate{
		Row:    b.cursor.Row - v.From + 1,
		Column: b.cursor.Column - h.From + 1,
	}
}

// moveCursorTo places the cursor at a logical coordinate. Any explicit
// motion cancels a pending wrap.
func (b *ScreenBuffer) moveCursorTo(to Coordinate) {
	b.wrapPending = false
	b.cursor.Coordinate = b.toRealCoordinate(to)
	b.lastColumn = b.cursor.Column
}

// moveCursorAbsolute places the cursor ignoring origin mode, clamped to
// the screen. Used by primitives that operate in absolute space.
func (b *ScreenBuffer) moveCursorAbsolute(to Coordinate) {
	b.wrapPending = false
	b.cursor.Row = clamp(to.Row, 1, b.size.Rows)
	b.cursor.Column = clamp(to.Column, 1, b.size.Columns)
	b.lastColumn = b.cursor.Column
}

// isCursorInsideMargins reports whether the cursor is within the active
// scroll region.
func (b *ScreenBuffer) isCursorInsideMargins() bool {
	if !b.margin.Vertical.Contains(b.cursor.Row) {
		return false
	}
	if b.modes.enabled(ModeLeftRightMargin) && !b.margin.Horizontal.Contains(b.cursor.Column) {
		return false
	}
	return true
}

// setTopBottomMargin sets the vertical scroll region; zero arguments
// select the full extent. Nonsense ranges are ignored per DECSTBM.
func (b *ScreenBuffer) setTopBottomMargin(top, bottom int) {
	if top <= 0 {
		top = 1
	}
	if bottom <= 0 || bottom > b.size.Rows {
		bottom = b.size.Rows
	}
	if top >= bottom {
		return
	}
	b.margin.Vertical = Range{From: top, To: bottom}
	b.moveCursorTo(Coordinate{Row: 1, Column: 1})
}

// setLeftRightMargin sets the horizontal scroll region (DECSLRM).
// Only effective while DECLRMM is enabled.
func (b *ScreenBuffer) setLeftRightMargin(left, right int) {
	if !b.modes.enabled(ModeLeftRightMargin) {
		return
	}
	if left <= 0 {
		left = 1
	}
	if right <= 0 || right > b.size.Columns {
		right = b.size.Columns
	}
	if left >= right {
		return
	}
	b.margin.Horizontal = Range{From: left, To: right}
	b.moveCursorTo(Coordinate{Row: 1, Column: 1})
}

// --- Tab stops ---

// setTabUnderCursor records a tab stop at the cursor column.
func (b *ScreenBuffer) setTabUnderCursor() {
	col := b.cursor.Column
	i := sort.SearchInts(b.tabs, col)
	if i < len(b.tabs) && b.tabs[i] == col {
		return
	}
	b.tabs = append(b.tabs, 0)
	copy(b.tabs[i+1:], b.tabs[i:])
	b.tabs[i] = col
}

// clearTabUnderCursor removes the tab stop at the cursor column.
func (b *ScreenBuffer) clearTabUnderCursor() {
	i := sort.SearchInts(b.tabs, b.cursor.Column)
	if i < len(b.tabs) && b.tabs[i] == b.cursor.Column {
		b.tabs = append(b.tabs[:i], b.tabs[i+1:]...)
	}
}

// clearAllTabs removes every tab stop.
func (b *ScreenBuffer) clearAllTabs() { b.tabs = b.tabs[:0] }

// nextTabStops moves the cursor to the n-th tab stop right of it,
// clamping to the right margin when stops run out.
func (b *ScreenBuffer) nextTabStops(n int) {
	b.wrapPending = false
	h := b.horizontalExtent()
	col := b.cursor.Column
	for ; n > 0; n-- {
		i := sort.SearchInts(b.tabs, col+1)
		if i >= len(b.tabs) || b.tabs[i] > h.To {
			col = h.To
			break
		}
		col = b.tabs[i]
	}
	b.cursor.Column = col
	b.lastColumn = col
}

// prevTabStops moves the cursor to the n-th tab stop left of it,
// clamping to the left margin when stops run out.
func (b *ScreenBuffer) prevTabStops(n int) {
	b.wrapPending = false
	h := b.horizontalExtent()
	col := b.cursor.Column
	for ; n > 0; n-- {
		i := sort.SearchInts(b.tabs, col) - 1
		if i < 0 || b.tabs[i] < h.From {
			col = h.From
			break
		}
		col = b.tabs[i]
	}
	b.cursor.Column = col
	b.lastColumn = col
}

// --- Cursor state save/restore (DECSC/DECRC) ---

// saveState pushes the cursor position (logical), rendition, autowrap
// and origin mode. The stack is capped; the oldest entry is evicted.
func (b *ScreenBuffer) saveState() {
	if len(b.savedStates) >= maxSavedStates {
		copy(b.savedStates, b.savedStates[1:])
		b.savedStates = b.savedStates[:maxSavedStates-1]
	}
	b.savedStates = append(b.savedStates, savedState{
		cursor:     b.cursorPosition(),
		rendition:  b.graphicsRendition,
		autoWrap:   b.autoWrap,
		originMode: b.cursorRestrictedToMargin,
	})
}

// restoreState pops the last save. An empty stack restores the reset
// defaults: home, default rendition, autowrap on, origin mode off.
func (b *ScreenBuffer) restoreState() {
	if len(b.savedStates) == 0 {
		b.graphicsRendition = DefaultAttributes()
		b.autoWrap = true
		b.cursorRestrictedToMargin = false
		b.modes.set(ModeOrigin, false)
		b.moveCursorTo(Coordinate{Row: 1, Column: 1})
		return
	}
	s := b.savedStates[len(b.savedStates)-1]
	b.savedStates = b.savedStates[:len(b.savedStates)-1]
	b.graphicsRendition = s.rendition
	b.autoWrap = s.autoWrap
	b.cursorRestrictedToMargin = s.originMode
	b.modes.set(ModeOrigin, s.originMode)
	b.moveCursorTo(s.cursor)
}

// --- Hyperlinks ---

// setHyperlink starts an OSC 8 context; an empty URI closes it.
func (b *ScreenBuffer) setHyperlink(id, uri string) {
	if uri == "" {
		b.currentHyperlink = nil
		return
	}
	b.currentHyperlink = b.hyperlinks.Intern(id, uri)
}

// pruneHyperlinks drops interned entries no cell references anymore.
func (b *ScreenBuffer) pruneHyperlinks() {
	referenced := make(map[*Hyperlink]bool)
	if b.currentHyperlink != nil {
		referenced[b.currentHyperlink] = true
	}
	scan := func(lines []Line) {
		for i := range lines {
			for j := range lines[i].Cells {
				if h := lines[i].Cells[j].Hyperlink; h != nil {
					referenced[h] = true
				}
			}
		}
	}
	scan(b.lines)
	scan(b.savedLines)
	b.hyperlinks.Prune(referenced)
}

// --- Invariant verification ---

// verifyState panics when a grid invariant is broken. A violation is an
// implementation bug, not bad input: the interpreter clamps all
// arguments before they reach the primitives.
func (b *ScreenBuffer) verifyState() {
	if len(b.lines) != b.size.Rows {
		b.fail(fmt.Sprintf("line count %d != rows %d", len(b.lines), b.size.Rows))
	}
	for i := range b.lines {
		if len(b.lines[i].Cells) != b.size.Columns {
			b.fail(fmt.Sprintf("row %d has %d cells, want %d", i+1, len(b.lines[i].Cells), b.size.Columns))
		}
	}
	if b.cursor.Row < 1 || b.cursor.Row > b.size.Rows {
		b.fail(fmt.Sprintf("cursor row %d out of 1..%d", b.cursor.Row, b.size.Rows))
	}
	maxCol := b.size.Columns
	if b.wrapPending {
		maxCol++
	}
	if b.cursor.Column < 1 || b.cursor.Column > maxCol {
		b.fail(fmt.Sprintf("cursor column %d out of 1..%d", b.cursor.Column, maxCol))
	}
	if b.margin.Vertical.From < 1 || b.margin.Vertical.To > b.size.Rows ||
		b.margin.Vertical.From > b.margin.Vertical.To {
		b.fail(fmt.Sprintf("vertical margin %v invalid", b.margin.Vertical))
	}
	if b.margin.Horizontal.From < 1 || b.margin.Horizontal.To > b.size.Columns ||
		b.margin.Horizontal.From > b.margin.Horizontal.To {
		b.fail(fmt.Sprintf("horizontal margin %v invalid", b.margin.Horizontal))
	}
	if b.maxHistory > 0 && len(b.savedLines) > b.maxHistory {
		b.fail(fmt.Sprintf("scrollback %d exceeds limit %d", len(b.savedLines), b.maxHistory))
	}
	for i := 1; i < len(b.tabs); i++ {
		if b.tabs[i] <= b.tabs[i-1] {
			b.fail("tab stops not strictly increasing")
		}
	}
}

func (b *ScreenBuffer) fail(msg string) {
	panic(fmt.Sprintf("screen: %s buffer state broken: %s", b.kind, msg))
}
