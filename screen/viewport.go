// Copyright © 2026 vtscreen contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: screen/viewport.go
// Summary: Viewport scrolling over scrollback, mark navigation, render.
// Usage: The renderer pulls visible cells through Render.

package screen

import "strings"

// ScrollOffset returns the viewport offset into scrollback: 0 means
// "bottom, live".
func (s *Screen) ScrollOffset() int { return s.scrollOffset }

// maxScrollOffset is the deepest reachable offset.
func (s *Screen) maxScrollOffset() int {
	if s.IsAlternateScreen() {
		return 0
	}
	return s.mainBuffer().HistoryLineCount()
}

func (s *Screen) clampScrollOffset() {
	s.scrollOffset = clamp(s.scrollOffset, 0, s.maxScrollOffset())
}

// ScrollViewportUp moves the viewport toward history by n lines and
// reports whether the offset changed. Writes never move the viewport.
func (s *Screen) ScrollViewportUp(n int) bool {
	prev := s.scrollOffset
	s.scrollOffset = clamp(s.scrollOffset+n, 0, s.maxScrollOffset())
	return s.scrollOffset != prev
}

// ScrollViewportDown moves the viewport toward the live grid by n lines.
func (s *Screen) ScrollViewportDown(n int) bool {
	prev := s.scrollOffset
	s.scrollOffset = clamp(s.scrollOffset-n, 0, s.maxScrollOffset())
	return s.scrollOffset != prev
}

// ScrollToTop jumps to the oldest scrollback line.
func (s *Screen) ScrollToTop() bool {
	return s.ScrollViewportUp(s.maxScrollOffset() - s.scrollOffset)
}

// ScrollToBottom returns the viewport to the live grid.
func (s *Screen) ScrollToBottom() bool {
	return s.ScrollViewportDown(s.scrollOffset)
}

// ScrollMarkUp moves the viewport to the nearest marked line above the
// current top and reports whether one was found.
func (s *Screen) ScrollMarkUp() bool {
	if offset, ok := s.findPrevMarker(s.scrollOffset); ok {
		s.scrollOffset = offset
		return true
	}
	return false
}

// ScrollMarkDown moves the viewport to the nearest marked line below.
func (s *Screen) ScrollMarkDown() bool {
	if offset, ok := s.findNextMarker(s.scrollOffset); ok {
		s.scrollOffset = offset
		return true
	}
	return false
}

// findPrevMarker scans backwards through savedLines for a marked line
// above the viewport top and returns the offset that tops it.
func (s *Screen) findPrevMarker(currentOffset int) (int, bool) {
	saved := s.mainBuffer().savedLines
	// The line at the top of the viewport has saved-index
	// len(saved)-currentOffset; search strictly above it.
	top := len(saved) - currentOffset
	for i := top - 1; i >= 0; i-- {
		if saved[i].Marked {
			return len(saved) - i, true
		}
	}
	return 0, false
}

// findNextMarker scans forward through savedLines and the visible rows
// below the viewport top.
func (s *Screen) findNextMarker(currentOffset int) (int, bool) {
	b := s.mainBuffer()
	saved := b.savedLines
	top := len(saved) - currentOffset
	for i := top + 1; i < len(saved); i++ {
		if saved[i].Marked {
			return len(saved) - i, true
		}
	}
	// Visible rows count as offset 0 when any of them is marked.
	if currentOffset > 0 {
		for i := range b.lines {
			if b.lines[i].Marked {
				return 0, true
			}
		}
	}
	return 0, false
}

// Render invokes fn once per visible cell in row-major order,
// accounting for the given scrollback offset. Cells drawn from
// scrollback carry their historical attributes.
func (s *Screen) Render(fn func(row, col int, cell *Cell), scrollOffset int) {
	b := s.buffer()
	scrollOffset = clamp(scrollOffset, 0, s.maxScrollOffset())
	saved := b.savedLines
	for row := 1; row <= b.size.Rows; row++ {
		var line *Line
		if idx := row - 1 - scrollOffset; idx >= 0 {
			line = &b.lines[idx]
		} else {
			line = &saved[len(saved)+row-1-scrollOffset]
		}
		for col := 1; col <= b.size.Columns && col <= len(line.Cells); col++ {
			fn(row, col, &line.Cells[col-1])
		}
	}
}

// RenderTextLine renders the visible text of one grid row, blanks for
// empty cells, nothing for wide-cell continuations.
func (s *Screen) RenderTextLine(row int) string {
	return s.buffer().line(row).Text()
}

// RenderText renders the whole visible grid, rows joined by newlines.
func (s *Screen) RenderText() string {
	var sb strings.Builder
	for row := 1; row <= s.size.Rows; row++ {
		if row > 1 {
			sb.WriteByte('\n')
		}
		sb.WriteString(s.RenderTextLine(row))
	}
	return sb.String()
}

// RenderHistoryTextLine renders the n-th line into scrollback history,
// 1-based, 1 being the most recent.
func (s *Screen) RenderHistoryTextLine(n int) string {
	saved := s.mainBuffer().savedLines
	if n < 1 || n > len(saved) {
		return ""
	}
	return saved[len(saved)-n].Text()
}
