// Copyright © 2026 vtscreen contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: screen/screen_test.go
// Summary: Scenario tests for the command interpreter: wrapping,
//          origin mode, scrollback capture, alternate screen, resets.
// Usage: Run with `go test`.

package screen

import (
	"strconv"
	"strings"
	"testing"
)

// newTestScreen builds a verifying screen of rows x columns.
func newTestScreen(rows, columns int, opts ...Option) *Screen {
	opts = append(opts, WithStateVerification())
	return New(WindowSize{Rows: rows, Columns: columns}, nil, opts...)
}

// writeText feeds plain text; '\n' becomes CR+LF like a cooked stream.
func writeText(s *Screen, text string) {
	for _, r := range text {
		if r == '\n' {
			s.Apply(CarriageReturn{})
			s.Apply(Linefeed{})
			continue
		}
		s.Apply(AppendChar{Char: r})
	}
}

func TestAutowrapFillsRowsInOrder(t *testing.T) {
	s := newTestScreen(3, 10)
	writeText(s, "ABCDEFGHIJKLM")

	want := []string{"ABCDEFGHIJ", "KLM       ", "          "}
	for row := 1; row <= 3; row++ {
		if got := s.RenderTextLine(row); got != want[row-1] {
			t.Errorf("row %d = %q, want %q", row, got, want[row-1])
		}
	}
	if c := s.Cursor(); c.Row != 2 || c.Column != 4 {
		t.Errorf("cursor = (%d,%d), want (2,4)", c.Row, c.Column)
	}
}

func TestWrapPendingHoldsUntilNextGlyph(t *testing.T) {
	s := newTestScreen(2, 5)
	writeText(s, "ABCDE")
	if c := s.Cursor(); c.Row != 1 || c.Column != 5 {
		t.Fatalf("cursor = (%d,%d), want (1,5) with wrap pending", c.Row, c.Column)
	}
	// Explicit motion cancels the pending wrap.
	s.Apply(CarriageReturn{})
	writeText(s, "x")
	if got := s.RenderTextLine(1); got != "xBCDE" {
		t.Errorf("row 1 = %q, want %q", got, "xBCDE")
	}
	if got := s.RenderTextLine(2); got != "     " {
		t.Errorf("row 2 = %q, want all blank", got)
	}
}

func TestNoAutowrapClampsAtMargin(t *testing.T) {
	s := newTestScreen(2, 5)
	s.Apply(SetMode{Mode: ModeAutoWrap, Enable: false})
	writeText(s, "ABCDEFG")
	if got := s.RenderTextLine(1); got != "ABCDG" {
		t.Errorf("row 1 = %q, want %q (last column overwritten)", got, "ABCDG")
	}
	if c := s.Cursor(); c.Row != 1 || c.Column != 5 {
		t.Errorf("cursor = (%d,%d), want (1,5)", c.Row, c.Column)
	}
}

func TestOriginModeRemapsAndClamps(t *testing.T) {
	s := newTestScreen(10, 20)
	s.Apply(SetTopBottomMargin{Top: 3, Bottom: 7})
	s.Apply(SetMode{Mode: ModeOrigin, Enable: true})

	s.Apply(MoveCursorTo{Row: 1, Column: 1})
	if c := s.Cursor(); c.Row != 3 || c.Column != 1 {
		t.Fatalf("CUP 1;1 under DECOM = (%d,%d), want absolute (3,1)", c.Row, c.Column)
	}

	s.Apply(MoveCursorUp{N: 100})
	if c := s.Cursor(); c.Row != 3 || c.Column != 1 {
		t.Errorf("CUU 100 = (%d,%d), want clamped to (3,1)", c.Row, c.Column)
	}

	// DSR 6 reports in logical space.
	if pos := s.CursorPosition(); pos.Row != 1 || pos.Column != 1 {
		t.Errorf("logical position = (%d,%d), want (1,1)", pos.Row, pos.Column)
	}
}

func TestScrollbackCapture(t *testing.T) {
	s := newTestScreen(3, 80, WithMaxHistoryLineCount(100))
	lines := make([]string, 250)
	for i := range lines {
		lines[i] = "L" + strconv.Itoa(i)
	}
	writeText(s, strings.Join(lines, "\n"))

	if got := s.HistoryLineCount(); got != 100 {
		t.Fatalf("scrollback depth = %d, want 100", got)
	}
	if got := strings.TrimRight(s.RenderHistoryTextLine(100), " "); got != "L147" {
		t.Errorf("oldest saved line = %q, want %q", got, "L147")
	}
	want := []string{"L247", "L248", "L249"}
	for row := 1; row <= 3; row++ {
		if got := strings.TrimRight(s.RenderTextLine(row), " "); got != want[row-1] {
			t.Errorf("row %d = %q, want %q", row, got, want[row-1])
		}
	}
}

func TestAlternateScreenRoundTrip(t *testing.T) {
	s := newTestScreen(4, 10)
	writeText(s, "main text")
	s.Apply(SetGraphicsRendition{Rendition: RenditionBold})
	cursorBefore := s.Cursor()
	renditionBefore := s.buffer().Rendition()

	var switches []BufferType
	s.handler.OnBufferChanged = func(k BufferType) { switches = append(switches, k) }

	s.Apply(SetMode{Mode: ModeUseAlternateScreen, Enable: true})
	if !s.IsAlternateScreen() {
		t.Fatal("alternate buffer not active after DECSET 1049")
	}
	if got := strings.TrimRight(s.RenderText(), " \n"); got != "" {
		t.Fatalf("alternate screen not cleared on enter: %q", got)
	}
	writeText(s, "X")
	if got := s.RenderTextLine(1)[:1]; got != "X" {
		t.Fatalf("alt row 1 = %q, want X", got)
	}

	s.Apply(SetMode{Mode: ModeUseAlternateScreen, Enable: false})
	if s.IsAlternateScreen() {
		t.Fatal("main buffer not active after DECRST 1049")
	}
	if got := strings.TrimRight(s.RenderTextLine(1), " "); got != "main text" {
		t.Errorf("main text not restored: %q", got)
	}
	if c := s.Cursor(); c != cursorBefore {
		t.Errorf("cursor = %+v, want %+v", c, cursorBefore)
	}
	if r := s.buffer().Rendition(); r != renditionBefore {
		t.Errorf("rendition = %+v, want %+v", r, renditionBefore)
	}
	if len(switches) != 2 || switches[0] != AlternateBuffer || switches[1] != MainBuffer {
		t.Errorf("buffer change callbacks = %v", switches)
	}
}

func TestAlternateScreenHasNoScrollback(t *testing.T) {
	s := newTestScreen(2, 10)
	s.Apply(SetMode{Mode: ModeUseAlternateScreen, Enable: true})
	writeText(s, "a\nb\nc\nd")
	if got := s.buffer().HistoryLineCount(); got != 0 {
		t.Errorf("alternate scrollback depth = %d, want 0", got)
	}
}

func TestSaveRestoreIsIdentity(t *testing.T) {
	s := newTestScreen(5, 10)
	s.Apply(MoveCursorTo{Row: 3, Column: 7})
	s.Apply(SetGraphicsRendition{Rendition: RenditionItalic})
	s.Apply(SetForegroundColor{Color: PaletteColor(42)})

	before := struct {
		cursor    Cursor
		rendition GraphicsAttributes
		autoWrap  bool
		origin    bool
	}{s.Cursor(), s.buffer().Rendition(), s.buffer().autoWrap, s.buffer().cursorRestrictedToMargin}

	s.Apply(SaveCursor{})
	s.Apply(RestoreCursor{})

	if s.Cursor() != before.cursor {
		t.Errorf("cursor = %+v, want %+v", s.Cursor(), before.cursor)
	}
	if s.buffer().Rendition() != before.rendition {
		t.Errorf("rendition changed across save/restore")
	}
	if s.buffer().autoWrap != before.autoWrap || s.buffer().cursorRestrictedToMargin != before.origin {
		t.Errorf("autowrap/origin changed across save/restore")
	}
}

func TestRestoreWithEmptyStackResets(t *testing.T) {
	s := newTestScreen(5, 10)
	s.Apply(MoveCursorTo{Row: 4, Column: 4})
	s.Apply(SetGraphicsRendition{Rendition: RenditionBold})
	s.Apply(RestoreCursor{})

	if c := s.Cursor(); c.Row != 1 || c.Column != 1 {
		t.Errorf("cursor = (%d,%d), want home", c.Row, c.Column)
	}
	if r := s.buffer().Rendition(); r != DefaultAttributes() {
		t.Errorf("rendition = %+v, want defaults", r)
	}
	if !s.buffer().autoWrap {
		t.Error("autowrap should reset to on")
	}
}

func TestSoftResetIsIdempotent(t *testing.T) {
	s := newTestScreen(5, 10)
	writeText(s, "keep me")
	s.Apply(SetTopBottomMargin{Top: 2, Bottom: 4})
	s.Apply(SetMode{Mode: ModeOrigin, Enable: true})
	s.Apply(SetMode{Mode: ModeInsert, Enable: true})

	s.Apply(SoftTerminalReset{})
	snap := func() (Cursor, Margin, GraphicsAttributes, bool, bool) {
		b := s.buffer()
		return b.cursor, b.margin, b.graphicsRendition, b.autoWrap, b.cursorRestrictedToMargin
	}
	c1, m1, g1, a1, o1 := snap()
	s.Apply(SoftTerminalReset{})
	c2, m2, g2, a2, o2 := snap()

	if c1 != c2 || m1 != m2 || g1 != g2 || a1 != a2 || o1 != o2 {
		t.Error("soft reset is not idempotent")
	}
	if got := strings.TrimRight(s.RenderTextLine(1), " "); got != "keep me" {
		t.Errorf("grid contents lost on soft reset: %q", got)
	}
	if m1 != fullMargin(s.Size()) {
		t.Errorf("margins = %+v, want full screen", m1)
	}
}

func TestHardResetClearsEverything(t *testing.T) {
	s := newTestScreen(3, 10, WithMaxHistoryLineCount(50))
	writeText(s, "a\nb\nc\nd\ne")
	s.Apply(ChangeWindowTitle{Title: "t"})
	s.Apply(SaveWindowTitle{})
	s.Apply(SetMode{Mode: ModeUseAlternateScreen, Enable: true})

	s.Apply(FullReset{})

	if s.IsAlternateScreen() {
		t.Error("hard reset must activate the main buffer")
	}
	if s.HistoryLineCount() != 0 {
		t.Error("hard reset must drop scrollback")
	}
	if got := strings.TrimRight(s.RenderText(), " \n"); got != "" {
		t.Errorf("grid not cleared: %q", got)
	}
	if len(s.titleStack) != 0 {
		t.Error("title stack not cleared")
	}
	if c := s.Cursor(); c.Row != 1 || c.Column != 1 {
		t.Errorf("cursor = (%d,%d), want home", c.Row, c.Column)
	}
}

func TestRenderTextRoundTrip(t *testing.T) {
	s := newTestScreen(3, 8)
	writeText(s, "hello\nworld")
	want := "hello   \nworld   \n        "
	if got := s.RenderText(); got != want {
		t.Errorf("RenderText = %q, want %q", got, want)
	}
}

func TestInsertModeShiftsInsteadOfOverwriting(t *testing.T) {
	s := newTestScreen(1, 8)
	writeText(s, "world")
	s.Apply(MoveCursorTo{Row: 1, Column: 1})
	s.Apply(SetMode{Mode: ModeInsert, Enable: true})
	writeText(s, "go ")
	if got := s.RenderTextLine(1); got != "go world" {
		t.Errorf("row = %q, want %q", got, "go world")
	}
}

func TestScreenAlignmentPattern(t *testing.T) {
	s := newTestScreen(2, 4)
	s.Apply(SetTopBottomMargin{Top: 1, Bottom: 2})
	s.Apply(ScreenAlignmentPattern{})
	if got := s.RenderText(); got != "EEEE\nEEEE" {
		t.Errorf("DECALN grid = %q", got)
	}
	if c := s.Cursor(); c.Row != 1 || c.Column != 1 {
		t.Errorf("cursor = (%d,%d), want home", c.Row, c.Column)
	}
}
