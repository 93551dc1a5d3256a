// Copyright © 2026 vtscreen contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: sequencer/sequencer_test.go
// Summary: Tests for the escape-sequence decoder: CSI, OSC, SGR, UTF-8
//          reassembly and grapheme flagging.
// Usage: Run with `go test`.

package sequencer

import (
	"reflect"
	"testing"

	"github.com/framegrace/vtscreen/screen"
)

func decodeAll(t *testing.T, input string) []screen.Command {
	t.Helper()
	s := New()
	return append([]screen.Command(nil), s.Decode([]byte(input))...)
}

func TestPlainTextBecomesAppendChars(t *testing.T) {
	cmds := decodeAll(t, "hi")
	want := []screen.Command{
		screen.AppendChar{Char: 'h'},
		screen.AppendChar{Char: 'i'},
	}
	if !reflect.DeepEqual(cmds, want) {
		t.Errorf("commands = %#v", cmds)
	}
}

func TestControlCharacters(t *testing.T) {
	cmds := decodeAll(t, "a\r\n\tb\a")
	want := []screen.Command{
		screen.AppendChar{Char: 'a'},
		screen.CarriageReturn{},
		screen.Linefeed{},
		screen.MoveCursorToNextTab{N: 1},
		screen.AppendChar{Char: 'b'},
		screen.Bell{},
	}
	if !reflect.DeepEqual(cmds, want) {
		t.Errorf("commands = %#v", cmds)
	}
}

func TestCursorMotionSequences(t *testing.T) {
	cases := []struct {
		input string
		want  screen.Command
	}{
		{"\x1b[H", screen.MoveCursorTo{Row: 1, Column: 1}},
		{"\x1b[3;7H", screen.MoveCursorTo{Row: 3, Column: 7}},
		{"\x1b[5A", screen.MoveCursorUp{N: 5}},
		{"\x1b[B", screen.MoveCursorDown{N: 1}},
		{"\x1b[0C", screen.MoveCursorForward{N: 1}},
		{"\x1b[2D", screen.MoveCursorBackward{N: 2}},
		{"\x1b[4G", screen.MoveCursorToColumn{Column: 4}},
		{"\x1b[6d", screen.MoveCursorToLine{Line: 6}},
		{"\x1b[2I", screen.MoveCursorToNextTab{N: 2}},
		{"\x1b[Z", screen.CursorBackwardTab{N: 1}},
	}
	for _, tc := range cases {
		cmds := decodeAll(t, tc.input)
		if len(cmds) != 1 || !reflect.DeepEqual(cmds[0], tc.want) {
			t.Errorf("%q -> %#v, want %#v", tc.input, cmds, tc.want)
		}
	}
}

func TestEraseAndEditSequences(t *testing.T) {
	cases := []struct {
		input string
		want  screen.Command
	}{
		{"\x1b[J", screen.ClearToEndOfScreen{}},
		{"\x1b[1J", screen.ClearToBeginOfScreen{}},
		{"\x1b[2J", screen.ClearScreen{}},
		{"\x1b[3J", screen.ClearScrollbackBuffer{}},
		{"\x1b[K", screen.ClearToEndOfLine{}},
		{"\x1b[2K", screen.ClearLine{}},
		{"\x1b[3X", screen.EraseCharacters{N: 3}},
		{"\x1b[2L", screen.InsertLines{N: 2}},
		{"\x1b[M", screen.DeleteLines{N: 1}},
		{"\x1b[4@", screen.InsertCharacters{N: 4}},
		{"\x1b[2P", screen.DeleteCharacters{N: 2}},
		{"\x1b[3S", screen.ScrollUp{N: 3}},
		{"\x1b[T", screen.ScrollDown{N: 1}},
		{"\x1b[2'}", screen.InsertColumns{N: 2}},
		{"\x1b[2'~", screen.DeleteColumns{N: 2}},
		{"\x1b[3b", screen.RepeatLastCharacter{Count: 3}},
	}
	for _, tc := range cases {
		cmds := decodeAll(t, tc.input)
		if len(cmds) != 1 || !reflect.DeepEqual(cmds[0], tc.want) {
			t.Errorf("%q -> %#v, want %#v", tc.input, cmds, tc.want)
		}
	}
}

func TestMarginAndResetSequences(t *testing.T) {
	cases := []struct {
		input string
		want  screen.Command
	}{
		{"\x1b[2;10r", screen.SetTopBottomMargin{Top: 2, Bottom: 10}},
		{"\x1b[r", screen.SetTopBottomMargin{}},
		{"\x1b[3;8s", screen.SetLeftRightMargin{Left: 3, Right: 8}},
		{"\x1b[s", screen.SaveCursor{}},
		{"\x1b[u", screen.RestoreCursor{}},
		{"\x1b[!p", screen.SoftTerminalReset{}},
		{"\x1bc", screen.FullReset{}},
		{"\x1b#8", screen.ScreenAlignmentPattern{}},
		{"\x1b7", screen.SaveCursor{}},
		{"\x1b8", screen.RestoreCursor{}},
		{"\x1bD", screen.Index{}},
		{"\x1bM", screen.ReverseIndex{}},
		{"\x1bE", screen.NextLine{}},
		{"\x1bH", screen.HorizontalTabSet{}},
		{"\x1b6", screen.BackIndex{}},
		{"\x1b9", screen.ForwardIndex{}},
		{"\x1b=", screen.ApplicationKeypadMode{Enable: true}},
		{"\x1b>", screen.ApplicationKeypadMode{Enable: false}},
	}
	for _, tc := range cases {
		cmds := decodeAll(t, tc.input)
		if len(cmds) != 1 || !reflect.DeepEqual(cmds[0], tc.want) {
			t.Errorf("%q -> %#v, want %#v", tc.input, cmds, tc.want)
		}
	}
}

func TestModeSequences(t *testing.T) {
	cmds := decodeAll(t, "\x1b[?25l\x1b[?7h\x1b[4h\x1b[?1049h\x1b[?2004l")
	want := []screen.Command{
		screen.SetMode{Mode: screen.ModeVisibleCursor, Enable: false},
		screen.SetMode{Mode: screen.ModeAutoWrap, Enable: true},
		screen.SetMode{Mode: screen.ModeInsert, Enable: true},
		screen.SetMode{Mode: screen.ModeUseAlternateScreen, Enable: true},
		screen.SetMode{Mode: screen.ModeBracketedPaste, Enable: false},
	}
	if !reflect.DeepEqual(cmds, want) {
		t.Errorf("commands = %#v", cmds)
	}
}

func TestMultipleModesInOneSequence(t *testing.T) {
	cmds := decodeAll(t, "\x1b[?6;69h")
	want := []screen.Command{
		screen.SetMode{Mode: screen.ModeOrigin, Enable: true},
		screen.SetMode{Mode: screen.ModeLeftRightMargin, Enable: true},
	}
	if !reflect.DeepEqual(cmds, want) {
		t.Errorf("commands = %#v", cmds)
	}
}

func TestLegacyAlternateScreenModes(t *testing.T) {
	cmds := decodeAll(t, "\x1b[?47h\x1b[?1048h\x1b[?1048l")
	want := []screen.Command{
		screen.SetMode{Mode: screen.ModeUseAlternateScreen, Enable: true},
		screen.SaveCursor{},
		screen.RestoreCursor{},
	}
	if !reflect.DeepEqual(cmds, want) {
		t.Errorf("commands = %#v", cmds)
	}
}

func TestModeSaveRestoreSequences(t *testing.T) {
	cmds := decodeAll(t, "\x1b[?2004;25s\x1b[?2004r")
	want := []screen.Command{
		screen.SaveModes{Modes: []screen.Mode{screen.ModeBracketedPaste, screen.ModeVisibleCursor}},
		screen.RestoreModes{Modes: []screen.Mode{screen.ModeBracketedPaste}},
	}
	if !reflect.DeepEqual(cmds, want) {
		t.Errorf("commands = %#v", cmds)
	}
}

func TestSGRColorForms(t *testing.T) {
	cases := []struct {
		input string
		want  []screen.Command
	}{
		{"\x1b[m", []screen.Command{screen.SetGraphicsRendition{Rendition: screen.RenditionReset}}},
		{"\x1b[1;31m", []screen.Command{
			screen.SetGraphicsRendition{Rendition: screen.RenditionBold},
			screen.SetForegroundColor{Color: screen.IndexedColor(1)},
		}},
		{"\x1b[38;5;196m", []screen.Command{
			screen.SetForegroundColor{Color: screen.PaletteColor(196)},
		}},
		{"\x1b[38:5:196m", []screen.Command{
			screen.SetForegroundColor{Color: screen.PaletteColor(196)},
		}},
		{"\x1b[48;2;10;20;30m", []screen.Command{
			screen.SetBackgroundColor{Color: screen.RGBColor(10, 20, 30)},
		}},
		{"\x1b[38:2::10:20:30m", []screen.Command{
			screen.SetForegroundColor{Color: screen.RGBColor(10, 20, 30)},
		}},
		{"\x1b[4:3m", []screen.Command{
			screen.SetGraphicsRendition{Rendition: screen.RenditionCurlyUnderlined},
		}},
		{"\x1b[58;2;1;2;3m", []screen.Command{
			screen.SetUnderlineColor{Color: screen.RGBColor(1, 2, 3)},
		}},
		{"\x1b[59m", []screen.Command{
			screen.SetUnderlineColor{Color: screen.UnderlineDefaultColor()},
		}},
		{"\x1b[95m", []screen.Command{
			screen.SetForegroundColor{Color: screen.BrightColor(5)},
		}},
	}
	for _, tc := range cases {
		cmds := decodeAll(t, tc.input)
		if !reflect.DeepEqual(cmds, tc.want) {
			t.Errorf("%q -> %#v, want %#v", tc.input, cmds, tc.want)
		}
	}
}

func TestReportsAndQueries(t *testing.T) {
	cases := []struct {
		input string
		want  screen.Command
	}{
		{"\x1b[5n", screen.DeviceStatusReport{}},
		{"\x1b[6n", screen.ReportCursorPosition{}},
		{"\x1b[?6n", screen.ReportExtendedCursorPosition{}},
		{"\x1b[c", screen.SendDeviceAttributes{}},
		{"\x1b[>c", screen.SendTerminalId{}},
		{"\x1b[?7$p", screen.RequestMode{Number: 7, Private: true}},
		{"\x1b[4$p", screen.RequestMode{Number: 4}},
		{"\x1b[2$w", screen.RequestTabStops{}},
	}
	for _, tc := range cases {
		cmds := decodeAll(t, tc.input)
		if len(cmds) != 1 || !reflect.DeepEqual(cmds[0], tc.want) {
			t.Errorf("%q -> %#v, want %#v", tc.input, cmds, tc.want)
		}
	}
}

func TestWindowOps(t *testing.T) {
	cmds := decodeAll(t, "\x1b[8;30;100t\x1b[22;0t\x1b[23;0t")
	want := []screen.Command{
		screen.ResizeWindow{Rows: 30, Columns: 100},
		screen.SaveWindowTitle{},
		screen.RestoreWindowTitle{},
	}
	if !reflect.DeepEqual(cmds, want) {
		t.Errorf("commands = %#v", cmds)
	}
}

func TestOSCTitleBothTerminators(t *testing.T) {
	for _, input := range []string{"\x1b]0;my title\a", "\x1b]2;my title\x1b\\"} {
		cmds := decodeAll(t, input)
		want := []screen.Command{screen.ChangeWindowTitle{Title: "my title"}}
		if !reflect.DeepEqual(cmds, want) {
			t.Errorf("%q -> %#v", input, cmds)
		}
	}
}

func TestOSCHyperlink(t *testing.T) {
	cmds := decodeAll(t, "\x1b]8;id=x1;https://example.com\x1b\\hi\x1b]8;;\x1b\\")
	want := []screen.Command{
		screen.Hyperlinked{ID: "x1", URI: "https://example.com"},
		screen.AppendChar{Char: 'h'},
		screen.AppendChar{Char: 'i'},
		screen.Hyperlinked{},
	}
	if !reflect.DeepEqual(cmds, want) {
		t.Errorf("commands = %#v", cmds)
	}
}

func TestOSCDynamicColors(t *testing.T) {
	cmds := decodeAll(t, "\x1b]10;?\a\x1b]11;rgb:11/22/33\a\x1b]112;\a")
	want := []screen.Command{
		screen.RequestDynamicColor{Name: screen.DynamicColorDefaultForeground},
		screen.SetDynamicColor{
			Name:  screen.DynamicColorDefaultBackground,
			Color: screen.RGB{R: 0x11, G: 0x22, B: 0x33},
		},
		screen.ResetDynamicColor{Name: screen.DynamicColorTextCursor},
	}
	if !reflect.DeepEqual(cmds, want) {
		t.Errorf("commands = %#v", cmds)
	}
}

func TestOSCNotify(t *testing.T) {
	cmds := decodeAll(t, "\x1b]777;notify;Title;Body text\a")
	want := []screen.Command{screen.Notify{Title: "Title", Body: "Body text"}}
	if !reflect.DeepEqual(cmds, want) {
		t.Errorf("commands = %#v", cmds)
	}
}

func TestUTF8SplitAcrossDecodes(t *testing.T) {
	s := New()
	raw := []byte("世") // 3 bytes
	var cmds []screen.Command
	cmds = append(cmds, s.Decode(raw[:1])...)
	cmds = append(cmds, s.Decode(raw[1:2])...)
	cmds = append(cmds, s.Decode(raw[2:])...)
	want := []screen.Command{screen.AppendChar{Char: '世'}}
	if !reflect.DeepEqual(cmds, want) {
		t.Errorf("commands = %#v", cmds)
	}
}

func TestEscapeSequenceSplitAcrossDecodes(t *testing.T) {
	s := New()
	var cmds []screen.Command
	cmds = append(cmds, s.Decode([]byte("\x1b["))...)
	cmds = append(cmds, s.Decode([]byte("3;"))...)
	cmds = append(cmds, s.Decode([]byte("4H"))...)
	want := []screen.Command{screen.MoveCursorTo{Row: 3, Column: 4}}
	if !reflect.DeepEqual(cmds, want) {
		t.Errorf("commands = %#v", cmds)
	}
}

func TestCombiningMarkFlaggedConsecutive(t *testing.T) {
	cmds := decodeAll(t, "e\u0301x")
	want := []screen.Command{
		screen.AppendChar{Char: 'e'},
		screen.AppendChar{Char: 0x0301, Consecutive: true},
		screen.AppendChar{Char: 'x'},
	}
	if !reflect.DeepEqual(cmds, want) {
		t.Errorf("commands = %#v", cmds)
	}
}

func TestZWJEmojiSequenceStaysOneCluster(t *testing.T) {
	// Woman + ZWJ + laptop: one grapheme cluster, three flagged runes.
	cmds := decodeAll(t, "\U0001F469\u200d\U0001F4BB")
	if len(cmds) != 3 {
		t.Fatalf("got %d commands", len(cmds))
	}
	first := cmds[0].(screen.AppendChar)
	if first.Consecutive {
		t.Error("cluster base must not be consecutive")
	}
	for i, c := range cmds[1:] {
		ac := c.(screen.AppendChar)
		if !ac.Consecutive {
			t.Errorf("rune %d not flagged consecutive", i+1)
		}
	}
}

func TestCursorStyleSequence(t *testing.T) {
	cmds := decodeAll(t, "\x1b[4 q")
	want := []screen.Command{screen.SetCursorStyle{
		Display: screen.CursorDisplaySteady,
		Shape:   screen.CursorShapeUnderscore,
	}}
	if !reflect.DeepEqual(cmds, want) {
		t.Errorf("commands = %#v", cmds)
	}
}

func TestDesignateCharsetAccepted(t *testing.T) {
	cmds := decodeAll(t, "\x1b(B")
	want := []screen.Command{screen.DesignateCharset{Slot: '(', Charset: 'B'}}
	if !reflect.DeepEqual(cmds, want) {
		t.Errorf("commands = %#v", cmds)
	}
}
