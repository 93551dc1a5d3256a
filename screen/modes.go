// Copyright © 2026 vtscreen contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: screen/modes.go
// Summary: ANSI and DEC private modes tracked by the screen.
// Usage: Mutated via SM/RM and DECSET/DECRST; queried via DECRQM.

package screen

// Mode enumerates the ANSI and DEC private modes with observable
// effects on the core, plus the forwarded input-side modes.
type Mode int

const (
	// ANSI modes (SM/RM).
	ModeKeyboardAction Mode = iota // KAM, tracked only
	ModeInsert                     // IRM, text path shifts instead of overwriting
	ModeSendReceive                // SRM, tracked only
	ModeAutomaticNewline           // LNM, tracked only

	// DEC private modes (DECSET/DECRST).
	ModeUseApplicationCursorKeys // DECCKM, forwarded
	ModeDesignateCharsetUSASCII  // DECANM leftover, tracked only
	ModeColumns132               // DECCOLM, tracked only
	ModeSmoothScroll             // DECSCLM, tracked only
	ModeReverseVideo             // DECSCNM, tracked only
	ModeOrigin                   // DECOM, remaps coordinates to the margin
	ModeAutoWrap                 // DECAWM, governs the wrap in appendChar
	ModeAutoRepeat               // DECARM, tracked only
	ModeShowToolbar              // xterm 10, tracked only
	ModeBlinkingCursor           // xterm 12, tracked only
	ModePrinterExtend            // DECPEX, tracked only
	ModeVisibleCursor            // DECTCEM, toggles cursor visibility
	ModeShowScrollbar            // xterm 30, tracked only
	ModeLeftRightMargin          // DECLRMM, enables horizontal margins
	ModeMouseProtocolX10
	ModeMouseProtocolNormal
	ModeMouseProtocolHighlight
	ModeMouseProtocolButton
	ModeMouseProtocolAny
	ModeFocusEvents    // xterm 1004, forwarded
	ModeMouseExtended  // 1005, UTF-8 transport
	ModeMouseSGR       // 1006, SGR transport
	ModeMouseURXVT     // 1015, URXVT transport
	ModeMouseAlternateScroll // 1007, wheel-to-cursor-keys on alt screen
	ModeUseAlternateScreen   // 1049, switches the active buffer
	ModeBracketedPaste       // 2004, forwarded
)

var modeNumbers = map[Mode]struct {
	number  int
	private bool
}{
	ModeKeyboardAction:   {2, false},
	ModeInsert:           {4, false},
	ModeSendReceive:      {12, false},
	ModeAutomaticNewline: {20, false},

	ModeUseApplicationCursorKeys: {1, true},
	ModeDesignateCharsetUSASCII:  {2, true},
	ModeColumns132:               {3, true},
	ModeSmoothScroll:             {4, true},
	ModeReverseVideo:             {5, true},
	ModeOrigin:                   {6, true},
	ModeAutoWrap:                 {7, true},
	ModeAutoRepeat:               {8, true},
	ModeShowToolbar:              {10, true},
	ModeBlinkingCursor:           {12, true},
	ModePrinterExtend:            {19, true},
	ModeVisibleCursor:            {25, true},
	ModeShowScrollbar:            {30, true},
	ModeLeftRightMargin:          {69, true},
	ModeMouseProtocolX10:         {9, true},
	ModeMouseProtocolNormal:      {1000, true},
	ModeMouseProtocolHighlight:   {1001, true},
	ModeMouseProtocolButton:      {1002, true},
	ModeMouseProtocolAny:         {1003, true},
	ModeFocusEvents:              {1004, true},
	ModeMouseExtended:            {1005, true},
	ModeMouseSGR:                 {1006, true},
	ModeMouseURXVT:               {1015, true},
	ModeMouseAlternateScroll:     {1007, true},
	ModeUseAlternateScreen:       {1049, true},
	ModeBracketedPaste:           {2004, true},
}

// Number returns the SM/RM (or DECSET/DECRST) parameter for the mode.
func (m Mode) Number() int { return modeNumbers[m].number }

// Private reports whether the mode is a DEC private ('?'-prefixed) mode.
func (m Mode) Private() bool { return modeNumbers[m].private }

// ModeFromNumber resolves a mode parameter back to a Mode.
func ModeFromNumber(number int, private bool) (Mode, bool) {
	for m, v := range modeNumbers {
		if v.number == number && v.private == private {
			return m, true
		}
	}
	return 0, false
}

// modeSet is the set of enabled modes of one buffer.
type modeSet map[Mode]bool

func (s modeSet) enabled(m Mode) bool { return s[m] }

func (s modeSet) set(m Mode, enable bool) {
	if enable {
		s[m] = true
	} else {
		delete(s, m)
	}
}
