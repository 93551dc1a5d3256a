// Copyright © 2026 vtscreen contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: sequencer/csi.go
// Summary: CSI parameter collection and dispatch to commands.
// Notes: Parameters keep their colon-separated subparameters so SGR
//        underline variants and extended colors decode correctly.

package sequencer

import (
	"log"

	"github.com/framegrace/vtscreen/screen"
)

func (s *Sequencer) processCSI(r rune) {
	switch {
	case r >= '0' && r <= '9':
		if len(s.curParam) == 0 {
			s.curParam = append(s.curParam, 0)
		}
		last := len(s.curParam) - 1
		s.curParam[last] = s.curParam[last]*10 + int(r-'0')
		s.hasParam = true
	case r == ':':
		s.curParam = append(s.curParam, 0)
		s.hasParam = true
	case r == ';':
		s.pushParam()
	case r >= '<' && r <= '?':
		s.private = byte(r)
	case r >= ' ' && r <= '/':
		s.intermediate = byte(r)
	case r >= '@' && r <= '~':
		if s.hasParam || len(s.params) > 0 {
			s.pushParam()
		}
		s.dispatchCSI(byte(r))
		s.state = stateGround
	case r == '\x1b':
		s.state = stateEscape
	case r < ' ':
		// C0 controls execute inside a control sequence.
		s.processGround(r)
	}
}

func (s *Sequencer) pushParam() {
	if len(s.curParam) == 0 {
		s.curParam = append(s.curParam, 0)
	}
	s.params = append(s.params, append([]int(nil), s.curParam...))
	s.curParam = s.curParam[:0]
}

// param returns the i-th primary parameter, or def when absent or zero.
func (s *Sequencer) param(i, def int) int {
	if i >= len(s.params) || len(s.params[i]) == 0 || s.params[i][0] == 0 {
		return def
	}
	return s.params[i][0]
}

// paramOrZero returns the i-th primary parameter with no defaulting.
func (s *Sequencer) paramOrZero(i int) int {
	if i >= len(s.params) || len(s.params[i]) == 0 {
		return 0
	}
	return s.params[i][0]
}

func (s *Sequencer) dispatchCSI(final byte) {
	switch final {
	case '@':
		s.emit(screen.InsertCharacters{N: s.param(0, 1)})
	case 'A':
		s.emit(screen.MoveCursorUp{N: s.param(0, 1)})
	case 'B':
		s.emit(screen.MoveCursorDown{N: s.param(0, 1)})
	case 'C':
		s.emit(screen.MoveCursorForward{N: s.param(0, 1)})
	case 'D':
		s.emit(screen.MoveCursorBackward{N: s.param(0, 1)})
	case 'E':
		s.emit(screen.CursorNextLine{N: s.param(0, 1)})
	case 'F':
		s.emit(screen.CursorPreviousLine{N: s.param(0, 1)})
	case 'G':
		s.emit(screen.MoveCursorToColumn{Column: s.param(0, 1)})
	case 'H', 'f':
		s.emit(screen.MoveCursorTo{Row: s.param(0, 1), Column: s.param(1, 1)})
	case 'I':
		s.emit(screen.MoveCursorToNextTab{N: s.param(0, 1)})
	case 'J':
		switch s.paramOrZero(0) {
		case 0:
			s.emit(screen.ClearToEndOfScreen{})
		case 1:
			s.emit(screen.ClearToBeginOfScreen{})
		case 2:
			s.emit(screen.ClearScreen{})
		case 3:
			s.emit(screen.ClearScrollbackBuffer{})
		}
	case 'K':
		switch s.paramOrZero(0) {
		case 0:
			s.emit(screen.ClearToEndOfLine{})
		case 1:
			s.emit(screen.ClearToBeginOfLine{})
		case 2:
			s.emit(screen.ClearLine{})
		}
	case 'L':
		s.emit(screen.InsertLines{N: s.param(0, 1)})
	case 'M':
		s.emit(screen.DeleteLines{N: s.param(0, 1)})
	case 'P':
		s.emit(screen.DeleteCharacters{N: s.param(0, 1)})
	case 'S':
		s.emit(screen.ScrollUp{N: s.param(0, 1)})
	case 'T':
		s.emit(screen.ScrollDown{N: s.param(0, 1)})
	case 'X':
		s.emit(screen.EraseCharacters{N: s.param(0, 1)})
	case 'Z':
		s.emit(screen.CursorBackwardTab{N: s.param(0, 1)})
	case '`':
		s.emit(screen.MoveCursorToColumn{Column: s.param(0, 1)})
	case 'a':
		s.emit(screen.HorizontalPositionRelative{N: s.param(0, 1)})
	case 'b':
		s.emit(screen.RepeatLastCharacter{Count: s.param(0, 1)})
	case 'c':
		if s.private == '>' {
			s.emit(screen.SendTerminalId{})
		} else {
			s.emit(screen.SendDeviceAttributes{})
		}
	case 'd':
		s.emit(screen.MoveCursorToLine{Line: s.param(0, 1)})
	case 'e':
		s.emit(screen.VerticalPositionRelative{N: s.param(0, 1)})
	case 'g':
		switch s.paramOrZero(0) {
		case 0:
			s.emit(screen.HorizontalTabClear{Which: screen.TabClearUnderCursor})
		case 3:
			s.emit(screen.HorizontalTabClear{Which: screen.TabClearAllTabs})
		}
	case 'h':
		s.dispatchModes(true)
	case 'l':
		s.dispatchModes(false)
	case 'm':
		if s.private == '>' {
			// XTMODKEYS, not interpreted.
			return
		}
		s.dispatchSGR()
	case 'n':
		switch s.paramOrZero(0) {
		case 5:
			s.emit(screen.DeviceStatusReport{})
		case 6:
			if s.private == '?' {
				s.emit(screen.ReportExtendedCursorPosition{})
			} else {
				s.emit(screen.ReportCursorPosition{})
			}
		}
	case 'p':
		switch s.intermediate {
		case '!':
			s.emit(screen.SoftTerminalReset{})
		case '$':
			s.emit(screen.RequestMode{Number: s.paramOrZero(0), Private: s.private == '?'})
		default:
			s.logUnhandledCSI(final)
		}
	case 'q':
		if s.intermediate == ' ' {
			s.emit(cursorStyleCommand(s.paramOrZero(0)))
		} else {
			s.logUnhandledCSI(final)
		}
	case 'r':
		if s.private == '?' {
			s.emit(screen.RestoreModes{Modes: s.modeList()})
		} else {
			s.emit(screen.SetTopBottomMargin{Top: s.paramOrZero(0), Bottom: s.paramOrZero(1)})
		}
	case 's':
		switch {
		case s.private == '?':
			s.emit(screen.SaveModes{Modes: s.modeList()})
		case len(s.params) > 0:
			s.emit(screen.SetLeftRightMargin{Left: s.paramOrZero(0), Right: s.paramOrZero(1)})
		default:
			s.emit(screen.SaveCursor{})
		}
	case 't':
		s.dispatchWindowOps()
	case 'u':
		s.emit(screen.RestoreCursor{})
	case 'w':
		if s.intermediate == '$' && s.paramOrZero(0) == 2 {
			s.emit(screen.RequestTabStops{})
		} else {
			s.logUnhandledCSI(final)
		}
	case '}':
		if s.intermediate == '\'' {
			s.emit(screen.InsertColumns{N: s.param(0, 1)})
		} else {
			s.logUnhandledCSI(final)
		}
	case '~':
		if s.intermediate == '\'' {
			s.emit(screen.DeleteColumns{N: s.param(0, 1)})
		} else {
			s.logUnhandledCSI(final)
		}
	default:
		s.logUnhandledCSI(final)
	}
}

func (s *Sequencer) logUnhandledCSI(final byte) {
	if s.logTrace {
		log.Printf("sequencer: unhandled CSI %c%v%c%c", s.private, s.params, s.intermediate, final)
	}
}

// modeList resolves every parameter to a DEC private mode, dropping
// numbers the screen does not track.
func (s *Sequencer) modeList() []screen.Mode {
	modes := make([]screen.Mode, 0, len(s.params))
	for i := range s.params {
		if m, ok := screen.ModeFromNumber(s.paramOrZero(i), true); ok {
			modes = append(modes, m)
		}
	}
	return modes
}

// dispatchModes handles SM/RM and DECSET/DECRST.
func (s *Sequencer) dispatchModes(enable bool) {
	private := s.private == '?'
	for i := range s.params {
		n := s.paramOrZero(i)
		if private {
			// Legacy alternate-screen variants share 1049 semantics.
			switch n {
			case 47, 1047:
				s.emit(screen.SetMode{Mode: screen.ModeUseAlternateScreen, Enable: enable})
				continue
			case 1048:
				if enable {
					s.emit(screen.SaveCursor{})
				} else {
					s.emit(screen.RestoreCursor{})
				}
				continue
			}
		}
		if m, ok := screen.ModeFromNumber(n, private); ok {
			s.emit(screen.SetMode{Mode: m, Enable: enable})
		} else if s.logTrace {
			log.Printf("sequencer: unknown mode %d (private=%v)", n, private)
		}
	}
}

// dispatchWindowOps handles the XTWINOPS family.
func (s *Sequencer) dispatchWindowOps() {
	switch s.paramOrZero(0) {
	case 4:
		s.emit(screen.ResizeWindow{Rows: s.paramOrZero(1), Columns: s.paramOrZero(2), InPixels: true})
	case 8:
		s.emit(screen.ResizeWindow{Rows: s.paramOrZero(1), Columns: s.paramOrZero(2), InPixels: false})
	case 22:
		s.emit(screen.SaveWindowTitle{})
	case 23:
		s.emit(screen.RestoreWindowTitle{})
	default:
		if s.logTrace {
			log.Printf("sequencer: unhandled XTWINOPS %d", s.paramOrZero(0))
		}
	}
}

func cursorStyleCommand(p int) screen.Command {
	display := screen.CursorDisplayBlinking
	if p != 0 && p%2 == 0 {
		display = screen.CursorDisplaySteady
	}
	shape := screen.CursorShapeBlock
	switch p {
	case 3, 4:
		shape = screen.CursorShapeUnderscore
	case 5, 6:
		shape = screen.CursorShapeBar
	}
	return screen.SetCursorStyle{Display: display, Shape: shape}
}
