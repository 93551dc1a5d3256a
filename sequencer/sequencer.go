// Copyright © 2026 vtscreen contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: sequencer/sequencer.go
// Summary: VT/xterm escape-sequence state machine producing commands.
// Usage: Feed PTY output to Decode; apply the returned batch to a
//        screen.Screen.
// Notes: The screen core only depends on the Command set; this decoder
//        is one producer of it.

package sequencer

import (
	"log"
	"unicode/utf8"

	"github.com/rivo/uniseg"

	"github.com/framegrace/vtscreen/screen"
)

type state int

const (
	stateGround state = iota
	stateEscape
	stateEscapeIntermediate
	stateCSI
	stateOSC
	stateOSCEscape
	stateDCS
	stateDCSEscape
)

// Sequencer converts a raw byte stream into display commands. It keeps
// partial UTF-8 runes and unfinished sequences across Decode calls.
type Sequencer struct {
	state state

	utf8Buf [utf8.UTFMax]byte
	utf8Len int

	params       [][]int
	curParam     []int
	hasParam     bool
	private      byte
	intermediate byte

	oscBuf []rune
	dcsBuf []rune

	// clusterBuf holds the runes of the grapheme cluster currently
	// being written, so combining codepoints can be flagged as
	// consecutive to their base.
	clusterBuf []rune

	escIntermediate byte

	out []screen.Command

	logTrace bool
}

// Option configures a Sequencer.
type Option func(*Sequencer)

// WithLogTrace logs sequences the decoder does not understand.
func WithLogTrace(enabled bool) Option {
	return func(s *Sequencer) { s.logTrace = enabled }
}

// New creates an empty decoder in ground state.
func New(opts ...Option) *Sequencer {
	s := &Sequencer{
		params:     make([][]int, 0, 16),
		curParam:   make([]int, 0, 4),
		oscBuf:     make([]rune, 0, 128),
		dcsBuf:     make([]rune, 0, 128),
		clusterBuf: make([]rune, 0, 8),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Decode consumes a chunk of PTY output and returns the commands it
// completes. State carries over, so sequences may span chunks.
func (s *Sequencer) Decode(p []byte) []screen.Command {
	s.out = s.out[:0]
	for _, b := range p {
		if s.utf8Len > 0 {
			s.utf8Buf[s.utf8Len] = b
			s.utf8Len++
			if utf8.FullRune(s.utf8Buf[:s.utf8Len]) || s.utf8Len == utf8.UTFMax {
				r, _ := utf8.DecodeRune(s.utf8Buf[:s.utf8Len])
				s.utf8Len = 0
				s.process(r)
			}
			continue
		}
		if b >= 0x80 {
			s.utf8Buf[0] = b
			s.utf8Len = 1
			continue
		}
		s.process(rune(b))
	}
	return s.out
}

func (s *Sequencer) emit(cmd screen.Command) {
	s.out = append(s.out, cmd)
}

// process advances the state machine by one decoded rune.
func (s *Sequencer) process(r rune) {
	switch s.state {
	case stateGround:
		s.processGround(r)
	case stateEscape:
		s.processEscape(r)
	case stateEscapeIntermediate:
		s.processEscapeIntermediate(r)
	case stateCSI:
		s.processCSI(r)
	case stateOSC:
		s.processOSC(r)
	case stateOSCEscape:
		if r == '\\' {
			s.dispatchOSC()
		} else {
			// Lone ESC aborts the OSC; reprocess as a new sequence.
			s.state = stateEscape
			s.processEscape(r)
		}
	case stateDCS:
		if r == '\x1b' {
			s.state = stateDCSEscape
		} else if r == '\a' {
			s.dispatchDCS()
		} else {
			s.dcsBuf = append(s.dcsBuf, r)
		}
	case stateDCSEscape:
		if r == '\\' {
			s.dispatchDCS()
		} else {
			s.state = stateEscape
			s.processEscape(r)
		}
	}
}

func (s *Sequencer) processGround(r rune) {
	switch r {
	case '\x1b':
		s.breakCluster()
		s.state = stateEscape
		s.escIntermediate = 0
	case '\a':
		s.breakCluster()
		s.emit(screen.Bell{})
	case '\b':
		s.breakCluster()
		s.emit(screen.Backspace{})
	case '\t':
		s.breakCluster()
		s.emit(screen.MoveCursorToNextTab{N: 1})
	case '\n', '\v', '\f':
		s.breakCluster()
		s.emit(screen.Linefeed{})
	case '\r':
		s.breakCluster()
		s.emit(screen.CarriageReturn{})
	case '\x0e', '\x0f':
		// SO/SI charset shifts: accepted, not interpreted.
		s.breakCluster()
		s.emit(screen.SingleShiftSelect{Slot: r})
	case '\x7f':
		// DEL is ignored on output.
	default:
		if r >= ' ' {
			s.appendText(r)
		}
	}
}

// appendText emits a graphic codepoint, flagging it consecutive when it
// extends the grapheme cluster written just before.
func (s *Sequencer) appendText(r rune) {
	consecutive := false
	if len(s.clusterBuf) > 0 {
		extended := append(s.clusterBuf, r)
		if uniseg.GraphemeClusterCount(string(extended)) == 1 {
			s.clusterBuf = extended
			consecutive = true
		} else {
			s.clusterBuf = append(s.clusterBuf[:0], r)
		}
	} else {
		s.clusterBuf = append(s.clusterBuf, r)
	}
	s.emit(screen.AppendChar{Char: r, Consecutive: consecutive})
}

// breakCluster forgets the pending grapheme cluster; any following
// combining mark starts its own cell.
func (s *Sequencer) breakCluster() {
	s.clusterBuf = s.clusterBuf[:0]
}

func (s *Sequencer) processEscape(r rune) {
	switch r {
	case '[':
		s.state = stateCSI
		s.params = s.params[:0]
		s.curParam = s.curParam[:0]
		s.hasParam = false
		s.private = 0
		s.intermediate = 0
	case ']':
		s.state = stateOSC
		s.oscBuf = s.oscBuf[:0]
	case 'P':
		s.state = stateDCS
		s.dcsBuf = s.dcsBuf[:0]
	case '(', ')', '*', '+', '#', '%':
		s.escIntermediate = byte(r)
		s.state = stateEscapeIntermediate
	case '7':
		s.emit(screen.SaveCursor{})
		s.state = stateGround
	case '8':
		s.emit(screen.RestoreCursor{})
		s.state = stateGround
	case 'D':
		s.emit(screen.Index{})
		s.state = stateGround
	case 'E':
		s.emit(screen.NextLine{})
		s.state = stateGround
	case 'H':
		s.emit(screen.HorizontalTabSet{})
		s.state = stateGround
	case 'M':
		s.emit(screen.ReverseIndex{})
		s.state = stateGround
	case '6':
		s.emit(screen.BackIndex{})
		s.state = stateGround
	case '9':
		s.emit(screen.ForwardIndex{})
		s.state = stateGround
	case 'c':
		s.emit(screen.FullReset{})
		s.state = stateGround
	case '=':
		s.emit(screen.ApplicationKeypadMode{Enable: true})
		s.state = stateGround
	case '>':
		s.emit(screen.ApplicationKeypadMode{Enable: false})
		s.state = stateGround
	case 'N', 'O':
		s.emit(screen.SingleShiftSelect{Slot: r})
		s.state = stateGround
	case '\\':
		// Stray string terminator.
		s.state = stateGround
	default:
		if s.logTrace {
			log.Printf("sequencer: unhandled ESC %q", r)
		}
		s.state = stateGround
	}
}

func (s *Sequencer) processEscapeIntermediate(r rune) {
	switch s.escIntermediate {
	case '#':
		if r == '8' {
			s.emit(screen.ScreenAlignmentPattern{})
		} else if s.logTrace {
			log.Printf("sequencer: unhandled ESC # %q", r)
		}
	case '(', ')', '*', '+':
		s.emit(screen.DesignateCharset{Slot: rune(s.escIntermediate), Charset: r})
	default:
		if s.logTrace {
			log.Printf("sequencer: unhandled ESC %c %q", s.escIntermediate, r)
		}
	}
	s.state = stateGround
}

func (s *Sequencer) dispatchDCS() {
	if s.logTrace {
		log.Printf("sequencer: ignoring DCS %q", string(s.dcsBuf))
	}
	s.state = stateGround
}
