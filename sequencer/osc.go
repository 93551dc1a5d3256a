// Copyright © 2026 vtscreen contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: sequencer/osc.go
// Summary: OSC string collection: titles, hyperlinks, dynamic colors,
//          notifications.

package sequencer

import (
	"log"
	"strconv"
	"strings"

	"github.com/framegrace/vtscreen/screen"
)

func (s *Sequencer) processOSC(r rune) {
	switch r {
	case '\x1b':
		s.state = stateOSCEscape
	case '\a':
		s.dispatchOSC()
	default:
		s.oscBuf = append(s.oscBuf, r)
	}
}

func (s *Sequencer) dispatchOSC() {
	s.state = stateGround
	payload := string(s.oscBuf)
	s.oscBuf = s.oscBuf[:0]

	code := payload
	rest := ""
	if idx := strings.IndexByte(payload, ';'); idx >= 0 {
		code = payload[:idx]
		rest = payload[idx+1:]
	}
	n, err := strconv.Atoi(code)
	if err != nil {
		if s.logTrace {
			log.Printf("sequencer: malformed OSC %q", payload)
		}
		return
	}

	switch n {
	case 0, 2:
		s.emit(screen.ChangeWindowTitle{Title: rest})
	case 1:
		// Icon name, not tracked.
	case 8:
		s.dispatchHyperlink(rest)
	case 10, 11, 12, 13, 14:
		name := screen.DynamicColorName(n - 10)
		if rest == "?" {
			s.emit(screen.RequestDynamicColor{Name: name})
		} else if color, ok := parseColorSpec(rest); ok {
			s.emit(screen.SetDynamicColor{Name: name, Color: color})
		} else if s.logTrace {
			log.Printf("sequencer: bad color spec %q for OSC %d", rest, n)
		}
	case 110, 111, 112, 113, 114:
		s.emit(screen.ResetDynamicColor{Name: screen.DynamicColorName(n - 110)})
	case 777:
		s.dispatchNotify(rest)
	default:
		if s.logTrace {
			log.Printf("sequencer: unhandled OSC %d;%q", n, rest)
		}
	}
}

// dispatchHyperlink parses "params;uri" where params may carry id=...;
// an empty uri closes the hyperlink context.
func (s *Sequencer) dispatchHyperlink(rest string) {
	idx := strings.IndexByte(rest, ';')
	if idx < 0 {
		s.emit(screen.Hyperlinked{})
		return
	}
	params, uri := rest[:idx], rest[idx+1:]
	var id string
	for _, kv := range strings.Split(params, ":") {
		if v, ok := strings.CutPrefix(kv, "id="); ok {
			id = v
		}
	}
	s.emit(screen.Hyperlinked{ID: id, URI: uri})
}

// dispatchNotify parses the rxvt "notify;title;body" form.
func (s *Sequencer) dispatchNotify(rest string) {
	parts := strings.SplitN(rest, ";", 3)
	if len(parts) < 3 || parts[0] != "notify" {
		if s.logTrace {
			log.Printf("sequencer: unhandled OSC 777;%q", rest)
		}
		return
	}
	s.emit(screen.Notify{Title: parts[1], Body: parts[2]})
}

// parseColorSpec accepts "rgb:RR/GG/BB" (1-4 hex digits per channel)
// and "#RRGGBB".
func parseColorSpec(spec string) (screen.RGB, bool) {
	if v, ok := strings.CutPrefix(spec, "rgb:"); ok {
		parts := strings.Split(v, "/")
		if len(parts) != 3 {
			return screen.RGB{}, false
		}
		var ch [3]uint8
		for i, part := range parts {
			val, err := strconv.ParseUint(part, 16, 16)
			if err != nil || len(part) == 0 || len(part) > 4 {
				return screen.RGB{}, false
			}
			// Scale to 8 bits from however many digits were given.
			max := uint64(1)<<(4*len(part)) - 1
			ch[i] = uint8(val * 255 / max)
		}
		return screen.RGB{R: ch[0], G: ch[1], B: ch[2]}, true
	}
	if v, ok := strings.CutPrefix(spec, "#"); ok && len(v) == 6 {
		val, err := strconv.ParseUint(v, 16, 32)
		if err != nil {
			return screen.RGB{}, false
		}
		return screen.RGB{R: uint8(val >> 16), G: uint8(val >> 8), B: uint8(val)}, true
	}
	return screen.RGB{}, false
}
