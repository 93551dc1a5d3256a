// Copyright © 2026 vtscreen contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: sequencer/sgr.go
// Summary: SGR decoding into color and rendition commands.
// Notes: Accepts both semicolon and colon forms for extended colors.

package sequencer

import "github.com/framegrace/vtscreen/screen"

// dispatchSGR walks the SGR parameter list and emits one command per
// style or color operation. An empty list means reset.
func (s *Sequencer) dispatchSGR() {
	if len(s.params) == 0 {
		s.emit(screen.SetGraphicsRendition{Rendition: screen.RenditionReset})
		return
	}
	for i := 0; i < len(s.params); i++ {
		p := s.params[i]
		switch p[0] {
		case 0:
			s.emit(screen.SetGraphicsRendition{Rendition: screen.RenditionReset})
		case 1:
			s.emit(screen.SetGraphicsRendition{Rendition: screen.RenditionBold})
		case 2:
			s.emit(screen.SetGraphicsRendition{Rendition: screen.RenditionFaint})
		case 3:
			s.emit(screen.SetGraphicsRendition{Rendition: screen.RenditionItalic})
		case 4:
			s.emit(screen.SetGraphicsRendition{Rendition: underlineVariant(p)})
		case 5, 6:
			s.emit(screen.SetGraphicsRendition{Rendition: screen.RenditionBlinking})
		case 7:
			s.emit(screen.SetGraphicsRendition{Rendition: screen.RenditionInverse})
		case 8:
			s.emit(screen.SetGraphicsRendition{Rendition: screen.RenditionHidden})
		case 9:
			s.emit(screen.SetGraphicsRendition{Rendition: screen.RenditionCrossedOut})
		case 21:
			s.emit(screen.SetGraphicsRendition{Rendition: screen.RenditionDoublyUnderlined})
		case 22:
			s.emit(screen.SetGraphicsRendition{Rendition: screen.RenditionNormalIntensity})
		case 23:
			s.emit(screen.SetGraphicsRendition{Rendition: screen.RenditionNoItalic})
		case 24:
			s.emit(screen.SetGraphicsRendition{Rendition: screen.RenditionNoUnderline})
		case 25:
			s.emit(screen.SetGraphicsRendition{Rendition: screen.RenditionNoBlinking})
		case 27:
			s.emit(screen.SetGraphicsRendition{Rendition: screen.RenditionNoInverse})
		case 28:
			s.emit(screen.SetGraphicsRendition{Rendition: screen.RenditionNoHidden})
		case 29:
			s.emit(screen.SetGraphicsRendition{Rendition: screen.RenditionNoCrossedOut})
		case 30, 31, 32, 33, 34, 35, 36, 37:
			s.emit(screen.SetForegroundColor{Color: screen.IndexedColor(uint8(p[0] - 30))})
		case 38:
			color, skip := s.extendedColor(i)
			i += skip
			s.emit(screen.SetForegroundColor{Color: color})
		case 39:
			s.emit(screen.SetForegroundColor{Color: screen.DefaultColor()})
		case 40, 41, 42, 43, 44, 45, 46, 47:
			s.emit(screen.SetBackgroundColor{Color: screen.IndexedColor(uint8(p[0] - 40))})
		case 48:
			color, skip := s.extendedColor(i)
			i += skip
			s.emit(screen.SetBackgroundColor{Color: color})
		case 49:
			s.emit(screen.SetBackgroundColor{Color: screen.DefaultColor()})
		case 51:
			s.emit(screen.SetGraphicsRendition{Rendition: screen.RenditionFramed})
		case 52:
			s.emit(screen.SetGraphicsRendition{Rendition: screen.RenditionEncircled})
		case 54:
			s.emit(screen.SetGraphicsRendition{Rendition: screen.RenditionNoFramedOrEncircled})
		case 58:
			color, skip := s.extendedColor(i)
			i += skip
			s.emit(screen.SetUnderlineColor{Color: color})
		case 59:
			s.emit(screen.SetUnderlineColor{Color: screen.UnderlineDefaultColor()})
		case 90, 91, 92, 93, 94, 95, 96, 97:
			s.emit(screen.SetForegroundColor{Color: screen.BrightColor(uint8(p[0] - 90))})
		case 100, 101, 102, 103, 104, 105, 106, 107:
			s.emit(screen.SetBackgroundColor{Color: screen.BrightColor(uint8(p[0] - 100))})
		}
	}
}

// underlineVariant maps SGR 4 with a subparameter to its styled form.
func underlineVariant(p []int) screen.GraphicsRendition {
	if len(p) < 2 {
		return screen.RenditionUnderline
	}
	switch p[1] {
	case 0:
		return screen.RenditionNoUnderline
	case 2:
		return screen.RenditionDoublyUnderlined
	case 3:
		return screen.RenditionCurlyUnderlined
	case 4:
		return screen.RenditionDottedUnderline
	case 5:
		return screen.RenditionDashedUnderline
	default:
		return screen.RenditionUnderline
	}
}

// extendedColor decodes a 38/48/58 color from either colon subparams
// (38:5:n, 38:2[:cs]:r:g:b) or semicolon params (38;5;n, 38;2;r;g;b).
// It returns the color and how many extra primary params it consumed.
func (s *Sequencer) extendedColor(i int) (screen.Color, int) {
	p := s.params[i]
	if len(p) >= 2 {
		// Colon form, self-contained in one parameter.
		switch p[1] {
		case 5:
			if len(p) >= 3 {
				return screen.PaletteColor(uint8(p[2])), 0
			}
		case 2:
			// With six or more values (38:2:cs:r:g:b), the third is a
			// colorspace id.
			if len(p) >= 6 {
				return screen.RGBColor(uint8(p[3]), uint8(p[4]), uint8(p[5])), 0
			}
			if len(p) >= 5 {
				return screen.RGBColor(uint8(p[2]), uint8(p[3]), uint8(p[4])), 0
			}
		}
		return screen.DefaultColor(), 0
	}
	// Semicolon form spans the following primary parameters.
	switch s.paramOrZero(i + 1) {
	case 5:
		return screen.PaletteColor(uint8(s.paramOrZero(i + 2))), 2
	case 2:
		return screen.RGBColor(
			uint8(s.paramOrZero(i+2)),
			uint8(s.paramOrZero(i+3)),
			uint8(s.paramOrZero(i+4)),
		), 4
	}
	return screen.DefaultColor(), 0
}
