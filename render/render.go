// Copyright © 2026 vtscreen contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: render/render.go
// Summary: Resolves graphics attributes to concrete colors and draws a
//          screen onto a tcell surface.
// Usage: Pull-based; call Draw after applying a command batch.

package render

import (
	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/framegrace/vtscreen/screen"
)

// CellColors resolves a cell's rendition to the final (fg, bg) pair:
// Bold brightens indexed foregrounds, Faint halves the foreground
// toward the background, Inverse swaps the resolved pair and Hidden
// paints the foreground in the background color.
func (p *Profile) CellColors(attr screen.GraphicsAttributes) (fg, bg screen.RGB) {
	fgColor := attr.Foreground
	if attr.Styles&screen.StyleBold != 0 && fgColor.Mode == screen.ColorModeIndexed && fgColor.Index < 8 {
		fgColor = screen.IndexedColor(fgColor.Index + 8)
	}
	fg = p.resolve(fgColor, true)
	bg = p.resolve(attr.Background, false)

	if attr.Styles&screen.StyleFaint != 0 {
		fg = blend(fg, bg, 0.5)
	}
	if attr.Styles&screen.StyleInverse != 0 {
		fg, bg = bg, fg
	}
	if attr.Styles&screen.StyleHidden != 0 {
		fg = bg
	}
	return fg, bg
}

// UnderlineColor resolves the underline color slot; the default is
// "same as foreground".
func (p *Profile) UnderlineColor(attr screen.GraphicsAttributes) screen.RGB {
	if attr.Underline.Mode == screen.ColorModeUnderlineDefault ||
		attr.Underline.Mode == screen.ColorModeDefault {
		fg, _ := p.CellColors(attr)
		return fg
	}
	return p.resolve(attr.Underline, true)
}

func (p *Profile) resolve(c screen.Color, isForeground bool) screen.RGB {
	switch c.Mode {
	case screen.ColorModeDefault, screen.ColorModeUnderlineDefault:
		if isForeground {
			return p.Foreground
		}
		return p.Background
	case screen.ColorModeIndexed:
		return p.Palette[c.Index&0x0F]
	case screen.ColorModeBright:
		return p.Palette[8+c.Index&0x07]
	case screen.ColorModePalette:
		return p.Palette[c.Index]
	case screen.ColorModeRGB:
		return screen.RGB{R: c.R, G: c.G, B: c.B}
	}
	return p.Foreground
}

// blend mixes a toward b in RGB space; t=0 keeps a, t=1 yields b.
func blend(a, b screen.RGB, t float64) screen.RGB {
	ca := colorful.Color{R: float64(a.R) / 255, G: float64(a.G) / 255, B: float64(a.B) / 255}
	cb := colorful.Color{R: float64(b.R) / 255, G: float64(b.G) / 255, B: float64(b.B) / 255}
	m := ca.BlendRgb(cb, t).Clamped()
	return screen.RGB{R: uint8(m.R * 255), G: uint8(m.G * 255), B: uint8(m.B * 255)}
}

// Style converts a cell's attributes to a tcell style.
func (p *Profile) Style(attr screen.GraphicsAttributes, link *screen.Hyperlink) tcell.Style {
	fg, bg := p.CellColors(attr)
	st := tcell.StyleDefault.
		Foreground(tcell.NewRGBColor(int32(fg.R), int32(fg.G), int32(fg.B))).
		Background(tcell.NewRGBColor(int32(bg.R), int32(bg.G), int32(bg.B)))
	if attr.Styles&screen.StyleBold != 0 {
		st = st.Bold(true)
	}
	if attr.Styles&screen.StyleItalic != 0 {
		st = st.Italic(true)
	}
	if attr.Styles&screen.StyleBlinking != 0 {
		st = st.Blink(true)
	}
	if attr.Styles&screen.StyleCrossedOut != 0 {
		st = st.StrikeThrough(true)
	}
	if attr.Styles&screen.StyleFaint != 0 {
		st = st.Dim(true)
	}
	switch {
	case attr.Styles&screen.StyleDoublyUnderlined != 0:
		st = st.Underline(tcell.UnderlineStyleDouble)
	case attr.Styles&screen.StyleCurlyUnderlined != 0:
		st = st.Underline(tcell.UnderlineStyleCurly)
	case attr.Styles&screen.StyleDottedUnderline != 0:
		st = st.Underline(tcell.UnderlineStyleDotted)
	case attr.Styles&screen.StyleDashedUnderline != 0:
		st = st.Underline(tcell.UnderlineStyleDashed)
	case attr.Styles&screen.StyleUnderline != 0:
		st = st.Underline(true)
	}
	if link != nil {
		st = st.Url(link.URI).UrlId(link.ID)
	}
	return st
}

// Draw paints the visible grid (honoring the viewport offset) onto the
// tcell surface and places the cursor.
func Draw(s *screen.Screen, p *Profile, ts tcell.Screen) {
	s.Render(func(row, col int, cell *screen.Cell) {
		if cell.Width == 0 {
			return
		}
		style := p.Style(cell.Attributes, cell.Hyperlink)
		cps := cell.Codepoints()
		mainc := ' '
		var combc []rune
		if len(cps) > 0 {
			mainc = cps[0]
			combc = cps[1:]
		}
		ts.SetContent(col-1, row-1, mainc, combc, style)
	}, s.ScrollOffset())

	cursor := s.Cursor()
	if cursor.Visible && s.ScrollOffset() == 0 {
		ts.ShowCursor(cursor.Column-1, cursor.Row-1)
	} else {
		ts.HideCursor()
	}
}
