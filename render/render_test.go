// Copyright © 2026 vtscreen contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: render/render_test.go
// Summary: Tests for color resolution: palette, bold, faint, inverse.

package render

import (
	"testing"

	"github.com/framegrace/vtscreen/screen"
)

func TestPaletteCubeAndGrays(t *testing.T) {
	p := DefaultProfile()
	// 16 + 36r + 6g + b: entry 196 is pure red in the cube.
	if got := p.Palette[196]; got != (screen.RGB{R: 0xff}) {
		t.Errorf("palette[196] = %+v, want pure red", got)
	}
	if got := p.Palette[16]; got != (screen.RGB{}) {
		t.Errorf("palette[16] = %+v, want black", got)
	}
	if got := p.Palette[232]; got != (screen.RGB{R: 8, G: 8, B: 8}) {
		t.Errorf("palette[232] = %+v", got)
	}
}

func TestBoldBrightensIndexedForeground(t *testing.T) {
	p := DefaultProfile()
	attr := screen.DefaultAttributes()
	attr.Foreground = screen.IndexedColor(1)
	attr.Styles = screen.StyleBold
	fg, _ := p.CellColors(attr)
	if fg != p.Palette[9] {
		t.Errorf("bold indexed fg = %+v, want bright red %+v", fg, p.Palette[9])
	}
}

func TestFaintBlendsTowardBackground(t *testing.T) {
	p := DefaultProfile()
	attr := screen.DefaultAttributes()
	attr.Foreground = screen.RGBColor(200, 200, 200)
	attr.Background = screen.RGBColor(0, 0, 0)
	attr.Styles = screen.StyleFaint
	fg, _ := p.CellColors(attr)
	if fg.R < 95 || fg.R > 105 {
		t.Errorf("faint fg = %+v, want roughly half of 200", fg)
	}
}

func TestInverseSwapsResolvedPair(t *testing.T) {
	p := DefaultProfile()
	attr := screen.DefaultAttributes()
	attr.Styles = screen.StyleInverse
	fg, bg := p.CellColors(attr)
	if fg != p.Background || bg != p.Foreground {
		t.Errorf("inverse pair = fg %+v bg %+v", fg, bg)
	}
}

func TestHiddenPaintsForegroundAsBackground(t *testing.T) {
	p := DefaultProfile()
	attr := screen.DefaultAttributes()
	attr.Styles = screen.StyleHidden
	fg, bg := p.CellColors(attr)
	if fg != bg {
		t.Errorf("hidden fg %+v != bg %+v", fg, bg)
	}
}

func TestUnderlineDefaultFollowsForeground(t *testing.T) {
	p := DefaultProfile()
	attr := screen.DefaultAttributes()
	attr.Foreground = screen.RGBColor(1, 2, 3)
	if got := p.UnderlineColor(attr); got != (screen.RGB{R: 1, G: 2, B: 3}) {
		t.Errorf("underline color = %+v, want the foreground", got)
	}
}
