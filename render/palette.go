// Copyright © 2026 vtscreen contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: render/palette.go
// Summary: The xterm 256-color palette and the default color profile.

package render

import "github.com/framegrace/vtscreen/screen"

// Profile carries the concrete colors the tagged variants resolve to:
// the configured default pair and the 256-entry palette.
type Profile struct {
	Foreground screen.RGB
	Background screen.RGB
	Palette    [256]screen.RGB
}

// base16 is the conventional xterm rendering of the 16 base colors.
var base16 = [16]screen.RGB{
	{R: 0x00, G: 0x00, B: 0x00}, // black
	{R: 0xcd, G: 0x00, B: 0x00}, // red
	{R: 0x00, G: 0xcd, B: 0x00}, // green
	{R: 0xcd, G: 0xcd, B: 0x00}, // yellow
	{R: 0x00, G: 0x00, B: 0xee}, // blue
	{R: 0xcd, G: 0x00, B: 0xcd}, // magenta
	{R: 0x00, G: 0xcd, B: 0xcd}, // cyan
	{R: 0xe5, G: 0xe5, B: 0xe5}, // white
	{R: 0x7f, G: 0x7f, B: 0x7f}, // bright black
	{R: 0xff, G: 0x00, B: 0x00}, // bright red
	{R: 0x00, G: 0xff, B: 0x00}, // bright green
	{R: 0xff, G: 0xff, B: 0x00}, // bright yellow
	{R: 0x5c, G: 0x5c, B: 0xff}, // bright blue
	{R: 0xff, G: 0x00, B: 0xff}, // bright magenta
	{R: 0x00, G: 0xff, B: 0xff}, // bright cyan
	{R: 0xff, G: 0xff, B: 0xff}, // bright white
}

// DefaultProfile returns a light-on-dark profile with the standard
// xterm palette: 16 base colors, a 6x6x6 color cube and 24 grays.
func DefaultProfile() *Profile {
	p := &Profile{
		Foreground: screen.RGB{R: 0xe5, G: 0xe5, B: 0xe5},
		Background: screen.RGB{R: 0x00, G: 0x00, B: 0x00},
	}
	copy(p.Palette[:16], base16[:])
	cubeLevel := func(i int) uint8 {
		if i == 0 {
			return 0
		}
		return uint8(55 + 40*i)
	}
	for i := 0; i < 216; i++ {
		p.Palette[16+i] = screen.RGB{
			R: cubeLevel(i / 36),
			G: cubeLevel(i / 6 % 6),
			B: cubeLevel(i % 6),
		}
	}
	for i := 0; i < 24; i++ {
		v := uint8(8 + 10*i)
		p.Palette[232+i] = screen.RGB{R: v, G: v, B: v}
	}
	return p
}
