// Copyright © 2026 vtscreen contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: screen/color.go
// Summary: Tagged color variants used by the graphics rendition.
// Usage: Stored in cells; resolved to concrete RGB by the render adapter.

package screen

import "fmt"

// ColorMode selects which variant a Color carries.
type ColorMode int

const (
	// ColorModeDefault is the terminal's configured default color.
	ColorModeDefault ColorMode = iota
	// ColorModeIndexed is one of the 16 base colors (0..15).
	ColorModeIndexed
	// ColorModeBright is one of the 8 bright base colors (0..7).
	ColorModeBright
	// ColorModePalette is a 256-color palette entry (0..255).
	ColorModePalette
	// ColorModeRGB is 24-bit true color.
	ColorModeRGB
	// ColorModeUnderlineDefault means "same as the foreground color".
	// Only valid for the underline color slot.
	ColorModeUnderlineDefault
)

// Color is a tagged variant: Default, Indexed(0..15), Bright(0..7),
// Palette(0..255) or RGB. Comparison is field-wise.
type Color struct {
	Mode    ColorMode
	Index   uint8
	R, G, B uint8
}

// DefaultColor returns the terminal-default color.
func DefaultColor() Color { return Color{Mode: ColorModeDefault} }

// IndexedColor returns one of the 16 base colors.
func IndexedColor(index uint8) Color {
	return Color{Mode: ColorModeIndexed, Index: index & 0x0F}
}

// BrightColor returns one of the 8 bright base colors.
func BrightColor(index uint8) Color {
	return Color{Mode: ColorModeBright, Index: index & 0x07}
}

// PaletteColor returns a 256-color palette entry.
func PaletteColor(index uint8) Color {
	return Color{Mode: ColorModePalette, Index: index}
}

// RGBColor returns a 24-bit true color.
func RGBColor(r, g, b uint8) Color {
	return Color{Mode: ColorModeRGB, R: r, G: g, B: b}
}

// UnderlineDefaultColor marks the underline as "same as foreground".
func UnderlineDefaultColor() Color { return Color{Mode: ColorModeUnderlineDefault} }

// String returns a debug representation of the color.
func (c Color) String() string {
	switch c.Mode {
	case ColorModeDefault:
		return "default"
	case ColorModeIndexed:
		return fmt.Sprintf("indexed(%d)", c.Index)
	case ColorModeBright:
		return fmt.Sprintf("bright(%d)", c.Index)
	case ColorModePalette:
		return fmt.Sprintf("palette(%d)", c.Index)
	case ColorModeRGB:
		return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
	case ColorModeUnderlineDefault:
		return "underline-default"
	}
	return "invalid"
}

// RGB is a concrete resolved color, used by dynamic color queries.
type RGB struct {
	R, G, B uint8
}

// DynamicColorName identifies one of the dynamically settable colors
// of the OSC 10..14 family.
type DynamicColorName int

const (
	DynamicColorDefaultForeground DynamicColorName = iota
	DynamicColorDefaultBackground
	DynamicColorTextCursor
	DynamicColorMouseForeground
	DynamicColorMouseBackground
)

// oscCode returns the OSC function number used to set the color.
func (n DynamicColorName) oscCode() int { return 10 + int(n) }

// resetOSCCode returns the OSC function number used to reset the color.
func (n DynamicColorName) resetOSCCode() int { return 100 + n.oscCode() }
