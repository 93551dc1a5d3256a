// Copyright © 2026 vtscreen contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: screen/attributes.go
// Summary: Character style bitmask and the graphics attributes record.
// Usage: Carried by every cell; mutated through SGR commands.

package screen

import "strings"

// CharacterStyle is a bitmask of SGR text styles.
type CharacterStyle uint16

const (
	StyleBold CharacterStyle = 1 << iota
	StyleFaint
	StyleItalic
	StyleUnderline
	StyleBlinking
	StyleInverse
	StyleHidden
	StyleCrossedOut
	StyleDoublyUnderlined
	StyleCurlyUnderlined
	StyleDottedUnderline
	StyleDashedUnderline
	StyleFramed
	StyleEncircled

	// styleAnyUnderline groups every underline variant for bulk clears.
	styleAnyUnderline = StyleUnderline | StyleDoublyUnderlined |
		StyleCurlyUnderlined | StyleDottedUnderline | StyleDashedUnderline
)

var styleNames = []struct {
	bit  CharacterStyle
	name string
}{
	{StyleBold, "bold"},
	{StyleFaint, "faint"},
	{StyleItalic, "italic"},
	{StyleUnderline, "underline"},
	{StyleBlinking, "blinking"},
	{StyleInverse, "inverse"},
	{StyleHidden, "hidden"},
	{StyleCrossedOut, "crossed-out"},
	{StyleDoublyUnderlined, "doubly-underlined"},
	{StyleCurlyUnderlined, "curly-underlined"},
	{StyleDottedUnderline, "dotted-underline"},
	{StyleDashedUnderline, "dashed-underline"},
	{StyleFramed, "framed"},
	{StyleEncircled, "encircled"},
}

// String returns a human-readable representation of the style flags.
func (s CharacterStyle) String() string {
	if s == 0 {
		return "none"
	}
	var parts []string
	for _, sn := range styleNames {
		if s&sn.bit != 0 {
			parts = append(parts, sn.name)
		}
	}
	return strings.Join(parts, "|")
}

// GraphicsAttributes is the rendition applied to written cells:
// foreground, background and underline colors plus the style mask.
// Equality is field-wise, so values can be compared directly.
type GraphicsAttributes struct {
	Foreground Color
	Background Color
	Underline  Color
	Styles     CharacterStyle
}

// DefaultAttributes returns the rendition of an untouched cell.
func DefaultAttributes() GraphicsAttributes {
	return GraphicsAttributes{
		Foreground: DefaultColor(),
		Background: DefaultColor(),
		Underline:  UnderlineDefaultColor(),
	}
}
