// Copyright © 2026 vtscreen contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: screen/width.go
// Summary: Display-width classification of codepoints.
// Usage: Drives wide-cell placement and combining-mark detection.

package screen

import "github.com/mattn/go-runewidth"

// emojiPresentationSelector (U+FE0F) requests emoji presentation and
// forces the cluster to two columns.
const emojiPresentationSelector = '\uFE0F'

// runeDisplayWidth returns the column width of a codepoint: 0 for
// combining marks and other zero-width codepoints, 2 for wide East
// Asian characters and the emoji presentation selector, 1 otherwise.
func runeDisplayWidth(cp rune) int {
	if cp == emojiPresentationSelector {
		return 2
	}
	return runewidth.RuneWidth(cp)
}
