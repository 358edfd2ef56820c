// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtOpen  = "["
	_fmtClose = "]"
	_fmtSep   = ", "
)

// render writes a width×height block as nested rows: "[[a, b], [c, d]]".
// Zero rows render as "[]"; rows of zero width render as "[]" each.
// Complexity: O(w*h).
func render[T any](width, height int, at func(x, y int) T) string {
	var b strings.Builder
	var x, y int
	b.WriteString(_fmtOpen)
	for y = 0; y < height; y++ {
		if y > 0 {
			b.WriteString(_fmtSep)
		}
		b.WriteString(_fmtOpen)
		for x = 0; x < width; x++ {
			if x > 0 {
				b.WriteString(_fmtSep)
			}
			fmt.Fprint(&b, at(x, y))
		}
		b.WriteString(_fmtClose)
	}
	b.WriteString(_fmtClose)

	return b.String()
}
