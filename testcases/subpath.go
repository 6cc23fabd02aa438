// seehuhn.de/go/svgrender - render SVG documents into pixel buffers
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package testcases

import "strings"

var subpath = []Document{
	{
		Name:   "two_triangles",
		Width:  64,
		Height: 64,
		SVG:    doc(64, 64, `<path d="M16,20 L28,44 H4 Z M48,20 L60,44 H36 Z"/>`),
	},
	{
		Name:   "overlapping_rect_nonzero",
		Width:  64,
		Height: 64,
		SVG:    doc(64, 64, fillPath("M10,10 H40 V40 H10 Z M24,24 H54 V54 H24 Z", "nonzero")),
	},
	{
		Name:   "overlapping_rect_evenodd",
		Width:  64,
		Height: 64,
		SVG:    doc(64, 64, fillPath("M10,10 H40 V40 H10 Z M24,24 H54 V54 H24 Z", "evenodd")),
	},
	{
		Name:   "ring_nonzero_reversed",
		Width:  64,
		Height: 64,
		SVG:    doc(64, 64, fillPath("M7,7 H57 V57 H7 Z M20,20 V44 H44 V20 Z", "nonzero")),
	},
	{
		Name:   "ring_evenodd",
		Width:  64,
		Height: 64,
		SVG:    doc(64, 64, fillPath("M7,7 H57 V57 H7 Z M20,20 H44 V44 H20 Z", "evenodd")),
	},
	{
		Name:   "relative_commands",
		Width:  64,
		Height: 64,
		SVG:    doc(64, 64, `<path d="m8,8 h20 v20 h-20 z m28,0 l20,0 l-10,20 z m-28,28 c0,20 20,20 20,0 z"/>`),
	},
	{
		Name:   "implicit_lineto",
		Width:  64,
		Height: 64,
		SVG:    doc(64, 64, strokePath("M8,56 20,8 32,56 44,8 56,56", `stroke-width="3" stroke-linejoin="round"`)),
	},
	{
		Name:   "lineto_after_close",
		Width:  64,
		Height: 64,
		SVG:    doc(64, 64, strokePath("M16,16 H48 V48 Z L16,56", `stroke-width="3"`)),
	},
	{
		Name:   "many_small_shapes",
		Width:  128,
		Height: 128,
		SVG:    doc(128, 128, `<path d="`+smallSquares(8, 8)+`"/>`),
	},
}

// smallSquares returns a grid of small squares, one subpath each.
func smallSquares(rows, cols int) string {
	var parts []string
	for i := range rows {
		for j := range cols {
			x := 4 + float64(j)*15
			y := 4 + float64(i)*15
			p := &pathData{}
			p.M(x, y).L(x+10, y).L(x+10, y+10).L(x, y+10).Z()
			parts = append(parts, p.String())
		}
	}
	return strings.Join(parts, " ")
}
