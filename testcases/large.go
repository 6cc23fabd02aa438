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

import (
	"fmt"
	"strings"
)

var large = []Document{
	{
		Name:   "rectangle",
		Width:  512,
		Height: 512,
		SVG:    doc(512, 512, `<rect x="50" y="50" width="412" height="412"/>`),
	},
	{
		Name:   "concentric_nonzero",
		Width:  512,
		Height: 512,
		SVG:    doc(512, 512, fillPath(concentric(256, 256, 200, 100), "nonzero")),
	},
	{
		Name:   "concentric_evenodd",
		Width:  512,
		Height: 512,
		SVG:    doc(512, 512, fillPath(concentric(256, 256, 200, 100), "evenodd")),
	},
	{
		Name:   "diamond",
		Width:  512,
		Height: 512,
		SVG:    doc(512, 512, `<polygon points="256,76 436,256 256,436 76,256"/>`),
	},
	{
		Name:   "grid",
		Width:  512,
		Height: 512,
		SVG:    doc(512, 512, grid(8, 8, 512, 512, 4)),
	},
	{
		Name:   "clipped",
		Width:  512,
		Height: 512,
		SVG:    doc(512, 512, `<rect x="-100" y="100" width="712" height="300"/>`),
	},
}

// concentric returns two squares around (cx, cy), both counter-clockwise.
func concentric(cx, cy, outer, inner float64) string {
	p := &pathData{}
	for _, r := range []float64{outer, inner} {
		p.M(cx-r, cy-r).L(cx-r, cy+r).L(cx+r, cy+r).L(cx+r, cy-r).Z()
	}
	return p.String()
}

// grid returns rows×cols rectangles filling a width×height area, separated
// by gap.
func grid(rows, cols, width, height int, gap float64) string {
	cw := float64(width) / float64(cols)
	ch := float64(height) / float64(rows)
	var b strings.Builder
	for i := range rows {
		for j := range cols {
			fmt.Fprintf(&b, "<rect x=\"%g\" y=\"%g\" width=\"%g\" height=\"%g\"/>\n",
				float64(j)*cw+gap/2, float64(i)*ch+gap/2, cw-gap, ch-gap)
		}
	}
	return b.String()
}
