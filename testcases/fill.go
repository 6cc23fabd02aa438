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

import "math"

var fill = []Document{
	{
		Name:   "triangle_nonzero",
		Width:  64,
		Height: 64,
		SVG:    doc(64, 64, fillPath("M10,50 L32,10 L54,50 Z", "nonzero")),
	},
	{
		Name:   "triangle_evenodd",
		Width:  64,
		Height: 64,
		SVG:    doc(64, 64, fillPath("M10,50 L32,10 L54,50 Z", "evenodd")),
	},
	{
		Name:   "star_nonzero",
		Width:  64,
		Height: 64,
		SVG:    doc(64, 64, fillPath(fivePointStar(32, 32, 25), "nonzero")),
	},
	{
		Name:   "star_evenodd",
		Width:  64,
		Height: 64,
		SVG:    doc(64, 64, fillPath(fivePointStar(32, 32, 25), "evenodd")),
	},
	{
		Name:   "rectangle",
		Width:  64,
		Height: 64,
		SVG:    doc(64, 64, fillPath("M10,10 H54 V54 H10 Z", "nonzero")),
	},
	{
		Name:   "inherited_rule",
		Width:  64,
		Height: 64,
		SVG: doc(64, 64, `
<g fill-rule="evenodd">
<path d="`+fivePointStar(32, 32, 25)+`"/>
</g>`),
	},
}

// fivePointStar returns a self-intersecting five-pointed star.
func fivePointStar(cx, cy, r float64) string {
	var pts [5][2]float64
	for i := range pts {
		angle := float64(i)*2*math.Pi/5 - math.Pi/2
		pts[i] = [2]float64{cx + r*math.Cos(angle), cy + r*math.Sin(angle)}
	}

	// connect every second point
	p := &pathData{}
	for i, k := range []int{0, 2, 4, 1, 3} {
		if i == 0 {
			p.M(pts[k][0], pts[k][1])
		} else {
			p.L(pts[k][0], pts[k][1])
		}
	}
	return p.Z().String()
}
