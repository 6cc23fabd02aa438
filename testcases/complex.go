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

var complexDocs = []Document{
	{
		Name:   "mixed_lines_curves",
		Width:  64,
		Height: 64,
		SVG:    doc(64, 64, `<path d="M10,54 L10,20 Q10,10 20,10 L44,10 C54,10 54,30 44,30 L30,30 L54,54 Z"/>`),
	},
	{
		Name:   "stroked_mixed",
		Width:  64,
		Height: 64,
		SVG:    doc(64, 64, strokePath("M10,54 L10,20 Q10,10 20,10 L44,10 C54,10 54,30 44,30 L30,30 L54,54 Z", `stroke-width="3" stroke-linejoin="round"`)),
	},
	{
		Name:   "glyph_like",
		Width:  64,
		Height: 64,
		SVG: doc(64, 64, `<path d="M32,6 C46,6 56,18 56,32 C56,46 46,58 32,58 C18,58 8,46 8,32 C8,18 18,6 32,6 Z
M32,16 C23,16 18,23 18,32 C18,41 23,48 32,48 C41,48 46,41 46,32 C46,23 41,16 32,16 Z"/>`),
	},
	{
		Name:   "spiral_overlap",
		Width:  64,
		Height: 64,
		SVG:    doc(64, 64, strokePath(spiral(32, 32, 5, 25, 3), `stroke-width="4"`)),
	},
	{
		Name:   "figure_eight",
		Width:  64,
		Height: 64,
		SVG:    doc(64, 64, strokePath("M32,32 C52,12 52,52 32,32 C12,12 12,52 32,32 Z", `stroke-width="4"`)),
	},
	{
		Name:   "thick_tight_curve",
		Width:  64,
		Height: 64,
		SVG:    doc(64, 64, strokePath("M17,47 C17,17 47,17 47,47", `stroke-width="10"`)),
	},
	{
		Name:   "zigzag_thick",
		Width:  64,
		Height: 64,
		SVG:    doc(64, 64, strokePath(zigzag(10, 32, 54, 20), `stroke-width="8"`)),
	},
}

// spiral returns an Archimedean spiral made of line segments.
func spiral(cx, cy, rMin, rMax, turns float64) string {
	const steps = 120
	p := &pathData{}
	for i := 0; i <= steps; i++ {
		t := float64(i) / steps
		angle := t * turns * 2 * math.Pi
		r := rMin + t*(rMax-rMin)
		x := cx + r*math.Cos(angle)
		y := cy + r*math.Sin(angle)
		if i == 0 {
			p.M(x, y)
		} else {
			p.L(x, y)
		}
	}
	return p.String()
}

// zigzag returns a horizontal zigzag line with six teeth.
func zigzag(x1, cy, x2, amplitude float64) string {
	const n = 6
	p := (&pathData{}).M(x1, cy)
	for i := 1; i <= n; i++ {
		x := x1 + (x2-x1)*float64(i)/n
		y := cy - amplitude/2
		if i%2 == 0 {
			y = cy + amplitude/2
		}
		p.L(x, y)
	}
	return p.String()
}
