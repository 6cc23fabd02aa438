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

var stroke = []Document{
	{
		Name:   "line_butt",
		Width:  64,
		Height: 64,
		SVG:    doc(64, 64, strokePath("M10,32 H54", `stroke-width="8" stroke-linecap="butt"`)),
	},
	{
		Name:   "line_round",
		Width:  64,
		Height: 64,
		SVG:    doc(64, 64, strokePath("M10,32 H54", `stroke-width="8" stroke-linecap="round"`)),
	},
	{
		Name:   "line_square",
		Width:  64,
		Height: 64,
		SVG:    doc(64, 64, strokePath("M10,32 H54", `stroke-width="8" stroke-linecap="square"`)),
	},
	{
		Name:   "corner_miter",
		Width:  64,
		Height: 64,
		SVG:    doc(64, 64, strokePath("M10,50 L32,14 L54,50", `stroke-width="6" stroke-linejoin="miter"`)),
	},
	{
		Name:   "corner_round",
		Width:  64,
		Height: 64,
		SVG:    doc(64, 64, strokePath("M10,50 L32,14 L54,50", `stroke-width="6" stroke-linejoin="round"`)),
	},
	{
		Name:   "corner_bevel",
		Width:  64,
		Height: 64,
		SVG:    doc(64, 64, strokePath("M10,50 L32,14 L54,50", `stroke-width="6" stroke-linejoin="bevel"`)),
	},
	{
		Name:   "miter_limit",
		Width:  64,
		Height: 64,
		SVG: doc(64, 64,
			strokePath("M10,54 L32,10 L54,54", `stroke-width="4" stroke-miterlimit="10"`)+"\n"+
				strokePath("M10,60 L32,40 L54,60", `stroke-width="4" stroke-miterlimit="1.5"`)),
	},
	{
		Name:   "closed_square",
		Width:  64,
		Height: 64,
		SVG:    doc(64, 64, strokePath("M16,16 H48 V48 H16 Z", `stroke-width="6"`)),
	},
	{
		Name:   "fill_and_stroke",
		Width:  64,
		Height: 64,
		SVG:    doc(64, 64, `<rect x="16" y="16" width="32" height="32" stroke="black" stroke-width="8"/>`),
	},
	{
		Name:   "zero_length_round",
		Width:  64,
		Height: 64,
		SVG:    doc(64, 64, strokePath("M32,32 L32,32", `stroke-width="12" stroke-linecap="round"`)),
	},
}
