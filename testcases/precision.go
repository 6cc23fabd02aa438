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

import "fmt"

// offsetSquare returns a 24×24 square at (20+offset, 20+offset).
func offsetSquare(offset float64) string {
	return doc(64, 64, fmt.Sprintf(`<rect x="%g" y="%g" width="24" height="24"/>`, 20+offset, 20+offset))
}

var precision = []Document{
	{
		Name:   "subpixel_offset_00",
		Width:  64,
		Height: 64,
		SVG:    offsetSquare(0),
	},
	{
		Name:   "subpixel_offset_25",
		Width:  64,
		Height: 64,
		SVG:    offsetSquare(0.25),
	},
	{
		Name:   "subpixel_offset_50",
		Width:  64,
		Height: 64,
		SVG:    offsetSquare(0.5),
	},
	{
		Name:   "subpixel_offset_75",
		Width:  64,
		Height: 64,
		SVG:    offsetSquare(0.75),
	},
	{
		Name:   "thin_line_y_integer",
		Width:  64,
		Height: 64,
		SVG:    doc(64, 64, strokePath("M5,10 H59", `stroke-width="1"`)),
	},
	{
		Name:   "thin_line_y_half",
		Width:  64,
		Height: 64,
		SVG:    doc(64, 64, strokePath("M5,10.5 H59", `stroke-width="1"`)),
	},
	{
		Name:   "hairline",
		Width:  64,
		Height: 64,
		SVG:    doc(64, 64, strokePath("M5,5 L59,59", `stroke-width="0.25"`)),
	},
	{
		Name:   "large_coord_centered",
		Width:  64,
		Height: 64,
		SVG:    doc(64, 64, `<rect x="990" y="990" width="20" height="20" transform="translate(-968,-968)"/>`),
	},
	{
		Name:   "small_shape_large_offset",
		Width:  64,
		Height: 64,
		SVG:    doc(64, 64, `<rect x="9999" y="9999" width="2" height="2" transform="scale(8) translate(-9995,-9995)"/>`),
	},
	{
		Name:   "exponent_coords",
		Width:  64,
		Height: 64,
		SVG:    doc(64, 64, `<path d="M1e1,1.0e1 L5.4E1,10 L32,.54e2z"/>`),
	},
}
