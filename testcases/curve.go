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

var curve = []Document{
	{
		Name:   "quadratic",
		Width:  64,
		Height: 64,
		SVG:    doc(64, 64, `<path d="M10,50 Q32,10 54,50 Z"/>`),
	},
	{
		Name:   "cubic",
		Width:  64,
		Height: 64,
		SVG:    doc(64, 64, `<path d="M10,50 C20,10 44,10 54,50 Z"/>`),
	},
	{
		Name:   "quadratic_shallow",
		Width:  64,
		Height: 64,
		SVG:    doc(64, 64, `<path d="M10,32 Q32,28 54,32 Z"/>`),
	},
	{
		Name:   "quadratic_below",
		Width:  64,
		Height: 64,
		SVG:    doc(64, 64, `<path d="M10,20 Q32,55 54,20 Z"/>`),
	},
	{
		Name:   "quadratic_smooth",
		Width:  64,
		Height: 64,
		SVG:    doc(64, 64, `<path d="M10,32 Q21,10 32,32 T54,32 Z"/>`),
	},
	{
		Name:   "quadratic_stroked",
		Width:  64,
		Height: 64,
		SVG:    doc(64, 64, strokePath("M10,50 Q32,10 54,50", `stroke-width="4"`)),
	},
	{
		Name:   "cubic_deep",
		Width:  64,
		Height: 64,
		SVG:    doc(64, 64, `<path d="M10,50 C15,5 49,5 54,50 Z"/>`),
	},
	{
		Name:   "cubic_scurve",
		Width:  64,
		Height: 64,
		SVG:    doc(64, 64, `<path d="M10,50 C10,10 54,54 54,14 Z"/>`),
	},
	{
		Name:   "cubic_smooth",
		Width:  64,
		Height: 64,
		SVG:    doc(64, 64, strokePath("M6,32 C6,10 24,10 24,32 S42,54 42,32 s12,-22 16,0", `stroke-width="3"`)),
	},
	{
		Name:   "cubic_loop",
		Width:  64,
		Height: 64,
		SVG:    doc(64, 64, `<path d="M10,32 C60,5 4,59 54,32 Z"/>`),
	},
	{
		Name:   "cubic_cusp",
		Width:  64,
		Height: 64,
		SVG:    doc(64, 64, `<path d="M10,50 C54,10 10,10 54,50 Z"/>`),
	},
	{
		Name:   "cubic_nearly_straight",
		Width:  64,
		Height: 64,
		SVG:    doc(64, 64, `<path d="M10,32 C24,31 40,31 54,32 Z"/>`),
	},
	{
		Name:   "cubic_stroked",
		Width:  64,
		Height: 64,
		SVG:    doc(64, 64, strokePath("M10,50 C20,10 44,10 54,50", `stroke-width="4"`)),
	},
	{
		Name:   "cubic_scurve_stroked",
		Width:  64,
		Height: 64,
		SVG:    doc(64, 64, strokePath("M10,50 C10,10 54,54 54,14", `stroke-width="4" stroke-linecap="round"`)),
	},
	{
		Name:   "arc_flags",
		Width:  128,
		Height: 128,
		SVG: doc(128, 128, `
<path d="M20,40 A20,15 0 0 0 50,30 Z"/>
<path d="M80,40 A20,15 0 0 1 110,30 Z"/>
<path d="M20,100 A20,15 0 1 0 50,90 Z"/>
<path d="M80,100 A20,15 0 1 1 110,90 Z"/>`),
	},
	{
		Name:   "arc_rotated",
		Width:  64,
		Height: 64,
		SVG:    doc(64, 64, strokePath("M12,40 a24,12 30 0 1 40,-16", `stroke-width="3"`)),
	},
	{
		Name:   "arc_radius_too_small",
		Width:  64,
		Height: 64,
		SVG:    doc(64, 64, `<path d="M12,32 A2,2 0 0 1 52,32 Z"/>`),
	},
}
