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

var shape = []Document{
	{
		Name:   "rect_rounded",
		Width:  64,
		Height: 64,
		SVG:    doc(64, 64, `<rect x="8" y="12" width="48" height="40" rx="10"/>`),
	},
	{
		Name:   "rect_rx_ry",
		Width:  64,
		Height: 64,
		SVG:    doc(64, 64, `<rect x="8" y="12" width="48" height="40" rx="20" ry="6"/>`),
	},
	{
		Name:   "rect_rx_clamped",
		Width:  64,
		Height: 64,
		SVG:    doc(64, 64, `<rect x="8" y="20" width="48" height="24" rx="100"/>`),
	},
	{
		Name:   "circle",
		Width:  64,
		Height: 64,
		SVG:    doc(64, 64, `<circle cx="32" cy="32" r="25"/>`),
	},
	{
		Name:   "circle_small",
		Width:  64,
		Height: 64,
		SVG:    doc(64, 64, `<circle cx="32" cy="32" r="5"/>`),
	},
	{
		Name:   "circle_stroked",
		Width:  64,
		Height: 64,
		SVG:    doc(64, 64, `<circle cx="32" cy="32" r="25" fill="none" stroke="black" stroke-width="3"/>`),
	},
	{
		Name:   "ellipse",
		Width:  64,
		Height: 64,
		SVG:    doc(64, 64, `<ellipse cx="32" cy="32" rx="28" ry="14"/>`),
	},
	{
		Name:   "line",
		Width:  64,
		Height: 64,
		SVG:    doc(64, 64, `<line x1="8" y1="56" x2="56" y2="8" stroke="black" stroke-width="5" stroke-linecap="round"/>`),
	},
	{
		Name:   "polyline",
		Width:  64,
		Height: 64,
		SVG:    doc(64, 64, `<polyline points="8,56 20,8 32,56 44,8 56,56" fill="none" stroke="black" stroke-width="3"/>`),
	},
	{
		Name:   "polygon",
		Width:  64,
		Height: 64,
		SVG:    doc(64, 64, `<polygon points="32,4 60,24 50,58 14,58 4,24"/>`),
	},
	{
		Name:   "polygon_odd_points",
		Width:  64,
		Height: 64,
		SVG:    doc(64, 64, `<polygon points="10,10 54,10 32,54 5"/>`),
	},
}
