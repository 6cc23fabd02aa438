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

var transform = []Document{
	{
		Name:   "scale_2x",
		Width:  128,
		Height: 128,
		SVG:    doc(128, 128, `<rect width="20" height="20" transform="translate(24 24) scale(2)"/>`),
	},
	{
		Name:   "scale_half",
		Width:  64,
		Height: 64,
		SVG:    doc(64, 64, `<rect width="80" height="80" transform="translate(12,12) scale(.5)"/>`),
	},
	{
		Name:   "scale_10x",
		Width:  128,
		Height: 128,
		SVG:    doc(128, 128, `<rect width="4" height="4" transform="translate(44,44) scale(10)"/>`),
	},
	{
		Name:   "rotate_45deg",
		Width:  64,
		Height: 64,
		SVG:    doc(64, 64, `<rect x="-10" y="-10" width="20" height="20" transform="translate(32,32) rotate(45)"/>`),
	},
	{
		Name:   "rotate_5deg",
		Width:  64,
		Height: 64,
		SVG:    doc(64, 64, `<rect x="-20" y="-10" width="40" height="20" transform="translate(32,32) rotate(5)"/>`),
	},
	{
		Name:   "rotate_center",
		Width:  64,
		Height: 64,
		SVG:    doc(64, 64, `<rect x="17" y="22" width="30" height="20" transform="rotate(30 32 32)"/>`),
	},
	{
		Name:   "scale_2x_1y",
		Width:  128,
		Height: 64,
		SVG:    doc(128, 64, `<rect x="-10" y="-10" width="20" height="20" transform="translate(64,32) scale(2,1)"/>`),
	},
	{
		Name:   "circle_to_ellipse",
		Width:  128,
		Height: 64,
		SVG:    doc(128, 64, `<circle r="15" transform="translate(64,32) scale(2,1)"/>`),
	},
	{
		Name:   "skew_x",
		Width:  64,
		Height: 64,
		SVG:    doc(64, 64, `<rect x="-15" y="-15" width="30" height="30" transform="translate(32,32) skewX(26.565)"/>`),
	},
	{
		Name:   "skew_y",
		Width:  64,
		Height: 64,
		SVG:    doc(64, 64, `<rect x="-15" y="-15" width="30" height="30" transform="translate(32,32) skewY(26.565)"/>`),
	},
	{
		Name:   "matrix",
		Width:  64,
		Height: 64,
		SVG:    doc(64, 64, `<rect x="-12" y="-12" width="24" height="24" transform="matrix(0.866 0.5 -0.2 1.0 32 32)"/>`),
	},
	{
		Name:   "nested_groups",
		Width:  64,
		Height: 64,
		SVG: doc(64, 64, `
<g transform="translate(32 32)">
  <g transform="rotate(45)">
    <g transform="scale(1.5 1)">
      <rect x="-10" y="-10" width="20" height="20"/>
    </g>
  </g>
</g>`),
	},
	{
		Name:   "round_cap_nonuniform",
		Width:  128,
		Height: 64,
		SVG:    doc(128, 64, `<path d="M-20,0 H20" transform="translate(64,32) scale(2,1)" stroke="black" stroke-width="8" stroke-linecap="round"/>`),
	},
	{
		Name:   "round_join_rotated",
		Width:  64,
		Height: 64,
		SVG:    doc(64, 64, `<path d="M-20,10 L0,-12 L20,10" transform="translate(32,32) rotate(30)" fill="none" stroke="black" stroke-width="6" stroke-linejoin="round"/>`),
	},
	{
		Name:   "dash_scaled",
		Width:  128,
		Height: 64,
		SVG:    doc(128, 64, `<path d="M-25,0 H25" transform="translate(64,32) scale(2,1)" stroke="black" stroke-width="4" stroke-dasharray="5 3"/>`),
	},
}
