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

var style = []Document{
	{
		Name:   "inherited_stroke",
		Width:  64,
		Height: 64,
		SVG: doc(64, 64, `
<g fill="none" stroke="black" stroke-width="4" stroke-linecap="round">
  <path d="M10,16 H54"/>
  <path d="M10,32 H54" stroke-width="8"/>
  <path d="M10,48 H54" stroke-linecap="butt"/>
</g>`),
	},
	{
		Name:   "style_attribute",
		Width:  64,
		Height: 64,
		SVG:    doc(64, 64, `<path d="M10,10 H54 V54 H10 Z" fill="black" style="fill: none; stroke: #000; stroke-width: 6px"/>`),
	},
	{
		Name:   "current_color",
		Width:  64,
		Height: 64,
		SVG: doc(64, 64, `
<g color="black">
  <circle cx="32" cy="32" r="20" fill="currentColor"/>
</g>`),
	},
	{
		Name:   "display_none",
		Width:  64,
		Height: 64,
		SVG: doc(64, 64, `
<rect x="8" y="8" width="20" height="20"/>
<g display="none"><rect x="36" y="8" width="20" height="20"/></g>
<rect x="8" y="36" width="20" height="20" visibility="hidden"/>
<g visibility="hidden"><rect x="36" y="36" width="20" height="20" visibility="visible"/></g>`),
	},
	{
		Name:   "skipped_elements",
		Width:  64,
		Height: 64,
		SVG: doc(64, 64, `
<title>skipped</title>
<defs><rect id="r" width="64" height="64"/></defs>
<use href="#r"/>
<text x="10" y="30">text</text>
<rect x="16" y="16" width="32" height="32"/>`),
	},
	{
		Name:   "nested_svg",
		Width:  64,
		Height: 64,
		SVG: doc(64, 64, `
<svg x="16" y="16">
  <rect width="32" height="32"/>
</svg>`),
	},
	{
		Name:   "units",
		Width:  96,
		Height: 96,
		SVG:    doc(96, 96, `<rect x="0.25in" y="6mm" width="36pt" height="3pc"/>`),
	},
}
