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

var viewbox = []Document{
	{
		Name:   "scaled",
		Width:  64,
		Height: 64,
		SVG: `<svg xmlns="http://www.w3.org/2000/svg" width="16" height="16" viewBox="0 0 16 16">
<path d="M2,14 L8,2 L14,14 Z"/>
</svg>
`,
	},
	{
		Name:   "offset",
		Width:  64,
		Height: 64,
		SVG: `<svg xmlns="http://www.w3.org/2000/svg" viewBox="100 100 32 32">
<circle cx="116" cy="116" r="12"/>
</svg>
`,
	},
	{
		Name:   "wide_mid",
		Width:  64,
		Height: 64,
		SVG: `<svg xmlns="http://www.w3.org/2000/svg" width="100" height="50">
<rect width="100" height="50"/>
</svg>
`,
	},
	{
		Name:   "wide_min",
		Width:  64,
		Height: 64,
		SVG: `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100 50" preserveAspectRatio="xMinYMin meet">
<rect width="100" height="50"/>
</svg>
`,
	},
	{
		Name:   "tall_max",
		Width:  64,
		Height: 64,
		SVG: `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 20 40" preserveAspectRatio="xMaxYMid">
<rect width="20" height="40"/>
</svg>
`,
	},
	{
		Name:   "size_from_viewbox",
		Width:  64,
		Height: 32,
		SVG: `<svg xmlns="http://www.w3.org/2000/svg" width="64" viewBox="0 0 20 10">
<ellipse cx="10" cy="5" rx="8" ry="4"/>
</svg>
`,
	},
}
