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

// dashedLine returns a horizontal line, stroked with the given dash
// settings.
func dashedLine(attrs string) string {
	return doc(64, 64, strokePath("M5,32 H59", `stroke-width="4" `+attrs))
}

var dash = []Document{
	{
		Name:   "single_element",
		Width:  64,
		Height: 64,
		SVG:    dashedLine(`stroke-dasharray="5"`),
	},
	{
		Name:   "three_element",
		Width:  64,
		Height: 64,
		SVG:    dashedLine(`stroke-dasharray="6 3 2"`),
	},
	{
		Name:   "long_short",
		Width:  64,
		Height: 64,
		SVG:    dashedLine(`stroke-dasharray="10,2"`),
	},
	{
		Name:   "short_long",
		Width:  64,
		Height: 64,
		SVG:    dashedLine(`stroke-dasharray="2,10"`),
	},
	{
		Name:   "many_elements",
		Width:  64,
		Height: 64,
		SVG:    dashedLine(`stroke-dasharray="1 2 3 4 5 6"`),
	},
	{
		Name:   "offset_half",
		Width:  64,
		Height: 64,
		SVG:    dashedLine(`stroke-dasharray="8 4" stroke-dashoffset="4"`),
	},
	{
		Name:   "offset_pattern_len",
		Width:  64,
		Height: 64,
		SVG:    dashedLine(`stroke-dasharray="8 4" stroke-dashoffset="12"`),
	},
	{
		Name:   "offset_negative",
		Width:  64,
		Height: 64,
		SVG:    dashedLine(`stroke-dasharray="8 4" stroke-dashoffset="-3"`),
	},
	{
		Name:   "zero_round",
		Width:  64,
		Height: 64,
		SVG:    dashedLine(`stroke-dasharray="0 8" stroke-linecap="round"`),
	},
	{
		Name:   "zero_square",
		Width:  64,
		Height: 64,
		SVG:    dashedLine(`stroke-dasharray="0 8" stroke-linecap="square"`),
	},
	{
		Name:   "zero_butt",
		Width:  64,
		Height: 64,
		SVG:    dashedLine(`stroke-dasharray="0 8" stroke-linecap="butt"`),
	},
	{
		Name:   "round_caps",
		Width:  64,
		Height: 64,
		SVG:    dashedLine(`stroke-dasharray="8 6" stroke-linecap="round"`),
	},
	{
		Name:   "odd_count",
		Width:  64,
		Height: 64,
		SVG:    dashedLine(`stroke-dasharray="7 3 1"`),
	},
	{
		Name:   "negative_is_solid",
		Width:  64,
		Height: 64,
		SVG:    dashedLine(`stroke-dasharray="4 -1"`),
	},
	{
		Name:   "corner",
		Width:  64,
		Height: 64,
		SVG:    doc(64, 64, strokePath("M10,50 L32,14 L54,50", `stroke-width="4" stroke-dasharray="9 3"`)),
	},
	{
		Name:   "closed_square",
		Width:  64,
		Height: 64,
		SVG:    doc(64, 64, strokePath("M12,12 H52 V52 H12 Z", `stroke-width="4" stroke-dasharray="10 5" stroke-linejoin="round"`)),
	},
	{
		Name:   "curve",
		Width:  64,
		Height: 64,
		SVG:    doc(64, 64, strokePath("M8,48 C16,0 48,0 56,48", `stroke-width="3" stroke-dasharray="5 3"`)),
	},
}
