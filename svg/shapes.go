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

package svg

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// kappa is the relative distance of the control points of a cubic Bézier
// curve approximating a quarter circle.
const kappa = 0.5522847498

// ellipse returns an axis-aligned ellipse, starting at the rightmost point
// and running in the positive angle direction.
func ellipse(cx, cy, rx, ry float64) *path.Data {
	kx, ky := kappa*rx, kappa*ry
	return (&path.Data{}).
		MoveTo(vec.Vec2{X: cx + rx, Y: cy}).
		CubeTo(vec.Vec2{X: cx + rx, Y: cy + ky}, vec.Vec2{X: cx + kx, Y: cy + ry}, vec.Vec2{X: cx, Y: cy + ry}).
		CubeTo(vec.Vec2{X: cx - kx, Y: cy + ry}, vec.Vec2{X: cx - rx, Y: cy + ky}, vec.Vec2{X: cx - rx, Y: cy}).
		CubeTo(vec.Vec2{X: cx - rx, Y: cy - ky}, vec.Vec2{X: cx - kx, Y: cy - ry}, vec.Vec2{X: cx, Y: cy - ry}).
		CubeTo(vec.Vec2{X: cx + kx, Y: cy - ry}, vec.Vec2{X: cx + rx, Y: cy - ky}, vec.Vec2{X: cx + rx, Y: cy}).
		Close()
}

// roundedRect returns the outline of an SVG <rect> element. The corner
// radii are clamped to half the width and height.
func roundedRect(x, y, w, h, rx, ry float64) *path.Data {
	rx = min(rx, w/2)
	ry = min(ry, h/2)
	d := &path.Data{}
	if rx <= 0 || ry <= 0 {
		return d.MoveTo(vec.Vec2{X: x, Y: y}).
			LineTo(vec.Vec2{X: x + w, Y: y}).
			LineTo(vec.Vec2{X: x + w, Y: y + h}).
			LineTo(vec.Vec2{X: x, Y: y + h}).
			Close()
	}

	kx, ky := (1-kappa)*rx, (1-kappa)*ry
	x1, y1 := x+w, y+h
	return d.MoveTo(vec.Vec2{X: x + rx, Y: y}).
		LineTo(vec.Vec2{X: x1 - rx, Y: y}).
		CubeTo(vec.Vec2{X: x1 - kx, Y: y}, vec.Vec2{X: x1, Y: y + ky}, vec.Vec2{X: x1, Y: y + ry}).
		LineTo(vec.Vec2{X: x1, Y: y1 - ry}).
		CubeTo(vec.Vec2{X: x1, Y: y1 - ky}, vec.Vec2{X: x1 - kx, Y: y1}, vec.Vec2{X: x1 - rx, Y: y1}).
		LineTo(vec.Vec2{X: x + rx, Y: y1}).
		CubeTo(vec.Vec2{X: x + kx, Y: y1}, vec.Vec2{X: x, Y: y1 - ky}, vec.Vec2{X: x, Y: y1 - ry}).
		LineTo(vec.Vec2{X: x, Y: y + ry}).
		CubeTo(vec.Vec2{X: x, Y: y + ky}, vec.Vec2{X: x + kx, Y: y}, vec.Vec2{X: x + rx, Y: y}).
		Close()
}
