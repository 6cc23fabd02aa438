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

package raster

import (
	"fmt"
	"image"
	"image/color"
	"testing"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// kappa places the control points of a cubic Bézier quarter circle.
const kappa = 0.5522847498

// quarter lists the unit circle quadrants as (start, control, control, end)
// offsets, counter-clockwise in a y-down coordinate system.
var quarter = [4][4]vec.Vec2{
	{{X: 0, Y: -1}, {X: -kappa, Y: -1}, {X: -1, Y: -kappa}, {X: -1, Y: 0}},
	{{X: -1, Y: 0}, {X: -1, Y: kappa}, {X: -kappa, Y: 1}, {X: 0, Y: 1}},
	{{X: 0, Y: 1}, {X: kappa, Y: 1}, {X: 1, Y: kappa}, {X: 1, Y: 0}},
	{{X: 1, Y: 0}, {X: 1, Y: -kappa}, {X: kappa, Y: -1}, {X: 0, Y: -1}},
}

// addCircle appends a circle to p. The reverse flag flips the orientation.
func addCircle(p *path.Data, cx, cy, radius float64, reverse bool) {
	c := vec.Vec2{X: cx, Y: cy}
	at := func(v vec.Vec2) vec.Vec2 {
		if reverse {
			v.X = -v.X
		}
		return c.Add(v.Mul(radius))
	}
	p.MoveTo(at(quarter[0][0]))
	for _, q := range quarter {
		p.CubeTo(at(q[1]), at(q[2]), at(q[3]))
	}
	p.Close()
}

// makeOPath returns an "O" shape: an outer circle with a hole.
func makeOPath(cx, cy, outerR, innerR float64) path.Path {
	p := &path.Data{}
	addCircle(p, cx, cy, outerR, false)
	addCircle(p, cx, cy, innerR, true)
	return p.Iter()
}

func BenchmarkFillO(b *testing.B) {
	for _, size := range []int{20, 200, 2000} {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			clip := rect.Rect{URx: float64(size), URy: float64(size)}
			r := NewRasterizer(clip)
			dst := image.NewAlpha(image.Rect(0, 0, size, size))

			s := float64(size)
			o := makeOPath(s/2, s/2, 0.45*s, 0.30*s)
			emit := func(y, xMin int, coverage []float32) {
				row := dst.Pix[y*dst.Stride+xMin:]
				for i, c := range coverage {
					row[i] = uint8(c * 255)
				}
			}

			b.ReportAllocs()
			for b.Loop() {
				r.Reset(clip)
				r.Fill(o, EvenOdd, emit)
			}
		})
	}
}

// BenchmarkVectorO draws the same shape with golang.org/x/image/vector,
// for comparison.
func BenchmarkVectorO(b *testing.B) {
	for _, size := range []int{20, 200, 2000} {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			r := vector.NewRasterizer(size, size)
			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			src := image.NewUniform(color.Alpha{A: 255})

			s := float32(size)
			b.ReportAllocs()
			for b.Loop() {
				r.Reset(size, size)
				addVectorCircle(r, s/2, s/2, 0.45*s, false)
				addVectorCircle(r, s/2, s/2, 0.30*s, true)
				r.Draw(dst, dst.Bounds(), src, image.Point{})
			}
		})
	}
}

func addVectorCircle(r *vector.Rasterizer, cx, cy, radius float32, reverse bool) {
	at := func(v vec.Vec2) (float32, float32) {
		if reverse {
			v.X = -v.X
		}
		return cx + radius*float32(v.X), cy + radius*float32(v.Y)
	}
	r.MoveTo(at(quarter[0][0]))
	for _, q := range quarter {
		x1, y1 := at(q[1])
		x2, y2 := at(q[2])
		x3, y3 := at(q[3])
		r.CubeTo(x1, y1, x2, y2, x3, y3)
	}
	r.ClosePath()
}

func BenchmarkStroke(b *testing.B) {
	clip := rect.Rect{URx: 500, URy: 500}
	r := NewRasterizer(clip)
	o := makeOPath(250, 250, 200, 120)
	emit := func(int, int, []float32) {}

	b.ReportAllocs()
	for b.Loop() {
		r.Reset(clip)
		r.Width = 8
		r.Dash = []float64{20, 10}
		r.Stroke(o, emit)
	}
}
