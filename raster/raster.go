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

// Package raster converts vector paths into anti-aliased pixel coverage.
//
// The rasterizer computes the exact area of each pixel covered by a path
// (after flattening curves to line segments) and reports it row by row to a
// callback. Compositing is left to the caller.
package raster

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// FillRule selects how the interior of a self-intersecting path is found.
type FillRule int

const (
	// NonZero paints points with a nonzero winding number.
	NonZero FillRule = iota

	// EvenOdd paints points crossed an odd number of times.
	EvenOdd
)

func (r FillRule) String() string {
	switch r {
	case NonZero:
		return "nonzero"
	case EvenOdd:
		return "evenodd"
	default:
		return "unknown"
	}
}

// EmitFunc receives the coverage of one scanline. Pixel xMin+i of row y has
// coverage[i], in the range 0 to 1. The slice is only valid during the call.
type EmitFunc func(y, xMin int, coverage []float32)

// edge is a line segment in device coordinates.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64 // (x1-x0)/(y1-y0)
}

// Rasterizer turns paths into per-pixel coverage values.
// Buffers are kept between calls, so a Rasterizer which is reused for many
// paths does not allocate once it has warmed up.
//
// A Rasterizer is not safe for concurrent use.
type Rasterizer struct {
	// CTM maps user space to device space. Must be non-singular.
	CTM matrix.Matrix

	// Clip is the device-space output rectangle, with integer coordinates.
	// No coverage is reported outside of Clip.
	Clip rect.Rect

	// Flatness is the maximal distance, in device pixels, between a curve
	// and the line segments used to approximate it.
	Flatness float64

	// Width is the stroke width in user-space units.
	Width float64

	// Cap is the style used at the open ends of stroked subpaths.
	Cap graphics.LineCapStyle

	// Join is the style used where two stroked segments meet.
	Join graphics.LineJoinStyle

	// MiterLimit bounds the length of miter joins, relative to Width.
	// Must be at least 1.
	MiterLimit float64

	// Dash holds alternating on/off lengths in user-space units.
	// A nil slice strokes solid lines.
	Dash []float64

	// DashPhase is the distance into the dash pattern at which each
	// subpath starts.
	DashPhase float64

	smallPathThreshold int

	cover       []float32
	area        []float32
	edges       []edge
	activeIdx   []int
	rowHasEdges []bool

	edgeBBoxFirst bool
	edgeDevXMin   float64
	edgeDevXMax   float64
	edgeDevYMin   float64
	edgeDevYMax   float64

	// stroke geometry, see stroke.go
	stroke           []vec.Vec2
	strokeOffsets    []int
	segs             []strokeSegment
	segsOffsets      []int
	subpathClosed    []bool
	degeneratePoints []vec.Vec2
	dashedSegs       []strokeSegment
	dashRanges       [][2]int
}

// NewRasterizer allocates a Rasterizer for the given clip rectangle.
// Stroke parameters are initialised to the SVG defaults.
func NewRasterizer(clip rect.Rect) *Rasterizer {
	r := &Rasterizer{smallPathThreshold: smallPathThreshold}
	r.Reset(clip)
	return r
}

// Reset restores all parameters to their defaults and sets a new clip
// rectangle. Internal buffers are kept.
func (r *Rasterizer) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.Flatness = defaultFlatness
	r.Width = 1
	r.Cap = graphics.LineCapButt
	r.Join = graphics.LineJoinMiter
	r.MiterLimit = defaultMiterLimit
	r.Dash = nil
	r.DashPhase = 0
}

// transformLinear applies the linear part of the CTM to v.
func (r *Rasterizer) transformLinear(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: r.CTM[0]*v.X + r.CTM[2]*v.Y,
		Y: r.CTM[1]*v.X + r.CTM[3]*v.Y,
	}
}

// flattenQuadratic approximates the quadratic Bézier p0, p1, p2 (user space)
// by line segments and passes them to emit.
func (r *Rasterizer) flattenQuadratic(p0, p1, p2 vec.Vec2, emit func(from, to vec.Vec2)) {
	dev := r.transformLinear(p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25)).Length()

	n := 1
	if dev > r.Flatness {
		n = segmentCount(math.Sqrt(dev / r.Flatness))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s).Add(p1.Mul(2 * s * t)).Add(p2.Mul(t * t))
		emit(prev, pt)
		prev = pt
	}
}

// flattenCubic approximates the cubic Bézier p0, p1, p2, p3 (user space)
// by line segments and passes them to emit. The number of segments is
// chosen using Wang's formula.
func (r *Rasterizer) flattenCubic(p0, p1, p2, p3 vec.Vec2, emit func(from, to vec.Vec2)) {
	d1 := r.transformLinear(p0.Sub(p1.Mul(2)).Add(p2))
	d2 := r.transformLinear(p1.Sub(p2.Mul(2)).Add(p3))

	n := 1
	if m := max(d1.Length(), d2.Length()); m > 0 {
		if nf := math.Sqrt(3 * m / (4 * r.Flatness)); nf > 1 {
			n = segmentCount(nf)
		}
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t))
		emit(prev, pt)
		prev = pt
	}
}

// segmentCount rounds up the estimated number of line segments for a
// curve, limited to maxCurveSegments.
func segmentCount(nf float64) int {
	if !(nf < maxCurveSegments) {
		return maxCurveSegments
	}
	return int(math.Ceil(nf))
}

// Fill reports the coverage of the interior of p, using the given fill rule.
// Open subpaths are closed implicitly.
func (r *Rasterizer) Fill(p path.Path, rule FillRule, emit EmitFunc) {
	r.resetEdges()

	var current, start vec.Vec2
	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			if current != start {
				r.addEdge(current, start)
			}
			current = pts[0]
			start = current
		case path.CmdLineTo:
			r.addEdge(current, pts[0])
			current = pts[0]
		case path.CmdQuadTo:
			r.flattenQuadratic(current, pts[0], pts[1], r.addEdge)
			current = pts[1]
		case path.CmdCubeTo:
			r.flattenCubic(current, pts[0], pts[1], pts[2], r.addEdge)
			current = pts[2]
		case path.CmdClose:
			if current != start {
				r.addEdge(current, start)
			}
			current = start
		}
	}
	if current != start {
		r.addEdge(current, start)
	}

	r.fillEdges(rule, emit)
}

// resetEdges empties the edge list before a new path is collected.
func (r *Rasterizer) resetEdges() {
	r.edges = r.edges[:0]
	r.edgeBBoxFirst = true
}

// fillEdges rasterizes the collected edge list.
func (r *Rasterizer) fillEdges(rule FillRule, emit EmitFunc) {
	xMin, xMax, yMin, yMax, ok := r.edgeBounds()
	if !ok {
		return
	}
	if (xMax-xMin)*(yMax-yMin) < r.smallPathThreshold {
		r.fillSmallPath(xMin, xMax, yMin, yMax, rule, emit)
	} else {
		r.fillLargePath(xMin, xMax, yMin, yMax, rule, emit)
	}
}

// edgeBounds returns the integer bounding box of the edge list,
// intersected with the clip rectangle.
func (r *Rasterizer) edgeBounds() (xMin, xMax, yMin, yMax int, ok bool) {
	if len(r.edges) == 0 {
		return 0, 0, 0, 0, false
	}

	xMin = max(int(math.Floor(r.edgeDevXMin)), int(r.Clip.LLx))
	xMax = min(int(math.Floor(r.edgeDevXMax))+1, int(r.Clip.URx))
	yMin = max(int(math.Floor(r.edgeDevYMin)), int(r.Clip.LLy))
	yMax = min(int(math.Floor(r.edgeDevYMax))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return 0, 0, 0, 0, false
	}
	return xMin, xMax, yMin, yMax, true
}

// addEdge transforms the user-space segment p0-p1 to device space and
// appends it to the edge list.
func (r *Rasterizer) addEdge(p0, p1 vec.Vec2) {
	m := r.CTM
	dx0 := m[0]*p0.X + m[2]*p0.Y + m[4]
	dy0 := m[1]*p0.X + m[3]*p0.Y + m[5]
	dx1 := m[0]*p1.X + m[2]*p1.Y + m[4]
	dy1 := m[1]*p1.X + m[3]*p1.Y + m[5]

	dy := dy1 - dy0
	if math.Abs(dy) < horizontalEdgeThreshold {
		return
	}
	if math.IsNaN(dx0+dy0+dx1+dy1) || math.IsInf(dx0+dy0+dx1+dy1, 0) {
		return
	}

	r.edges = append(r.edges, edge{
		x0: dx0, y0: dy0,
		x1: dx1, y1: dy1,
		dxdy: (dx1 - dx0) / dy,
	})

	lox, hix := min(dx0, dx1), max(dx0, dx1)
	loy, hiy := min(dy0, dy1), max(dy0, dy1)
	if r.edgeBBoxFirst {
		r.edgeDevXMin, r.edgeDevXMax = lox, hix
		r.edgeDevYMin, r.edgeDevYMax = loy, hiy
		r.edgeBBoxFirst = false
		return
	}
	r.edgeDevXMin = min(r.edgeDevXMin, lox)
	r.edgeDevXMax = max(r.edgeDevXMax, hix)
	r.edgeDevYMin = min(r.edgeDevYMin, loy)
	r.edgeDevYMax = max(r.edgeDevYMax, hiy)
}

// Coverage is accumulated in two buffers per scanline. For every pixel
// crossed by an edge, cover holds the signed vertical extent of the edge
// inside the pixel column and area holds the same value weighted by the
// part of the pixel to the right of the edge. Integrating from left to
// right, the coverage of pixel i is sum(cover[:i]) + area[i].

// accumulateEdge adds the contribution of e within scanline y to the cover
// and area buffers, which are indexed relative to bboxXMin. Contributions
// left of the buffer are folded into index 0.
func (r *Rasterizer) accumulateEdge(e *edge, y int, cover, area []float32, bboxXMin, bboxXMax int) {
	yTop := max(float64(y), min(e.y0, e.y1))
	yBot := min(float64(y+1), max(e.y0, e.y1))
	if yBot <= yTop {
		return
	}

	sign := float32(1)
	if e.y1 < e.y0 {
		sign = -1
	}

	xTop := e.x0 + e.dxdy*(yTop-e.y0)
	xBot := e.x0 + e.dxdy*(yBot-e.y0)
	xLo, xHi := min(xTop, xBot), max(xTop, xBot)

	if xHi < float64(bboxXMin) {
		c := sign * float32(yBot-yTop)
		cover[0] += c
		area[0] += c
		return
	}
	if xLo >= float64(bboxXMax) {
		return
	}

	// Only columns inside the buffer are visited. The part of the edge
	// left of the buffer is folded into index 0 in one step.
	single := math.Floor(xLo) == math.Floor(xHi)
	split := false
	if xLo < float64(bboxXMin) {
		yCut := e.y0 + (float64(bboxXMin)-e.x0)/e.dxdy
		yCut = min(max(yCut, yTop), yBot)
		ext := yBot - yCut
		if xTop < xBot {
			ext = yCut - yTop
		}
		c := sign * float32(ext)
		cover[0] += c
		area[0] += c
		xLo = float64(bboxXMin)
		split = true
	}
	pixLeft := int(math.Floor(xLo))
	pixRight := min(int(math.Floor(min(xHi, float64(bboxXMax)))), bboxXMax-1)

	if single && !split {
		r.accumulateColumn(e, yTop, yBot, sign, pixLeft, cover, area, bboxXMin, bboxXMax)
		return
	}

	dydx := 1 / e.dxdy
	for pix := pixLeft; pix <= pixRight; pix++ {
		yl := e.y0 + dydx*(float64(pix)-e.x0)
		yr := e.y0 + dydx*(float64(pix+1)-e.x0)
		segTop := max(min(yl, yr), yTop)
		segBot := min(max(yl, yr), yBot)
		if segBot <= segTop {
			continue
		}
		r.accumulateColumn(e, segTop, segBot, sign, pix, cover, area, bboxXMin, bboxXMax)
	}
}

// accumulateColumn adds the part of e between yTop and yBot, which lies
// inside pixel column pix, to the buffers.
func (r *Rasterizer) accumulateColumn(e *edge, yTop, yBot float64, sign float32, pix int, cover, area []float32, bboxXMin, bboxXMax int) {
	c := sign * float32(yBot-yTop)
	switch {
	case pix < bboxXMin:
		cover[0] += c
		area[0] += c
		return
	case pix >= bboxXMax:
		return
	}

	xMid := e.x0 + e.dxdy*((yTop+yBot)/2-e.y0)
	frac := xMid - float64(pix)

	idx := pix - bboxXMin
	cover[idx] += c
	area[idx] += c * float32(1-frac)
}

// integrate turns the accumulated cover and area values of one scanline
// into coverage, in place in cover.
func integrate(cover, area []float32, rule FillRule) {
	var acc float32
	for i := range cover {
		raw := acc + area[i]
		acc += cover[i]
		if raw < 0 {
			raw = -raw
		}

		if rule == EvenOdd {
			raw -= 2 * float32(int(raw/2))
			cover[i] = 1 - abs32(1-raw)
		} else {
			cover[i] = min(raw, 1)
		}
	}
}

func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

// trimZeros strips zero coverage from both ends of a scanline.
// The returned offset is the index of the first retained value.
func trimZeros(coverage []float32) (trimmed []float32, offset int) {
	lo, hi := 0, len(coverage)
	for lo < hi && coverage[lo] == 0 {
		lo++
	}
	if lo == hi {
		return nil, 0
	}
	for coverage[hi-1] == 0 {
		hi--
	}
	return coverage[lo:hi], lo
}

// fillSmallPath rasterizes the edge list into a two-dimensional buffer
// covering the whole bounding box. This is faster for small paths.
func (r *Rasterizer) fillSmallPath(xMin, xMax, yMin, yMax int, rule FillRule, emit EmitFunc) {
	width := xMax - xMin
	height := yMax - yMin

	size := width * height
	r.cover = slices.Grow(r.cover[:0], size)[:size]
	r.area = slices.Grow(r.area[:0], size)[:size]
	clear(r.cover)
	clear(r.area)
	r.rowHasEdges = slices.Grow(r.rowHasEdges[:0], height)[:height]
	clear(r.rowHasEdges)

	for i := range r.edges {
		e := &r.edges[i]
		lo := max(int(math.Floor(min(e.y0, e.y1))), yMin)
		hi := min(int(math.Floor(max(e.y0, e.y1)))+1, yMax)
		for y := lo; y < hi; y++ {
			row := y - yMin
			off := row * width
			r.accumulateEdge(e, y, r.cover[off:off+width], r.area[off:off+width], xMin, xMax)
			r.rowHasEdges[row] = true
		}
	}

	for row := range height {
		if !r.rowHasEdges[row] {
			continue
		}
		off := row * width
		coverage := r.cover[off : off+width]
		integrate(coverage, r.area[off:off+width], rule)
		if trimmed, k := trimZeros(coverage); trimmed != nil {
			emit(yMin+row, xMin+k, trimmed)
		}
	}
}

// fillLargePath rasterizes the edge list one scanline at a time, using an
// active edge list sorted by the top of each edge.
func (r *Rasterizer) fillLargePath(xMin, xMax, yMin, yMax int, rule FillRule, emit EmitFunc) {
	width := xMax - xMin
	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(min(a.y0, a.y1), min(b.y0, b.y1))
	})

	r.activeIdx = r.activeIdx[:0]
	next := 0
	for y := yMin; y < yMax; y++ {
		yf, yfNext := float64(y), float64(y+1)

		for next < len(r.edges) && min(r.edges[next].y0, r.edges[next].y1) < yfNext {
			r.activeIdx = append(r.activeIdx, next)
			next++
		}
		if len(r.activeIdx) == 0 {
			continue
		}

		clear(r.cover)
		clear(r.area)
		touched := false
		for i := 0; i < len(r.activeIdx); {
			e := &r.edges[r.activeIdx[i]]
			if max(e.y0, e.y1) <= yf {
				last := len(r.activeIdx) - 1
				r.activeIdx[i] = r.activeIdx[last]
				r.activeIdx = r.activeIdx[:last]
				continue
			}
			r.accumulateEdge(e, y, r.cover, r.area, xMin, xMax)
			touched = true
			i++
		}
		if !touched {
			continue
		}

		integrate(r.cover, r.area, rule)
		if trimmed, k := trimZeros(r.cover); trimmed != nil {
			emit(y, xMin+k, trimmed)
		}
	}
}

const (
	// defaultFlatness is the curve tolerance in device pixels.
	defaultFlatness = 0.25

	// maxCurveSegments bounds the number of segments used to flatten
	// one curve.
	maxCurveSegments = 1 << 14

	// defaultMiterLimit is the SVG default for stroke-miterlimit.
	defaultMiterLimit = 4.0

	// horizontalEdgeThreshold is the minimal vertical extent of an edge.
	horizontalEdgeThreshold = 1e-10

	// smallPathThreshold is the bounding box area, in pixels, below which
	// fillSmallPath is used.
	smallPathThreshold = 65536

	// zeroLengthThreshold is the minimal length of a stroke segment.
	zeroLengthThreshold = 1e-10

	// collinearityThreshold bounds the sine of the angle between two
	// segments which are treated as collinear.
	collinearityThreshold = 1e-6

	// cuspCosineThreshold detects segments which double back, about 179.4°.
	cuspCosineThreshold = -0.9999
)
