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
	"math"
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// strokeSegment is a flattened piece of a stroked path, in user space.
type strokeSegment struct {
	A, B vec.Vec2
	T    vec.Vec2 // unit tangent from A to B
	N    vec.Vec2 // T rotated by 90° counter-clockwise
}

// Stroke reports the coverage of the outline of p, using the stroke
// parameters Width, Cap, Join, MiterLimit, Dash and DashPhase.
//
// The outlines of all subpaths and dashes are filled together with the
// nonzero rule, so that self-overlapping strokes are painted only once.
func (r *Rasterizer) Stroke(p path.Path, emit EmitFunc) {
	if r.Width <= 0 {
		return
	}

	r.flattenPath(p)
	if len(r.segsOffsets) == 0 && len(r.degeneratePoints) == 0 {
		return
	}

	r.stroke = r.stroke[:0]
	r.strokeOffsets = r.strokeOffsets[:0]

	// A zero-length subpath has no direction, so square caps are drawn
	// aligned with the user space axes.
	for _, pt := range r.degeneratePoints {
		r.addDot(pt, vec.Vec2{X: 1})
	}

	if r.dashed() {
		r.strokeDashes()
	} else {
		for i := range r.segsOffsets {
			r.strokePolygon(subslice(r.segs, r.segsOffsets, i), r.subpathClosed[i])
		}
	}

	r.resetEdges()
	for i, start := range r.strokeOffsets {
		end := len(r.stroke)
		if i+1 < len(r.strokeOffsets) {
			end = r.strokeOffsets[i+1]
		}
		poly := r.stroke[start:end]
		if len(poly) < 2 {
			continue
		}
		for j := 1; j < len(poly); j++ {
			r.addEdge(poly[j-1], poly[j])
		}
		r.addEdge(poly[len(poly)-1], poly[0])
	}
	r.fillEdges(NonZero, emit)
}

// dashed reports whether the dash array describes a usable pattern.
// Patterns with negative entries or a zero sum render as solid lines.
func (r *Rasterizer) dashed() bool {
	if len(r.Dash) == 0 {
		return false
	}
	total := 0.0
	for _, d := range r.Dash {
		if d < 0 || math.IsNaN(d) {
			return false
		}
		total += d
	}
	return total > 0
}

// subslice returns part i of a buffer which is split at the given offsets.
func subslice(buf []strokeSegment, offsets []int, i int) []strokeSegment {
	end := len(buf)
	if i+1 < len(offsets) {
		end = offsets[i+1]
	}
	return buf[offsets[i]:end]
}

// strokePolygon appends the outline of one subpath (or dash) to r.stroke
// and records it as a separate polygon. Degenerate outlines are dropped.
func (r *Rasterizer) strokePolygon(segs []strokeSegment, closed bool) {
	start := len(r.stroke)
	if closed {
		r.strokeClosed(segs)
	} else {
		r.strokeOpen(segs)
	}
	if len(r.stroke)-start >= 3 {
		r.strokeOffsets = append(r.strokeOffsets, start)
	} else {
		r.stroke = r.stroke[:start]
	}
}

// addDot appends the cap shape for a stroke of length zero at pt.
// Butt caps produce nothing.
func (r *Rasterizer) addDot(pt, dir vec.Vec2) {
	d := r.Width / 2
	start := len(r.stroke)
	switch r.Cap {
	case graphics.LineCapRound:
		r.addArc(pt, d, vec.Vec2{X: 1}, 2*math.Pi, true)
	case graphics.LineCapSquare:
		n := vec.Vec2{X: -dir.Y, Y: dir.X}
		r.stroke = append(r.stroke,
			pt.Add(dir.Mul(d)).Add(n.Mul(d)),
			pt.Add(dir.Mul(d)).Sub(n.Mul(d)),
			pt.Sub(dir.Mul(d)).Sub(n.Mul(d)),
			pt.Sub(dir.Mul(d)).Add(n.Mul(d)),
		)
	default:
		return
	}
	r.strokeOffsets = append(r.strokeOffsets, start)
}

// flattenPath splits p into subpaths of straight segments.
// Segments go to r.segs, with r.segsOffsets marking where each subpath
// starts and r.subpathClosed recording whether it was closed. Subpaths
// which consist of drawing commands but have no extent are collected in
// r.degeneratePoints.
func (r *Rasterizer) flattenPath(p path.Path) {
	r.segs = r.segs[:0]
	r.segsOffsets = r.segsOffsets[:0]
	r.subpathClosed = r.subpathClosed[:0]
	r.degeneratePoints = r.degeneratePoints[:0]

	var current, start vec.Vec2
	first := 0
	open := false
	drawn := false

	finish := func(closed bool) {
		switch {
		case len(r.segs) > first:
			r.segsOffsets = append(r.segsOffsets, first)
			r.subpathClosed = append(r.subpathClosed, closed)
		case drawn || closed:
			r.degeneratePoints = append(r.degeneratePoints, start)
		}
		first = len(r.segs)
		drawn = false
	}

	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			if open {
				finish(false)
			}
			current = pts[0]
			start = current
			first = len(r.segs)
			open = true
			drawn = false
		case path.CmdLineTo:
			if !open {
				continue
			}
			drawn = true
			r.addStrokeSegment(current, pts[0])
			current = pts[0]
		case path.CmdQuadTo:
			if !open {
				continue
			}
			drawn = true
			r.flattenQuadratic(current, pts[0], pts[1], r.addStrokeSegment)
			current = pts[1]
		case path.CmdCubeTo:
			if !open {
				continue
			}
			drawn = true
			r.flattenCubic(current, pts[0], pts[1], pts[2], r.addStrokeSegment)
			current = pts[2]
		case path.CmdClose:
			if !open {
				continue
			}
			if current != start {
				r.addStrokeSegment(current, start)
			}
			finish(true)
			current = start
			open = false
		}
	}
	if open {
		finish(false)
	}
}

func (r *Rasterizer) addStrokeSegment(a, b vec.Vec2) {
	d := b.Sub(a)
	l := d.Length()
	if l < zeroLengthThreshold {
		return
	}
	t := d.Mul(1 / l)
	r.segs = append(r.segs, strokeSegment{A: a, B: b, T: t, N: vec.Vec2{X: -t.Y, Y: t.X}})
}

func cross(a, b vec.Vec2) float64 {
	return a.X*b.Y - a.Y*b.X
}

// strokeClosed builds the outline of a closed subpath as a single polygon.
// The +N side is walked forwards, then the -N side backwards. Joins are
// added on the outside of each corner; on the inside the two offset lines
// are cut at their intersection.
func (r *Rasterizer) strokeClosed(segs []strokeSegment) {
	d := r.Width / 2
	first := &segs[0]
	last := &segs[len(segs)-1]
	sinClose := cross(last.T, first.T)

	r.stroke = append(r.stroke, first.A.Add(first.N.Mul(d)))
	for i := range segs {
		seg := &segs[i]
		next := first
		sinTheta := sinClose
		if i < len(segs)-1 {
			next = &segs[i+1]
			sinTheta = cross(seg.T, next.T)
		}
		switch {
		case math.Abs(sinTheta) < collinearityThreshold:
			r.stroke = append(r.stroke, seg.B.Add(seg.N.Mul(d)), next.A.Add(next.N.Mul(d)))
		case sinTheta > 0:
			r.addInnerCorner(seg.B, seg.T, next.T, seg.N, next.N, d, true)
		default:
			r.stroke = append(r.stroke, seg.B.Add(seg.N.Mul(d)))
			r.addJoin(seg.B, seg.T, next.T, d, true)
			r.stroke = append(r.stroke, next.A.Add(next.N.Mul(d)))
		}
	}

	switch {
	case math.Abs(sinClose) < collinearityThreshold:
		r.stroke = append(r.stroke, first.A.Sub(first.N.Mul(d)), last.B.Sub(last.N.Mul(d)))
	case sinClose > 0:
		r.stroke = append(r.stroke, first.A.Sub(first.N.Mul(d)))
		r.addJoin(first.A, last.T, first.T, d, false)
		r.stroke = append(r.stroke, last.B.Sub(last.N.Mul(d)))
	default:
		r.addInnerCorner(first.A, last.T, first.T, last.N, first.N, d, false)
	}

	for i := len(segs) - 1; i > 0; i-- {
		seg := &segs[i]
		prev := &segs[i-1]
		sinTheta := cross(prev.T, seg.T)
		switch {
		case math.Abs(sinTheta) < collinearityThreshold:
			r.stroke = append(r.stroke, seg.A.Sub(seg.N.Mul(d)), prev.B.Sub(prev.N.Mul(d)))
		case sinTheta > 0:
			r.stroke = append(r.stroke, seg.A.Sub(seg.N.Mul(d)))
			r.addJoin(seg.A, prev.T, seg.T, d, false)
			r.stroke = append(r.stroke, prev.B.Sub(prev.N.Mul(d)))
		default:
			r.addInnerCorner(seg.A, prev.T, seg.T, prev.N, seg.N, d, false)
		}
	}
	r.stroke = append(r.stroke, first.A.Sub(first.N.Mul(d)))
}

// strokeOpen builds the outline of an open subpath: start cap, +N side
// forwards, end cap, -N side backwards.
func (r *Rasterizer) strokeOpen(segs []strokeSegment) {
	d := r.Width / 2
	first := &segs[0]
	last := &segs[len(segs)-1]

	r.addCap(first.A, first.T.Mul(-1), d)

	skip := false
	for i := range segs {
		seg := &segs[i]
		if !skip {
			r.stroke = append(r.stroke, seg.A.Add(seg.N.Mul(d)))
		}
		skip = false
		if i == len(segs)-1 {
			r.stroke = append(r.stroke, seg.B.Add(seg.N.Mul(d)))
			break
		}
		next := &segs[i+1]
		sinTheta := cross(seg.T, next.T)
		switch {
		case math.Abs(sinTheta) < collinearityThreshold:
			r.stroke = append(r.stroke, seg.B.Add(seg.N.Mul(d)))
		case sinTheta > 0:
			skip = r.addInnerCorner(seg.B, seg.T, next.T, seg.N, next.N, d, true)
		default:
			r.stroke = append(r.stroke, seg.B.Add(seg.N.Mul(d)))
			r.addJoin(seg.B, seg.T, next.T, d, true)
		}
	}

	r.addCap(last.B, last.T, d)

	skip = false
	for i := len(segs) - 1; i >= 0; i-- {
		seg := &segs[i]
		if !skip {
			r.stroke = append(r.stroke, seg.B.Sub(seg.N.Mul(d)))
		}
		skip = false
		if i == 0 {
			r.stroke = append(r.stroke, seg.A.Sub(seg.N.Mul(d)))
			break
		}
		prev := &segs[i-1]
		sinTheta := cross(prev.T, seg.T)
		switch {
		case math.Abs(sinTheta) < collinearityThreshold:
			r.stroke = append(r.stroke, seg.A.Sub(seg.N.Mul(d)))
		case sinTheta > 0:
			r.stroke = append(r.stroke, seg.A.Sub(seg.N.Mul(d)))
			r.addJoin(seg.A, prev.T, seg.T, d, false)
		default:
			skip = r.addInnerCorner(seg.A, prev.T, seg.T, prev.N, seg.N, d, false)
		}
	}
}

// addCap appends the cap at P. T points away from the stroked line.
func (r *Rasterizer) addCap(P, T vec.Vec2, d float64) {
	N := vec.Vec2{X: -T.Y, Y: T.X}
	switch r.Cap {
	case graphics.LineCapSquare:
		ext := P.Add(T.Mul(d))
		r.stroke = append(r.stroke, ext.Add(N.Mul(d)), ext.Sub(N.Mul(d)))
	case graphics.LineCapRound:
		r.addArc(P, d, N, -math.Pi, true)
	}
}

// innerCorner returns the point where the two offset lines on the inner
// side of a corner at P intersect. ok is false if the segments are nearly
// parallel or antiparallel.
func innerCorner(P, T1, T2 vec.Vec2, d float64, positive bool) (pt vec.Vec2, ok bool) {
	cosTheta := T1.Dot(T2)
	if cosTheta > 1-1e-9 {
		return vec.Vec2{}, false
	}
	cosHalf := math.Sqrt((1 + cosTheta) / 2)
	if cosHalf < 1e-9 {
		return vec.Vec2{}, false
	}

	dir := vec.Vec2{X: -T1.Y, Y: T1.X}.Add(vec.Vec2{X: -T2.Y, Y: T2.X})
	if !positive {
		dir = dir.Mul(-1)
	}
	l := dir.Length()
	if l < 1e-9 {
		return vec.Vec2{}, false
	}
	return P.Add(dir.Mul(d / (l * cosHalf))), true
}

// addInnerCorner appends the inner side of a corner. It returns true if the
// intersection point was used, in which case the caller must not add the
// offset point of the following segment.
func (r *Rasterizer) addInnerCorner(P, T1, T2, N1, N2 vec.Vec2, d float64, positive bool) bool {
	if pt, ok := innerCorner(P, T1, T2, d, positive); ok {
		r.stroke = append(r.stroke, pt)
		return true
	}
	if positive {
		r.stroke = append(r.stroke, P.Add(N1.Mul(d)), P.Add(N2.Mul(d)))
	} else {
		r.stroke = append(r.stroke, P.Sub(N1.Mul(d)), P.Sub(N2.Mul(d)))
	}
	return false
}

// addJoin appends the outer side of a join at P, where the direction
// changes from T1 to T2.
func (r *Rasterizer) addJoin(P, T1, T2 vec.Vec2, d float64, positive bool) {
	cosTheta := T1.Dot(T2)
	sinTheta := cross(T1, T2)
	if math.Abs(sinTheta) < collinearityThreshold {
		return
	}

	if cosTheta < cuspCosineThreshold {
		r.addCap(P, T1, d)
		r.addCap(P, T2.Mul(-1), d)
		return
	}

	N1 := vec.Vec2{X: -T1.Y, Y: T1.X}
	N2 := vec.Vec2{X: -T2.Y, Y: T2.X}

	switch r.Join {
	case graphics.LineJoinMiter:
		// The miter length relative to the stroke width is 1/cos(θ/2).
		cosHalf := math.Sqrt((1 + cosTheta) / 2)
		if cosHalf <= 0 || 1/cosHalf > r.MiterLimit+1e-10 {
			return
		}
		bisector := N1.Add(N2)
		if !positive {
			bisector = bisector.Mul(-1)
		}
		if l := bisector.Length(); l > zeroLengthThreshold {
			r.stroke = append(r.stroke, P.Add(bisector.Mul(d/(l*cosHalf))))
		}

	case graphics.LineJoinRound:
		angle := math.Acos(max(-1, min(1, cosTheta)))
		if positive {
			if sinTheta < 0 {
				angle = -angle
			}
			r.addArc(P, d, N1, angle, false)
		} else {
			if sinTheta > 0 {
				angle = -angle
			}
			r.addArc(P, d, N2.Mul(-1), angle, false)
		}
	}
}

// addArc appends points on a circular arc around center, starting in
// direction startDir and sweeping by the given angle (counter-clockwise
// for positive values). The number of points depends on the device-space
// radius and the flatness tolerance.
func (r *Rasterizer) addArc(center vec.Vec2, radius float64, startDir vec.Vec2, sweep float64, includeStart bool) {
	devRadius := max(
		r.transformLinear(vec.Vec2{X: radius}).Length(),
		r.transformLinear(vec.Vec2{Y: radius}).Length(),
	)

	n := 1
	if devRadius >= r.Flatness {
		// a chord spanning angle θ deviates from the arc by r(1-cos(θ/2))
		step := 2 * math.Acos(1-r.Flatness/devRadius)
		if step <= 0 || math.IsNaN(step) {
			step = math.Pi / 4
		}
		n = max(int(math.Ceil(math.Abs(sweep)/step)), 1)
	}

	i0 := 1
	if includeStart {
		i0 = 0
	}
	for i := i0; i <= n; i++ {
		s, c := math.Sincos(sweep * float64(i) / float64(n))
		dir := vec.Vec2{
			X: startDir.X*c - startDir.Y*s,
			Y: startDir.X*s + startDir.Y*c,
		}
		r.stroke = append(r.stroke, center.Add(dir.Mul(radius)))
	}
}

// strokeDashes splits the flattened subpaths according to the dash pattern
// and strokes every resulting dash as an open subpath.
func (r *Rasterizer) strokeDashes() {
	r.applyDashPattern()
	for _, rg := range r.dashRanges {
		segs := r.dashedSegs[rg[0]:rg[1]]
		if len(segs) == 1 && segs[0].A == segs[0].B {
			r.addDot(segs[0].A, segs[0].T)
			continue
		}
		r.strokePolygon(segs, false)
	}
}

// applyDashPattern fills r.dashedSegs and r.dashRanges with the
// "on" parts of all subpaths. A pattern with an odd number of entries is
// repeated to make the count even. For closed subpaths which start and
// end inside a dash, the first and last dash are merged.
func (r *Rasterizer) applyDashPattern() {
	r.dashedSegs = r.dashedSegs[:0]
	r.dashRanges = r.dashRanges[:0]

	dash := r.Dash
	n := len(dash)
	period := 0.0
	for _, d := range dash {
		period += d
	}
	if n%2 == 1 {
		period *= 2
	}

	phase := math.Mod(r.DashPhase, period)
	if phase < 0 {
		phase += period
	}

	for sp := range r.segsOffsets {
		segments := subslice(r.segs, r.segsOffsets, sp)
		closed := r.subpathClosed[sp]

		idx := 0
		dist := phase
		for dist >= dash[idx%n] && (dist > 0 || dash[idx%n] > 0) {
			dist -= dash[idx%n]
			idx++
		}
		remaining := dash[idx%n] - dist
		on := idx%2 == 0

		if on && remaining == 0 {
			seg := segments[0]
			k := len(r.dashedSegs)
			r.dashedSegs = append(r.dashedSegs, strokeSegment{A: seg.A, B: seg.A, T: seg.T, N: seg.N})
			r.dashRanges = append(r.dashRanges, [2]int{k, k + 1})
			idx++
			remaining = dash[idx%n]
			on = idx%2 == 0
		}

		startedOn := on
		firstStart, firstEnd := -1, -1
		dashStart := len(r.dashedSegs)
		segIdx := 0
		segPos := 0.0

		for segIdx < len(segments) {
			seg := segments[segIdx]
			segLen := seg.B.Sub(seg.A).Length()
			left := segLen - segPos

			if remaining >= left {
				if on {
					piece := seg
					if segPos > 0 {
						piece.A = seg.A.Add(seg.B.Sub(seg.A).Mul(segPos / segLen))
					}
					r.dashedSegs = append(r.dashedSegs, piece)
				}
				remaining -= left
				segIdx++
				segPos = 0
				continue
			}

			end := segPos + remaining
			if on {
				a := seg.A.Add(seg.B.Sub(seg.A).Mul(segPos / segLen))
				b := seg.A.Add(seg.B.Sub(seg.A).Mul(end / segLen))
				if b.Sub(a).Length() > zeroLengthThreshold {
					r.dashedSegs = append(r.dashedSegs, strokeSegment{A: a, B: b, T: seg.T, N: seg.N})
				} else if len(r.dashedSegs) == dashStart {
					r.dashedSegs = append(r.dashedSegs, strokeSegment{A: a, B: a, T: seg.T, N: seg.N})
				}

				if len(r.dashedSegs) > dashStart {
					if firstStart < 0 {
						firstStart, firstEnd = dashStart, len(r.dashedSegs)
					}
					r.dashRanges = append(r.dashRanges, [2]int{dashStart, len(r.dashedSegs)})
					dashStart = len(r.dashedSegs)
				}
			}

			segPos = end
			idx++
			remaining = dash[idx%n]
			on = idx%2 == 0
		}

		if len(r.dashedSegs) == dashStart {
			continue
		}
		if closed && startedOn && on && firstStart >= 0 {
			// the first dash continues the last one across the start point
			r.dashedSegs = append(r.dashedSegs, r.dashedSegs[firstStart:firstEnd]...)
			for j, rg := range r.dashRanges {
				if rg[0] == firstStart {
					r.dashRanges = slices.Delete(r.dashRanges, j, j+1)
					break
				}
			}
		}
		r.dashRanges = append(r.dashRanges, [2]int{dashStart, len(r.dashedSegs)})
	}
}
