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
	"errors"
	"fmt"
	"math"
	"strconv"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

var errNoCommand = errors.New("path data does not start with a moveto")

// ParsePath converts SVG path data into a path.
//
// On malformed input, the path up to the last complete segment is returned
// together with an error describing the problem. Renderers draw this
// partial path.
func ParsePath(d string) (*path.Data, error) {
	p := &pathParser{s: scanner{src: d}, out: &path.Data{}}
	err := p.run()
	return p.out, err
}

type pathParser struct {
	s   scanner
	out *path.Data

	cur, start vec.Vec2
	ctrl       vec.Vec2 // reflected control point for S and T
	prev       byte     // previous command, upper case
	open       bool     // a subpath has been started
	closed     bool     // the last command was a closepath
}

func (p *pathParser) run() error {
	var cmd byte
	for {
		p.s.skipSpace()
		if p.s.done() {
			return nil
		}

		c := p.s.peek()
		switch {
		case isCommand(c):
			cmd = c
			p.s.pos++
		case cmd == 0:
			return errNoCommand
		case cmd == 'Z' || cmd == 'z':
			return p.s.errorf("unexpected number after closepath")
		case cmd == 'M':
			cmd = 'L'
		case cmd == 'm':
			cmd = 'l'
		}
		if !p.open && cmd != 'M' && cmd != 'm' {
			return errNoCommand
		}

		if err := p.segment(cmd); err != nil {
			return err
		}
	}
}

func argCount(cmd byte) int {
	switch cmd {
	case 'H', 'V':
		return 1
	case 'M', 'L', 'T':
		return 2
	case 'S', 'Q':
		return 4
	case 'C':
		return 6
	case 'A':
		return 7
	}
	return 0
}

func isCommand(c byte) bool {
	switch c {
	case 'M', 'm', 'L', 'l', 'H', 'h', 'V', 'v', 'C', 'c', 'S', 's',
		'Q', 'q', 'T', 't', 'A', 'a', 'Z', 'z':
		return true
	}
	return false
}

// segment reads the arguments of one command and appends the result.
func (p *pathParser) segment(cmd byte) error {
	rel := cmd >= 'a'
	upper := cmd
	if rel {
		upper -= 'a' - 'A'
	}

	abs := func(v vec.Vec2) vec.Vec2 {
		if rel {
			return p.cur.Add(v)
		}
		return v
	}

	var args [7]float64
	for i := range argCount(upper) {
		var err error
		if upper == 'A' && (i == 3 || i == 4) {
			args[i], err = p.s.flag()
		} else {
			args[i], err = p.s.number()
		}
		if err != nil {
			return err
		}
	}

	if p.closed && upper != 'M' {
		// a new subpath starts at the end of the closed one
		p.out.MoveTo(p.start)
		p.closed = false
	}

	var reflected vec.Vec2
	switch p.prev {
	case 'C', 'S', 'Q', 'T':
		reflected = p.cur.Mul(2).Sub(p.ctrl)
	default:
		reflected = p.cur
	}

	switch upper {
	case 'M':
		pt := abs(vec.Vec2{X: args[0], Y: args[1]})
		p.out.MoveTo(pt)
		p.cur, p.start = pt, pt
		p.open = true
		p.closed = false
	case 'L':
		pt := abs(vec.Vec2{X: args[0], Y: args[1]})
		p.out.LineTo(pt)
		p.cur = pt
	case 'H':
		x := args[0]
		if rel {
			x += p.cur.X
		}
		p.cur = vec.Vec2{X: x, Y: p.cur.Y}
		p.out.LineTo(p.cur)
	case 'V':
		y := args[0]
		if rel {
			y += p.cur.Y
		}
		p.cur = vec.Vec2{X: p.cur.X, Y: y}
		p.out.LineTo(p.cur)
	case 'C':
		c1 := abs(vec.Vec2{X: args[0], Y: args[1]})
		c2 := abs(vec.Vec2{X: args[2], Y: args[3]})
		pt := abs(vec.Vec2{X: args[4], Y: args[5]})
		p.out.CubeTo(c1, c2, pt)
		p.ctrl, p.cur = c2, pt
	case 'S':
		if p.prev != 'C' && p.prev != 'S' {
			reflected = p.cur
		}
		c2 := abs(vec.Vec2{X: args[0], Y: args[1]})
		pt := abs(vec.Vec2{X: args[2], Y: args[3]})
		p.out.CubeTo(reflected, c2, pt)
		p.ctrl, p.cur = c2, pt
	case 'Q':
		c := abs(vec.Vec2{X: args[0], Y: args[1]})
		pt := abs(vec.Vec2{X: args[2], Y: args[3]})
		p.out.QuadTo(c, pt)
		p.ctrl, p.cur = c, pt
	case 'T':
		if p.prev != 'Q' && p.prev != 'T' {
			reflected = p.cur
		}
		pt := abs(vec.Vec2{X: args[0], Y: args[1]})
		p.out.QuadTo(reflected, pt)
		p.ctrl, p.cur = reflected, pt
	case 'A':
		pt := abs(vec.Vec2{X: args[5], Y: args[6]})
		arcTo(p.out, p.cur, args[0], args[1], args[2], args[3] != 0, args[4] != 0, pt)
		p.cur = pt
	case 'Z':
		p.out.Close()
		p.cur = p.start
		p.closed = true
	}
	p.prev = upper
	return nil
}

// arcTo appends an elliptical arc from p0 to p1 to the path, as a sequence
// of cubic Bézier curves. The parameters follow the SVG endpoint
// parameterization; out-of-range radii are corrected as described in
// SVG 1.1, appendix F.6.
func arcTo(out *path.Data, p0 vec.Vec2, rx, ry, xRotDeg float64, large, sweep bool, p1 vec.Vec2) {
	if p0 == p1 {
		return
	}
	rx, ry = math.Abs(rx), math.Abs(ry)
	if rx == 0 || ry == 0 {
		out.LineTo(p1)
		return
	}

	sinPhi, cosPhi := math.Sincos(xRotDeg * math.Pi / 180)
	dx, dy := (p0.X-p1.X)/2, (p0.Y-p1.Y)/2
	x1 := cosPhi*dx + sinPhi*dy
	y1 := -sinPhi*dx + cosPhi*dy

	if lambda := x1*x1/(rx*rx) + y1*y1/(ry*ry); lambda > 1 {
		s := math.Sqrt(lambda)
		rx *= s
		ry *= s
	}

	num := rx*rx*ry*ry - rx*rx*y1*y1 - ry*ry*x1*x1
	den := rx*rx*y1*y1 + ry*ry*x1*x1
	coef := math.Sqrt(max(0, num/den))
	if large == sweep {
		coef = -coef
	}
	cx1 := coef * rx * y1 / ry
	cy1 := -coef * ry * x1 / rx

	center := vec.Vec2{
		X: cosPhi*cx1 - sinPhi*cy1 + (p0.X+p1.X)/2,
		Y: sinPhi*cx1 + cosPhi*cy1 + (p0.Y+p1.Y)/2,
	}

	theta := math.Atan2((y1-cy1)/ry, (x1-cx1)/rx)
	end := math.Atan2((-y1-cy1)/ry, (-x1-cx1)/rx)
	delta := end - theta
	if sweep && delta < 0 {
		delta += 2 * math.Pi
	} else if !sweep && delta > 0 {
		delta -= 2 * math.Pi
	}

	// point on the ellipse and derivative at parameter t
	at := func(t float64) (pt, d vec.Vec2) {
		s, c := math.Sincos(t)
		pt = vec.Vec2{
			X: center.X + rx*c*cosPhi - ry*s*sinPhi,
			Y: center.Y + rx*c*sinPhi + ry*s*cosPhi,
		}
		d = vec.Vec2{
			X: -rx*s*cosPhi - ry*c*sinPhi,
			Y: -rx*s*sinPhi + ry*c*cosPhi,
		}
		return pt, d
	}

	n := max(int(math.Ceil(math.Abs(delta)/(math.Pi/2))), 1)
	step := delta / float64(n)
	k := 4.0 / 3.0 * math.Tan(step/4)
	a, da := at(theta)
	for i := 1; i <= n; i++ {
		b, db := at(theta + float64(i)*step)
		if i == n {
			b = p1
		}
		out.CubeTo(a.Add(da.Mul(k)), b.Sub(db.Mul(k)), b)
		a, da = b, db
	}
}

// scanner reads numbers and flags from SVG attribute values.
type scanner struct {
	src string
	pos int
}

func (s *scanner) done() bool {
	return s.pos >= len(s.src)
}

func (s *scanner) peek() byte {
	return s.src[s.pos]
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}

func (s *scanner) skipSpace() {
	for s.pos < len(s.src) && isSpace(s.src[s.pos]) {
		s.pos++
	}
}

// skipSeparator skips white space and at most one comma.
func (s *scanner) skipSeparator() {
	s.skipSpace()
	if s.pos < len(s.src) && s.src[s.pos] == ',' {
		s.pos++
		s.skipSpace()
	}
}

func (s *scanner) errorf(format string, args ...any) error {
	return fmt.Errorf("offset %d: "+format, append([]any{s.pos}, args...)...)
}

// number reads a floating point number in SVG syntax, followed by an
// optional separator. Numbers may follow each other without separator
// where this is unambiguous, as in "1.5.5" or "3-4".
func (s *scanner) number() (float64, error) {
	s.skipSpace()
	start := s.pos
	i := s.pos
	if i < len(s.src) && (s.src[i] == '+' || s.src[i] == '-') {
		i++
	}
	digits := 0
	for i < len(s.src) && isDigit(s.src[i]) {
		i++
		digits++
	}
	if i < len(s.src) && s.src[i] == '.' {
		i++
		for i < len(s.src) && isDigit(s.src[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return 0, s.errorf("expected number")
	}
	if i < len(s.src) && (s.src[i] == 'e' || s.src[i] == 'E') {
		j := i + 1
		if j < len(s.src) && (s.src[j] == '+' || s.src[j] == '-') {
			j++
		}
		if j < len(s.src) && isDigit(s.src[j]) {
			for j < len(s.src) && isDigit(s.src[j]) {
				j++
			}
			i = j
		}
	}

	x, err := strconv.ParseFloat(s.src[start:i], 64)
	if err != nil {
		return 0, s.errorf("invalid number %q", s.src[start:i])
	}
	s.pos = i
	s.skipSeparator()
	return x, nil
}

// flag reads an arc flag, which is a single '0' or '1' and need not be
// separated from what follows.
func (s *scanner) flag() (float64, error) {
	s.skipSpace()
	if s.done() {
		return 0, s.errorf("expected flag")
	}
	var x float64
	switch s.peek() {
	case '0':
	case '1':
		x = 1
	default:
		return 0, s.errorf("expected flag")
	}
	s.pos++
	s.skipSeparator()
	return x, nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
