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
	"math"
	"strings"

	"seehuhn.de/go/geom/matrix"
)

// ParseTransform parses the value of a transform attribute.
// The result maps the element's user space to the user space of its
// parent.
func ParseTransform(s string) (matrix.Matrix, error) {
	m := matrix.Identity
	sc := scanner{src: s}
	for {
		sc.skipSeparator()
		if sc.done() {
			return m, nil
		}

		start := sc.pos
		for !sc.done() && (isLetter(sc.peek())) {
			sc.pos++
		}
		name := s[start:sc.pos]
		sc.skipSpace()
		if name == "" || sc.done() || sc.peek() != '(' {
			return matrix.Identity, sc.errorf("expected transform function")
		}
		sc.pos++

		var args []float64
		for {
			sc.skipSpace()
			if sc.done() {
				return matrix.Identity, sc.errorf("unterminated %s()", name)
			}
			if sc.peek() == ')' {
				sc.pos++
				break
			}
			x, err := sc.number()
			if err != nil {
				return matrix.Identity, err
			}
			args = append(args, x)
		}

		t, ok := transformFunc(name, args)
		if !ok {
			return matrix.Identity, sc.errorf("invalid %s() with %d arguments", name, len(args))
		}
		// later functions in the list are applied first
		m = t.Mul(m)
	}
}

func isLetter(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func transformFunc(name string, a []float64) (matrix.Matrix, bool) {
	switch strings.ToLower(name) {
	case "matrix":
		if len(a) == 6 {
			return matrix.Matrix{a[0], a[1], a[2], a[3], a[4], a[5]}, true
		}
	case "translate":
		switch len(a) {
		case 1:
			return matrix.Translate(a[0], 0), true
		case 2:
			return matrix.Translate(a[0], a[1]), true
		}
	case "scale":
		switch len(a) {
		case 1:
			return matrix.Scale(a[0], a[0]), true
		case 2:
			return matrix.Scale(a[0], a[1]), true
		}
	case "rotate":
		if len(a) != 1 && len(a) != 3 {
			break
		}
		s, c := math.Sincos(a[0] * math.Pi / 180)
		r := matrix.Matrix{c, s, -s, c, 0, 0}
		if len(a) == 3 {
			r = matrix.Translate(-a[1], -a[2]).Mul(r).Mul(matrix.Translate(a[1], a[2]))
		}
		return r, true
	case "skewx":
		if len(a) == 1 {
			return matrix.Matrix{1, 0, math.Tan(a[0] * math.Pi / 180), 1, 0, 0}, true
		}
	case "skewy":
		if len(a) == 1 {
			return matrix.Matrix{1, math.Tan(a[0] * math.Pi / 180), 0, 1, 0, 0}, true
		}
	}
	return matrix.Identity, false
}
