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
	"strconv"
	"strings"

	"seehuhn.de/go/geom/rect"
)

// pixels per unit, at 96 dpi
var unitScale = map[string]float64{
	"":   1,
	"px": 1,
	"pt": 96.0 / 72,
	"pc": 16,
	"mm": 96 / 25.4,
	"cm": 96 / 2.54,
	"in": 96,
	"em": 16,
	"ex": 8,
}

// axis selects the reference length for percentages.
type axis int

const (
	axisX axis = iota
	axisY
	axisOther // the normalized diagonal
)

// length is an SVG length value.
type length struct {
	v       float64
	percent bool
}

func parseLength(s string) (length, bool) {
	s = strings.TrimSpace(s)
	if num, ok := strings.CutSuffix(s, "%"); ok {
		x, err := strconv.ParseFloat(strings.TrimSpace(num), 64)
		if err != nil || math.IsNaN(x) || math.IsInf(x, 0) {
			return length{}, false
		}
		return length{v: x, percent: true}, true
	}

	i := len(s)
	for i > 0 && isLetter(s[i-1]) {
		i--
	}
	scale, ok := unitScale[strings.ToLower(s[i:])]
	if !ok {
		return length{}, false
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(s[:i]), 64)
	if err != nil || math.IsNaN(x) || math.IsInf(x, 0) {
		return length{}, false
	}
	return length{v: x * scale}, true
}

// resolve converts l to user units, with percentages taken relative to
// the viewport vp.
func (l length) resolve(vp rect.Rect, a axis) float64 {
	if !l.percent {
		return l.v
	}
	w, h := vp.URx-vp.LLx, vp.URy-vp.LLy
	var ref float64
	switch a {
	case axisX:
		ref = w
	case axisY:
		ref = h
	default:
		ref = math.Sqrt((w*w + h*h) / 2)
	}
	return l.v / 100 * ref
}

// parseNumberList parses a list of numbers separated by white space
// and/or commas.
func parseNumberList(s string) ([]float64, error) {
	var res []float64
	sc := scanner{src: s}
	sc.skipSpace()
	for !sc.done() {
		x, err := sc.number()
		if err != nil {
			return res, err
		}
		res = append(res, x)
	}
	return res, nil
}
