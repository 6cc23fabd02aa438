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

// Package testcases holds SVG documents used by the tests, the benchmarks
// and the reference image generator.
package testcases

import (
	"fmt"
	"strconv"
	"strings"
)

// Document is a single rendering test.
type Document struct {
	Name   string // lowercase a-z, 0-9 and _ only
	Width  int    // output width in pixels
	Height int    // output height in pixels
	SVG    string // the complete document
}

// All lists the test documents by category.
var All = map[string][]Document{
	"complex":   complexDocs,
	"curve":     curve,
	"dash":      dash,
	"fill":      fill,
	"large":     large,
	"precision": precision,
	"shape":     shape,
	"stroke":    stroke,
	"style":     style,
	"subpath":   subpath,
	"transform": transform,
	"viewbox":   viewbox,
}

// doc wraps body in an <svg> element of the given size.
func doc(width, height int, body string) string {
	return fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d">
%s
</svg>
`, width, height, strings.TrimSpace(body))
}

// fillPath returns a black <path> element with the given fill rule.
func fillPath(d, rule string) string {
	return fmt.Sprintf(`<path d="%s" fill-rule="%s"/>`, d, rule)
}

// strokePath returns an unfilled <path> element with a black stroke.
// attrs are appended to the element verbatim.
func strokePath(d, attrs string) string {
	return fmt.Sprintf(`<path d="%s" fill="none" stroke="black" %s/>`, d, attrs)
}

// pathData builds the value of a d attribute.
type pathData struct {
	b strings.Builder
}

func (p *pathData) add(cmd byte, coords ...float64) *pathData {
	if p.b.Len() > 0 {
		p.b.WriteByte(' ')
	}
	p.b.WriteByte(cmd)
	for i, x := range coords {
		if i > 0 {
			p.b.WriteByte(',')
		}
		p.b.WriteString(strconv.FormatFloat(x, 'f', -1, 64))
	}
	return p
}

func (p *pathData) M(x, y float64) *pathData { return p.add('M', x, y) }
func (p *pathData) L(x, y float64) *pathData { return p.add('L', x, y) }
func (p *pathData) Q(x1, y1, x, y float64) *pathData {
	return p.add('Q', x1, y1, x, y)
}
func (p *pathData) C(x1, y1, x2, y2, x, y float64) *pathData {
	return p.add('C', x1, y1, x2, y2, x, y)
}
func (p *pathData) Z() *pathData { return p.add('Z') }

func (p *pathData) String() string {
	return p.b.String()
}
