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
	"encoding/xml"
	"image/color"
	"strconv"
	"strings"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/svgrender/raster"
)

// style holds the computed presentation properties of an element.
type style struct {
	fill, stroke  paint
	color         color.NRGBA
	fillOpacity   float64
	strokeOpacity float64
	fillRule      raster.FillRule

	strokeWidth float64
	cap         graphics.LineCapStyle
	join        graphics.LineJoinStyle
	miterLimit  float64
	dash        []float64
	dashOffset  float64
	visible     bool

	// not inherited
	opacity float64
	display bool
}

// initialStyle returns the initial values of all properties.
func initialStyle() style {
	black := color.NRGBA{A: 255}
	return style{
		fill:          paint{kind: paintColor, c: black},
		stroke:        paint{kind: paintNone},
		color:         black,
		fillOpacity:   1,
		strokeOpacity: 1,
		fillRule:      raster.NonZero,
		strokeWidth:   1,
		cap:           graphics.LineCapButt,
		join:          graphics.LineJoinMiter,
		miterLimit:    4,
		visible:       true,
		opacity:       1,
		display:       true,
	}
}

// child returns the style inherited by a child element.
func (s style) child() style {
	c := s
	c.opacity = 1
	c.display = true
	return c
}

// applyAttrs sets the properties given as presentation attributes and in
// the style attribute. Declarations in the style attribute take
// precedence.
func (s *style) applyAttrs(attrs []xml.Attr, vp rect.Rect) {
	var inline string
	for _, a := range attrs {
		if a.Name.Space != "" && a.Name.Space != svgNamespace {
			continue
		}
		if a.Name.Local == "style" {
			inline = a.Value
			continue
		}
		s.set(a.Name.Local, a.Value, vp)
	}

	for _, decl := range strings.Split(inline, ";") {
		name, value, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		value = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(value), "!important"))
		s.set(strings.TrimSpace(name), value, vp)
	}
}

// set applies a single property. Unknown properties and invalid values
// are ignored, which keeps the inherited value.
func (s *style) set(name, value string, vp rect.Rect) {
	value = strings.TrimSpace(value)
	if value == "inherit" || value == "" {
		return
	}

	switch name {
	case "fill":
		if p, ok := parsePaint(value); ok {
			s.fill = p
		}
	case "stroke":
		if p, ok := parsePaint(value); ok {
			s.stroke = p
		}
	case "color":
		if c, ok := parseColor(value); ok {
			s.color = c
		}
	case "fill-opacity":
		if x, ok := parseOpacity(value); ok {
			s.fillOpacity = x
		}
	case "stroke-opacity":
		if x, ok := parseOpacity(value); ok {
			s.strokeOpacity = x
		}
	case "opacity":
		if x, ok := parseOpacity(value); ok {
			s.opacity = x
		}
	case "fill-rule":
		switch value {
		case "nonzero":
			s.fillRule = raster.NonZero
		case "evenodd":
			s.fillRule = raster.EvenOdd
		}
	case "stroke-width":
		if l, ok := parseLength(value); ok && l.v >= 0 {
			s.strokeWidth = l.resolve(vp, axisOther)
		}
	case "stroke-linecap":
		switch value {
		case "butt":
			s.cap = graphics.LineCapButt
		case "round":
			s.cap = graphics.LineCapRound
		case "square":
			s.cap = graphics.LineCapSquare
		}
	case "stroke-linejoin":
		switch value {
		case "miter", "miter-clip", "arcs":
			s.join = graphics.LineJoinMiter
		case "round":
			s.join = graphics.LineJoinRound
		case "bevel":
			s.join = graphics.LineJoinBevel
		}
	case "stroke-miterlimit":
		if x, err := strconv.ParseFloat(value, 64); err == nil && x >= 1 {
			s.miterLimit = x
		}
	case "stroke-dasharray":
		if value == "none" {
			s.dash = nil
			return
		}
		if dash, ok := parseDashArray(value, vp); ok {
			s.dash = dash
		}
	case "stroke-dashoffset":
		if l, ok := parseLength(value); ok {
			s.dashOffset = l.resolve(vp, axisOther)
		}
	case "display":
		s.display = value != "none"
	case "visibility":
		s.visible = value == "visible"
	}
}

func parseOpacity(s string) (float64, bool) {
	var x float64
	var err error
	if num, ok := strings.CutSuffix(s, "%"); ok {
		x, err = strconv.ParseFloat(num, 64)
		x /= 100
	} else {
		x, err = strconv.ParseFloat(s, 64)
	}
	if err != nil {
		return 0, false
	}
	return max(0, min(1, x)), true
}

// parseDashArray parses a list of lengths. A list which contains a
// negative value is returned as is; the rasterizer strokes it solid.
func parseDashArray(s string, vp rect.Rect) ([]float64, bool) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	if len(fields) == 0 {
		return nil, false
	}
	dash := make([]float64, len(fields))
	for i, f := range fields {
		l, ok := parseLength(f)
		if !ok {
			return nil, false
		}
		dash[i] = l.resolve(vp, axisOther)
	}
	return dash, true
}

// resolve returns the colour of p, or nil for no paint.
func (s *style) resolve(p paint, opacity float64) *color.NRGBA {
	var c color.NRGBA
	switch p.kind {
	case paintColor:
		c = p.c
	case paintCurrent:
		c = s.color
	default:
		return nil
	}
	c.A = uint8(float64(c.A)*opacity + 0.5)
	if c.A == 0 {
		return nil
	}
	return &c
}
