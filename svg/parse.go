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
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/htmlindex"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

const svgNamespace = "http://www.w3.org/2000/svg"

var (
	// ErrNotSVG is returned if the root element is not <svg>.
	ErrNotSVG = errors.New("not an SVG document")

	// ErrEmpty is returned if the input contains no elements.
	ErrEmpty = errors.New("empty document")
)

// elements which are parsed but never rendered, together with their
// content
var skipped = map[string]bool{
	"defs":           true,
	"title":          true,
	"desc":           true,
	"metadata":       true,
	"style":          true,
	"symbol":         true,
	"clipPath":       true,
	"mask":           true,
	"pattern":        true,
	"marker":         true,
	"linearGradient": true,
	"radialGradient": true,
	"filter":         true,
	"text":           true,
	"image":          true,
	"foreignObject":  true,
	"script":         true,
	"use":            true,
}

// frame is the state of an open container element.
type frame struct {
	style   style
	ctm     matrix.Matrix
	opacity float64
}

type parser struct {
	dec   *xml.Decoder
	doc   *Document
	vp    rect.Rect // viewport for percentage lengths
	stack []frame
}

// Parse reads an SVG document.
//
// The XML encoding declared in the document prolog is honoured.
// Malformed attribute values are ignored, in which case the property
// keeps its inherited or initial value. Malformed path data is rendered
// up to the first error.
func Parse(r io.Reader) (*Document, error) {
	dec := xml.NewDecoder(r)
	dec.Entity = xml.HTMLEntity
	dec.CharsetReader = func(label string, input io.Reader) (io.Reader, error) {
		enc, err := htmlindex.Get(label)
		if err != nil {
			return nil, err
		}
		return enc.NewDecoder().Reader(input), nil
	}

	p := &parser{dec: dec, doc: &Document{Align: AlignMid}}

	root, err := p.rootElement()
	if err != nil {
		return nil, err
	}
	p.readRoot(root)

	for len(p.stack) > 0 {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, fmt.Errorf("svg: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if err := p.startElement(t); err != nil {
				return nil, fmt.Errorf("svg: %w", err)
			}
		case xml.EndElement:
			p.stack = p.stack[:len(p.stack)-1]
		}
	}
	return p.doc, nil
}

// rootElement returns the first start element of the document.
func (p *parser) rootElement() (xml.StartElement, error) {
	for {
		tok, err := p.dec.Token()
		if err == io.EOF {
			return xml.StartElement{}, ErrEmpty
		} else if err != nil {
			return xml.StartElement{}, fmt.Errorf("svg: %w", err)
		}
		if se, ok := tok.(xml.StartElement); ok {
			if se.Name.Local != "svg" {
				return xml.StartElement{}, fmt.Errorf("%w: root element is <%s>", ErrNotSVG, se.Name.Local)
			}
			return se, nil
		}
	}
}

// readRoot processes the attributes of the outermost <svg> element and
// opens the first frame.
func (p *parser) readRoot(se xml.StartElement) {
	doc := p.doc
	if v, ok := attr(se, "width"); ok {
		if l, ok := parseLength(v); ok && !l.percent && l.v > 0 {
			doc.Width = l.v
		}
	}
	if v, ok := attr(se, "height"); ok {
		if l, ok := parseLength(v); ok && !l.percent && l.v > 0 {
			doc.Height = l.v
		}
	}
	if v, ok := attr(se, "viewBox"); ok {
		if vb, ok := parseViewBox(v); ok {
			doc.ViewBox = vb
		}
	}
	if v, ok := attr(se, "preserveAspectRatio"); ok {
		doc.Align = parseAlign(v)
	}

	if box, ok := doc.UserBox(); ok {
		p.vp = box
	} else {
		p.vp = rect.Rect{URx: 100, URy: 100}
	}

	s := initialStyle()
	s.applyAttrs(se.Attr, p.vp)
	p.push(s, matrix.Identity, 1)
}

func (p *parser) push(s style, ctm matrix.Matrix, opacity float64) {
	p.stack = append(p.stack, frame{style: s, ctm: ctm, opacity: opacity * s.opacity})
}

func (p *parser) startElement(se xml.StartElement) error {
	name := se.Name.Local
	if skipped[name] || (se.Name.Space != "" && se.Name.Space != svgNamespace) {
		return p.dec.Skip()
	}

	parent := p.stack[len(p.stack)-1]
	s := parent.style.child()
	s.applyAttrs(se.Attr, p.vp)
	if !s.display {
		return p.dec.Skip()
	}

	ctm := parent.ctm
	if v, ok := attr(se, "transform"); ok {
		if t, err := ParseTransform(v); err == nil {
			ctm = t.Mul(ctm)
		}
	}

	switch name {
	case "g", "a", "switch":
		p.push(s, ctm, parent.opacity)
		return nil
	case "svg":
		x := p.length(se, "x", axisX)
		y := p.length(se, "y", axisY)
		p.push(s, matrix.Translate(x, y).Mul(ctm), parent.opacity)
		return nil
	}

	d := p.shapePath(name, se)
	if d != nil && len(d.Cmds) > 0 && s.visible {
		p.emit(d, s, ctm, parent.opacity*s.opacity)
	}
	// shapes may contain descriptive elements
	return p.dec.Skip()
}

// emit appends a shape to the document, unless it paints nothing.
func (p *parser) emit(d *path.Data, s style, ctm matrix.Matrix, opacity float64) {
	sh := Shape{
		Path:     d,
		CTM:      ctm,
		Fill:     s.resolve(s.fill, s.fillOpacity),
		FillRule: s.fillRule,
		Opacity:  opacity,
	}
	if s.strokeWidth > 0 {
		sh.Stroke = s.resolve(s.stroke, s.strokeOpacity)
		sh.StrokeStyle = StrokeStyle{
			Width:      s.strokeWidth,
			Cap:        s.cap,
			Join:       s.join,
			MiterLimit: s.miterLimit,
			Dash:       s.dash,
			DashOffset: s.dashOffset,
		}
	}
	if (sh.Fill == nil && sh.Stroke == nil) || opacity <= 0 {
		return
	}
	p.doc.Shapes = append(p.doc.Shapes, sh)
}

// shapePath returns the outline of a basic shape or path element.
// The result is nil for unknown elements and for shapes which are not
// rendered, such as rectangles with zero width.
func (p *parser) shapePath(name string, se xml.StartElement) *path.Data {
	switch name {
	case "path":
		v, _ := attr(se, "d")
		d, _ := ParsePath(v)
		return d

	case "rect":
		x := p.length(se, "x", axisX)
		y := p.length(se, "y", axisY)
		w := p.length(se, "width", axisX)
		h := p.length(se, "height", axisY)
		if w <= 0 || h <= 0 {
			return nil
		}
		rx, hasRx := p.optLength(se, "rx", axisX)
		ry, hasRy := p.optLength(se, "ry", axisY)
		switch {
		case hasRx && !hasRy:
			ry = rx
		case hasRy && !hasRx:
			rx = ry
		}
		return roundedRect(x, y, w, h, max(rx, 0), max(ry, 0))

	case "circle":
		r := p.length(se, "r", axisOther)
		if r <= 0 {
			return nil
		}
		return ellipse(p.length(se, "cx", axisX), p.length(se, "cy", axisY), r, r)

	case "ellipse":
		rx := p.length(se, "rx", axisX)
		ry := p.length(se, "ry", axisY)
		if rx <= 0 || ry <= 0 {
			return nil
		}
		return ellipse(p.length(se, "cx", axisX), p.length(se, "cy", axisY), rx, ry)

	case "line":
		a := vec.Vec2{X: p.length(se, "x1", axisX), Y: p.length(se, "y1", axisY)}
		b := vec.Vec2{X: p.length(se, "x2", axisX), Y: p.length(se, "y2", axisY)}
		return (&path.Data{}).MoveTo(a).LineTo(b)

	case "polyline", "polygon":
		v, _ := attr(se, "points")
		coords, _ := parseNumberList(v)
		if len(coords) < 4 {
			return nil
		}
		d := &path.Data{}
		d.MoveTo(vec.Vec2{X: coords[0], Y: coords[1]})
		for i := 2; i+1 < len(coords); i += 2 {
			d.LineTo(vec.Vec2{X: coords[i], Y: coords[i+1]})
		}
		if name == "polygon" {
			d.Close()
		}
		return d
	}
	return nil
}

// length returns the value of a length attribute in user units, or 0 if
// the attribute is missing or invalid.
func (p *parser) length(se xml.StartElement, name string, a axis) float64 {
	x, _ := p.optLength(se, name, a)
	return x
}

func (p *parser) optLength(se xml.StartElement, name string, a axis) (float64, bool) {
	v, ok := attr(se, name)
	if !ok {
		return 0, false
	}
	l, ok := parseLength(v)
	if !ok {
		return 0, false
	}
	return l.resolve(p.vp, a), true
}

// attr returns the value of an attribute in the SVG namespace.
func attr(se xml.StartElement, name string) (string, bool) {
	for _, a := range se.Attr {
		if a.Name.Local == name && (a.Name.Space == "" || a.Name.Space == svgNamespace) {
			return a.Value, true
		}
	}
	return "", false
}

func parseViewBox(s string) (rect.Rect, bool) {
	v, err := parseNumberList(s)
	if err != nil || len(v) != 4 || v[2] <= 0 || v[3] <= 0 {
		return rect.Rect{}, false
	}
	return rect.Rect{LLx: v[0], LLy: v[1], URx: v[0] + v[2], URy: v[1] + v[3]}, true
}

// parseAlign reads the alignment part of a preserveAspectRatio value.
// The meet/slice keyword is ignored and "none" is treated as the default.
func parseAlign(s string) Align {
	fields := strings.Fields(s)
	if len(fields) > 0 && fields[0] == "defer" {
		fields = fields[1:]
	}
	if len(fields) == 0 {
		return AlignMid
	}
	v := fields[0]
	if len(v) != 8 || v[0] != 'x' || v[4] != 'Y' {
		return AlignMid
	}
	frac := map[string]float64{"Min": 0, "Mid": 0.5, "Max": 1}
	x, okX := frac[v[1:4]]
	y, okY := frac[v[5:8]]
	if !okX || !okY {
		return AlignMid
	}
	return Align{X: x, Y: y}
}
