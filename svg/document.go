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

// Package svg reads SVG documents into a flat list of filled and stroked
// shapes.
//
// Only the static geometry subset of SVG is supported: basic shapes and
// paths with solid colour paint, transforms and the stroke properties.
// Text, gradients, patterns, filters, clipping and masking are ignored.
package svg

import (
	"image/color"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/svgrender/raster"
)

// Document is a parsed SVG image.
type Document struct {
	// Width and Height give the size of the outermost <svg> element in
	// pixels. A value of zero means that the dimension was not given, or was
	// given as a percentage.
	Width, Height float64

	// ViewBox is the user space rectangle which is mapped to the viewport.
	// The zero value means that no viewBox was given.
	ViewBox rect.Rect

	// Align describes where the viewBox is placed inside the viewport when
	// the aspect ratios differ.
	Align Align

	// Shapes are the visible shapes, in painting order.
	Shapes []Shape
}

// Size returns the intrinsic size of the document in pixels.
// A missing width or height is derived from the viewBox. If neither is
// available, ok is false.
func (d *Document) Size() (w, h float64, ok bool) {
	w, h = d.Width, d.Height
	vw, vh := d.ViewBox.URx-d.ViewBox.LLx, d.ViewBox.URy-d.ViewBox.LLy
	hasVB := vw > 0 && vh > 0

	switch {
	case w > 0 && h > 0:
		// both given
	case w > 0 && hasVB:
		h = w * vh / vw
	case h > 0 && hasVB:
		w = h * vw / vh
	case hasVB:
		w, h = vw, vh
	default:
		return 0, 0, false
	}
	return w, h, true
}

// UserBox returns the rectangle of user space which is shown by the
// document: the viewBox if given, or else the intrinsic size.
func (d *Document) UserBox() (rect.Rect, bool) {
	if d.ViewBox.URx > d.ViewBox.LLx && d.ViewBox.URy > d.ViewBox.LLy {
		return d.ViewBox, true
	}
	w, h, ok := d.Size()
	if !ok {
		return rect.Rect{}, false
	}
	return rect.Rect{URx: w, URy: h}, true
}

// Align gives the position of the viewBox within the viewport, along each
// axis, as a fraction of the free space: 0 for min, 0.5 for mid and 1 for
// max.
type Align struct {
	X, Y float64
}

// AlignMid is the default alignment, xMidYMid.
var AlignMid = Align{X: 0.5, Y: 0.5}

// Shape is a single filled and/or stroked path.
type Shape struct {
	// Path is the outline in the element's user space.
	Path *path.Data

	// CTM maps user space to the coordinate system of the outermost viewBox.
	CTM matrix.Matrix

	// Fill is the fill colour, or nil if the shape is not filled.
	// The alpha channel includes fill-opacity.
	Fill *color.NRGBA

	// FillRule selects the fill rule.
	FillRule raster.FillRule

	// Stroke is the stroke colour, or nil if the shape is not stroked.
	// The alpha channel includes stroke-opacity.
	Stroke *color.NRGBA

	// StrokeStyle describes the stroke geometry.
	StrokeStyle StrokeStyle

	// Opacity is the product of the opacity values of the element and all
	// of its ancestors.
	Opacity float64
}

// StrokeStyle collects the geometric stroke properties, in user space
// units.
type StrokeStyle struct {
	Width      float64
	Cap        graphics.LineCapStyle
	Join       graphics.LineJoinStyle
	MiterLimit float64
	Dash       []float64
	DashOffset float64
}
