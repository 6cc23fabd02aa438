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

package engine

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"sync"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/svgrender/svg"
)

var (
	// ErrInvalidInput indicates an empty path or empty document data, or a
	// file which cannot be read.
	ErrInvalidInput = errors.New("engine: invalid input")

	// ErrParse indicates that the data is not a usable SVG document.
	ErrParse = errors.New("engine: cannot parse document")

	// ErrNoSize is returned by Picture.Size if the document does not
	// declare its size.
	ErrNoSize = errors.New("engine: document has no intrinsic size")

	// ErrResize is returned by Picture.SetSize if the picture cannot be
	// scaled to the requested size.
	ErrResize = errors.New("engine: cannot resize picture")
)

// Picture is a loaded SVG document, together with the transformation
// which places it on a canvas.
//
// A Picture is safe for concurrent use.
type Picture struct {
	doc *svg.Document

	mu  sync.Mutex
	ctm matrix.Matrix
}

// LoadFile reads and parses the SVG file at the given path.
func LoadFile(path string) (*Picture, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidInput)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	defer f.Close()
	if fi, err := f.Stat(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	} else if fi.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrInvalidInput, path)
	}
	return Load(f)
}

// LoadBytes parses an SVG document held in memory.
// The data is copied, so the caller may reuse the slice afterwards.
func LoadBytes(data []byte) (*Picture, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrInvalidInput)
	}
	return Load(bytes.NewReader(bytes.Clone(data)))
}

// Load parses an SVG document from r.
func Load(r io.Reader) (*Picture, error) {
	doc, err := svg.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	p := &Picture{doc: doc}
	if box, ok := doc.UserBox(); ok {
		p.ctm = matrix.Translate(-box.LLx, -box.LLy)
		if w, h, ok := doc.Size(); ok {
			// show the document at its intrinsic size
			p.ctm = p.ctm.Mul(fitBox(box.URx-box.LLx, box.URy-box.LLy, w, h, doc.Align))
		}
	} else {
		p.ctm = matrix.Identity
	}
	return p, nil
}

// Document returns the parsed document.
func (p *Picture) Document() *svg.Document {
	return p.doc
}

// Size returns the intrinsic size of the picture, in pixels.
func (p *Picture) Size() (w, h float64, err error) {
	w, h, ok := p.doc.Size()
	if !ok {
		return 0, 0, ErrNoSize
	}
	return w, h, nil
}

// SetSize scales the picture to fit into a w×h box, keeping its aspect
// ratio. The document is aligned inside the box according to its
// preserveAspectRatio attribute. On failure the previous transformation
// is kept.
func (p *Picture) SetSize(w, h float64) error {
	if !(w > 0 && h > 0) || math.IsInf(w, 0) || math.IsInf(h, 0) {
		return fmt.Errorf("%w: invalid size %gx%g", ErrResize, w, h)
	}
	box, ok := p.doc.UserBox()
	if !ok {
		return fmt.Errorf("%w: %w", ErrResize, ErrNoSize)
	}

	ctm := matrix.Translate(-box.LLx, -box.LLy).
		Mul(fitBox(box.URx-box.LLx, box.URy-box.LLy, w, h, p.doc.Align))

	p.mu.Lock()
	p.ctm = ctm
	p.mu.Unlock()
	return nil
}

// Transform returns the current map from the document's viewBox
// coordinates to device pixels.
func (p *Picture) Transform() matrix.Matrix {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ctm
}

// fitBox returns the transformation which scales a bw×bh box at the
// origin uniformly, so that it fits into a w×h box, and positions it
// according to align.
func fitBox(bw, bh, w, h float64, align svg.Align) matrix.Matrix {
	s := min(w/bw, h/bh)
	dx := (w - bw*s) * align.X
	dy := (h - bh*s) * align.Y
	return matrix.Matrix{s, 0, 0, s, dx, dy}
}
