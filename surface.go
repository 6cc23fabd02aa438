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

package svgrender

import (
	"errors"
	"fmt"
	"image"
	"sync/atomic"
)

// ErrSurfaceLocked is returned by PixelBuffer.LockPixels if the buffer is
// already locked.
var ErrSurfaceLocked = errors.New("svgrender: surface is already locked")

// Surface is pixel memory which a session draws into. The memory is owned
// by the caller. A session only accesses it between a call to LockPixels
// and the matching UnlockPixels, and both calls happen inside a single
// Resize or Render.
type Surface interface {
	// LockPixels returns the pixel memory, which must stay valid and
	// unmoved until UnlockPixels is called.
	LockPixels() ([]byte, error)

	// UnlockPixels releases the memory returned by LockPixels.
	UnlockPixels()
}

// PixelBuffer is a Surface backed by a byte slice. Rows are stored
// consecutively, 4 bytes per pixel, without padding.
type PixelBuffer struct {
	Pix           []byte
	Width, Height int

	locked atomic.Bool
}

// NewPixelBuffer allocates a w×h pixel buffer.
func NewPixelBuffer(w, h int) (*PixelBuffer, error) {
	if w < 1 || h < 1 || w > maxTargetSize || h > maxTargetSize {
		return nil, newError("NewPixelBuffer", KindInvalidInput,
			fmt.Errorf("invalid size %dx%d", w, h))
	}
	return &PixelBuffer{Pix: make([]byte, 4*w*h), Width: w, Height: h}, nil
}

// WrapPixels uses existing memory as a w×h pixel buffer.
func WrapPixels(buf []byte, w, h int) (*PixelBuffer, error) {
	const op = "WrapPixels"
	switch {
	case buf == nil:
		return nil, newError(op, KindInvalidInput, errors.New("no buffer"))
	case w < 1 || h < 1 || w > maxTargetSize || h > maxTargetSize:
		return nil, newError(op, KindInvalidInput, fmt.Errorf("invalid size %dx%d", w, h))
	case len(buf) < 4*w*h:
		return nil, newError(op, KindInvalidInput,
			fmt.Errorf("%d bytes are too few for %dx%d pixels", len(buf), w, h))
	}
	return &PixelBuffer{Pix: buf, Width: w, Height: h}, nil
}

// ImageSurface uses the pixels of img as a pixel buffer. The image rows
// must not be padded.
func ImageSurface(img *image.RGBA) (*PixelBuffer, error) {
	if img == nil {
		return nil, newError("ImageSurface", KindInvalidInput, errors.New("no image"))
	}
	b := img.Bounds()
	if img.Stride != 4*b.Dx() {
		return nil, newError("ImageSurface", KindInvalidInput,
			fmt.Errorf("stride %d does not match width %d", img.Stride, b.Dx()))
	}
	if b.Empty() {
		return nil, newError("ImageSurface", KindInvalidInput, errors.New("empty image"))
	}
	return WrapPixels(img.Pix[img.PixOffset(b.Min.X, b.Min.Y):], b.Dx(), b.Dy())
}

// LockPixels implements the Surface interface.
func (p *PixelBuffer) LockPixels() ([]byte, error) {
	if !p.locked.CompareAndSwap(false, true) {
		return nil, ErrSurfaceLocked
	}
	return p.Pix, nil
}

// UnlockPixels implements the Surface interface.
func (p *PixelBuffer) UnlockPixels() {
	p.locked.Store(false)
}

// Image returns an image which shares its pixels with p.
func (p *PixelBuffer) Image() *image.RGBA {
	return &image.RGBA{
		Pix:    p.Pix[:4*p.Width*p.Height],
		Stride: 4 * p.Width,
		Rect:   image.Rect(0, 0, p.Width, p.Height),
	}
}
