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
	"sync"
)

// Drawable renders a session into a pixel buffer which it owns.
//
// By default the buffer has the intrinsic size of the document, rounded
// down to whole pixels. The image is only re-rendered when the size
// changes or after Invalidate.
type Drawable struct {
	mu      sync.Mutex
	session *Session
	w, h    int // explicit size, 0 for the intrinsic size
	buf     *PixelBuffer
	dirty   bool
}

// NewDrawable returns a drawable for s. The drawable takes ownership of
// the session, which is disposed by Release.
func NewDrawable(s *Session) *Drawable {
	return &Drawable{session: s, dirty: true}
}

// SetSize sets the size of the rendered image, in pixels.
// SetSize(0, 0) restores the intrinsic size of the document.
func (d *Drawable) SetSize(w, h int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.w, d.h = w, h
}

// Size returns the size of the image returned by Image.
func (d *Drawable) Size() (w, h int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.size()
}

func (d *Drawable) size() (int, int) {
	if d.w > 0 && d.h > 0 {
		return d.w, d.h
	}
	if d.session == nil {
		return 0, 0
	}
	w, h := d.session.Size()
	return int(w), int(h)
}

// Image returns the rendered document. The returned image shares its
// pixels with the drawable and is overwritten by later calls, after the
// size changes or the drawable is invalidated.
func (d *Drawable) Image() (*image.RGBA, error) {
	const op = "Image"

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.session == nil {
		return nil, newError(op, KindInvalidInput, errors.New("drawable is released"))
	}

	w, h := d.size()
	if w <= 0 || h <= 0 {
		return nil, newError(op, KindInvalidInput, fmt.Errorf("invalid size %dx%d", w, h))
	}
	if d.buf == nil || d.buf.Width != w || d.buf.Height != h {
		buf, err := NewPixelBuffer(w, h)
		if err != nil {
			return nil, err
		}
		if err := d.session.Resize(buf, float32(w), float32(h)); err != nil {
			return nil, err
		}
		d.buf = buf
		d.dirty = true
	}

	if d.dirty {
		if err := d.session.Render(); err != nil {
			return nil, err
		}
		d.dirty = false
	}
	return d.buf.Image(), nil
}

// Invalidate marks the image for re-rendering on the next call to Image.
func (d *Drawable) Invalidate() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.dirty = true
}

// Release disposes the session and frees the pixel buffer. Releasing a
// released drawable has no effect.
func (d *Drawable) Release() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.session == nil {
		return nil
	}
	err := d.session.Dispose()
	d.session = nil
	d.buf = nil
	return err
}
