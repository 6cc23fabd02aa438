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
	"image"
	"math"
	"testing"
)

func TestNewPixelBuffer(t *testing.T) {
	for _, size := range [][2]int{{0, 1}, {1, 0}, {-1, 5}, {maxTargetSize + 1, 1}} {
		if _, err := NewPixelBuffer(size[0], size[1]); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("%dx%d: got %v", size[0], size[1], err)
		}
	}

	var maxBytes int64 = 4 * maxTargetSize * maxTargetSize
	if maxBytes > math.MaxInt32 {
		t.Errorf("a %d×%d buffer has %d bytes, which overflows 32-bit int",
			maxTargetSize, maxTargetSize, maxBytes)
	}

	p, err := NewPixelBuffer(3, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(p.Pix) != 24 {
		t.Errorf("len(Pix) = %d, want 24", len(p.Pix))
	}
}

func TestWrapPixels(t *testing.T) {
	tests := []struct {
		name string
		buf  []byte
		w, h int
		ok   bool
	}{
		{"nil", nil, 1, 1, false},
		{"short", make([]byte, 15), 2, 2, false},
		{"zero", make([]byte, 16), 0, 2, false},
		{"too large", make([]byte, 16), 2 * maxTargetSize, 2 * maxTargetSize, false},
		{"exact", make([]byte, 16), 2, 2, true},
		{"long", make([]byte, 20), 2, 2, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p, err := WrapPixels(tc.buf, tc.w, tc.h)
			if tc.ok {
				if err != nil {
					t.Fatal(err)
				}
				if img := p.Image(); len(img.Pix) != 4*tc.w*tc.h {
					t.Errorf("image has %d bytes", len(img.Pix))
				}
			} else if !errors.Is(err, ErrInvalidInput) {
				t.Errorf("got %v, want ErrInvalidInput", err)
			}
		})
	}
}

func TestImageSurface(t *testing.T) {
	if _, err := ImageSurface(nil); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("nil image: got %v", err)
	}

	padded := &image.RGBA{
		Pix:    make([]byte, 2*12),
		Stride: 12,
		Rect:   image.Rect(0, 0, 2, 2),
	}
	if _, err := ImageSurface(padded); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("padded image: got %v", err)
	}

	if _, err := ImageSurface(image.NewRGBA(image.Rect(0, 0, 0, 0))); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("empty image: got %v", err)
	}

	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	p, err := ImageSurface(img)
	if err != nil {
		t.Fatal(err)
	}
	p.Pix[0] = 0x42
	if img.Pix[0] != 0x42 {
		t.Error("surface does not share the image pixels")
	}
}

func TestLockPixels(t *testing.T) {
	p, err := NewPixelBuffer(1, 1)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := p.LockPixels(); err != nil {
		t.Fatal(err)
	}
	if _, err := p.LockPixels(); err != ErrSurfaceLocked {
		t.Errorf("second lock: got %v", err)
	}
	p.UnlockPixels()
	if _, err := p.LockPixels(); err != nil {
		t.Errorf("lock after unlock: %v", err)
	}
}
