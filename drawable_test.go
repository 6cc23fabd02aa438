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
	"testing"
)

func newTestDrawable(t *testing.T, src string) *Drawable {
	t.Helper()
	rt := newTestRuntime(t)
	s, err := rt.LoadFromString(src)
	if err != nil {
		t.Fatal(err)
	}
	d := NewDrawable(s)
	t.Cleanup(func() { d.Release() })
	return d
}

func TestDrawableIntrinsicSize(t *testing.T) {
	d := newTestDrawable(t, redSquare)
	if w, h := d.Size(); w != 10 || h != 20 {
		t.Fatalf("size = %dx%d, want 10x20", w, h)
	}
	img, err := d.Image()
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 10 || b.Dy() != 20 {
		t.Errorf("image bounds %v", b)
	}
	if c := img.RGBAAt(5, 10); c.R != 0xff || c.A != 0xff {
		t.Errorf("centre pixel %v", c)
	}
}

func TestDrawableLazy(t *testing.T) {
	d := newTestDrawable(t, redSquare)
	img, err := d.Image()
	if err != nil {
		t.Fatal(err)
	}

	img.Pix[0] = 0
	img2, err := d.Image()
	if err != nil {
		t.Fatal(err)
	}
	if img2.Pix[0] != 0 {
		t.Error("image re-rendered without Invalidate")
	}

	d.Invalidate()
	img3, err := d.Image()
	if err != nil {
		t.Fatal(err)
	}
	if img3.Pix[0] != 0xff {
		t.Error("image not re-rendered after Invalidate")
	}
}

func TestDrawableSetSize(t *testing.T) {
	d := newTestDrawable(t, redSquare)
	d.SetSize(40, 40)
	img, err := d.Image()
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 40 || b.Dy() != 40 {
		t.Fatalf("image bounds %v", b)
	}
	// 20x40 after scaling, centred horizontally
	if a := img.RGBAAt(5, 20).A; a != 0 {
		t.Errorf("pixel (5,20) has alpha %d", a)
	}
	if a := img.RGBAAt(20, 20).A; a != 0xff {
		t.Errorf("pixel (20,20) has alpha %d", a)
	}

	d.SetSize(0, 0)
	img, err = d.Image()
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 10 || b.Dy() != 20 {
		t.Errorf("intrinsic size not restored: %v", b)
	}
}

func TestDrawableNoSize(t *testing.T) {
	d := newTestDrawable(t, `<svg xmlns="http://www.w3.org/2000/svg"><rect width="5" height="5"/></svg>`)
	if _, err := d.Image(); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("got %v, want ErrInvalidInput", err)
	}
	d.SetSize(5, 5)
	if _, err := d.Image(); err != nil {
		t.Error(err)
	}
}

func TestDrawableRelease(t *testing.T) {
	rt := newTestRuntime(t)
	s, err := rt.LoadFromString(redSquare)
	if err != nil {
		t.Fatal(err)
	}
	d := NewDrawable(s)
	if err := d.Release(); err != nil {
		t.Fatal(err)
	}
	if rt.Sessions() != 0 {
		t.Error("session not disposed")
	}
	if err := d.Release(); err != nil {
		t.Errorf("second Release: %v", err)
	}
	if _, err := d.Image(); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Image after Release: got %v", err)
	}
}
