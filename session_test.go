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
	"bytes"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"seehuhn.de/go/svgrender/testcases"
)

// testSurface records how the session uses its pixel memory.
type testSurface struct {
	buf     []byte
	err     error // returned by LockPixels if set
	locks   int
	unlocks int
}

func (s *testSurface) LockPixels() ([]byte, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.locks++
	return s.buf, nil
}

func (s *testSurface) UnlockPixels() {
	s.unlocks++
}

func newTestSession(t *testing.T, src string) *Session {
	t.Helper()
	rt := newTestRuntime(t)
	s, err := rt.LoadFromString(src)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { s.Dispose() })
	return s
}

var red = []byte{0xff, 0, 0, 0xff}

func TestRenderNotReady(t *testing.T) {
	s := newTestSession(t, redSquare)
	if s.Ready() {
		t.Fatal("new session is ready")
	}
	if err := s.Render(); !errors.Is(err, ErrNotReady) {
		t.Errorf("got %v, want ErrNotReady", err)
	}
}

func TestRenderString(t *testing.T) {
	s := newTestSession(t, `<svg width='10' height='20'><rect width='10' height='20' fill='red'/></svg>`)
	w, h := s.Size()
	if w != 10 || h != 20 {
		t.Fatalf("size = %gx%g, want 10x20", w, h)
	}

	buf, err := NewPixelBuffer(10, 20)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Resize(buf, w, h); err != nil {
		t.Fatal(err)
	}
	if !s.Ready() {
		t.Fatal("session not ready after Resize")
	}
	if err := s.Render(); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(buf.Pix, bytes.Repeat(red, 10*20)) {
		t.Error("buffer not fully painted")
	}
}

func TestRenderStaysInBuffer(t *testing.T) {
	const extra = 256
	for category, docs := range testcases.All {
		for _, tc := range docs {
			t.Run(category+"_"+tc.Name, func(t *testing.T) {
				s := newTestSession(t, tc.SVG)

				n := 4 * tc.Width * tc.Height
				surf := &testSurface{buf: bytes.Repeat([]byte{0xAA}, n+extra)}
				if err := s.Resize(surf, float32(tc.Width), float32(tc.Height)); err != nil {
					t.Fatal(err)
				}
				if err := s.Render(); err != nil {
					t.Fatal(err)
				}
				if !bytes.Equal(surf.buf[n:], bytes.Repeat([]byte{0xAA}, extra)) {
					t.Error("memory after the target was written")
				}
				if surf.locks != 2 || surf.unlocks != 2 {
					t.Errorf("%d locks, %d unlocks, want 2 each", surf.locks, surf.unlocks)
				}
			})
		}
	}
}

func TestRenderFarCoordinates(t *testing.T) {
	s := newTestSession(t, `<svg xmlns="http://www.w3.org/2000/svg" width="100" height="100">
<path d="M0 0 L1e12 1 L0 2 Z"/>
<path d="M100 10 L-1e12 11 L100 12 Z" fill="none" stroke="black" stroke-width="0.5"/>
</svg>`)
	buf, err := NewPixelBuffer(100, 100)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Resize(buf, 100, 100); err != nil {
		t.Fatal(err)
	}

	done := make(chan error, 1)
	go func() { done <- s.Render() }()
	select {
	case err := <-done:
		if err != nil {
			t.Fatal(err)
		}
	case <-time.After(10 * time.Second):
		t.Fatal("Render did not finish")
	}

	if a := buf.Image().RGBAAt(50, 0).A; a != 0xff {
		t.Errorf("pixel (50,0) has alpha %d", a)
	}
}

func TestRenderIdempotent(t *testing.T) {
	s := newTestSession(t, `<svg xmlns="http://www.w3.org/2000/svg" width="40" height="30">
<circle cx="20" cy="15" r="12" fill="teal" fill-opacity="0.7" stroke="orange" stroke-width="3" stroke-dasharray="4 2"/>
</svg>`)
	buf, err := NewPixelBuffer(40, 30)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Resize(buf, 40, 30); err != nil {
		t.Fatal(err)
	}
	if err := s.Render(); err != nil {
		t.Fatal(err)
	}
	first := bytes.Clone(buf.Pix)
	if err := s.Render(); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(first, buf.Pix) {
		t.Error("second render differs from the first")
	}
}

func TestResizeKeepsAspectRatio(t *testing.T) {
	s := newTestSession(t, `<svg xmlns="http://www.w3.org/2000/svg" width="100" height="50">
<rect width="100" height="50" fill="red"/>
</svg>`)
	buf, err := NewPixelBuffer(200, 200)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Resize(buf, 200, 200); err != nil {
		t.Fatal(err)
	}
	if err := s.Render(); err != nil {
		t.Fatal(err)
	}

	img := buf.Image()
	for y := range 200 {
		painted := y >= 50 && y < 150
		for _, x := range []int{0, 100, 199} {
			a := img.RGBAAt(x, y).A
			if painted && a != 0xff || !painted && a != 0 {
				t.Fatalf("pixel (%d,%d) has alpha %d", x, y, a)
			}
		}
	}
}

func TestResizeTwice(t *testing.T) {
	s := newTestSession(t, redSquare)

	small, err := NewPixelBuffer(50, 50)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Resize(small, 50, 50); err != nil {
		t.Fatal(err)
	}
	if err := s.Render(); err != nil {
		t.Fatal(err)
	}
	smallCopy := bytes.Clone(small.Pix)

	large, err := NewPixelBuffer(100, 100)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Resize(large, 100, 100); err != nil {
		t.Fatal(err)
	}
	if err := s.Render(); err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(small.Pix, smallCopy) {
		t.Error("old buffer written after the second resize")
	}
	// the 10x20 document, scaled by 5 and centred
	img := large.Image()
	for _, tc := range []struct {
		x, y    int
		painted bool
	}{
		{24, 50, false},
		{25, 0, true},
		{74, 99, true},
		{75, 50, false},
	} {
		a := img.RGBAAt(tc.x, tc.y).A
		if tc.painted && a != 0xff || !tc.painted && a != 0 {
			t.Errorf("pixel (%d,%d) has alpha %d", tc.x, tc.y, a)
		}
	}
}

func TestResizeBindFailure(t *testing.T) {
	s := newTestSession(t, redSquare)

	good, err := NewPixelBuffer(10, 20)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Resize(good, 10, 20); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		surf Surface
		w, h float32
	}{
		{"short buffer", &testSurface{buf: make([]byte, 10)}, 10, 20},
		{"zero width", &testSurface{buf: make([]byte, 800)}, 0, 20},
		{"lock failure", &testSurface{err: errors.New("locked elsewhere")}, 10, 20},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := s.Resize(tc.surf, tc.w, tc.h)
			if !errors.Is(err, ErrTargetBindFailed) {
				t.Errorf("got %v, want ErrTargetBindFailed", err)
			}
			if s.Ready() {
				t.Error("session still ready")
			}
			if err := s.Render(); !errors.Is(err, ErrNotReady) {
				t.Errorf("Render: got %v, want ErrNotReady", err)
			}
		})
	}

	if err := s.Resize(nil, 10, 20); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("nil surface: got %v", err)
	}
}

func TestResizeWithoutIntrinsicSize(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	SetLogger(zap.New(core))
	defer SetLogger(nil)

	s := newTestSession(t, `<svg xmlns="http://www.w3.org/2000/svg"><rect width="5" height="5" fill="red"/></svg>`)
	buf, err := NewPixelBuffer(10, 10)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Resize(buf, 10, 10); err != nil {
		t.Fatalf("scaling failure was not absorbed: %v", err)
	}
	if n := logs.FilterMessage("cannot resize document").Len(); n != 1 {
		t.Errorf("%d warnings logged, want 1", n)
	}
	if err := s.Render(); err != nil {
		t.Fatal(err)
	}

	// the document is drawn unscaled
	img := buf.Image()
	if a := img.RGBAAt(2, 2).A; a != 0xff {
		t.Errorf("pixel (2,2) has alpha %d", a)
	}
	if a := img.RGBAAt(7, 7).A; a != 0 {
		t.Errorf("pixel (7,7) has alpha %d", a)
	}
}

func TestRenderRelocksSurface(t *testing.T) {
	s := newTestSession(t, redSquare)

	surf := &testSurface{buf: make([]byte, 10*20*4)}
	if err := s.Resize(surf, 10, 20); err != nil {
		t.Fatal(err)
	}

	// the host moved its pixels
	moved := make([]byte, 10*20*4)
	old := surf.buf
	surf.buf = moved
	if err := s.Render(); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(moved, bytes.Repeat(red, 10*20)) {
		t.Error("new memory not painted")
	}
	if !bytes.Equal(old, make([]byte, len(old))) {
		t.Error("old memory written")
	}

	surf.err = errors.New("bitmap recycled")
	if err := s.Render(); !errors.Is(err, ErrTargetBindFailed) {
		t.Errorf("got %v, want ErrTargetBindFailed", err)
	}
}

func TestDispose(t *testing.T) {
	rt := newTestRuntime(t)
	s, err := rt.LoadFromString(redSquare)
	if err != nil {
		t.Fatal(err)
	}
	buf, err := NewPixelBuffer(10, 20)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Resize(buf, 10, 20); err != nil {
		t.Fatal(err)
	}

	if err := s.Dispose(); err != nil {
		t.Fatal(err)
	}
	if rt.Sessions() != 0 {
		t.Error("session still registered")
	}
	if s.Ready() {
		t.Error("disposed session is ready")
	}
	if w, h := s.Size(); w != 0 || h != 0 {
		t.Errorf("size after Dispose = %gx%g", w, h)
	}

	if err := s.Dispose(); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("second Dispose: got %v", err)
	}
	if err := s.Render(); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Render: got %v", err)
	}
	if err := s.Resize(buf, 10, 20); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Resize: got %v", err)
	}
	if rt.Sessions() != 0 {
		t.Error("second Dispose changed the session count")
	}
}
