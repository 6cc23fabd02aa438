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
	"sync"

	"go.uber.org/zap"

	"seehuhn.de/go/svgrender/engine"
)

var errDisposed = errors.New("session is disposed")

// maxTargetSize bounds the width and height of a render target, in pixels.
// The byte size of a maximal target fits into a 32-bit int.
const maxTargetSize = 1 << 14

// Session is a loaded document together with the surface it is drawn
// into. A session is ready once Resize has bound it to a surface.
//
// A Session is safe for concurrent use. All methods block until their
// work is complete.
type Session struct {
	rt *Runtime

	mu            sync.Mutex
	pic           *engine.Picture
	width, height float32 // intrinsic size, 0 if unknown

	canvas  *engine.Canvas // nil unless bound
	surface Surface
	tw, th  int
	closed  bool
}

// Size returns the intrinsic size of the document, in pixels.
// If the document does not declare a size, both values are 0.
func (s *Session) Size() (w, h float32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.width, s.height
}

// Ready reports whether the session is bound to a surface.
func (s *Session) Ready() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.canvas != nil
}

// Resize binds the session to w×h pixels of the given surface and scales
// the document to fit, preserving its aspect ratio. The surface must hold
// at least w×h×4 bytes, stored as rows of w pixels. Fractional sizes are
// truncated to whole pixels.
//
// Any previous binding is discarded first. If the new surface cannot be
// bound, the session is left unready. A failure to scale the document is
// logged but not reported, and the previous scale is kept.
func (s *Session) Resize(surf Surface, w, h float32) error {
	const op = "Resize"

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return newError(op, KindInvalidInput, errDisposed)
	}
	if surf == nil {
		return newError(op, KindInvalidInput, errors.New("no surface"))
	}

	s.unbind()

	if !(w >= 1 && h >= 1 && w <= maxTargetSize && h <= maxTargetSize) {
		err := newError(op, KindTargetBindFailed, fmt.Errorf("invalid size %gx%g", w, h))
		Logger().Error("cannot bind target", zap.Error(err))
		return err
	}
	width, height := int(w), int(h)

	canvas, err := engine.NewCanvas(s.rt.pool)
	if err != nil {
		err := newError(op, KindTargetCreationFailed, err)
		Logger().Error("cannot create target", zap.Error(err))
		return err
	}

	buf, err := surf.LockPixels()
	if err != nil {
		err := newError(op, KindTargetBindFailed, err)
		Logger().Error("cannot lock surface", zap.Error(err))
		return err
	}
	defer surf.UnlockPixels()

	if err := canvas.Target(buf, width, width, height, engine.ABGR8888); err != nil {
		err := newError(op, KindTargetBindFailed, err)
		Logger().Error("cannot bind target",
			zap.Int("width", width), zap.Int("height", height), zap.Error(err))
		return err
	}

	if err := s.pic.SetSize(float64(w), float64(h)); err != nil {
		Logger().Warn("cannot resize document",
			zap.Float32("width", w), zap.Float32("height", h),
			zap.Error(newError(op, KindResizeFailed, err)))
	}
	if err := canvas.Push(s.pic); err != nil {
		canvas.Release()
		err := newError(op, KindTargetBindFailed, err)
		Logger().Error("cannot attach document", zap.Error(err))
		return err
	}

	s.canvas = canvas
	s.surface = surf
	s.tw, s.th = width, height
	Logger().Debug("target bound", zap.Int("width", width), zap.Int("height", height))
	return nil
}

// Render draws the document into the bound surface, replacing its previous
// contents. Render returns an error of kind KindNotReady, without touching
// any memory, if the session has not been bound by Resize. An error of kind
// KindRenderFailed means that rasterization panicked; the surface then
// holds a partial image.
func (s *Session) Render() error {
	const op = "Render"

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return newError(op, KindInvalidInput, errDisposed)
	}
	if s.canvas == nil {
		return newError(op, KindNotReady, nil)
	}

	buf, err := s.surface.LockPixels()
	if err != nil {
		err := newError(op, KindTargetBindFailed, err)
		Logger().Error("cannot lock surface", zap.Error(err))
		return err
	}
	defer s.surface.UnlockPixels()

	// the surface may have moved its pixels since the last call
	if err := s.canvas.Target(buf, s.tw, s.tw, s.th, engine.ABGR8888); err != nil {
		s.unbind()
		err := newError(op, KindTargetBindFailed, err)
		Logger().Error("cannot bind target", zap.Error(err))
		return err
	}

	stages := []struct {
		name string
		run  func() error
	}{
		{"update", s.canvas.Update},
		{"draw", s.canvas.Draw},
		{"sync", s.canvas.Sync},
	}
	for _, stage := range stages {
		if err := stage.run(); err != nil {
			err := newError(op, KindRenderFailed, fmt.Errorf("%s: %w", stage.name, err))
			Logger().Error("cannot render", zap.String("stage", stage.name), zap.Error(err))
			return err
		}
	}
	return nil
}

// Dispose releases the surface and the document, and unregisters the
// session from its runtime. Further calls to Resize, Render or Dispose
// fail with KindInvalidInput.
func (s *Session) Dispose() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return newError("Dispose", KindInvalidInput, errDisposed)
	}

	s.unbind()
	s.pic = nil
	s.width, s.height = 0, 0
	s.closed = true
	s.rt.release()
	Logger().Debug("session disposed")
	return nil
}

// unbind discards the current target. The caller must hold s.mu.
func (s *Session) unbind() {
	if s.canvas != nil {
		if err := s.canvas.Release(); err != nil {
			Logger().Warn("discarding failed drawing", zap.Error(err))
		}
	}
	s.canvas = nil
	s.surface = nil
	s.tw, s.th = 0, 0
}
