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

// Package svgrender renders SVG documents into pixel memory owned by the
// caller.
//
// A Runtime owns the worker goroutines which rasterize images. Documents are
// loaded into a Session, which is bound to a Surface by Resize and then
// drawn any number of times by Render. All sessions must be disposed
// before the runtime is closed.
//
// Pixels are written as premultiplied 8-bit R, G, B, A bytes, in the layout
// of image.RGBA and of Android ARGB_8888 bitmaps.
package svgrender

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"sync"

	"go.uber.org/zap"

	"seehuhn.de/go/svgrender/engine"
)

// Config holds the runtime settings.
type Config struct {
	// Threads is the number of worker goroutines used for rasterization.
	Threads int `yaml:"threads"`
}

// DefaultConfig returns the default runtime settings.
func DefaultConfig() Config {
	return Config{Threads: 2}
}

// Runtime is the rendering engine, shared by all sessions created from it.
// A Runtime is safe for concurrent use.
type Runtime struct {
	pool *engine.Pool

	mu       sync.Mutex
	sessions int
	closed   bool
}

// NewRuntime starts the rendering engine.
func NewRuntime(cfg Config) (*Runtime, error) {
	pool, err := engine.NewPool(cfg.Threads)
	if err != nil {
		err := newError("NewRuntime", KindEngineInitFailed, err)
		Logger().Error("cannot start engine", zap.Int("threads", cfg.Threads), zap.Error(err))
		return nil, err
	}
	Logger().Debug("engine started", zap.Int("threads", cfg.Threads))
	return &Runtime{pool: pool}, nil
}

// Close stops the worker goroutines. Close fails with KindRuntimeBusy while
// sessions are still open. Closing a closed runtime has no effect.
func (rt *Runtime) Close() error {
	rt.mu.Lock()
	defer rt.mu.Unlock()

	if rt.closed {
		return nil
	}
	if rt.sessions > 0 {
		return newError("Close", KindRuntimeBusy, fmt.Errorf("%d open sessions", rt.sessions))
	}
	rt.closed = true
	rt.pool.Close()
	Logger().Debug("engine stopped")
	return nil
}

// Sessions returns the number of sessions which have not been disposed.
func (rt *Runtime) Sessions() int {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	return rt.sessions
}

func (rt *Runtime) acquire(op string) error {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	if rt.closed {
		return newError(op, KindEngineInitFailed, errors.New("runtime is closed"))
	}
	rt.sessions++
	return nil
}

func (rt *Runtime) release() {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	rt.sessions--
}

// LoadFromPath creates a session for the SVG file at the given path.
func (rt *Runtime) LoadFromPath(path string) (*Session, error) {
	const op = "LoadFromPath"
	s, err := rt.newSession(op, func() (*engine.Picture, error) {
		return engine.LoadFile(path)
	})
	if err != nil {
		Logger().Error("cannot load document", zap.String("path", path), zap.Error(err))
		return nil, err
	}
	Logger().Debug("document loaded",
		zap.String("path", path),
		zap.Float32("width", s.width),
		zap.Float32("height", s.height))
	return s, nil
}

// LoadFromMemory creates a session for an SVG document held in memory.
// The data is copied, so the caller may reuse the slice after the call.
func (rt *Runtime) LoadFromMemory(data []byte) (*Session, error) {
	return rt.loadBytes("LoadFromMemory", data)
}

// LoadFromString creates a session for an SVG document given as a string.
func (rt *Runtime) LoadFromString(content string) (*Session, error) {
	return rt.loadBytes("LoadFromString", []byte(content))
}

// LoadFromReader creates a session for an SVG document read from r,
// for example a resource stream. A read failure is reported as
// KindInvalidInput.
func (rt *Runtime) LoadFromReader(r io.Reader) (*Session, error) {
	const op = "LoadFromReader"
	if r == nil {
		return nil, newError(op, KindInvalidInput, errors.New("no reader"))
	}
	data, err := io.ReadAll(r)
	if err != nil {
		err := newError(op, KindInvalidInput, err)
		Logger().Error("cannot read document", zap.Error(err))
		return nil, err
	}
	return rt.loadBytes(op, data)
}

// LoadFromFS creates a session for the SVG file name in fsys, such as an
// embed.FS holding the application's resources.
func (rt *Runtime) LoadFromFS(fsys fs.FS, name string) (*Session, error) {
	const op = "LoadFromFS"
	if fsys == nil {
		return nil, newError(op, KindInvalidInput, errors.New("no file system"))
	}
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		err := newError(op, KindInvalidInput, err)
		Logger().Error("cannot read document", zap.String("name", name), zap.Error(err))
		return nil, err
	}
	return rt.loadBytes(op, data)
}

func (rt *Runtime) loadBytes(op string, data []byte) (*Session, error) {
	s, err := rt.newSession(op, func() (*engine.Picture, error) {
		return engine.LoadBytes(data)
	})
	if err != nil {
		Logger().Error("cannot load document", zap.Int("bytes", len(data)), zap.Error(err))
		return nil, err
	}
	Logger().Debug("document loaded",
		zap.Int("bytes", len(data)),
		zap.Float32("width", s.width),
		zap.Float32("height", s.height))
	return s, nil
}

// newSession registers a new session with the runtime and loads its
// document. On failure the registration is undone.
func (rt *Runtime) newSession(op string, load func() (*engine.Picture, error)) (*Session, error) {
	if err := rt.acquire(op); err != nil {
		return nil, err
	}

	pic, err := load()
	if err != nil {
		rt.release()
		kind := KindParseFailed
		if errors.Is(err, engine.ErrInvalidInput) {
			kind = KindInvalidInput
		}
		return nil, newError(op, kind, err)
	}

	s := &Session{rt: rt, pic: pic}
	if w, h, err := pic.Size(); err == nil {
		s.width, s.height = float32(w), float32(h)
	} else {
		Logger().Warn("document size unknown",
			zap.Error(newError(op, KindSizeQueryFailed, err)))
	}
	return s, nil
}
