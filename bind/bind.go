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

// Package bind exposes rendering sessions to a host environment, such as
// a foreign function interface, through integer handles.
//
// The functions in this package share a process-wide runtime. It is
// started by the first call to CreateFromPath or CreateFromString and
// stopped by Shutdown. Handle 0 never refers to a session.
//
// All functions are safe for concurrent use.
package bind

import (
	"errors"
	"fmt"
	"sync"
	"unsafe"

	"go.uber.org/zap"

	"seehuhn.de/go/svgrender"
)

var (
	mu       sync.Mutex
	config   = svgrender.DefaultConfig()
	rt       *svgrender.Runtime
	sessions = make(map[int64]*svgrender.Session)
	last     int64
)

// SetConfig sets the configuration used when the runtime is started.
// It fails while the runtime is running.
func SetConfig(cfg svgrender.Config) error {
	mu.Lock()
	defer mu.Unlock()
	if rt != nil {
		return &svgrender.Error{
			Op:   "SetConfig",
			Kind: svgrender.KindRuntimeBusy,
			Err:  errors.New("runtime already started"),
		}
	}
	config = cfg
	return nil
}

// runtime returns the process-wide runtime, starting it if needed.
func runtime() (*svgrender.Runtime, error) {
	mu.Lock()
	defer mu.Unlock()
	if rt == nil {
		r, err := svgrender.NewRuntime(config)
		if err != nil {
			return nil, err
		}
		rt = r
	}
	return rt, nil
}

// Shutdown stops the process-wide runtime. It fails with
// svgrender.KindRuntimeBusy while handles are open. Calling Shutdown
// when the runtime is not running has no effect.
func Shutdown() error {
	mu.Lock()
	defer mu.Unlock()
	if rt == nil {
		return nil
	}
	if n := len(sessions); n > 0 {
		return &svgrender.Error{
			Op:   "Shutdown",
			Kind: svgrender.KindRuntimeBusy,
			Err:  fmt.Errorf("%d open handles", n),
		}
	}
	if err := rt.Close(); err != nil {
		return err
	}
	rt = nil
	return nil
}

// Open returns the number of open handles.
func Open() int {
	mu.Lock()
	defer mu.Unlock()
	return len(sessions)
}

// CreateFromPath loads the SVG file at path. It returns the new handle
// and the intrinsic size of the document, which is (0, 0) if the document
// does not declare a size. On failure the handle is 0.
func CreateFromPath(path string) (handle int64, w, h float32, err error) {
	return create(func(r *svgrender.Runtime) (*svgrender.Session, error) {
		return r.LoadFromPath(path)
	})
}

// CreateFromString loads an SVG document given as a string. The results
// are the same as for CreateFromPath.
func CreateFromString(content string) (handle int64, w, h float32, err error) {
	return create(func(r *svgrender.Runtime) (*svgrender.Session, error) {
		return r.LoadFromString(content)
	})
}

func create(load func(*svgrender.Runtime) (*svgrender.Session, error)) (int64, float32, float32, error) {
	r, err := runtime()
	if err != nil {
		return 0, 0, 0, err
	}
	s, err := load(r)
	if err != nil {
		return 0, 0, 0, err
	}

	mu.Lock()
	last++
	handle := last
	sessions[handle] = s
	mu.Unlock()

	w, h := s.Size()
	svgrender.Logger().Debug("handle created", zap.Int64("handle", handle))
	return handle, w, h, nil
}

func lookup(op string, handle int64) (*svgrender.Session, error) {
	mu.Lock()
	s := sessions[handle]
	mu.Unlock()
	if s == nil {
		return nil, &svgrender.Error{
			Op:   op,
			Kind: svgrender.KindInvalidInput,
			Err:  fmt.Errorf("unknown handle %d", handle),
		}
	}
	return s, nil
}

// hostBuffer is pixel memory owned by the host, which stays in place
// between Resize and the next Resize or Dispose.
type hostBuffer []byte

func (b hostBuffer) LockPixels() ([]byte, error) { return b, nil }
func (b hostBuffer) UnlockPixels()               {}

// Resize binds the session to w×h pixels in buf and scales the document
// to fit. The caller must keep buf unchanged in place until the next call
// to Resize or Dispose for this handle.
func Resize(handle int64, buf []byte, w, h float32) error {
	s, err := lookup("Resize", handle)
	if err != nil {
		return err
	}
	if buf == nil {
		return &svgrender.Error{Op: "Resize", Kind: svgrender.KindInvalidInput, Err: errors.New("no buffer")}
	}
	return s.Resize(hostBuffer(buf), w, h)
}

// ResizePtr is like Resize, but takes the address and length of pixel
// memory owned by the host, for example a locked Android bitmap.
func ResizePtr(handle int64, ptr uintptr, length int, w, h float32) error {
	if ptr == 0 || length <= 0 {
		return &svgrender.Error{Op: "ResizePtr", Kind: svgrender.KindInvalidInput, Err: errors.New("no buffer")}
	}
	buf := unsafe.Slice((*byte)(unsafe.Pointer(ptr)), length)
	return Resize(handle, buf, w, h)
}

// Render draws the document into the memory given to the last Resize.
func Render(handle int64) error {
	s, err := lookup("Render", handle)
	if err != nil {
		return err
	}
	return s.Render()
}

// Dispose closes the handle. Disposing handle 0 or an unknown handle has
// no effect.
func Dispose(handle int64) error {
	mu.Lock()
	s := sessions[handle]
	delete(sessions, handle)
	mu.Unlock()

	if s == nil {
		return nil
	}
	svgrender.Logger().Debug("handle disposed", zap.Int64("handle", handle))
	return s.Dispose()
}
