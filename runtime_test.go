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
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"testing/fstest"
	"testing/iotest"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

const redSquare = `<svg xmlns="http://www.w3.org/2000/svg" width="10" height="20">
<rect width="10" height="20" fill="red"/>
</svg>`

func newTestRuntime(t *testing.T) *Runtime {
	t.Helper()
	rt, err := NewRuntime(DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := rt.Close(); err != nil {
			t.Error(err)
		}
	})
	return rt
}

func TestNewRuntimeInvalid(t *testing.T) {
	_, err := NewRuntime(Config{Threads: 0})
	if !errors.Is(err, ErrEngineInitFailed) {
		t.Errorf("got %v, want ErrEngineInitFailed", err)
	}
}

func TestRuntimeSessions(t *testing.T) {
	rt, err := NewRuntime(DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}

	s1, err := rt.LoadFromString(redSquare)
	if err != nil {
		t.Fatal(err)
	}
	s2, err := rt.LoadFromMemory([]byte(redSquare))
	if err != nil {
		t.Fatal(err)
	}
	if n := rt.Sessions(); n != 2 {
		t.Errorf("%d sessions, want 2", n)
	}

	if err := rt.Close(); !errors.Is(err, ErrRuntimeBusy) {
		t.Errorf("Close with open sessions: got %v", err)
	}

	if err := s1.Dispose(); err != nil {
		t.Fatal(err)
	}
	if err := s2.Dispose(); err != nil {
		t.Fatal(err)
	}
	if n := rt.Sessions(); n != 0 {
		t.Errorf("%d sessions, want 0", n)
	}

	if err := rt.Close(); err != nil {
		t.Fatal(err)
	}
	if err := rt.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
	if _, err := rt.LoadFromString(redSquare); !errors.Is(err, ErrEngineInitFailed) {
		t.Errorf("load after Close: got %v", err)
	}
}

func TestLoadErrors(t *testing.T) {
	rt := newTestRuntime(t)

	tests := []struct {
		name string
		load func() (*Session, error)
		want error
	}{
		{"empty path", func() (*Session, error) { return rt.LoadFromPath("") }, ErrInvalidInput},
		{"missing file", func() (*Session, error) {
			return rt.LoadFromPath(filepath.Join(t.TempDir(), "missing.svg"))
		}, ErrInvalidInput},
		{"directory", func() (*Session, error) { return rt.LoadFromPath(t.TempDir()) }, ErrInvalidInput},
		{"empty string", func() (*Session, error) { return rt.LoadFromString("") }, ErrInvalidInput},
		{"nil memory", func() (*Session, error) { return rt.LoadFromMemory(nil) }, ErrInvalidInput},
		{"not svg", func() (*Session, error) { return rt.LoadFromString("<html/>") }, ErrParseFailed},
		{"broken xml", func() (*Session, error) { return rt.LoadFromString("<svg><g></svg>") }, ErrParseFailed},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, err := tc.load()
			if !errors.Is(err, tc.want) {
				t.Errorf("got %v, want %v", err, tc.want)
			}
			if s != nil {
				t.Error("got a session despite the error")
			}
		})
	}
	if n := rt.Sessions(); n != 0 {
		t.Errorf("failed loads left %d sessions registered", n)
	}
}

func TestLoadFromPath(t *testing.T) {
	rt := newTestRuntime(t)

	name := filepath.Join(t.TempDir(), "square.svg")
	if err := os.WriteFile(name, []byte(redSquare), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := rt.LoadFromPath(name)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Dispose()

	if w, h := s.Size(); w != 10 || h != 20 {
		t.Errorf("size = %gx%g, want 10x20", w, h)
	}
}

func TestLoadFromReader(t *testing.T) {
	rt := newTestRuntime(t)

	s, err := rt.LoadFromReader(strings.NewReader(redSquare))
	if err != nil {
		t.Fatal(err)
	}
	defer s.Dispose()
	if w, h := s.Size(); w != 10 || h != 20 {
		t.Errorf("size = %gx%g, want 10x20", w, h)
	}

	readErr := errors.New("stream closed")
	_, err = rt.LoadFromReader(iotest.ErrReader(readErr))
	if !errors.Is(err, ErrInvalidInput) || !errors.Is(err, readErr) {
		t.Errorf("failing reader: got %v", err)
	}
	if _, err := rt.LoadFromReader(nil); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("nil reader: got %v", err)
	}
	if _, err := rt.LoadFromReader(strings.NewReader("<svg")); !errors.Is(err, ErrParseFailed) {
		t.Errorf("broken document: got %v", err)
	}
	if n := rt.Sessions(); n != 1 {
		t.Errorf("%d sessions registered, want 1", n)
	}
}

func TestLoadFromFS(t *testing.T) {
	rt := newTestRuntime(t)
	fsys := fstest.MapFS{
		"icons/square.svg": {Data: []byte(redSquare)},
	}

	s, err := rt.LoadFromFS(fsys, "icons/square.svg")
	if err != nil {
		t.Fatal(err)
	}
	defer s.Dispose()
	if w, h := s.Size(); w != 10 || h != 20 {
		t.Errorf("size = %gx%g, want 10x20", w, h)
	}

	_, err = rt.LoadFromFS(fsys, "icons/missing.svg")
	if !errors.Is(err, ErrInvalidInput) || !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("missing file: got %v", err)
	}
	if _, err := rt.LoadFromFS(fsys, "icons"); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("directory: got %v", err)
	}
	if _, err := rt.LoadFromFS(nil, "square.svg"); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("nil file system: got %v", err)
	}
}

func TestLoadFromMemoryCopies(t *testing.T) {
	rt := newTestRuntime(t)

	data := []byte(redSquare)
	s, err := rt.LoadFromMemory(data)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Dispose()
	clear(data)

	buf, err := NewPixelBuffer(10, 20)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Resize(buf, 10, 20); err != nil {
		t.Fatal(err)
	}
	if err := s.Render(); err != nil {
		t.Fatal(err)
	}
	if buf.Pix[3] != 0xff {
		t.Error("document changed after the caller cleared its buffer")
	}
}

func TestSizeUnknownIsLogged(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	SetLogger(zap.New(core))
	defer SetLogger(nil)

	rt := newTestRuntime(t)
	s, err := rt.LoadFromString(`<svg xmlns="http://www.w3.org/2000/svg"><rect width="5" height="5"/></svg>`)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Dispose()

	if w, h := s.Size(); w != 0 || h != 0 {
		t.Errorf("size = %gx%g, want 0x0", w, h)
	}
	if n := logs.FilterMessage("document size unknown").Len(); n != 1 {
		t.Errorf("%d warnings logged, want 1", n)
	}
}

func TestConcurrentSessions(t *testing.T) {
	rt := newTestRuntime(t)

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s, err := rt.LoadFromString(redSquare)
			if err != nil {
				errs <- err
				return
			}
			defer s.Dispose()
			buf, err := NewPixelBuffer(10, 20)
			if err != nil {
				errs <- err
				return
			}
			if err := s.Resize(buf, 10, 20); err != nil {
				errs <- err
				return
			}
			if err := s.Render(); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}
