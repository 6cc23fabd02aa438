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
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"seehuhn.de/go/geom/matrix"
)

const wideSVG = `<svg xmlns="http://www.w3.org/2000/svg" width="100" height="50">
<rect width="100" height="50" fill="red"/>
</svg>`

func TestLoadErrors(t *testing.T) {
	if _, err := LoadFile(""); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("empty path: got %v", err)
	}

	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.svg"))
	if !errors.Is(err, ErrInvalidInput) || !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("missing file: got %v", err)
	}

	if _, err := LoadFile(t.TempDir()); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("directory: got %v", err)
	}

	if _, err := LoadBytes(nil); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("empty data: got %v", err)
	}
	if _, err := LoadBytes([]byte("<html></html>")); !errors.Is(err, ErrParse) {
		t.Errorf("not svg: got %v", err)
	}
	if _, err := LoadBytes([]byte("<svg><g>")); !errors.Is(err, ErrParse) {
		t.Errorf("truncated: got %v", err)
	}
}

func TestLoadFile(t *testing.T) {
	name := filepath.Join(t.TempDir(), "wide.svg")
	if err := os.WriteFile(name, []byte(wideSVG), 0o644); err != nil {
		t.Fatal(err)
	}
	p, err := LoadFile(name)
	if err != nil {
		t.Fatal(err)
	}
	w, h, err := p.Size()
	if err != nil || w != 100 || h != 50 {
		t.Errorf("Size() = %g, %g, %v", w, h, err)
	}
}

func TestLoadBytesCopies(t *testing.T) {
	data := []byte(wideSVG)
	p, err := LoadBytes(data)
	if err != nil {
		t.Fatal(err)
	}
	clear(data)
	if len(p.Document().Shapes) != 1 {
		t.Error("document changed after the caller reused its buffer")
	}
}

func TestPictureSize(t *testing.T) {
	p, err := LoadBytes([]byte(`<svg xmlns="http://www.w3.org/2000/svg"><rect width="1" height="1"/></svg>`))
	if err != nil {
		t.Fatal(err)
	}
	if _, _, err := p.Size(); !errors.Is(err, ErrNoSize) {
		t.Errorf("got %v, want ErrNoSize", err)
	}
	if err := p.SetSize(10, 10); !errors.Is(err, ErrResize) {
		t.Errorf("SetSize without intrinsic size: got %v, want ErrResize", err)
	}
}

func TestSetSize(t *testing.T) {
	approx := cmpopts.EquateApprox(0, 1e-12)

	tests := []struct {
		name string
		svg  string
		w, h float64
		want matrix.Matrix
	}{
		{
			name: "fit height",
			svg:  wideSVG,
			w:    200, h: 200,
			want: matrix.Matrix{2, 0, 0, 2, 0, 50},
		},
		{
			name: "fit width",
			svg:  wideSVG,
			w:    300, h: 100,
			want: matrix.Matrix{2, 0, 0, 2, 50, 0},
		},
		{
			name: "viewBox offset",
			svg:  `<svg xmlns="http://www.w3.org/2000/svg" viewBox="10 20 10 10"/>`,
			w:    20, h: 20,
			want: matrix.Matrix{2, 0, 0, 2, -20, -40},
		},
		{
			name: "xMinYMax",
			svg:  `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 10 10" preserveAspectRatio="xMinYMax meet"/>`,
			w:    20, h: 40,
			want: matrix.Matrix{2, 0, 0, 2, 0, 20},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p, err := LoadBytes([]byte(tc.svg))
			if err != nil {
				t.Fatal(err)
			}
			if err := p.SetSize(tc.w, tc.h); err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tc.want, p.Transform(), approx); diff != "" {
				t.Errorf("transform (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSetSizeKeepsPrevious(t *testing.T) {
	p, err := LoadBytes([]byte(wideSVG))
	if err != nil {
		t.Fatal(err)
	}
	if got := p.Transform(); got != matrix.Identity {
		t.Errorf("initial transform %v, want identity", got)
	}
	if err := p.SetSize(200, 100); err != nil {
		t.Fatal(err)
	}
	before := p.Transform()
	for _, sz := range [][2]float64{{0, 10}, {10, -1}, {0, 0}} {
		if err := p.SetSize(sz[0], sz[1]); !errors.Is(err, ErrResize) {
			t.Errorf("SetSize(%g, %g): got %v, want ErrResize", sz[0], sz[1], err)
		}
	}
	if got := p.Transform(); got != before {
		t.Errorf("transform changed to %v after failed resize", got)
	}
}
