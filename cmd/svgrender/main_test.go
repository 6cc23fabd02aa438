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

package main

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/svgrender/engine"
)

func TestOutputSize(t *testing.T) {
	tests := []struct {
		name    string
		w, h    int
		iw, ih  float64
		wantW   int
		wantH   int
		wantErr bool
	}{
		{"intrinsic", 0, 0, 100, 50, 100, 50, false},
		{"explicit", 30, 40, 100, 50, 30, 40, false},
		{"width only", 200, 0, 100, 50, 200, 100, false},
		{"height only", 0, 10, 100, 50, 20, 10, false},
		{"no size", 0, 0, 0, 0, 0, 0, true},
		{"one dimension, no size", 10, 0, 0, 0, 0, 0, true},
		{"explicit, no size", 10, 20, 0, 0, 10, 20, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w, h, err := outputSize(tc.w, tc.h, tc.iw, tc.ih)
			if (err != nil) != tc.wantErr {
				t.Fatalf("unexpected error state: %v", err)
			}
			if err == nil && (w != tc.wantW || h != tc.wantH) {
				t.Errorf("got %dx%d, want %dx%d", w, h, tc.wantW, tc.wantH)
			}
		})
	}
}

func TestRawPixels(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	copy(img.Pix, []byte{1, 2, 3, 4, 5, 6, 7, 8})

	if diff := cmp.Diff([]byte{1, 2, 3, 4, 5, 6, 7, 8}, rawPixels(img, engine.ABGR8888)); diff != "" {
		t.Errorf("ABGR8888 (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]byte{3, 2, 1, 4, 7, 6, 5, 8}, rawPixels(img, engine.ARGB8888)); diff != "" {
		t.Errorf("ARGB8888 (-want +got):\n%s", diff)
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "svgrender.yaml")
	data := []byte("threads: 4\nwidth: 64\nformat: bmp\nbackground: white\n")
	if err := os.WriteFile(name, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig(name)
	if err != nil {
		t.Fatal(err)
	}
	want := &Config{
		Threads:    4,
		Width:      64,
		Format:     "bmp",
		Colorspace: "ABGR8888",
		Background: "white",
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config (-want +got):\n%s", diff)
	}

	if err := os.WriteFile(name, []byte("threads: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := loadConfig(name); err == nil {
		t.Error("zero threads accepted")
	}
	if _, err := loadConfig(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing file accepted")
	}
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "box.svg")
	src := `<svg xmlns="http://www.w3.org/2000/svg" width="20" height="10">
<rect x="10" width="10" height="10" fill="blue"/>
</svg>`
	if err := os.WriteFile(input, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig("")
	if err != nil {
		t.Fatal(err)
	}
	cfg.Background = "white"
	if err := run(input, "", cfg); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(filepath.Join(dir, "box.png"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 20 || b.Dy() != 10 {
		t.Fatalf("image size %v, want 20x10", b)
	}
	if r, g, b, a := img.At(2, 5).RGBA(); r != 0xffff || g != 0xffff || b != 0xffff || a != 0xffff {
		t.Errorf("background pixel = %x %x %x %x, want white", r, g, b, a)
	}
	if r, g, b, a := img.At(15, 5).RGBA(); r != 0 || g != 0 || b != 0xffff || a != 0xffff {
		t.Errorf("shape pixel = %x %x %x %x, want blue", r, g, b, a)
	}

	if err := run(input, filepath.Join(dir, "out.gif"), cfg); err == nil {
		t.Error("unsupported format accepted")
	}
}
