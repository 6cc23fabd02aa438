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
	"fmt"
	"image/color"
)

// Colorspace gives the byte order of the 32-bit pixels in a target
// buffer. Pixel values are always premultiplied by alpha.
type Colorspace int

const (
	// ABGR8888 stores the bytes R, G, B, A in memory order. This is the
	// layout of image.RGBA and of Android's ARGB_8888 bitmaps, whose
	// pixels read as 0xAABBGGRR words on little-endian machines.
	ABGR8888 Colorspace = iota

	// ARGB8888 stores the bytes B, G, R, A in memory order.
	ARGB8888
)

func (cs Colorspace) String() string {
	switch cs {
	case ABGR8888:
		return "ABGR8888"
	case ARGB8888:
		return "ARGB8888"
	default:
		return fmt.Sprintf("Colorspace(%d)", int(cs))
	}
}

// offsets returns the byte positions of the red, green and blue channels.
// Alpha is always the last byte.
func (cs Colorspace) offsets() (r, g, b int, ok bool) {
	switch cs {
	case ABGR8888:
		return 0, 1, 2, true
	case ARGB8888:
		return 2, 1, 0, true
	}
	return 0, 0, 0, false
}

// ParseColorspace converts a colour space name, as returned by String,
// into a Colorspace.
func ParseColorspace(s string) (Colorspace, error) {
	switch s {
	case "ABGR8888", "abgr8888", "rgba":
		return ABGR8888, nil
	case "ARGB8888", "argb8888", "bgra":
		return ARGB8888, nil
	}
	return 0, fmt.Errorf("engine: unknown colour space %q", s)
}

// premul is a premultiplied colour with components in [0, 1].
type premul struct {
	r, g, b, a float32
}

func premultiply(c color.NRGBA, opacity float64) premul {
	a := float32(c.A) / 255 * float32(opacity)
	return premul{
		r: float32(c.R) / 255 * a,
		g: float32(c.G) / 255 * a,
		b: float32(c.B) / 255 * a,
		a: a,
	}
}

// spanPainter composites a solid colour onto rows of a pixel buffer,
// using the Porter-Duff source-over operator.
type spanPainter struct {
	buf     []byte
	stride  int // in bytes
	ri, gi  int
	bi      int
	src     premul
	opaque  bool // src.a == 1
	srcByte [4]byte
}

func newSpanPainter(buf []byte, strideBytes int, cs Colorspace, src premul) *spanPainter {
	ri, gi, bi, _ := cs.offsets()
	sp := &spanPainter{
		buf:    buf,
		stride: strideBytes,
		ri:     ri,
		gi:     gi,
		bi:     bi,
		src:    src,
		opaque: src.a >= 1,
	}
	sp.srcByte[ri] = toByte(src.r)
	sp.srcByte[gi] = toByte(src.g)
	sp.srcByte[bi] = toByte(src.b)
	sp.srcByte[3] = toByte(src.a)
	return sp
}

func toByte(x float32) byte {
	return byte(max(0, min(255, x*255+0.5)))
}

// emit has the signature of raster.EmitFunc.
func (sp *spanPainter) emit(y, xMin int, coverage []float32) {
	row := sp.buf[y*sp.stride+4*xMin:]
	for i, c := range coverage {
		px := row[4*i : 4*i+4 : 4*i+4]
		if c >= 1 && sp.opaque {
			copy(px, sp.srcByte[:])
			continue
		}

		k := 1 - sp.src.a*c
		px[sp.ri] = toByte(sp.src.r*c + float32(px[sp.ri])/255*k)
		px[sp.gi] = toByte(sp.src.g*c + float32(px[sp.gi])/255*k)
		px[sp.bi] = toByte(sp.src.b*c + float32(px[sp.bi])/255*k)
		px[3] = toByte(sp.src.a*c + float32(px[3])/255*k)
	}
}
