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

package svg

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

type paintKind uint8

const (
	paintNone paintKind = iota
	paintColor
	paintCurrent // currentColor, resolved when the shape is emitted
)

type paint struct {
	kind paintKind
	c    color.NRGBA
}

// parsePaint parses the value of a fill or stroke property.
// Paint servers are not supported: "url(...)" uses the fallback colour
// if one is given, and no paint otherwise.
func parsePaint(s string) (paint, bool) {
	s = strings.TrimSpace(s)
	if rest, ok := strings.CutPrefix(s, "url("); ok {
		_, fallback, found := strings.Cut(rest, ")")
		if !found {
			return paint{}, false
		}
		fallback = strings.TrimSpace(fallback)
		if fallback == "" {
			return paint{kind: paintNone}, true
		}
		return parsePaint(fallback)
	}

	switch strings.ToLower(s) {
	case "none":
		return paint{kind: paintNone}, true
	case "currentcolor":
		return paint{kind: paintCurrent}, true
	}
	c, ok := parseColor(s)
	if !ok {
		return paint{}, false
	}
	return paint{kind: paintColor, c: c}, true
}

// ParseColor parses a CSS colour value, such as "teal", "#0f08" or
// "rgb(10% 20% 30%)".
func ParseColor(s string) (color.NRGBA, error) {
	c, ok := parseColor(s)
	if !ok {
		return color.NRGBA{}, fmt.Errorf("svg: invalid colour %q", s)
	}
	return c, nil
}

func parseColor(s string) (color.NRGBA, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return color.NRGBA{}, false
	}
	if hex, ok := strings.CutPrefix(s, "#"); ok {
		return parseHexColor(hex)
	}

	low := strings.ToLower(s)
	if name, args, ok := cutFunction(low); ok {
		switch name {
		case "rgb", "rgba":
			return parseRGBFunc(args)
		case "hsl", "hsla":
			return parseHSLFunc(args)
		}
		return color.NRGBA{}, false
	}

	if low == "transparent" {
		return color.NRGBA{}, true
	}
	c, ok := colornames.Map[low]
	if !ok {
		return color.NRGBA{}, false
	}
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255}, true
}

// cutFunction splits "name(args)" into its parts.
func cutFunction(s string) (name string, args []string, ok bool) {
	name, rest, ok := strings.Cut(s, "(")
	if !ok || !strings.HasSuffix(rest, ")") {
		return "", nil, false
	}
	rest = strings.TrimSuffix(rest, ")")
	args = strings.FieldsFunc(rest, func(r rune) bool {
		return r == ',' || r == '/' || r == ' ' || r == '\t' || r == '\n'
	})
	return strings.TrimSpace(name), args, true
}

func parseHexColor(hex string) (color.NRGBA, bool) {
	digits := make([]uint8, len(hex))
	for i := range len(hex) {
		d, ok := hexValue(hex[i])
		if !ok {
			return color.NRGBA{}, false
		}
		digits[i] = d
	}

	switch len(hex) {
	case 3, 4:
		c := color.NRGBA{R: digits[0] * 17, G: digits[1] * 17, B: digits[2] * 17, A: 255}
		if len(hex) == 4 {
			c.A = digits[3] * 17
		}
		return c, true
	case 6, 8:
		c := color.NRGBA{
			R: digits[0]<<4 | digits[1],
			G: digits[2]<<4 | digits[3],
			B: digits[4]<<4 | digits[5],
			A: 255,
		}
		if len(hex) == 8 {
			c.A = digits[6]<<4 | digits[7]
		}
		return c, true
	}
	return color.NRGBA{}, false
}

func hexValue(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

func parseRGBFunc(args []string) (color.NRGBA, bool) {
	if len(args) != 3 && len(args) != 4 {
		return color.NRGBA{}, false
	}
	var v [3]uint8
	for i := range 3 {
		x, ok := parseChannel(args[i], 255)
		if !ok {
			return color.NRGBA{}, false
		}
		v[i] = x
	}
	a := uint8(255)
	if len(args) == 4 {
		var ok bool
		if a, ok = parseChannel(args[3], 1); !ok {
			return color.NRGBA{}, false
		}
	}
	return color.NRGBA{R: v[0], G: v[1], B: v[2], A: a}, true
}

// parseChannel parses a number or percentage and maps the range [0, scale]
// to [0, 255].
func parseChannel(s string, scale float64) (uint8, bool) {
	s = strings.TrimSpace(s)
	var x float64
	var err error
	if num, ok := strings.CutSuffix(s, "%"); ok {
		x, err = strconv.ParseFloat(num, 64)
		x = x / 100 * 255
	} else {
		x, err = strconv.ParseFloat(s, 64)
		x = x / scale * 255
	}
	if err != nil || math.IsNaN(x) {
		return 0, false
	}
	return uint8(math.Round(max(0, min(255, x)))), true
}

func parseHSLFunc(args []string) (color.NRGBA, bool) {
	if len(args) != 3 && len(args) != 4 {
		return color.NRGBA{}, false
	}
	h, err := strconv.ParseFloat(strings.TrimSuffix(args[0], "deg"), 64)
	if err != nil {
		return color.NRGBA{}, false
	}
	var sl [2]float64
	for i := range 2 {
		num, ok := strings.CutSuffix(args[i+1], "%")
		if !ok {
			return color.NRGBA{}, false
		}
		x, err := strconv.ParseFloat(num, 64)
		if err != nil {
			return color.NRGBA{}, false
		}
		sl[i] = max(0, min(1, x/100))
	}
	a := uint8(255)
	if len(args) == 4 {
		var ok bool
		if a, ok = parseChannel(args[3], 1); !ok {
			return color.NRGBA{}, false
		}
	}

	r, g, b := hslToRGB(h, sl[0], sl[1])
	return color.NRGBA{R: r, G: g, B: b, A: a}, true
}

func hslToRGB(h, s, l float64) (r, g, b uint8) {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	c := (1 - math.Abs(2*l-1)) * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := l - c/2

	var rf, gf, bf float64
	switch {
	case h < 60:
		rf, gf = c, x
	case h < 120:
		rf, gf = x, c
	case h < 180:
		gf, bf = c, x
	case h < 240:
		gf, bf = x, c
	case h < 300:
		rf, bf = x, c
	default:
		rf, bf = c, x
	}
	conv := func(v float64) uint8 {
		return uint8(math.Round(max(0, min(1, v+m)) * 255))
	}
	return conv(rf), conv(gf), conv(bf)
}
