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
	"fmt"
	"testing"

	"seehuhn.de/go/svgrender/testcases"
)

// BenchmarkRender draws the large test documents at increasing sizes.
func BenchmarkRender(b *testing.B) {
	rt, err := NewRuntime(DefaultConfig())
	if err != nil {
		b.Fatal(err)
	}
	defer rt.Close()

	for _, tc := range testcases.All["large"] {
		for _, size := range []int{200, 2000} {
			b.Run(fmt.Sprintf("%s/%dx%d", tc.Name, size, size), func(b *testing.B) {
				s, err := rt.LoadFromString(tc.SVG)
				if err != nil {
					b.Fatal(err)
				}
				defer s.Dispose()

				buf, err := NewPixelBuffer(size, size)
				if err != nil {
					b.Fatal(err)
				}
				if err := s.Resize(buf, float32(size), float32(size)); err != nil {
					b.Fatal(err)
				}

				b.ReportAllocs()
				for b.Loop() {
					if err := s.Render(); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}
