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

// Command genref generates reference images for the rendering tests.
// It writes each test document as a PDF file and renders the PDF to PNG
// using Ghostscript.
//
// The PDF files show coverage rather than colour: the page is black, and
// every shape is painted in white, with its opacity as the grey level.
package main

import (
	"flag"
	"fmt"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"go.uber.org/zap"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/svgrender/engine"
	"seehuhn.de/go/svgrender/raster"
	"seehuhn.de/go/svgrender/svg"
	"seehuhn.de/go/svgrender/testcases"
)

func main() {
	refDir := flag.String("dir", filepath.Join("testdata", "reference"), "output directory")
	svgDir := flag.String("svg", "", "also write the test documents as .svg files into this directory")
	gs := flag.String("gs", "gs", "Ghostscript executable")
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := os.MkdirAll(*refDir, 0755); err != nil {
		logger.Fatal("cannot create output directory", zap.Error(err))
	}
	if *svgDir != "" {
		if err := os.MkdirAll(*svgDir, 0755); err != nil {
			logger.Fatal("cannot create output directory", zap.Error(err))
		}
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			log := logger.With(zap.String("name", name))

			if *svgDir != "" {
				svgPath := filepath.Join(*svgDir, name+".svg")
				if err := os.WriteFile(svgPath, []byte(tc.SVG), 0644); err != nil {
					log.Fatal("cannot write document", zap.Error(err))
				}
			}

			pdfPath := filepath.Join(*refDir, name+".pdf")
			pngPath := filepath.Join(*refDir, name+".png")
			if err := generatePDF(tc, pdfPath); err != nil {
				log.Fatal("cannot write PDF", zap.Error(err))
			}
			if err := renderPNG(*gs, pdfPath, pngPath); err != nil {
				log.Fatal("cannot render PDF", zap.Error(err))
			}
			log.Debug("reference written", zap.String("path", pngPath))
		}
	}
}

func generatePDF(tc testcases.Document, pdfPath string) error {
	pic, err := engine.LoadBytes([]byte(tc.SVG))
	if err != nil {
		return err
	}
	if err := pic.SetSize(float64(tc.Width), float64(tc.Height)); err != nil {
		return err
	}
	ctm := pic.Transform()

	// Page size in points (1 point = 1 pixel at 72 DPI)
	paper := &pdf.Rectangle{
		URx: float64(tc.Width),
		URy: float64(tc.Height),
	}
	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(color.DeviceGray(0))
	page.Rectangle(0, 0, float64(tc.Width), float64(tc.Height))
	page.Fill()

	// PDF origin is bottom-left, SVG uses top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(tc.Height)})

	for _, sh := range pic.Document().Shapes {
		page.PushGraphicsState()
		page.Transform(sh.CTM.Mul(ctm))

		if sh.Fill != nil {
			page.SetFillColor(color.DeviceGray(coverage(sh.Fill.A, sh.Opacity)))
			drawPath(page, sh.Path)
			if sh.FillRule == raster.EvenOdd {
				page.FillEvenOdd()
			} else {
				page.Fill()
			}
		}

		if sh.Stroke != nil {
			st := sh.StrokeStyle
			page.SetStrokeColor(color.DeviceGray(coverage(sh.Stroke.A, sh.Opacity)))
			page.SetLineWidth(st.Width)
			page.SetLineCap(st.Cap)
			page.SetLineJoin(st.Join)
			page.SetMiterLimit(st.MiterLimit)
			if validDash(st) {
				page.SetLineDash(st.Dash, st.DashOffset)
			}
			drawPath(page, sh.Path)
			page.Stroke()
		}

		page.PopGraphicsState()
	}

	return page.Close()
}

// drawPath adds the path to the current page.
// Quadratic segments are converted to cubic, since PDF has no quadratic
// Bézier curves.
func drawPath(page *document.Page, p *path.Data) {
	for cmd, pts := range p.Iter().ToCubic() {
		switch cmd {
		case path.CmdMoveTo:
			page.MoveTo(pts[0].X, pts[0].Y)
		case path.CmdLineTo:
			page.LineTo(pts[0].X, pts[0].Y)
		case path.CmdCubeTo:
			page.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
		case path.CmdClose:
			page.ClosePath()
		}
	}
}

func coverage(alpha uint8, opacity float64) float64 {
	return float64(alpha) / 255 * opacity
}

// validDash reports whether the dash pattern can be written to PDF. Other
// patterns are rendered as solid lines.
func validDash(st svg.StrokeStyle) bool {
	var sum float64
	for _, d := range st.Dash {
		if d < 0 {
			return false
		}
		sum += d
	}
	return sum > 0
}

func renderPNG(gs, pdfPath, pngPath string) error {
	// -sDEVICE=pnggray: 8-bit grayscale, compared against the alpha channel
	// -r72: 72 DPI (1 point = 1 pixel)
	// -dGraphicsAlphaBits=4: 4x supersampling for anti-aliasing
	cmd := exec.Command(
		gs, "-q",
		"-sDEVICE=pnggray",
		"-r72",
		"-dGraphicsAlphaBits=4",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
