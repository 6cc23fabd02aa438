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

// Command svgrender renders an SVG file into an image file.
//
// Usage:
//
//	svgrender [flags] input.svg
//
// The output format is taken from the -format flag or from the extension
// of the output file name. Supported formats are png, bmp, tiff and raw,
// where raw writes the premultiplied pixels in the byte order given by
// -colorspace.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"
	"golang.org/x/term"

	"seehuhn.de/go/svgrender"
	"seehuhn.de/go/svgrender/engine"
	"seehuhn.de/go/svgrender/svg"
)

func main() {
	var (
		output     = flag.String("o", "", "output file, \"-\" for stdout (default: input name with the format's extension)")
		configFile = flag.String("config", "", "YAML configuration file")
		width      = flag.Int("w", 0, "output width in pixels (default: intrinsic size)")
		height     = flag.Int("h", 0, "output height in pixels (default: intrinsic size)")
		threads    = flag.Int("threads", 0, "number of rendering threads")
		format     = flag.String("format", "", "output format: png, bmp, tiff or raw")
		colorspace = flag.String("colorspace", "", "byte order for raw output: ABGR8888 or ARGB8888")
		background = flag.String("background", "", "background colour (default: transparent)")
		verbose    = flag.Bool("v", false, "verbose logging")
	)
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: svgrender [flags] input.svg")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	logger, err := newLogger(*verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	svgrender.SetLogger(logger)

	cfg, err := loadConfig(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "w":
			cfg.Width = *width
		case "h":
			cfg.Height = *height
		case "threads":
			cfg.Threads = *threads
		case "format":
			cfg.Format = *format
		case "colorspace":
			cfg.Colorspace = *colorspace
		case "background":
			cfg.Background = *background
		}
	})

	if err := run(flag.Arg(0), *output, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func run(input, output string, cfg *Config) error {
	format := strings.ToLower(cfg.Format)
	if format == "" {
		format = "png"
		if ext := strings.ToLower(filepath.Ext(output)); ext != "" && output != "-" {
			format = strings.TrimPrefix(ext, ".")
		}
	}
	if format == "tif" {
		format = "tiff"
	}
	switch format {
	case "png", "bmp", "tiff", "raw":
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
	cs, err := engine.ParseColorspace(cfg.Colorspace)
	if err != nil {
		return err
	}

	if output == "" {
		output = strings.TrimSuffix(input, filepath.Ext(input)) + "." + format
	}
	if output == "-" && term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("refusing to write image data to a terminal")
	}

	img, err := render(input, cfg)
	if err != nil {
		return err
	}

	if cfg.Background != "" {
		bg, err := svg.ParseColor(cfg.Background)
		if err != nil {
			return err
		}
		out := image.NewRGBA(img.Bounds())
		draw.Draw(out, out.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
		draw.Draw(out, out.Bounds(), img, img.Bounds().Min, draw.Over)
		img = out
	}

	var w io.Writer = os.Stdout
	if output != "-" {
		f, err := os.Create(output)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	switch format {
	case "png":
		err = png.Encode(w, img)
	case "bmp":
		err = bmp.Encode(w, img)
	case "tiff":
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
	case "raw":
		_, err = w.Write(rawPixels(img, cs))
	}
	if err != nil {
		return fmt.Errorf("writing %s: %w", output, err)
	}
	if f, ok := w.(*os.File); ok && f != os.Stdout {
		return f.Close()
	}
	return nil
}

// render draws the SVG file into a new image.
func render(input string, cfg *Config) (*image.RGBA, error) {
	rt, err := svgrender.NewRuntime(svgrender.Config{Threads: cfg.Threads})
	if err != nil {
		return nil, err
	}
	defer rt.Close()

	s, err := rt.LoadFromPath(input)
	if err != nil {
		return nil, err
	}
	defer s.Dispose()

	iw, ih := s.Size()
	w, h, err := outputSize(cfg.Width, cfg.Height, float64(iw), float64(ih))
	if err != nil {
		return nil, err
	}

	buf, err := svgrender.NewPixelBuffer(w, h)
	if err != nil {
		return nil, err
	}
	if err := s.Resize(buf, float32(w), float32(h)); err != nil {
		return nil, err
	}
	if err := s.Render(); err != nil {
		return nil, err
	}
	return buf.Image(), nil
}

// outputSize determines the image size. A missing dimension is computed
// from the intrinsic aspect ratio.
func outputSize(w, h int, iw, ih float64) (int, int, error) {
	if w > 0 && h > 0 {
		return w, h, nil
	}
	if iw <= 0 || ih <= 0 {
		if w > 0 || h > 0 {
			return 0, 0, errors.New("document has no intrinsic size, both -w and -h are needed")
		}
		return 0, 0, errors.New("document has no intrinsic size, use -w and -h")
	}
	switch {
	case w > 0:
		h = int(math.Round(float64(w) * ih / iw))
	case h > 0:
		w = int(math.Round(float64(h) * iw / ih))
	default:
		w, h = int(iw), int(ih)
	}
	if w < 1 || h < 1 {
		return 0, 0, fmt.Errorf("output size %dx%d is too small", w, h)
	}
	return w, h, nil
}

// rawPixels returns the pixels of img in the byte order of cs.
func rawPixels(img *image.RGBA, cs engine.Colorspace) []byte {
	b := img.Bounds()
	out := make([]byte, 0, 4*b.Dx()*b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		i := img.PixOffset(b.Min.X, y)
		row := img.Pix[i : i+4*b.Dx()]
		if cs == engine.ARGB8888 {
			for x := 0; x < len(row); x += 4 {
				out = append(out, row[x+2], row[x+1], row[x], row[x+3])
			}
		} else {
			out = append(out, row...)
		}
	}
	return out
}
