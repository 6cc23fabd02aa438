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
	"fmt"
	"sync"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/svgrender/raster"
	"seehuhn.de/go/svgrender/svg"
)

var (
	// ErrCreate is returned by NewCanvas if no pool is given.
	ErrCreate = errors.New("engine: cannot create canvas")

	// ErrTarget is returned by Canvas.Target for unusable pixel memory.
	ErrTarget = errors.New("engine: invalid render target")

	// ErrNotBound is returned if a canvas is used before a target is set.
	ErrNotBound = errors.New("engine: canvas has no target")

	// ErrNoUpdate is returned by Canvas.Draw if Update was not called
	// since the last change of target or picture.
	ErrNoUpdate = errors.New("engine: canvas not updated")
)

// minBandHeight is the smallest number of rows rasterized in one task.
const minBandHeight = 16

// paintCmd is a single fill or stroke operation, in device space.
type paintCmd struct {
	path   *path.Data
	ctm    matrix.Matrix
	stroke bool
	rule   raster.FillRule
	style  svg.StrokeStyle
	color  premul
}

// Canvas draws pictures into a pixel buffer.
//
// Drawing happens in three steps. Update converts the attached picture
// into paint commands, Draw clears the buffer and starts rasterizing on the
// pool, and Sync waits until all pixels are written.
//
// A Canvas is safe for concurrent use, but the pixel buffer must not be
// accessed between Draw and the following Sync.
type Canvas struct {
	pool  *Pool
	tasks *Group

	mu      sync.Mutex
	buf     []byte
	width   int
	stride  int // in pixels
	height  int
	cs      Colorspace
	bound   bool
	pic     *Picture
	cmds    []paintCmd
	updated bool
	lost    error // from drawing completed by Target, reported by Sync
}

var rasterizers = sync.Pool{
	New: func() any { return raster.NewRasterizer(rect.Rect{}) },
}

// NewCanvas returns an unbound canvas which renders on the given pool.
func NewCanvas(pool *Pool) (*Canvas, error) {
	if pool == nil {
		return nil, fmt.Errorf("%w: no worker pool", ErrCreate)
	}
	return &Canvas{pool: pool, tasks: pool.NewGroup()}, nil
}

// Target binds the canvas to a pixel buffer. The buffer holds height rows
// of stride pixels, 4 bytes each, of which the first width pixels are
// drawn. If the arguments are invalid, the canvas is left unbound and
// ErrTarget is returned.
//
// Pending draw operations are completed before the target is changed.
// Their errors are reported by the next call to Sync.
func (c *Canvas) Target(buf []byte, width, stride, height int, cs Colorspace) error {
	err := c.tasks.Wait()

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.lost == nil {
		c.lost = err
	}

	c.buf = nil
	c.bound = false
	c.updated = false

	switch _, _, _, ok := cs.offsets(); {
	case !ok:
		return fmt.Errorf("%w: unknown colour space %d", ErrTarget, int(cs))
	case buf == nil:
		return fmt.Errorf("%w: no buffer", ErrTarget)
	case width < 1 || height < 1 || stride < width:
		return fmt.Errorf("%w: invalid dimensions %dx%d, stride %d", ErrTarget, width, height, stride)
	case len(buf)/4/stride < height:
		return fmt.Errorf("%w: buffer of %d bytes is too small for %d rows of %d pixels",
			ErrTarget, len(buf), height, stride)
	}

	c.buf = buf[:stride*height*4]
	c.width, c.stride, c.height = width, stride, height
	c.cs = cs
	c.bound = true
	return nil
}

// Push attaches a picture to the canvas, replacing any previous one.
// A nil picture detaches the current picture.
func (c *Canvas) Push(p *Picture) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pic = p
	c.updated = false
	return nil
}

// Update converts the attached picture into paint commands, using its
// current transformation.
func (c *Canvas) Update() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.bound {
		return ErrNotBound
	}

	// running draw tasks may still read the previous slice
	var cmds []paintCmd
	if c.pic != nil {
		ctm := c.pic.Transform()
		cmds = make([]paintCmd, 0, len(c.pic.doc.Shapes))
		for _, sh := range c.pic.doc.Shapes {
			m := sh.CTM.Mul(ctm)
			if sh.Fill != nil {
				cmds = append(cmds, paintCmd{
					path:  sh.Path,
					ctm:   m,
					rule:  sh.FillRule,
					color: premultiply(*sh.Fill, sh.Opacity),
				})
			}
			if sh.Stroke != nil {
				cmds = append(cmds, paintCmd{
					path:   sh.Path,
					ctm:    m,
					stroke: true,
					style:  sh.StrokeStyle,
					color:  premultiply(*sh.Stroke, sh.Opacity),
				})
			}
		}
	}
	c.cmds = cmds
	c.updated = true
	return nil
}

// Draw clears the target and starts rendering the paint commands.
// The work is split into horizontal bands which are rasterized in
// parallel; call Sync to wait for completion.
func (c *Canvas) Draw() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.bound {
		return ErrNotBound
	}
	if !c.updated {
		return ErrNoUpdate
	}

	bandHeight := max(minBandHeight, (c.height+c.pool.Threads()-1)/c.pool.Threads())
	for y0 := 0; y0 < c.height; y0 += bandHeight {
		b := band{
			buf:    c.buf,
			width:  c.width,
			stride: c.stride * 4,
			y0:     y0,
			y1:     min(y0+bandHeight, c.height),
			cs:     c.cs,
			cmds:   c.cmds,
		}
		c.tasks.Go(b.render)
	}
	return nil
}

// Sync waits until all drawing started by Draw has finished, and returns
// the first error encountered since the previous Sync. Drawing only fails
// if a band panics; the error then wraps ErrPanic.
func (c *Canvas) Sync() error {
	err := c.tasks.Wait()

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.lost != nil {
		err = c.lost
		c.lost = nil
	}
	return err
}

// Release waits for pending drawing, then unbinds the target and detaches
// the picture. Errors from drawing which was not synced are returned.
func (c *Canvas) Release() error {
	err := c.tasks.Wait()

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.lost != nil {
		err = c.lost
		c.lost = nil
	}
	c.buf = nil
	c.bound = false
	c.pic = nil
	c.cmds = nil
	c.updated = false
	return err
}

// band is a range of rows rendered by one task.
type band struct {
	buf    []byte
	width  int
	stride int // in bytes
	y0, y1 int
	cs     Colorspace
	cmds   []paintCmd
}

func (b band) render() error {
	for y := b.y0; y < b.y1; y++ {
		clear(b.buf[y*b.stride : y*b.stride+4*b.width])
	}

	clip := rect.Rect{LLx: 0, LLy: float64(b.y0), URx: float64(b.width), URy: float64(b.y1)}
	r := rasterizers.Get().(*raster.Rasterizer)
	defer rasterizers.Put(r)

	for i := range b.cmds {
		cmd := &b.cmds[i]
		r.Reset(clip)
		r.CTM = cmd.ctm
		sp := newSpanPainter(b.buf, b.stride, b.cs, cmd.color)
		if !cmd.stroke {
			r.Fill(cmd.path.Iter(), cmd.rule, sp.emit)
			continue
		}
		r.Width = cmd.style.Width
		r.Cap = cmd.style.Cap
		r.Join = cmd.style.Join
		r.MiterLimit = cmd.style.MiterLimit
		r.Dash = cmd.style.Dash
		r.DashPhase = cmd.style.DashOffset
		r.Stroke(cmd.path.Iter(), sp.emit)
	}
	return nil
}
