// seehuhn.de/go/dib - a bitmap drawing library
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

package dib

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// edge is a line segment in device coordinates.
type edge struct {
	x0, y0 float64 // start point
	x1, y1 float64 // end point
	dxdy   float64 // (x1-x0)/(y1-y0)
}

func (e *edge) yMin() float64 { return min(e.y0, e.y1) }
func (e *edge) yMax() float64 { return max(e.y0, e.y1) }

// crossing is the point where an edge meets the centre line of a row.
type crossing struct {
	x       float64
	winding int // +1 if the edge points towards larger y, -1 otherwise
}

// FillRule selects how the inside of a self-intersecting path is found.
type FillRule int

const (
	// NonZero paints points which the path winds around a non-zero number
	// of times.
	NonZero FillRule = iota

	// EvenOdd paints points which are enclosed an odd number of times.
	EvenOdd
)

func (r FillRule) String() string {
	switch r {
	case NonZero:
		return "nonzero"
	case EvenOdd:
		return "evenodd"
	default:
		return fmt.Sprintf("FillRule(%d)", int(r))
	}
}

// Outliner draws vector paths onto a surface with a single solid colour.
// Paths may contain straight lines as well as quadratic and cubic Bézier
// curves; curves are flattened into line segments before drawing.
//
// There is no anti-aliasing: [Outliner.Stroke] draws one pixel wide
// hairlines and [Outliner.Fill] paints every pixel whose centre lies inside
// the path. Device coordinates are the pixel coordinates used by the
// drawing primitives of [Surface].
//
// An Outliner can be reused for many paths. It is not safe for concurrent
// use.
type Outliner struct {
	// CTM maps path coordinates to device coordinates.
	CTM matrix.Matrix

	// Flatness is the maximal distance, in device pixels, between a curve
	// and the line segments which replace it. Must be positive.
	Flatness float64

	edges     []edge
	active    []int
	crossings []crossing
	segs      [][2]vec.Vec2

	bboxFirst      bool // no edges added yet
	bbXMin, bbXMax float64
	bbYMin, bbYMax float64
}

// NewOutliner returns an Outliner with the identity transformation and the
// default flatness.
func NewOutliner() *Outliner {
	return &Outliner{
		CTM:      matrix.Identity,
		Flatness: defaultFlatness,
	}
}

// Stroke draws every segment of p as a one pixel wide line.
// Parts of the path outside the surface are clipped.
func (o *Outliner) Stroke(s *Surface, p path.Path, c Color) error {
	if err := s.check(); err != nil {
		return err
	}
	if err := o.checkParams(); err != nil {
		return err
	}

	o.segs = o.segs[:0]
	o.walk(p, false, func(a, b vec.Vec2) {
		o.segs = append(o.segs, [2]vec.Vec2{o.apply(a), o.apply(b)})
	})

	c = s.format.normalize(c)
	plot := func(x, y int) {
		if s.inside(x, y) {
			s.format.put(s.pix[s.offset(x, y):], c)
		}
	}
	for _, seg := range o.segs {
		a, b, ok := clipSegment(seg[0], seg[1], s.w, s.h)
		if !ok {
			continue
		}
		walkLine(pixel(a.X), pixel(a.Y), pixel(b.X), pixel(b.Y), plot)
	}
	return nil
}

// Fill paints the inside of p, as determined by rule.
// Open subpaths are closed implicitly.
func (o *Outliner) Fill(s *Surface, p path.Path, rule FillRule, c Color) error {
	if err := s.check(); err != nil {
		return err
	}
	if err := o.checkParams(); err != nil {
		return err
	}
	if rule != NonZero && rule != EvenOdd {
		return fmt.Errorf("%w: fill rule %d", ErrInvalidArgument, int(rule))
	}

	o.collectEdges(p)
	if len(o.edges) == 0 {
		return nil
	}

	yMin := max(int(math.Floor(o.bbYMin)), 0)
	yMax := min(int(math.Ceil(o.bbYMax)), s.h)
	if yMin >= yMax {
		return nil
	}

	slices.SortFunc(o.edges, func(a, b edge) int {
		return cmp.Compare(a.yMin(), b.yMin())
	})

	c = s.format.normalize(c)
	o.active = o.active[:0]
	next := 0
	for y := yMin; y < yMax; y++ {
		yc := float64(y) + 0.5

		for next < len(o.edges) && o.edges[next].yMin() <= yc {
			o.active = append(o.active, next)
			next++
		}

		o.crossings = o.crossings[:0]
		for i := 0; i < len(o.active); {
			e := &o.edges[o.active[i]]
			if e.yMax() <= yc {
				o.active[i] = o.active[len(o.active)-1]
				o.active = o.active[:len(o.active)-1]
				continue
			}
			w := 1
			if e.y1 < e.y0 {
				w = -1
			}
			o.crossings = append(o.crossings, crossing{
				x:       e.x0 + e.dxdy*(yc-e.y0),
				winding: w,
			})
			i++
		}
		if len(o.crossings) == 0 {
			continue
		}
		slices.SortFunc(o.crossings, func(a, b crossing) int {
			return cmp.Compare(a.x, b.x)
		})

		winding := 0
		for i := 0; i < len(o.crossings)-1; i++ {
			if rule == NonZero {
				winding += o.crossings[i].winding
			} else {
				winding ^= 1
			}
			if winding != 0 {
				o.span(s, y, o.crossings[i].x, o.crossings[i+1].x, c)
			}
		}
	}
	return nil
}

// span paints the pixels in row y whose centres lie in [xa, xb).
func (o *Outliner) span(s *Surface, y int, xa, xb float64, c Color) {
	x0 := max(int(math.Ceil(xa-0.5)), 0)
	x1 := min(int(math.Ceil(xb-0.5)), s.w)
	if x0 >= x1 {
		return
	}
	bpp := s.format.bytesPerPixel()
	pos := s.offset(x0, y)
	for range x1 - x0 {
		s.format.put(s.pix[pos:], c)
		pos += bpp
	}
}

func (o *Outliner) checkParams() error {
	if !(o.Flatness > 0) {
		return fmt.Errorf("%w: flatness %g", ErrInvalidArgument, o.Flatness)
	}
	return nil
}

// walk flattens p and calls emit for every resulting line segment, in
// path coordinates. If closeAll is set, open subpaths are closed.
func (o *Outliner) walk(p path.Path, closeAll bool, emit func(from, to vec.Vec2)) {
	var current, start vec.Vec2
	open := false
	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			if closeAll && open && current != start {
				emit(current, start)
			}
			current = pts[0]
			start = current
			open = true

		case path.CmdLineTo:
			emit(current, pts[0])
			current = pts[0]

		case path.CmdQuadTo:
			o.flattenQuadratic(current, pts[0], pts[1], emit)
			current = pts[1]

		case path.CmdCubeTo:
			o.flattenCubic(current, pts[0], pts[1], pts[2], emit)
			current = pts[2]

		case path.CmdClose:
			if current != start {
				emit(current, start)
			}
			current = start
			open = false
		}
	}
	if closeAll && open && current != start {
		emit(current, start)
	}
}

// collectEdges flattens p into o.edges and records their bounding box.
func (o *Outliner) collectEdges(p path.Path) {
	o.edges = o.edges[:0]
	o.bboxFirst = true
	o.walk(p, true, o.addEdge)
}

// addEdge adds the edge from p0 to p1, given in path coordinates.
func (o *Outliner) addEdge(p0, p1 vec.Vec2) {
	d0 := o.apply(p0)
	d1 := o.apply(p1)

	dy := d1.Y - d0.Y
	if dy > -horizontalEdgeThreshold && dy < horizontalEdgeThreshold {
		return
	}

	o.edges = append(o.edges, edge{
		x0: d0.X, y0: d0.Y,
		x1: d1.X, y1: d1.Y,
		dxdy: (d1.X - d0.X) / dy,
	})

	if o.bboxFirst {
		o.bbXMin, o.bbXMax = min(d0.X, d1.X), max(d0.X, d1.X)
		o.bbYMin, o.bbYMax = min(d0.Y, d1.Y), max(d0.Y, d1.Y)
		o.bboxFirst = false
	} else {
		o.bbXMin = min(o.bbXMin, d0.X, d1.X)
		o.bbXMax = max(o.bbXMax, d0.X, d1.X)
		o.bbYMin = min(o.bbYMin, d0.Y, d1.Y)
		o.bbYMax = max(o.bbYMax, d0.Y, d1.Y)
	}
}

// apply maps a point from path coordinates to device coordinates.
func (o *Outliner) apply(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: o.CTM[0]*v.X + o.CTM[2]*v.Y + o.CTM[4],
		Y: o.CTM[1]*v.X + o.CTM[3]*v.Y + o.CTM[5],
	}
}

// transformLinear applies only the linear part of the CTM to v.
func (o *Outliner) transformLinear(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: o.CTM[0]*v.X + o.CTM[2]*v.Y,
		Y: o.CTM[1]*v.X + o.CTM[3]*v.Y,
	}
}

// flattenQuadratic splits the quadratic Bézier curve p0, p1, p2 into line
// segments, so that no segment is further than Flatness device pixels
// from the curve.
func (o *Outliner) flattenQuadratic(p0, p1, p2 vec.Vec2, emit func(from, to vec.Vec2)) {
	// maximal deviation: |P0 - 2P1 + P2| / 4
	dev := o.transformLinear(p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25)).Length()
	n := 1
	if dev > o.Flatness {
		n = int(math.Ceil(math.Sqrt(dev / o.Flatness)))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		u := 1 - t
		pt := p0.Mul(u * u).Add(p1.Mul(2 * u * t)).Add(p2.Mul(t * t))
		emit(prev, pt)
		prev = pt
	}
}

// flattenCubic splits the cubic Bézier curve p0, ..., p3 into line
// segments. The number of segments is given by Wang's formula.
func (o *Outliner) flattenCubic(p0, p1, p2, p3 vec.Vec2, emit func(from, to vec.Vec2)) {
	d1 := o.transformLinear(p0.Sub(p1.Mul(2)).Add(p2))
	d2 := o.transformLinear(p1.Sub(p2.Mul(2)).Add(p3))
	m := max(d1.Length(), d2.Length())
	n := 1
	if m > 0 {
		if nf := math.Sqrt(3 * m / (4 * o.Flatness)); nf > 1 {
			n = int(math.Ceil(nf))
		}
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		u := 1 - t
		pt := p0.Mul(u * u * u).
			Add(p1.Mul(3 * u * u * t)).
			Add(p2.Mul(3 * u * t * t)).
			Add(p3.Mul(t * t * t))
		emit(prev, pt)
		prev = pt
	}
}

// clipSegment clips the segment from a to b to the rectangle covering all
// pixels of a w×h image, using the Liang-Barsky algorithm.
func clipSegment(a, b vec.Vec2, w, h int) (vec.Vec2, vec.Vec2, bool) {
	d := b.Sub(a)
	t0, t1 := 0.0, 1.0

	// the pixel (i, j) covers [i, i+1)×[j, j+1)
	lims := [4]struct{ p, q float64 }{
		{-d.X, a.X},
		{d.X, float64(w) - clipMargin - a.X},
		{-d.Y, a.Y},
		{d.Y, float64(h) - clipMargin - a.Y},
	}
	for _, l := range lims {
		if l.p == 0 {
			if l.q < 0 {
				return a, b, false
			}
			continue
		}
		t := l.q / l.p
		if l.p < 0 {
			t0 = max(t0, t)
		} else {
			t1 = min(t1, t)
		}
		if t0 > t1 {
			return a, b, false
		}
	}
	return a.Add(d.Mul(t0)), a.Add(d.Mul(t1)), true
}

// pixel returns the index of the pixel containing device coordinate v.
func pixel(v float64) int {
	return int(math.Floor(v))
}

const (
	// defaultFlatness is the default curve flattening tolerance in device
	// pixels.
	defaultFlatness = 0.25

	// horizontalEdgeThreshold is the minimal vertical extent of an edge
	// which takes part in filling.
	horizontalEdgeThreshold = 1e-10

	// clipMargin keeps clipped end points strictly inside the last
	// pixel column and row.
	clipMargin = 1e-9
)
