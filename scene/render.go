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

package scene

import (
	"errors"
	"fmt"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/dib"
	"seehuhn.de/go/dib/chart"
	"seehuhn.de/go/dib/font"
	"seehuhn.de/go/dib/scale"
)

// fontSource maps the "font" field of an operation. The empty string
// selects the medium font.
func fontSource(name string) (font.Source, error) {
	if name == "" {
		return font.Medium, nil
	}
	return font.ByName(name)
}

// Render draws the scene onto a new surface.
//
// Drawing stops at the first operation which fails. Operations which only
// partly fit onto the surface are clipped where the underlying drawing
// primitive clips, and fail where it fails.
func (sc *Scene) Render() (*dib.Surface, error) {
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	bpp := sc.BPP
	if bpp == 0 {
		bpp = 24
	}
	s, err := dib.New(sc.Width, sc.Height, bpp)
	if err != nil {
		return nil, err
	}
	if err := s.Fill(dib.Color(sc.Background)); err != nil {
		return nil, err
	}

	r := &renderer{s: s, fonts: map[string]*font.Font{}}
	for i := range sc.Ops {
		op := &sc.Ops[i]
		if err := r.draw(op); err != nil {
			s.Release()
			return nil, fmt.Errorf("scene %q: op %d (%s): %w", sc.Name, i, op.Kind, err)
		}
	}
	dib.Logger().Debug("scene rendered", "name", sc.Name, "ops", len(sc.Ops))
	return s, nil
}

type renderer struct {
	s     *dib.Surface
	fonts map[string]*font.Font
	out   *dib.Outliner
}

func (r *renderer) font(name string, flags font.Flags) (*font.Font, error) {
	key := fmt.Sprintf("%s/%d", name, flags)
	if f, ok := r.fonts[key]; ok {
		return f, nil
	}
	src, err := fontSource(name)
	if err != nil {
		return nil, err
	}
	f, err := font.Load(src, flags)
	if err != nil {
		return nil, err
	}
	r.fonts[key] = f
	return f, nil
}

func (r *renderer) draw(op *Op) error {
	s := r.s
	c := dib.Color(op.Color)
	switch op.Kind {
	case OpFill:
		return s.Fill(c)
	case OpPixel:
		return s.SetPixel(op.X, op.Y, c)
	case OpLine:
		return s.Line(op.X, op.Y, op.X2, op.Y2, c)
	case OpRect:
		return s.Rect(op.X, op.Y, op.X2, op.Y2, c)
	case OpFillRect:
		return s.FillRect(op.X, op.Y, op.X2, op.Y2, c)
	case OpArc:
		return s.Arc(op.X, op.Y, op.Radius, op.Start, op.End, c)
	case OpCircle:
		return s.Circle(op.X, op.Y, op.Radius, c)
	case OpFlood:
		return s.FloodFill(op.X, op.Y, dib.Color(op.Boundary), c)
	case OpText:
		var flags font.Flags
		if op.Invert {
			flags |= font.Invert
		}
		f, err := r.font(op.Font, flags)
		if err != nil {
			return err
		}
		return f.Draw(s, op.Text, op.X, op.Y, c)
	case OpPath:
		return r.path(op)
	case OpBarGraph, OpLineGraph:
		f, err := r.font(op.Font, 0)
		if err != nil {
			return err
		}
		area := rect.Rect{
			LLx: float64(op.X),
			LLy: float64(op.Y),
			URx: float64(op.X2),
			URy: float64(op.Y2),
		}
		colors := chart.Colors{Axis: c, Data: dib.Color(op.Fill)}
		data := scale.Float64s(op.Data)
		if op.Kind == OpBarGraph {
			return chart.BarGraph(s, f, area, data, colors)
		}
		return chart.LineGraph(s, f, area, data, colors)
	}
	return errors.New("unknown operation")
}

func (r *renderer) path(op *Op) error {
	p, err := parsePath(op.Path)
	if err != nil {
		return err
	}
	rule, fill, err := fillRule(op.Rule)
	if err != nil {
		return err
	}

	if r.out == nil {
		r.out = dib.NewOutliner()
	}
	r.out.CTM = matrix.Identity
	if len(op.Transform) == 6 {
		copy(r.out.CTM[:], op.Transform)
	}

	c := dib.Color(op.Color)
	if fill {
		return r.out.Fill(r.s, p.Iter(), rule, c)
	}
	return r.out.Stroke(r.s, p.Iter(), c)
}
