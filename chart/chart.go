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

// Package chart draws simple bar and line graphs onto a [dib.Surface].
//
// The plot area is given as a [rect.Rect] in surface coordinates: LLx and
// URx are the left and right columns, LLy is the row of the top of the
// graph and URy is the row of the horizontal axis. On a top-down surface
// this is the usual screen layout.
package chart

import (
	"fmt"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/dib"
	"seehuhn.de/go/dib/font"
	"seehuhn.de/go/dib/scale"
)

// Colors selects the colours of a graph.
type Colors struct {
	Axis dib.Color // axes, labels and bar outlines
	Data dib.Color // bar interiors and the line of a line graph
}

// labelPad is the space between the value labels and the vertical axis.
const labelPad = 10

// frame is the part of a graph shared by all graph types: the value range,
// the labels and the axes.
type frame struct {
	x1, y1, x2, y2 int
	axisX          int // column of the vertical axis
	valueMap       scale.Map
}

func setup(s *dib.Surface, f *font.Font, area rect.Rect, data scale.Array, c Colors) (*frame, error) {
	if f == nil {
		return nil, font.ErrInvalidFont
	}
	if data == nil || data.Len() == 0 {
		return nil, fmt.Errorf("%w: no data", dib.ErrInvalidArgument)
	}
	fr := &frame{
		x1: int(area.LLx),
		y1: int(area.LLy),
		x2: int(area.URx),
		y2: int(area.URy),
	}
	if fr.x2 <= fr.x1 || fr.y2 <= fr.y1 {
		dib.Logger().Debug("chart: empty plot area", "area", area)
		return nil, fmt.Errorf("%w: plot area %v", dib.ErrInvalidArgument, area)
	}

	lo, hi, _, _ := scale.Range(data)

	// leave 10% of the value range free above and below the data
	rLo := lo - (hi-lo)/10
	rHi := hi + (hi-lo)/10
	if rHi == rLo {
		rLo, rHi = lo-1, hi+1
	}
	fr.valueMap = scale.Map{
		SrcOrigin: rLo,
		SrcRange:  rHi - rLo,
		DstOrigin: 0,
		DstRange:  float64(fr.y2 - fr.y1 - 2),
	}

	minLabel := fmt.Sprintf("%.2f", lo)
	wMin, h := f.Measure(minLabel)
	if err := f.Draw(s, minLabel, fr.x1, fr.y2-2*h, c.Axis); err != nil {
		return nil, err
	}
	maxLabel := fmt.Sprintf("%.2f", hi)
	wMax, h := f.Measure(maxLabel)
	if err := f.Draw(s, maxLabel, fr.x1, fr.y1+h, c.Axis); err != nil {
		return nil, err
	}

	fr.axisX = fr.x1 + max(wMin, wMax) + labelPad
	if fr.axisX >= fr.x2 {
		return nil, fmt.Errorf("%w: plot area %v too narrow for the labels",
			dib.ErrInvalidArgument, area)
	}
	if err := s.Line(fr.axisX, fr.y1, fr.axisX, fr.y2, c.Axis); err != nil {
		return nil, err
	}
	if err := s.Line(fr.axisX, fr.y2, fr.x2, fr.y2, c.Axis); err != nil {
		return nil, err
	}
	return fr, nil
}

// height returns the height of the bar or point for data element i,
// measured upwards from the baseline.
func (fr *frame) height(data scale.Array, i int) int {
	return int(fr.valueMap.Apply(data, i))
}

// BarGraph draws one bar per element of data, with labels for the
// smallest and largest value.
func BarGraph(s *dib.Surface, f *font.Font, area rect.Rect, data scale.Array, c Colors) error {
	fr, err := setup(s, f, area, data, c)
	if err != nil {
		return err
	}

	n := data.Len()
	bw := (fr.x2-fr.axisX)/n - 2*n
	if bw < 1 {
		return fmt.Errorf("%w: %d bars do not fit into %d pixels",
			dib.ErrInvalidArgument, n, fr.x2-fr.axisX)
	}

	base := fr.y2 - 2
	for i := range n {
		left := fr.axisX + (bw+2)*i
		top := base - fr.height(data, i)
		if err := s.FillRect(left, top, left+bw, base, c.Data); err != nil {
			return err
		}
		if err := s.Rect(left, top, left+bw, base, c.Axis); err != nil {
			return err
		}
	}
	return nil
}

// LineGraph draws a polyline through the elements of data, spaced evenly
// across the plot area, with labels for the smallest and largest value.
func LineGraph(s *dib.Surface, f *font.Font, area rect.Rect, data scale.Array, c Colors) error {
	fr, err := setup(s, f, area, data, c)
	if err != nil {
		return err
	}

	n := data.Len()
	base := float64(fr.y2 - 2)
	step := 0.0
	if n > 1 {
		step = float64(fr.x2-fr.axisX-2) / float64(n-1)
	}

	p := &path.Data{}
	for i := range n {
		pt := vec.Vec2{
			X: float64(fr.axisX+1) + step*float64(i) + 0.5,
			Y: base - float64(fr.height(data, i)) + 0.5,
		}
		if i == 0 {
			p = p.MoveTo(pt)
		} else {
			p = p.LineTo(pt)
		}
		if err := s.Circle(int(pt.X), int(pt.Y), 2, c.Data); err != nil {
			return err
		}
	}
	return dib.NewOutliner().Stroke(s, p.Iter(), c.Data)
}
