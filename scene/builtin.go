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
	"fmt"
	"math"
	"strings"
)

// All contains the built-in scenes, grouped by category.
// The category name is used as a prefix in exported file names.
var All = map[string][]*Scene{
	"demo":       {Demo()},
	"fill":       fillScenes,
	"stroke":     strokeScenes,
	"curve":      curveScenes,
	"primitives": primitiveScenes,
	"flood":      floodScenes,
	"text":       textScenes,
	"chart":      chartScenes,
}

// Demo returns the classic demonstration image: a caption, a row of
// crossed lines, two overlapping rectangles, a grid of dots, a circle and
// a bar graph, on a 640x480 top-down canvas.
func Demo() *Scene {
	const (
		white  = 0xffffff
		black  = 0x000000
		green  = 0x00ff00
		blue   = 0x0000ff
		dark   = 0x800000
		yellow = 0xffff00
	)
	sc := &Scene{
		Name:       "ezdib",
		Width:      640,
		Height:     -480,
		BPP:        24,
		Background: 0x606060,
	}
	sc.Ops = append(sc.Ops, Op{
		Kind: OpText, X: 10, Y: 10, Text: "--- EZDIB Test ---",
		Font: "medium", Color: white,
	})
	for x := 100; x < 400; x += 10 {
		sc.Ops = append(sc.Ops,
			Op{Kind: OpLine, X: x, Y: 100, X2: x + 10, Y2: 50, Color: green},
			Op{Kind: OpLine, X: x + 10, Y: 100, X2: x, Y2: 50, Color: blue},
		)
	}
	sc.Ops = append(sc.Ops,
		Op{Kind: OpFillRect, X: 200, Y: 150, X2: 400, Y2: 250, Color: dark},
		Op{Kind: OpFillRect, X: 300, Y: 200, X2: 350, Y2: 280, Color: yellow},
	)
	for y := 150; y < 250; y += 4 {
		for x := 50; x < 150; x += 4 {
			sc.Ops = append(sc.Ops, Op{Kind: OpPixel, X: x, Y: y, Color: white})
		}
	}
	sc.Ops = append(sc.Ops,
		Op{Kind: OpRect, X: 35, Y: 295, X2: 605, Y2: 445, Color: black},
		Op{Kind: OpCircle, X: 525, Y: 150, Radius: 80, Color: black},
		Op{
			Kind: OpBarGraph, X: 40, Y: 300, X2: 600, Y2: 440,
			Data:  []float64{11, 54, 23, 87, 34, 54, 75, 44},
			Color: 0x202020, Fill: 0x400000,
		},
	)
	return sc
}

// small returns a 64x64 top-down scene with a white background.
func small(name string, ops ...Op) *Scene {
	return &Scene{
		Name:       name,
		Width:      64,
		Height:     -64,
		Background: 0xffffff,
		Ops:        ops,
	}
}

var fillScenes = []*Scene{
	small("triangle_nonzero", fillPath(triangle(10, 50, 32, 10, 54, 50), "nonzero")),
	small("triangle_evenodd", fillPath(triangle(10, 50, 32, 10, 54, 50), "evenodd")),
	small("star_nonzero", fillPath(fivePointStar(32, 32, 25), "nonzero")),
	small("star_evenodd", fillPath(fivePointStar(32, 32, 25), "evenodd")),
	small("rectangle", fillPath(rectangle(10, 10, 44, 44), "nonzero")),
	small("triangle_scaled", Op{
		Kind:      OpPath,
		Path:      triangle(0, 1, 0.5, 0, 1, 1),
		Rule:      "nonzero",
		Transform: []float64{44, 0, 0, 40, 10, 10},
	}),
}

var strokeScenes = []*Scene{
	small("polyline", strokePath("M 5 55 L 20 10 L 35 50 L 50 8 L 60 40")),
	small("star", strokePath(fivePointStar(32, 32, 25))),
	small("clipped", strokePath("M -20 -10 L 90 70 M 32 -30 L 32 100")),
}

var curveScenes = []*Scene{
	small("quadratic", fillPath("M 10 50 Q 32 10 54 50 Z", "nonzero")),
	small("cubic", fillPath("M 10 50 C 20 10 44 10 54 50 Z", "nonzero")),
	small("circle", fillPath(circle(32, 32, 25), "nonzero")),
	small("ring", fillPath(circle(32, 32, 25)+" "+circle(32, 32, 12), "evenodd")),
	small("cubic_stroke", strokePath("M 5 32 C 20 -10 44 74 59 32")),
}

var primitiveScenes = []*Scene{
	small("lines",
		Op{Kind: OpLine, X: 0, Y: 0, X2: 63, Y2: 63},
		Op{Kind: OpLine, X: 63, Y: 0, X2: 0, Y2: 63},
		Op{Kind: OpLine, X: 32, Y: 0, X2: 40, Y2: 63},
		Op{Kind: OpLine, X: 0, Y: 20, X2: 63, Y2: 24},
	),
	small("rects",
		Op{Kind: OpFillRect, X: 8, Y: 8, X2: 40, Y2: 30, Color: 0x0000ff},
		Op{Kind: OpRect, X: 20, Y: 20, X2: 56, Y2: 56},
		Op{Kind: OpFillRect, X: -10, Y: 50, X2: 10, Y2: 100, Color: 0xff0000},
	),
	small("arcs",
		Op{Kind: OpArc, X: 32, Y: 32, Radius: 28, Start: 0, End: math.Pi / 2},
		Op{Kind: OpArc, X: 32, Y: 32, Radius: 20, Start: math.Pi, End: 2 * math.Pi, Color: 0xff0000},
		Op{Kind: OpCircle, X: 32, Y: 32, Radius: 10, Color: 0x0000ff},
		Op{Kind: OpCircle, X: 0, Y: 0, Radius: 15},
	),
}

var floodScenes = []*Scene{
	{
		Name: "circle", Width: 64, Height: -64,
		Ops: []Op{
			{Kind: OpCircle, X: 32, Y: 32, Radius: 20, Color: 0xffffff},
			{Kind: OpFlood, X: 32, Y: 32, Boundary: 0xffffff, Color: 0x800000},
		},
	},
	{
		Name: "outside", Width: 64, Height: 64, BPP: 32,
		Ops: []Op{
			{Kind: OpRect, X: 10, Y: 10, X2: 50, Y2: 40, Color: 0x00ff00},
			{Kind: OpFlood, X: 0, Y: 0, Boundary: 0x00ff00, Color: 0x0000ff},
		},
	},
	{
		Name: "lines", Width: 64, Height: -64, Background: 0x606060,
		Ops: []Op{
			{Kind: OpLine, X: 0, Y: 10, X2: 63, Y2: 50},
			{Kind: OpLine, X: 10, Y: 63, X2: 50, Y2: 0},
			{Kind: OpFlood, X: 5, Y: 40, Color: 0xffff00},
		},
	},
}

var textScenes = []*Scene{
	{
		Name: "fonts", Width: 160, Height: -48, Background: 0x202020,
		Ops: []Op{
			{Kind: OpText, X: 4, Y: 4, Text: "SMALL 0123", Font: "small", Color: 0xffffff},
			{Kind: OpText, X: 4, Y: 16, Text: "Medium Text!", Color: 0xffff00},
			{Kind: OpText, X: 4, Y: 30, Text: "A\nBC", Font: "small", Color: 0x00ff00},
		},
	},
	{
		Name: "bottom_up", Width: 160, Height: 48, Background: 0x202020,
		Ops: []Op{
			{Kind: OpText, X: 4, Y: 36, Text: "upright", Color: 0xffffff},
			{Kind: OpText, X: 80, Y: 4, Text: "inverted", Invert: true, Color: 0xff8080},
		},
	},
}

var chartScenes = []*Scene{
	{
		Name: "bars", Width: 320, Height: -240, Background: 0xe0e0e0,
		Ops: []Op{{
			Kind: OpBarGraph, X: 10, Y: 20, X2: 310, Y2: 220,
			Data:  []float64{3, 1, 4, 1, 5},
			Color: 0x202020, Fill: 0x4060c0,
		}},
	},
	{
		Name: "line", Width: 320, Height: -240, Background: 0xe0e0e0,
		Ops: []Op{{
			Kind: OpLineGraph, X: 10, Y: 20, X2: 310, Y2: 220,
			Data:  []float64{-2.5, 0, 7, 3.25, 4, 11, 6},
			Color: 0x202020, Fill: 0xc04020,
		}},
	},
}

func fillPath(p, rule string) Op {
	return Op{Kind: OpPath, Path: p, Rule: rule}
}

func strokePath(p string) Op {
	return Op{Kind: OpPath, Path: p}
}

// triangle returns a closed triangular path.
func triangle(x1, y1, x2, y2, x3, y3 float64) string {
	return fmt.Sprintf("M %g %g L %g %g L %g %g Z", x1, y1, x2, y2, x3, y3)
}

// rectangle returns a closed rectangular path.
func rectangle(x1, y1, x2, y2 float64) string {
	return fmt.Sprintf("M %g %g L %g %g L %g %g L %g %g Z",
		x1, y1, x2, y1, x2, y2, x1, y2)
}

// fivePointStar returns a self-intersecting five-pointed star, which
// connects every second point of a regular pentagon.
func fivePointStar(cx, cy, r float64) string {
	var pts [5][2]float64
	for i := range pts {
		angle := float64(i)*2*math.Pi/5 - math.Pi/2
		pts[i] = [2]float64{cx + r*math.Cos(angle), cy + r*math.Sin(angle)}
	}
	b := &strings.Builder{}
	for k, i := range []int{0, 2, 4, 1, 3} {
		cmd := "L"
		if k == 0 {
			cmd = "M"
		}
		fmt.Fprintf(b, "%s %.4f %.4f ", cmd, pts[i][0], pts[i][1])
	}
	b.WriteString("Z")
	return b.String()
}

// kappa places the control points of a cubic Bézier approximation of a
// quarter circle.
const kappa = 0.5522847498307936

// circle returns a closed circle made of four cubic segments.
func circle(cx, cy, r float64) string {
	k := kappa * r
	return fmt.Sprintf("M %g %g "+
		"C %g %g %g %g %g %g "+
		"C %g %g %g %g %g %g "+
		"C %g %g %g %g %g %g "+
		"C %g %g %g %g %g %g Z",
		cx+r, cy,
		cx+r, cy+k, cx+k, cy+r, cx, cy+r,
		cx-k, cy+r, cx-r, cy+k, cx-r, cy,
		cx-r, cy-k, cx-k, cy-r, cx, cy-r,
		cx+k, cy-r, cx+r, cy-k, cx+r, cy)
}
