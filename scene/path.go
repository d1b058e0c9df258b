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
	"strconv"
	"strings"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/dib"
)

// parsePath reads a path in a small subset of the SVG path syntax: the
// absolute commands M, L, Q, C and Z, separated by white space or commas.
// Coordinates must follow their command letter explicitly.
func parsePath(s string) (*path.Data, error) {
	tokens := strings.Fields(strings.ReplaceAll(s, ",", " "))
	if len(tokens) == 0 {
		return nil, errors.New("empty path")
	}

	p := &path.Data{}
	open := false
	for i := 0; i < len(tokens); {
		cmd := tokens[i]
		i++

		var n int
		switch cmd {
		case "M", "L":
			n = 1
		case "Q":
			n = 2
		case "C":
			n = 3
		case "Z", "z":
			if !open {
				return nil, errors.New("Z without current point")
			}
			p = p.Close()
			continue
		default:
			return nil, fmt.Errorf("unknown path command %q", cmd)
		}
		if cmd != "M" && !open {
			return nil, fmt.Errorf("%s without current point", cmd)
		}
		if i+2*n > len(tokens) {
			return nil, fmt.Errorf("%s needs %d coordinates", cmd, 2*n)
		}

		pts := make([]vec.Vec2, n)
		for k := range pts {
			x, err := strconv.ParseFloat(tokens[i], 64)
			if err != nil {
				return nil, fmt.Errorf("bad coordinate %q", tokens[i])
			}
			y, err := strconv.ParseFloat(tokens[i+1], 64)
			if err != nil {
				return nil, fmt.Errorf("bad coordinate %q", tokens[i+1])
			}
			pts[k] = vec.Vec2{X: x, Y: y}
			i += 2
		}

		switch cmd {
		case "M":
			p = p.MoveTo(pts[0])
			open = true
		case "L":
			p = p.LineTo(pts[0])
		case "Q":
			p = p.QuadTo(pts[0], pts[1])
		case "C":
			p = p.CubeTo(pts[0], pts[1], pts[2])
		}
	}
	return p, nil
}

// fillRule maps the "rule" field of a path operation. The empty string
// means that the path is stroked, and ok is false in this case.
func fillRule(name string) (rule dib.FillRule, ok bool, err error) {
	switch strings.ToLower(name) {
	case "":
		return 0, false, nil
	case "nonzero":
		return dib.NonZero, true, nil
	case "evenodd":
		return dib.EvenOdd, true, nil
	}
	return 0, false, fmt.Errorf("unknown fill rule %q", name)
}
