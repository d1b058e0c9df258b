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

// Package scene describes images as a list of drawing operations.
//
// Scenes can be written in YAML:
//
//	name: example
//	width: 64
//	height: -64
//	background: "#606060"
//	ops:
//	  - op: circle
//	    x: 32
//	    y: 32
//	    radius: 20
//	    color: "#ffffff"
//	  - op: flood
//	    x: 32
//	    y: 32
//	    boundary: "#ffffff"
//	    color: 0x800000
//
// Colours are given as "#rrggbb" (quoted, since # starts a YAML comment),
// as 0xrrggbb or as decimal integers.
package scene

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"seehuhn.de/go/dib"
)

// ErrInvalidScene is returned when a scene description cannot be used.
var ErrInvalidScene = errors.New("scene: invalid scene")

// Scene is an image described by its size and a list of operations.
type Scene struct {
	Name       string `yaml:"name"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"` // negative for top-down row order
	BPP        int    `yaml:"bpp,omitempty"`
	Background Color  `yaml:"background"`
	Ops        []Op   `yaml:"ops"`
}

// Operation names, as used in the "op" field.
const (
	OpFill      = "fill"
	OpPixel     = "pixel"
	OpLine      = "line"
	OpRect      = "rect"
	OpFillRect  = "fill_rect"
	OpArc       = "arc"
	OpCircle    = "circle"
	OpFlood     = "flood"
	OpText      = "text"
	OpPath      = "path"
	OpBarGraph  = "bar_graph"
	OpLineGraph = "line_graph"
)

// Op is a single drawing operation. Which fields are used depends on Kind.
//
//	fill                     color
//	pixel                    x, y, color
//	line, rect, fill_rect    x, y, x2, y2, color
//	arc                      x, y, radius, start, end, color
//	circle                   x, y, radius, color
//	flood                    x, y, boundary, color
//	text                     x, y, text, font, invert, color
//	path                     path, rule, transform, color
//	bar_graph, line_graph    x, y, x2, y2, data, font, color, fill
//
// A path without a fill rule is stroked.
type Op struct {
	Kind      string    `yaml:"op"`
	X         int       `yaml:"x,omitempty"`
	Y         int       `yaml:"y,omitempty"`
	X2        int       `yaml:"x2,omitempty"`
	Y2        int       `yaml:"y2,omitempty"`
	Radius    int       `yaml:"radius,omitempty"`
	Start     float64   `yaml:"start,omitempty"`
	End       float64   `yaml:"end,omitempty"`
	Color     Color     `yaml:"color,omitempty"`
	Boundary  Color     `yaml:"boundary,omitempty"`
	Fill      Color     `yaml:"fill,omitempty"`
	Text      string    `yaml:"text,omitempty"`
	Font      string    `yaml:"font,omitempty"`
	Invert    bool      `yaml:"invert,omitempty"`
	Path      string    `yaml:"path,omitempty"`
	Rule      string    `yaml:"rule,omitempty"`
	Transform []float64 `yaml:"transform,omitempty"`
	Data      []float64 `yaml:"data,omitempty"`
}

// Color is a [dib.Color] which reads and writes itself as "#rrggbb" in
// YAML files.
type Color dib.Color

// UnmarshalYAML implements the [yaml.Unmarshaler] interface.
func (c *Color) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: colour must be a scalar", node.Line)
	}
	v, err := dib.ParseColor(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*c = Color(v)
	return nil
}

// MarshalYAML implements the [yaml.Marshaler] interface.
func (c Color) MarshalYAML() (any, error) {
	return dib.Color(c).String(), nil
}

// Parse decodes a scene from YAML and checks it for errors.
// Unknown fields are rejected.
func Parse(data []byte) (*Scene, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	sc := &Scene{}
	if err := dec.Decode(sc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidScene)
		}
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return sc, nil
}

// LoadFile reads a scene from a YAML file.
func LoadFile(name string) (*Scene, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene %s: %w", name, err)
	}
	sc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse scene %s: %w", name, err)
	}
	return sc, nil
}

// Marshal encodes the scene as YAML.
func (sc *Scene) Marshal() ([]byte, error) {
	buf := &bytes.Buffer{}
	enc := yaml.NewEncoder(buf)
	enc.SetIndent(2)
	if err := enc.Encode(sc); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Validate checks the scene without drawing anything.
func (sc *Scene) Validate() error {
	if sc.Width == 0 || sc.Height == 0 {
		return fmt.Errorf("%w: size %dx%d", ErrInvalidScene, sc.Width, sc.Height)
	}
	if sc.BPP != 0 && sc.BPP != 24 && sc.BPP != 32 {
		return fmt.Errorf("%w: %d bits per pixel", ErrInvalidScene, sc.BPP)
	}
	for i := range sc.Ops {
		if err := sc.Ops[i].validate(); err != nil {
			return fmt.Errorf("%w: op %d (%s): %w", ErrInvalidScene, i, sc.Ops[i].Kind, err)
		}
	}
	return nil
}

func (op *Op) validate() error {
	switch op.Kind {
	case OpFill, OpPixel, OpLine, OpRect, OpFillRect, OpArc, OpCircle, OpFlood:
		return nil
	case OpText:
		_, err := fontSource(op.Font)
		return err
	case OpPath:
		if _, err := parsePath(op.Path); err != nil {
			return err
		}
		if _, _, err := fillRule(op.Rule); err != nil {
			return err
		}
		if len(op.Transform) != 0 && len(op.Transform) != 6 {
			return fmt.Errorf("transform needs 6 numbers, got %d", len(op.Transform))
		}
		return nil
	case OpBarGraph, OpLineGraph:
		if len(op.Data) == 0 {
			return errors.New("no data")
		}
		_, err := fontSource(op.Font)
		return err
	case "":
		return errors.New("missing op field")
	default:
		return fmt.Errorf("unknown operation %q", op.Kind)
	}
}
