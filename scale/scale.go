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

// Package scale maps numeric data onto pixel coordinates.
//
// Data is passed as an [Array], which wraps a slice of one of the Go
// numeric types. For example, Float64s{1, 2.5, 4} or Uint8s(buf).
package scale

import "fmt"

// Kind identifies the element type of an [Array].
type Kind uint8

// These are the supported element types.
const (
	Int8 Kind = iota + 1
	Uint8
	Int16
	Uint16
	Int32
	Uint32
	Int64
	Uint64
	Float32
	Float64
)

var kindNames = [...]string{
	Int8:    "int8",
	Uint8:   "uint8",
	Int16:   "int16",
	Uint16:  "uint16",
	Int32:   "int32",
	Uint32:  "uint32",
	Int64:   "int64",
	Uint64:  "uint64",
	Float32: "float32",
	Float64: "float64",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Array is a slice of numbers of one of the supported kinds.
// The implementations are the slice types declared in this package.
type Array interface {
	Kind() Kind
	Len() int

	// At returns element i as a float64. It panics if i is out of range.
	At(i int) float64

	isArray()
}

// Slice types implementing [Array].
type (
	Int8s    []int8
	Uint8s   []uint8
	Int16s   []int16
	Uint16s  []uint16
	Int32s   []int32
	Uint32s  []uint32
	Int64s   []int64
	Uint64s  []uint64
	Float32s []float32
	Float64s []float64
)

func (a Int8s) Kind() Kind         { return Int8 }
func (a Int8s) Len() int           { return len(a) }
func (a Int8s) At(i int) float64   { return float64(a[i]) }
func (Int8s) isArray()             {}
func (a Uint8s) Kind() Kind        { return Uint8 }
func (a Uint8s) Len() int          { return len(a) }
func (a Uint8s) At(i int) float64  { return float64(a[i]) }
func (Uint8s) isArray()            {}
func (a Int16s) Kind() Kind        { return Int16 }
func (a Int16s) Len() int          { return len(a) }
func (a Int16s) At(i int) float64  { return float64(a[i]) }
func (Int16s) isArray()            {}
func (a Uint16s) Kind() Kind       { return Uint16 }
func (a Uint16s) Len() int         { return len(a) }
func (a Uint16s) At(i int) float64 { return float64(a[i]) }
func (Uint16s) isArray()           {}
func (a Int32s) Kind() Kind        { return Int32 }
func (a Int32s) Len() int          { return len(a) }
func (a Int32s) At(i int) float64  { return float64(a[i]) }
func (Int32s) isArray()            {}
func (a Uint32s) Kind() Kind       { return Uint32 }
func (a Uint32s) Len() int         { return len(a) }
func (a Uint32s) At(i int) float64 { return float64(a[i]) }
func (Uint32s) isArray()           {}
func (a Int64s) Kind() Kind        { return Int64 }
func (a Int64s) Len() int          { return len(a) }
func (a Int64s) At(i int) float64  { return float64(a[i]) }
func (Int64s) isArray()            {}
func (a Uint64s) Kind() Kind       { return Uint64 }
func (a Uint64s) Len() int         { return len(a) }
func (a Uint64s) At(i int) float64 { return float64(a[i]) }
func (Uint64s) isArray()           {}

func (a Float32s) Kind() Kind       { return Float32 }
func (a Float32s) Len() int         { return len(a) }
func (a Float32s) At(i int) float64 { return float64(a[i]) }
func (Float32s) isArray()           {}
func (a Float64s) Kind() Kind       { return Float64 }
func (a Float64s) Len() int         { return len(a) }
func (a Float64s) At(i int) float64 { return a[i] }
func (Float64s) isArray()           {}

// Value maps element i of a from the source interval to the destination
// interval:
//
//	dstOrigin + (a[i] - srcOrigin) * dstRange / srcRange
//
// A zero srcRange gives an infinite or NaN result.
// Value panics if i is out of range.
func Value(a Array, i int, srcOrigin, srcRange, dstOrigin, dstRange float64) float64 {
	return dstOrigin + (a.At(i)-srcOrigin)*dstRange/srcRange
}

// Range returns the smallest and the largest element of a, and the sum of
// all elements, in a single pass. The result ok is false if a is nil or
// empty.
//
// NaN elements after the first are ignored for lo and hi, but still
// make total NaN.
func Range(a Array) (lo, hi, total float64, ok bool) {
	if a == nil || a.Len() == 0 {
		return 0, 0, 0, false
	}
	lo = a.At(0)
	hi = lo
	total = lo
	for i := 1; i < a.Len(); i++ {
		v := a.At(i)
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
		total += v
	}
	return lo, hi, total, true
}

// Map describes a linear map from a data interval onto a pixel interval.
type Map struct {
	SrcOrigin, SrcRange float64
	DstOrigin, DstRange float64
}

// Apply maps element i of a, see [Value].
func (m Map) Apply(a Array, i int) float64 {
	return Value(a, i, m.SrcOrigin, m.SrcRange, m.DstOrigin, m.DstRange)
}
