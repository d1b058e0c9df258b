// Package dib implements an in-memory device independent bitmap together
// with simple aliased drawing primitives.
//
// A [Surface] holds the pixels of a 24-bit or 32-bit image in exactly the
// layout used by uncompressed Windows bitmap files: rows are padded to a
// multiple of four bytes and the sign of the height selects the row order.
// All drawing operations address pixels by their memory row; for bottom-up
// surfaces (positive height) row 0 is the lowest row of the displayed image.
//
// Drawing operations report failures through their error return and never
// panic on bad coordinates. Diagnostic details are sent to the logger
// installed with [SetLogger], which is silent by default.
//
// A Surface is not safe for concurrent use.
package dib
