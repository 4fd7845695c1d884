// SPDX-License-Identifier: Unlicense OR MIT

/*
Package paint defines the drawing targets widget trees are painted
onto.

A Painter covers a rectangle of its target. Sub returns a Painter for
a child transform; drawing through it is offset by the transform
position and the child sees the transform size as its own.
*/
package paint

import (
	"image"
	"image/color"

	"polyui.org/layout"
)

// Painter draws in its own coordinate space, with the origin in
// the top left corner.
type Painter interface {
	layout.Painter
	// Sub returns a Painter for the area of t.
	Sub(t layout.Transform) Painter
	FillRect(r image.Rectangle, c color.NRGBA)
	StrokeRect(r image.Rectangle, c color.NRGBA)
	// Label draws s at the top left corner of the painter.
	Label(s string, c color.NRGBA)
}

// Bounds returns the rectangle covered by p in its own coordinates.
func Bounds(p layout.Painter) image.Rectangle {
	return image.Rectangle{Max: p.Size().Point()}
}
