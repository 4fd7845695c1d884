// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"image"
)

// Size is a non-negative extent in pixels.
type Size struct {
	W, H uint32
}

// Transform is the position and size of a child relative
// to its parent.
type Transform struct {
	Pos  image.Point
	Size Size
}

// Axis is the Horizontal or Vertical direction.
type Axis uint8

// ChildID identifies a child within a Hierarchy. The zero
// value is never handed out by package widget.
type ChildID uint64

// Hierarchy stores the transforms of a container's children.
// Layouts write the transforms they compute through it.
type Hierarchy interface {
	AddWithTransform(child ChildID, t Transform) error
	SetTransform(child ChildID, t Transform) error
	Remove(child ChildID) error
	Transform(child ChildID) (Transform, error)
}

// Painter is the part of a paint target that layouts need:
// the size available to them.
type Painter interface {
	Size() Size
}

// Container is a layout that positions the children of a
// Hierarchy when painted.
type Container interface {
	Layout(p Painter) error
}

const (
	Horizontal Axis = iota
	Vertical
)

// Pt returns the Size with width w and height h.
func Pt(w, h uint32) Size {
	return Size{W: w, H: h}
}

// Along returns the extent of s along the axis.
func (s Size) Along(a Axis) uint32 {
	if a == Horizontal {
		return s.W
	}
	return s.H
}

// Point converts s to an image.Point.
func (s Size) Point() image.Point {
	return image.Point{X: int(s.W), Y: int(s.H)}
}

// Rect returns the rectangle covered by t in its parent's
// coordinate space.
func (t Transform) Rect() image.Rectangle {
	return image.Rectangle{Min: t.Pos, Max: t.Pos.Add(t.Size.Point())}
}

func (s Size) String() string {
	return s.Point().String()
}

func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "Horizontal"
	case Vertical:
		return "Vertical"
	default:
		panic("unreachable")
	}
}
