// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"image"

	"github.com/pkg/errors"
)

// Canvas places children at explicit transforms that don't
// change when the canvas is resized.
type Canvas struct {
	hierarchy Hierarchy
	children  map[ChildID]struct{}
}

// NewCanvas returns an empty Canvas that places its children in h.
func NewCanvas(h Hierarchy) *Canvas {
	return &Canvas{
		hierarchy: h,
		children:  make(map[ChildID]struct{}),
	}
}

// AddChild adds child at transform t.
func (c *Canvas) AddChild(child ChildID, t Transform) error {
	if _, ok := c.children[child]; ok {
		return errors.Wrapf(ErrDuplicateAssignment, "child %d already on canvas", child)
	}
	if err := c.hierarchy.AddWithTransform(child, t); err != nil {
		return err
	}
	c.children[child] = struct{}{}
	return nil
}

// RemoveChild removes child from the canvas and the hierarchy.
func (c *Canvas) RemoveChild(child ChildID) error {
	if err := c.check(child); err != nil {
		return err
	}
	delete(c.children, child)
	return c.hierarchy.Remove(child)
}

// SetChildTransform moves and resizes child.
func (c *Canvas) SetChildTransform(child ChildID, t Transform) error {
	if err := c.check(child); err != nil {
		return err
	}
	return c.hierarchy.SetTransform(child, t)
}

// SetChildPos moves child, keeping its size.
func (c *Canvas) SetChildPos(child ChildID, pos image.Point) error {
	t, err := c.ChildTransform(child)
	if err != nil {
		return err
	}
	t.Pos = pos
	return c.hierarchy.SetTransform(child, t)
}

// SetChildSize resizes child, keeping its position.
func (c *Canvas) SetChildSize(child ChildID, size Size) error {
	t, err := c.ChildTransform(child)
	if err != nil {
		return err
	}
	t.Size = size
	return c.hierarchy.SetTransform(child, t)
}

// ChildTransform returns the transform of child.
func (c *Canvas) ChildTransform(child ChildID) (Transform, error) {
	if err := c.check(child); err != nil {
		return Transform{}, err
	}
	return c.hierarchy.Transform(child)
}

// Layout leaves every child where it was placed.
func (c *Canvas) Layout(p Painter) error {
	return nil
}

func (c *Canvas) check(child ChildID) error {
	if _, ok := c.children[child]; !ok {
		return errors.Wrapf(ErrOutOfRange, "child %d not on canvas", child)
	}
	return nil
}
