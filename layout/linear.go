// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"image"

	"github.com/go-logr/logr"
	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
)

// Direction is the direction in which a Linear places its
// children.
type Direction uint8

const (
	LeftToRight Direction = iota
	RightToLeft
	TopToBottom
	BottomToTop
)

// Linear lays out children one after another along an axis. Each
// child is sized by an Item of a Span along the main axis and
// takes the full extent of the cross axis.
type Linear struct {
	hierarchy Hierarchy
	log       logr.Logger

	dir      Direction
	span     Span
	children []ChildID
	painted  Size
	dirty    bool
}

// NewLinear returns an empty Linear that places its children in h.
func NewLinear(h Hierarchy, dir Direction, opts ...Option) *Linear {
	o := newOptions(opts)
	return &Linear{
		hierarchy: h,
		log:       o.log,
		dir:       dir,
		dirty:     true,
	}
}

// Append adds child after the last child, sized by it.
func (l *Linear) Append(child ChildID, it Item) error {
	if slices.Contains(l.children, child) {
		return errors.Wrapf(ErrDuplicateAssignment, "child %d already in linear layout", child)
	}
	if err := l.hierarchy.AddWithTransform(child, Transform{}); err != nil {
		return err
	}
	l.children = append(l.children, child)
	l.span.items = append(l.span.items, it)
	l.dirty = true
	return nil
}

// RemoveChild removes child and its item.
func (l *Linear) RemoveChild(child ChildID) error {
	i := slices.Index(l.children, child)
	if i == -1 {
		return errors.Wrapf(ErrOutOfRange, "child %d not in linear layout", child)
	}
	l.children = slices.Delete(l.children, i, i+1)
	l.span.items = slices.Delete(l.span.items, i, i+1)
	l.dirty = true
	return l.hierarchy.Remove(child)
}

// Len returns the number of children.
func (l *Linear) Len() int {
	return len(l.children)
}

// Direction returns the layout direction.
func (l *Linear) Direction() Direction {
	return l.dir
}

// SetDirection changes the layout direction.
func (l *Linear) SetDirection(dir Direction) {
	l.dir = dir
	l.dirty = true
}

// SetStretch sets the stretch of the i'th child.
func (l *Linear) SetStretch(i int, stretch uint32) error {
	return l.set(i, func(it *Item) { it.Stretch = stretch })
}

// SetMinSize sets the minimum main axis size of the i'th child.
func (l *Linear) SetMinSize(i int, size uint32) error {
	return l.set(i, func(it *Item) { it.MinSize = size })
}

// SetMaxSize sets the maximum main axis size of the i'th child.
func (l *Linear) SetMaxSize(i int, size uint32) error {
	return l.set(i, func(it *Item) { it.MaxSize = size })
}

// Items returns the items of the children as of the last Layout.
func (l *Linear) Items() []Item {
	return l.span.Items()
}

// ChildTransform returns the transform of child as stored in the
// hierarchy.
func (l *Linear) ChildTransform(child ChildID) (Transform, error) {
	if !slices.Contains(l.children, child) {
		return Transform{}, errors.Wrapf(ErrOutOfRange, "child %d not in linear layout", child)
	}
	return l.hierarchy.Transform(child)
}

// Layout solves the children along the main axis of p and sets
// their transforms.
func (l *Linear) Layout(p Painter) error {
	sz := p.Size()
	if !l.dirty && sz == l.painted {
		return nil
	}
	axis := l.dir.Axis()
	main, cross := sz.Along(axis), sz.Along(axis^1)
	if err := l.span.Resize(main); err != nil {
		return errors.Wrap(err, "solve linear layout")
	}
	offs, sizes := l.span.Offsets(), l.span.Sizes()
	if log := l.log.V(1); log.Enabled() {
		log.Info("solved linear layout", "direction", l.dir, "size", main, "sizes", sizes)
	}
	// A raised span overflows the painter; reversed directions
	// still align to the far edge of the span.
	end := int(l.span.Size())
	for i, id := range l.children {
		off := offs[i]
		if l.dir == RightToLeft || l.dir == BottomToTop {
			off = end - off - int(sizes[i])
		}
		var t Transform
		if axis == Horizontal {
			t = Transform{Pos: image.Pt(off, 0), Size: Size{W: sizes[i], H: cross}}
		} else {
			t = Transform{Pos: image.Pt(0, off), Size: Size{W: cross, H: sizes[i]}}
		}
		if err := l.hierarchy.SetTransform(id, t); err != nil {
			return err
		}
	}
	l.painted = sz
	l.dirty = false
	return nil
}

func (l *Linear) set(i int, f func(it *Item)) error {
	if i < 0 || i >= len(l.span.items) {
		return errors.Wrapf(ErrOutOfRange, "item %d of %d", i, len(l.span.items))
	}
	f(&l.span.items[i])
	l.dirty = true
	return nil
}

// Axis returns the main axis of d.
func (d Direction) Axis() Axis {
	if d == LeftToRight || d == RightToLeft {
		return Horizontal
	}
	return Vertical
}

func (d Direction) String() string {
	switch d {
	case LeftToRight:
		return "LeftToRight"
	case RightToLeft:
		return "RightToLeft"
	case TopToBottom:
		return "TopToBottom"
	case BottomToTop:
		return "BottomToTop"
	default:
		panic("unreachable")
	}
}
