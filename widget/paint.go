// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image"

	"github.com/pkg/errors"

	"polyui.org/layout"
	"polyui.org/paint"
)

// Paint lays out and paints root and its descendants to p. Every
// container is laid out to the size of its painter before its
// children are painted, depth first in hierarchy order, each
// through a sub painter covering its transform.
func (t *Tree) Paint(root ID, p paint.Painter) error {
	if _, err := t.node(root); err != nil {
		return err
	}
	return t.paint(root, p)
}

func (t *Tree) paint(id ID, p paint.Painter) error {
	n := &t.nodes[id.index()]
	if n.container != nil {
		if err := n.container.Layout(p); err != nil {
			return errors.Wrapf(err, "layout %s %q", n.kind, n.name)
		}
	}
	if n.kind == Leaf {
		r := image.Rectangle{Max: p.Size().Point()}
		p.StrokeRect(r, t.frame)
		p.Label(n.name, t.label)
	}
	h := n.children
	for _, c := range h.order {
		tr := h.transforms[c]
		if err := t.paint(c, p.Sub(tr)); err != nil {
			return err
		}
	}
	return nil
}

// Transforms returns the transform of every descendant of root
// relative to root, as of the last Paint.
func (t *Tree) Transforms(root ID) (map[ID]layout.Transform, error) {
	if _, err := t.node(root); err != nil {
		return nil, err
	}
	m := make(map[ID]layout.Transform)
	t.collect(root, image.Point{}, m)
	return m, nil
}

func (t *Tree) collect(id ID, origin image.Point, m map[ID]layout.Transform) {
	h := t.nodes[id.index()].children
	for _, c := range h.order {
		tr := h.transforms[c]
		tr.Pos = tr.Pos.Add(origin)
		m[c] = tr
		t.collect(c, tr.Pos, m)
	}
}
