// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"github.com/pkg/errors"
	"golang.org/x/exp/slices"

	"polyui.org/layout"
)

// Hierarchy holds the children of a widget and their transforms
// relative to it. It implements layout.Hierarchy. A widget is
// the child of at most one Hierarchy at a time.
type Hierarchy struct {
	tree  *Tree
	owner ID
	// order is the insertion order of the children, which is
	// also their paint order.
	order      []ID
	transforms map[ID]layout.Transform
}

var _ layout.Hierarchy = (*Hierarchy)(nil)

func newHierarchy(t *Tree, owner ID) *Hierarchy {
	return &Hierarchy{
		tree:       t,
		owner:      owner,
		transforms: make(map[ID]layout.Transform),
	}
}

// Owner returns the widget whose children h holds.
func (h *Hierarchy) Owner() ID {
	return h.owner
}

// Children returns the children in insertion order.
func (h *Hierarchy) Children() []ID {
	return slices.Clone(h.order)
}

// Len returns the number of children.
func (h *Hierarchy) Len() int {
	return len(h.order)
}

// AddWithTransform adds child with transform t. The child must be a
// valid widget without a parent, and must not be the owner or one
// of its ancestors.
func (h *Hierarchy) AddWithTransform(child layout.ChildID, t layout.Transform) error {
	if err := h.live(); err != nil {
		return err
	}
	id := ID(child)
	n, err := h.tree.node(id)
	if err != nil {
		return err
	}
	if n.parent != 0 {
		return errors.Wrapf(layout.ErrDuplicateAssignment, "widget %v already a child of %v", id, n.parent)
	}
	for a := h.owner; a != 0; a = h.tree.nodes[a.index()].parent {
		if a == id {
			return errors.Wrapf(layout.ErrDuplicateAssignment, "widget %v is an ancestor of %v", id, h.owner)
		}
	}
	n.parent = h.owner
	h.order = append(h.order, id)
	h.transforms[id] = t
	return nil
}

func (h *Hierarchy) SetTransform(child layout.ChildID, t layout.Transform) error {
	if err := h.live(); err != nil {
		return err
	}
	id := ID(child)
	if _, ok := h.transforms[id]; !ok {
		return h.missing(id)
	}
	h.transforms[id] = t
	return nil
}

// Remove detaches child. The child stays in the tree without a
// parent.
func (h *Hierarchy) Remove(child layout.ChildID) error {
	if err := h.live(); err != nil {
		return err
	}
	id := ID(child)
	if _, ok := h.transforms[id]; !ok {
		return h.missing(id)
	}
	delete(h.transforms, id)
	i := slices.Index(h.order, id)
	h.order = slices.Delete(h.order, i, i+1)
	h.tree.nodes[id.index()].parent = 0
	return nil
}

func (h *Hierarchy) Transform(child layout.ChildID) (layout.Transform, error) {
	if err := h.live(); err != nil {
		return layout.Transform{}, err
	}
	id := ID(child)
	t, ok := h.transforms[id]
	if !ok {
		return layout.Transform{}, h.missing(id)
	}
	return t, nil
}

// live fails once the owner has been deleted. Layouts created by
// the tree keep their Hierarchy after that.
func (h *Hierarchy) live() error {
	_, err := h.tree.node(h.owner)
	return errors.Wrap(err, "deleted hierarchy")
}

func (h *Hierarchy) missing(id ID) error {
	return errors.Wrapf(layout.ErrOutOfRange, "widget %v is not a child of %v", id, h.owner)
}
