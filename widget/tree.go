// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image/color"

	"github.com/go-logr/logr"
	"github.com/pkg/errors"

	"polyui.org/layout"
)

// Container is a layout owning some of the children of a widget.
// layout.Grid, layout.Linear and layout.Canvas are Containers.
type Container interface {
	layout.Container
	RemoveChild(child layout.ChildID) error
}

// Tree is an arena of widgets.
type Tree struct {
	nodes []node
	// free lists the indices of deleted slots.
	free  []uint32
	log   logr.Logger
	frame color.NRGBA
	label color.NRGBA
}

type node struct {
	gen       uint32
	live      bool
	kind      Kind
	name      string
	parent    ID
	children  *Hierarchy
	container Container
}

// Option configures a Tree.
type Option func(t *Tree)

// WithLogger makes the tree log widget changes to l and pass it to
// the layouts created by NewGrid, NewLinear and NewCanvas.
func WithLogger(l logr.Logger) Option {
	return func(t *Tree) {
		t.log = l
	}
}

// WithColors sets the colors leaves paint their frame and name in.
func WithColors(frame, label color.NRGBA) Option {
	return func(t *Tree) {
		t.frame, t.label = frame, label
	}
}

// NewTree returns an empty tree.
func NewTree(opts ...Option) *Tree {
	t := &Tree{
		log:   logr.Discard(),
		frame: color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff},
		label: color.NRGBA{A: 0xff},
	}
	for _, o := range opts {
		o(t)
	}
	return t
}

// New adds a widget without parent or container.
func (t *Tree) New(kind Kind, name string) ID {
	var idx uint32
	if n := len(t.free); n > 0 {
		idx = t.free[n-1]
		t.free = t.free[:n-1]
	} else {
		idx = uint32(len(t.nodes))
		t.nodes = append(t.nodes, node{})
	}
	n := &t.nodes[idx]
	n.gen++
	if n.gen == 0 {
		n.gen = 1
	}
	n.live = true
	n.kind = kind
	n.name = name
	id := makeID(idx, n.gen)
	n.children = newHierarchy(t, id)
	t.log.V(2).Info("new widget", "id", id, "kind", kind, "name", name)
	return id
}

// NewGrid adds a GridContainer widget and returns it with its grid.
func (t *Tree) NewGrid(name string) (ID, *layout.Grid) {
	id := t.New(GridContainer, name)
	g := layout.NewGrid(t.nodes[id.index()].children, layout.WithLogger(t.log.WithValues("widget", name)))
	t.nodes[id.index()].container = g
	return id, g
}

// NewLinear adds a LinearContainer widget and returns it with its
// layout.
func (t *Tree) NewLinear(name string, dir layout.Direction) (ID, *layout.Linear) {
	id := t.New(LinearContainer, name)
	l := layout.NewLinear(t.nodes[id.index()].children, dir, layout.WithLogger(t.log.WithValues("widget", name)))
	t.nodes[id.index()].container = l
	return id, l
}

// NewCanvas adds a CanvasContainer widget and returns it with its
// canvas.
func (t *Tree) NewCanvas(name string) (ID, *layout.Canvas) {
	id := t.New(CanvasContainer, name)
	c := layout.NewCanvas(t.nodes[id.index()].children)
	t.nodes[id.index()].container = c
	return id, c
}

// Valid reports whether id refers to a widget in the tree.
func (t *Tree) Valid(id ID) bool {
	_, err := t.node(id)
	return err == nil
}

// Len returns the number of widgets in the tree.
func (t *Tree) Len() int {
	return len(t.nodes) - len(t.free)
}

func (t *Tree) Name(id ID) (string, error) {
	n, err := t.node(id)
	if err != nil {
		return "", err
	}
	return n.name, nil
}

func (t *Tree) Kind(id ID) (Kind, error) {
	n, err := t.node(id)
	if err != nil {
		return 0, err
	}
	return n.kind, nil
}

// Parent returns the parent of id, or the zero ID for a widget
// without parent.
func (t *Tree) Parent(id ID) (ID, error) {
	n, err := t.node(id)
	if err != nil {
		return 0, err
	}
	return n.parent, nil
}

// Hierarchy returns the hierarchy holding the children of id.
func (t *Tree) Hierarchy(id ID) (*Hierarchy, error) {
	n, err := t.node(id)
	if err != nil {
		return nil, err
	}
	return n.children, nil
}

// Container returns the container of id, or nil.
func (t *Tree) Container(id ID) (Container, error) {
	n, err := t.node(id)
	if err != nil {
		return nil, err
	}
	return n.container, nil
}

// SetContainer replaces the container of id. The container must
// store its children in the Hierarchy of id.
func (t *Tree) SetContainer(id ID, c Container) error {
	n, err := t.node(id)
	if err != nil {
		return err
	}
	n.container = c
	return nil
}

// Attach adds child to the hierarchy of parent with a zero
// transform, bypassing the container of parent.
func (t *Tree) Attach(parent, child ID) error {
	n, err := t.node(parent)
	if err != nil {
		return err
	}
	return n.children.AddWithTransform(layout.ChildID(child), layout.Transform{})
}

// Delete removes id and its descendants from the tree and detaches
// id from its parent.
func (t *Tree) Delete(id ID) error {
	n, err := t.node(id)
	if err != nil {
		return err
	}
	if p := n.parent; p != 0 {
		if err := t.detach(p, id); err != nil {
			return err
		}
	}
	t.free = t.freeSubtree(id, t.free)
	t.log.V(1).Info("deleted widget", "id", id, "remaining", t.Len())
	return nil
}

func (t *Tree) detach(parent, child ID) error {
	p := &t.nodes[parent.index()]
	if p.container != nil {
		err := p.container.RemoveChild(layout.ChildID(child))
		if err == nil {
			return nil
		}
		if !errors.Is(err, layout.ErrOutOfRange) {
			return err
		}
		// Attached without the container.
	}
	return p.children.Remove(layout.ChildID(child))
}

func (t *Tree) freeSubtree(id ID, free []uint32) []uint32 {
	n := &t.nodes[id.index()]
	for _, c := range n.children.order {
		free = t.freeSubtree(c, free)
	}
	*n = node{gen: n.gen}
	return append(free, id.index())
}

func (t *Tree) node(id ID) (*node, error) {
	i := id.index()
	if id == 0 || int(i) >= len(t.nodes) {
		return nil, errors.Wrapf(layout.ErrOutOfRange, "widget %v", id)
	}
	n := &t.nodes[i]
	if !n.live || n.gen != id.gen() {
		return nil, errors.Wrapf(layout.ErrOutOfRange, "stale widget %v", id)
	}
	return n, nil
}
