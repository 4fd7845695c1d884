// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"polyui.org/layout"
	"polyui.org/paint"
)

func TestIDs(t *testing.T) {
	tree := NewTree()
	a := tree.New(Leaf, "a")
	require.NotZero(t, a)
	require.True(t, tree.Valid(a))
	require.False(t, tree.Valid(0))

	require.NoError(t, tree.Delete(a))
	require.False(t, tree.Valid(a))
	_, err := tree.Name(a)
	require.True(t, errors.Is(err, layout.ErrOutOfRange))

	// The slot is reused with a new generation.
	b := tree.New(Leaf, "b")
	require.Equal(t, a.index(), b.index())
	require.NotEqual(t, a, b)
	require.False(t, tree.Valid(a))
	name, err := tree.Name(b)
	require.NoError(t, err)
	require.Equal(t, "b", name)
	require.Equal(t, 1, tree.Len())
}

func TestAttach(t *testing.T) {
	tree := NewTree()
	p := tree.New(Leaf, "p")
	c := tree.New(Leaf, "c")
	require.NoError(t, tree.Attach(p, c))
	parent, err := tree.Parent(c)
	require.NoError(t, err)
	require.Equal(t, p, parent)

	other := tree.New(Leaf, "other")
	require.True(t, errors.Is(tree.Attach(other, c), layout.ErrDuplicateAssignment))
	// Cycles.
	require.True(t, errors.Is(tree.Attach(c, p), layout.ErrDuplicateAssignment))
	require.True(t, errors.Is(tree.Attach(p, p), layout.ErrDuplicateAssignment))

	h, err := tree.Hierarchy(p)
	require.NoError(t, err)
	require.Equal(t, []ID{c}, h.Children())
	require.NoError(t, h.Remove(layout.ChildID(c)))
	parent, err = tree.Parent(c)
	require.NoError(t, err)
	require.Zero(t, parent)
	require.NoError(t, tree.Attach(other, c))
}

func TestDeleteSubtree(t *testing.T) {
	tree := NewTree()
	root, grid := tree.NewGrid("root")
	row, lin := tree.NewLinear("row", layout.LeftToRight)
	a := tree.New(Leaf, "a")
	b := tree.New(Leaf, "b")
	require.NoError(t, grid.InsertChildAt(layout.ChildID(row), 0, 0))
	require.NoError(t, lin.Append(layout.ChildID(a), layout.NewItem(1)))
	require.NoError(t, tree.Attach(row, b))

	require.NoError(t, tree.Delete(row))
	for _, id := range []ID{row, a, b} {
		require.False(t, tree.Valid(id))
	}
	require.Equal(t, 1, tree.Len())
	_, ok := grid.ChildAt(0, 0)
	require.False(t, ok)
	h, err := tree.Hierarchy(root)
	require.NoError(t, err)
	require.Zero(t, h.Len())
	require.NoError(t, tree.Paint(root, paint.NewRecorder(layout.Pt(10, 10))))
}

func TestDeleteAttachedToContainer(t *testing.T) {
	tree := NewTree()
	root, grid := tree.NewGrid("root")
	a := tree.New(Leaf, "a")
	b := tree.New(Leaf, "b")
	require.NoError(t, grid.InsertChildAt(layout.ChildID(a), 0, 0))
	require.NoError(t, tree.Attach(root, b))
	require.NoError(t, tree.Delete(b))
	require.NoError(t, tree.Delete(a))
	h, err := tree.Hierarchy(root)
	require.NoError(t, err)
	require.Zero(t, h.Len())
}

func TestGridTruncationDetaches(t *testing.T) {
	tree := NewTree()
	_, grid := tree.NewGrid("root")
	a := tree.New(Leaf, "a")
	b := tree.New(Leaf, "b")
	require.NoError(t, grid.InsertChildAt(layout.ChildID(a), 0, 0))
	require.NoError(t, grid.InsertChildAt(layout.ChildID(b), 1, 0))
	evicted, err := grid.SetColumnCount(1)
	require.NoError(t, err)
	require.Equal(t, []layout.ChildID{layout.ChildID(b)}, evicted)
	parent, err := tree.Parent(b)
	require.NoError(t, err)
	require.Zero(t, parent)
	require.True(t, tree.Valid(b))
}

func TestPaint(t *testing.T) {
	tree := NewTree()
	root, grid := tree.NewGrid("root")
	a := tree.New(Leaf, "a")
	row, lin := tree.NewLinear("row", layout.TopToBottom)
	b := tree.New(Leaf, "b")
	c := tree.New(Leaf, "c")
	require.NoError(t, grid.InsertChildAt(layout.ChildID(a), 0, 0))
	require.NoError(t, grid.InsertChildAt(layout.ChildID(row), 1, 0))
	require.NoError(t, lin.Append(layout.ChildID(b), layout.NewItem(1)))
	require.NoError(t, lin.Append(layout.ChildID(c), layout.NewItem(3)))

	rec := paint.NewRecorder(layout.Pt(100, 40))
	require.NoError(t, tree.Paint(root, rec))

	var labels []string
	rects := map[string]image.Rectangle{}
	for _, op := range rec.Ops() {
		if op.Kind == paint.OpLabel {
			labels = append(labels, op.Text)
			rects[op.Text] = op.Rect
		}
	}
	require.Equal(t, []string{"a", "b", "c"}, labels)
	require.Equal(t, image.Rect(0, 0, 50, 40), rects["a"])
	require.Equal(t, image.Rect(50, 0, 100, 10), rects["b"])
	require.Equal(t, image.Rect(50, 10, 100, 40), rects["c"])

	tfs, err := tree.Transforms(root)
	require.NoError(t, err)
	require.Equal(t, image.Rect(50, 10, 100, 40), tfs[c].Rect())
	require.Len(t, tfs, 4)
}

func TestPaintInvalidConstraints(t *testing.T) {
	tree := NewTree()
	root, grid := tree.NewGrid("root")
	a := tree.New(Leaf, "a")
	require.NoError(t, grid.InsertChildAt(layout.ChildID(a), 0, 0))
	require.NoError(t, grid.SetColumnMaxSize(0, 10))
	err := tree.Paint(root, paint.NewRecorder(layout.Pt(100, 40)))
	require.True(t, errors.Is(err, layout.ErrInvalidConstraints))

	require.True(t, errors.Is(tree.Paint(ID(12345), paint.NewRecorder(layout.Pt(1, 1))), layout.ErrOutOfRange))
}

func TestKind(t *testing.T) {
	tree := NewTree()
	id, _ := tree.NewCanvas("c")
	k, err := tree.Kind(id)
	require.NoError(t, err)
	require.Equal(t, CanvasContainer, k)
	require.Equal(t, "Canvas", k.String())
	c, err := tree.Container(id)
	require.NoError(t, err)
	require.NotNil(t, c)
	require.NoError(t, tree.SetContainer(id, nil))
	c, err = tree.Container(id)
	require.NoError(t, err)
	require.Nil(t, c)
}

func TestDeletedContainerRejectsChildren(t *testing.T) {
	tree := NewTree()
	old, grid := tree.NewGrid("old")
	h, err := tree.Hierarchy(old)
	require.NoError(t, err)
	require.NoError(t, tree.Delete(old))
	// The new grid reuses the slot of the deleted one.
	reused, _ := tree.NewGrid("new")
	require.Equal(t, old.index(), reused.index())

	leaf := tree.New(Leaf, "leaf")
	err = grid.InsertChildAt(layout.ChildID(leaf), layout.Next, layout.Next)
	require.True(t, errors.Is(err, layout.ErrOutOfRange), err)
	require.Zero(t, grid.ColumnCount())
	require.True(t, errors.Is(h.AddWithTransform(layout.ChildID(leaf), layout.Transform{}), layout.ErrOutOfRange))
	require.True(t, errors.Is(h.Remove(layout.ChildID(leaf)), layout.ErrOutOfRange))

	parent, err := tree.Parent(leaf)
	require.NoError(t, err)
	require.Zero(t, parent)

	other := tree.New(Leaf, "other")
	require.NoError(t, tree.Attach(other, leaf))
	require.NoError(t, tree.Delete(leaf))
	require.False(t, tree.Valid(leaf))
}
