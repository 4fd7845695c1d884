// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"image"

	"github.com/go-logr/logr"
	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
)

// Next selects the column or row after the last one in
// InsertChildAt.
const Next = -1

// MaxTracks is the largest number of columns or rows of a Grid.
const MaxTracks = 1 << 16

// Grid lays out children in cells of rows and columns. Columns
// and rows are sized independently by a Span each, so every column
// and row can have its own stretch and minimum and maximum size.
// A cell holds at most one child and may be empty.
type Grid struct {
	hierarchy Hierarchy
	log       logr.Logger

	cols, rows track

	cells    map[image.Point]ChildID
	children map[ChildID]image.Point
	// stale is set when a child needs its transform written even
	// though no track changed.
	stale bool
}

// track is one axis of a Grid.
type track struct {
	axis Axis
	span Span
	// painted is the size the span was last solved for.
	painted uint32
	dirty   bool
}

// NewGrid returns an empty Grid that places its children in h.
func NewGrid(h Hierarchy, opts ...Option) *Grid {
	o := newOptions(opts)
	return &Grid{
		hierarchy: h,
		log:       o.log,
		cols:      track{axis: Horizontal, dirty: true},
		rows:      track{axis: Vertical, dirty: true},
		cells:     make(map[image.Point]ChildID),
		children:  make(map[ChildID]image.Point),
	}
}

// InsertChildAt adds child to the cell at col and row. Pass Next
// for col or row to use a new column or row after the last one.
// The grid grows to include the cell. The child is added to the
// hierarchy with a zero transform until the next Layout.
func (g *Grid) InsertChildAt(child ChildID, col, row int) error {
	if at, ok := g.children[child]; ok {
		return errors.Wrapf(ErrDuplicateAssignment, "child %d already in cell %v", child, at)
	}
	if col == Next {
		col = g.cols.span.Len()
	}
	if row == Next {
		row = g.rows.span.Len()
	}
	if err := checkIndex("column", col); err != nil {
		return err
	}
	if err := checkIndex("row", row); err != nil {
		return err
	}
	cell := image.Pt(col, row)
	if other, ok := g.cells[cell]; ok {
		return errors.Wrapf(ErrDuplicateAssignment, "cell %v holds child %d", cell, other)
	}
	if err := g.hierarchy.AddWithTransform(child, Transform{}); err != nil {
		return err
	}
	g.cols.grow(col)
	g.rows.grow(row)
	g.cells[cell] = child
	g.children[child] = cell
	g.stale = true
	return nil
}

// RemoveChild removes child from its cell and from the hierarchy.
func (g *Grid) RemoveChild(child ChildID) error {
	cell, ok := g.children[child]
	if !ok {
		return errors.Wrapf(ErrOutOfRange, "child %d not in grid", child)
	}
	delete(g.cells, cell)
	delete(g.children, child)
	return g.hierarchy.Remove(child)
}

// SetColumnCount sets the number of columns. Children in columns
// at or beyond n are removed from the grid and the hierarchy, and
// returned in column then row order.
func (g *Grid) SetColumnCount(n int) ([]ChildID, error) {
	return g.setCount(&g.cols, n)
}

// SetRowCount sets the number of rows. Children in rows at or
// beyond n are removed from the grid and the hierarchy, and
// returned in column then row order.
func (g *Grid) SetRowCount(n int) ([]ChildID, error) {
	return g.setCount(&g.rows, n)
}

// ColumnCount returns the number of columns.
func (g *Grid) ColumnCount() int {
	return g.cols.span.Len()
}

// RowCount returns the number of rows.
func (g *Grid) RowCount() int {
	return g.rows.span.Len()
}

// SetColumnStretch sets the stretch of column col, adding columns
// up to col if needed.
func (g *Grid) SetColumnStretch(col int, stretch uint32) error {
	return g.set(&g.cols, col, func(it *Item) { it.Stretch = stretch })
}

// SetColumnMinSize sets the minimum size of column col, adding
// columns up to col if needed.
func (g *Grid) SetColumnMinSize(col int, size uint32) error {
	return g.set(&g.cols, col, func(it *Item) { it.MinSize = size })
}

// SetColumnMaxSize sets the maximum size of column col, adding
// columns up to col if needed.
func (g *Grid) SetColumnMaxSize(col int, size uint32) error {
	return g.set(&g.cols, col, func(it *Item) { it.MaxSize = size })
}

// SetRowStretch sets the stretch of row row, adding rows up to
// row if needed.
func (g *Grid) SetRowStretch(row int, stretch uint32) error {
	return g.set(&g.rows, row, func(it *Item) { it.Stretch = stretch })
}

// SetRowMinSize sets the minimum size of row row, adding rows up
// to row if needed.
func (g *Grid) SetRowMinSize(row int, size uint32) error {
	return g.set(&g.rows, row, func(it *Item) { it.MinSize = size })
}

// SetRowMaxSize sets the maximum size of row row, adding rows up
// to row if needed.
func (g *Grid) SetRowMaxSize(row int, size uint32) error {
	return g.set(&g.rows, row, func(it *Item) { it.MaxSize = size })
}

// Columns returns the column items as of the last Layout.
func (g *Grid) Columns() []Item {
	return g.cols.span.Items()
}

// Rows returns the row items as of the last Layout.
func (g *Grid) Rows() []Item {
	return g.rows.span.Items()
}

// ChildAt returns the child in the cell at col and row.
func (g *Grid) ChildAt(col, row int) (ChildID, bool) {
	id, ok := g.cells[image.Pt(col, row)]
	return id, ok
}

// Cell returns the column and row of child as the X and Y of a
// point.
func (g *Grid) Cell(child ChildID) (image.Point, bool) {
	c, ok := g.children[child]
	return c, ok
}

// Children returns the children in column then row order.
func (g *Grid) Children() []ChildID {
	cells := g.sortedCells(func(image.Point) bool { return true })
	ids := make([]ChildID, len(cells))
	for i, c := range cells {
		ids[i] = g.cells[c]
	}
	return ids
}

// ChildTransform returns the transform of child as stored in the
// hierarchy.
func (g *Grid) ChildTransform(child ChildID) (Transform, error) {
	if _, ok := g.children[child]; !ok {
		return Transform{}, errors.Wrapf(ErrOutOfRange, "child %d not in grid", child)
	}
	return g.hierarchy.Transform(child)
}

// Layout solves the columns against the width of p and the rows
// against its height, then sets the transform of every child to
// its cell. Nothing is solved if the size of p and the grid are
// unchanged since the last Layout.
func (g *Grid) Layout(p Painter) error {
	sz := p.Size()
	colsChanged, err := g.cols.refresh(sz.W, g.log)
	if err != nil {
		return err
	}
	rowsChanged, err := g.rows.refresh(sz.H, g.log)
	if err != nil {
		return err
	}
	if !colsChanged && !rowsChanged && !g.stale {
		return nil
	}
	xs, ws := g.cols.span.Offsets(), g.cols.span.Sizes()
	ys, hs := g.rows.span.Offsets(), g.rows.span.Sizes()
	for c, id := range g.cells {
		t := Transform{
			Pos:  image.Pt(xs[c.X], ys[c.Y]),
			Size: Size{W: ws[c.X], H: hs[c.Y]},
		}
		if err := g.hierarchy.SetTransform(id, t); err != nil {
			return err
		}
	}
	g.stale = false
	return nil
}

func (g *Grid) set(t *track, i int, f func(it *Item)) error {
	if err := checkIndex(t.name(), i); err != nil {
		return err
	}
	t.grow(i)
	f(&t.span.items[i])
	t.dirty = true
	return nil
}

func (g *Grid) setCount(t *track, n int) ([]ChildID, error) {
	if n < 0 || n > MaxTracks {
		return nil, errors.Wrapf(ErrOutOfRange, "%s count %d", t.name(), n)
	}
	t.span.setLen(n)
	t.dirty = true
	cells := g.sortedCells(func(c image.Point) bool {
		return along(c, t.axis) >= n
	})
	var evicted []ChildID
	for _, c := range cells {
		id := g.cells[c]
		delete(g.cells, c)
		delete(g.children, id)
		if err := g.hierarchy.Remove(id); err != nil {
			return evicted, err
		}
		evicted = append(evicted, id)
	}
	return evicted, nil
}

func (g *Grid) sortedCells(keep func(c image.Point) bool) []image.Point {
	var cells []image.Point
	for c := range g.cells {
		if keep(c) {
			cells = append(cells, c)
		}
	}
	slices.SortFunc(cells, func(a, b image.Point) int {
		if a.X != b.X {
			return a.X - b.X
		}
		return a.Y - b.Y
	})
	return cells
}

// grow adds items to the track until it has an item at index i.
func (t *track) grow(i int) {
	if i >= t.span.Len() {
		t.span.setLen(i + 1)
		t.dirty = true
	}
}

// refresh solves the track against size if it is dirty or size
// differs from the last solve. It reports whether it solved.
func (t *track) refresh(size uint32, log logr.Logger) (bool, error) {
	if !t.dirty && t.painted == size {
		return false, nil
	}
	if err := t.span.Resize(size); err != nil {
		return false, errors.Wrapf(err, "solve %ss", t.name())
	}
	t.painted = size
	t.dirty = false
	if log := log.V(1); log.Enabled() {
		log.Info("solved grid track", "axis", t.axis, "size", size, "sizes", t.span.Sizes())
	}
	return true, nil
}

func (t *track) name() string {
	if t.axis == Horizontal {
		return "column"
	}
	return "row"
}

func along(p image.Point, a Axis) int {
	if a == Horizontal {
		return p.X
	}
	return p.Y
}

func checkIndex(what string, i int) error {
	if i < 0 || i >= MaxTracks {
		return errors.Wrapf(ErrOutOfRange, "%s %d", what, i)
	}
	return nil
}
