// SPDX-License-Identifier: Unlicense OR MIT

/*
Package widget implements a tree of widgets laid out by the containers
of package layout.

Widgets live in a Tree and are referred to by ID. An ID stays valid
until its widget is deleted; a deleted ID is never handed out again,
so stale IDs are reported as errors rather than silently aliasing a
newer widget.

Each widget owns a Hierarchy storing the transforms of its children.
Container widgets pair their Hierarchy with a layout.Grid, layout.Linear
or layout.Canvas that writes those transforms on every Paint:

	tree := widget.NewTree()
	root, grid := tree.NewGrid("root")
	a := tree.New(widget.Leaf, "a")
	grid.InsertChildAt(layout.ChildID(a), 0, 0)
	tree.Paint(root, painter)

*/
package widget
