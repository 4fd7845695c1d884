// SPDX-License-Identifier: Unlicense OR MIT

/*
Package layout sizes and positions the children of containers.

A Span resolves a list of Items, each with a stretch and a minimum
and maximum size, against a total size. Sizes are whole pixels and
always add up to the total:

	s, err := layout.NewSpan(120, []layout.Item{
		layout.NewItem(1),
		layout.NewItem(2),
		layout.NewItem(3, layout.MaxSize(50)),
	})

Grid solves one Span for its columns and one for its rows each
time it is painted at a new size, and writes the resulting
transforms to a Hierarchy. Linear does the same along a single
axis, and Canvas keeps transforms set by the caller.
*/
package layout
