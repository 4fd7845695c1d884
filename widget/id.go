// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"fmt"

	"polyui.org/layout"
)

// ID is a handle to a widget in a Tree. The low 32 bits index
// the widget slot, the high 32 bits hold the generation of the
// slot. The zero ID is never valid.
type ID layout.ChildID

// Kind is the type of a widget.
type Kind uint8

const (
	// Leaf widgets have no children and paint their frame and
	// name.
	Leaf Kind = iota
	GridContainer
	LinearContainer
	CanvasContainer
)

func makeID(index, gen uint32) ID {
	return ID(uint64(gen)<<32 | uint64(index))
}

func (id ID) index() uint32 {
	return uint32(id)
}

func (id ID) gen() uint32 {
	return uint32(id >> 32)
}

func (id ID) String() string {
	return fmt.Sprintf("%d.%d", id.index(), id.gen())
}

func (k Kind) String() string {
	switch k {
	case Leaf:
		return "Leaf"
	case GridContainer:
		return "Grid"
	case LinearContainer:
		return "Linear"
	case CanvasContainer:
		return "Canvas"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}
