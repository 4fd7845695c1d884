// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"fmt"
	"math"
)

// Unbounded is the maximum size of an Item without an upper bound.
const Unbounded = math.MaxUint32

// Item is a single quantity resolved by a Span. Use NewItem to
// get an Item without an upper bound; the zero Item has a maximum
// size of zero.
type Item struct {
	// Stretch is the weight of the item relative to its siblings.
	Stretch uint32
	// MinSize is the lower bound of the resolved size.
	MinSize uint32
	// MaxSize is the upper bound of the resolved size. A Span
	// raises it to MinSize if it is lower.
	MaxSize uint32

	current uint32
}

// ItemOption configures an Item created by NewItem.
type ItemOption func(it *Item)

// MinSize sets the lower bound of an Item.
func MinSize(v uint32) ItemOption {
	return func(it *Item) {
		it.MinSize = v
	}
}

// MaxSize sets the upper bound of an Item.
func MaxSize(v uint32) ItemOption {
	return func(it *Item) {
		it.MaxSize = v
	}
}

// NewItem returns an Item with the given stretch, a minimum size
// of 0 and no maximum size unless overridden by options.
func NewItem(stretch uint32, opts ...ItemOption) Item {
	it := Item{
		Stretch: stretch,
		MaxSize: Unbounded,
	}
	for _, o := range opts {
		o(&it)
	}
	return it
}

// CurrentSize returns the size resolved by the last solve of the
// Span owning the item.
func (it Item) CurrentSize() uint32 {
	return it.current
}

// saturated reports whether the item can't take another unit.
func (it Item) saturated() bool {
	return it.current >= it.MaxSize
}

func (it Item) String() string {
	hi := "∞"
	if it.MaxSize != Unbounded {
		hi = fmt.Sprint(it.MaxSize)
	}
	return fmt.Sprintf("{stretch: %d, size: %d [%d;%s]}", it.Stretch, it.current, it.MinSize, hi)
}
