// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"math/bits"

	"github.com/pkg/errors"
)

// Span distributes a size among an ordered list of Items
// according to their stretch, within their minimum and maximum
// sizes. The resolved sizes always add up to the size of the
// span, and depend only on the size and the items.
type Span struct {
	size  uint32
	items []Item
}

// NewSpan returns a Span of items solved against size. If size
// is smaller than the sum of the minimum sizes, the sum is used
// instead.
func NewSpan(size uint32, items []Item) (*Span, error) {
	s := &Span{items: append([]Item(nil), items...)}
	if err := s.solve(size); err != nil {
		return nil, err
	}
	return s, nil
}

// Size returns the size of the span, including any raise to the
// sum of the item minimums.
func (s *Span) Size() uint32 {
	return s.size
}

// Len returns the number of items.
func (s *Span) Len() int {
	return len(s.items)
}

// Item returns the item at index i.
func (s *Span) Item(i int) Item {
	return s.items[i]
}

// Items returns a copy of the items with their resolved sizes.
func (s *Span) Items() []Item {
	return append([]Item(nil), s.items...)
}

// Sizes returns the resolved size of every item.
func (s *Span) Sizes() []uint32 {
	sizes := make([]uint32, len(s.items))
	for i, it := range s.items {
		sizes[i] = it.current
	}
	return sizes
}

// Offsets returns the position of every item: the sum of the
// resolved sizes of the items before it.
func (s *Span) Offsets() []int {
	offs := make([]int, len(s.items))
	off := 0
	for i, it := range s.items {
		offs[i] = off
		off += int(it.current)
	}
	return offs
}

// Resize solves the items again against size. On error the
// span keeps its previous size and resolved sizes.
func (s *Span) Resize(size uint32) error {
	return s.solve(size)
}

// SetItems replaces the items and solves them against the
// current size. On error the span is unchanged.
func (s *Span) SetItems(items []Item) error {
	n := Span{items: append([]Item(nil), items...)}
	if err := n.solve(s.size); err != nil {
		return err
	}
	*s = n
	return nil
}

// setLen grows or truncates the item list. New items have a
// stretch of 1 and no bounds.
func (s *Span) setLen(n int) {
	if n <= len(s.items) {
		s.items = s.items[:n]
		return
	}
	for len(s.items) < n {
		s.items = append(s.items, NewItem(1))
	}
}

// solve resolves every item from scratch. Items first get their
// minimum size. The remaining space is then handed out one unit
// at a time to the unsaturated item furthest below its share of
// the span, the earliest item winning ties.
//
// The resolved sizes and the size of the span are only replaced
// once the constraints are known to be satisfiable.
func (s *Span) solve(size uint32) error {
	var mins, maxs, stretch uint64
	for i := range s.items {
		it := &s.items[i]
		if it.MaxSize < it.MinSize {
			it.MaxSize = it.MinSize
		}
		mins += uint64(it.MinSize)
		maxs += uint64(it.MaxSize)
		stretch += uint64(it.Stretch)
	}
	if mins > Unbounded {
		return errors.Wrapf(ErrInvalidConstraints, "minimum sizes add up to %d", mins)
	}
	if uint64(size) < mins {
		size = uint32(mins)
	}
	if len(s.items) > 0 && maxs < uint64(size) {
		return errors.Wrapf(ErrInvalidConstraints, "maximum sizes add up to %d, below %d", maxs, size)
	}
	s.size = size
	for i := range s.items {
		s.items[i].current = s.items[i].MinSize
	}
	if len(s.items) == 0 {
		return nil
	}
	// Zero total stretch splits the span evenly.
	even := stretch == 0
	if even {
		stretch = uint64(len(s.items))
	}
	for rem := uint64(s.size) - mins; rem > 0; rem-- {
		best := -1
		var bestScore deficit
		for i, it := range s.items {
			if it.saturated() {
				continue
			}
			w := uint64(it.Stretch)
			if even {
				w = 1
			}
			d := newDeficit(w, stretch, uint64(it.current), uint64(s.size))
			if best == -1 || d.above(bestScore) {
				best, bestScore = i, d
			}
		}
		// The sum of maximums covers the size, so some item is
		// always below its maximum here.
		s.items[best].current++
	}
	return nil
}

// deficit is the score stretch/total - current/size of an item,
// scaled by total*size to keep it exact:
//
//	stretch*size - current*total
//
// The two terms are kept apart so that comparisons never go
// negative.
type deficit struct {
	want, have uint128
}

func newDeficit(stretch, total, current, size uint64) deficit {
	return deficit{
		want: mul64(stretch, size),
		have: mul64(current, total),
	}
}

// above reports whether d is strictly greater than o.
func (d deficit) above(o deficit) bool {
	return d.want.add(o.have).cmp(o.want.add(d.have)) > 0
}

type uint128 struct {
	hi, lo uint64
}

func mul64(x, y uint64) uint128 {
	hi, lo := bits.Mul64(x, y)
	return uint128{hi: hi, lo: lo}
}

// add returns u+v. Operands stay far below 2^127 here.
func (u uint128) add(v uint128) uint128 {
	lo, c := bits.Add64(u.lo, v.lo, 0)
	hi, _ := bits.Add64(u.hi, v.hi, c)
	return uint128{hi: hi, lo: lo}
}

func (u uint128) cmp(v uint128) int {
	switch {
	case u.hi < v.hi:
		return -1
	case u.hi > v.hi:
		return 1
	case u.lo < v.lo:
		return -1
	case u.lo > v.lo:
		return 1
	default:
		return 0
	}
}
