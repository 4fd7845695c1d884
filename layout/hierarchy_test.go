// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"image"

	"github.com/pkg/errors"
)

// testHierarchy is a Hierarchy keeping transforms in a map and
// counting transform writes.
type testHierarchy struct {
	transforms map[ChildID]Transform
	writes     int
}

type testPainter Size

func newTestHierarchy() *testHierarchy {
	return &testHierarchy{transforms: make(map[ChildID]Transform)}
}

func (h *testHierarchy) AddWithTransform(child ChildID, t Transform) error {
	if _, ok := h.transforms[child]; ok {
		return errors.Wrapf(ErrDuplicateAssignment, "child %d", child)
	}
	h.transforms[child] = t
	return nil
}

func (h *testHierarchy) SetTransform(child ChildID, t Transform) error {
	if _, ok := h.transforms[child]; !ok {
		return errors.Wrapf(ErrOutOfRange, "child %d", child)
	}
	h.transforms[child] = t
	h.writes++
	return nil
}

func (h *testHierarchy) Remove(child ChildID) error {
	if _, ok := h.transforms[child]; !ok {
		return errors.Wrapf(ErrOutOfRange, "child %d", child)
	}
	delete(h.transforms, child)
	return nil
}

func (h *testHierarchy) Transform(child ChildID) (Transform, error) {
	t, ok := h.transforms[child]
	if !ok {
		return Transform{}, errors.Wrapf(ErrOutOfRange, "child %d", child)
	}
	return t, nil
}

func (p testPainter) Size() Size {
	return Size(p)
}

func tf(x, y int, w, h uint32) Transform {
	return Transform{Pos: image.Pt(x, y), Size: Size{W: w, H: h}}
}
