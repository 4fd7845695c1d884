// SPDX-License-Identifier: Unlicense OR MIT

package paint

import (
	"image"
	"image/color"

	"polyui.org/layout"
)

// OpKind is the kind of a recorded Op.
type OpKind uint8

const (
	OpFill OpKind = iota
	OpStroke
	OpLabel
)

// Op is a drawing operation recorded by a Recorder. Rect is in the
// coordinates of the root Recorder.
type Op struct {
	Kind  OpKind
	Rect  image.Rectangle
	Color color.NRGBA
	Text  string
}

// Recorder is a Painter that records operations instead of
// drawing them.
type Recorder struct {
	ops    *[]Op
	origin image.Point
	size   layout.Size
}

// NewRecorder returns a Recorder of the given size.
func NewRecorder(size layout.Size) *Recorder {
	return &Recorder{ops: new([]Op), size: size}
}

func (r *Recorder) Size() layout.Size {
	return r.size
}

func (r *Recorder) Sub(t layout.Transform) Painter {
	return &Recorder{
		ops:    r.ops,
		origin: r.origin.Add(t.Pos),
		size:   t.Size,
	}
}

func (r *Recorder) FillRect(rect image.Rectangle, c color.NRGBA) {
	r.add(Op{Kind: OpFill, Rect: rect.Add(r.origin), Color: c})
}

func (r *Recorder) StrokeRect(rect image.Rectangle, c color.NRGBA) {
	r.add(Op{Kind: OpStroke, Rect: rect.Add(r.origin), Color: c})
}

func (r *Recorder) Label(s string, c color.NRGBA) {
	r.add(Op{Kind: OpLabel, Rect: Bounds(r).Add(r.origin), Color: c, Text: s})
}

// Ops returns the operations recorded by r and its sub painters.
func (r *Recorder) Ops() []Op {
	return append([]Op(nil), *r.ops...)
}

// Reset discards the recorded operations.
func (r *Recorder) Reset() {
	*r.ops = (*r.ops)[:0]
}

func (r *Recorder) add(op Op) {
	*r.ops = append(*r.ops, op)
}

func (k OpKind) String() string {
	switch k {
	case OpFill:
		return "Fill"
	case OpStroke:
		return "Stroke"
	case OpLabel:
		return "Label"
	default:
		panic("unreachable")
	}
}
