// SPDX-License-Identifier: Unlicense OR MIT

// Package term implements a paint.Painter drawing into a grid of
// terminal cells, one cell per pixel.
package term

import (
	"bufio"
	"image"
	"image/color"
	"io"

	ansi "github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"polyui.org/layout"
	"polyui.org/paint"
)

// Screen is a grid of cells.
type Screen struct {
	w, h  int
	cells []cell
}

type cell struct {
	r  rune
	fg ansi.Attribute
	bg ansi.Attribute
	// cont marks the second column of a wide rune.
	cont bool
}

// Painter draws onto a Screen.
type Painter struct {
	s      *Screen
	origin image.Point
	clip   image.Rectangle
	size   layout.Size
}

// NewScreen returns a blank screen of size.
func NewScreen(size layout.Size) *Screen {
	s := &Screen{w: int(size.W), h: int(size.H)}
	s.cells = make([]cell, s.w*s.h)
	for i := range s.cells {
		s.cells[i].r = ' '
	}
	return s
}

// Painter returns a Painter covering the whole screen.
func (s *Screen) Painter() *Painter {
	return &Painter{
		s:    s,
		clip: image.Rect(0, 0, s.w, s.h),
		size: layout.Size{W: uint32(s.w), H: uint32(s.h)},
	}
}

// Rune returns the rune at x, y. The second column of a wide
// rune reads as 0.
func (s *Screen) Rune(x, y int) rune {
	c := s.cells[y*s.w+x]
	if c.cont {
		return 0
	}
	return c.r
}

// Render writes the screen to w, one line per row. With colored
// set, cell colors are written as ANSI escapes.
func (s *Screen) Render(w io.Writer, colored bool) error {
	bw := bufio.NewWriter(w)
	for y := 0; y < s.h; y++ {
		row := s.cells[y*s.w : (y+1)*s.w]
		for x := 0; x < len(row); {
			// Runs of cells with the same colors share one escape.
			end := x + 1
			for end < len(row) && row[end].fg == row[x].fg && row[end].bg == row[x].bg {
				end++
			}
			var text []rune
			for _, c := range row[x:end] {
				if !c.cont {
					text = append(text, c.r)
				}
			}
			if colored && (row[x].fg != 0 || row[x].bg != 0) {
				attrs := []ansi.Attribute{}
				if row[x].fg != 0 {
					attrs = append(attrs, row[x].fg)
				}
				if row[x].bg != 0 {
					attrs = append(attrs, row[x].bg)
				}
				c := ansi.New(attrs...)
				c.EnableColor()
				if _, err := c.Fprint(bw, string(text)); err != nil {
					return err
				}
			} else if _, err := bw.WriteString(string(text)); err != nil {
				return err
			}
			x = end
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func (p *Painter) Size() layout.Size {
	return p.size
}

func (p *Painter) Sub(t layout.Transform) paint.Painter {
	return &Painter{
		s:      p.s,
		origin: p.origin.Add(t.Pos),
		clip:   t.Rect().Add(p.origin).Intersect(p.clip),
		size:   t.Size,
	}
}

// FillRect sets the background of the cells in r.
func (p *Painter) FillRect(r image.Rectangle, c color.NRGBA) {
	bg := nearest(c) + (ansi.BgBlack - ansi.FgBlack)
	p.each(r, func(cl *cell, x, y int) {
		cl.bg = bg
	})
}

// StrokeRect draws a box around the cells of r.
func (p *Painter) StrokeRect(r image.Rectangle, c color.NRGBA) {
	if r.Dx() < 1 || r.Dy() < 1 {
		return
	}
	fg := nearest(c)
	maxX, maxY := r.Max.X-1, r.Max.Y-1
	p.each(r, func(cl *cell, x, y int) {
		var ch rune
		switch {
		case x == r.Min.X && y == r.Min.Y:
			ch = '┌'
		case x == maxX && y == r.Min.Y:
			ch = '┐'
		case x == r.Min.X && y == maxY:
			ch = '└'
		case x == maxX && y == maxY:
			ch = '┘'
		case y == r.Min.Y || y == maxY:
			ch = '─'
		case x == r.Min.X || x == maxX:
			ch = '│'
		default:
			return
		}
		cl.r, cl.fg, cl.cont = ch, fg, false
	})
}

// Label writes s inside a one cell border, truncated to the
// painter width.
func (p *Painter) Label(s string, c color.NRGBA) {
	w := int(p.size.W) - 2
	if w <= 0 || p.size.H < 3 {
		return
	}
	s = runewidth.Truncate(s, w, "…")
	fg := nearest(c)
	x := 1
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if rw == 0 {
			continue
		}
		p.set(image.Pt(x, 1), cell{r: r, fg: fg})
		if rw == 2 {
			p.set(image.Pt(x+1, 1), cell{r: r, fg: fg, cont: true})
		}
		x += rw
	}
}

func (p *Painter) set(pt image.Point, c cell) {
	pt = pt.Add(p.origin)
	if !pt.In(p.clip) {
		return
	}
	cl := &p.s.cells[pt.Y*p.s.w+pt.X]
	c.bg = cl.bg
	*cl = c
}

func (p *Painter) each(r image.Rectangle, f func(c *cell, x, y int)) {
	abs := r.Add(p.origin).Intersect(p.clip)
	for y := abs.Min.Y; y < abs.Max.Y; y++ {
		for x := abs.Min.X; x < abs.Max.X; x++ {
			f(&p.s.cells[y*p.s.w+x], x-p.origin.X, y-p.origin.Y)
		}
	}
}

var palette = []struct {
	attr ansi.Attribute
	c    [3]uint8
}{
	{ansi.FgBlack, [3]uint8{0, 0, 0}},
	{ansi.FgRed, [3]uint8{0xcd, 0, 0}},
	{ansi.FgGreen, [3]uint8{0, 0xcd, 0}},
	{ansi.FgYellow, [3]uint8{0xcd, 0xcd, 0}},
	{ansi.FgBlue, [3]uint8{0, 0, 0xee}},
	{ansi.FgMagenta, [3]uint8{0xcd, 0, 0xcd}},
	{ansi.FgCyan, [3]uint8{0, 0xcd, 0xcd}},
	{ansi.FgWhite, [3]uint8{0xe5, 0xe5, 0xe5}},
}

// nearest maps c to the closest of the eight basic terminal
// foreground colors.
func nearest(c color.NRGBA) ansi.Attribute {
	best, bestDist := palette[0].attr, -1
	for _, e := range palette {
		dr := int(c.R) - int(e.c[0])
		dg := int(c.G) - int(e.c[1])
		db := int(c.B) - int(e.c[2])
		if d := dr*dr + dg*dg + db*db; bestDist == -1 || d < bestDist {
			best, bestDist = e.attr, d
		}
	}
	return best
}
