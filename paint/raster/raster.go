// SPDX-License-Identifier: Unlicense OR MIT

// Package raster implements a paint.Painter drawing into an RGBA
// image.
package raster

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/pkg/errors"
	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/tiff"

	"polyui.org/layout"
	"polyui.org/paint"
)

// Painter draws into an image. A sub painter draws into the same
// image, clipped to its transform.
type Painter struct {
	dst *image.RGBA
	// origin is the position of the painter in dst, and clip the
	// part of dst it may draw to.
	origin image.Point
	clip   image.Rectangle
	size   layout.Size
}

// Format is an image encoding supported by Encode.
type Format string

const (
	PNG  Format = "png"
	BMP  Format = "bmp"
	TIFF Format = "tiff"
)

var face = basicfont.Face7x13

// New returns a painter drawing into a new image of the given
// size, cleared to bg.
func New(size layout.Size, bg color.NRGBA) *Painter {
	dst := image.NewRGBA(image.Rectangle{Max: size.Point()})
	draw.Draw(dst, dst.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	return &Painter{dst: dst, clip: dst.Bounds(), size: size}
}

// Image returns the image painted into.
func (p *Painter) Image() *image.RGBA {
	return p.dst
}

func (p *Painter) Size() layout.Size {
	return p.size
}

func (p *Painter) Sub(t layout.Transform) paint.Painter {
	origin := p.origin.Add(t.Pos)
	return &Painter{
		dst:    p.dst,
		origin: origin,
		clip:   t.Rect().Add(p.origin).Intersect(p.clip),
		size:   t.Size,
	}
}

func (p *Painter) FillRect(r image.Rectangle, c color.NRGBA) {
	r = r.Add(p.origin).Intersect(p.clip)
	if r.Empty() {
		return
	}
	draw.Draw(p.dst, r, image.NewUniform(c), image.Point{}, draw.Over)
}

// StrokeRect draws the one pixel wide inner border of r.
func (p *Painter) StrokeRect(r image.Rectangle, c color.NRGBA) {
	if r.Empty() {
		return
	}
	p.FillRect(image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+1), c)
	p.FillRect(image.Rect(r.Min.X, r.Max.Y-1, r.Max.X, r.Max.Y), c)
	p.FillRect(image.Rect(r.Min.X, r.Min.Y+1, r.Min.X+1, r.Max.Y-1), c)
	p.FillRect(image.Rect(r.Max.X-1, r.Min.Y+1, r.Max.X, r.Max.Y-1), c)
}

// Label draws s in a fixed 7x13 font, inset by 2 pixels and
// clipped to the painter.
func (p *Painter) Label(s string, c color.NRGBA) {
	if p.clip.Empty() {
		return
	}
	d := font.Drawer{
		Dst:  p.dst.SubImage(p.clip).(*image.RGBA),
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(p.origin.X+2, p.origin.Y+2+face.Ascent),
	}
	d.DrawString(s)
}

// Encode writes the painted image to w in format f.
func (p *Painter) Encode(w io.Writer, f Format) error {
	var err error
	switch f {
	case PNG:
		err = png.Encode(w, p.dst)
	case BMP:
		err = bmp.Encode(w, p.dst)
	case TIFF:
		err = tiff.Encode(w, p.dst, &tiff.Options{Compression: tiff.Deflate})
	default:
		return errors.Errorf("raster: unknown image format %q", f)
	}
	return errors.Wrapf(err, "raster: encode %s", f)
}
