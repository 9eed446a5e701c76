// Package artimage renders randomart grids as paletted Go images.
//
// Each board cell becomes a square block of scale×scale pixels. Visit
// densities map to a 15-step grayscale ramp and the start/end markers to
// green and red. The Image type implements image.PalettedImage, so it
// works with image/draw, image/png and display drivers that accept an
// image.Image.
package artimage

import (
	"image"
	"image/color"

	"github.com/flavioheleno/randomart"
)

// Level is the paletted color of a single board cell: visit densities 0-14
// on a grayscale ramp, plus the start and end markers.
type Level uint8

const (
	// LevelStart is the palette index of the walk's start marker (green).
	LevelStart Level = 15
	// LevelEnd is the palette index of the walk's end marker (red).
	LevelEnd Level = 16

	levels = 17
)

// Palette holds the 17 colors used by Image, indexed by Level.
var Palette = buildPalette()

func buildPalette() color.Palette {
	p := make(color.Palette, levels)
	for i := 0; i < 15; i++ {
		y := uint8(i * 255 / 14)
		p[i] = color.RGBA{R: y, G: y, B: y, A: 0xFF}
	}
	p[LevelStart] = color.RGBA{G: 0xAA, A: 0xFF}
	p[LevelEnd] = color.RGBA{R: 0xAA, A: 0xFF}
	return p
}

// RGBA looks the level up in Palette. Out-of-range levels clamp to the end
// marker.
func (l Level) RGBA() (r, g, b, a uint32) {
	if l >= levels {
		l = LevelEnd
	}
	return Palette[l].RGBA()
}

// toLevel converts any color.Color to the nearest Level.
func toLevel(c color.Color) color.Color {
	if l, ok := c.(Level); ok {
		if l >= levels {
			l = LevelEnd
		}
		return l
	}
	return Level(Palette.Index(c))
}

// LevelModel converts colors to Level.
var LevelModel = color.ModelFunc(toLevel)

// Image is a paletted image of the randomart board with scale pixels per
// cell. Pix holds one Level per board cell in board order, so all pixels
// of a block share a single backing byte.
type Image struct {
	Pix   []uint8 // one Level per board cell, row-major
	Scale int     // pixels per cell side
	Rect  image.Rectangle
}

// New creates a blank board image. scale must be positive.
func New(scale int) *Image {
	if scale < 1 {
		panic("artimage: scale must be positive")
	}
	return &Image{
		Pix:   make([]uint8, randomart.Cells),
		Scale: scale,
		Rect:  image.Rect(0, 0, randomart.Width*scale, randomart.Height*scale),
	}
}

// FromGrid builds an image of an accumulated grid.
func FromGrid(g *randomart.Grid, scale int) *Image {
	img := New(scale)
	for i, c := range g {
		img.Pix[i] = uint8(cellLevel(c))
	}
	return img
}

// cellLevel maps a grid cell to its palette level.
func cellLevel(c randomart.Cell) Level {
	switch c {
	case randomart.CellStart:
		return LevelStart
	case randomart.CellEnd:
		return LevelEnd
	}
	return Level(c)
}

// ColorModel returns the color model of the image.
func (p *Image) ColorModel() color.Model {
	return LevelModel
}

// Bounds returns the image bounds.
func (p *Image) Bounds() image.Rectangle {
	return p.Rect
}

// At returns the color of the pixel at (x, y). It implements the
// image.Image interface.
func (p *Image) At(x, y int) color.Color {
	return p.LevelAt(x, y)
}

// LevelAt returns the Level of the pixel at (x, y). Pixels outside the
// bounds are level 0.
func (p *Image) LevelAt(x, y int) Level {
	idx, ok := p.cellAt(x, y)
	if !ok {
		return 0
	}
	return Level(p.Pix[idx])
}

// ColorIndexAt returns the palette index of the pixel at (x, y). Together
// with At it implements image.PalettedImage.
func (p *Image) ColorIndexAt(x, y int) uint8 {
	return uint8(p.LevelAt(x, y))
}

// Set sets the color of the cell block containing (x, y).
func (p *Image) Set(x, y int, c color.Color) {
	p.SetLevel(x, y, LevelModel.Convert(c).(Level))
}

// SetLevel sets the Level of the cell block containing (x, y). This is
// faster than Set as it skips color conversion.
func (p *Image) SetLevel(x, y int, l Level) {
	idx, ok := p.cellAt(x, y)
	if !ok {
		return
	}
	if l >= levels {
		l = LevelEnd
	}
	p.Pix[idx] = uint8(l)
}

// cellAt returns the board index of the cell block containing pixel (x, y).
func (p *Image) cellAt(x, y int) (int, bool) {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return 0, false
	}
	return x/p.Scale + randomart.Width*(y/p.Scale), true
}
