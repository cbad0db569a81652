// Package raster draws a decoded chart as a PNG image.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Options control the raster output.
type Options struct {
	// Size is the font size in points at 72 DPI.
	Size float64
	// Padding is the margin around the chart, in pixels.
	Padding int
	// Background fills the image before drawing.
	Background color.Color
	// Colors maps a marker to its glyph colour. Unlisted markers use Ink.
	Colors map[rune]color.Color
	// Ink is the default glyph colour.
	Ink color.Color
}

// DefaultOptions returns a parchment palette.
func DefaultOptions() Options {
	return Options{
		Size:       18,
		Padding:    12,
		Background: color.RGBA{R: 0xf5, G: 0xe6, B: 0xc8, A: 0xff},
		Ink:        color.RGBA{R: 0x5b, G: 0x43, B: 0x2c, A: 0xff},
		Colors: map[rune]color.Color{
			'1': color.RGBA{R: 0x1d, G: 0x4e, B: 0xd8, A: 0xff},
			'2': color.RGBA{R: 0xbe, G: 0x18, B: 0x5d, A: 0xff},
			'3': color.RGBA{R: 0x7e, G: 0x22, B: 0xce, A: 0xff},
			'x': color.RGBA{R: 0xdc, G: 0x26, B: 0x26, A: 0xff},
		},
	}
}

// Draw rasterizes a grid of markers, one glyph per cell, using Go Mono.
func Draw(cells [][]rune, opts Options) (*image.RGBA, error) {
	parsed, err := opentype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    opts.Size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create font face: %w", err)
	}
	defer func() {
		_ = face.Close()
	}()

	metrics := face.Metrics()
	cellW := font.MeasureString(face, "M").Ceil()
	cellH := metrics.Height.Ceil()

	cols := 0
	for _, row := range cells {
		cols = max(cols, len(row))
	}
	width := 2*opts.Padding + cols*cellW
	height := 2*opts.Padding + len(cells)*cellH

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)

	drawer := &font.Drawer{Dst: img, Face: face}
	for r, row := range cells {
		baseline := opts.Padding + r*cellH + metrics.Ascent.Ceil()
		for c, marker := range row {
			if marker == ' ' {
				continue
			}
			ink := opts.Ink
			if col, ok := opts.Colors[marker]; ok {
				ink = col
			}
			drawer.Src = image.NewUniform(ink)
			drawer.Dot = fixed.P(opts.Padding+c*cellW, baseline)
			drawer.DrawString(string(marker))
		}
	}
	return img, nil
}

// Encode draws cells and writes the PNG to w.
func Encode(w io.Writer, cells [][]rune, opts Options) error {
	img, err := Draw(cells, opts)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}
