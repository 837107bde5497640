// Package codel turns program images into codel grids.
//
// An image is divided into square codels of a fixed pixel size. The top-left
// pixel of every codel decides its colour; pixels in partial codels at the
// right and bottom edges are ignored. PNG, JPEG, GIF, BMP, TIFF and WebP are
// understood. Files ending in .txt are read in the interpreter's text grid
// format instead.
package codel

import (
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"piet/internal/interpreter"
)

var (
	ErrCodelSize = errors.New("codel size must be positive")
	ErrTooSmall  = errors.New("image is smaller than one codel")
)

// Options control how pixels become codels.
type Options struct {
	// Size is the edge length of a codel in pixels.
	Size int
	// Unknown is the colour given to pixels that are not one of the 20
	// program colours. It must be White or Black.
	Unknown interpreter.Color
}

// Load reads the program at path.
func Load(path string, opts Options) (*interpreter.Grid, error) {
	if strings.EqualFold(filepath.Ext(path), ".txt") {
		src, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		return interpreter.ParseGrid(filepath.Base(path), string(src))
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	grid, err := Decode(f, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return grid, nil
}

// Decode reads an encoded image from r and samples it into a grid.
func Decode(r io.Reader, opts Options) (*interpreter.Grid, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, err
	}
	return Sample(img, opts)
}

// Sample converts img into a grid of codels.
func Sample(img image.Image, opts Options) (*interpreter.Grid, error) {
	if opts.Size <= 0 {
		return nil, ErrCodelSize
	}
	b := img.Bounds()
	cols, rows := b.Dx()/opts.Size, b.Dy()/opts.Size
	if cols == 0 || rows == 0 {
		return nil, fmt.Errorf("%dx%d pixels with codel size %d: %w", b.Dx(), b.Dy(), opts.Size, ErrTooSmall)
	}
	grid := make([][]interpreter.Color, rows)
	for y := range grid {
		grid[y] = make([]interpreter.Color, cols)
		for x := range grid[y] {
			r, g, bl, _ := img.At(b.Min.X+x*opts.Size, b.Min.Y+y*opts.Size).RGBA()
			c, ok := interpreter.ColorFromRGB(uint8(r>>8), uint8(g>>8), uint8(bl>>8))
			if !ok {
				c = opts.Unknown
			}
			grid[y][x] = c
		}
	}
	return interpreter.NewGrid(grid)
}
