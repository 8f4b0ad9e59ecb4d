// Package renderer drives the tile-parallel orchestrator: it decomposes the
// frame into tiles, runs a fixed worker pool over them, accumulates samples
// per pixel, and tonemaps the result into the final frame buffer.
package renderer

// Tile is a rectangular region of the frame buffer, with bounds clamped to
// the image once at construction time rather than re-clamped per pixel.
type Tile struct {
	X0, Y0, X1, Y1 int // half-open: [X0,X1) x [Y0,Y1)
}

// Width and Height report the tile's clamped pixel extents.
func (t Tile) Width() int  { return t.X1 - t.X0 }
func (t Tile) Height() int { return t.Y1 - t.Y0 }

// BuildTiles decomposes a width x height image into tileSize x tileSize
// tiles, clamping the last tile in each row/column to the image bounds here
// — once, at enqueue time — instead of per pixel inside the sampling loop.
func BuildTiles(width, height, tileSize int) []Tile {
	if tileSize <= 0 {
		tileSize = width
	}

	var tiles []Tile
	for y0 := 0; y0 < height; y0 += tileSize {
		y1 := y0 + tileSize
		if y1 > height {
			y1 = height
		}
		for x0 := 0; x0 < width; x0 += tileSize {
			x1 := x0 + tileSize
			if x1 > width {
				x1 = width
			}
			tiles = append(tiles, Tile{X0: x0, Y0: y0, X1: x1, Y1: y1})
		}
	}
	return tiles
}
