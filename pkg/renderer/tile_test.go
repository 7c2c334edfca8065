package renderer

import (
	"image"
	"testing"
)

func TestNewTileGrid(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		tileSize      int
		expectedTiles int
	}{
		{"Exact fit", 64, 64, 32, 4},
		{"Partial edge tiles", 70, 40, 32, 6},
		{"Single tile", 10, 10, 32, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tiles := NewTileGrid(tt.width, tt.height, tt.tileSize)
			if len(tiles) != tt.expectedTiles {
				t.Fatalf("Expected %d tiles, got %d", tt.expectedTiles, len(tiles))
			}

			// Tiles must cover every pixel exactly once
			covered := make([]int, tt.width*tt.height)
			for i, tile := range tiles {
				if tile.ID != i {
					t.Errorf("Tile %d has ID %d", i, tile.ID)
				}
				if !tile.Bounds.In(image.Rect(0, 0, tt.width, tt.height)) {
					t.Errorf("Tile %d bounds %v exceed the image", i, tile.Bounds)
				}
				for y := tile.Bounds.Min.Y; y < tile.Bounds.Max.Y; y++ {
					for x := tile.Bounds.Min.X; x < tile.Bounds.Max.X; x++ {
						covered[y*tt.width+x]++
					}
				}
			}
			for i, n := range covered {
				if n != 1 {
					t.Fatalf("Pixel %d covered %d times", i, n)
				}
			}
		})
	}
}
