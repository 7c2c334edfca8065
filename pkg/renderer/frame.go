package renderer

import (
	"image"
	"image/color"

	"github.com/df07/go-raycaster/pkg/core"
)

// Frame is a pre-sized colour buffer in raster order. Tiles write to
// disjoint regions so no locking is needed.
type Frame struct {
	Width  int
	Height int
	Pixels []core.Vec3
}

// NewFrame allocates a black frame
func NewFrame(width, height int) *Frame {
	return &Frame{
		Width:  width,
		Height: height,
		Pixels: make([]core.Vec3, width*height),
	}
}

// At returns the colour of pixel (x, y)
func (f *Frame) At(x, y int) core.Vec3 {
	return f.Pixels[y*f.Width+x]
}

// Set stores the colour of pixel (x, y)
func (f *Frame) Set(x, y int, c core.Vec3) {
	f.Pixels[y*f.Width+x] = c
}

// AverageLuminance returns the mean luma of the frame with colours clamped to [0, 1]
func (f *Frame) AverageLuminance() float64 {
	if len(f.Pixels) == 0 {
		return 0
	}

	var total float64
	for _, p := range f.Pixels {
		total += p.Clamp(0, 1).Luminance()
	}
	return total / float64(len(f.Pixels))
}

// ToImage converts the frame to 8-bit RGBA. Colours are clamped to [0, 1]
// without gamma correction.
func (f *Frame) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			img.SetRGBA(x, y, vec3ToColor(f.At(x, y)))
		}
	}
	return img
}

// vec3ToColor converts a Vec3 color to RGBA with clamping
func vec3ToColor(colorVec core.Vec3) color.RGBA {
	colorVec = colorVec.Clamp(0.0, 1.0)

	return color.RGBA{
		R: uint8(255 * colorVec.X),
		G: uint8(255 * colorVec.Y),
		B: uint8(255 * colorVec.Z),
		A: 255,
	}
}
