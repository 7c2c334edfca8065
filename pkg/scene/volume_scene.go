package scene

import (
	"math"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/geometry"
	"github.com/df07/go-raycaster/pkg/lights"
	"github.com/df07/go-raycaster/pkg/volume"
)

// blobResolution is the voxel count per axis of the procedural density field
const blobResolution = 32

// NewBlobField creates a cubic field whose density falls off linearly from
// the centre and reaches zero at 1.5 half-widths, so every face of the cube
// still shows part of the blob.
func NewBlobField() *volume.Field {
	n := blobResolution
	half := float64(n-1) / 2
	radius := 1.5 * half

	data := make([]byte, n*n*n)
	for z := 0; z < n; z++ {
		for y := 0; y < n; y++ {
			for x := 0; x < n; x++ {
				r := math.Sqrt((float64(x)-half)*(float64(x)-half) +
					(float64(y)-half)*(float64(y)-half) +
					(float64(z)-half)*(float64(z)-half))
				data[z*n*n+y*n+x] = byte(255 * math.Max(0, 1-r/radius))
			}
		}
	}

	thickness := 2.0 / float64(n)
	field, err := volume.NewField([3]int{n, n, n}, [3]float64{thickness, thickness, thickness}, data)
	if err != nil {
		panic(err) // Dimensions are constant
	}
	return field
}

// NewVolumeScene creates a procedural density cube coloured by a band map,
// standing on a shaded floor.
func NewVolumeScene() *Scene {
	camera := &geometry.Camera{
		Position:           core.NewVec3(3, 2.5, 4),
		Direction:          core.NewVec3(-3, -2.5, -4),
		Up:                 core.NewVec3(0, 1, 0),
		ViewPlaneDistance:  1,
		ViewPlaneWidth:     0.8,
		ViewPlaneHeight:    0.6,
		FrontPlaneDistance: 0.1,
		BackPlaneDistance:  100,
	}

	bands := volume.NewBandColorMap(core.NewVec3(0.05, 0.05, 0.1)).
		Add(1, 60, core.NewVec3(0.2, 0.3, 0.8)).
		Add(61, 120, core.NewVec3(0.2, 0.8, 0.3)).
		Add(121, 180, core.NewVec3(0.9, 0.8, 0.2)).
		Add(181, 255, core.NewVec3(0.9, 0.2, 0.1))

	floor := core.NewMaterial(core.NewVec3(0.1, 0.1, 0.1), core.NewVec3(0.6, 0.6, 0.6), core.NewVec3(0, 0, 0), 1)

	mask := geometry.NewCTMask(NewBlobField(), core.NewVec3(-1, -1, -1), 1, bands)

	return NewScene("volume", camera).
		Add(mask, geometry.NewPlane(core.NewVec3(0, -1.01, 0), core.NewVec3(0, 1, 0), floor, core.NewVec3(0.6, 0.6, 0.6))).
		AddLight(lights.NewWhiteLight(core.NewVec3(2, 6, 3), 1))
}
