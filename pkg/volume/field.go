package volume

import (
	"math"

	"github.com/pkg/errors"

	"github.com/df07/go-raycaster/pkg/core"
)

// Field is a discretely sampled density grid stored as bytes in [z][y][x]
// order. Lookups outside the grid return 0 (empty space).
type Field struct {
	Resolution [3]int     // Voxel count along X, Y, Z
	Thickness  [3]float64 // Voxel size along X, Y, Z
	Data       []byte
}

// NewField creates a field and checks that data covers every voxel
func NewField(resolution [3]int, thickness [3]float64, data []byte) (*Field, error) {
	for axis, r := range resolution {
		if r <= 0 {
			return nil, errors.Errorf("volume: non-positive resolution %d on axis %d", r, axis)
		}
		if thickness[axis] <= 0 {
			return nil, errors.Errorf("volume: non-positive slice thickness %g on axis %d", thickness[axis], axis)
		}
	}

	if want := resolution[0] * resolution[1] * resolution[2]; len(data) < want {
		return nil, errors.Errorf("volume: have %d samples, need %d", len(data), want)
	}

	return &Field{Resolution: resolution, Thickness: thickness, Data: data}, nil
}

// Len returns the number of voxels in the grid
func (f *Field) Len() int {
	return f.Resolution[0] * f.Resolution[1] * f.Resolution[2]
}

// Value returns the density at voxel (x, y, z), or 0 outside the grid
func (f *Field) Value(x, y, z int) uint8 {
	if x < 0 || y < 0 || z < 0 || x >= f.Resolution[0] || y >= f.Resolution[1] || z >= f.Resolution[2] {
		return 0
	}
	return f.Data[z*f.Resolution[1]*f.Resolution[0]+y*f.Resolution[0]+x]
}

// Gradient returns the normalized central-difference density gradient at a voxel
func (f *Field) Gradient(x, y, z int) core.Vec3 {
	x0 := float64(f.Value(x-1, y, z))
	x1 := float64(f.Value(x+1, y, z))
	y0 := float64(f.Value(x, y-1, z))
	y1 := float64(f.Value(x, y+1, z))
	z0 := float64(f.Value(x, y, z-1))
	z1 := float64(f.Value(x, y, z+1))

	return core.NewVec3(x1-x0, y1-y0, z1-z0).Normalize()
}

// Extent returns the unscaled world size of the grid (resolution * thickness)
func (f *Field) Extent() core.Vec3 {
	return core.NewVec3(
		float64(f.Resolution[0])*f.Thickness[0],
		float64(f.Resolution[1])*f.Thickness[1],
		float64(f.Resolution[2])*f.Thickness[2],
	)
}

// Index maps a local offset (world position minus grid origin) to a voxel index
// for a grid drawn at the given scale.
func (f *Field) Index(local core.Vec3, scale float64) (x, y, z int) {
	return int(math.Floor(local.X / f.Thickness[0] / scale)),
		int(math.Floor(local.Y / f.Thickness[1] / scale)),
		int(math.Floor(local.Z / f.Thickness[2] / scale))
}
