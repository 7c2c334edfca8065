package geometry

import (
	"github.com/pkg/errors"

	"github.com/df07/go-raycaster/pkg/core"
)

// ErrDegenerateCamera is returned when the camera basis cannot be built
var ErrDegenerateCamera = errors.New("geometry: camera direction and up are parallel or zero")

// Camera is a pinhole camera with a rectangular view plane and near/far
// clip distances measured along each primary ray.
type Camera struct {
	Position  core.Vec3
	Direction core.Vec3
	Up        core.Vec3

	ViewPlaneDistance float64
	ViewPlaneWidth    float64
	ViewPlaneHeight   float64

	FrontPlaneDistance float64
	BackPlaneDistance  float64
}

// Normalized returns a copy whose Direction and Up form an orthonormal pair.
// Up is re-derived from the right vector so it is perpendicular to Direction.
func (c Camera) Normalized() (Camera, error) {
	direction := c.Direction.Normalize()
	right := direction.Cross(c.Up).Normalize()
	if direction.LengthSquared() == 0 || right.LengthSquared() == 0 {
		return c, ErrDegenerateCamera
	}

	c.Direction = direction
	c.Up = right.Cross(direction).Normalize()
	return c, nil
}

// Right returns normalize(Direction × Up)
func (c Camera) Right() core.Vec3 {
	return c.Direction.Cross(c.Up).Normalize()
}

// ViewPlanePoint returns the world position of view-plane coordinates (x, y)
func (c Camera) ViewPlanePoint(x, y float64) core.Vec3 {
	return c.Position.
		Add(c.Direction.Multiply(c.ViewPlaneDistance)).
		Add(c.Right().Multiply(x)).
		Add(c.Up.Multiply(y))
}
