package geometry

import "github.com/df07/go-raycaster/pkg/core"

// NewSphere creates an ellipsoid with equal semi-axes
func NewSphere(center core.Vec3, radius float64, material *core.Material, color core.Vec3) *Ellipsoid {
	return NewEllipsoid(center, core.NewVec3(radius, radius, radius), material, color)
}
