package geometry

import (
	"math"

	"github.com/df07/go-raycaster/pkg/core"
)

// Plane represents an infinite plane defined by a point and normal
type Plane struct {
	Point    core.Vec3 // A point on the plane
	Normal   core.Vec3 // Normal vector (normalized)
	Material *core.Material
	Color    core.Vec3
}

// NewPlane creates a new plane
func NewPlane(point, normal core.Vec3, material *core.Material, color core.Vec3) *Plane {
	return &Plane{
		Point:    point,
		Normal:   normal.Normalize(), // Ensure normal is normalized
		Material: material,
		Color:    color,
	}
}

// Hit tests if a ray intersects with the plane. The reported normal faces the
// side the ray arrives from.
func (p *Plane) Hit(ray core.Ray, minDist, maxDist float64) (core.Intersection, error) {
	denominator := ray.Direction.Dot(p.Normal)

	// Parallel rays never cross the plane
	if math.Abs(denominator) < 1e-8 {
		return core.None, nil
	}

	// t = (point_on_plane - ray_origin) · normal / (ray_direction · normal)
	t := p.Point.Subtract(ray.Origin).Dot(p.Normal) / denominator
	if t < minDist || t > maxDist {
		return core.None, nil
	}

	normal := p.Normal
	if denominator > 0 {
		normal = normal.Negate()
	}

	return core.NewHit(p, ray, t, normal, p.Material, p.Color), nil
}
