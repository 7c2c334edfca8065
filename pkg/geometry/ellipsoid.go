package geometry

import (
	"math"

	"github.com/df07/go-raycaster/pkg/core"
)

// Ellipsoid is an axis-aligned ellipsoid given by its center and per-axis
// semi-axis lengths.
//
// Intersections are solved in the frame where the ellipsoid becomes the unit
// sphere. The transformed direction is left unnormalized so the
// returned t stays in the units of the caller's ray: ray.At(t) is the hit
// point and minDist/maxDist are compared against the same scale.
type Ellipsoid struct {
	Center   core.Vec3
	SemiAxes core.Vec3
	Material *core.Material
	Color    core.Vec3
}

// NewEllipsoid creates a new ellipsoid
func NewEllipsoid(center, semiAxes core.Vec3, material *core.Material, color core.Vec3) *Ellipsoid {
	return &Ellipsoid{
		Center:   center,
		SemiAxes: semiAxes,
		Material: material,
		Color:    color,
	}
}

// Valid reports whether every semi-axis is positive and finite
func (e *Ellipsoid) Valid() bool {
	for axis := 0; axis < 3; axis++ {
		s := e.SemiAxes.Component(axis)
		if !(s > 0) || math.IsInf(s, 1) {
			return false
		}
	}
	return true
}

// Roots returns both solutions t1 <= t2 of the ray/ellipsoid quadratic.
// ok is false when the ray misses (negative discriminant), has no direction,
// or the ellipsoid is degenerate.
func (e *Ellipsoid) Roots(ray core.Ray) (t1, t2 float64, ok bool) {
	if !e.Valid() {
		return 0, 0, false
	}

	// Map into the unit-sphere frame
	origin := ray.Origin.Subtract(e.Center).DivideVec(e.SemiAxes)
	direction := ray.Direction.DivideVec(e.SemiAxes)

	// Quadratic equation coefficients: at² + bt + c = 0
	a := direction.Dot(direction)
	b := 2 * origin.Dot(direction)
	c := origin.Dot(origin) - 1

	if !(a > 0) || math.IsInf(a, 1) {
		return 0, 0, false
	}

	// NaN fails this test as well
	discriminant := b*b - 4*a*c
	if !(discriminant >= 0) {
		return 0, 0, false
	}

	sqrtD := math.Sqrt(discriminant)
	t1 = (-b - sqrtD) / (2 * a)
	t2 = (-b + sqrtD) / (2 * a)
	return t1, t2, !math.IsNaN(t1) && !math.IsNaN(t2)
}

// Hit returns the nearest intersection with t in [minDist, maxDist]
func (e *Ellipsoid) Hit(ray core.Ray, minDist, maxDist float64) (core.Intersection, error) {
	t1, t2, ok := e.Roots(ray)
	if !ok {
		return core.None, nil
	}

	t := t2
	if t1 >= minDist {
		t = t1
	}
	if !(t >= minDist && t <= maxDist) {
		return core.None, nil
	}

	normal := e.Normal(ray.At(t))
	return core.NewHit(e, ray, t, normal, e.Material, e.Color), nil
}

// Normal returns the outward unit normal at a surface point: the normalized
// gradient of the implicit function sum((p-c)²/s²) - 1.
func (e *Ellipsoid) Normal(point core.Vec3) core.Vec3 {
	return point.Subtract(e.Center).DivideVec(e.SemiAxes.Square()).Normalize()
}

// Implicit evaluates sum((p-c)²/s²) - 1, which is zero on the surface
func (e *Ellipsoid) Implicit(point core.Vec3) float64 {
	local := point.Subtract(e.Center).DivideVec(e.SemiAxes)
	return local.Dot(local) - 1
}

