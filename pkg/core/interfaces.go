package core

import "github.com/pkg/errors"

// ErrNotImplemented is returned by primitives that cannot compute intersections.
var ErrNotImplemented = errors.New("core: intersection not implemented")

// Shape is anything a ray can be intersected with.
//
// Hit returns None when the ray does not hit the shape within [minDist, maxDist].
// A non-nil error means the shape failed to compute at all; callers treat it
// as "no intersection" for that shape only.
type Shape interface {
	Hit(ray Ray, minDist, maxDist float64) (Intersection, error)
}

// Material holds Phong reflectance coefficients
type Material struct {
	Ambient   Vec3
	Diffuse   Vec3
	Specular  Vec3
	Shininess float64
}

// NewMaterial creates a new material
func NewMaterial(ambient, diffuse, specular Vec3, shininess float64) *Material {
	return &Material{
		Ambient:   ambient,
		Diffuse:   diffuse,
		Specular:  specular,
		Shininess: shininess,
	}
}

// Intersection is the outcome of a ray-shape test. The zero value is None.
type Intersection struct {
	Valid    bool
	Visible  bool
	Shape    Shape     // Shape that produced the hit
	Ray      Ray       // Ray the hit was computed for
	T        float64   // Parametric distance along Ray
	Normal   Vec3      // Unit outward surface normal
	Material *Material // nil for self-coloured shapes
	Color    Vec3      // Surface colour at the hit
}

// None is the "no intersection" result
var None = Intersection{}

// NewHit creates a valid, visible intersection
func NewHit(shape Shape, ray Ray, t float64, normal Vec3, material *Material, color Vec3) Intersection {
	return Intersection{
		Valid:    true,
		Visible:  true,
		Shape:    shape,
		Ray:      ray,
		T:        t,
		Normal:   normal,
		Material: material,
		Color:    color,
	}
}

// IsHit reports whether the intersection is both valid and visible
func (i Intersection) IsHit() bool {
	return i.Valid && i.Visible
}

// Position returns the world-space hit point
func (i Intersection) Position() Vec3 {
	return i.Ray.At(i.T)
}
