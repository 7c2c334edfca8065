package lights

import "github.com/df07/go-raycaster/pkg/core"

// Intersector finds the nearest visible hit along a ray. The scene implements it.
type Intersector interface {
	FindNearest(ray core.Ray, minDist, maxDist float64) core.Intersection
}

// Light is a point light with separate Phong intensities
type Light struct {
	Position  core.Vec3
	Ambient   core.Vec3
	Diffuse   core.Vec3
	Specular  core.Vec3
	Intensity float64 // Scalar multiplier applied to the running total
}

// NewLight creates a new point light
func NewLight(position, ambient, diffuse, specular core.Vec3, intensity float64) Light {
	return Light{
		Position:  position,
		Ambient:   ambient,
		Diffuse:   diffuse,
		Specular:  specular,
		Intensity: intensity,
	}
}

// NewWhiteLight creates a light with equal ambient, diffuse and specular intensity
func NewWhiteLight(position core.Vec3, intensity float64) Light {
	white := core.NewVec3(1, 1, 1)
	return NewLight(position, white, white, white, intensity)
}
