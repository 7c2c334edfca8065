package scene

import (
	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/geometry"
	"github.com/df07/go-raycaster/pkg/lights"
)

// NewDefaultScene creates three ellipsoids resting on a ground plane, lit by two lights
func NewDefaultScene() *Scene {
	camera := &geometry.Camera{
		Position:           core.NewVec3(0, 1.5, 6),
		Direction:          core.NewVec3(0, -0.2, -1), // Look slightly down at the group
		Up:                 core.NewVec3(0, 1, 0),
		ViewPlaneDistance:  1,
		ViewPlaneWidth:     1.6,
		ViewPlaneHeight:    1.2,
		FrontPlaneDistance: 0.1,
		BackPlaneDistance:  100,
	}

	s := NewScene("default", camera)

	// Create materials
	ground := core.NewMaterial(core.NewVec3(0.1, 0.1, 0.1), core.NewVec3(0.5, 0.5, 0.5), core.NewVec3(0, 0, 0), 1)
	red := core.NewMaterial(core.NewVec3(0.1, 0.02, 0.02), core.NewVec3(0.7, 0.15, 0.1), core.NewVec3(0.5, 0.5, 0.5), 32)
	blue := core.NewMaterial(core.NewVec3(0.02, 0.02, 0.1), core.NewVec3(0.1, 0.2, 0.6), core.NewVec3(0.8, 0.8, 0.8), 64)
	gold := core.NewMaterial(core.NewVec3(0.1, 0.08, 0.02), core.NewVec3(0.6, 0.5, 0.15), core.NewVec3(0.3, 0.3, 0.2), 8)

	s.Add(
		geometry.NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), ground, core.NewVec3(0.5, 0.5, 0.5)),
		geometry.NewSphere(core.NewVec3(-1.3, 0.6, 0), 0.6, red, core.NewVec3(0.7, 0.15, 0.1)),
		// Tall ellipsoid in the middle
		geometry.NewEllipsoid(core.NewVec3(0, 0.9, -0.8), core.NewVec3(0.5, 0.9, 0.5), blue, core.NewVec3(0.1, 0.2, 0.6)),
		// Flattened ellipsoid in front
		geometry.NewEllipsoid(core.NewVec3(1.2, 0.3, 0.6), core.NewVec3(0.8, 0.3, 0.5), gold, core.NewVec3(0.6, 0.5, 0.15)),
	)

	s.AddLight(
		lights.NewWhiteLight(core.NewVec3(-4, 6, 4), 1.0),
		lights.NewLight(core.NewVec3(5, 3, 2),
			core.NewVec3(0, 0, 0), core.NewVec3(0.4, 0.4, 0.5), core.NewVec3(0.3, 0.3, 0.3), 1.0),
	)

	return s
}

// NewSphereScene creates a unit sphere at the origin seen from above, lit
// from directly over the camera by a single white light.
func NewSphereScene() *Scene {
	camera := &geometry.Camera{
		Position:           core.NewVec3(0, 3, 0),
		Direction:          core.NewVec3(0, -1, 0),
		Up:                 core.NewVec3(0, 0, 1),
		ViewPlaneDistance:  1,
		ViewPlaneWidth:     1,
		ViewPlaneHeight:    1,
		FrontPlaneDistance: 0.1,
		BackPlaneDistance:  100,
	}

	diffuseWhite := core.NewMaterial(core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 1), core.NewVec3(0, 0, 0), 1)

	return NewScene("sphere", camera).
		Add(geometry.NewEllipsoid(core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 1), diffuseWhite, core.NewVec3(1, 1, 1))).
		AddLight(lights.NewWhiteLight(core.NewVec3(0, 5, 0), 1))
}
