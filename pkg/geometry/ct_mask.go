package geometry

import (
	"math"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/volume"
)

// CTMask is a volumetric primitive: a density field (typically a CT scan)
// placed in the world as an axis-aligned box. Rays hit the box surface and
// pick up the colour and gradient normal of the voxel they enter through.
type CTMask struct {
	Position core.Vec3 // World position of voxel (0,0,0)
	Scale    float64
	Field    *volume.Field
	ColorMap volume.ColorMap
	Material *core.Material // nil means self-coloured (unshaded)
	bounds   core.AABB
}

// NewCTMask places a density field at position. A nil colour map falls back
// to volume.GrayColorMap.
func NewCTMask(field *volume.Field, position core.Vec3, scale float64, colorMap volume.ColorMap) *CTMask {
	if colorMap == nil {
		colorMap = volume.GrayColorMap
	}

	return &CTMask{
		Position: position,
		Scale:    scale,
		Field:    field,
		ColorMap: colorMap,
		bounds:   core.NewAABB(position, position.Add(field.Extent().Multiply(scale))),
	}
}

// WithMaterial attaches a Phong material so the mask is shaded like other shapes
func (m *CTMask) WithMaterial(material *core.Material) *CTMask {
	m.Material = material
	return m
}

// BoundingBox returns the world-space box [v0, v1] enclosing the field
func (m *CTMask) BoundingBox() core.AABB {
	return m.bounds
}

// Hit intersects the ray with the bounding box (slab method) and samples the
// field at the entry point.
func (m *CTMask) Hit(ray core.Ray, minDist, maxDist float64) (core.Intersection, error) {
	if ray.Direction.LengthSquared() == 0 {
		return core.None, nil
	}

	tMin, tMax, ok := m.bounds.Intersect(ray)
	if !ok {
		return core.None, nil
	}

	// Clip against the caller's range
	tMin = math.Max(tMin, minDist)
	tMax = math.Min(tMax, maxDist)
	if tMin > tMax {
		return core.None, nil
	}

	position := ray.At(tMin)
	return core.NewHit(m, ray, tMin, m.normalAt(position), m.Material, m.colorAt(position)), nil
}

// voxel converts a world position to a voxel index
func (m *CTMask) voxel(position core.Vec3) (x, y, z int) {
	return m.Field.Index(position.Subtract(m.Position), m.Scale)
}

// Density returns the raw sample at a world position
func (m *CTMask) Density(position core.Vec3) uint8 {
	return m.Field.Value(m.voxel(position))
}

func (m *CTMask) colorAt(position core.Vec3) core.Vec3 {
	return m.ColorMap.Color(m.Density(position))
}

func (m *CTMask) normalAt(position core.Vec3) core.Vec3 {
	return m.Field.Gradient(m.voxel(position))
}
