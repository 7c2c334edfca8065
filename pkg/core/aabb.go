package core

import "math"

// AABB represents an axis-aligned bounding box
type AABB struct {
	Min Vec3 // Minimum corner
	Max Vec3 // Maximum corner
}

// NewAABB creates a new AABB from min and max points
func NewAABB(min, max Vec3) AABB {
	return AABB{Min: min, Max: max}
}

// Intersect runs the slab method against the box and returns the parametric
// entry and exit distances of the ray, before any range clipping. The per-axis
// intervals are folded with a running max-of-mins and min-of-maxes, giving up
// as soon as the interval becomes empty. An axis the ray runs parallel to
// either contains the origin (infinite slab) or rejects the ray.
func (aabb AABB) Intersect(ray Ray) (tNear, tFar float64, ok bool) {
	tNear = math.Inf(-1)
	tFar = math.Inf(1)

	for axis := 0; axis < 3; axis++ {
		min := aabb.Min.Component(axis)
		max := aabb.Max.Component(axis)
		origin := ray.Origin.Component(axis)
		direction := ray.Direction.Component(axis)

		if direction == 0 {
			if origin < min || origin > max {
				return 0, 0, false
			}
			continue
		}

		t1 := (min - origin) / direction
		t2 := (max - origin) / direction
		if t1 > t2 {
			t1, t2 = t2, t1
		}

		if tNear > t2 || t1 > tFar {
			return 0, 0, false
		}
		tNear = math.Max(tNear, t1)
		tFar = math.Min(tFar, t2)
	}

	return tNear, tFar, true
}
