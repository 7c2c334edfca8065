package lights

import (
	"math"

	"github.com/samber/lo"

	"github.com/df07/go-raycaster/pkg/core"
)

// ShadowEpsilon offsets shadow rays off the surface and is their minimum distance
const ShadowEpsilon = 0.001

// Contribution holds the three Phong terms of one light at one point
type Contribution struct {
	Ambient  core.Vec3
	Diffuse  core.Vec3
	Specular core.Vec3
}

// Phong evaluates the ambient, diffuse and specular terms for a light.
// normal, lightDir (towards the light) and viewDir (towards the eye) are unit vectors.
func Phong(material *core.Material, light Light, normal, lightDir, viewDir core.Vec3) Contribution {
	nDotL := normal.Dot(lightDir)

	ambient := material.Ambient.MultiplyVec(light.Ambient)

	diffuse := material.Diffuse.MultiplyVec(light.Diffuse).Multiply(math.Max(0, nDotL))

	reflection := normal.Multiply(2 * nDotL).Subtract(lightDir)
	specularFactor := math.Pow(math.Max(0, viewDir.Dot(reflection)), material.Shininess)
	specular := material.Specular.MultiplyVec(light.Specular).Multiply(specularFactor)

	return Contribution{Ambient: ambient, Diffuse: diffuse, Specular: specular}
}

// Accumulate adds one light's terms to the running total and then scales the
// whole total by that light's intensity. Later lights therefore rescale the
// contributions of earlier ones; pixel values depend on this order.
func Accumulate(total core.Vec3, c Contribution, intensity float64) core.Vec3 {
	return total.Add(c.Ambient).Add(c.Diffuse).Add(c.Specular).Multiply(intensity)
}

// Evaluator answers visibility and shading queries against a scene
type Evaluator struct {
	world Intersector
}

// NewEvaluator creates an evaluator that casts shadow rays into world
func NewEvaluator(world Intersector) *Evaluator {
	return &Evaluator{world: world}
}

// IsLit reports whether nothing visible lies between point and the light
func (e *Evaluator) IsLit(point core.Vec3, light Light) bool {
	toLight := light.Position.Subtract(point)
	distance := toLight.Length()
	origin := point.Add(toLight.Normalize().Multiply(ShadowEpsilon))

	shadowRay := core.NewRayThrough(origin, light.Position)
	return !e.world.FindNearest(shadowRay, ShadowEpsilon, distance).IsHit()
}

// Shade folds the contributions of all lights that reach the hit point,
// starting from black. Hits without a material are self-coloured and
// returned as is.
func (e *Evaluator) Shade(hit core.Intersection, eye core.Vec3, lights []Light) core.Vec3 {
	if hit.Material == nil {
		return hit.Color
	}

	position := hit.Position()
	viewDir := eye.Subtract(position).Normalize()

	return lo.Reduce(lights, func(total core.Vec3, light Light, _ int) core.Vec3 {
		if !e.IsLit(position, light) {
			return total
		}
		lightDir := light.Position.Subtract(position).Normalize()
		return Accumulate(total, Phong(hit.Material, light, hit.Normal, lightDir, viewDir), light.Intensity)
	}, core.Vec3{})
}
