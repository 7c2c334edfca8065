package scene

import (
	"fmt"
	"sync"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/geometry"
	"github.com/df07/go-raycaster/pkg/lights"
	"github.com/df07/go-raycaster/pkg/log"
)

var logger = log.New("scene")

// DefaultBackground is the colour of pixels whose primary ray hits nothing
var DefaultBackground = core.NewVec3(0.2, 0.2, 0.2)

// Scene contains all the elements needed for rendering. Shapes, lights and
// camera are read-only once rendering starts.
type Scene struct {
	Name       string
	Camera     *geometry.Camera
	Shapes     []core.Shape   // Objects in the scene, in intersection order
	Lights     []lights.Light // Lights in the scene, in shading order
	Background core.Vec3

	failures sync.Map // Shapes that have already reported an error
}

// NewScene creates an empty scene with the default background
func NewScene(name string, camera *geometry.Camera) *Scene {
	return &Scene{
		Name:       name,
		Camera:     camera,
		Shapes:     make([]core.Shape, 0),
		Lights:     make([]lights.Light, 0),
		Background: DefaultBackground,
	}
}

// Add appends shapes to the scene
func (s *Scene) Add(shapes ...core.Shape) *Scene {
	s.Shapes = append(s.Shapes, shapes...)
	return s
}

// AddLight appends lights to the scene
func (s *Scene) AddLight(l ...lights.Light) *Scene {
	s.Lights = append(s.Lights, l...)
	return s
}

// FindNearest returns the visible hit with the smallest t over all shapes, or
// core.None. A shape that fails to compute counts as a miss for that shape;
// the rest of the scene is still searched. Equal distances keep the shape
// that comes first.
func (s *Scene) FindNearest(ray core.Ray, minDist, maxDist float64) core.Intersection {
	nearest := core.None

	for _, shape := range s.Shapes {
		hit, err := shape.Hit(ray, minDist, maxDist)
		if err != nil {
			s.reportFailure(shape, err)
			continue
		}

		// Out-of-range or NaN distances are treated as misses
		if !hit.IsHit() || !(hit.T >= minDist && hit.T <= maxDist) {
			continue
		}
		if !nearest.IsHit() || hit.T < nearest.T {
			nearest = hit
		}
	}

	return nearest
}

// reportFailure logs a shape error the first time that shape fails
func (s *Scene) reportFailure(shape core.Shape, err error) {
	if _, seen := s.failures.LoadOrStore(shape, struct{}{}); seen {
		return
	}
	logger.Warningf("skipping %s: %v", describe(shape), err)
}

// GetCamera returns the scene camera
func (s *Scene) GetCamera() *geometry.Camera {
	return s.Camera
}

// GetLights returns the scene lights
func (s *Scene) GetLights() []lights.Light {
	return s.Lights
}

// GetBackground returns the miss colour
func (s *Scene) GetBackground() core.Vec3 {
	return s.Background
}

// GetPrimitiveCount returns the number of shapes in the scene
func (s *Scene) GetPrimitiveCount() int {
	return len(s.Shapes)
}

func describe(shape core.Shape) string {
	if stringer, ok := shape.(fmt.Stringer); ok {
		return stringer.String()
	}
	return fmt.Sprintf("%T", shape)
}
