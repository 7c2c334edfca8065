package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/volume"
)

// newTestMask builds a 4x4x4 field spanning the cube [-2,2]^3 in which the
// x=0 voxel layer has density 200 and the rest 50.
func newTestMask(t *testing.T) *CTMask {
	t.Helper()
	data := make([]byte, 64)
	for i := range data {
		if i%4 == 0 {
			data[i] = 200
		} else {
			data[i] = 50
		}
	}
	field, err := volume.NewField([3]int{4, 4, 4}, [3]float64{0.5, 0.5, 0.5}, data)
	if err != nil {
		t.Fatal(err)
	}

	colors := volume.NewBandColorMap(core.NewVec3(0, 0, 0)).
		Add(200, 255, core.NewVec3(1, 0, 0)).
		Add(1, 199, core.NewVec3(0, 1, 0))
	return NewCTMask(field, core.NewVec3(-2, -2, -2), 2, colors)
}

func TestCTMask_Bounds(t *testing.T) {
	mask := newTestMask(t)
	box := mask.BoundingBox()
	if box.Min != core.NewVec3(-2, -2, -2) || box.Max != core.NewVec3(2, 2, 2) {
		t.Errorf("Unexpected bounds %v", box)
	}
}

func TestCTMask_Hit_AxisRays(t *testing.T) {
	mask := newTestMask(t)

	tests := []struct {
		name      string
		origin    core.Vec3
		direction core.Vec3
		expectedT float64
	}{
		{"+X", core.NewVec3(-10, 0.1, 0.1), core.NewVec3(1, 0, 0), 8},
		{"-X", core.NewVec3(10, 0.1, 0.1), core.NewVec3(-1, 0, 0), 8},
		{"+Y", core.NewVec3(0.1, -10, 0.1), core.NewVec3(0, 1, 0), 8},
		{"-Y", core.NewVec3(0.1, 10, 0.1), core.NewVec3(0, -1, 0), 8},
		{"+Z", core.NewVec3(0.1, 0.1, -10), core.NewVec3(0, 0, 1), 8},
		{"-Z scaled direction", core.NewVec3(0.1, 0.1, 10), core.NewVec3(0, 0, -2), 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, err := mask.Hit(core.NewRay(tt.origin, tt.direction), 0.001, 1000)
			if err != nil {
				t.Fatal(err)
			}
			if !hit.IsHit() {
				t.Fatal("Expected hit through the box center")
			}
			if math.Abs(hit.T-tt.expectedT) > 1e-12 {
				t.Errorf("Expected slab entry t=%f, got %f", tt.expectedT, hit.T)
			}
		})
	}
}

func TestCTMask_Hit_Miss(t *testing.T) {
	mask := newTestMask(t)

	tests := []struct {
		name      string
		origin    core.Vec3
		direction core.Vec3
		minDist   float64
		maxDist   float64
	}{
		{"Outside on Y, parallel", core.NewVec3(-10, 3, 0), core.NewVec3(1, 0, 0), 0.001, 1000},
		{"Outside on Z, parallel", core.NewVec3(-10, 0, -2.5), core.NewVec3(1, 0, 0), 0.001, 1000},
		{"Diagonal past the corner", core.NewVec3(-10, 0, 0), core.NewVec3(1, 1, 0), 0.001, 1000},
		{"Pointing away", core.NewVec3(-10, 0, 0), core.NewVec3(-1, 0, 0), 0.001, 1000},
		{"Range ends before box", core.NewVec3(-10, 0, 0), core.NewVec3(1, 0, 0), 0.001, 5},
		{"Range starts after box", core.NewVec3(-10, 0, 0), core.NewVec3(1, 0, 0), 13, 1000},
		{"Zero direction", core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 0), 0.001, 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, err := mask.Hit(core.NewRay(tt.origin, tt.direction), tt.minDist, tt.maxDist)
			if err != nil {
				t.Fatal(err)
			}
			if hit.IsHit() {
				t.Errorf("Expected miss, got hit at t=%f", hit.T)
			}
		})
	}
}

func TestCTMask_Hit_ClipsToRange(t *testing.T) {
	mask := newTestMask(t)

	// Origin inside the box: entry is clipped to minDist
	hit, err := mask.Hit(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0)), 0.25, 1000)
	if err != nil {
		t.Fatal(err)
	}
	if !hit.IsHit() || hit.T != 0.25 {
		t.Errorf("Expected hit clipped to t=0.25, got %+v", hit)
	}
}

func TestCTMask_Hit_Sampling(t *testing.T) {
	mask := newTestMask(t)

	hit, err := mask.Hit(core.NewRay(core.NewVec3(-10, 0.1, 0.1), core.NewVec3(1, 0, 0)), 0.001, 1000)
	if err != nil {
		t.Fatal(err)
	}

	// Entry voxel is on the dense x=0 layer
	if hit.Color != core.NewVec3(1, 0, 0) {
		t.Errorf("Expected colour of the dense band, got %v", hit.Color)
	}
	if mask.Density(hit.Position()) != 200 {
		t.Errorf("Expected density 200 at entry, got %d", mask.Density(hit.Position()))
	}

	// Density drops from 200 to 50 along +x, and the -x neighbour is outside (0)
	if hit.Normal.Subtract(core.NewVec3(1, 0, 0)).Length() > 1e-12 {
		t.Errorf("Expected gradient normal (1,0,0), got %v", hit.Normal)
	}
	if hit.Material != nil {
		t.Error("Expected a self-coloured mask to carry no material")
	}

	material := core.NewMaterial(white, white, white, 1)
	hit, _ = mask.WithMaterial(material).Hit(core.NewRay(core.NewVec3(-10, 0.1, 0.1), core.NewVec3(1, 0, 0)), 0.001, 1000)
	if hit.Material != material {
		t.Error("Expected attached material on the hit")
	}
}

func TestNewCTMask_DefaultColorMap(t *testing.T) {
	field, _ := volume.NewField([3]int{1, 1, 1}, [3]float64{1, 1, 1}, []byte{255})
	mask := NewCTMask(field, core.NewVec3(0, 0, 0), 1, nil)

	hit, _ := mask.Hit(core.NewRay(core.NewVec3(0.5, 0.5, -1), core.NewVec3(0, 0, 1)), 0, 10)
	if hit.Color != core.NewVec3(1, 1, 1) {
		t.Errorf("Expected gray map to give white for 255, got %v", hit.Color)
	}
}
