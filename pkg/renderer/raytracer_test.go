package renderer

import (
	"context"
	"errors"
	"image"
	"testing"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/geometry"
	"github.com/df07/go-raycaster/pkg/scene"
)

func testConfig(width, height, workers int) Config {
	return Config{Width: width, Height: height, TileSize: 8, NumWorkers: workers}
}

func render(t *testing.T, s Scene, config Config) (*Frame, FrameStats) {
	t.Helper()
	rt, err := NewRaytracer(s, config)
	if err != nil {
		t.Fatalf("NewRaytracer() error: %v", err)
	}
	frame, stats, err := rt.Render(context.Background())
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	return frame, stats
}

func TestRender_SphereFromAbove(t *testing.T) {
	frame, stats := render(t, scene.NewSphereScene(), testConfig(32, 32, 2))

	background := scene.DefaultBackground
	center := frame.At(16, 16)
	if center == background {
		t.Fatal("Expected the centre pixel to hit the sphere")
	}

	// Straight down onto the pole: normal and light direction coincide
	if center.Subtract(core.NewVec3(1, 1, 1)).Length() > 1e-9 {
		t.Errorf("Expected fully lit white at the centre, got %v", center)
	}

	for _, p := range []image.Point{{0, 0}, {31, 0}, {0, 31}, {31, 31}, {0, 16}, {16, 0}} {
		border := frame.At(p.X, p.Y)
		if border != background {
			t.Errorf("Expected background at %v, got %v", p, border)
		}
		if center.Luminance() <= border.Luminance() {
			t.Errorf("Expected centre brighter than border pixel %v", p)
		}
	}

	if stats.Total.Pixels != 32*32 || stats.Total.Hits+stats.Total.Misses != 32*32 {
		t.Errorf("Unexpected totals %+v", stats.Total)
	}
	if stats.Total.Hits == 0 || stats.Total.Misses == 0 {
		t.Errorf("Expected both hits and misses, got %+v", stats.Total)
	}
}

func TestRender_ParallelMatchesSequential(t *testing.T) {
	s := scene.NewDefaultScene()
	config := testConfig(40, 30, 1)

	sequential, _ := render(t, s, config)

	config.NumWorkers = 4
	parallel, stats := render(t, s, config)

	if len(stats.Workers) != 4 {
		t.Errorf("Expected 4 worker stats, got %d", len(stats.Workers))
	}
	for i := range sequential.Pixels {
		if sequential.Pixels[i] != parallel.Pixels[i] {
			t.Fatalf("Pixel %d differs: %v vs %v", i, sequential.Pixels[i], parallel.Pixels[i])
		}
	}
}

func TestRender_FailureIsolation(t *testing.T) {
	base := scene.NewSphereScene()

	mixed := scene.NewScene("mixed", base.Camera)
	mixed.Add(geometry.NewUnsupported("cone"))
	mixed.Add(base.Shapes...)
	mixed.AddLight(base.Lights...)

	want, _ := render(t, base, testConfig(16, 16, 2))
	got, _ := render(t, mixed, testConfig(16, 16, 2))

	for i := range want.Pixels {
		if want.Pixels[i] != got.Pixels[i] {
			t.Fatalf("Pixel %d differs: %v vs %v", i, want.Pixels[i], got.Pixels[i])
		}
	}
}

func TestRender_Cancelled(t *testing.T) {
	rt, err := NewRaytracer(scene.NewDefaultScene(), testConfig(64, 64, 2))
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	frame, _, err := rt.Render(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
	if frame != nil {
		t.Error("Expected no frame from a cancelled render")
	}
}

func TestRenderBounds_StopsBetweenRows(t *testing.T) {
	rt, err := NewRaytracer(scene.NewSphereScene(), testConfig(8, 8, 1))
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	frame := NewFrame(8, 8)
	stats, err := rt.RenderBounds(ctx, image.Rect(0, 0, 8, 8), frame)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
	if stats.Pixels != 0 {
		t.Errorf("Expected no pixels rendered, got %d", stats.Pixels)
	}
}

func TestRender_SelfColouredMask(t *testing.T) {
	s := scene.NewVolumeScene()
	frame, stats := render(t, s, testConfig(24, 18, 2))

	if stats.Total.Hits == 0 {
		t.Fatal("Expected the volume scene to hit something")
	}

	// The mask is unshaded, so its pixels carry colour map entries exactly
	mask := s.Shapes[0].(*geometry.CTMask)
	rt, _ := NewRaytracer(s, testConfig(24, 18, 1))
	found := false
	for j := 0; j < 18 && !found; j++ {
		for i := 0; i < 24; i++ {
			ray := PrimaryRay(rt.Camera(), i, j, 24, 18)
			hit := s.FindNearest(ray, rt.Camera().FrontPlaneDistance, rt.Camera().BackPlaneDistance)
			if hit.IsHit() && hit.Shape == mask {
				if frame.At(i, j) != hit.Color {
					t.Errorf("Pixel (%d,%d): expected mask colour %v, got %v", i, j, hit.Color, frame.At(i, j))
				}
				found = true
				break
			}
		}
	}
	if !found {
		t.Error("Expected at least one pixel on the mask")
	}
}

func TestNewRaytracer_Errors(t *testing.T) {
	good := scene.NewSphereScene()

	tests := []struct {
		name    string
		scene   Scene
		config  Config
		wantErr error
	}{
		{"Zero width", good, Config{Width: 0, Height: 10, TileSize: 8}, ErrInvalidFrame},
		{"Zero tile", good, Config{Width: 10, Height: 10, TileSize: 0}, ErrInvalidFrame},
		{"No camera", scene.NewScene("empty", nil), testConfig(10, 10, 1), ErrNoCamera},
		{
			"Degenerate camera",
			scene.NewScene("bad", &geometry.Camera{Direction: core.NewVec3(0, 1, 0), Up: core.NewVec3(0, 2, 0)}),
			testConfig(10, 10, 1),
			geometry.ErrDegenerateCamera,
		},
		{
			"Inverted clip planes",
			scene.NewScene("bad", &geometry.Camera{
				Direction: core.NewVec3(0, 0, -1), Up: core.NewVec3(0, 1, 0),
				FrontPlaneDistance: 10, BackPlaneDistance: 1,
			}),
			testConfig(10, 10, 1),
			ErrInvalidCamera,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewRaytracer(tt.scene, tt.config); !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestFrame_ToImage(t *testing.T) {
	frame := NewFrame(2, 1)
	frame.Set(0, 0, core.NewVec3(2, -1, 0.5))
	frame.Set(1, 0, core.NewVec3(0.2, 0.2, 0.2))

	img := frame.ToImage()
	if c := img.RGBAAt(0, 0); c.R != 255 || c.G != 0 || c.B != 127 || c.A != 255 {
		t.Errorf("Expected clamped (255,0,127,255), got %v", c)
	}
	if c := img.RGBAAt(1, 0); c.R != 51 {
		t.Errorf("Expected 51 without gamma, got %d", c.R)
	}
}
