package renderer

import (
	"context"
	"image"
	"time"

	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/geometry"
	"github.com/df07/go-raycaster/pkg/lights"
	"github.com/df07/go-raycaster/pkg/log"
)

var logger = log.New("renderer")

// Config contains rendering configuration
type Config struct {
	Width      int // Image width in pixels
	Height     int // Image height in pixels
	TileSize   int // Edge of the square tiles handed to workers
	NumWorkers int // Number of parallel workers (0 = use CPU count)
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		Width:      400,
		Height:     300,
		TileSize:   32,
		NumWorkers: 0, // Auto-detect CPU count
	}
}

// Scene is what the raytracer needs from a scene
type Scene interface {
	lights.Intersector
	GetCamera() *geometry.Camera
	GetLights() []lights.Light
	GetBackground() core.Vec3
}

// Raytracer casts one primary ray per pixel and shades it with Phong
// illumination. It is read-only after construction and safe for concurrent use.
type Raytracer struct {
	scene      Scene
	camera     geometry.Camera // Normalized copy of the scene camera
	evaluator  *lights.Evaluator
	config     Config
	background core.Vec3
}

// NewRaytracer validates the scene camera and frame size
func NewRaytracer(scene Scene, config Config) (*Raytracer, error) {
	if config.Width <= 0 || config.Height <= 0 {
		return nil, errors.Wrapf(ErrInvalidFrame, "%dx%d", config.Width, config.Height)
	}
	if config.TileSize <= 0 {
		return nil, errors.Wrapf(ErrInvalidFrame, "tile size %d", config.TileSize)
	}

	if scene.GetCamera() == nil {
		return nil, ErrNoCamera
	}
	camera, err := scene.GetCamera().Normalized()
	if err != nil {
		return nil, errors.Wrap(err, "renderer: invalid camera")
	}
	if camera.BackPlaneDistance < camera.FrontPlaneDistance {
		return nil, errors.Wrapf(ErrInvalidCamera, "back plane %g is in front of front plane %g",
			camera.BackPlaneDistance, camera.FrontPlaneDistance)
	}

	return &Raytracer{
		scene:      scene,
		camera:     camera,
		evaluator:  lights.NewEvaluator(scene),
		config:     config,
		background: scene.GetBackground(),
	}, nil
}

// Camera returns the normalized camera used for primary rays
func (rt *Raytracer) Camera() geometry.Camera {
	return rt.camera
}

// PixelColor returns the colour of pixel (i, j) and whether its primary ray hit anything
func (rt *Raytracer) PixelColor(i, j int) (core.Vec3, bool) {
	ray := PrimaryRay(rt.camera, i, j, rt.config.Width, rt.config.Height)

	hit := rt.scene.FindNearest(ray, rt.camera.FrontPlaneDistance, rt.camera.BackPlaneDistance)
	if !hit.IsHit() {
		return rt.background, false
	}

	return rt.evaluator.Shade(hit, rt.camera.Position, rt.scene.GetLights()), true
}

// RenderBounds renders the pixels inside bounds into frame. ctx is checked
// once per row; a cancelled render returns ctx.Err() with the rows done so far.
func (rt *Raytracer) RenderBounds(ctx context.Context, bounds image.Rectangle, frame *Frame) (RenderStats, error) {
	var stats RenderStats

	for j := bounds.Min.Y; j < bounds.Max.Y; j++ {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		for i := bounds.Min.X; i < bounds.Max.X; i++ {
			color, hit := rt.PixelColor(i, j)
			frame.Set(i, j, color)

			stats.Pixels++
			if hit {
				stats.Hits++
			} else {
				stats.Misses++
			}
		}
	}

	return stats, nil
}

// Render renders the whole frame on a pool of workers, one tile per task.
// The result does not depend on the number of workers.
func (rt *Raytracer) Render(ctx context.Context) (*Frame, FrameStats, error) {
	start := time.Now()
	width, height := rt.config.Width, rt.config.Height

	frame := NewFrame(width, height)
	tiles := NewTileGrid(width, height, rt.config.TileSize)

	workerPool := NewWorkerPool(rt, len(tiles), rt.config.NumWorkers)
	workerPool.Start(ctx)
	defer workerPool.Stop()

	logger.Infof("rendering %dx%d in %d tiles using %d workers", width, height, len(tiles), workerPool.GetNumWorkers())

	for taskID, tile := range tiles {
		workerPool.SubmitTask(TileTask{Tile: tile, TaskID: taskID, Frame: frame})
	}

	workers := make([]WorkerStats, workerPool.GetNumWorkers())
	for id := range workers {
		workers[id].ID = id
	}

	// Drain every result so the pool can stop cleanly even on cancellation
	var firstErr error
	for range tiles {
		result, ok := workerPool.GetResult()
		if !ok {
			return nil, FrameStats{}, errors.New("renderer: worker pool closed unexpectedly")
		}
		if result.Error != nil && firstErr == nil {
			firstErr = result.Error
		}

		ws := &workers[result.WorkerID]
		ws.Tiles++
		ws.RenderStats = ws.RenderStats.Add(result.Stats)
	}

	if firstErr != nil {
		return nil, FrameStats{}, firstErr
	}

	stats := FrameStats{
		Width:      width,
		Height:     height,
		Tiles:      len(tiles),
		Workers:    workers,
		Total:      lo.Reduce(workers, func(total RenderStats, ws WorkerStats, _ int) RenderStats { return total.Add(ws.RenderStats) }, RenderStats{}),
		RenderTime: time.Since(start),
	}
	stats.AverageLuminance = frame.AverageLuminance()

	logger.Infof("frame completed in %v (%d hits, %d misses)", stats.RenderTime, stats.Total.Hits, stats.Total.Misses)

	return frame, stats, nil
}
