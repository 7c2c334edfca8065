package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/df07/go-raycaster/pkg/loaders"
	"github.com/df07/go-raycaster/pkg/log"
	"github.com/df07/go-raycaster/pkg/renderer"
	"github.com/df07/go-raycaster/pkg/scene"
)

// scenesDir holds JSON scene descriptions that can be selected by name
const scenesDir = "scenes"

var logger = log.New("raycaster")

func main() {
	app := cli.NewApp()
	app.Name = "go-raycaster"
	app.Usage = "render ellipsoids and CT volume masks with Phong shading"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}

	defaults := renderer.DefaultConfig()
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a single frame",
			Description: `
Render a built-in scene or a JSON scene description. The scene may be a
built-in id (see the scenes command), a path to a .json file, or the name
of a file in the scenes directory without its extension.

The output format is chosen from the file extension: png, jpg, bmp or tif.`,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "scene, s",
					Value: "default",
					Usage: "scene id, name or JSON file",
				},
				cli.IntFlag{
					Name:  "width",
					Value: defaults.Width,
					Usage: "frame width",
				},
				cli.IntFlag{
					Name:  "height",
					Value: defaults.Height,
					Usage: "frame height",
				},
				cli.IntFlag{
					Name:  "workers, w",
					Value: defaults.NumWorkers,
					Usage: "number of render workers (0 = one per logical CPU)",
				},
				cli.IntFlag{
					Name:  "tile",
					Value: defaults.TileSize,
					Usage: "tile edge in pixels",
				},
				cli.StringFlag{
					Name:  "out, o",
					Usage: "image filename for the rendered frame (default output/<scene>/render_<timestamp>.png)",
				},
			},
			Action: renderFrame,
		},
		{
			Name:   "scenes",
			Usage:  "list built-in scenes and JSON scenes in the scenes directory",
			Action: listScenes,
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

func setupLogging(ctx *cli.Context) {
	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}
}

// Render a still frame.
func renderFrame(ctx *cli.Context) error {
	setupLogging(ctx)

	sceneName := ctx.String("scene")
	sc, err := createScene(sceneName)
	if err != nil {
		return err
	}

	config := renderer.Config{
		Width:      ctx.Int("width"),
		Height:     ctx.Int("height"),
		TileSize:   ctx.Int("tile"),
		NumWorkers: ctx.Int("workers"),
	}
	renderer.CheckMemory(config.Width, config.Height)

	rt, err := renderer.NewRaytracer(sc, config)
	if err != nil {
		return err
	}

	// Ctrl-C stops the render between rows
	renderCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger.Noticef("rendering scene %q (%d shapes, %d lights)", sc.Name, sc.GetPrimitiveCount(), len(sc.Lights))
	frame, stats, err := rt.Render(renderCtx)
	if err != nil {
		return errors.Wrap(err, "render")
	}

	out := ctx.String("out")
	if out == "" {
		out = filepath.Join(createOutputDir(sceneName), fmt.Sprintf("render_%s.png", time.Now().Format("20060102_150405")))
	}
	if err := loaders.SaveImage(out, frame.ToImage()); err != nil {
		return err
	}

	var buf bytes.Buffer
	stats.Table(&buf)
	logger.Noticef("frame statistics\n%s", buf.String())
	logger.Noticef("render saved as %s", out)

	return nil
}

// List available scenes.
func listScenes(ctx *cli.Context) error {
	setupLogging(ctx)

	scenes, err := scene.ListAllScenes(scenesDir)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeader([]string{"Scene", "Name", "Type", "Description"})
	for _, info := range scenes {
		table.Append([]string{info.ID, info.DisplayName, info.Type, info.Description})
	}
	table.Render()

	fmt.Print(buf.String())
	return nil
}

// createScene resolves a scene id, JSON path or name in the scenes directory
func createScene(name string) (*scene.Scene, error) {
	if name == "" {
		return nil, errors.New("missing scene name")
	}

	sc, err := scene.Load(name)
	if errors.Is(err, scene.ErrUnknownScene) && filepath.Ext(name) == "" {
		candidate := filepath.Join(scenesDir, name+".json")
		if _, statErr := os.Stat(candidate); statErr == nil {
			return scene.LoadFile(candidate)
		}
	}
	if err != nil {
		return nil, err
	}
	return sc, nil
}

// createOutputDir returns the default output directory for a scene
func createOutputDir(sceneName string) string {
	base := filepath.Base(sceneName)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join("output", base)
}
