package scene

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/geometry"
	"github.com/df07/go-raycaster/pkg/lights"
	"github.com/df07/go-raycaster/pkg/loaders"
	"github.com/df07/go-raycaster/pkg/volume"
)

var (
	// ErrMissingCamera is returned for a scene description without a camera
	ErrMissingCamera = errors.New("scene: no camera")

	// ErrUnknownMaterial is returned when a shape names a material that is not defined
	ErrUnknownMaterial = errors.New("scene: unknown material")

	// ErrInvalidShape is returned for a shape whose dimensions cannot be rendered
	ErrInvalidShape = errors.New("scene: invalid shape")
)

// Vec3Cfg is a JSON triple: [x, y, z] or [r, g, b]
type Vec3Cfg [3]float64

func (v Vec3Cfg) vec() core.Vec3 {
	return core.NewVec3(v[0], v[1], v[2])
}

type CameraCfg struct {
	Position           Vec3Cfg `json:"position"`
	Direction          Vec3Cfg `json:"direction"`
	Up                 Vec3Cfg `json:"up"`
	ViewPlaneDistance  float64 `json:"viewPlaneDistance"`
	ViewPlaneWidth     float64 `json:"viewPlaneWidth"`
	ViewPlaneHeight    float64 `json:"viewPlaneHeight"`
	FrontPlaneDistance float64 `json:"frontPlaneDistance"`
	BackPlaneDistance  float64 `json:"backPlaneDistance"`
}

type MaterialCfg struct {
	Ambient   Vec3Cfg `json:"ambient"`
	Diffuse   Vec3Cfg `json:"diffuse"`
	Specular  Vec3Cfg `json:"specular"`
	Shininess float64 `json:"shininess"`
}

type LightCfg struct {
	Position  Vec3Cfg `json:"position"`
	Ambient   Vec3Cfg `json:"ambient"`
	Diffuse   Vec3Cfg `json:"diffuse"`
	Specular  Vec3Cfg `json:"specular"`
	Intensity float64 `json:"intensity"`
}

type BandCfg struct {
	Min   uint8   `json:"min"`
	Max   uint8   `json:"max"`
	Color Vec3Cfg `json:"color"`
}

type ColorMapCfg struct {
	Default Vec3Cfg   `json:"default"`
	Bands   []BandCfg `json:"bands"`
}

// ShapeCfg holds the union of all shape fields; Type selects which are read.
type ShapeCfg struct {
	Type     string  `json:"type"` // ellipsoid, sphere, plane, mask
	Material string  `json:"material,omitempty"`
	Color    Vec3Cfg `json:"color"`

	// ellipsoid, sphere
	Center   Vec3Cfg `json:"center"`
	SemiAxes Vec3Cfg `json:"semiAxes"`
	Radius   float64 `json:"radius"`

	// plane
	Point  Vec3Cfg `json:"point"`
	Normal Vec3Cfg `json:"normal"`

	// mask; dat and raw are relative to the scene file
	Dat      string       `json:"dat"`
	Raw      string       `json:"raw"`
	Position Vec3Cfg      `json:"position"`
	Scale    float64      `json:"scale,omitempty"`
	ColorMap *ColorMapCfg `json:"colorMap,omitempty"`
}

// Config is the JSON scene description
type Config struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description,omitempty"`
	Camera      *CameraCfg             `json:"camera"`
	Background  *Vec3Cfg               `json:"background,omitempty"`
	Materials   map[string]MaterialCfg `json:"materials"`
	Lights      []LightCfg             `json:"lights"`
	Shapes      []ShapeCfg             `json:"shapes"`
}

// LoadFile reads a JSON scene description. Volume files referenced by mask
// shapes are resolved against the directory of path.
func LoadFile(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open scene")
	}
	defer f.Close()

	s, err := Parse(f, filepath.Dir(path))
	if err != nil {
		return nil, errors.Wrapf(err, "scene %s", path)
	}
	if s.Name == "" {
		s.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return s, nil
}

// Parse decodes a JSON scene description and builds the scene
func Parse(r io.Reader, baseDir string) (*Scene, error) {
	var cfg Config
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return nil, errors.Wrap(err, "decode scene")
	}
	return cfg.Build(baseDir)
}

// Build turns a decoded description into a scene
func (cfg Config) Build(baseDir string) (*Scene, error) {
	if cfg.Camera == nil {
		return nil, ErrMissingCamera
	}

	s := NewScene(cfg.Name, cfg.Camera.camera())
	if cfg.Background != nil {
		s.Background = cfg.Background.vec()
	}

	materials := lo.MapValues(cfg.Materials, func(m MaterialCfg, _ string) *core.Material {
		return core.NewMaterial(m.Ambient.vec(), m.Diffuse.vec(), m.Specular.vec(), m.Shininess)
	})

	s.AddLight(lo.Map(cfg.Lights, func(l LightCfg, _ int) lights.Light {
		return lights.NewLight(l.Position.vec(), l.Ambient.vec(), l.Diffuse.vec(), l.Specular.vec(), l.Intensity)
	})...)

	for i, sc := range cfg.Shapes {
		shape, err := sc.build(materials, baseDir)
		if err != nil {
			return nil, errors.Wrapf(err, "shape %d (%s)", i, sc.Type)
		}
		s.Add(shape)
	}

	return s, nil
}

func (c CameraCfg) camera() *geometry.Camera {
	return &geometry.Camera{
		Position:           c.Position.vec(),
		Direction:          c.Direction.vec(),
		Up:                 c.Up.vec(),
		ViewPlaneDistance:  c.ViewPlaneDistance,
		ViewPlaneWidth:     c.ViewPlaneWidth,
		ViewPlaneHeight:    c.ViewPlaneHeight,
		FrontPlaneDistance: c.FrontPlaneDistance,
		BackPlaneDistance:  c.BackPlaneDistance,
	}
}

func (sc ShapeCfg) build(materials map[string]*core.Material, baseDir string) (core.Shape, error) {
	var material *core.Material
	if sc.Material != "" {
		m, ok := materials[sc.Material]
		if !ok {
			return nil, errors.Wrapf(ErrUnknownMaterial, "%q", sc.Material)
		}
		material = m
	}

	switch sc.Type {
	case "ellipsoid", "sphere":
		semiAxes := sc.SemiAxes.vec()
		if sc.Type == "sphere" {
			semiAxes = core.NewVec3(sc.Radius, sc.Radius, sc.Radius)
		}
		ellipsoid := geometry.NewEllipsoid(sc.Center.vec(), semiAxes, material, sc.Color.vec())
		if !ellipsoid.Valid() {
			return nil, errors.Wrapf(ErrInvalidShape, "%s with semi-axes %v", sc.Type, ellipsoid.SemiAxes)
		}
		return ellipsoid, nil
	case "plane":
		return geometry.NewPlane(sc.Point.vec(), sc.Normal.vec(), material, sc.Color.vec()), nil
	case "mask":
		field, err := loaders.LoadVolume(resolve(baseDir, sc.Dat), resolve(baseDir, sc.Raw))
		if err != nil {
			return nil, err
		}
		scale := sc.Scale
		if scale == 0 {
			scale = 1
		}
		var colorMap volume.ColorMap
		if sc.ColorMap != nil {
			colorMap = sc.ColorMap.colorMap()
		}
		return geometry.NewCTMask(field, sc.Position.vec(), scale, colorMap).WithMaterial(material), nil
	default:
		logger.Warningf("unknown shape type %q, it will not be rendered", sc.Type)
		return geometry.NewUnsupported(sc.Type), nil
	}
}

func (c ColorMapCfg) colorMap() *volume.BandColorMap {
	cm := volume.NewBandColorMap(c.Default.vec())
	for _, b := range c.Bands {
		cm.Add(b.Min, b.Max, b.Color.vec())
	}
	return cm
}

func resolve(baseDir, path string) string {
	if filepath.IsAbs(path) || baseDir == "" {
		return path
	}
	return filepath.Join(baseDir, path)
}
