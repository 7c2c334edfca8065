package volume

import "github.com/df07/go-raycaster/pkg/core"

// ColorMap translates a density sample into a display colour
type ColorMap interface {
	Color(density uint8) core.Vec3
}

// ColorMapFunc adapts a plain function to ColorMap
type ColorMapFunc func(density uint8) core.Vec3

// Color calls f(density)
func (f ColorMapFunc) Color(density uint8) core.Vec3 {
	return f(density)
}

// GrayColorMap maps density linearly onto black..white
var GrayColorMap = ColorMapFunc(func(density uint8) core.Vec3 {
	v := float64(density) / 255.0
	return core.NewVec3(v, v, v)
})

// Band assigns a colour to the inclusive density range [Min, Max]
type Band struct {
	Min, Max uint8
	Color    core.Vec3
}

// BandColorMap picks the colour of the first band containing the sample
type BandColorMap struct {
	Bands   []Band
	Default core.Vec3 // Colour for samples outside every band
}

// NewBandColorMap creates an empty band map with the given fallback colour
func NewBandColorMap(fallback core.Vec3) *BandColorMap {
	return &BandColorMap{Default: fallback}
}

// Add appends a band and returns the map for chaining
func (m *BandColorMap) Add(min, max uint8, color core.Vec3) *BandColorMap {
	m.Bands = append(m.Bands, Band{Min: min, Max: max, Color: color})
	return m
}

// Color returns the colour of the first matching band, or Default
func (m *BandColorMap) Color(density uint8) core.Vec3 {
	for _, band := range m.Bands {
		if density >= band.Min && density <= band.Max {
			return band.Color
		}
	}
	return m.Default
}
