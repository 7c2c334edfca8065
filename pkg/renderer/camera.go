package renderer

import (
	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/geometry"
)

// ImageToViewPlane maps pixel index n of an imgSize-wide axis onto a view
// plane of the given size, centred on the optical axis. Index 0 maps to
// +viewPlaneSize/2.
func ImageToViewPlane(n, imgSize int, viewPlaneSize float64) float64 {
	return viewPlaneSize/2 - float64(n)*viewPlaneSize/float64(imgSize)
}

// PrimaryRay returns the unit-direction ray from the camera through the view
// plane point of pixel (i, j). The camera must already be normalized.
func PrimaryRay(camera geometry.Camera, i, j, width, height int) core.Ray {
	x := ImageToViewPlane(i, width, camera.ViewPlaneWidth)
	y := ImageToViewPlane(j, height, camera.ViewPlaneHeight)
	return core.NewRayThrough(camera.Position, camera.ViewPlanePoint(x, y))
}
