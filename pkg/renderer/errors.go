package renderer

import "github.com/pkg/errors"

var (
	// ErrNoCamera is returned when the scene has no camera
	ErrNoCamera = errors.New("renderer: scene has no camera")

	// ErrInvalidCamera is returned when the back clip plane lies in front of the front one
	ErrInvalidCamera = errors.New("renderer: invalid camera")

	// ErrInvalidFrame is returned for non-positive frame or tile dimensions
	ErrInvalidFrame = errors.New("renderer: invalid frame size")
)
