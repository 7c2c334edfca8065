package geometry

import (
	"github.com/pkg/errors"

	"github.com/df07/go-raycaster/pkg/core"
)

// Unsupported stands in for a primitive kind this build cannot intersect.
// Every Hit fails with core.ErrNotImplemented.
type Unsupported struct {
	Kind string
}

// NewUnsupported creates a placeholder for the named primitive kind
func NewUnsupported(kind string) *Unsupported {
	return &Unsupported{Kind: kind}
}

func (u *Unsupported) Hit(ray core.Ray, minDist, maxDist float64) (core.Intersection, error) {
	return core.None, errors.Wrapf(core.ErrNotImplemented, "%q primitive", u.Kind)
}

func (u *Unsupported) String() string {
	return "unsupported(" + u.Kind + ")"
}
