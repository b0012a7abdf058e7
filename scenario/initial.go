package scenario

import (
	"math"

	"github.com/notargets/gohydro/utils"
)

// State is the primitive flow state at one point.
type State struct {
	Density  float64
	Velocity utils.Vector
	Pressure float64
}

// InitialCondition is evaluated once per mesh entity at the start time.
// Implementations close over scenario constants only and must be safe for
// concurrent use.
type InitialCondition interface {
	Evaluate(x utils.Vector, t float64) State
}

type ICFunc func(x utils.Vector, t float64) State

func (f ICFunc) Evaluate(x utils.Vector, t float64) State { return f(x, t) }

func checkPhysical(x utils.Vector, s State) error {
	switch {
	case math.IsNaN(s.Density) || s.Density <= 0:
		return configErrorf("ics", "density %v at %v is not positive", s.Density, x)
	case math.IsNaN(s.Pressure) || s.Pressure <= 0:
		return configErrorf("ics", "pressure %v at %v is not positive", s.Pressure, x)
	case !s.Velocity.IsFinite():
		return configErrorf("ics", "velocity %v at %v is not finite", s.Velocity, x)
	}
	return nil
}
