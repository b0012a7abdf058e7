package scenario

import (
	"fmt"
	"math"

	"github.com/notargets/gohydro/utils"
)

// BoundaryCondition is applied by the solver to every entity a region
// predicate selects. Conditions are immutable; one instance may back
// several BCEntry values and the solver may compare them by identity.
type BoundaryCondition interface {
	Type() utils.BCType
	HasSymmetry() bool
	HasPrescribedVelocity() bool
	HasPrescribedPressure() bool
	Velocity(x utils.Vector, t float64) utils.Vector
	Pressure(x utils.Vector, t float64) float64
}

// SymmetryCondition holds the normal velocity at zero.
type SymmetryCondition struct{}

func NewSymmetryCondition() *SymmetryCondition { return &SymmetryCondition{} }

func (*SymmetryCondition) Type() utils.BCType          { return utils.BCSymmetry }
func (*SymmetryCondition) HasSymmetry() bool           { return true }
func (*SymmetryCondition) HasPrescribedVelocity() bool { return false }
func (*SymmetryCondition) HasPrescribedPressure() bool { return false }
func (*SymmetryCondition) Velocity(x utils.Vector, _ float64) utils.Vector {
	return utils.NewZeroVector(x.Len())
}
func (*SymmetryCondition) Pressure(utils.Vector, float64) float64 { return 0 }

// WallCondition prescribes the full velocity vector of the boundary.
type WallCondition struct {
	velocity []float64
}

// NewWallCondition returns a wall moving at velocity; no arguments means a
// stationary wall.
func NewWallCondition(velocity ...float64) *WallCondition {
	w := &WallCondition{velocity: make([]float64, len(velocity))}
	copy(w.velocity, velocity)
	return w
}

func (*WallCondition) Type() utils.BCType          { return utils.BCWall }
func (*WallCondition) HasSymmetry() bool           { return false }
func (*WallCondition) HasPrescribedVelocity() bool { return true }
func (*WallCondition) HasPrescribedPressure() bool { return false }
func (w *WallCondition) Velocity(x utils.Vector, _ float64) (v utils.Vector) {
	v = utils.NewZeroVector(x.Len())
	for i := 0; i < x.Len() && i < len(w.velocity); i++ {
		v.V.SetVec(i, w.velocity[i])
	}
	return
}
func (*WallCondition) Pressure(utils.Vector, float64) float64 { return 0 }

// PressureCondition prescribes a constant boundary pressure.
type PressureCondition struct {
	pressure float64
}

func NewPressureCondition(p float64) *PressureCondition {
	return &PressureCondition{pressure: p}
}

func (*PressureCondition) Type() utils.BCType          { return utils.BCPressure }
func (*PressureCondition) HasSymmetry() bool           { return false }
func (*PressureCondition) HasPrescribedVelocity() bool { return false }
func (*PressureCondition) HasPrescribedPressure() bool { return true }
func (*PressureCondition) Velocity(x utils.Vector, _ float64) utils.Vector {
	return utils.NewZeroVector(x.Len())
}
func (pc *PressureCondition) Pressure(utils.Vector, float64) float64 { return pc.pressure }

// NewCondition builds a condition from the catalog. Recognised params are
// "p" for BCPressure and "u", "v", "w" for BCWall.
func NewCondition(bc utils.BCType, params map[string]float64) (cond BoundaryCondition, err error) {
	switch bc {
	case utils.BCSymmetry:
		cond = NewSymmetryCondition()
	case utils.BCWall:
		var (
			vel  []float64
			keys = []string{"u", "v", "w"}
		)
		for i, key := range keys {
			if val, ok := params[key]; ok {
				for len(vel) < i {
					vel = append(vel, 0)
				}
				vel = append(vel, val)
			}
		}
		cond = NewWallCondition(vel...)
	case utils.BCPressure:
		p, ok := params["p"]
		switch {
		case !ok:
			err = configErrorf("bcs", "%s condition needs parameter \"p\"", bc)
		case math.IsNaN(p) || p <= 0:
			err = configErrorf("bcs", "%s condition pressure must be > 0, have %v", bc, p)
		default:
			cond = NewPressureCondition(p)
		}
	default:
		err = configErrorf("bcs", "no condition available for catalog type %s", bc)
	}
	return
}

// RegionPredicate selects the entities a boundary condition applies to.
// Implementations must be pure.
type RegionPredicate interface {
	Contains(x utils.Vector, t float64) bool
}

type RegionFunc func(x utils.Vector, t float64) bool

func (f RegionFunc) Contains(x utils.Vector, t float64) bool { return f(x, t) }

// Plane selects points whose Axis component equals Value exactly. Mesh
// generators place boundary vertices on exact coordinates, so no tolerance
// is applied.
type Plane struct {
	Axis  int
	Value float64
}

func (pl Plane) Contains(x utils.Vector, _ float64) bool {
	if pl.Axis < 0 || pl.Axis >= x.Len() {
		return false
	}
	return x.AtVec(pl.Axis) == pl.Value
}

func (pl Plane) String() string { return fmt.Sprintf("x[%d] == %g", pl.Axis, pl.Value) }

// AnyRegion is the union of its members.
type AnyRegion []RegionPredicate

func (ar AnyRegion) Contains(x utils.Vector, t float64) bool {
	for _, r := range ar {
		if r.Contains(x, t) {
			return true
		}
	}
	return false
}

// BCEntry pairs a condition with the region it covers.
type BCEntry struct {
	Condition BoundaryCondition
	Region    RegionPredicate
}
