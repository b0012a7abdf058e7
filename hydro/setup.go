// Package hydro is the solver-facing side of a scenario: it evaluates the
// initial state over a mesh and drives the time-step loop of an external
// solver.
package hydro

import (
	"context"
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/notargets/gohydro/mesh1D"
	"github.com/notargets/gohydro/scenario"
	"github.com/notargets/gohydro/utils"
)

// InitialState holds the scenario evaluated on a mesh: cell quantities at
// the centroids and the boundary condition tagged on each vertex.
type InitialState struct {
	Mesh       *mesh1D.Mesh
	Centroids  []utils.Vector
	Volumes    []float64
	Density    []float64
	Pressure   []float64
	Energy     []float64 // Specific internal energy
	SoundSpeed []float64
	Velocity   []utils.Vector
	VertexBCs  []scenario.BoundaryCondition // nil for interior vertices
}

// Setup validates d against m and evaluates the initial state with
// parallelDegree goroutines.
func Setup(ctx context.Context, d *scenario.Descriptor, m *mesh1D.Mesh, parallelDegree int) (is *InitialState, err error) {
	var (
		K   = m.K
		NV  = len(m.VX)
		eos = d.EOS()
	)
	if err = d.ValidateMesh(m.Entities(), 0); err != nil {
		return
	}
	is = &InitialState{
		Mesh:       m,
		Centroids:  m.Centroids(),
		Volumes:    m.Volumes(),
		Density:    make([]float64, K),
		Pressure:   make([]float64, K),
		Energy:     make([]float64, K),
		SoundSpeed: make([]float64, K),
		Velocity:   make([]utils.Vector, K),
		VertexBCs:  make([]scenario.BoundaryCondition, NV),
	}
	cells := utils.NewPartitionMap(parallelDegree, K)
	err = cells.ForEachBucket(func(bn, kMin, kMax int) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		for k := kMin; k < kMax; k++ {
			s, err := d.EvaluateInitialCondition(is.Centroids[k], 0)
			if err != nil {
				return fmt.Errorf("cell %d: %w", k, err)
			}
			is.Density[k] = s.Density
			is.Pressure[k] = s.Pressure
			is.Velocity[k] = s.Velocity
			is.Energy[k], is.SoundSpeed[k] = eos.StateFromPressure(s.Density, s.Pressure)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if utils.IsNan(is.Energy) || utils.IsNan(is.SoundSpeed) {
		return nil, fmt.Errorf("equation of state %s produced NaN from the initial state", eos.Name())
	}
	verts := utils.NewPartitionMap(parallelDegree, NV)
	vx := m.Vertices()
	err = verts.ForEachBucket(func(bn, iMin, iMax int) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		for i := iMin; i < iMax; i++ {
			if bc, ok := d.ClassifyBoundary(vx[i], 0); ok {
				is.VertexBCs[i] = bc
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return
}

// Metrics is the step metrics of the state held fixed: nothing moves, so
// the volume change rate is zero.
func (is *InitialState) Metrics(previousStep float64) scenario.StepMetrics {
	return scenario.NewStepMetrics(previousStep, is.Volumes, is.SoundSpeed, nil)
}

// TotalEnergy is the sum of internal and kinetic energy over all cells.
func (is *InitialState) TotalEnergy() (e float64) {
	var (
		perCell = make([]float64, len(is.Volumes))
	)
	for k := range perCell {
		u := is.Velocity[k].Norm()
		perCell[k] = is.Density[k] * (is.Energy[k] + 0.5*u*u)
	}
	return floats.Dot(perCell, is.Volumes)
}

func (is *InitialState) TotalMass() float64 {
	return floats.Dot(is.Density, is.Volumes)
}

// BoundaryCount counts the vertices tagged with each condition type.
func (is *InitialState) BoundaryCount() (counts map[utils.BCType]int) {
	counts = make(map[utils.BCType]int)
	for _, bc := range is.VertexBCs {
		if bc == nil {
			counts[utils.BCNone]++
			continue
		}
		counts[bc.Type()]++
	}
	return
}
