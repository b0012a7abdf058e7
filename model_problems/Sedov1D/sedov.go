// Package Sedov1D sets up the planar Sedov blast wave: a cold, uniform gas
// at rest with the blast energy deposited in the cell at the origin.
package Sedov1D

import (
	"fmt"
	"math"
	"sort"

	"github.com/notargets/gohydro/InputParameters"
	"github.com/notargets/gohydro/eos"
	"github.com/notargets/gohydro/mesh1D"
	"github.com/notargets/gohydro/scenario"
	"github.com/notargets/gohydro/utils"
)

const (
	DefaultE0              = 0.244816
	DefaultDensity         = 1.0
	DefaultAmbientPressure = 1.e-6
)

// Constants are the problem constants the initial conditions and regions
// close over.
type Constants struct {
	Gamma     float64
	NumCellsX int
	LengthX   float64
	E0        float64
}

func (c Constants) DX() float64     { return c.LengthX / float64(c.NumCellsX) }
func (c Constants) Volume() float64 { return c.DX() }

// DeltaR is the radius inside which the blast energy is deposited: half a
// cell plus machine epsilon, which puts the first cell centroid inside.
func (c Constants) DeltaR() float64 {
	return epsilon + math.Abs(c.DX()/2)
}

var epsilon = math.Nextafter(1, 2) - 1

func (c Constants) validate() error {
	switch {
	case c.NumCellsX < 1:
		return &scenario.ConfigurationError{Field: "num_cells_x", Reason: fmt.Sprintf("must be > 0, have %d", c.NumCellsX)}
	case math.IsNaN(c.LengthX) || c.LengthX <= 0:
		return &scenario.ConfigurationError{Field: "length_x", Reason: fmt.Sprintf("must be > 0, have %v", c.LengthX)}
	case math.IsNaN(c.E0) || c.E0 <= 0:
		return &scenario.ConfigurationError{Field: "e0", Reason: fmt.Sprintf("must be > 0, have %v", c.E0)}
	case math.IsNaN(c.Gamma) || c.Gamma <= 1:
		return &scenario.ConfigurationError{Field: "gamma", Reason: fmt.Sprintf("must be > 1, have %v", c.Gamma)}
	}
	return nil
}

// InitialConditions is the Sedov initial state as a function object. It is
// held by value, so a descriptor built from it cannot be changed afterwards.
type InitialConditions struct {
	gamma, volume, deltaR, e0 float64
	density, ambientPressure  float64
}

func NewInitialConditions(c Constants) InitialConditions {
	return InitialConditions{
		gamma:           c.Gamma,
		volume:          c.Volume(),
		deltaR:          c.DeltaR(),
		e0:              c.E0,
		density:         DefaultDensity,
		ambientPressure: DefaultAmbientPressure,
	}
}

func (ic InitialConditions) DeltaR() float64  { return ic.deltaR }
func (ic InitialConditions) Density() float64 { return ic.density }

// BlastPressure is the pressure of the energy deposition region.
func (ic InitialConditions) BlastPressure() float64 {
	return (ic.gamma - 1) * ic.density * ic.e0 / ic.volume
}

// Evaluate treats a position with no components as the origin.
func (ic InitialConditions) Evaluate(x utils.Vector, _ float64) (s scenario.State) {
	var (
		r float64
	)
	s = scenario.State{
		Density:  ic.density,
		Velocity: utils.NewZeroVector(x.Len()),
		Pressure: ic.ambientPressure,
	}
	if x.Len() != 0 {
		r = math.Abs(x.AtVec(0))
	}
	if r < ic.deltaR {
		s.Pressure = ic.BlastPressure()
	}
	return
}

// Region returns the named region of the domain, "xmin" or "xmax".
func (c Constants) Region(name string) (r scenario.RegionPredicate, err error) {
	switch name {
	case "xmin":
		r = scenario.Plane{Axis: 0, Value: 0}
	case "xmax":
		r = scenario.Plane{Axis: 0, Value: c.LengthX}
	default:
		err = &scenario.ConfigurationError{Field: "bcs", Reason: fmt.Sprintf("unknown region %q, have xmin, xmax", name)}
	}
	return
}

func ConstantsFromInput(ip *InputParameters.InputParameters1D) Constants {
	return Constants{
		Gamma:     ip.Gamma(),
		NumCellsX: ip.NumCellsX,
		LengthX:   ip.LengthX,
		E0:        ip.E0,
	}
}

// Mesh is the uniform mesh the input describes.
func Mesh(ip *InputParameters.InputParameters1D) (*mesh1D.Mesh, error) {
	return mesh1D.Uniform(0, ip.LengthX, ip.NumCellsX)
}

// NewScenario builds the descriptor for ip. Each BCs key, a catalog name
// with an optional "-label" suffix, becomes a single entry whose condition
// is shared by all of its regions. When probe is non-empty the boundary and
// initial-state checks run against it.
func NewScenario(ip *InputParameters.InputParameters1D, probe ...scenario.MeshEntity) (d *scenario.Descriptor, err error) {
	var (
		c     = ConstantsFromInput(ip)
		model eos.Model
		bcs   []scenario.BCEntry
	)
	if model, err = eos.New(ip.EOS.Type, ip.EOS.Params); err != nil {
		return nil, &scenario.ConfigurationError{Field: "eos", Reason: err.Error()}
	}
	if ig, ok := model.(*eos.IdealGas); ok {
		c.Gamma = ig.Gamma()
	}
	if err = c.validate(); err != nil {
		return
	}
	names := make([]string, 0, len(ip.BCs))
	for name := range ip.BCs {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		var entry scenario.BCEntry
		if entry, err = c.bcEntry(name, ip.BCs[name]); err != nil {
			return
		}
		bcs = append(bcs, entry)
	}
	return scenario.Build(scenario.Options{
		Prefix:     ip.Prefix,
		Postfix:    ip.Postfix,
		OutputFreq: ip.OutputFreq,
		CFL: scenario.TimeConstants{
			Acoustic: ip.CFL.Acoustic,
			Volume:   ip.CFL.Volume,
			Growth:   ip.CFL.Growth,
		},
		FinalTime:       ip.FinalTime,
		InitialTimeStep: ip.InitialTimeStep,
		MaxSteps:        ip.MaxSteps,
		EOS:             model,
		ICs:             NewInitialConditions(c),
		BCs:             bcs,
		Mesh:            probe,
	})
}

func (c Constants) bcEntry(name string, bp InputParameters.BCParameters) (entry scenario.BCEntry, err error) {
	var (
		bcType  utils.BCType
		regions scenario.AnyRegion
	)
	if bcType, _, err = utils.ParseBCTag(name); err != nil {
		return entry, &scenario.ConfigurationError{Field: "bcs", Reason: err.Error()}
	}
	if entry.Condition, err = scenario.NewCondition(bcType, bp.Params); err != nil {
		return
	}
	if len(bp.Regions) == 0 {
		err = &scenario.ConfigurationError{Field: "bcs", Reason: fmt.Sprintf("%s has no regions", name)}
		return
	}
	for _, rn := range bp.Regions {
		var r scenario.RegionPredicate
		if r, err = c.Region(rn); err != nil {
			return
		}
		regions = append(regions, r)
	}
	entry.Region = regions
	if len(regions) == 1 {
		entry.Region = regions[0]
	}
	return
}

// Default builds the reference Sedov run and checks it against its mesh.
func Default() (d *scenario.Descriptor, err error) {
	var (
		ip = InputParameters.NewSedov1D()
		m  *mesh1D.Mesh
	)
	if m, err = Mesh(ip); err != nil {
		return
	}
	return NewScenario(ip, m.Entities()...)
}
