// Package scenario describes a hydro problem independently of the solver
// that runs it: output naming, time-step control, equation of state,
// initial conditions and boundary conditions.
package scenario

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/notargets/gohydro/eos"
	"github.com/notargets/gohydro/utils"
)

// Options carries everything Build needs. Mesh is optional; when present
// the boundary and initial-state checks run against it inside Build.
type Options struct {
	Prefix, Postfix string
	OutputFreq      int
	CFL             TimeConstants
	FinalTime       float64
	InitialTimeStep float64
	MaxSteps        int
	EOS             eos.Model
	ICs             InitialCondition
	BCs             []BCEntry
	Mesh            []MeshEntity
}

// MeshEntity is a point the solver will classify, flagged when it lies on
// the domain boundary.
type MeshEntity struct {
	X          utils.Vector
	OnBoundary bool
}

// Descriptor is immutable once Build returns and may be shared freely
// between goroutines.
type Descriptor struct {
	prefix, postfix string
	outputFreq      int
	cfl             TimeConstants
	finalTime       float64
	initialTimeStep float64
	maxSteps        int
	eos             eos.Model
	ics             InitialCondition
	bcs             []BCEntry
}

// Build validates opts and returns the descriptor. All violations found
// are returned together, each as a *ConfigurationError.
func Build(opts Options) (d *Descriptor, err error) {
	var (
		errs []error
		add  = func(field, format string, args ...interface{}) {
			errs = append(errs, configErrorf(field, format, args...))
		}
		positive = func(field string, val float64) {
			if math.IsNaN(val) || val <= 0 {
				add(field, "must be > 0, have %v", val)
			}
		}
	)
	if opts.Prefix == "" {
		add("prefix", "must not be empty")
	}
	if opts.Postfix == "" {
		add("postfix", "must not be empty")
	}
	if opts.OutputFreq <= 0 {
		add("output_freq", "must be > 0, have %d", opts.OutputFreq)
	}
	positive("CFL.accoustic", opts.CFL.Acoustic)
	positive("CFL.volume", opts.CFL.Volume)
	positive("CFL.growth", opts.CFL.Growth)
	if opts.CFL.Growth > 0 && opts.CFL.Growth < 1 {
		add("CFL.growth", "must be >= 1, have %v", opts.CFL.Growth)
	}
	positive("final_time", opts.FinalTime)
	positive("initial_time_step", opts.InitialTimeStep)
	if opts.MaxSteps <= 0 {
		add("max_steps", "must be > 0, have %d", opts.MaxSteps)
	}
	if opts.EOS == nil {
		add("eos", "no equation of state")
	}
	if opts.ICs == nil {
		add("ics", "no initial condition function")
	}
	for i, bc := range opts.BCs {
		if bc.Condition == nil {
			add("bcs", "entry %d has no condition", i)
		}
		if bc.Region == nil {
			add("bcs", "entry %d has no region predicate", i)
		}
	}
	if len(errs) != 0 {
		return nil, errors.Join(errs...)
	}

	d = &Descriptor{
		prefix:          opts.Prefix,
		postfix:         opts.Postfix,
		outputFreq:      opts.OutputFreq,
		cfl:             opts.CFL,
		finalTime:       opts.FinalTime,
		initialTimeStep: opts.InitialTimeStep,
		maxSteps:        opts.MaxSteps,
		eos:             opts.EOS,
		ics:             opts.ICs,
		bcs:             make([]BCEntry, len(opts.BCs)),
	}
	copy(d.bcs, opts.BCs)

	if len(opts.Mesh) != 0 {
		if err = d.ValidateMesh(opts.Mesh, 0); err != nil {
			return nil, err
		}
		for _, me := range opts.Mesh {
			if _, err = d.EvaluateInitialCondition(me.X, 0); err != nil {
				return nil, err
			}
		}
	}
	return
}

func (d *Descriptor) Prefix() string                     { return d.prefix }
func (d *Descriptor) Postfix() string                    { return d.postfix }
func (d *Descriptor) OutputFreq() int                    { return d.outputFreq }
func (d *Descriptor) CFL() TimeConstants                 { return d.cfl }
func (d *Descriptor) FinalTime() float64                 { return d.finalTime }
func (d *Descriptor) InitialTimeStep() float64           { return d.initialTimeStep }
func (d *Descriptor) MaxSteps() int                      { return d.maxSteps }
func (d *Descriptor) EOS() eos.Model                     { return d.eos }
func (d *Descriptor) InitialCondition() InitialCondition { return d.ics }

// BCs returns a copy of the boundary list in declaration order.
func (d *Descriptor) BCs() (bcs []BCEntry) {
	bcs = make([]BCEntry, len(d.bcs))
	copy(bcs, d.bcs)
	return
}

// OutputName is the checkpoint name handed to the output writer.
func (d *Descriptor) OutputName(step int) string {
	return fmt.Sprintf("%s.%07d.%s", d.prefix, step, d.postfix)
}

// EvaluateInitialCondition returns the initial state at x, or a
// ConfigurationError when the state is not physical.
func (d *Descriptor) EvaluateInitialCondition(x utils.Vector, t float64) (s State, err error) {
	s = d.ics.Evaluate(x, t)
	if err = checkPhysical(x, s); err != nil {
		s = State{}
	}
	return
}

// ClassifyBoundary returns the condition of the first region containing x.
// ok is false for interior points.
func (d *Descriptor) ClassifyBoundary(x utils.Vector, t float64) (bc BoundaryCondition, ok bool) {
	for _, entry := range d.bcs {
		if entry.Region.Contains(x, t) {
			return entry.Condition, true
		}
	}
	return nil, false
}

// ValidateMesh checks the boundary list against concrete mesh entities at
// time t: every boundary entity must be claimed by exactly one entry and no
// entity by more than one.
func (d *Descriptor) ValidateMesh(entities []MeshEntity, t float64) error {
	var (
		matches []int
	)
	for _, me := range entities {
		matches = matches[:0]
		for i, entry := range d.bcs {
			if entry.Region.Contains(me.X, t) {
				matches = append(matches, i)
			}
		}
		switch {
		case len(matches) > 1:
			return configErrorf("bcs", "entries %v overlap at %v", matches, me.X)
		case len(matches) == 0 && me.OnBoundary && len(d.bcs) == 0:
			return configErrorf("bcs", "no boundary conditions but %v is on the boundary", me.X)
		case len(matches) == 0 && me.OnBoundary:
			return configErrorf("bcs", "boundary point %v is not covered by any entry", me.X)
		}
	}
	return nil
}

func (d *Descriptor) Print(w io.Writer) {
	fmt.Fprintf(w, "\"%s\"\t\t= Prefix\n", d.prefix)
	fmt.Fprintf(w, "\"%s\"\t\t\t= Postfix\n", d.postfix)
	fmt.Fprintf(w, "[%d]\t\t\t= Output Frequency\n", d.outputFreq)
	fmt.Fprintf(w, "%8.5f\t\t= CFL Acoustic\n", d.cfl.Acoustic)
	fmt.Fprintf(w, "%8.5f\t\t= CFL Volume\n", d.cfl.Volume)
	fmt.Fprintf(w, "%8.5f\t\t= CFL Growth\n", d.cfl.Growth)
	fmt.Fprintf(w, "%8.5f\t\t= FinalTime\n", d.finalTime)
	fmt.Fprintf(w, "%8.2e\t\t= Initial Time Step\n", d.initialTimeStep)
	fmt.Fprintf(w, "[%d]\t\t\t= Max Steps\n", d.maxSteps)
	fmt.Fprintf(w, "[%s]\t\t= EOS\n", d.eos.Name())
	for i, bc := range d.bcs {
		fmt.Fprintf(w, "BCs[%d] = %s, %v\n", i, bc.Condition.Type(), bc.Region)
	}
}
