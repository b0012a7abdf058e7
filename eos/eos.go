// Package eos supplies equation-of-state models relating density, specific
// internal energy, pressure and sound speed.
package eos

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Model is the capability the hydro solver consumes. Implementations are
// immutable and safe to share across goroutines.
type Model interface {
	Name() string
	// StateFromEnergy returns pressure and sound speed given density and
	// specific internal energy.
	StateFromEnergy(rho, e float64) (p, c float64)
	// StateFromPressure is the inverse, returning specific internal energy
	// and sound speed.
	StateFromPressure(rho, p float64) (e, c float64)
	Temperature(rho, e float64) float64
}

type IdealGas struct {
	gamma, cv float64
}

func NewIdealGas(gamma, cv float64) (ig *IdealGas, err error) {
	switch {
	case math.IsNaN(gamma) || gamma <= 1:
		err = fmt.Errorf("ideal gas: gamma must be > 1, have %v", gamma)
	case math.IsNaN(cv) || cv <= 0:
		err = fmt.Errorf("ideal gas: specific heat must be > 0, have %v", cv)
	default:
		ig = &IdealGas{gamma: gamma, cv: cv}
	}
	return
}

func (ig *IdealGas) Name() string          { return "ideal_gas" }
func (ig *IdealGas) Gamma() float64        { return ig.gamma }
func (ig *IdealGas) SpecificHeat() float64 { return ig.cv }

func (ig *IdealGas) StateFromEnergy(rho, e float64) (p, c float64) {
	p = (ig.gamma - 1.) * rho * e
	c = ig.soundSpeed(rho, p)
	return
}

func (ig *IdealGas) StateFromPressure(rho, p float64) (e, c float64) {
	e = p / ((ig.gamma - 1.) * rho)
	c = ig.soundSpeed(rho, p)
	return
}

func (ig *IdealGas) Temperature(rho, e float64) float64 {
	return e / ig.cv
}

func (ig *IdealGas) soundSpeed(rho, p float64) float64 {
	return math.Sqrt(math.Abs(ig.gamma * p / rho))
}

// Constructor builds a Model from named parameters.
type Constructor func(params map[string]float64) (Model, error)

var registry = map[string]Constructor{
	"ideal_gas": newIdealGasFromParams,
	"idealgas":  newIdealGasFromParams,
	"ideal":     newIdealGasFromParams,
}

func newIdealGasFromParams(params map[string]float64) (Model, error) {
	var (
		gamma, okG = params["gamma"]
		cv, okC    = params["cv"]
	)
	if !okG {
		return nil, fmt.Errorf("ideal gas: missing parameter \"gamma\"")
	}
	if !okC {
		cv = 1.
	}
	ig, err := NewIdealGas(gamma, cv)
	if err != nil {
		return nil, err
	}
	return ig, nil
}

// New builds the model registered under tag. Tags and parameter names are
// matched case-insensitively.
func New(tag string, params map[string]float64) (m Model, err error) {
	var (
		ctor Constructor
		ok   bool
		lp   = make(map[string]float64, len(params))
	)
	if ctor, ok = registry[strings.ToLower(strings.TrimSpace(tag))]; !ok {
		err = fmt.Errorf("unknown equation of state %q, have %v", tag, Tags())
		return
	}
	for k, v := range params {
		lp[strings.ToLower(k)] = v
	}
	return ctor(lp)
}

// Tags lists the registered model tags.
func Tags() (tags []string) {
	for k := range registry {
		tags = append(tags, k)
	}
	sort.Strings(tags)
	return
}
