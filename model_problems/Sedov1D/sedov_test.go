package Sedov1D

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/gohydro/InputParameters"
	"github.com/notargets/gohydro/scenario"
	"github.com/notargets/gohydro/utils"
)

func TestConstants(t *testing.T) {
	c := ConstantsFromInput(InputParameters.NewSedov1D())
	assert.Equal(t, 1.4, c.Gamma)
	assert.Equal(t, 0.03125, c.DX())
	assert.Equal(t, c.DX(), c.Volume())
	assert.InDelta(t, 0.015625, c.DeltaR(), 1e-15)
	assert.Greater(t, c.DeltaR(), 0.015625)
	assert.NoError(t, c.validate())
	{
		r, err := c.Region("xmax")
		require.NoError(t, err)
		assert.True(t, r.Contains(utils.NewVector(1), 0))
		_, err = c.Region("ymin")
		assert.True(t, scenario.IsConfigurationError(err))
	}
}

func TestDefault(t *testing.T) {
	d, err := Default()
	require.NoError(t, err)
	{ // Reference run parameters
		assert.Equal(t, "sedov_1d", d.Prefix())
		assert.Equal(t, "dat", d.Postfix())
		assert.Equal(t, 20, d.OutputFreq())
		assert.Equal(t, scenario.TimeConstants{Acoustic: 0.25, Volume: 0.1, Growth: 1.01}, d.CFL())
		assert.Equal(t, 1., d.FinalTime())
		assert.Equal(t, 1e-5, d.InitialTimeStep())
		assert.Equal(t, 20, d.MaxSteps())
		assert.Equal(t, "sedov_1d.0000020.dat", d.OutputName(20))
	}
	{ // Energy deposited at the origin, cold gas at rest elsewhere
		s, err := d.EvaluateInitialCondition(utils.NewVector(0), 0)
		require.NoError(t, err)
		assert.InDelta(t, 3.1336448, s.Pressure, 1e-12)
		assert.Equal(t, 1., s.Density)
		assert.True(t, s.Velocity.IsZero())

		s, err = d.EvaluateInitialCondition(utils.NewVector(0.015625), 0)
		require.NoError(t, err)
		assert.InDelta(t, 3.1336448, s.Pressure, 1e-12)

		for _, x := range []float64{0.046875, 0.5, 1} {
			s, err = d.EvaluateInitialCondition(utils.NewVector(x), 0)
			require.NoError(t, err)
			assert.Equal(t, 1e-6, s.Pressure)
			assert.Equal(t, 1., s.Density)
			assert.True(t, s.Velocity.IsZero())
		}
	}
	{ // Symmetry on both ends, one shared condition
		left, ok := d.ClassifyBoundary(utils.NewVector(0), 0)
		require.True(t, ok)
		assert.True(t, left.HasSymmetry())
		right, ok := d.ClassifyBoundary(utils.NewVector(1), 0)
		require.True(t, ok)
		assert.Same(t, left, right)
		for _, x := range []float64{0.015625, 0.5, 0.999} {
			_, ok = d.ClassifyBoundary(utils.NewVector(x), 0)
			assert.False(t, ok)
		}
		assert.Len(t, d.BCs(), 1)
	}
	{ // The first step after the initial one obeys the growth cap
		dt := d.NextTimeStep(scenario.StepMetrics{PreviousStep: d.InitialTimeStep()})
		assert.InDelta(t, 1.01e-5, dt, 1e-18)
	}
}

func TestNewScenario(t *testing.T) {
	classify := func(d *scenario.Descriptor) (types []utils.BCType) {
		for _, x := range []float64{0, 0.25, 0.5, 1} {
			bc, ok := d.ClassifyBoundary(utils.NewVector(x), 0)
			if !ok {
				types = append(types, utils.BCNone)
				continue
			}
			types = append(types, bc.Type())
		}
		return
	}
	{ // Entry order does not change the classification
		ip := InputParameters.NewSedov1D()
		ip.BCs = map[string]InputParameters.BCParameters{
			"Symmetry":       {Regions: []string{"xmin"}},
			"Pressure-right": {Regions: []string{"xmax"}, Params: map[string]float64{"p": 1e-6}},
		}
		m, err := Mesh(ip)
		require.NoError(t, err)
		d, err := NewScenario(ip, m.Entities()...)
		require.NoError(t, err)
		entries := d.BCs()
		require.Len(t, entries, 2)
		want := []utils.BCType{utils.BCSymmetry, utils.BCNone, utils.BCNone, utils.BCPressure}
		for _, order := range [][]scenario.BCEntry{
			entries,
			{entries[1], entries[0]},
		} {
			dp, err := scenario.Build(scenario.Options{
				Prefix:          d.Prefix(),
				Postfix:         d.Postfix(),
				OutputFreq:      d.OutputFreq(),
				CFL:             d.CFL(),
				FinalTime:       d.FinalTime(),
				InitialTimeStep: d.InitialTimeStep(),
				MaxSteps:        d.MaxSteps(),
				EOS:             d.EOS(),
				ICs:             d.InitialCondition(),
				BCs:             order,
				Mesh:            m.Entities(),
			})
			require.NoError(t, err)
			if diff := cmp.Diff(want, classify(dp)); diff != "" {
				t.Errorf("classification mismatch (-want +got):\n%s", diff)
			}
		}
	}
	{ // Configuration errors
		mutations := []func(ip *InputParameters.InputParameters1D){
			func(ip *InputParameters.InputParameters1D) {
				ip.BCs = map[string]InputParameters.BCParameters{"Symmetry": {Regions: []string{"left"}}}
			},
			func(ip *InputParameters.InputParameters1D) {
				ip.BCs = map[string]InputParameters.BCParameters{"Vortex": {Regions: []string{"xmin", "xmax"}}}
			},
			func(ip *InputParameters.InputParameters1D) {
				ip.BCs = map[string]InputParameters.BCParameters{"Symmetry": {}}
			},
			func(ip *InputParameters.InputParameters1D) { ip.EOS.Type = "stiffened_gas" },
			func(ip *InputParameters.InputParameters1D) { ip.EOS.Params = map[string]float64{"gamma": 0.9} },
			func(ip *InputParameters.InputParameters1D) { ip.E0 = 0 },
			func(ip *InputParameters.InputParameters1D) { ip.CFL.Growth = 0.5 },
			// Only one end covered
			func(ip *InputParameters.InputParameters1D) {
				ip.BCs = map[string]InputParameters.BCParameters{"Symmetry": {Regions: []string{"xmin"}}}
			},
			// Both ends claimed twice
			func(ip *InputParameters.InputParameters1D) {
				ip.BCs["Wall"] = InputParameters.BCParameters{Regions: []string{"xmax"}}
			},
		}
		for i, mutate := range mutations {
			ip := InputParameters.NewSedov1D()
			mutate(ip)
			m, err := Mesh(ip)
			require.NoError(t, err)
			_, err = NewScenario(ip, m.Entities()...)
			assert.True(t, scenario.IsConfigurationError(err), "case %d: %v", i, err)
		}
	}
	{ // Without a probe the mesh checks are deferred
		ip := InputParameters.NewSedov1D()
		ip.BCs = map[string]InputParameters.BCParameters{"Symmetry": {Regions: []string{"xmin"}}}
		d, err := NewScenario(ip)
		require.NoError(t, err)
		m, err := Mesh(ip)
		require.NoError(t, err)
		assert.True(t, scenario.IsConfigurationError(d.ValidateMesh(m.Entities(), 0)))
	}
}

func TestInitialConditions(t *testing.T) {
	ic := NewInitialConditions(Constants{Gamma: 5. / 3., NumCellsX: 10, LengthX: 2, E0: 1})
	assert.InDelta(t, (2./3.)/0.2, ic.BlastPressure(), 1e-12)
	s := ic.Evaluate(utils.NewVector(-0.05), 0)
	assert.InDelta(t, ic.BlastPressure(), s.Pressure, 1e-15)
	s = ic.Evaluate(utils.NewVector(0.15), 0)
	assert.Equal(t, DefaultAmbientPressure, s.Pressure)
	assert.False(t, math.IsNaN(s.Density))
}

func TestInitialConditionsFrozen(t *testing.T) {
	d, err := Default()
	require.NoError(t, err)
	{ // The descriptor holds a copy; changing one obtained from it has no effect
		_, isPtr := d.InitialCondition().(*InitialConditions)
		assert.False(t, isPtr)
		ic, ok := d.InitialCondition().(InitialConditions)
		require.True(t, ok)
		ic.deltaR = 10
		ic.density = -1
		s, err := d.EvaluateInitialCondition(utils.NewVector(0.5), 0)
		require.NoError(t, err)
		assert.Equal(t, 1e-6, s.Pressure)
		assert.Equal(t, 1., s.Density)
		assert.InDelta(t, 0.015625, d.InitialCondition().(InitialConditions).DeltaR(), 1e-15)
	}
	{ // A position with no components is the origin, not a panic
		var s scenario.State
		assert.NotPanics(t, func() {
			s, err = d.EvaluateInitialCondition(utils.Vector{}, 0)
		})
		require.NoError(t, err)
		assert.InDelta(t, 3.1336448, s.Pressure, 1e-12)
		assert.Equal(t, 0, s.Velocity.Len())
	}
}
