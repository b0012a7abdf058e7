package scenario

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStepMetrics(t *testing.T) {
	{
		m := NewStepMetrics(1e-3, []float64{0.5, 0.25, 1}, []float64{1, -4, 2}, []float64{0.1, -0.3})
		assert.Equal(t, 1e-3, m.PreviousStep)
		assert.Equal(t, 0.25, m.CharacteristicLength)
		assert.Equal(t, 4., m.MaxSoundSpeed)
		assert.Equal(t, 0.3, m.MaxVolumeChangeRate)
	}
	{
		m := NewStepMetrics(1, nil, nil, nil)
		assert.Equal(t, StepMetrics{PreviousStep: 1}, m)
	}
}

func TestNextTimeStep(t *testing.T) {
	d, err := Build(validOptions(t))
	require.NoError(t, err)
	{ // Nothing moving and no sound: the growth cap alone
		for _, prev := range []float64{1e-5, 0.1, 3} {
			dt, lim := d.NextTimeStepLimited(StepMetrics{PreviousStep: prev})
			assert.InDelta(t, prev*1.01, dt, 1e-15*prev)
			assert.Equal(t, LimitGrowth, lim)
		}
	}
	{ // Acoustic limit: 0.25 * 0.1 / 10
		dt, lim := d.NextTimeStepLimited(StepMetrics{
			PreviousStep:         1,
			CharacteristicLength: 0.1,
			MaxSoundSpeed:        10,
		})
		assert.InDelta(t, 2.5e-3, dt, 1e-15)
		assert.Equal(t, LimitAcoustic, lim)
		assert.Equal(t, "acoustic", lim.String())
	}
	{ // Volume limit: 0.1 / 50, sign of the rate ignored
		dt, lim := d.NextTimeStepLimited(StepMetrics{
			PreviousStep:         1,
			CharacteristicLength: 1,
			MaxSoundSpeed:        1,
			MaxVolumeChangeRate:  -50,
		})
		assert.InDelta(t, 2e-3, dt, 1e-15)
		assert.Equal(t, LimitVolume, lim)
	}
	{ // The result never exceeds the growth cap
		for _, m := range []StepMetrics{
			{PreviousStep: 1e-5, CharacteristicLength: 1, MaxSoundSpeed: 1e-6},
			{PreviousStep: 1e-5, CharacteristicLength: 1, MaxVolumeChangeRate: 1e-9},
			{PreviousStep: 2, CharacteristicLength: 0.03125, MaxSoundSpeed: 2.0947},
		} {
			dt := d.NextTimeStep(m)
			assert.LessOrEqual(t, dt, m.PreviousStep*d.CFL().Growth)
			assert.False(t, math.IsInf(dt, 0))
		}
	}
	{ // Ties go to growth
		opts := validOptions(t)
		opts.CFL.Growth = 1
		d, err := Build(opts)
		require.NoError(t, err)
		dt, lim := d.NextTimeStepLimited(StepMetrics{
			PreviousStep:         1,
			CharacteristicLength: 1,
			MaxSoundSpeed:        0.25,
		})
		assert.Equal(t, 1., dt)
		assert.Equal(t, LimitGrowth, lim)
	}
	{
		assert.Equal(t, "growth", LimitGrowth.String())
		assert.Equal(t, "volume", LimitVolume.String())
	}
}
