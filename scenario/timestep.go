package scenario

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// TimeConstants are the three limiting coefficients of the adaptive step.
type TimeConstants struct {
	Acoustic float64 // fraction of the sound crossing time
	Volume   float64 // maximum fractional volume change per step
	Growth   float64 // maximum step-to-step growth factor, >= 1
}

// StepMetrics is what the solver measured on the step just taken.
type StepMetrics struct {
	PreviousStep         float64
	CharacteristicLength float64
	MaxSoundSpeed        float64
	MaxVolumeChangeRate  float64 // max |dV/dt| / V
}

// NewStepMetrics reduces per-entity solver values: the smallest length, the
// largest sound speed and the largest fractional volume change rate.
func NewStepMetrics(previousStep float64, lengths, soundSpeeds, volumeRates []float64) (m StepMetrics) {
	m.PreviousStep = previousStep
	if len(lengths) != 0 {
		m.CharacteristicLength = floats.Min(lengths)
	}
	m.MaxSoundSpeed = maxAbs(soundSpeeds)
	m.MaxVolumeChangeRate = maxAbs(volumeRates)
	return
}

func maxAbs(x []float64) (mx float64) {
	if len(x) == 0 {
		return
	}
	return math.Max(math.Abs(floats.Max(x)), math.Abs(floats.Min(x)))
}

// Limiter names the term that bound a time step.
type Limiter uint8

const (
	LimitGrowth Limiter = iota
	LimitAcoustic
	LimitVolume
)

func (l Limiter) String() string {
	switch l {
	case LimitAcoustic:
		return "acoustic"
	case LimitVolume:
		return "volume"
	default:
		return "growth"
	}
}

// NextTimeStep returns the next stable step size.
func (d *Descriptor) NextTimeStep(m StepMetrics) float64 {
	dt, _ := d.NextTimeStepLimited(m)
	return dt
}

// NextTimeStepLimited is NextTimeStep that also reports which limit bound.
// A zero sound speed or volume change rate leaves that term unconstrained.
// Ties go to the growth cap.
func (d *Descriptor) NextTimeStepLimited(m StepMetrics) (dt float64, lim Limiter) {
	var (
		cfl        = d.cfl
		dtAcoustic = math.Inf(1)
		dtVolume   = math.Inf(1)
	)
	if m.MaxSoundSpeed != 0 {
		dtAcoustic = cfl.Acoustic * m.CharacteristicLength / math.Abs(m.MaxSoundSpeed)
	}
	if m.MaxVolumeChangeRate != 0 {
		dtVolume = cfl.Volume / math.Abs(m.MaxVolumeChangeRate)
	}
	dt, lim = m.PreviousStep*cfl.Growth, LimitGrowth
	if dtAcoustic < dt {
		dt, lim = dtAcoustic, LimitAcoustic
	}
	if dtVolume < dt {
		dt, lim = dtVolume, LimitVolume
	}
	return
}
