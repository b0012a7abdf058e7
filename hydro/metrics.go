package hydro

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/notargets/gohydro/scenario"
)

// Metrics exports the progress of a run. All methods are safe on a nil
// *Metrics.
type Metrics struct {
	Steps    prometheus.Counter
	SimTime  prometheus.Gauge
	TimeStep prometheus.Gauge
	Limits   *prometheus.CounterVec
	Outputs  prometheus.Counter
}

// NewMetrics registers the run metrics with reg. A nil reg leaves them
// unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Steps: f.NewCounter(prometheus.CounterOpts{
			Namespace: "gohydro",
			Name:      "steps_total",
			Help:      "Time steps taken.",
		}),
		SimTime: f.NewGauge(prometheus.GaugeOpts{
			Namespace: "gohydro",
			Name:      "simulation_time",
			Help:      "Simulation time reached.",
		}),
		TimeStep: f.NewGauge(prometheus.GaugeOpts{
			Namespace: "gohydro",
			Name:      "time_step",
			Help:      "Size of the last time step.",
		}),
		Limits: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gohydro",
			Name:      "time_step_limits_total",
			Help:      "Adaptive time steps by the limit that bound them.",
		}, []string{"limit"}),
		Outputs: f.NewCounter(prometheus.CounterOpts{
			Namespace: "gohydro",
			Name:      "outputs_total",
			Help:      "Checkpoints handed to the writer.",
		}),
	}
}

func (m *Metrics) step(t, dt float64) {
	if m == nil {
		return
	}
	m.Steps.Inc()
	m.SimTime.Set(t)
	m.TimeStep.Set(dt)
}

func (m *Metrics) limit(l scenario.Limiter) {
	if m == nil {
		return
	}
	m.Limits.WithLabelValues(l.String()).Inc()
}

func (m *Metrics) output() {
	if m == nil {
		return
	}
	m.Outputs.Inc()
}
