package hydro

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"

	"github.com/notargets/gohydro/scenario"
)

// Solver is the numerical scheme the driver steps. It owns the evolving
// state; the driver only decides step sizes and when to stop or write.
type Solver interface {
	Initialize(d *scenario.Descriptor, is *InitialState) error
	// Metrics reports the state after the last Advance. PreviousStep is
	// filled in by the driver.
	Metrics() scenario.StepMetrics
	Advance(ctx context.Context, dt float64) error
}

// Writer emits a checkpoint under the name the scenario assigns to step.
type Writer interface {
	Write(name string, step int, t float64) error
}

type WriterFunc func(name string, step int, t float64) error

func (f WriterFunc) Write(name string, step int, t float64) error { return f(name, step, t) }

type StopReason uint8

const (
	StopFinalTime StopReason = iota
	StopMaxSteps
)

func (sr StopReason) String() string {
	if sr == StopMaxSteps {
		return "max_steps"
	}
	return "final_time"
}

type Summary struct {
	Steps    int
	Time     float64
	LastStep float64
	Reason   StopReason
	Outputs  []string
	Limits   map[scenario.Limiter]int
}

type Driver struct {
	d       *scenario.Descriptor
	logger  *slog.Logger
	metrics *Metrics
}

// NewDriver returns a driver for d. A nil logger discards output, nil
// metrics are not recorded.
func NewDriver(d *scenario.Descriptor, logger *slog.Logger, metrics *Metrics) *Driver {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Driver{
		d:       d,
		logger:  logger,
		metrics: metrics,
	}
}

// Run steps solver from time zero until the final time or the step limit.
// The first step is the scenario's initial step, later steps come from
// NextTimeStep, and the last step is shortened to land on the final time.
// A checkpoint is written at step zero, every OutputFreq steps and at the
// end.
func (dr *Driver) Run(ctx context.Context, solver Solver, is *InitialState, w Writer) (sum Summary, err error) {
	var (
		d          = dr.d
		finalTime  = d.FinalTime()
		dt         float64
		lim        scenario.Limiter
		limName    string
		lastOutput = -1
	)
	sum.Limits = make(map[scenario.Limiter]int)
	if err = solver.Initialize(d, is); err != nil {
		err = fmt.Errorf("initializing solver: %w", err)
		return
	}
	write := func() error {
		name := d.OutputName(sum.Steps)
		if err := w.Write(name, sum.Steps, sum.Time); err != nil {
			return fmt.Errorf("writing %s: %w", name, err)
		}
		sum.Outputs = append(sum.Outputs, name)
		lastOutput = sum.Steps
		dr.metrics.output()
		return nil
	}
	if err = write(); err != nil {
		return
	}
	for sum.Time < finalTime && sum.Steps < d.MaxSteps() {
		if err = ctx.Err(); err != nil {
			return
		}
		if sum.Steps == 0 {
			dt, limName = d.InitialTimeStep(), "initial"
		} else {
			m := solver.Metrics()
			m.PreviousStep = dt
			dt, lim = d.NextTimeStepLimited(m)
			limName = lim.String()
			sum.Limits[lim]++
			dr.metrics.limit(lim)
		}
		last := sum.Time+dt >= finalTime
		if last {
			dt = finalTime - sum.Time
		}
		if !(dt > 0) || math.IsInf(dt, 0) {
			err = fmt.Errorf("step %d: time step %v is not usable", sum.Steps+1, dt)
			return
		}
		if err = solver.Advance(ctx, dt); err != nil {
			err = fmt.Errorf("step %d: %w", sum.Steps+1, err)
			return
		}
		sum.Steps++
		sum.LastStep = dt
		if last {
			sum.Time = finalTime
		} else {
			sum.Time += dt
		}
		dr.metrics.step(sum.Time, dt)
		dr.logger.Debug("step", "step", sum.Steps, "time", sum.Time, "dt", dt, "limit", limName)
		if sum.Steps%d.OutputFreq() == 0 {
			if err = write(); err != nil {
				return
			}
		}
	}
	if sum.Time < finalTime {
		sum.Reason = StopMaxSteps
	}
	if lastOutput != sum.Steps {
		if err = write(); err != nil {
			return
		}
	}
	dr.logger.Info("run complete",
		"steps", sum.Steps, "time", sum.Time, "reason", sum.Reason.String(),
		"outputs", len(sum.Outputs))
	return
}
