package hydro

import (
	"context"
	"log/slog"

	"github.com/notargets/gohydro/scenario"
)

// StaticSolver holds the initial state fixed. Driving it previews the step
// schedule the scenario produces before anything moves.
type StaticSolver struct {
	is *InitialState
}

func NewStaticSolver() *StaticSolver { return &StaticSolver{} }

func (ss *StaticSolver) Initialize(_ *scenario.Descriptor, is *InitialState) error {
	ss.is = is
	return nil
}

func (ss *StaticSolver) Metrics() scenario.StepMetrics { return ss.is.Metrics(0) }

func (ss *StaticSolver) Advance(ctx context.Context, _ float64) error { return ctx.Err() }

// LogWriter records checkpoint names instead of writing files.
type LogWriter struct {
	Logger *slog.Logger
}

func (lw LogWriter) Write(name string, step int, t float64) error {
	lw.Logger.Info("checkpoint", "name", name, "step", step, "time", t)
	return nil
}
