package hydro

import (
	"fmt"
	"image/color"

	"github.com/guptarohit/asciigraph"
	"github.com/notargets/avs/chart2d"
	utils2 "github.com/notargets/avs/utils"
	"gonum.org/v1/gonum/floats"
)

type PlotField uint8

const (
	Density PlotField = iota
	Pressure
	Energy
	SoundSpeed
)

func (pf PlotField) String() string {
	strings := []string{
		"Density",
		"Pressure",
		"Energy",
		"Sound Speed",
	}
	if int(pf) >= len(strings) {
		return "Unknown"
	}
	return strings[int(pf)]
}

func (is *InitialState) Field(pf PlotField) (f []float64) {
	switch pf {
	case Density:
		f = is.Density
	case Pressure:
		f = is.Pressure
	case Energy:
		f = is.Energy
	case SoundSpeed:
		f = is.SoundSpeed
	}
	return
}

// X returns the first coordinate of every centroid.
func (is *InitialState) X() (x []float64) {
	x = make([]float64, len(is.Centroids))
	for k, c := range is.Centroids {
		x[k] = c.AtVec(0)
	}
	return
}

// ASCIIPlot renders one field against cell index for a terminal.
func (is *InitialState) ASCIIPlot(pf PlotField, height, width int) string {
	var (
		f = is.Field(pf)
	)
	if len(f) == 0 {
		return ""
	}
	return asciigraph.Plot(f,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(fmt.Sprintf("%s, %d cells, min %.4g max %.4g",
			pf, len(f), floats.Min(f), floats.Max(f))))
}

// PlotInitialState opens an interactive chart of the listed fields drawn as
// polylines over the cell centroids. The window stays up until the process
// exits.
func (is *InitialState) PlotInitialState(fields ...PlotField) (ch *chart2d.Chart2D, err error) {
	var (
		x          = is.X()
		fmin, fmax = 0., 0.
		colors     = []color.RGBA{utils2.RED, utils2.GREEN, utils2.WHITE}
	)
	if len(x) < 2 {
		err = fmt.Errorf("need at least two cells to plot, have %d", len(x))
		return
	}
	if len(fields) == 0 {
		fields = []PlotField{Density, Pressure}
	}
	for _, pf := range fields {
		f := is.Field(pf)
		fmin = min(fmin, floats.Min(f))
		fmax = max(fmax, floats.Max(f))
	}
	fmax *= 1.1
	ch = chart2d.NewChart2D(float32(floats.Min(x)), float32(floats.Max(x)),
		float32(fmin), float32(fmax), 1024, 1024, utils2.WHITE, utils2.BLACK)
	for i, pf := range fields {
		ch.AddLine(polyline(x, is.Field(pf)), colors[i%len(colors)])
	}
	return
}

// polyline packs consecutive points as x1, y1, x2, y2 segments.
func polyline(x, f []float64) (line []float32) {
	line = make([]float32, 0, 4*(len(x)-1))
	for i := 0; i < len(x)-1; i++ {
		line = append(line,
			float32(x[i]), float32(f[i]),
			float32(x[i+1]), float32(f[i+1]),
		)
	}
	return
}
