/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"sort"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/gohydro/InputParameters"
	"github.com/notargets/gohydro/hydro"
	"github.com/notargets/gohydro/model_problems/Sedov1D"
	"github.com/notargets/gohydro/scenario"
	"github.com/notargets/gohydro/utils"
)

type Model1D struct {
	ICFile         string
	Graph          bool
	ASCII          bool
	Schedule       bool
	ParallelDegree int
	Profile        string
}

// OneDCmd represents the 1D command
var OneDCmd = &cobra.Command{
	Use:   "1D",
	Short: "One dimensional Sedov blast wave setup",
	Long: `
Builds the 1D Sedov blast wave scenario from an input file (or the reference
defaults), checks it against its mesh and reports the initial state,

gohydro 1D -I sedov.yaml --ascii --schedule`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		m1d := &Model1D{}
		m1d.ICFile, _ = cmd.Flags().GetString("inputConditionsFile")
		m1d.Graph, _ = cmd.Flags().GetBool("graph")
		m1d.ASCII, _ = cmd.Flags().GetBool("ascii")
		m1d.Schedule, _ = cmd.Flags().GetBool("schedule")
		m1d.Profile, _ = cmd.Flags().GetString("profile")
		m1d.ParallelDegree = viper.GetInt("parallel")
		if m1d.ParallelDegree < 1 {
			m1d.ParallelDegree = runtime.NumCPU()
		}
		switch m1d.Profile {
		case "cpu":
			defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
		case "mem":
			defer profile.Start(profile.MemProfile, profile.ProfilePath(".")).Stop()
		case "":
		default:
			return fmt.Errorf("unknown profile mode %q, want cpu or mem", m1d.Profile)
		}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		return Run1D(ctx, m1d, cmd.OutOrStdout(), NewLogger(cmd.ErrOrStderr()))
	},
}

func init() {
	rootCmd.AddCommand(OneDCmd)
	OneDCmd.Flags().StringP("inputConditionsFile", "I", "", "YAML file for input parameters, Sedov 1D defaults when omitted")
	OneDCmd.Flags().BoolP("graph", "g", false, "display a graph of the initial state")
	OneDCmd.Flags().BoolP("ascii", "a", false, "print the initial density and pressure as ASCII graphs")
	OneDCmd.Flags().BoolP("schedule", "s", false, "preview the time step schedule with the initial state held fixed")
	OneDCmd.Flags().IntP("parallel", "p", 0, "goroutines used to evaluate the initial state, 0 = number of CPUs")
	OneDCmd.Flags().String("profile", "", "write a cpu or mem profile to the current directory")
	_ = viper.BindPFlag("parallel", OneDCmd.Flags().Lookup("parallel"))
}

func processInput(m1d *Model1D) (ip *InputParameters.InputParameters1D, err error) {
	if len(m1d.ICFile) == 0 {
		return InputParameters.NewSedov1D(), nil
	}
	return InputParameters.ReadFile(m1d.ICFile)
}

func Run1D(ctx context.Context, m1d *Model1D, out io.Writer, logger *slog.Logger) (err error) {
	var (
		ip *InputParameters.InputParameters1D
		d  *scenario.Descriptor
		is *hydro.InitialState
	)
	if logger == nil {
		logger = NewLogger(io.Discard)
	}
	if ip, err = processInput(m1d); err != nil {
		return
	}
	ip.Print(out)
	mesh, err := Sedov1D.Mesh(ip)
	if err != nil {
		return &scenario.ConfigurationError{Field: "mesh", Reason: err.Error()}
	}
	if d, err = Sedov1D.NewScenario(ip, mesh.Entities()...); err != nil {
		return
	}
	d.Print(out)
	if is, err = hydro.Setup(ctx, d, mesh, m1d.ParallelDegree); err != nil {
		return
	}
	logger.Debug("initial state ready", "cells", mesh.K, "memory", utils.GetMemUsage())
	dt := d.NextTimeStep(is.Metrics(d.InitialTimeStep()))
	fmt.Fprintf(out, "Cells = %d, Mass = %8.6f, Energy = %8.6f\n", mesh.K, is.TotalMass(), is.TotalEnergy())
	counts := is.BoundaryCount()
	keys := make([]int, 0, len(counts))
	for bc := range counts {
		keys = append(keys, int(bc))
	}
	sort.Ints(keys)
	for _, key := range keys {
		fmt.Fprintf(out, "Vertices[%s] = %d\n", utils.BCType(key), counts[utils.BCType(key)])
	}
	fmt.Fprintf(out, "Second step estimate = %8.4e\n", dt)
	if m1d.ASCII {
		fmt.Fprintln(out, is.ASCIIPlot(hydro.Density, 10, 64))
		fmt.Fprintln(out, is.ASCIIPlot(hydro.Pressure, 10, 64))
	}
	if m1d.Schedule {
		dr := hydro.NewDriver(d, logger, hydro.NewMetrics(nil))
		sum, err := dr.Run(ctx, hydro.NewStaticSolver(), is, hydro.LogWriter{Logger: logger})
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Schedule: %d steps to t = %8.4e (%s), last step %8.4e\n",
			sum.Steps, sum.Time, sum.Reason, sum.LastStep)
	}
	if m1d.Graph {
		if _, err = is.PlotInitialState(hydro.Density, hydro.Pressure); err != nil {
			return
		}
		<-ctx.Done()
	}
	return
}
