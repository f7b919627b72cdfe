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
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/gopanel/InputParameters"
	"github.com/notargets/gopanel/graphics"
	"github.com/notargets/gopanel/model_problems/PanelMethod2D"
)

// SweepCmd represents the sweep command
var SweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Lift polar over a range of angles of attack",
	Long: `
Solves one discretization at every angle of a sweep, reusing the factored
system, and records each case in a SQLite database,

gopanel sweep --naca 2412 --alphaMin -4 --alphaMax 10 --alphaStep 2`,
	PreRun: bindFlags,
	Run: func(cmd *cobra.Command, args []string) {
		mp := newModelPanel(cmd)
		ip := processInput(mp)
		applySweepFlags(ip)
		if _, err := RunSweep(mp, ip); err != nil {
			log.WithError(err).Fatal("sweep failed")
		}
	},
}

func init() {
	rootCmd.AddCommand(SweepCmd)
	addCaseFlags(SweepCmd)
	SweepCmd.Flags().Float64("alphaMin", 0, "first angle of attack in degrees")
	SweepCmd.Flags().Float64("alphaMax", 0, "last angle of attack in degrees")
	SweepCmd.Flags().Float64("alphaStep", 1, "angle of attack increment in degrees")
	SweepCmd.Flags().StringP("plotFile", "p", "", "write the lift polar to this PNG file")
	SweepCmd.Flags().String("db", "gopanel.db", "SQLite file to record the solutions in, empty to skip")
	SweepCmd.Flags().Bool("profile", false, "write a CPU profile of the sweep to the current directory")
	SweepCmd.Flags().BoolP("graph", "g", false, "display the panels in an interactive chart after solving")
}

func applySweepFlags(ip *InputParameters.InputParametersPanel) {
	if viper.IsSet("alphaMin") {
		ip.AlphaSweep.Min = viper.GetFloat64("alphaMin")
	}
	if viper.IsSet("alphaMax") {
		ip.AlphaSweep.Max = viper.GetFloat64("alphaMax")
	}
	if viper.IsSet("alphaStep") || ip.AlphaSweep.Step == 0 {
		ip.AlphaSweep.Step = viper.GetFloat64("alphaStep")
	}
}

func RunSweep(mp *ModelPanel, ip *InputParameters.InputParametersPanel) (sols []*PanelMethod2D.Solution, err error) {
	var (
		x, y   []float64
		name   string
		alphas []float64
		pm     *PanelMethod2D.PanelMethod
	)
	if mp.Profile {
		defer startProfile().Stop()
	}
	if alphas, err = ip.Alphas(); err != nil {
		return
	}
	if x, y, name, err = LoadGeometry(ip, mp.Verbose); err != nil {
		return
	}
	if pm, err = NewPanelMethod(ip, x, y, mp.Verbose); err != nil {
		return
	}
	if sols, err = pm.Sweep(alphas); err != nil {
		return
	}
	cond := pm.ConditionNumber()
	fmt.Printf("%s, %d panels, condition number %10.3e\n", name, pm.NumPanels, cond)
	fmt.Printf("%10s %12s %12s %12s\n", "alpha", "CL", "gamma", "source sum")
	cls := make([]float64, len(sols))
	for i, sol := range sols {
		sol.Condition = cond
		cls[i] = sol.CL
		fmt.Printf("%10.4f %12.6f %12.8f %12.5e\n", alphas[i], sol.CL, sol.Gamma, sol.SourceSum)
		for _, w := range sol.Warnings {
			fmt.Printf("Warning: %s\n", w.Error())
		}
	}
	if len(mp.PlotFile) != 0 {
		if err = graphics.PlotPolar(alphas, cls, fmt.Sprintf("%s, %d panels", name, pm.NumPanels), mp.PlotFile); err != nil {
			return
		}
	}
	if len(mp.DBFile) != 0 {
		if err = saveRuns(mp.DBFile, ip.Title, name, sols...); err != nil {
			return
		}
	}
	if mp.Graph {
		graphics.ChartPanels(x, y, pm.Panels)
	}
	return
}
