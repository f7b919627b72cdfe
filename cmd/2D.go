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
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/profile"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/gopanel/InputParameters"
	"github.com/notargets/gopanel/geometry2D"
	"github.com/notargets/gopanel/graphics"
	"github.com/notargets/gopanel/model_problems/PanelMethod2D"
	"github.com/notargets/gopanel/readfiles"
	"github.com/notargets/gopanel/store"
	"github.com/notargets/gopanel/utils"
)

type ModelPanel struct {
	ICFile   string
	PlotFile string
	DBFile   string
	Graph    bool
	Profile  bool
	Verbose  bool
}

// TwoDCmd represents the 2D command
var TwoDCmd = &cobra.Command{
	Use:   "2D",
	Short: "Solve the flow about a two dimensional body at one angle of attack",
	Long: `
Discretizes the body into panels with cosine spacing, solves for the source and
vortex strengths and reports the surface pressure and the lift coefficient,

gopanel 2D --naca 0012 --alpha 4 --plotFile cp.png`,
	PreRun: bindFlags,
	Run: func(cmd *cobra.Command, args []string) {
		mp := newModelPanel(cmd)
		ip := processInput(mp)
		if err := Run2D(mp, ip); err != nil {
			log.WithError(err).Fatal("2D solve failed")
		}
	},
}

func init() {
	rootCmd.AddCommand(TwoDCmd)
	addCaseFlags(TwoDCmd)
	TwoDCmd.Flags().Float64("alpha", 0, "angle of attack in degrees")
	TwoDCmd.Flags().StringP("plotFile", "p", "", "write the pressure distribution to this PNG file, the geometry goes alongside")
	TwoDCmd.Flags().String("db", "", "SQLite file to record the solution in")
	TwoDCmd.Flags().BoolP("graph", "g", false, "display the panels in an interactive chart after solving")
	TwoDCmd.Flags().Bool("profile", false, "write a CPU profile of the solution to the current directory")
}

// addCaseFlags registers the flags that override fields of the input file
func addCaseFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("coordFile", "F", "", "two column airfoil coordinate file, Selig ordering")
	cmd.Flags().StringP("inputConditionsFile", "I", "", "YAML file for input parameters like:\n\t- Panels\n\t- Alpha\n\t- NACA")
	cmd.Flags().String("naca", "", "generate a NACA 4 digit section, e.g. 2412")
	cmd.Flags().IntP("panels", "n", 0, "number of panels")
	cmd.Flags().Float64("uinf", 1, "freestream speed")
	cmd.Flags().Int("procLimit", 0, "limit on go routines used to assemble the influence matrices, 0 uses all CPUs")
	cmd.Flags().Float64("tolerance", 0, "source sum accuracy warning threshold, 0 disables")
}

// bindFlags binds the running command's flags, so flags of commands that do
// not run never shadow the config file or environment
func bindFlags(cmd *cobra.Command, args []string) {
	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		panic(err)
	}
}

func newModelPanel(cmd *cobra.Command) (mp *ModelPanel) {
	var (
		err error
	)
	mp = &ModelPanel{}
	if mp.ICFile, err = cmd.Flags().GetString("inputConditionsFile"); err != nil {
		panic(err)
	}
	mp.PlotFile, _ = cmd.Flags().GetString("plotFile")
	mp.DBFile = viper.GetString("db")
	mp.Graph, _ = cmd.Flags().GetBool("graph")
	mp.Profile, _ = cmd.Flags().GetBool("profile")
	mp.Verbose = viper.GetBool("verbose")
	return
}

// processInput reads the input file when given, then applies flags, config
// file values and GOPANEL_ environment variables on top of it
func processInput(mp *ModelPanel) (ip *InputParameters.InputParametersPanel) {
	var (
		err error
	)
	ip = InputParameters.NewInputParametersPanel()
	if len(mp.ICFile) != 0 {
		var data []byte
		if data, err = os.ReadFile(mp.ICFile); err != nil {
			panic(err)
		}
		if err = ip.Parse(data); err != nil {
			panic(err)
		}
	}
	if viper.IsSet("coordFile") {
		ip.CoordFile = viper.GetString("coordFile")
	}
	if viper.IsSet("naca") {
		ip.NACA = viper.GetString("naca")
		if !viper.IsSet("coordFile") {
			ip.CoordFile = ""
		}
	}
	if viper.IsSet("panels") {
		ip.Panels = viper.GetInt("panels")
	}
	if viper.IsSet("uinf") {
		ip.UInf = viper.GetFloat64("uinf")
	}
	if viper.IsSet("alpha") {
		ip.Alpha = viper.GetFloat64("alpha")
	}
	if viper.IsSet("procLimit") {
		ip.ProcLimit = viper.GetInt("procLimit")
	}
	if viper.IsSet("tolerance") {
		ip.Tolerance.SourceSum = viper.GetFloat64("tolerance")
	}
	if mp.Verbose {
		ip.Print()
	}
	return
}

// LoadGeometry returns the raw boundary and a name for it
func LoadGeometry(ip *InputParameters.InputParametersPanel, verbose bool) (x, y []float64, name string, err error) {
	if len(ip.CoordFile) != 0 {
		var title string
		if title, x, y, err = readfiles.ReadAirfoil(ip.CoordFile, verbose); err != nil {
			return
		}
		if name = title; len(name) == 0 {
			name = filepath.Base(ip.CoordFile)
		}
	} else {
		if x, y, err = geometry2D.NACA4(ip.NACA, ip.NACAPoints, ip.IsClosedTE()); err != nil {
			return
		}
		name = "NACA " + ip.NACA
	}
	if gap := geometry2D.TrailingEdgeGap(x, y); gap > 0 {
		log.WithFields(log.Fields{"geometry": name, "gap": gap}).
			Warn("open trailing edge, the closing panel spans the gap and the lift falls as the panel count grows")
	}
	if !geometry2D.NewPolygon(x, y).IsCounterClockwise() {
		log.WithField("geometry", name).Warn("boundary runs clockwise, panel normals will point into the body")
	}
	return
}

func NewPanelMethod(ip *InputParameters.InputParametersPanel, x, y []float64, verbose bool) (*PanelMethod2D.PanelMethod, error) {
	opts := PanelMethod2D.Options{
		ProcLimit:    ip.ProcLimit,
		SourceSumTol: ip.Tolerance.SourceSum,
		Verbose:      verbose,
	}
	if ip.Tolerance.Quadrature > 0 {
		opts.Kernel = PanelMethod2D.NewQuadratureKernel(PanelMethod2D.DefaultQuadratureOrder,
			ip.Tolerance.Quadrature, PanelMethod2D.DefaultQuadratureMaxDepth)
	}
	return PanelMethod2D.NewPanelMethod(x, y, ip.Panels, ip.UInf, opts)
}

func Run2D(mp *ModelPanel, ip *InputParameters.InputParametersPanel) (err error) {
	var (
		x, y   []float64
		name   string
		pm     *PanelMethod2D.PanelMethod
		sol    *PanelMethod2D.Solution
		panels PanelMethod2D.PanelSet
	)
	if mp.Profile {
		defer startProfile().Stop()
	}
	if x, y, name, err = LoadGeometry(ip, mp.Verbose); err != nil {
		return
	}
	if ip.HalfBody {
		// An open half body has no trailing edge pair, only the discretization is produced
		if panels, err = PanelMethod2D.DefineHalfPanels(x, y, ip.Panels); err != nil {
			return
		}
		fmt.Printf("%s, %d half body panels\n", name, len(panels))
		if len(mp.PlotFile) != 0 {
			if err = graphics.PlotGeometry(x, y, panels, name, mp.PlotFile); err != nil {
				return
			}
		}
		if mp.Graph {
			graphics.ChartPanels(x, y, panels)
		}
		return
	}
	if pm, err = NewPanelMethod(ip, x, y, mp.Verbose); err != nil {
		return
	}
	if sol, err = pm.Solve(ip.Alpha); err != nil {
		return
	}
	sol.Condition = pm.ConditionNumber()
	log.WithField("elapsed", sol.Elapsed).Debug(utils.GetMemUsage())
	fmt.Printf("%s\n", name)
	sol.Print()
	if mp.Verbose {
		sol.PrintSurface()
	}
	if len(mp.PlotFile) != 0 {
		if err = graphics.PlotPressure(sol, name, mp.PlotFile); err != nil {
			return
		}
		if err = graphics.PlotGeometry(x, y, sol.Panels, name, geometryPlotFile(mp.PlotFile)); err != nil {
			return
		}
	}
	if len(mp.DBFile) != 0 {
		if err = saveRuns(mp.DBFile, ip.Title, name, sol); err != nil {
			return
		}
	}
	if mp.Graph {
		graphics.ChartPanels(x, y, sol.Panels)
	}
	return
}

func saveRuns(dbFile, title, geometry string, sols ...*PanelMethod2D.Solution) (err error) {
	var (
		st  *store.Store
		id  int64
		ctx = context.Background()
	)
	if st, err = store.Open(dbFile); err != nil {
		return
	}
	defer st.Close()
	for _, sol := range sols {
		if id, err = st.SaveRun(ctx, store.NewRun(title, geometry, sol)); err != nil {
			return
		}
		log.WithFields(log.Fields{"db": dbFile, "id": id, "alpha": sol.FS.AlphaDegrees()}).Debug("saved run")
	}
	return
}

func startProfile() interface{ Stop() } {
	return profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
}

func geometryPlotFile(plotFile string) string {
	ext := filepath.Ext(plotFile)
	return strings.TrimSuffix(plotFile, ext) + "_geometry" + ext
}
