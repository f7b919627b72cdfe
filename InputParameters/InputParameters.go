package InputParameters

import (
	"fmt"
	"math"

	"github.com/ghodss/yaml"

	"github.com/notargets/gopanel/utils"
)

// Parameters obtained from the YAML input file
type InputParametersPanel struct {
	Title      string     `json:"Title"`
	CoordFile  string     `json:"CoordFile"` // Two column coordinate file, takes precedence over NACA
	NACA       string     `json:"NACA"`      // NACA 4 digit section, e.g. "0012"
	NACAPoints int        `json:"NACAPoints"`
	ClosedTE   *bool      `json:"ClosedTE"`
	Panels     int        `json:"Panels"`
	UInf       float64    `json:"UInf"`
	Alpha      float64    `json:"Alpha"` // Degrees
	AlphaSweep AlphaSweep `json:"AlphaSweep"`
	HalfBody   bool       `json:"HalfBody"`
	Tolerance  Tolerance  `json:"Tolerance"`
	ProcLimit  int        `json:"ProcLimit"`
}

type AlphaSweep struct {
	Min, Max, Step float64
}

type Tolerance struct {
	Quadrature float64 // Absolute tolerance of the adaptive kernel quadrature
	SourceSum  float64 // Threshold for the source sum accuracy warning, 0 disables
}

func NewInputParametersPanel() *InputParametersPanel {
	return &InputParametersPanel{
		Title:      "Panel Method",
		NACA:       "0012",
		NACAPoints: 101,
		Panels:     40,
		UInf:       1,
	}
}

// Parse overlays the YAML onto the receiver, fields absent from the file keep
// their current values
func (ip *InputParametersPanel) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

func (ip *InputParametersPanel) IsClosedTE() bool { return ip.ClosedTE == nil || *ip.ClosedTE }

// Alphas expands the sweep into angles from Min to Max inclusive
func (ip *InputParametersPanel) Alphas() (alphas []float64, err error) {
	as := ip.AlphaSweep
	if as.Step == 0 && as.Min == as.Max {
		return []float64{as.Min}, nil
	}
	if !(as.Step > 0) || as.Max < as.Min {
		err = fmt.Errorf("alpha sweep needs Min <= Max and a positive Step, have %v", as)
		return
	}
	n := int(math.Floor((as.Max-as.Min)/as.Step+utils.NODETOL)) + 1
	for i := 0; i < n; i++ {
		alphas = append(alphas, as.Min+float64(i)*as.Step)
	}
	return
}

func (ip *InputParametersPanel) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	if len(ip.CoordFile) != 0 {
		fmt.Printf("[%s]\t\t= Coordinate File\n", ip.CoordFile)
	} else {
		fmt.Printf("[NACA %s]\t\t= Section, %d points per surface, closed TE = %v\n",
			ip.NACA, ip.NACAPoints, ip.IsClosedTE())
	}
	fmt.Printf("[%d]\t\t\t= Panels\n", ip.Panels)
	fmt.Printf("%8.5f\t\t= UInf\n", ip.UInf)
	fmt.Printf("%8.5f\t\t= Alpha\n", ip.Alpha)
	if ip.AlphaSweep.Step != 0 {
		fmt.Printf("[%8.3f,%8.3f] by %8.3f\t= Alpha Sweep\n", ip.AlphaSweep.Min, ip.AlphaSweep.Max, ip.AlphaSweep.Step)
	}
	if ip.Tolerance.Quadrature != 0 {
		fmt.Printf("%8.2e\t\t= Quadrature Tolerance\n", ip.Tolerance.Quadrature)
	}
	if ip.Tolerance.SourceSum != 0 {
		fmt.Printf("%8.2e\t\t= Source Sum Tolerance\n", ip.Tolerance.SourceSum)
	}
	if ip.HalfBody {
		fmt.Printf("[%v]\t\t\t= Half Body\n", ip.HalfBody)
	}
}
