package InputParameters

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/ghodss/yaml"
)

type CFLParameters struct {
	Acoustic float64 `json:"Acoustic"`
	Volume   float64 `json:"Volume"`
	Growth   float64 `json:"Growth"`
}

type EOSParameters struct {
	Type   string             `json:"Type"`
	Params map[string]float64 `json:"Params"`
}

// BCParameters installs one condition on a set of named regions, for
// example Regions: [xmin, xmax]. Params feed the condition ("p" for a
// pressure boundary, "u" for a moving wall).
type BCParameters struct {
	Regions []string           `json:"Regions"`
	Params  map[string]float64 `json:"Params"`
}

// Parameters obtained from the YAML input file
type InputParameters1D struct {
	Title           string                  `json:"Title"`
	Prefix          string                  `json:"Prefix"`
	Postfix         string                  `json:"Postfix"`
	OutputFreq      int                     `json:"OutputFreq"`
	CFL             CFLParameters           `json:"CFL"`
	FinalTime       float64                 `json:"FinalTime"`
	InitialTimeStep float64                 `json:"InitialTimeStep"`
	MaxSteps        int                     `json:"MaxSteps"`
	EOS             EOSParameters           `json:"EOS"`
	NumCellsX       int                     `json:"NumCellsX"`
	LengthX         float64                 `json:"LengthX"`
	E0              float64                 `json:"E0"`
	BCs             map[string]BCParameters `json:"BCs"` // Key is the BC name/type
}

// NewSedov1D returns the parameters of the reference 1D Sedov run.
func NewSedov1D() *InputParameters1D {
	return &InputParameters1D{
		Title:           "Sedov 1D",
		Prefix:          "sedov_1d",
		Postfix:         "dat",
		OutputFreq:      20,
		CFL:             CFLParameters{Acoustic: 0.25, Volume: 0.1, Growth: 1.01},
		FinalTime:       1.0,
		InitialTimeStep: 1.e-5,
		MaxSteps:        20,
		EOS: EOSParameters{
			Type:   "ideal_gas",
			Params: map[string]float64{"gamma": 1.4, "cv": 1.0},
		},
		NumCellsX: 32,
		LengthX:   1.0,
		E0:        0.244816,
		BCs: map[string]BCParameters{
			"Symmetry": {Regions: []string{"xmin", "xmax"}},
		},
	}
}

// Parse overlays the YAML document on ip, so fields absent from the file
// keep their current values.
func (ip *InputParameters1D) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

// ReadFile parses fileName on top of the Sedov 1D defaults.
func ReadFile(fileName string) (ip *InputParameters1D, err error) {
	var (
		data []byte
	)
	if data, err = os.ReadFile(fileName); err != nil {
		return
	}
	// Maps in the file replace the defaults instead of merging with them
	var probe InputParameters1D
	if err = probe.Parse(data); err != nil {
		err = fmt.Errorf("parsing %s: %w", fileName, err)
		return
	}
	ip = NewSedov1D()
	if probe.BCs != nil {
		ip.BCs = nil
	}
	if probe.EOS.Params != nil {
		ip.EOS.Params = nil
	}
	if err = ip.Parse(data); err != nil {
		err = fmt.Errorf("parsing %s: %w", fileName, err)
		ip = nil
	}
	return
}

// Gamma is the ratio of specific heats from the EOS parameters, or zero
// when the EOS has none.
func (ip *InputParameters1D) Gamma() float64 {
	for k, v := range ip.EOS.Params {
		if strings.EqualFold(k, "gamma") {
			return v
		}
	}
	return 0
}

func (ip *InputParameters1D) Print(w io.Writer) {
	fmt.Fprintf(w, "\"%s\"\t\t= Title\n", ip.Title)
	fmt.Fprintf(w, "\"%s\"\t\t= Prefix\n", ip.Prefix)
	fmt.Fprintf(w, "\"%s\"\t\t\t= Postfix\n", ip.Postfix)
	fmt.Fprintf(w, "[%d]\t\t\t= Output Frequency\n", ip.OutputFreq)
	fmt.Fprintf(w, "%8.5f\t\t= CFL Acoustic\n", ip.CFL.Acoustic)
	fmt.Fprintf(w, "%8.5f\t\t= CFL Volume\n", ip.CFL.Volume)
	fmt.Fprintf(w, "%8.5f\t\t= CFL Growth\n", ip.CFL.Growth)
	fmt.Fprintf(w, "%8.5f\t\t= FinalTime\n", ip.FinalTime)
	fmt.Fprintf(w, "%8.2e\t\t= Initial Time Step\n", ip.InitialTimeStep)
	fmt.Fprintf(w, "[%d]\t\t\t= Max Steps\n", ip.MaxSteps)
	fmt.Fprintf(w, "[%s]\t\t= EOS %v\n", ip.EOS.Type, ip.EOS.Params)
	fmt.Fprintf(w, "[%d]\t\t\t= Num Cells X\n", ip.NumCellsX)
	fmt.Fprintf(w, "%8.5f\t\t= Length X\n", ip.LengthX)
	fmt.Fprintf(w, "%8.6f\t\t= E0\n", ip.E0)
	keys := make([]string, len(ip.BCs))
	i := 0
	for k := range ip.BCs {
		keys[i] = k
		i++
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Fprintf(w, "BCs[%s] = %v\n", key, ip.BCs[key])
	}
}
