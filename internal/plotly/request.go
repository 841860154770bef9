package plotly

import (
	"encoding/json"
	"math"

	"Atelier/internal/calc/pressure"
	"Atelier/internal/fault"
	"Atelier/internal/plot"
)

type OutputMode string

const (
	OutputImage OutputMode = "image"
	OutputHTML  OutputMode = "html"
	OutputBoth  OutputMode = "both"
)

var requiredParams = []string{"youngs_modulus", "poisson_ratio", "height", "weight", "posture"}

// Defaults fill optional request fields.
type Defaults struct {
	GridResolution int
	ColorScheme    string
}

// Params is a validated visualization request.
type Params struct {
	pressure.Input
	Mode           plot.Mode
	GridResolution int
	ColorScheme    string
	OutputMode     OutputMode
	Debug          bool
}

func (p Params) plotParams() plot.Params {
	return plot.Params{Input: p.Input, GridResolution: p.GridResolution, ColorScheme: p.ColorScheme}
}

type wireRequest struct {
	YoungsModulus     float64  `json:"youngs_modulus"`
	PoissonRatio      float64  `json:"poisson_ratio"`
	Height            float64  `json:"height"`
	Weight            float64  `json:"weight"`
	Posture           string   `json:"posture"`
	VisualizationType string   `json:"visualization_type"`
	GridResolution    *float64 `json:"grid_resolution"`
	ColorScheme       string   `json:"color_scheme"`
	OutputMode        string   `json:"output_mode"`
	Debug             any      `json:"debug"`
}

// Hoist lifts the fields of an "input" object to the top level; they win
// over siblings of the same name.
func Hoist(body map[string]any) map[string]any {
	input, ok := body["input"].(map[string]any)
	if !ok {
		return body
	}
	out := make(map[string]any, len(body)+len(input))
	for k, v := range body {
		if k != "input" {
			out[k] = v
		}
	}
	for k, v := range input {
		out[k] = v
	}
	return out
}

// ParseRequest hoists, checks presence and ranges, and applies defaults.
func ParseRequest(body map[string]any, d Defaults) (Params, error) {
	body = Hoist(body)
	for _, name := range requiredParams {
		if v, ok := body[name]; !ok || v == nil {
			return Params{}, fault.New(fault.KindValidation, "missing required parameter: %s", name)
		}
	}

	raw, err := json.Marshal(body)
	if err != nil {
		return Params{}, fault.Wrap(fault.KindValidation, err, "invalid parameters")
	}
	var w wireRequest
	if err := json.Unmarshal(raw, &w); err != nil {
		return Params{}, fault.Wrap(fault.KindValidation, err, "invalid parameters")
	}

	p := Params{
		Input: pressure.Input{
			YoungsModulus: w.YoungsModulus,
			PoissonRatio:  w.PoissonRatio,
			HeightCm:      w.Height,
			WeightKg:      w.Weight,
			Posture:       w.Posture,
		},
		Mode:           plot.ParseMode(w.VisualizationType),
		GridResolution: d.GridResolution,
		ColorScheme:    w.ColorScheme,
		OutputMode:     OutputMode(w.OutputMode),
		Debug:          w.Debug == true,
	}
	if err := p.Input.Validate(); err != nil {
		return Params{}, err
	}

	if w.GridResolution != nil {
		g := *w.GridResolution
		if g != math.Trunc(g) || g < 10 || g > 100 {
			return Params{}, fault.New(fault.KindValidation, "grid_resolution must be an integer within [10, 100], got %g", g)
		}
		p.GridResolution = int(g)
	}
	if p.GridResolution == 0 {
		p.GridResolution = 50
	}
	if p.ColorScheme == "" {
		p.ColorScheme = d.ColorScheme
	}
	if p.ColorScheme == "" {
		p.ColorScheme = "viridis"
	}

	switch p.OutputMode {
	case "":
		p.OutputMode = OutputHTML
	case OutputImage, OutputHTML, OutputBoth:
	default:
		return Params{}, fault.New(fault.KindValidation, "output_mode must be one of image, html, both, got %q", w.OutputMode)
	}
	return p, nil
}
