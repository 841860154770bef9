// Package plot turns a sampled pressure field into a plotly heatmap
// description and renders it as a standalone HTML page.
package plot

import (
	"fmt"
	"math"
	"strconv"

	"Atelier/internal/calc/pressure"

	"gonum.org/v1/gonum/floats"
)

type Mode string

const (
	ModePressure    Mode = "pressure_distribution"
	ModeStress      Mode = "stress_analysis"
	ModeDeformation Mode = "deformation"
)

// ParseMode maps a request string to a Mode; anything unknown is a pressure plot.
func ParseMode(s string) Mode {
	switch Mode(s) {
	case ModeStress:
		return ModeStress
	case ModeDeformation:
		return ModeDeformation
	default:
		return ModePressure
	}
}

// Params carries the request fields the chart needs besides the field itself.
type Params struct {
	pressure.Input
	GridResolution int
	ColorScheme    string
}

type Series struct {
	X             []float64
	Y             []float64
	Values        []float64
	ColorScheme   string
	ValueMin      float64
	ValueMax      float64
	ColorbarTitle string
	HoverTemplate string
}

type Annotation struct {
	Text string
	// Y is in paper coordinates; above the plot when > 1.
	Y float64
}

type Chart struct {
	Mode        Mode
	Title       string
	XLabel      string
	YLabel      string
	Series      []Series
	Annotations []Annotation
}

type modeText struct {
	title    string
	colorbar string
	hover    string
}

var texts = map[Mode]modeText{
	ModePressure: {
		title:    "Pressure distribution",
		colorbar: "Pressure (Pa)",
		hover:    "X: %{x}<br>Y: %{y}<br>Pressure: %{z:.2f} Pa<extra></extra>",
	},
	ModeStress: {
		title:    "Stress analysis",
		colorbar: "Principal stress (Pa)",
		hover:    "X: %{x}<br>Y: %{y}<br>Principal stress: %{z:.2f} Pa<extra></extra>",
	},
	ModeDeformation: {
		title:    "Deformation analysis",
		colorbar: "Deformation (mm)",
		hover:    "X: %{x}<br>Y: %{y}<br>Deformation: %{z:.4f} mm<extra></extra>",
	},
}

// Assemble builds the chart for mode from an already computed field.
func Assemble(mode Mode, field pressure.Field, d pressure.Derived, p Params) Chart {
	mode = ParseMode(string(mode))
	n := len(field.Samples)
	xs := make([]float64, n)
	ys := make([]float64, n)
	vs := make([]float64, n)
	for k, s := range field.Samples {
		xs[k], ys[k] = s.X, s.Y
		vs[k] = transform(mode, s.Value, p.Input)
	}

	lo, hi := colorRange(vs)
	t := texts[mode]
	posture, _ := pressure.LookupPosture(p.Posture)

	chart := Chart{
		Mode:   mode,
		Title:  fmt.Sprintf("%s - %s", t.title, posture.DisplayName),
		XLabel: "X (normalized)",
		YLabel: "Y (normalized)",
		Series: []Series{{
			X:             xs,
			Y:             ys,
			Values:        vs,
			ColorScheme:   p.ColorScheme,
			ValueMin:      lo,
			ValueMax:      hi,
			ColorbarTitle: t.colorbar,
			HoverTemplate: t.hover,
		}},
		Annotations: []Annotation{{Text: summary(p.Input), Y: 1.08}},
	}
	if mode == ModePressure {
		chart.Annotations = append(chart.Annotations, Annotation{
			Text: fmt.Sprintf("Contact area: %.2f cm² | Base pressure: %.2f Pa", d.ContactAreaM2*10000, d.BasePressurePa),
			Y:    -0.18,
		})
	}
	return chart
}

func transform(mode Mode, v float64, in pressure.Input) float64 {
	switch mode {
	case ModeStress:
		return PrincipalStress(v, in.PoissonRatio)
	case ModeDeformation:
		return v / in.YoungsModulus * 1000
	default:
		return v
	}
}

// PrincipalStress derives the first principal stress from a contact pressure,
// with σxx = σyy = v(1+ν) and τxy = vν.
func PrincipalStress(v, nu float64) float64 {
	sxx := v * (1 + nu)
	syy := sxx
	sxy := v * nu
	half := (sxx - syy) / 2
	return (sxx+syy)/2 + math.Sqrt(half*half+sxy*sxy)
}

// colorRange always includes zero at the low end.
func colorRange(vs []float64) (float64, float64) {
	if len(vs) == 0 {
		return 0, 0
	}
	return math.Min(0, floats.Min(vs)), floats.Max(vs)
}

func summary(in pressure.Input) string {
	return fmt.Sprintf("Height: %scm | Weight: %skg | Young's modulus: %.2ePa | Poisson ratio: %s",
		num(in.HeightCm), num(in.WeightKg), in.YoungsModulus, num(in.PoissonRatio))
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
