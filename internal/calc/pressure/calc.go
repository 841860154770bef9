// Package pressure computes the contact pressure field of a body in a given
// posture. Everything here is pure: the same Input always yields the same Field.
package pressure

import (
	"math"
	"strings"

	"Atelier/internal/fault"
)

const (
	gravity = 9.81
	// normalizes E/(1-ν²) so GPa-range materials land near 1
	modulusScale = 1e9
)

// Posture describes how a body rests on a surface.
type Posture struct {
	Key         string
	DisplayName string
	// ContactFraction is the share of body surface area touching the surface.
	ContactFraction float64
	Multiplier      float64
}

// postures is the single source for physics constants and display names.
var postures = map[string]Posture{
	"sitting":  {Key: "sitting", DisplayName: "Sitting", ContactFraction: 0.15, Multiplier: 1.2},
	"standing": {Key: "standing", DisplayName: "Standing", ContactFraction: 0.08, Multiplier: 1.5},
	"lying":    {Key: "lying", DisplayName: "Lying", ContactFraction: 0.35, Multiplier: 0.8},
	"walking":  {Key: "walking", DisplayName: "Walking", ContactFraction: 0.05, Multiplier: 2.0},
	"running":  {Key: "running", DisplayName: "Running", ContactFraction: 0.03, Multiplier: 3.0},
	"right":    {Key: "right", DisplayName: "Right side", ContactFraction: 0.20, Multiplier: 0.9},
	"left":     {Key: "left", DisplayName: "Left side", ContactFraction: 0.20, Multiplier: 0.9},
	"center":   {Key: "center", DisplayName: "Center", ContactFraction: 0.25, Multiplier: 1.0},
}

// LookupPosture resolves a posture name. Unknown names fall back to sitting;
// ok reports whether the name was known.
func LookupPosture(name string) (p Posture, ok bool) {
	p, ok = postures[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return postures["sitting"], false
	}
	return p, true
}

// PostureKeys lists the known posture names in a fixed order.
func PostureKeys() []string {
	return []string{"sitting", "standing", "lying", "walking", "running", "right", "left", "center"}
}

type Input struct {
	YoungsModulus float64 `json:"youngs_modulus"`
	PoissonRatio  float64 `json:"poisson_ratio"`
	HeightCm      float64 `json:"height"`
	WeightKg      float64 `json:"weight"`
	Posture       string  `json:"posture"`
}

// Validate checks the physical ranges. Posture is not checked: unknown
// postures are profiled as sitting.
func (in Input) Validate() error {
	switch {
	case !within(in.YoungsModulus, 1e3, 1e12):
		return fault.New(fault.KindValidation, "youngs_modulus must be within [1e3, 1e12] Pa, got %g", in.YoungsModulus)
	case !within(in.PoissonRatio, 0, 0.5):
		return fault.New(fault.KindValidation, "poisson_ratio must be within [0, 0.5], got %g", in.PoissonRatio)
	case !within(in.HeightCm, 100, 250):
		return fault.New(fault.KindValidation, "height must be within [100, 250] cm, got %g", in.HeightCm)
	case !within(in.WeightKg, 20, 300):
		return fault.New(fault.KindValidation, "weight must be within [20, 300] kg, got %g", in.WeightKg)
	}
	return nil
}

// within is false for NaN.
func within(v, lo, hi float64) bool {
	return v >= lo && v <= hi
}

type Sample struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Value float64 `json:"value"`
}

// Field holds n*n samples in row-major order: i (x) outer, j (y) inner.
type Field struct {
	N       int      `json:"n"`
	Samples []Sample `json:"samples"`
}

// Values returns the sample values in field order.
func (f Field) Values() []float64 {
	out := make([]float64, len(f.Samples))
	for k, s := range f.Samples {
		out[k] = s.Value
	}
	return out
}

type Derived struct {
	BodySurfaceM2  float64 `json:"body_surface_m2"`
	ContactAreaM2  float64 `json:"contact_area_m2"`
	BasePressurePa float64 `json:"base_pressure_pa"`
}

// BodySurfaceArea uses the Du Bois formula. Height in cm, weight in kg, result in m².
func BodySurfaceArea(heightCm, weightKg float64) float64 {
	return 0.007184 * math.Pow(weightKg, 0.425) * math.Pow(heightCm/100, 0.725)
}

func Derive(in Input) Derived {
	p, _ := LookupPosture(in.Posture)
	bsa := BodySurfaceArea(in.HeightCm, in.WeightKg)
	area := bsa * p.ContactFraction
	return Derived{
		BodySurfaceM2:  bsa,
		ContactAreaM2:  area,
		BasePressurePa: in.WeightKg * gravity / area,
	}
}

// Compute samples the pressure field on an n x n grid spanning [-1, 1]².
// Inputs are expected to be validated by the caller; n < 1 yields an empty field.
func Compute(in Input, n int) (Field, Derived) {
	d := Derive(in)
	if n < 1 {
		return Field{N: 0}, d
	}
	p, _ := LookupPosture(in.Posture)

	material := in.YoungsModulus / (1 - in.PoissonRatio*in.PoissonRatio) / modulusScale
	peak := d.BasePressurePa * p.Multiplier * material

	samples := make([]Sample, 0, n*n)
	for i := 0; i < n; i++ {
		x := coord(i, n)
		for j := 0; j < n; j++ {
			y := coord(j, n)
			dist := math.Sqrt(x*x + y*y)
			v := 0.0
			if dist <= 1 {
				v = peak * (1 + (1-dist)*0.5)
			}
			samples = append(samples, Sample{X: x, Y: y, Value: v})
		}
	}
	return Field{N: n, Samples: samples}, d
}

func coord(k, n int) float64 {
	if n == 1 {
		return 0
	}
	return float64(k)/float64(n-1)*2 - 1
}
