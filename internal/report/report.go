// Package report writes a computed field to the office formats people ask
// for: a one-page PDF summary and an XLSX workbook. It also reads batches of
// inputs back from XLSX.
package report

import (
	"fmt"
	"io"
	"time"

	"Atelier/internal/calc/pressure"

	"github.com/phpdave11/gofpdf"
	"gonum.org/v1/gonum/floats"
)

// Summary is everything a report needs besides the raw samples.
type Summary struct {
	RequestID string
	Mode      string
	Input     pressure.Input
	Grid      int
	Derived   pressure.Derived
	Stats     Stats
	CreatedAt time.Time
}

type Stats struct {
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
	Loaded int     `json:"loaded_cells"`
}

// FieldStats summarizes values; Mean and Loaded only count cells carrying load.
func FieldStats(values []float64) Stats {
	if len(values) == 0 {
		return Stats{}
	}
	loaded := make([]float64, 0, len(values))
	for _, v := range values {
		if v != 0 {
			loaded = append(loaded, v)
		}
	}
	s := Stats{Min: floats.Min(values), Max: floats.Max(values), Loaded: len(loaded)}
	if len(loaded) > 0 {
		s.Mean = floats.Sum(loaded) / float64(len(loaded))
	}
	return s
}

func WritePDF(w io.Writer, s Summary) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Pressure Field Report")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	line := func(format string, args ...any) {
		pdf.Cell(0, 6, fmt.Sprintf(format, args...))
		pdf.Ln(6)
	}
	if s.RequestID != "" {
		line("Request: %s", s.RequestID)
	}
	line("Date: %s", s.CreatedAt.Format("2006-01-02 15:04"))
	line("Analysis: %s", s.Mode)
	pdf.Ln(4)

	posture, _ := pressure.LookupPosture(s.Input.Posture)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Inputs")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	line("Height: %g cm", s.Input.HeightCm)
	line("Weight: %g kg", s.Input.WeightKg)
	line("Posture: %s", posture.DisplayName)
	line("Young's modulus: %.2e Pa", s.Input.YoungsModulus)
	line("Poisson ratio: %g", s.Input.PoissonRatio)
	line("Grid: %d x %d", s.Grid, s.Grid)
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Results")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	line("Body surface area: %.4f m2", s.Derived.BodySurfaceM2)
	line("Contact area: %.2f cm2", s.Derived.ContactAreaM2*10000)
	line("Base pressure: %.2f Pa", s.Derived.BasePressurePa)
	line("Field min / max: %.4g / %.4g", s.Stats.Min, s.Stats.Max)
	line("Mean over %d loaded cells: %.4g", s.Stats.Loaded, s.Stats.Mean)

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}
