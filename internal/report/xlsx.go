package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"Atelier/internal/calc/pressure"

	"github.com/xuri/excelize/v2"
)

const (
	FieldSheet   = "field"
	SummarySheet = "summary"
)

// WriteXLSX writes the samples to the "field" sheet and the summary to "summary".
func WriteXLSX(w io.Writer, field pressure.Field, values []float64, s Summary) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), FieldSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	sw, err := f.NewStreamWriter(FieldSheet)
	if err != nil {
		return fmt.Errorf("stream writer: %w", err)
	}
	if err := sw.SetRow("A1", []interface{}{"x", "y", "value"}); err != nil {
		return err
	}
	for k, sample := range field.Samples {
		v := sample.Value
		if k < len(values) {
			v = values[k]
		}
		cell, _ := excelize.CoordinatesToCellName(1, k+2)
		if err := sw.SetRow(cell, []interface{}{sample.X, sample.Y, v}); err != nil {
			return fmt.Errorf("write row %d: %w", k+2, err)
		}
	}
	if err := sw.Flush(); err != nil {
		return fmt.Errorf("flush field sheet: %w", err)
	}

	if _, err := f.NewSheet(SummarySheet); err != nil {
		return fmt.Errorf("add summary sheet: %w", err)
	}
	rows := [][]interface{}{
		{"request_id", s.RequestID},
		{"analysis", s.Mode},
		{"height_cm", s.Input.HeightCm},
		{"weight_kg", s.Input.WeightKg},
		{"posture", s.Input.Posture},
		{"youngs_modulus_pa", s.Input.YoungsModulus},
		{"poisson_ratio", s.Input.PoissonRatio},
		{"grid_resolution", s.Grid},
		{"body_surface_m2", s.Derived.BodySurfaceM2},
		{"contact_area_m2", s.Derived.ContactAreaM2},
		{"base_pressure_pa", s.Derived.BasePressurePa},
		{"min", s.Stats.Min},
		{"max", s.Stats.Max},
		{"mean_loaded", s.Stats.Mean},
		{"loaded_cells", s.Stats.Loaded},
	}
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		r := row
		if err := f.SetSheetRow(SummarySheet, cell, &r); err != nil {
			return fmt.Errorf("write summary: %w", err)
		}
	}
	return f.Write(w)
}

// ImportRow is one parsed line of an input workbook. Line is 1-based as shown
// in spreadsheet software.
type ImportRow struct {
	Line  int
	Input pressure.Input
	Err   error
}

// importColumns is the expected column order of an input workbook.
var importColumns = []string{"height", "weight", "posture", "youngs_modulus", "poisson_ratio"}

// ReadInputs parses the first sheet. The first row is a header; when it names
// the expected columns they may come in any order.
func ReadInputs(r io.Reader) ([]ImportRow, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("empty sheet")
	}

	index := columnIndex(rows[0])
	out := make([]ImportRow, 0, len(rows)-1)
	for i := 1; i < len(rows); i++ {
		if blank(rows[i]) {
			continue
		}
		in, err := parseRow(rows[i], index)
		out = append(out, ImportRow{Line: i + 1, Input: in, Err: err})
	}
	return out, nil
}

func columnIndex(header []string) map[string]int {
	index := make(map[string]int, len(importColumns))
	for i, h := range header {
		name := strings.ToLower(strings.TrimSpace(h))
		for _, c := range importColumns {
			if name == c {
				index[c] = i
			}
		}
	}
	if len(index) != len(importColumns) {
		for i, c := range importColumns {
			index[c] = i
		}
	}
	return index
}

func parseRow(row []string, index map[string]int) (pressure.Input, error) {
	cell := func(name string) string {
		i := index[name]
		if i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}
	var in pressure.Input
	var err error
	if in.HeightCm, err = toFloat(cell("height")); err != nil {
		return in, fmt.Errorf("height: %w", err)
	}
	if in.WeightKg, err = toFloat(cell("weight")); err != nil {
		return in, fmt.Errorf("weight: %w", err)
	}
	in.Posture = cell("posture")
	if in.Posture == "" {
		return in, fmt.Errorf("posture is empty")
	}
	if in.YoungsModulus, err = toFloat(cell("youngs_modulus")); err != nil {
		return in, fmt.Errorf("youngs_modulus: %w", err)
	}
	if in.PoissonRatio, err = toFloat(cell("poisson_ratio")); err != nil {
		return in, fmt.Errorf("poisson_ratio: %w", err)
	}
	return in, in.Validate()
}

func toFloat(s string) (float64, error) {
	if s == "" {
		return 0, fmt.Errorf("missing value")
	}
	return strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
