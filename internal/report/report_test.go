package report

import (
	"bytes"
	"testing"
	"time"

	"Atelier/internal/calc/pressure"
	"Atelier/internal/fault"

	"github.com/xuri/excelize/v2"
)

var input = pressure.Input{YoungsModulus: 2e6, PoissonRatio: 0.3, HeightCm: 175, WeightKg: 70, Posture: "sitting"}

func summaryFor(t *testing.T, n int) (pressure.Field, Summary) {
	t.Helper()
	field, d := pressure.Compute(input, n)
	return field, Summary{
		RequestID: "req-1",
		Mode:      "pressure_distribution",
		Input:     input,
		Grid:      n,
		Derived:   d,
		Stats:     FieldStats(field.Values()),
		CreatedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestFieldStats(t *testing.T) {
	s := FieldStats([]float64{0, 2, 4, 0})
	if s.Min != 0 || s.Max != 4 || s.Mean != 3 || s.Loaded != 2 {
		t.Errorf("stats = %+v", s)
	}
	if (FieldStats(nil) != Stats{}) {
		t.Error("empty input should give zero stats")
	}
}

func TestWritePDF(t *testing.T) {
	_, s := summaryFor(t, 10)
	var buf bytes.Buffer
	if err := WritePDF(&buf, s); err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Errorf("output does not look like a pdf: %q", buf.Bytes()[:8])
	}
}

func TestWriteXLSX(t *testing.T) {
	field, s := summaryFor(t, 6)
	var buf bytes.Buffer
	if err := WriteXLSX(&buf, field, field.Values(), s); err != nil {
		t.Fatal(err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	rows, err := f.GetRows(FieldSheet)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 37 {
		t.Fatalf("field sheet has %d rows, want 37", len(rows))
	}
	if rows[0][0] != "x" || rows[0][2] != "value" {
		t.Errorf("header = %v", rows[0])
	}
	got, err := f.GetCellValue(SummarySheet, "B1")
	if err != nil || got != "req-1" {
		t.Errorf("summary B1 = %q, %v", got, err)
	}
}

func workbook(t *testing.T, rows [][]interface{}) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		r := row
		if err := f.SetSheetRow(sheet, cell, &r); err != nil {
			t.Fatal(err)
		}
	}
	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatal(err)
	}
	return &buf
}

func TestReadInputs(t *testing.T) {
	buf := workbook(t, [][]interface{}{
		{"posture", "height", "weight", "poisson_ratio", "youngs_modulus"},
		{"lying", 180, 80, 0.25, 1e6},
		{},
		{"sitting", 50, 80, 0.25, 1e6},
		{"standing", "abc", 80, 0.25, 1e6},
	})
	rows, err := ReadInputs(buf)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}
	first := rows[0]
	if first.Err != nil || first.Line != 2 {
		t.Fatalf("first row = %+v", first)
	}
	if first.Input.Posture != "lying" || first.Input.HeightCm != 180 || first.Input.YoungsModulus != 1e6 {
		t.Errorf("header mapping failed: %+v", first.Input)
	}
	if fault.KindOf(rows[1].Err) != fault.KindValidation || rows[1].Line != 4 {
		t.Errorf("height 50 should fail validation: %+v", rows[1])
	}
	if rows[2].Err == nil {
		t.Error("non-numeric height should fail")
	}
}

func TestReadInputsPositional(t *testing.T) {
	buf := workbook(t, [][]interface{}{
		{"h", "w", "p", "E", "nu"},
		{175, 70, "walking", 2e6, 0.3},
	})
	rows, err := ReadInputs(buf)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 || rows[0].Err != nil || rows[0].Input.Posture != "walking" {
		t.Errorf("rows = %+v", rows)
	}
}

func TestReadInputsEmpty(t *testing.T) {
	if _, err := ReadInputs(workbook(t, [][]interface{}{{"height"}})); err == nil {
		t.Error("expected error for a sheet without data rows")
	}
}
