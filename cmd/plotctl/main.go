// Command plotctl runs the pressure pipeline offline and writes the chart,
// workbook and report to files. It also mints service tokens for the gateway.
package main

import (
	"Atelier/internal/auth"
	"Atelier/internal/plot"
	"Atelier/internal/plotly"
	"Atelier/internal/report"
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

func main() {
	height := flag.Float64("height", 175, "height in cm")
	weight := flag.Float64("weight", 70, "weight in kg")
	posture := flag.String("posture", "sitting", "posture key")
	youngs := flag.Float64("E", 2e6, "Young's modulus in Pa")
	nu := flag.Float64("nu", 0.3, "Poisson ratio")
	mode := flag.String("mode", string(plot.ModePressure), "pressure_distribution, stress_analysis or deformation")
	grid := flag.Int("grid", 50, "grid resolution (10-100)")
	color := flag.String("color", "viridis", "color scheme")
	out := flag.String("out", "field.html", "HTML output file, empty to skip")
	xlsxOut := flag.String("xlsx", "", "XLSX output file")
	pdfOut := flag.String("pdf", "", "PDF report file")

	hashToken := flag.String("hash-token", "", "print the bcrypt hash of a service token and exit")
	issueFor := flag.String("issue-token", "", "print a signed service token for this subject and exit")
	ttl := flag.Duration("ttl", 30*24*time.Hour, "lifetime of an issued token")
	flag.Parse()

	_ = godotenv.Load()

	switch {
	case *hashToken != "":
		hash, err := auth.HashToken(*hashToken)
		if err != nil {
			log.Fatalf("hash token: %v", err)
		}
		fmt.Println(hash)
		return
	case *issueFor != "":
		token, err := auth.IssueToken([]byte(os.Getenv("TOKEN_KEY")), *issueFor, *ttl)
		if err != nil {
			log.Fatalf("issue token: %v", err)
		}
		fmt.Println(token)
		return
	}

	p, err := plotly.ParseRequest(map[string]any{
		"youngs_modulus":     *youngs,
		"poisson_ratio":      *nu,
		"height":             *height,
		"weight":             *weight,
		"posture":            *posture,
		"visualization_type": *mode,
		"grid_resolution":    float64(*grid),
		"color_scheme":       *color,
	}, plotly.Defaults{GridResolution: 50, ColorScheme: "viridis"})
	if err != nil {
		log.Fatal(err)
	}

	c := plotly.Compute(p)
	values := c.Chart.Series[0].Values
	summary := report.Summary{
		RequestID: uuid.NewString(),
		Mode:      string(c.Chart.Mode),
		Input:     p.Input,
		Grid:      p.GridResolution,
		Derived:   c.Derived,
		Stats:     report.FieldStats(values),
		CreatedAt: time.Now(),
	}

	if *out != "" {
		page, err := plot.RenderHTML(c.Chart)
		if err != nil {
			log.Fatalf("render: %v", err)
		}
		write(*out, []byte(page))
	}
	if *xlsxOut != "" {
		var buf bytes.Buffer
		if err := report.WriteXLSX(&buf, c.Field, values, summary); err != nil {
			log.Fatalf("xlsx: %v", err)
		}
		write(*xlsxOut, buf.Bytes())
	}
	if *pdfOut != "" {
		var buf bytes.Buffer
		if err := report.WritePDF(&buf, summary); err != nil {
			log.Fatalf("pdf: %v", err)
		}
		write(*pdfOut, buf.Bytes())
	}

	fmt.Printf("%s: %dx%d cells, min %.2f, max %.2f, contact area %.4f m², base pressure %.2f Pa\n",
		c.Chart.Title, p.GridResolution, p.GridResolution, summary.Stats.Min, summary.Stats.Max,
		c.Derived.ContactAreaM2, c.Derived.BasePressurePa)
}

func write(path string, data []byte) {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		log.Fatalf("write %s: %v", path, err)
	}
	log.Printf("wrote %s (%d bytes)", path, len(data))
}
