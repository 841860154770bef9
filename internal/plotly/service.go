// Package plotly serves the pressure visualization tool: it computes the
// field, assembles the chart, renders it and publishes the result.
package plotly

import (
	"context"
	"errors"
	"log"
	"time"

	"Atelier/internal/calc/pressure"
	"Atelier/internal/fault"
	"Atelier/internal/plot"
	"Atelier/internal/publish"
	"Atelier/internal/repo"

	"github.com/google/uuid"
)

type Service struct {
	Publisher *publish.Publisher
	Images    plot.ImageRenderer
	// Runs is optional.
	Runs     repo.Repository
	Defaults Defaults
	Now      func() time.Time
}

type Parameters struct {
	YoungsModulus  float64    `json:"youngs_modulus"`
	PoissonRatio   float64    `json:"poisson_ratio"`
	Height         float64    `json:"height"`
	Weight         float64    `json:"weight"`
	Posture        string     `json:"posture"`
	GridResolution int        `json:"grid_resolution"`
	ColorScheme    string     `json:"color_scheme"`
	OutputMode     OutputMode `json:"output_mode"`
}

type Result struct {
	RequestID         string      `json:"requestId"`
	Status            string      `json:"status"`
	VisualizationType plot.Mode   `json:"visualization_type"`
	ImageURL          string      `json:"image_url,omitempty"`
	HTMLURL           string      `json:"html_url,omitempty"`
	Parameters        Parameters  `json:"parameters"`
	PlotData          plot.Figure `json:"plot_data,omitempty"`
}

// Computed is the in-memory outcome of the pure pipeline.
type Computed struct {
	Field   pressure.Field
	Derived pressure.Derived
	Chart   plot.Chart
}

// Compute runs the field calculator and the plot assembler.
func Compute(p Params) Computed {
	field, derived := pressure.Compute(p.Input, p.GridResolution)
	return Computed{
		Field:   field,
		Derived: derived,
		Chart:   plot.Assemble(p.Mode, field, derived, p.plotParams()),
	}
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Visualize renders and publishes one request. Static images are optional:
// image-only requests fall back to HTML when the renderer is unavailable.
func (s *Service) Visualize(ctx context.Context, p Params) (Result, error) {
	requestID := uuid.NewString()
	log.Printf("[plotly] %s: %s grid=%d output=%s", requestID, p.Mode, p.GridResolution, p.OutputMode)

	c := Compute(p)
	res := Result{
		RequestID:         requestID,
		Status:            "completed",
		VisualizationType: c.Chart.Mode,
		Parameters: Parameters{
			YoungsModulus:  p.YoungsModulus,
			PoissonRatio:   p.PoissonRatio,
			Height:         p.HeightCm,
			Weight:         p.WeightKg,
			Posture:        p.Posture,
			GridResolution: p.GridResolution,
			ColorScheme:    p.ColorScheme,
			OutputMode:     p.OutputMode,
		},
	}

	if p.OutputMode == OutputHTML || p.OutputMode == OutputBoth {
		url, err := s.publishHTML(ctx, requestID, c.Chart)
		if err != nil {
			return Result{}, err
		}
		res.HTMLURL = url
	}

	if p.OutputMode == OutputImage || p.OutputMode == OutputBoth {
		url, err := s.publishImage(ctx, requestID, c.Chart)
		switch {
		case err == nil:
			res.ImageURL = url
		case p.OutputMode == OutputBoth:
			log.Printf("[plotly] %s: image skipped, html already published: %v", requestID, err)
		case errors.Is(err, fault.Capability):
			log.Printf("[plotly] %s: %v; downgrading to html", requestID, err)
			url, err := s.publishHTML(ctx, requestID, c.Chart)
			if err != nil {
				return Result{}, err
			}
			res.HTMLURL = url
		default:
			return Result{}, err
		}
	}

	if p.Debug {
		res.PlotData = c.Chart.Figure()
	}
	s.record(ctx, res)
	return res, nil
}

func (s *Service) publishHTML(ctx context.Context, requestID string, chart plot.Chart) (string, error) {
	page, err := plot.RenderHTML(chart)
	if err != nil {
		return "", fault.Wrap(fault.KindInternal, err, "render html")
	}
	return s.Publisher.Publish(ctx, publish.Artifact{
		Data:        []byte(page),
		Key:         "plotly/" + requestID + ".html",
		ContentType: "text/html; charset=utf-8",
	}), nil
}

func (s *Service) publishImage(ctx context.Context, requestID string, chart plot.Chart) (string, error) {
	images := s.Images
	if images == nil {
		images = plot.NoImageRenderer{}
	}
	png, err := images.RenderImage(chart)
	if err != nil {
		return "", err
	}
	if len(png) == 0 {
		return "", fault.New(fault.KindCapability, "image renderer produced no output")
	}
	return s.Publisher.Publish(ctx, publish.Artifact{
		Data:        png,
		Key:         "plotly/" + requestID + ".png",
		ContentType: "image/png",
	}), nil
}

func (s *Service) record(ctx context.Context, res Result) {
	if s.Runs == nil {
		return
	}
	run := repo.Run{
		RequestID:      res.RequestID,
		Type:           string(res.VisualizationType),
		Posture:        res.Parameters.Posture,
		GridResolution: res.Parameters.GridResolution,
		OutputMode:     string(res.Parameters.OutputMode),
		HTMLURL:        res.HTMLURL,
		CreatedAt:      s.now(),
	}
	if err := s.Runs.RecordRun(ctx, run); err != nil {
		log.Printf("[plotly] record run %s: %v", res.RequestID, err)
	}
}
