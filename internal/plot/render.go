package plot

import (
	"bytes"
	"encoding/json"
	"fmt"
	"text/template"

	"Atelier/internal/fault"
)

const PlotlyCDN = "https://cdn.plot.ly/plotly-latest.min.js"

// Figure is the plotly figure object: data, layout and config.
type Figure map[string]any

// Figure converts the chart to the JSON shape plotly.newPlot expects.
func (c Chart) Figure() Figure {
	data := make([]map[string]any, 0, len(c.Series))
	for _, s := range c.Series {
		data = append(data, map[string]any{
			"type":          "heatmap",
			"x":             s.X,
			"y":             s.Y,
			"z":             s.Values,
			"colorscale":    s.ColorScheme,
			"showscale":     true,
			"zmin":          s.ValueMin,
			"zmax":          s.ValueMax,
			"colorbar":      map[string]any{"title": s.ColorbarTitle, "titleside": "right"},
			"hovertemplate": s.HoverTemplate,
		})
	}

	annotations := make([]map[string]any, 0, len(c.Annotations))
	for _, a := range c.Annotations {
		annotations = append(annotations, map[string]any{
			"x":           0.5,
			"y":           a.Y,
			"xref":        "paper",
			"yref":        "paper",
			"text":        a.Text,
			"showarrow":   false,
			"align":       "center",
			"font":        map[string]any{"size": 13},
			"bgcolor":     "rgba(255,255,255,0.9)",
			"bordercolor": "rgba(0,0,0,0.1)",
			"borderwidth": 1,
			"borderpad":   8,
			"yanchor":     "top",
		})
	}

	axis := func(label string) map[string]any {
		return map[string]any{
			"title":      map[string]any{"text": label, "font": map[string]any{"size": 14}, "standoff": 24},
			"showgrid":   true,
			"tickfont":   map[string]any{"size": 12},
			"automargin": true,
		}
	}

	return Figure{
		"data": data,
		"layout": map[string]any{
			"title": map[string]any{
				"text":    c.Title,
				"font":    map[string]any{"size": 18},
				"x":       0.5,
				"xanchor": "center",
			},
			"xaxis":       axis(c.XLabel),
			"yaxis":       axis(c.YLabel),
			"annotations": annotations,
			"margin":      map[string]any{"t": 85, "b": 120, "l": 80, "r": 110},
		},
		"config": map[string]any{
			"displayModeBar": true,
			"displaylogo":    false,
			"staticPlot":     false,
			"responsive":     true,
		},
	}
}

var page = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <title>{{.Title}}</title>
    <script src="{{.CDN}}"></script>
    <style>
        body {
            margin: 0;
            padding: 20px;
            font-family: Arial, sans-serif;
            display: flex;
            justify-content: center;
            align-items: center;
            min-height: 100vh;
            background: #f5f5f5;
        }
        #plotly-div {
            width: 100%;
            max-width: 800px;
            height: 700px;
            background: white;
            border-radius: 8px;
            box-shadow: 0 2px 8px rgba(0,0,0,0.1);
        }
    </style>
</head>
<body>
    <div id="plotly-div"></div>
    <script>
        const figure = {{.Figure}};
        Plotly.newPlot('plotly-div', figure.data, figure.layout, figure.config);
    </script>
</body>
</html>
`))

// RenderHTML produces a standalone page. encoding/json escapes <, > and &,
// so the inlined figure cannot close the script element.
func RenderHTML(c Chart) (string, error) {
	fig, err := json.MarshalIndent(c.Figure(), "        ", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal figure: %w", err)
	}
	var buf bytes.Buffer
	err = page.Execute(&buf, struct {
		Title  string
		CDN    string
		Figure string
	}{
		Title:  "Plotly visualization",
		CDN:    PlotlyCDN,
		Figure: string(fig),
	})
	if err != nil {
		return "", fmt.Errorf("render page: %w", err)
	}
	return buf.String(), nil
}

// ImageRenderer rasterizes a chart. The gateway has no headless browser, so
// the only implementation reports the capability as unavailable.
type ImageRenderer interface {
	RenderImage(c Chart) ([]byte, error)
}

type NoImageRenderer struct{}

func (NoImageRenderer) RenderImage(Chart) ([]byte, error) {
	return nil, fault.New(fault.KindCapability, "static image rendering is not available on this server, use html output")
}
