package plotly

import (
	"net/http"

	"Atelier/internal/catalog"
)

var visualizeInput = []catalog.Field{{
	Name:  "input",
	Type:  "json",
	Label: catalog.Text{EN: "Input Parameters", ZH: "输入参数"},
	Description: catalog.Text{
		EN: "JSON object containing Young's modulus, Poisson's ratio, height, weight, posture and other parameters",
		ZH: "包含杨氏模量、泊松比、身高、体重、坐姿等参数的JSON对象",
	},
	Default: map[string]any{
		"youngs_modulus":     2e6,
		"poisson_ratio":      0.3,
		"height":             175,
		"weight":             70,
		"posture":            "sitting",
		"visualization_type": "pressure_distribution",
		"grid_resolution":    50,
		"color_scheme":       "viridis",
		"output_mode":        "html",
	},
	Required: true,
}}

func Tools() []catalog.Tool {
	return []catalog.Tool{
		{
			Name:        "plotly_visualization",
			DisplayName: catalog.Text{EN: "Plotly Visualization", ZH: "Plotly 可视化"},
			Description: catalog.Text{
				EN: "Pressure distribution visualization analysis based on Young's modulus, Poisson's ratio, height, weight and posture",
				ZH: "基于杨氏模量、泊松比、身高、体重和坐姿进行压力分布可视化分析",
			},
			Categories: []string{"data-visualization", "engineering-analysis"},
			Icon:       "emoji:📊:#FF6B6B",
			Method:     http.MethodPost,
			Path:       "/plotly/visualize",
			Input:      visualizeInput,
			Output: []catalog.Field{
				{Name: "code", Type: "number", Label: catalog.Text{EN: "Status Code", ZH: "状态码"}},
				{Name: "requestId", Type: "string", Label: catalog.Text{EN: "Request ID", ZH: "请求ID"}},
				{Name: "status", Type: "string", Label: catalog.Text{EN: "Status", ZH: "状态"}},
				{Name: "visualization_type", Type: "string", Label: catalog.Text{EN: "Visualization Type", ZH: "可视化类型"}},
				{Name: "image_url", Type: "string", Label: catalog.Text{EN: "Image URL", ZH: "图像URL"}},
				{Name: "html_url", Type: "string", Label: catalog.Text{EN: "Interactive HTML URL", ZH: "交互式HTML URL"}},
				{Name: "parameters", Type: "json", Label: catalog.Text{EN: "Parameters", ZH: "参数信息"}},
			},
			EstimateMs: 5000,
		},
		{
			Name:        "plotly_report",
			DisplayName: catalog.Text{EN: "Pressure Report (PDF)", ZH: "压力报告 (PDF)"},
			Categories:  []string{"engineering-analysis"},
			Method:      http.MethodPost,
			Path:        "/plotly/report",
			Input:       visualizeInput,
		},
		{
			Name:        "plotly_export",
			DisplayName: catalog.Text{EN: "Pressure Field Export (XLSX)", ZH: "压力场导出 (XLSX)"},
			Categories:  []string{"engineering-analysis"},
			Method:      http.MethodPost,
			Path:        "/plotly/export",
			Input:       visualizeInput,
		},
		{
			Name:        "plotly_import",
			DisplayName: catalog.Text{EN: "Batch Evaluation (XLSX)", ZH: "批量计算 (XLSX)"},
			Categories:  []string{"engineering-analysis"},
			Method:      http.MethodPost,
			Path:        "/plotly/import",
			Input: []catalog.Field{{
				Name:     "file",
				Type:     "file",
				Label:    catalog.Text{EN: "Workbook with height, weight, posture, youngs_modulus, poisson_ratio", ZH: "包含身高、体重、坐姿、杨氏模量、泊松比的表格"},
				Required: true,
			}},
		},
		{
			Name:        "plotly_runs",
			DisplayName: catalog.Text{EN: "Recent Visualizations", ZH: "最近的可视化"},
			Method:      http.MethodGet,
			Path:        "/plotly/runs",
			Input:       []catalog.Field{{Name: "limit", Type: "number", Label: catalog.Text{EN: "Limit", ZH: "数量"}}},
		},
	}
}
