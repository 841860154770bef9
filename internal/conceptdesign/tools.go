package conceptdesign

import (
	"net/http"

	"Atelier/internal/catalog"
)

var (
	nameField = catalog.Field{Name: "name", Type: "string", Label: catalog.Text{EN: "Name", ZH: "名称"}, Required: true}
	itField   = catalog.Field{Name: "it", Type: "number", Label: catalog.Text{EN: "Iteration", ZH: "迭代轮次"}, Required: true, Default: 0}
	modelDesc = catalog.Text{EN: "0=Double Skid, 1=Multi-leg, 2=Linkage", ZH: "0=双滑撬, 1=多足, 2=连杆"}

	paramsField = catalog.Field{
		Name:        "params",
		Type:        "json",
		Label:       catalog.Text{EN: "Params (JSON/Object)", ZH: "参数(JSON 或对象)"},
		Description: catalog.Text{EN: "Optional, use default if not provided", ZH: "可选，不填则使用默认参数"},
	}
	statusOutput  = catalog.Field{Name: "status", Type: "string", Label: catalog.Text{EN: "Status", ZH: "状态"}}
	messageOutput = catalog.Field{Name: "message", Type: "string", Label: catalog.Text{EN: "Message", ZH: "信息"}}
)

func Tools() []catalog.Tool {
	return []catalog.Tool{
		{
			Name:        "model",
			DisplayName: catalog.Text{EN: "Parametric Modeling", ZH: "参数化建模"},
			Description: catalog.Text{EN: "Generate x_t model by name/modelid/params", ZH: "输入模型名称/编号与参数，生成 x_t 模型文件"},
			Categories:  []string{"concept-design", "cad"},
			Icon:        "lucide:box",
			Method:      http.MethodPost,
			Path:        "/concept-design/model",
			Input: []catalog.Field{
				nameField,
				itField,
				{Name: "modelid", Type: "number", Label: catalog.Text{EN: "Model ID", ZH: "模型编号"}, Description: modelDesc, Required: true, Default: ModelMultiLeg},
				paramsField,
			},
			Output: []catalog.Field{
				statusOutput,
				messageOutput,
				{Name: "output_directory", Type: "string", Label: catalog.Text{EN: "Output Directory", ZH: "输出目录"}},
			},
		},
		{
			Name:        "transform",
			DisplayName: catalog.Text{EN: "Transform to SLDPRT", ZH: "转换为 SLDPRT"},
			Categories:  []string{"concept-design", "cad"},
			Icon:        "lucide:scan",
			Method:      http.MethodPost,
			Path:        "/concept-design/transform",
			Input:       []catalog.Field{nameField, itField},
			Output:      []catalog.Field{statusOutput, messageOutput},
		},
		{
			Name:        "analyze",
			DisplayName: catalog.Text{EN: "FEA Analyze", ZH: "有限元分析"},
			Categories:  []string{"concept-design", "fea"},
			Icon:        "lucide:activity",
			Method:      http.MethodPost,
			Path:        "/concept-design/analyze",
			Input: []catalog.Field{
				{Name: "filename", Type: "string", Label: catalog.Text{EN: "Filename (=name)", ZH: "名称(=name)"}, Required: true},
				itField,
				{Name: "force", Type: "number", Label: catalog.Text{EN: "Force (N)", ZH: "力值(N)"}, Required: true, Default: 150},
				{Name: "m_n", Type: "string", Label: catalog.Text{EN: "Material", ZH: "材料"}, Required: true, Default: "合金钢"},
			},
			Output: []catalog.Field{
				statusOutput,
				messageOutput,
				{Name: "data", Type: "string", Label: catalog.Text{EN: "Result", ZH: "结果"}},
			},
		},
		{
			Name:        "get_image",
			DisplayName: catalog.Text{EN: "Get Result Image", ZH: "获取结果图像"},
			Description: catalog.Text{EN: "Get FEA result images", ZH: "获取有限元分析生成的图像文件"},
			Categories:  []string{"concept-design", "visualization"},
			Icon:        "lucide:image",
			Method:      http.MethodPost,
			Path:        "/concept-design/get-image",
			Input: []catalog.Field{
				nameField,
				itField,
				{Name: "modelid", Type: "number", Label: catalog.Text{EN: "Model ID", ZH: "模型编号"}, Default: 0},
				{Name: "imageType", Type: "string", Label: catalog.Text{EN: "Image Type", ZH: "图像类型"}, Required: true, Default: "final"},
			},
			Output: []catalog.Field{
				statusOutput,
				messageOutput,
				{Name: "imageUrl", Type: "string", Label: catalog.Text{EN: "Image URL", ZH: "图像链接"}},
				{Name: "imageName", Type: "string", Label: catalog.Text{EN: "Image Name", ZH: "文件名"}},
			},
		},
	}
}
