package workflow

import "Atelier/internal/catalog"

// routes lists every workflow-backed tool. Each row becomes
// POST /workflow/{Group}/{Route}, forwarded to the workflow with WorkflowID.
var routes = []Route{
	{
		Group: "demand", Route: "design_objective_summary", WorkflowID: "68b548b4d1a4c28c031e312a",
		Title: catalog.Text{EN: "Design Objective Summary", ZH: "设计目标总结"},
		Icon: "lucide:chart_bar", Categories: []string{"demand"},
		Inputs: []catalog.Field{
			{Name: "goals", Type: "string", Label: catalog.Text{EN: "Goals", ZH: "设计约束"}, Required: true},
		},
	},
	{
		Group: "demand", Route: "market_analysis_actor", WorkflowID: "68b548f1dd9e24bcc3987fc6",
		Title: catalog.Text{EN: "MarketAnalysisActor", ZH: "市场调研"},
		Icon: "lucide:notebook_pen", Categories: []string{"demand"},
		Inputs: []catalog.Field{
			{Name: "dtg86d", Type: "string", Label: catalog.Text{EN: "background description", ZH: "背景描述"}},
			{Name: "bdwj9t", Type: "string", Label: catalog.Text{EN: "Research Subject", ZH: "调研对象"}},
			{Name: "mwfpgr", Type: "string", Label: catalog.Text{EN: "Features", ZH: "特性"}},
			{Name: "7bj7dm", Type: "number", Label: catalog.Text{EN: "Minimum number of surveys", ZH: "比较竞品数量"}},
		},
	},
	{
		Group: "demand", Route: "user_research", WorkflowID: "68b54a12ce1ff3494db8f180",
		Title: catalog.Text{EN: "User Research", ZH: "用户调研"},
		Icon: "lucide:user_pen", Categories: []string{"demand"},
		Inputs: []catalog.Field{
			{Name: "b6g769", Type: "string", Label: catalog.Text{EN: "", ZH: "背景描述"}},
			{Name: "jbjbgd", Type: "string", Label: catalog.Text{EN: "user group", ZH: "用户群体"}},
			{Name: "9c7nwc", Type: "string", Label: catalog.Text{EN: "analytic product", ZH: "分析产品"}},
		},
	},
	{
		Group: "demand", Route: "requirement_analysis", WorkflowID: "68b54dccc7b49668f8f8e8c3",
		Title: catalog.Text{EN: "Requirement Analysis", ZH: "需求分析"},
		Icon: "lucide:activity", Categories: []string{"demand", "logic"},
		Inputs: []catalog.Field{
			{Name: "zjkpp7", Type: "string", Label: catalog.Text{EN: "", ZH: "设计约束"}},
		},
	},
	{
		Group: "demand", Route: "market_environment_analysis", WorkflowID: "68b54e4204cc340c5d118bda",
		Title: catalog.Text{EN: "Market Environment Analysis", ZH: "市场环境分析"},
		Icon: "lucide:atom", Categories: []string{"demand"},
		Inputs: []catalog.Field{
			{Name: "8npnpp", Type: "string", Label: catalog.Text{EN: "product information", ZH: "产品信息"}},
		},
	},
	{
		Group: "demand", Route: "design_opportunity_analysis", WorkflowID: "68b54e55f587ab7d293a602f",
		Title: catalog.Text{EN: "Design Opportunity Analysis", ZH: "设计机会点分析"},
		Icon: "lucide:chart_spline", Categories: []string{"demand", "logic"},
		Inputs: []catalog.Field{
			{Name: "dchzhq", Type: "string", Label: catalog.Text{EN: "analysis for competitive products", ZH: "竞品分析"}},
			{Name: "6b97rj", Type: "string", Label: catalog.Text{EN: "environment analysis", ZH: "环境分析"}},
			{Name: "rdzjmj", Type: "number", Label: catalog.Text{EN: "Generated Quantity", ZH: "生成数量"}},
		},
	},
	{
		Group: "demand", Route: "user_scenario_analysis", WorkflowID: "68b54e69b7e1f2c0c453f0f7",
		Title: catalog.Text{EN: "User Scenario Analysis", ZH: "用户场景分析"},
		Icon: "lucide:contact_round", Categories: []string{"demand"},
		Inputs: []catalog.Field{
			{Name: "pcrfqw", Type: "string", Label: catalog.Text{EN: "", ZH: "竞品分析"}},
			{Name: "c7kzgj", Type: "string", Label: catalog.Text{EN: "", ZH: "环境分析"}},
			{Name: "7hgd88", Type: "number", Label: catalog.Text{EN: "", ZH: "用户场景"}},
		},
	},
	{
		Group: "feature", Route: "prompt-generation-text-to-image", WorkflowID: "68b54a6cd8fa7d683a781f4a",
		Title: catalog.Text{EN: "Prompt Generation (Text-to-Image)", ZH: "提示词生成（文生图）"},
		Icon: "lucide:image", Categories: []string{"feature", "prototype"},
		Inputs: []catalog.Field{
			{Name: "zzfbgh", Type: "string", Label: catalog.Text{EN: "", ZH: "设计需求"}},
		},
	},
	{
		Group: "feature", Route: "design-content-evaluation", WorkflowID: "68b54a8302ded7d03cbdf4a3",
		Title: catalog.Text{EN: "Design Content Evaluation", ZH: "设计内容评价"},
		Icon: "lucide:brush", Categories: []string{"feature", "logic", "prototype"},
		Inputs: []catalog.Field{
			{Name: "8wnpp6", Type: "file", Label: catalog.Text{EN: "", ZH: "上传图像"}},
			{Name: "98mmpj", Type: "string", Label: catalog.Text{EN: "", ZH: "用户输入"}},
		},
	},
	{
		Group: "feature", Route: "concept-visualization-3d-model-generation", WorkflowID: "68b54ab7d712d3902fed5711",
		Title: catalog.Text{EN: "Concept Visualization (3D Model Generation)", ZH: "概念立体化(3D模型生成)"},
		Icon: "lucide:box", Categories: []string{"feature", "prototype"},
		Inputs: []catalog.Field{
			{Name: "image", Type: "file", Label: catalog.Text{EN: "image upload", ZH: "图片上传"}},
		},
	},
	{
		Group: "feature", Route: "visual-storytelling-video-generation", WorkflowID: "68b54ae24e8d6f9fc152eed9",
		Title: catalog.Text{EN: "Visual Storytelling (Video Generation)", ZH: "影像叙事(视频生成)"},
		Icon: "lucide:file-video", Categories: []string{"feature", "prototype"},
		Inputs: []catalog.Field{
			{Name: "8wnpp6", Type: "file", Label: catalog.Text{EN: "", ZH: "图片"}},
			{Name: "98mmpj", Type: "string", Label: catalog.Text{EN: "", ZH: "动作说明"}},
		},
	},
	{
		Group: "feature", Route: "design-concept-export", WorkflowID: "68b54e3059d3162af127d4d7",
		Title: catalog.Text{EN: "Design Concept Export", ZH: "设计概念导出"},
		Icon: "lucide:folder-up", Categories: []string{"feature"},
		Inputs: []catalog.Field{
			{Name: "kdzm7m", Type: "file", Label: catalog.Text{EN: "", ZH: "图像描述"}},
			{Name: "9qh9fp", Type: "string", Label: catalog.Text{EN: "", ZH: "文本描述"}},
		},
	},
	{
		Group: "feature", Route: "market-environment-analysis", WorkflowID: "68b54e4204cc340c5d118bda",
		Title: catalog.Text{EN: "Market Environment Analysis", ZH: "市场环境分析"},
		Icon: "lucide:atom", Categories: []string{"feature"},
		Inputs: []catalog.Field{
			{Name: "8npnpp", Type: "string", Label: catalog.Text{EN: "product information", ZH: "产品信息"}},
		},
	},
	{
		Group: "feature", Route: "functional-detail-refinement", WorkflowID: "68b54e7cd1406fc417f9d31f",
		Title: catalog.Text{EN: "Functional Detail Refinement", ZH: "功能要点细化"},
		Icon: "lucide:square-function", Categories: []string{"feature", "logic"},
		Inputs: []catalog.Field{
			{Name: "kz7gqj", Type: "string", Label: catalog.Text{EN: "", ZH: "竞品分析"}},
			{Name: "969mgh", Type: "number", Label: catalog.Text{EN: "", ZH: "功能改进方向"}},
		},
	},
	{
		Group: "feature", Route: "design-solution-generation", WorkflowID: "68b54e8e06b4d3a37a729a05",
		Title: catalog.Text{EN: "Design Solution Generation", ZH: "设计方案生成"},
		Icon: "lucide:git-pull-request-create", Categories: []string{"feature", "prototype"},
		Inputs: []catalog.Field{
			{Name: "wqjkth", Type: "string", Label: catalog.Text{EN: "", ZH: "用户需求场景"}},
			{Name: "j7cztb", Type: "string", Label: catalog.Text{EN: "", ZH: "主要功能改进方向"}},
			{Name: "fjtn9b", Type: "string", Label: catalog.Text{EN: "", ZH: "次要功能改进方向"}},
		},
	},
	{
		Group: "feature", Route: "design-solution-iteration", WorkflowID: "68b54e9f93827eab8a990beb",
		Title: catalog.Text{EN: "Design Solution Iteration", ZH: "设计方案迭代"},
		Icon: "lucide:iteration-ccw", Categories: []string{"feature", "prototype"},
		Inputs: []catalog.Field{
			{Name: "8nqrfz", Type: "string", Label: catalog.Text{EN: "", ZH: "产品描述文本"}},
		},
	},
	{
		Group: "logic", Route: "seat-pressure-calculation", WorkflowID: "68b54afe77af2f30b3165a7f",
		Title: catalog.Text{EN: "Seat Pressure Calculation", ZH: "座椅压力计算"},
		Icon: "lucide:calculator", Categories: []string{"logic"},
		Inputs: []catalog.Field{
			{Name: "7bfpqd", Type: "number", Label: catalog.Text{EN: "", ZH: "身高"}},
			{Name: "ppfqcz", Type: "number", Label: catalog.Text{EN: "", ZH: "体重"}},
			{Name: "pppnqz", Type: "string", Label: catalog.Text{EN: "", ZH: "坐姿"}},
		},
	},
	{
		Group: "logic", Route: "pressure-distribution-simulation", WorkflowID: "68b54b161e9863dc270974a4",
		Title: catalog.Text{EN: "Pressure Distribution Simulation", ZH: "压力分布模拟"},
		Icon: "lucide:square-stack", Categories: []string{"logic"},
		Inputs: []catalog.Field{
			{Name: "mcwzfb", Type: "number", Label: catalog.Text{EN: "", ZH: "杨氏模量"}},
			{Name: "gq98zz", Type: "number", Label: catalog.Text{EN: "", ZH: "泊松比"}},
		},
	},
	{
		Group: "logic", Route: "pressure-distribution-visualization", WorkflowID: "68b54b334eafb473f3d20663",
		Title: catalog.Text{EN: "Pressure Distribution Visualization", ZH: "压力分布可视化"},
		Icon: "lucide:view", Categories: []string{"logic"},
		Inputs: []catalog.Field{
			{Name: "8w78rm", Type: "number", Label: catalog.Text{EN: "", ZH: "杨氏模量"}},
			{Name: "ct7gmk", Type: "number", Label: catalog.Text{EN: "", ZH: "泊松比"}},
			{Name: "br8rcp", Type: "number", Label: catalog.Text{EN: "", ZH: "身高"}},
			{Name: "mbgttf", Type: "number", Label: catalog.Text{EN: "", ZH: "体重"}},
			{Name: "zp9km9", Type: "string", Label: catalog.Text{EN: "", ZH: "坐姿"}},
		},
	},
	{
		Group: "logic", Route: "summary-of-triz-problems-workflow", WorkflowID: "68b54cc0597dd7103b735a04",
		Title: catalog.Text{EN: "TRIZ Problem Summary", ZH: "TRIZ问题总结"},
		Icon: "lucide:file-check", Categories: []string{"logic"},
		Inputs: []catalog.Field{
			{Name: "88zfqc", Type: "string", Label: catalog.Text{EN: "", ZH: "问题参数"}},
		},
	},
	{
		Group: "logic", Route: "triz-parameter-transformation-workflow", WorkflowID: "68b54d0c1716a12bf9807ea3",
		Title: catalog.Text{EN: "TRIZ Parameter Transformation", ZH: "TRIZ参数转化"},
		Icon: "lucide:coins-exchange", Categories: []string{"logic"},
		Inputs: []catalog.Field{
			{Name: "qrn7q8", Type: "string", Label: catalog.Text{EN: "", ZH: "问题参数"}},
		},
	},
	{
		Group: "logic", Route: "triz-contradiction-analysis-workflow", WorkflowID: "68b54d259388fa9ea217a247",
		Title: catalog.Text{EN: "TRIZ Contradiction Analysis", ZH: "TRIZ矛盾分析"},
		Icon: "lucide:git-pull-request-arrow", Categories: []string{"logic"},
		Inputs: []catalog.Field{
			{Name: "6wqppd", Type: "string", Label: catalog.Text{EN: "", ZH: "TRIZ矛盾"}},
		},
	},
	{
		Group: "logic", Route: "analysis-of-triz-principles-workflow", WorkflowID: "68b54d3ba5d7485a11f0f73f",
		Title: catalog.Text{EN: "TRIZ Principle Analysis", ZH: "TRIZ原则分析"},
		Icon: "lucide:align-justify", Categories: []string{"logic"},
		Inputs: []catalog.Field{
			{Name: "6wqppd", Type: "string", Label: catalog.Text{EN: "", ZH: "TRIZ参数"}},
		},
	},
	{
		Group: "logic", Route: "analysis-of-triz-solutions-workflow", WorkflowID: "68b54d557a70e35ba47c61c9",
		Title: catalog.Text{EN: "TRIZ Solution Analysis", ZH: "TRIZ解决方案分析"},
		Icon: "lucide:file-question", Categories: []string{"logic"},
		Inputs: []catalog.Field{
			{Name: "6wqppd", Type: "string", Label: catalog.Text{EN: "", ZH: "TRIZ参数"}},
		},
	},
	{
		Group: "logic", Route: "product-function-analysis-workflow", WorkflowID: "68b54de0538d2b48770e7379",
		Title: catalog.Text{EN: "Product Function Analysis", ZH: "产品功能分析"},
		Icon: "lucide:proportions", Categories: []string{"logic"},
		Inputs: []catalog.Field{
			{Name: "cdqnmf", Type: "string", Label: catalog.Text{EN: "", ZH: "前置分析"}},
		},
	},
	{
		Group: "logic", Route: "analysis-of-product-design-behavior-workflow", WorkflowID: "68b54df120daa42e0beb650a",
		Title: catalog.Text{EN: "Product Design Behavior Analysis", ZH: "产品设计行为分析"},
		Icon: "lucide:codesandbox", Categories: []string{"logic"},
		Inputs: []catalog.Field{
			{Name: "zbgjbw", Type: "string", Label: catalog.Text{EN: "", ZH: "前置分析"}},
		},
	},
	{
		Group: "logic", Route: "product-structure-analysis-workflow", WorkflowID: "68b54e034e2dc9518c984834",
		Title: catalog.Text{EN: "Product Structure Analysis", ZH: "产品结构分析"},
		Icon: "lucide:align-horizontal-distribute-center", Categories: []string{"logic"},
		Inputs: []catalog.Field{
			{Name: "6h6npf", Type: "string", Label: catalog.Text{EN: "", ZH: "前置分析"}},
		},
	},
	{
		Group: "prototype", Route: "visual_concept_exploration_image_generation", WorkflowID: "68b54d6b0e508d7bb541698e",
		Title: catalog.Text{EN: "Visual Concept Exploration (Image Generation)", ZH: "视觉概念探索 (图像生成)"},
		Icon: "lucide:copy_image",
		Inputs: []catalog.Field{
			{Name: "b7jbtd", Type: "file", Label: catalog.Text{EN: "", ZH: "图片上传"}},
			{Name: "8nntq7", Type: "string", Label: catalog.Text{EN: "", ZH: "提示词"}},
			{Name: "pmz87z", Type: "number", Label: catalog.Text{EN: "", ZH: "生成数量"}},
		},
	},
	{
		Group: "prototype", Route: "stylized_rendering_image_style_transfer", WorkflowID: "68b54d837431da91660dfe67",
		Title: catalog.Text{EN: "Stylized Rendering (Image Style Transfer)", ZH: "风格化渲染 (图像风格迁移)"},
		Icon: "lucide:images",
		Inputs: []catalog.Field{
			{Name: "b7jbtd", Type: "file", Label: catalog.Text{EN: "", ZH: "原图"}},
			{Name: "qbqnn8", Type: "file", Label: catalog.Text{EN: "", ZH: "参考图"}},
			{Name: "8nntq7", Type: "string", Label: catalog.Text{EN: "", ZH: "提示词"}},
			{Name: "pmz87z", Type: "number", Label: catalog.Text{EN: "", ZH: "生成数量"}},
		},
	},
	{
		Group: "prototype", Route: "image_element_embedding_object_editing", WorkflowID: "68b54d9a649359decddec18e",
		Title: catalog.Text{EN: "Image Element Embedding (Object Editing)", ZH: "图像元素嵌入 (图像对象编辑)"},
		Icon: "lucide:image_plus",
		Inputs: []catalog.Field{
			{Name: "fgjfck", Type: "file", Label: catalog.Text{EN: "", ZH: "背景图"}},
			{Name: "kp7rpt", Type: "file", Label: catalog.Text{EN: "", ZH: "对象物体"}},
		},
	},
	{
		Group: "prototype", Route: "controlled_visual_exploration_controlled_image_generation", WorkflowID: "68b54dafd3506ee037534ddb",
		Title: catalog.Text{EN: "Controlled Visual Exploration (Controlled Image Generation)", ZH: "视觉要素可控探索 (受控图像生成)"},
		Icon: "lucide:book_image",
		Inputs: []catalog.Field{
			{Name: "7jcjpw", Type: "file", Label: catalog.Text{EN: "", ZH: "参考图"}},
			{Name: "c8fjkq", Type: "string", Label: catalog.Text{EN: "", ZH: "提示词"}},
		},
	},
	{
		Group: "prototype", Route: "appearance_feature_generation", WorkflowID: "68b54e1d5e3cfd5f52c2ffea",
		Title: catalog.Text{EN: "Appearance Feature Generation", ZH: "外观特征生成"},
		Icon: "lucide:scan_face",
		Inputs: []catalog.Field{
			{Name: "fr8th7", Type: "string", Label: catalog.Text{EN: "", ZH: "前置分析"}},
			{Name: "9nqjzq", Type: "string", Label: catalog.Text{EN: "", ZH: "情感描述"}},
		},
	},
}
