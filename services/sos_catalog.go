package services

// SessionType SOS会话类型
const (
	SessionTypeFeelings = "处理感受"
	SessionTypeThoughts = "处理想法"
)

// CatalogTechnique 内置SOS技巧
type CatalogTechnique struct {
	Type              string
	Technique         string
	Description       string
	EstimatedDuration int // 秒
	Instructions      []string
}

// TechniqueCatalog 内置SOS技巧库，推荐排序以此为基准顺序
func TechniqueCatalog() []CatalogTechnique {
	return []CatalogTechnique{
		{
			Type:              SessionTypeFeelings,
			Technique:         "方框呼吸",
			Description:       "吸气4秒，屏息4秒，呼气4秒，屏息4秒",
			EstimatedDuration: 120,
			Instructions: []string{
				"找到舒适的坐姿",
				"吸气4秒钟",
				"屏住呼吸4秒钟",
				"呼气4秒钟",
				"再次屏住呼吸4秒钟",
				"重复这个循环",
			},
		},
		{
			Type:              SessionTypeFeelings,
			Technique:         "4-7-8呼吸",
			Description:       "吸气4秒，屏息7秒，呼气8秒",
			EstimatedDuration: 180,
			Instructions: []string{
				"用鼻子吸气4秒",
				"屏住呼吸7秒",
				"用嘴呼气8秒",
				"重复3-4次循环",
			},
		},
		{
			Type:              SessionTypeFeelings,
			Technique:         "感受的浪潮",
			Description:       "观察和接纳强烈情绪的正念练习",
			EstimatedDuration: 300,
			Instructions: []string{
				"注意身体中情绪的感觉",
				"想象情绪像海浪一样",
				"观察它的起伏变化",
				"不要试图控制或改变",
				"让情绪自然流过",
			},
		},
		{
			Type:              SessionTypeFeelings,
			Technique:         "5-4-3-2-1接地技巧",
			Description:       "通过感官觉察回到当下",
			EstimatedDuration: 180,
			Instructions: []string{
				"说出5样你能看到的东西",
				"说出4样你能触摸到的东西",
				"说出3样你能听到的声音",
				"说出2样你能闻到的气味",
				"说出1样你能尝到的味道",
			},
		},
		{
			Type:              SessionTypeThoughts,
			Technique:         "思维降温三步法",
			Description:       "识别、动摇、重构负面想法的简化流程",
			EstimatedDuration: 240,
			Instructions: []string{
				"第一步：识别自动化负面想法",
				"第二步：质疑这个想法的真实性",
				"第三步：寻找更平衡的替代想法",
			},
		},
		{
			Type:              SessionTypeThoughts,
			Technique:         "思维泡泡",
			Description:       "将想法放入泡泡中，观察其飘走",
			EstimatedDuration: 180,
			Instructions: []string{
				"想象你的想法被装在一个泡泡里",
				"看着这个泡泡慢慢飘向天空",
				"不要抓住或追逐这个泡泡",
				"让它自然地飘走",
			},
		},
		{
			Type:              SessionTypeThoughts,
			Technique:         "思维列车",
			Description:       "作为月台观察者，观察思维列车驶过",
			EstimatedDuration: 200,
			Instructions: []string{
				"想象自己站在火车站月台上",
				"看到一列装载着你想法的火车",
				"观察火车慢慢驶过",
				"不要跳上火车",
				"只是静静地观察",
			},
		},
		{
			Type:              SessionTypeThoughts,
			Technique:         "感谢你的大脑",
			Description:       "对大脑的保护性想法表示感谢",
			EstimatedDuration: 120,
			Instructions: []string{
				"识别出负面想法",
				"对大脑说：\"谢谢你想保护我\"",
				"承认想法的存在但不被它控制",
				"选择更有帮助的行动",
			},
		},
	}
}

// TechniqueNames 按类型列出全部SOS技巧名称，type为空或未知时返回全部
func TechniqueNames(sessionType string) map[string][]string {
	all := map[string][]string{
		SessionTypeFeelings: {
			"方框呼吸",
			"4-7-8呼吸",
			"感受的浪潮",
			"5-4-3-2-1接地技巧",
			"渐进式肌肉放松",
			"冷水洗脸",
			"握冰块",
			"深度呼吸",
		},
		SessionTypeThoughts: {
			"思维降温三步法",
			"思维泡泡",
			"思维列车",
			"感谢你的大脑",
			"滑稽声音",
			"溪流上的叶子",
			"想法标签",
			"认知重构",
		},
	}
	if names, ok := all[sessionType]; ok {
		return map[string][]string{sessionType: names}
	}
	return all
}

// CognitiveDistortions 认知扭曲类型列表
func CognitiveDistortions() []string {
	return []string{
		"全或无思维",
		"过度概括",
		"心理过滤",
		"否定正面",
		"妄下结论",
		"读心术",
		"算命师错误",
		"放大和缩小",
		"情绪化推理",
		"应该陈述",
		"贴标签",
		"个人化",
	}
}

// ValueCategories 价值观分类建议列表
func ValueCategories() []string {
	return []string{
		"家庭",
		"友谊",
		"亲密关系",
		"健康",
		"工作/职业",
		"学习/成长",
		"创造力",
		"娱乐/休闲",
		"精神/宗教",
		"社区/社会",
		"环境/自然",
		"财务安全",
	}
}
