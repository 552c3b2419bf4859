package constitution

// builtinRules returns the compiled-in nine-type lexicon derived from
// 《中医体质分类与判定》. Entry order is significant: it fixes scoring
// iteration and score tie-breaking.
func builtinRules() []RuleEntry {
	return []RuleEntry{
		{
			Type: TypeBalanced,
			Rule: Rule{
				Keywords: []Keyword{
					{Text: "精力充沛", Weight: 3}, {Text: "精神好", Weight: 3}, {Text: "体力好", Weight: 3}, {Text: "不易疲劳", Weight: 3},
					{Text: "睡眠好", Weight: 3}, {Text: "睡眠安稳", Weight: 3}, {Text: "入睡快", Weight: 2}, {Text: "睡眠质量好", Weight: 3},
					{Text: "二便正常", Weight: 3}, {Text: "大便正常", Weight: 3}, {Text: "小便正常", Weight: 2}, {Text: "排便规律", Weight: 2},
					{Text: "舌淡红", Weight: 2}, {Text: "苔薄白", Weight: 2}, {Text: "舌苔正常", Weight: 2},
					{Text: "情绪稳定", Weight: 2}, {Text: "心情好", Weight: 2}, {Text: "不易生气", Weight: 2},
					{Text: "食欲好", Weight: 2}, {Text: "消化好", Weight: 2}, {Text: "不易感冒", Weight: 2}, {Text: "抵抗力好", Weight: 2},
				},
				Negatives: []Keyword{
					{Text: "乏力", Weight: -2}, {Text: "疲劳", Weight: -2}, {Text: "怕冷", Weight: -2}, {Text: "怕热", Weight: -2},
					{Text: "失眠", Weight: -2}, {Text: "便秘", Weight: -2}, {Text: "腹泻", Weight: -2}, {Text: "易感冒", Weight: -2},
				},
				Explanation: "平和质是理想的健康体质，表现为精力充沛、睡眠良好、二便正常、情绪稳定。",
				CommonQuestions: []string{
					"是否容易疲劳？", "睡眠质量如何？", "二便是否正常？",
				},
			},
		},
		{
			Type: TypeQiDeficiency,
			Rule: Rule{
				Keywords: []Keyword{
					{Text: "容易疲劳", Weight: 4}, {Text: "乏力", Weight: 4}, {Text: "没力气", Weight: 4}, {Text: "疲倦", Weight: 3}, {Text: "累", Weight: 3},
					{Text: "气短", Weight: 4}, {Text: "懒言", Weight: 3}, {Text: "不想说话", Weight: 3}, {Text: "说话声音低", Weight: 2},
					{Text: "自汗", Weight: 3}, {Text: "容易出汗", Weight: 3}, {Text: "动则汗出", Weight: 3}, {Text: "出汗多", Weight: 2},
					{Text: "易感冒", Weight: 4}, {Text: "经常感冒", Weight: 3}, {Text: "抵抗力差", Weight: 3}, {Text: "免疫力低", Weight: 2},
					{Text: "食欲不振", Weight: 2}, {Text: "不想吃饭", Weight: 2}, {Text: "腹胀", Weight: 2},
					{Text: "舌淡", Weight: 2}, {Text: "舌边有齿痕", Weight: 2}, {Text: "苔白", Weight: 1},
					{Text: "面色苍白", Weight: 2}, {Text: "面色萎黄", Weight: 2},
				},
				Negatives: []Keyword{
					{Text: "精力充沛", Weight: -3}, {Text: "体力好", Weight: -3}, {Text: "不易疲劳", Weight: -3},
					{Text: "怕热", Weight: -2}, {Text: "五心烦热", Weight: -2}, {Text: "盗汗", Weight: -2},
				},
				Explanation: "气虚质以元气不足、容易疲乏、气短懒言为主要特征。",
				CommonQuestions: []string{
					"是否容易疲劳？", "是否容易出汗？", "是否容易感冒？", "说话声音如何？",
				},
			},
		},
		{
			Type: TypeYangDeficiency,
			Rule: Rule{
				Keywords: []Keyword{
					{Text: "怕冷", Weight: 5}, {Text: "畏寒", Weight: 5}, {Text: "手脚冷", Weight: 4}, {Text: "手脚冰凉", Weight: 4}, {Text: "四肢不温", Weight: 3},
					{Text: "喜热饮", Weight: 4}, {Text: "喜欢热饮", Weight: 3}, {Text: "喝热水", Weight: 3}, {Text: "不敢吃凉的", Weight: 3},
					{Text: "精神不振", Weight: 3}, {Text: "精神萎靡", Weight: 3}, {Text: "嗜睡", Weight: 2},
					{Text: "便溏", Weight: 3}, {Text: "大便不成形", Weight: 3}, {Text: "腹泻", Weight: 2}, {Text: "拉肚子", Weight: 2},
					{Text: "腰膝酸软", Weight: 3}, {Text: "腰酸", Weight: 2}, {Text: "腿软", Weight: 2},
					{Text: "面色苍白", Weight: 2}, {Text: "舌淡", Weight: 2}, {Text: "苔白", Weight: 2}, {Text: "舌胖大", Weight: 2},
					{Text: "夜尿多", Weight: 2}, {Text: "小便清长", Weight: 2},
					{Text: "性欲减退", Weight: 1}, {Text: "月经推迟", Weight: 1},
				},
				Negatives: []Keyword{
					{Text: "怕热", Weight: -4}, {Text: "五心烦热", Weight: -4}, {Text: "盗汗", Weight: -4}, {Text: "口干", Weight: -2},
					{Text: "喜冷饮", Weight: -3}, {Text: "便秘", Weight: -2}, {Text: "大便干", Weight: -2},
				},
				Explanation: "阳虚质以阳气不足、畏寒怕冷、手足不温为主要特征。",
				CommonQuestions: []string{
					"是否怕冷？", "手脚是否冰凉？", "是否喜欢热饮？", "大便情况如何？",
				},
			},
		},
		{
			Type: TypeYinDeficiency,
			Rule: Rule{
				Keywords: []Keyword{
					{Text: "口干", Weight: 4}, {Text: "咽燥", Weight: 4}, {Text: "口燥咽干", Weight: 4}, {Text: "口渴", Weight: 3}, {Text: "想喝水", Weight: 2},
					{Text: "五心烦热", Weight: 4}, {Text: "手心热", Weight: 3}, {Text: "脚心热", Weight: 3}, {Text: "手足心热", Weight: 3},
					{Text: "盗汗", Weight: 4}, {Text: "夜间出汗", Weight: 3}, {Text: "睡觉出汗", Weight: 3},
					{Text: "便干", Weight: 3}, {Text: "便秘", Weight: 3}, {Text: "大便干结", Weight: 3}, {Text: "大便困难", Weight: 2},
					{Text: "失眠", Weight: 3}, {Text: "入睡困难", Weight: 2}, {Text: "多梦", Weight: 2},
					{Text: "舌红", Weight: 3}, {Text: "少苔", Weight: 3}, {Text: "无苔", Weight: 2}, {Text: "苔少", Weight: 2},
					{Text: "皮肤干燥", Weight: 2}, {Text: "眼干", Weight: 2}, {Text: "眼涩", Weight: 2},
					{Text: "易怒", Weight: 2}, {Text: "烦躁", Weight: 2}, {Text: "脾气大", Weight: 2},
				},
				Negatives: []Keyword{
					{Text: "怕冷", Weight: -4}, {Text: "畏寒", Weight: -4}, {Text: "手脚冷", Weight: -4},
					{Text: "便溏", Weight: -3}, {Text: "腹泻", Weight: -3}, {Text: "舌淡", Weight: -2}, {Text: "苔白厚", Weight: -2},
				},
				Explanation: "阴虚质以阴液亏少、口燥咽干、手足心热为主要特征。",
				CommonQuestions: []string{
					"是否口干？", "是否怕热？", "夜间是否出汗？", "大便是否干燥？",
				},
			},
		},
		{
			Type: TypePhlegmDamp,
			Rule: Rule{
				Keywords: []Keyword{
					{Text: "体胖", Weight: 4}, {Text: "肥胖", Weight: 4}, {Text: "超重", Weight: 3}, {Text: "体重超标", Weight: 3},
					{Text: "困重", Weight: 3}, {Text: "身体困重", Weight: 3}, {Text: "沉重感", Weight: 2}, {Text: "乏力", Weight: 2},
					{Text: "痰多", Weight: 4}, {Text: "有痰", Weight: 3}, {Text: "咳痰", Weight: 3}, {Text: "痰多黏腻", Weight: 3},
					{Text: "胸闷", Weight: 3}, {Text: "胸脘痞闷", Weight: 3}, {Text: "胸口闷", Weight: 2},
					{Text: "苔腻", Weight: 4}, {Text: "苔厚腻", Weight: 4}, {Text: "舌苔厚", Weight: 3}, {Text: "苔白腻", Weight: 3},
					{Text: "口黏", Weight: 3}, {Text: "口中黏腻", Weight: 3}, {Text: "口甜", Weight: 2},
					{Text: "大便黏", Weight: 3}, {Text: "大便不成形", Weight: 2}, {Text: "便溏", Weight: 2},
					{Text: "嗜睡", Weight: 2}, {Text: "爱睡觉", Weight: 2}, {Text: "容易困", Weight: 2},
					{Text: "腹部肥满", Weight: 2}, {Text: "肚子大", Weight: 2},
				},
				Negatives: []Keyword{
					{Text: "消瘦", Weight: -3}, {Text: "体瘦", Weight: -3}, {Text: "体重轻", Weight: -2},
					{Text: "口干", Weight: -2}, {Text: "便干", Weight: -2}, {Text: "便秘", Weight: -2},
				},
				Explanation: "痰湿质以痰湿凝聚、体形肥胖、腹部肥满、口黏苔腻为主要特征。",
				CommonQuestions: []string{
					"体型如何？", "是否有痰？", "舌苔是否厚腻？", "是否感觉身体困重？",
				},
			},
		},
		{
			Type: TypeDampHeat,
			Rule: Rule{
				Keywords: []Keyword{
					{Text: "口苦", Weight: 4}, {Text: "口黏", Weight: 3}, {Text: "口中黏腻", Weight: 3}, {Text: "口臭", Weight: 2},
					{Text: "痤疮", Weight: 4}, {Text: "长痘", Weight: 3}, {Text: "痘痘", Weight: 3}, {Text: "粉刺", Weight: 2},
					{Text: "尿黄", Weight: 3}, {Text: "小便黄", Weight: 3}, {Text: "尿赤", Weight: 2},
					{Text: "苔黄腻", Weight: 4}, {Text: "舌苔黄腻", Weight: 4}, {Text: "苔黄", Weight: 3},
					{Text: "身热", Weight: 3}, {Text: "身体发热", Weight: 2}, {Text: "烦躁", Weight: 2},
					{Text: "大便黏腻", Weight: 3}, {Text: "大便不爽", Weight: 2}, {Text: "肛门灼热", Weight: 2},
					{Text: "白带多", Weight: 2}, {Text: "白带黄", Weight: 2}, {Text: "带下多", Weight: 1},
					{Text: "面垢", Weight: 2}, {Text: "面色发黄", Weight: 2}, {Text: "油光满面", Weight: 2},
				},
				Negatives: []Keyword{
					{Text: "怕冷", Weight: -3}, {Text: "畏寒", Weight: -3}, {Text: "手脚冷", Weight: -3},
					{Text: "便溏", Weight: -2}, {Text: "舌淡", Weight: -2}, {Text: "苔白", Weight: -2},
				},
				Explanation: "湿热质以面垢油腻、口苦、苔黄腻、易长痤疮为主要特征。",
				CommonQuestions: []string{
					"是否有口苦？", "是否长痤疮？", "舌苔是否黄腻？", "小便颜色如何？",
				},
			},
		},
		{
			Type: TypeBloodStasis,
			Rule: Rule{
				Keywords: []Keyword{
					{Text: "刺痛", Weight: 4}, {Text: "固定痛", Weight: 3}, {Text: "疼痛固定", Weight: 3},
					{Text: "色斑", Weight: 4}, {Text: "长斑", Weight: 3}, {Text: "黄褐斑", Weight: 2}, {Text: "老年斑", Weight: 1},
					{Text: "唇暗", Weight: 3}, {Text: "嘴唇暗", Weight: 3}, {Text: "唇色暗", Weight: 2},
					{Text: "舌紫暗", Weight: 4}, {Text: "舌有瘀点", Weight: 4}, {Text: "舌有瘀斑", Weight: 3}, {Text: "舌下静脉曲张", Weight: 3},
					{Text: "肌肤甲错", Weight: 3}, {Text: "皮肤粗糙", Weight: 2}, {Text: "皮肤干燥", Weight: 2},
					{Text: "健忘", Weight: 2}, {Text: "记忆力差", Weight: 2},
					{Text: "痛经", Weight: 2}, {Text: "月经有血块", Weight: 2}, {Text: "经色暗", Weight: 2},
					{Text: "易烦躁", Weight: 2}, {Text: "易怒", Weight: 1},
				},
				Negatives: []Keyword{
					{Text: "面色红润", Weight: -2}, {Text: "唇色红润", Weight: -2}, {Text: "舌淡红", Weight: -2},
				},
				Explanation: "血瘀质以血行不畅、肤色晦暗、舌质紫暗为主要特征。",
				CommonQuestions: []string{
					"是否有色斑？", "唇色如何？", "是否有固定疼痛？", "舌质颜色如何？",
				},
			},
		},
		{
			Type: TypeQiStagnation,
			Rule: Rule{
				Keywords: []Keyword{
					{Text: "情绪抑郁", Weight: 4}, {Text: "抑郁", Weight: 4}, {Text: "心情不好", Weight: 3}, {Text: "情绪低落", Weight: 3},
					{Text: "易叹气", Weight: 4}, {Text: "爱叹气", Weight: 3}, {Text: "经常叹气", Weight: 3},
					{Text: "胸胁胀", Weight: 3}, {Text: "胸胁胀痛", Weight: 3}, {Text: "两胁胀痛", Weight: 3}, {Text: "胸闷", Weight: 2},
					{Text: "咽中异物感", Weight: 3}, {Text: "梅核气", Weight: 3}, {Text: "喉咙有东西", Weight: 2}, {Text: "咽部不适", Weight: 2},
					{Text: "失眠", Weight: 3}, {Text: "入睡困难", Weight: 2}, {Text: "多梦", Weight: 2},
					{Text: "易紧张", Weight: 2}, {Text: "焦虑", Weight: 2}, {Text: "担心", Weight: 2}, {Text: "思虑多", Weight: 2},
					{Text: "食欲不振", Weight: 2}, {Text: "不想吃饭", Weight: 2},
					{Text: "月经不调", Weight: 2}, {Text: "痛经", Weight: 1},
				},
				Negatives: []Keyword{
					{Text: "情绪稳定", Weight: -3}, {Text: "心情好", Weight: -3}, {Text: "开朗", Weight: -2},
				},
				Explanation: "气郁质以神情抑郁、情感脆弱、烦闷不乐为主要特征。",
				CommonQuestions: []string{
					"情绪如何？", "是否容易叹气？", "是否有胸闷？", "睡眠如何？",
				},
			},
		},
		{
			Type: TypeAllergic,
			Rule: Rule{
				Keywords: []Keyword{
					{Text: "过敏", Weight: 5}, {Text: "过敏体质", Weight: 5}, {Text: "容易过敏", Weight: 4},
					{Text: "鼻炎", Weight: 4}, {Text: "过敏性鼻炎", Weight: 4}, {Text: "鼻塞", Weight: 2}, {Text: "打喷嚏", Weight: 2},
					{Text: "荨麻疹", Weight: 4}, {Text: "风疹", Weight: 3}, {Text: "皮肤过敏", Weight: 3}, {Text: "湿疹", Weight: 2},
					{Text: "对气味敏感", Weight: 3}, {Text: "闻不得味", Weight: 2}, {Text: "气味过敏", Weight: 2},
					{Text: "对食物敏感", Weight: 3}, {Text: "食物过敏", Weight: 3}, {Text: "不能吃某些食物", Weight: 2},
					{Text: "哮喘", Weight: 3}, {Text: "过敏性哮喘", Weight: 3},
					{Text: "遗传", Weight: 2}, {Text: "家族史", Weight: 2}, {Text: "父母过敏", Weight: 1},
				},
				Negatives: []Keyword{
					{Text: "不过敏", Weight: -3}, {Text: "无过敏史", Weight: -3},
				},
				Explanation: "特禀质以先天失常、过敏反应为主要特征。",
				CommonQuestions: []string{
					"是否有过敏史？", "是否有鼻炎或荨麻疹？", "对什么过敏？",
				},
			},
		},
	}
}
