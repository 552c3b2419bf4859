package constitution

// Recommendation carries pre-authored lifestyle guidance for one
// constitution type.
type Recommendation struct {
	Lifestyle      []string `json:"lifestyle"`
	Diet           []string `json:"diet"`
	WhenToSeekHelp []string `json:"when_to_seek_help"`
}

// Recommendations returns the advice entry for the given constitution type.
// Unknown or unmapped types fall back to a fixed generic entry; the lookup
// never fails.
func Recommendations(constitutionType string) Recommendation {
	if rec, ok := recommendationTable[constitutionType]; ok {
		return rec
	}
	return Recommendation{
		Lifestyle:      []string{"保持规律作息，适度运动"},
		Diet:           []string{"饮食均衡，避免偏食"},
		WhenToSeekHelp: []string{"如有不适，建议咨询专业医生"},
	}
}

var recommendationTable = map[string]Recommendation{
	TypeBalanced: {
		Lifestyle: []string{
			"保持规律作息，早睡早起",
			"适度运动，如散步、慢跑、太极拳",
			"保持心情愉悦，避免过度劳累",
		},
		Diet: []string{
			"饮食均衡，不偏食",
			"可适量食用各类食物，保持营养平衡",
			"避免暴饮暴食",
		},
		WhenToSeekHelp: []string{
			"如出现明显不适症状，建议咨询专业中医师",
		},
	},
	TypeQiDeficiency: {
		Lifestyle: []string{
			"避免过度劳累，注意休息",
			"适度运动，以不感到疲劳为宜，如散步、太极拳",
			"保证充足睡眠，避免熬夜",
		},
		Diet: []string{
			"可适当食用补气食物，如山药、大枣、小米等",
			"避免生冷、寒凉食物",
			"饮食规律，少食多餐",
		},
		WhenToSeekHelp: []string{
			"如疲劳感持续加重，建议咨询专业中医师",
		},
	},
	TypeYangDeficiency: {
		Lifestyle: []string{
			"注意保暖，尤其是腹部和足部",
			"适度运动，以温和运动为主，如慢跑、太极拳",
			"多晒太阳，避免长时间待在寒冷环境",
		},
		Diet: []string{
			"可适当食用温阳食物，如羊肉、生姜、桂圆等",
			"避免生冷、寒凉食物和冷饮",
			"饮食宜温热",
		},
		WhenToSeekHelp: []string{
			"如畏寒症状明显，建议咨询专业中医师",
		},
	},
	TypeYinDeficiency: {
		Lifestyle: []string{
			"避免熬夜，保证充足睡眠",
			"适度运动，避免剧烈运动，可选择瑜伽、散步",
			"保持心情平静，避免急躁",
		},
		Diet: []string{
			"可适当食用滋阴食物，如银耳、百合、梨等",
			"避免辛辣、燥热食物",
			"多喝水，饮食宜清淡",
		},
		WhenToSeekHelp: []string{
			"如口干、失眠等症状明显，建议咨询专业中医师",
		},
	},
	TypePhlegmDamp: {
		Lifestyle: []string{
			"适度运动，以有氧运动为主，如快走、游泳",
			"避免久坐，多活动",
			"保证充足睡眠，但避免过度嗜睡",
		},
		Diet: []string{
			"饮食清淡，可适当食用健脾祛湿食物，如薏米、冬瓜、白萝卜等",
			"避免油腻、甜腻、生冷食物",
			"控制食量，避免暴饮暴食",
		},
		WhenToSeekHelp: []string{
			"如体重持续增加或痰多症状明显，建议咨询专业中医师",
		},
	},
	TypeDampHeat: {
		Lifestyle: []string{
			"适度运动，以出汗为宜，如慢跑、游泳",
			"保持居住环境干燥通风",
			"避免熬夜，保证充足睡眠",
		},
		Diet: []string{
			"饮食清淡，可适当食用清热祛湿食物，如绿豆、苦瓜、冬瓜等",
			"避免辛辣、油腻、甜腻食物",
			"少饮酒，多喝水",
		},
		WhenToSeekHelp: []string{
			"如痤疮、口苦等症状明显，建议咨询专业中医师",
		},
	},
	TypeBloodStasis: {
		Lifestyle: []string{
			"适度运动，促进血液循环，如慢跑、太极拳、瑜伽",
			"保持心情愉悦，避免长期抑郁",
			"保证充足睡眠",
		},
		Diet: []string{
			"可适当食用活血化瘀食物，如山楂、黑豆、玫瑰花茶等",
			"避免生冷、寒凉食物",
			"饮食宜温热",
		},
		WhenToSeekHelp: []string{
			"如疼痛、色斑等症状明显，建议咨询专业中医师",
		},
	},
	TypeQiStagnation: {
		Lifestyle: []string{
			"保持心情愉悦，多与朋友交流",
			"适度运动，如散步、瑜伽、听音乐",
			"培养兴趣爱好，转移注意力",
			"保证充足睡眠",
		},
		Diet: []string{
			"可适当食用理气食物，如柑橘、玫瑰花茶、薄荷等",
			"避免过度饮酒和刺激性食物",
			"饮食规律",
		},
		WhenToSeekHelp: []string{
			"如情绪持续低落或出现明显抑郁症状，建议咨询专业心理医生或中医师",
		},
	},
	TypeAllergic: {
		Lifestyle: []string{
			"避免接触已知的过敏原",
			"保持居住环境清洁，避免尘螨、花粉等",
			"适度运动，增强体质，但避免在过敏季节户外运动",
			"保证充足睡眠",
		},
		Diet: []string{
			"避免食用已知的过敏食物",
			"饮食清淡，可适当食用抗过敏食物，如红枣、蜂蜜等",
			"注意观察食物反应",
		},
		WhenToSeekHelp: []string{
			"如出现严重过敏反应，应立即就医",
			"建议咨询专业医生进行过敏原检测",
		},
	},
}
