package constitution

import "math"

// Disclaimer strings returned with every estimate response. Fixed,
// non-diagnostic wording; part of the wire contract.
const (
	disclaimer = "本服务基于规则系统进行体质倾向性分析，仅供参考，不构成医疗诊断。" +
		"不提供疾病诊断、用药建议或处方。如有健康问题，请咨询专业医生或中医师。" +
		"本服务不对任何医疗决策负责。"

	insufficientDisclaimer = "本服务仅供参考，不构成医疗诊断。如有健康问题，请咨询专业医生或中医师。"

	insufficientInstruction = "请补充更多症状信息后重新判定"
)

// lowConfidenceFloor is the primary confidence below which clarifying
// questions are attached to the response.
const lowConfidenceFloor = 0.5

// MetaInfo carries optional, non-semantic request metadata. It is accepted
// for logging and future use but does not influence classification.
type MetaInfo struct {
	Age    *int   `json:"age,omitempty"`
	Sex    string `json:"sex,omitempty"`
	Region string `json:"region,omitempty"`
	Notes  string `json:"notes,omitempty"`
}

// EstimateRequest is the body of POST /constitution/estimate.
type EstimateRequest struct {
	Text string    `json:"text"`
	Meta *MetaInfo `json:"meta,omitempty"`
}

// EvidenceItem is the wire form of Evidence with a display-rounded score.
type EvidenceItem struct {
	Type    string         `json:"type"`
	Score   float64        `json:"score"`
	Matched []KeywordMatch `json:"matched"`
}

// EstimateResponse is the wire form of a classification result.
type EstimateResponse struct {
	PrimaryType        string         `json:"primary_type"`
	SecondaryTypes     []string       `json:"secondary_types"`
	Confidence         float64        `json:"confidence"`
	Evidence           []EvidenceItem `json:"evidence"`
	Recommendations    Recommendation `json:"recommendations"`
	QuestionsToClarify []string       `json:"questions_to_clarify"`
	Disclaimer         string         `json:"disclaimer"`
}

// BuildResponse shapes an analysis result for the wire: evidence is filtered
// to the primary and secondary types, confidence is rounded to 3 decimals and
// evidence scores to 2, and clarifying questions are attached when the result
// is the sentinel or the confidence is low.
func BuildResponse(sys System, result Result) EstimateResponse {
	if result.Insufficient() {
		return EstimateResponse{
			PrimaryType:    TypeInsufficient,
			SecondaryTypes: []string{},
			Confidence:     0,
			Evidence:       []EvidenceItem{},
			Recommendations: Recommendation{
				Lifestyle:      []string{},
				Diet:           []string{},
				WhenToSeekHelp: []string{insufficientInstruction},
			},
			QuestionsToClarify: sys.CommonQuestions(),
			Disclaimer:         insufficientDisclaimer,
		}
	}

	secondary := result.SecondaryTypes
	if secondary == nil {
		secondary = []string{}
	}

	evidence := make([]EvidenceItem, 0, 1+len(secondary))
	for _, name := range append([]string{result.PrimaryType}, secondary...) {
		if ev, ok := result.Evidence[name]; ok {
			evidence = append(evidence, mapEvidence(ev))
		}
	}

	questions := []string{}
	if result.Confidence < lowConfidenceFloor {
		questions = sys.CommonQuestions()
	}

	return EstimateResponse{
		PrimaryType:        result.PrimaryType,
		SecondaryTypes:     secondary,
		Confidence:         round(result.Confidence, 3),
		Evidence:           evidence,
		Recommendations:    sys.Recommendations(result.PrimaryType),
		QuestionsToClarify: questions,
		Disclaimer:         disclaimer,
	}
}

func mapEvidence(ev Evidence) EvidenceItem {
	matched := ev.Matched
	if matched == nil {
		matched = []KeywordMatch{}
	}
	return EvidenceItem{
		Type:    ev.Type,
		Score:   round(ev.Score, 2),
		Matched: matched,
	}
}

func round(v float64, places int) float64 {
	factor := math.Pow(10, float64(places))
	return math.Round(v*factor) / factor
}
