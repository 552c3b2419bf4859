// Package constitution implements the rule-based constitution classification
// domain. It provides the nine-type weighted keyword rule table, the scoring
// engine that matches rule keywords against free-form symptom text, the
// classifier that selects primary and secondary constitution types, and the
// static lifestyle recommendation lookup.
package constitution

// The nine constitution type identifiers from 《中医体质分类与判定》 plus the
// insufficient-information sentinel. These strings are part of the wire
// contract and must remain stable.
const (
	TypeBalanced       = "平和质"
	TypeQiDeficiency   = "气虚质"
	TypeYangDeficiency = "阳虚质"
	TypeYinDeficiency  = "阴虚质"
	TypePhlegmDamp     = "痰湿质"
	TypeDampHeat       = "湿热质"
	TypeBloodStasis    = "血瘀质"
	TypeQiStagnation   = "气郁质"
	TypeAllergic       = "特禀质"

	TypeInsufficient = "信息不足"
)

// KeywordMatch records a single keyword hit: the matched lexicon term, its
// weight, and the span of the input surrounding the first occurrence.
type KeywordMatch struct {
	Keyword string  `json:"keyword"`
	Weight  float64 `json:"weight"`
	Span    string  `json:"span"`
}

// Evidence aggregates the keyword matches supporting one constitution type's
// score for a single classification request. Matched preserves lexicon order,
// not match position within the text.
type Evidence struct {
	Type    string         `json:"type"`
	Score   float64        `json:"score"`
	Matched []KeywordMatch `json:"matched"`
}

// Result is the outcome of one classification call. AllScores and Evidence
// cover every type that was scored; the short-input branch carries neither.
type Result struct {
	PrimaryType    string
	SecondaryTypes []string
	Confidence     float64
	PrimaryScore   float64
	AllScores      map[string]float64
	Evidence       map[string]Evidence
	Reason         string
}

// Insufficient reports whether the result is the insufficient-information
// sentinel, reached either through the short-input guard or a sub-threshold
// top score.
func (r Result) Insufficient() bool {
	return r.PrimaryType == TypeInsufficient
}
