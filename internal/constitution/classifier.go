package constitution

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"
)

const (
	// smoothingK is the saturation constant for confidence normalization.
	smoothingK = 10.0

	// minScoreThreshold is the minimum top score required to report a
	// primary type instead of the insufficient-information sentinel.
	minScoreThreshold = 3.0

	// secondaryThreshold is the maximum score gap from the primary within
	// which rank 2 and 3 candidates qualify as secondary types.
	secondaryThreshold = 5.0

	// minInputLength is the minimum trimmed input length in characters.
	minInputLength = 5
)

// Classifier runs the scoring engine across the full rule table and applies
// the primary/secondary selection policy. It is stateless per call: every
// analysis depends only on the input text and the immutable table, so a
// single Classifier is safe for arbitrary concurrent use.
type Classifier struct {
	table *Table
}

// NewClassifier creates a Classifier over the given rule table.
func NewClassifier(table *Table) *Classifier {
	return &Classifier{table: table}
}

type rankedType struct {
	name  string
	score float64
}

// Analyze classifies the given symptom text. Empty or too-short input and a
// sub-threshold top score both yield the insufficient-information sentinel;
// neither is an error. The sub-threshold branch still carries the full score
// and evidence maps for diagnostics, the short-input branch carries neither.
func (c *Classifier) Analyze(text string) Result {
	if utf8.RuneCountInString(strings.TrimSpace(text)) < minInputLength {
		return Result{
			PrimaryType: TypeInsufficient,
			Reason:      "输入文本过短，无法进行有效判定",
		}
	}

	types := c.table.Types()
	allScores := make(map[string]float64, len(types))
	evidence := make(map[string]Evidence, len(types))
	ranked := make([]rankedType, 0, len(types))

	for _, name := range types {
		score, matches := c.table.Score(text, name)
		allScores[name] = score
		evidence[name] = Evidence{Type: name, Score: score, Matched: matches}
		ranked = append(ranked, rankedType{name: name, score: score})
	}

	// stable sort keeps table order among equal scores, making tie-breaking
	// deterministic
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	primary := ranked[0]
	if primary.score < minScoreThreshold {
		return Result{
			PrimaryType: TypeInsufficient,
			Reason:      fmt.Sprintf("最高得分 %.1f 低于阈值 %.1f", primary.score, minScoreThreshold),
			AllScores:   allScores,
			Evidence:    evidence,
		}
	}

	// secondary candidates come from ranks 2 and 3 only
	var secondary []string
	for _, cand := range ranked[1:3] {
		if primary.score-cand.score <= secondaryThreshold && cand.score > 0 {
			secondary = append(secondary, cand.name)
		}
	}

	return Result{
		PrimaryType:    primary.name,
		SecondaryTypes: secondary,
		Confidence:     confidence(primary.score),
		PrimaryScore:   primary.score,
		AllScores:      allScores,
		Evidence:       evidence,
	}
}

// confidence maps a raw score onto [0, 1) with a fixed smoothing constant.
// It is saturating and monotonically increasing, defined per type
// independently; it is not a calibrated probability.
func confidence(score float64) float64 {
	return score / (score + smoothingK)
}
