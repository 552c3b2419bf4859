package constitution_test

import (
	"math"
	"strings"
	"testing"

	"github.com/lianzhou/tizhi/internal/constitution"
)

func newClassifier(t *testing.T) *constitution.Classifier {
	t.Helper()
	return constitution.NewClassifier(constitution.Builtin())
}

func TestAnalyzeShortInput(t *testing.T) {
	c := newClassifier(t)

	tests := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"whitespace only", "   \n\t  "},
		{"two characters", "头疼"},
		{"four characters padded", "  头很疼痛  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := c.Analyze(tt.text)

			if !result.Insufficient() {
				t.Fatalf("PrimaryType: got %s, want %s", result.PrimaryType, constitution.TypeInsufficient)
			}
			if result.Reason != "输入文本过短，无法进行有效判定" {
				t.Errorf("Reason: got %q", result.Reason)
			}
			if result.AllScores != nil || result.Evidence != nil {
				t.Error("short-input branch must not carry scores or evidence")
			}
		})
	}
}

func TestAnalyzeBelowThreshold(t *testing.T) {
	c := newClassifier(t)

	result := c.Analyze("今天天气很好呀")

	if !result.Insufficient() {
		t.Fatalf("PrimaryType: got %s, want %s", result.PrimaryType, constitution.TypeInsufficient)
	}
	if !strings.Contains(result.Reason, "低于阈值") {
		t.Errorf("Reason: got %q, want threshold explanation", result.Reason)
	}
	if len(result.AllScores) != 9 {
		t.Errorf("AllScores count: got %d, want 9", len(result.AllScores))
	}
	if len(result.Evidence) != 9 {
		t.Errorf("Evidence count: got %d, want 9", len(result.Evidence))
	}
}

func TestAnalyzePrimaryOnly(t *testing.T) {
	c := newClassifier(t)

	result := c.Analyze("我总是怕冷，手脚冰凉，喜欢喝热水")

	if result.PrimaryType != constitution.TypeYangDeficiency {
		t.Fatalf("PrimaryType: got %s, want %s", result.PrimaryType, constitution.TypeYangDeficiency)
	}
	if result.PrimaryScore != 12 {
		t.Errorf("PrimaryScore: got %v, want 12", result.PrimaryScore)
	}
	if len(result.SecondaryTypes) != 0 {
		t.Errorf("SecondaryTypes: got %v, want none", result.SecondaryTypes)
	}

	// confidence = 12 / (12 + 10)
	want := 12.0 / 22.0
	if math.Abs(result.Confidence-want) > 1e-9 {
		t.Errorf("Confidence: got %v, want %v", result.Confidence, want)
	}
}

func TestAnalyzeSecondarySelection(t *testing.T) {
	c := newClassifier(t)

	// 气虚质 8 (容易疲劳 4 + 乏力 4), 阳虚质 5 (怕冷), 痰湿质 2 (乏力).
	// The rank-2 gap (3) is within the secondary threshold, the rank-3
	// gap (6) is not.
	result := c.Analyze("怕冷，乏力，容易疲劳")

	if result.PrimaryType != constitution.TypeQiDeficiency {
		t.Fatalf("PrimaryType: got %s, want %s", result.PrimaryType, constitution.TypeQiDeficiency)
	}
	if result.PrimaryScore != 8 {
		t.Errorf("PrimaryScore: got %v, want 8", result.PrimaryScore)
	}
	if len(result.SecondaryTypes) != 1 || result.SecondaryTypes[0] != constitution.TypeYangDeficiency {
		t.Errorf("SecondaryTypes: got %v, want [%s]", result.SecondaryTypes, constitution.TypeYangDeficiency)
	}
	if result.AllScores[constitution.TypePhlegmDamp] != 2 {
		t.Errorf("痰湿质 score: got %v, want 2", result.AllScores[constitution.TypePhlegmDamp])
	}
}

func TestAnalyzeZeroScoreNeverSecondary(t *testing.T) {
	c := newClassifier(t)

	result := c.Analyze("我总是怕冷，手脚冰凉，喜欢喝热水")

	for _, name := range result.SecondaryTypes {
		if result.AllScores[name] <= 0 {
			t.Errorf("secondary %s has non-positive score %v", name, result.AllScores[name])
		}
	}
}

func TestAnalyzeTieBreakDeterministic(t *testing.T) {
	c := newClassifier(t)

	// 刺痛 scores 血瘀质 4 and 抑郁 scores 气郁质 4 with no cross
	// negatives; the equal top scores must resolve by table order on
	// every call.
	const text = "有点刺痛又有点抑郁"
	first := c.Analyze(text)
	for range 20 {
		again := c.Analyze(text)
		if again.PrimaryType != first.PrimaryType {
			t.Fatalf("tie-break unstable: %s then %s", first.PrimaryType, again.PrimaryType)
		}
	}

	// table order puts 血瘀质 before 气郁质
	if first.PrimaryType != constitution.TypeBloodStasis {
		t.Errorf("tie primary: got %s, want %s", first.PrimaryType, constitution.TypeBloodStasis)
	}
	if len(first.SecondaryTypes) != 1 || first.SecondaryTypes[0] != constitution.TypeQiStagnation {
		t.Errorf("tie secondary: got %v, want [%s]", first.SecondaryTypes, constitution.TypeQiStagnation)
	}
}

func TestAnalyzeEvidenceCoversAllTypes(t *testing.T) {
	c := newClassifier(t)

	result := c.Analyze("我总是怕冷，手脚冰凉，喜欢喝热水")

	for _, name := range constitution.Builtin().Types() {
		ev, ok := result.Evidence[name]
		if !ok {
			t.Errorf("missing evidence for %s", name)
			continue
		}
		if ev.Type != name {
			t.Errorf("evidence type mismatch: got %s, want %s", ev.Type, name)
		}
		if ev.Score != result.AllScores[name] {
			t.Errorf("%s evidence score %v != all-scores %v", name, ev.Score, result.AllScores[name])
		}
	}
}
