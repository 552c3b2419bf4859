package constitution_test

import (
	"testing"

	"github.com/lianzhou/tizhi/internal/constitution"
)

func TestRecommendationsKnownTypes(t *testing.T) {
	for _, name := range constitution.Builtin().Types() {
		rec := constitution.Recommendations(name)
		if len(rec.Lifestyle) == 0 {
			t.Errorf("%s: no lifestyle advice", name)
		}
		if len(rec.Diet) == 0 {
			t.Errorf("%s: no diet advice", name)
		}
		if len(rec.WhenToSeekHelp) == 0 {
			t.Errorf("%s: no when-to-seek-help advice", name)
		}
	}
}

func TestRecommendationsFallback(t *testing.T) {
	tests := []string{"不存在的类型", constitution.TypeInsufficient, ""}

	for _, name := range tests {
		rec := constitution.Recommendations(name)
		if len(rec.Lifestyle) != 1 || rec.Lifestyle[0] != "保持规律作息，适度运动" {
			t.Errorf("%q lifestyle fallback: got %v", name, rec.Lifestyle)
		}
		if len(rec.WhenToSeekHelp) != 1 || rec.WhenToSeekHelp[0] != "如有不适，建议咨询专业医生" {
			t.Errorf("%q seek-help fallback: got %v", name, rec.WhenToSeekHelp)
		}
	}
}
