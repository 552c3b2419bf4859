package constitution_test

import (
	"io"
	"log/slog"
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/lianzhou/tizhi/internal/constitution"
)

func TestSystemAnalyzeWithCache(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	sys := constitution.New(constitution.Builtin(), logger, constitution.CacheOptions{
		Enabled: true,
		TTL:     time.Minute,
	})

	const text = "我总是怕冷，手脚冰凉，喜欢喝热水"

	first := sys.Analyze(text)
	second := sys.Analyze(text)

	if !reflect.DeepEqual(first, second) {
		t.Error("cached result differs from original")
	}
	if first.PrimaryType != constitution.TypeYangDeficiency {
		t.Errorf("primary: got %s, want %s", first.PrimaryType, constitution.TypeYangDeficiency)
	}
}

func TestSystemAnalyzeConcurrent(t *testing.T) {
	sys := newSystem(t)

	texts := []string{
		"我总是怕冷，手脚冰凉，喜欢喝热水",
		"怕冷，乏力，容易疲劳",
		"口干咽燥，晚上盗汗",
		"今天天气很好呀",
	}

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, text := range texts {
				want := sys.Analyze(text)
				got := sys.Analyze(text)
				if got.PrimaryType != want.PrimaryType {
					t.Errorf("unstable result for %q: %s vs %s", text, got.PrimaryType, want.PrimaryType)
				}
			}
		}()
	}
	wg.Wait()
}

func TestSystemCommonQuestions(t *testing.T) {
	sys := newSystem(t)

	questions := sys.CommonQuestions()
	if len(questions) != 10 {
		t.Errorf("question count: got %d, want 10", len(questions))
	}
}

func TestSystemRecommendations(t *testing.T) {
	sys := newSystem(t)

	rec := sys.Recommendations(constitution.TypeYangDeficiency)
	if len(rec.Lifestyle) == 0 {
		t.Error("missing lifestyle advice")
	}
}
