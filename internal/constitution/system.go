package constitution

import (
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// System defines the public contract for constitution domain operations.
type System interface {
	Handler() *Handler

	Analyze(text string) Result
	Recommendations(constitutionType string) Recommendation
	CommonQuestions() []string
}

// CacheOptions controls memoization of Analyze results. Analyze is a pure
// function of the input text and the immutable rule table, so cached entries
// never go stale; the TTL only bounds memory growth.
type CacheOptions struct {
	Enabled bool
	TTL     time.Duration
}

type system struct {
	classifier *Classifier
	table      *Table
	logger     *slog.Logger
	cache      *gocache.Cache
	cacheTTL   time.Duration
}

// New creates the constitution System over the given rule table.
func New(table *Table, logger *slog.Logger, cache CacheOptions) System {
	s := &system{
		classifier: NewClassifier(table),
		table:      table,
		logger:     logger.With("system", "constitution"),
	}

	if cache.Enabled {
		s.cache = gocache.New(cache.TTL, 2*cache.TTL)
		s.cacheTTL = cache.TTL
	}

	return s
}

func (s *system) Handler() *Handler {
	return NewHandler(s, s.logger)
}

func (s *system) Analyze(text string) Result {
	if s.cache == nil {
		return s.classifier.Analyze(text)
	}

	key := cacheKey(text)
	if cached, ok := s.cache.Get(key); ok {
		return cached.(Result)
	}

	result := s.classifier.Analyze(text)
	s.cache.Set(key, result, s.cacheTTL)
	return result
}

func (s *system) Recommendations(constitutionType string) Recommendation {
	return Recommendations(constitutionType)
}

func (s *system) CommonQuestions() []string {
	return s.table.CommonQuestions()
}

func cacheKey(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}
