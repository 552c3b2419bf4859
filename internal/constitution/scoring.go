package constitution

import (
	"strings"
	"unicode/utf8"
)

// spanContext is the number of characters of surrounding text captured on
// each side of a matched keyword.
const spanContext = 10

// MatchKeywords tests every positive keyword of the named type for substring
// containment in text. Containment is checked against both the raw text and a
// lowercase-folded copy; the keyword itself is never folded, so keywords
// containing uppercase Latin letters only match literally. Each keyword
// contributes at most one match, anchored at its first occurrence. Matching
// is plain substring containment, not word-boundary matching.
func (t *Table) MatchKeywords(text, constitutionType string) []KeywordMatch {
	rule, ok := t.rules[constitutionType]
	if !ok {
		return nil
	}

	folded := strings.ToLower(text)
	runes := []rune(text)

	var matches []KeywordMatch
	for _, kw := range rule.Keywords {
		at := keywordIndex(text, folded, kw.Text)
		if at < 0 {
			continue
		}

		start := max(0, at-spanContext)
		end := min(len(runes), at+utf8.RuneCountInString(kw.Text)+spanContext)

		matches = append(matches, KeywordMatch{
			Keyword: kw.Text,
			Weight:  kw.Weight,
			Span:    string(runes[start:end]),
		})
	}
	return matches
}

// Score sums the weights of all positive keyword matches, then adds the
// (already negative) weight of every negative keyword contained in the text.
// Negative matches affect the score only; they never appear in the returned
// evidence. The result is clamped at zero: negating evidence can suppress a
// score but never invert it.
func (t *Table) Score(text, constitutionType string) (float64, []KeywordMatch) {
	rule, ok := t.rules[constitutionType]
	if !ok {
		return 0, nil
	}

	matches := t.MatchKeywords(text, constitutionType)

	var score float64
	for _, m := range matches {
		score += m.Weight
	}

	folded := strings.ToLower(text)
	for _, neg := range rule.Negatives {
		if strings.Contains(text, neg.Text) || strings.Contains(folded, neg.Text) {
			score += neg.Weight
		}
	}

	if score < 0 {
		score = 0
	}
	return score, matches
}

// keywordIndex returns the character offset of keyword's first occurrence,
// searching the raw text before the folded copy, or -1 when absent from both.
func keywordIndex(text, folded, keyword string) int {
	if idx := strings.Index(text, keyword); idx >= 0 {
		return utf8.RuneCountInString(text[:idx])
	}
	if idx := strings.Index(folded, keyword); idx >= 0 {
		return utf8.RuneCountInString(folded[:idx])
	}
	return -1
}
