package constitution

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Keyword pairs a lexicon term with its weight. Order within a rule is
// significant: evidence lists matches in lexicon order.
type Keyword struct {
	Text   string  `yaml:"text"`
	Weight float64 `yaml:"weight"`
}

// Rule holds the weighted lexicon for one constitution type: positive
// keywords, negating evidence (weights always <= 0), a human-readable
// explanation, and clarifying questions for low-confidence results.
type Rule struct {
	Keywords        []Keyword `yaml:"keywords"`
	Negatives       []Keyword `yaml:"negatives"`
	Explanation     string    `yaml:"explanation"`
	CommonQuestions []string  `yaml:"common_questions"`
}

// RuleEntry binds a constitution type identifier to its rule. Entry order
// defines the table's iteration order, which also breaks score ties.
type RuleEntry struct {
	Type string `yaml:"type"`
	Rule `yaml:",inline"`
}

// Table is an immutable rule set built once at startup and shared across
// requests without synchronization. The order slice fixes the iteration
// order used for scoring and stable tie-breaking.
type Table struct {
	order []string
	rules map[string]Rule
}

// NewTable builds a Table from ordered entries. It rejects duplicate type
// identifiers, rules without positive keywords, and negative entries with
// positive weights.
func NewTable(entries []RuleEntry) (*Table, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("rule table requires at least one entry")
	}

	t := &Table{
		order: make([]string, 0, len(entries)),
		rules: make(map[string]Rule, len(entries)),
	}

	for _, entry := range entries {
		if entry.Type == "" {
			return nil, fmt.Errorf("rule entry missing type identifier")
		}
		if _, exists := t.rules[entry.Type]; exists {
			return nil, fmt.Errorf("duplicate rule entry: %s", entry.Type)
		}
		if len(entry.Keywords) == 0 {
			return nil, fmt.Errorf("rule %s has no keywords", entry.Type)
		}
		if err := validateWeights(entry.Rule); err != nil {
			return nil, fmt.Errorf("rule %s: %w", entry.Type, err)
		}

		t.order = append(t.order, entry.Type)
		t.rules[entry.Type] = entry.Rule
	}

	return t, nil
}

// Builtin returns the compiled-in nine-type rule table.
func Builtin() *Table {
	t, err := NewTable(builtinRules())
	if err != nil {
		// builtin lexicon is static data validated by tests
		panic(fmt.Sprintf("builtin rule table invalid: %v", err))
	}
	return t
}

// LoadTable reads a full replacement rule table from a YAML file. The file
// must define the canonical nine constitution types; order within the file
// becomes the table's iteration order.
func LoadTable(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rules: %w", err)
	}

	var entries []RuleEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse rules: %w", err)
	}

	t, err := NewTable(entries)
	if err != nil {
		return nil, err
	}

	if err := t.validateCanonical(); err != nil {
		return nil, err
	}
	return t, nil
}

// Get returns the rule for a constitution type, reporting absence for
// unknown identifiers.
func (t *Table) Get(constitutionType string) (Rule, bool) {
	rule, ok := t.rules[constitutionType]
	return rule, ok
}

// Types returns the type identifiers in table order.
func (t *Table) Types() []string {
	types := make([]string, len(t.order))
	copy(types, t.order)
	return types
}

// CommonQuestions returns the deduplicated union of every rule's clarifying
// questions in first-seen table order, capped at ten entries.
func (t *Table) CommonQuestions() []string {
	const maxQuestions = 10

	seen := make(map[string]struct{})
	questions := make([]string, 0, maxQuestions)

	for _, name := range t.order {
		for _, q := range t.rules[name].CommonQuestions {
			if _, dup := seen[q]; dup {
				continue
			}
			seen[q] = struct{}{}
			questions = append(questions, q)
			if len(questions) == maxQuestions {
				return questions
			}
		}
	}
	return questions
}

func validateWeights(rule Rule) error {
	seen := make(map[string]struct{}, len(rule.Keywords))
	for _, kw := range rule.Keywords {
		if kw.Text == "" {
			return fmt.Errorf("empty keyword")
		}
		if _, dup := seen[kw.Text]; dup {
			return fmt.Errorf("duplicate keyword %q", kw.Text)
		}
		seen[kw.Text] = struct{}{}
	}
	for _, neg := range rule.Negatives {
		if neg.Text == "" {
			return fmt.Errorf("empty negative keyword")
		}
		if neg.Weight > 0 {
			return fmt.Errorf("negative keyword %q has positive weight %v", neg.Text, neg.Weight)
		}
	}
	return nil
}

func (t *Table) validateCanonical() error {
	canonical := []string{
		TypeBalanced, TypeQiDeficiency, TypeYangDeficiency,
		TypeYinDeficiency, TypePhlegmDamp, TypeDampHeat,
		TypeBloodStasis, TypeQiStagnation, TypeAllergic,
	}

	if len(t.order) != len(canonical) {
		return fmt.Errorf("rule table requires exactly %d types, got %d", len(canonical), len(t.order))
	}
	for _, name := range canonical {
		if _, ok := t.rules[name]; !ok {
			return fmt.Errorf("rule table missing constitution type %s", name)
		}
	}
	return nil
}
