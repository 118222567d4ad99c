// Package skills detects known skill keywords in résumé text.
package skills

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Word boundaries that treat any Unicode letter or digit as part of a word;
// regexp's \b only knows ASCII.
const (
	wordStart = `(?:^|[^\p{L}\p{N}_])`
	wordEnd   = `(?:$|[^\p{L}\p{N}_])`
)

var (
	// ErrDuplicateSkill is returned when a vocabulary lists the same term twice, ignoring case.
	ErrDuplicateSkill = errors.New("duplicate skill")
	// ErrEmptySkill is returned for blank vocabulary entries.
	ErrEmptySkill = errors.New("empty skill")
)

// DefaultTerms is the built-in skill vocabulary.
var DefaultTerms = []string{
	"Python", "Java", "JavaScript", "SQL", "NoSQL", "Machine Learning",
	"Data Science", "React", "Angular", "Vue", "Node.js", "AWS",
	"Azure", "Google Cloud", "Docker", "Kubernetes", "TensorFlow",
	"PyTorch", "Flask", "Django", "Spring", "Git", "CI/CD", "REST API",
	"GraphQL", "TypeScript", "HTML", "CSS", "SASS", "Redux", "MongoDB",
	"PostgreSQL", "MySQL", "Firebase", "Linux", "Bash", "Pandas",
	"NumPy", "Scikit-learn", "Keras", "Spark", "Hadoop", "Tableau",
	"Power BI", "Excel", "Agile", "Scrum", "JIRA", "Jenkins", "Ansible",
}

type term struct {
	name    string
	pattern *regexp.Regexp
}

// Vocabulary is an ordered, read-only list of skill terms.
type Vocabulary struct {
	terms []term
}

// NewVocabulary validates terms and compiles their matchers.
// Multi-word terms match only with their literal internal spacing.
func NewVocabulary(names []string) (*Vocabulary, error) {
	seen := make(map[string]struct{}, len(names))
	terms := make([]term, 0, len(names))

	for idx, raw := range names {
		name := strings.TrimSpace(raw)
		if name == "" {
			return nil, fmt.Errorf("vocabulary entry %d: %w", idx, ErrEmptySkill)
		}

		lower := strings.ToLower(name)
		if _, ok := seen[lower]; ok {
			return nil, fmt.Errorf("vocabulary entry %q: %w", name, ErrDuplicateSkill)
		}
		seen[lower] = struct{}{}

		pattern, err := regexp.Compile(wordStart + regexp.QuoteMeta(lower) + wordEnd)
		if err != nil {
			return nil, fmt.Errorf("compiling matcher for %q: %w", name, err)
		}

		terms = append(terms, term{name: name, pattern: pattern})
	}

	return &Vocabulary{terms: terms}, nil
}

// Default returns the vocabulary built from DefaultTerms.
func Default() *Vocabulary {
	v, err := NewVocabulary(DefaultTerms)
	if err != nil {
		panic(fmt.Sprintf("default skill vocabulary is invalid: %v", err))
	}
	return v
}

// Len returns the number of terms.
func (v *Vocabulary) Len() int {
	return len(v.terms)
}

// Terms returns a copy of the vocabulary in its configured order.
func (v *Vocabulary) Terms() []string {
	names := make([]string, 0, len(v.terms))
	for _, t := range v.terms {
		names = append(names, t.name)
	}
	return names
}

// Match returns every vocabulary term found in text as a whole word,
// ignoring case. Blank text yields an empty set without scanning.
func (v *Vocabulary) Match(text string) Set {
	if strings.TrimSpace(text) == "" {
		return Set{}
	}

	normalized := strings.ToLower(text)

	found := make([]string, 0)
	for _, t := range v.terms {
		if t.pattern.MatchString(normalized) {
			found = append(found, t.name)
		}
	}

	return Set{items: found}
}
