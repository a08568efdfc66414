package service

import (
	"regexp"
	"strings"

	"nyaay-saathi/internal/models"
)

type jargonRule struct {
	term        string
	explanation string
	pattern     *regexp.Regexp
}

// JargonService annotates legal terms with plain-language explanations.
type JargonService struct {
	rules []jargonRule
}

func NewJargonService(entries []models.JargonEntry) *JargonService {
	rules := make([]jargonRule, 0, len(entries))
	for _, e := range entries {
		term := strings.ToLower(e.Term)
		rules = append(rules, jargonRule{
			term:        term,
			explanation: e.Explanation,
			pattern:     regexp.MustCompile("(?i)" + regexp.QuoteMeta(term)),
		})
	}
	return &JargonService{rules: rules}
}

// Simplify appends "(explanation)" after every case-insensitive occurrence of
// each known term, keeping the matched text as written. Terms are applied in
// table order against the already annotated text, so a term that appears inside
// an earlier explanation gets annotated too.
func (s *JargonService) Simplify(text string) string {
	for _, r := range s.rules {
		if !r.pattern.MatchString(text) {
			continue
		}
		suffix := " (" + r.explanation + ")"
		text = r.pattern.ReplaceAllStringFunc(text, func(m string) string {
			return m + suffix
		})
	}
	return text
}

// Identify lists the known terms present in English text, in table order.
// Other languages have no jargon table and yield nothing.
func (s *JargonService) Identify(text, language string) []string {
	found := []string{}
	if language != "" && !strings.EqualFold(language, "english") {
		return found
	}

	lower := strings.ToLower(text)
	for _, r := range s.rules {
		if strings.Contains(lower, r.term) {
			found = append(found, r.term)
		}
	}
	return found
}
