package service

import (
	"strings"

	"nyaay-saathi/internal/models"
)

// minKeywordLen is exclusive: only keywords longer than this count.
const (
	minKeywordLen   = 3
	minKeywordMatch = 2
)

// KnowledgeService answers questions straight from the fixed Q/A table.
type KnowledgeService struct {
	entries []models.QAEntry
	// keywords[i] holds the lowercased keywords of entries[i] that are long
	// enough to count toward a match.
	keywords  [][]string
	questions []string
}

func NewKnowledgeService(entries []models.QAEntry) *KnowledgeService {
	s := &KnowledgeService{
		entries:   make([]models.QAEntry, len(entries)),
		keywords:  make([][]string, len(entries)),
		questions: make([]string, len(entries)),
	}
	copy(s.entries, entries)

	for i, e := range s.entries {
		q := strings.ToLower(e.Question)
		s.questions[i] = q
		for _, word := range strings.Fields(q) {
			if len(word) > minKeywordLen {
				s.keywords[i] = append(s.keywords[i], word)
			}
		}
	}
	return s
}

// Match returns the answer of the first entry, in table order, that shares at
// least two keywords with the question or whose whole question appears in it.
// Later entries are never considered once one qualifies, even if they would
// score higher.
func (s *KnowledgeService) Match(question string) (string, bool) {
	input := strings.ToLower(question)

	for i, e := range s.entries {
		score := 0
		for _, kw := range s.keywords[i] {
			if strings.Contains(input, kw) {
				score++
			}
		}
		if score >= minKeywordMatch || strings.Contains(input, s.questions[i]) {
			return e.Answer, true
		}
	}
	return "", false
}

// Entries returns a copy of the table in order.
func (s *KnowledgeService) Entries() []models.QAEntry {
	out := make([]models.QAEntry, len(s.entries))
	copy(out, s.entries)
	return out
}
