package service

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"nyaay-saathi/internal/models"
)

const (
	LanguageEnglish  = "English"
	LanguageHinglish = "Hinglish"
)

// TranslationService performs literal phrase substitution per language.
type TranslationService struct {
	tables map[string][]models.Phrase
	terms  map[string][]models.Phrase
}

func NewTranslationService(tables []models.PhraseTable, terms map[string][]models.Phrase) *TranslationService {
	s := &TranslationService{
		tables: make(map[string][]models.Phrase, len(tables)),
		terms:  terms,
	}
	for _, t := range tables {
		s.tables[strings.ToLower(t.Language)] = t.Phrases
	}
	return s
}

// Translate replaces known English phrases with their localized form. English
// and Hinglish pass through, as does any language without a phrase table.
// Phrases are applied in table order; each also matches its all-lowercase and
// capitalized renderings.
func (s *TranslationService) Translate(text, language string) string {
	if language == LanguageEnglish || language == LanguageHinglish {
		return text
	}

	phrases, ok := s.tables[strings.ToLower(language)]
	if !ok {
		return text
	}

	for _, p := range phrases {
		text = strings.ReplaceAll(text, p.English, p.Localized)

		lower := strings.ToLower(p.English)
		if lower != p.English {
			text = strings.ReplaceAll(text, lower, p.Localized)
			text = strings.ReplaceAll(text, capitalize(p.English), p.Localized)
		}
	}
	return text
}

// HasTable reports whether language has a phrase table.
func (s *TranslationService) HasTable(language string) bool {
	_, ok := s.tables[strings.ToLower(language)]
	return ok
}

// LegalTerms returns the legal vocabulary for a language, or an empty list.
func (s *TranslationService) LegalTerms(language string) []models.Phrase {
	terms, ok := s.terms[strings.ToLower(language)]
	if !ok {
		return []models.Phrase{}
	}
	return terms
}

// capitalize upper-cases the first letter and lower-cases the rest.
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}

type scriptRange struct {
	lo, hi rune
	langs  []string
}

var scriptRanges = []scriptRange{
	{0x0900, 0x097F, []string{"hindi", "marathi"}},
	{0x0980, 0x09FF, []string{"bengali"}},
	{0x0B80, 0x0BFF, []string{"tamil"}},
	{0x0C00, 0x0C7F, []string{"telugu"}},
	{0x0C80, 0x0CFF, []string{"kannada"}},
	{0x0A80, 0x0AFF, []string{"gujarati"}},
}

// detectOrder breaks count ties: the first language listed wins.
var detectOrder = []string{"english", "hindi", "bengali", "tamil", "telugu", "kannada", "gujarati", "marathi"}

// DetectLanguage guesses the language of text from the Unicode scripts it
// uses. Devanagari is reported as Hindi. Text with too few script characters
// falls back to English.
func DetectLanguage(text string) string {
	counts := make(map[string]int, len(detectOrder))
	for _, r := range text {
		if r >= 0x20 && r <= 0x7F {
			counts["english"]++
			continue
		}
		for _, sr := range scriptRanges {
			if r >= sr.lo && r <= sr.hi {
				for _, lang := range sr.langs {
					counts[lang]++
				}
				break
			}
		}
	}

	best := detectOrder[0]
	for _, lang := range detectOrder[1:] {
		if counts[lang] > counts[best] {
			best = lang
		}
	}

	if best == "marathi" && counts["hindi"] == counts["marathi"] {
		return "hindi"
	}

	if counts[best] < 5 || (best != "english" && counts[best] < 10) {
		if counts["english"] > 10 && counts["hindi"] > 3 {
			return "hinglish"
		}
		return "english"
	}
	return best
}
