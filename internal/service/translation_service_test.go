package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"nyaay-saathi/internal/legaldata"
	"nyaay-saathi/internal/models"
)

func newTestTranslator() *TranslationService {
	return NewTranslationService(legaldata.PhraseTables, legaldata.LegalTerms)
}

func TestTranslationService_EnglishAndHinglishIdentity(t *testing.T) {
	svc := newTestTranslator()

	text := "How can I help you today? Please consult a lawyer."
	assert.Equal(t, text, svc.Translate(text, "English"))
	assert.Equal(t, text, svc.Translate(text, "Hinglish"))
}

func TestTranslationService_HindiPhrase(t *testing.T) {
	svc := newTestTranslator()

	assert.Equal(t, "मैं आपकी कैसे सहायता कर सकता हूँ?", svc.Translate("How can I help you today?", "Hindi"))
}

func TestTranslationService_UnknownLanguageIdentity(t *testing.T) {
	svc := newTestTranslator()

	assert.Equal(t, "Legal Documents", svc.Translate("Legal Documents", "Klingon"))
	assert.False(t, svc.HasTable("Klingon"))
	assert.True(t, svc.HasTable("Tamil"))
}

func TestTranslationService_CaseVariants(t *testing.T) {
	svc := NewTranslationService([]models.PhraseTable{
		{Language: "hindi", Phrases: []models.Phrase{
			{English: "Legal Documents", Localized: "X"},
		}},
	}, nil)

	assert.Equal(t, "X, X, X", svc.Translate("Legal Documents, legal documents, Legal documents", "hindi"))
	assert.Equal(t, "LEGAL DOCUMENTS", svc.Translate("LEGAL DOCUMENTS", "hindi"))
}

func TestTranslationService_LegalTerms(t *testing.T) {
	svc := newTestTranslator()

	assert.NotEmpty(t, svc.LegalTerms("Hindi"))
	assert.Empty(t, svc.LegalTerms("tamil"))
}

func TestDetectLanguage(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "english", text: "What are my rights during an arrest?", want: "english"},
		{name: "hindi", text: "गिरफ्तारी के दौरान मेरे अधिकार क्या हैं", want: "hindi"},
		{name: "mostly latin", text: "mujhe FIR file karni hai थाना में", want: "english"},
		{name: "tamil", text: "கைது செய்யப்பட்டால் என் உரிமைகள் என்ன", want: "tamil"},
		{name: "short", text: "hi", want: "english"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectLanguage(tt.text))
		})
	}
}
