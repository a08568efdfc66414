package legaldata

import "nyaay-saathi/internal/models"

// LegalTerms lists common legal vocabulary per language. Languages without an
// entry have no vocabulary yet.
var LegalTerms = map[string][]models.Phrase{
	"hindi": {
		{English: "court", Localized: "न्यायालय"},
		{English: "lawyer", Localized: "वकील"},
		{English: "judge", Localized: "न्यायाधीश"},
		{English: "appeal", Localized: "अपील"},
		{English: "arrest", Localized: "गिरफ्तारी"},
		{English: "bail", Localized: "जमानत"},
		{English: "complaint", Localized: "शिकायत"},
		{English: "evidence", Localized: "सबूत"},
		{English: "hearing", Localized: "सुनवाई"},
		{English: "rights", Localized: "अधिकार"},
		{English: "witness", Localized: "गवाह"},
		{English: "document", Localized: "दस्तावेज़"},
		{English: "penalty", Localized: "दंड"},
		{English: "testimony", Localized: "गवाही"},
		{English: "trial", Localized: "मुकदमा"},
	},
	"bengali": {
		{English: "court", Localized: "আদালত"},
		{English: "lawyer", Localized: "আইনজীবী"},
		{English: "judge", Localized: "বিচারক"},
		{English: "appeal", Localized: "আপিল"},
		{English: "arrest", Localized: "গ্রেপ্তার"},
		{English: "bail", Localized: "জামিন"},
		{English: "complaint", Localized: "অভিযোগ"},
		{English: "evidence", Localized: "প্রমাণ"},
		{English: "hearing", Localized: "শুনানি"},
		{English: "rights", Localized: "অধিকার"},
		{English: "witness", Localized: "সাক্ষী"},
		{English: "document", Localized: "নথি"},
		{English: "penalty", Localized: "জরিমানা"},
		{English: "testimony", Localized: "সাক্ষ্য"},
		{English: "trial", Localized: "বিচার"},
	},
}
