package models

// QAEntry is a fixed question/answer pair answered without calling the model.
type QAEntry struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// KnowledgeBase mirrors the on-disk legal_knowledge_base.json layout.
type KnowledgeBase struct {
	QAPairs []QAEntry `json:"legal_qa_pairs"`
}

type JargonEntry struct {
	Term        string `json:"term"`
	Explanation string `json:"explanation"`
}

type Phrase struct {
	English   string `json:"english"`
	Localized string `json:"localized"`
}

// PhraseTable holds the ordered phrase substitutions for one language code.
type PhraseTable struct {
	Language string
	Phrases  []Phrase
}

type DocumentTemplate struct {
	ID       string `json:"-"`
	Title    string `json:"title"`
	Template string `json:"template"`
}

type TimelineStep struct {
	Step      string `json:"step"`
	Timeframe string `json:"timeframe"`
	Details   string `json:"details"`
}

type Timeline struct {
	ID    string
	Steps []TimelineStep
}

type LegalResource struct {
	Name     string `json:"name"`
	Address  string `json:"address"`
	Phone    string `json:"phone"`
	Distance string `json:"distance"`
}

type ResourceGroup struct {
	Type      string
	Resources []LegalResource
}

type LegalCode struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type IPCSection struct {
	Section     string `json:"section"`
	Description string `json:"description"`
}
