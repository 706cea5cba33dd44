package models

// Sentence represents a source sentence scoped under a project
type Sentence struct {
	ID          int    `json:"id" db:"id"`
	Text        string `json:"text" db:"text"`
	LanguageISO string `json:"language_iso" db:"language_iso"`
	ProjectID   int    `json:"project_id" db:"project_id"`
}

// SentenceInput is one item of a batch sentence creation
type SentenceInput struct {
	Text        string `json:"text"`
	LanguageISO string `json:"language_iso"`
}
