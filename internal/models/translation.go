package models

// Translation represents a translation of a source sentence
type Translation struct {
	ID                int    `json:"id" db:"id"`
	Text              string `json:"text" db:"text"`
	LanguageISO       string `json:"language_iso" db:"language_iso"`
	SrcSentenceID     int    `json:"src_sentence_id" db:"src_sentence_id"`
	AnnotatorUsername string `json:"annotator_username" db:"annotator_username"`
}
