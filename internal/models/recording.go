package models

// Recording represents an audio recording of a source sentence.
// Only the file path is stored; audio contents live outside the database.
type Recording struct {
	ID                int    `json:"id" db:"id"`
	AudioFilePath     string `json:"audio_file_path" db:"audio_file_path"`
	LanguageISO       string `json:"language_iso" db:"language_iso"`
	SrcSentenceID     int    `json:"src_sentence_id" db:"src_sentence_id"`
	AnnotatorUsername string `json:"annotator_username" db:"annotator_username"`
}
