package storage

import "time"

// ResumeRecord is the stored metadata for one uploaded resume.
type ResumeRecord struct {
	ID         int64     `json:"id"`
	RequestID  string    `json:"request_id"`
	Filename   string    `json:"filename"`
	FileType   string    `json:"file_type"`
	FileSize   int64     `json:"file_size"`
	TextLength int       `json:"text_length"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// Entity is one extracted value persisted for later search
// (skill, company, position, school, certification, ...).
type Entity struct {
	ResumeID   int64   `json:"resume_id"`
	Type       string  `json:"type"`
	Value      string  `json:"value"`
	Confidence float64 `json:"confidence"`
}
