package entity

import "time"

const DefaultLanguage = "en"

type TranslateRequest struct {
	Text           string `json:"text"`
	TargetLanguage string `json:"target_language"`
	SourceLanguage string `json:"source_language"`
}

type TranslateResponse struct {
	TranslatedText string `json:"translated_text"`
}

// Post is the part of a post the translator needs.
type Post struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

// Version changes whenever the post's text may have changed.
func (p *Post) Version() int64 {
	if p.UpdatedAt != nil {
		return p.UpdatedAt.UnixNano()
	}
	return p.CreatedAt.UnixNano()
}

type PostTranslation struct {
	PostID   string `json:"post_id"`
	Language string `json:"language"`
	Title    string `json:"title"`
	Content  string `json:"content"`
}
