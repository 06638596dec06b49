package models

import "time"

type Article struct {
	ID          int64      `json:"id"`
	JournalID   int64      `json:"journal_id"`
	Title       string     `json:"title"`
	Authors     string     `json:"authors,omitempty"`
	Abstract    string     `json:"abstract,omitempty"`
	Content     string     `json:"content,omitempty"`
	PDFURL      string     `json:"pdf_url,omitempty"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// ArticlePatch is a partial update with explicit present/absent fields.
type ArticlePatch struct {
	Title       Opt[string]    `json:"title"`
	Authors     Opt[string]    `json:"authors"`
	Abstract    Opt[string]    `json:"abstract"`
	Content     Opt[string]    `json:"content"`
	PDFURL      Opt[string]    `json:"pdf_url"`
	PublishedAt Opt[time.Time] `json:"published_at"`
}
