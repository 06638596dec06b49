package models

import "time"

// Journal is the stored journal record plus the read-time article count.
//
// Titles are not unique at the storage level; duplicates are expected and
// collapsed on the read path. Optional columns are pointers so that a missing
// value and an empty string stay distinct.
type Journal struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Shortcode string `json:"shortcode,omitempty"`

	Description     *string `json:"description,omitempty"`
	AimsScope       *string `json:"aims_scope,omitempty"`
	Guidelines      *string `json:"guidelines,omitempty"`
	EditorialBoard  *string `json:"editorial_board,omitempty"`
	HomePageContent *string `json:"home_page_content,omitempty"`
	CurrentIssue    *string `json:"current_issue,omitempty"`
	Archive         *string `json:"archive,omitempty"`
	Category        *string `json:"category,omitempty"`
	SubjectArea     *string `json:"subject_area,omitempty"`
	ISSN            *string `json:"issn,omitempty"`

	BannerImage         *string `json:"banner_image,omitempty"`
	CoverImage          *string `json:"cover_image,omitempty"`
	FlyerImage          *string `json:"flyer_image,omitempty"`
	FlyerPDF            *string `json:"flyer_pdf,omitempty"`
	GoogleIndexingImage *string `json:"google_indexing_image,omitempty"`
	EditorImage         *string `json:"editor_image,omitempty"`

	ArticleCount int       `json:"article_count"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// JournalPatch is a partial update. Fields left unset are not touched;
// fields set to an explicit null clear the column.
type JournalPatch struct {
	Title     Opt[string] `json:"title"`
	Shortcode Opt[string] `json:"shortcode"`

	Description     Opt[string] `json:"description"`
	AimsScope       Opt[string] `json:"aims_scope"`
	Guidelines      Opt[string] `json:"guidelines"`
	EditorialBoard  Opt[string] `json:"editorial_board"`
	HomePageContent Opt[string] `json:"home_page_content"`
	CurrentIssue    Opt[string] `json:"current_issue"`
	Archive         Opt[string] `json:"archive"`
	Category        Opt[string] `json:"category"`
	SubjectArea     Opt[string] `json:"subject_area"`
	ISSN            Opt[string] `json:"issn"`

	BannerImage         Opt[string] `json:"banner_image"`
	CoverImage          Opt[string] `json:"cover_image"`
	FlyerImage          Opt[string] `json:"flyer_image"`
	FlyerPDF            Opt[string] `json:"flyer_pdf"`
	GoogleIndexingImage Opt[string] `json:"google_indexing_image"`
	EditorImage         Opt[string] `json:"editor_image"`
}

// JournalShortcode maps a public short identifier to a journal. Rows may be
// provisioned before the journal itself exists, in which case JournalID is
// nil and JournalName records the intended title for later linking.
type JournalShortcode struct {
	Shortcode   string    `json:"shortcode"`
	JournalName string    `json:"journal_name"`
	JournalID   *int64    `json:"journal_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
