package models

import "time"

type BoardMember struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Designation  string    `json:"designation,omitempty"`
	Affiliation  string    `json:"affiliation,omitempty"`
	PhotoURL     string    `json:"photo_url,omitempty"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type BoardMemberPatch struct {
	Name         Opt[string] `json:"name"`
	Designation  Opt[string] `json:"designation"`
	Affiliation  Opt[string] `json:"affiliation"`
	PhotoURL     Opt[string] `json:"photo_url"`
	DisplayOrder Opt[int]    `json:"display_order"`
}
